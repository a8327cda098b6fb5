package controller

import (
	"strconv"

	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/pkg/serverutils"
	"bookshelf-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthorController interface {
	RegisterRoutes(r fiber.Router)
	GetExample(ctx *fiber.Ctx) error
	GetExampleAsync(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type authorController struct {
	service service.IAuthorService
}

func NewAuthorController(service service.IAuthorService) IAuthorController {
	return &authorController{service: service}
}

func (c *authorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/authors")
	h.Get("", c.GetExample)
	h.Get("/getByIdAsync", c.GetExampleAsync)
	h.Get("/all", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *authorController) GetExample(ctx *fiber.Ctx) error {
	res, err := c.service.GetExample(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get author", res))
}

// GetExampleAsync is the asynchronous-path variant of the same lookup. In Go
// both run under the request context; the route is kept for parity with the
// published surface.
func (c *authorController) GetExampleAsync(ctx *fiber.Ctx) error {
	res, err := c.service.GetExample(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get author", res))
}

func (c *authorController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all authors", res))
}

func (c *authorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAuthorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create author", res))
}

func (c *authorController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAuthorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update author", res))
}

func (c *authorController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete author", nil))
}

func parseIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
