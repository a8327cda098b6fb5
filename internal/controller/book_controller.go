package controller

import (
	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/pkg/serverutils"
	"bookshelf-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	GetExample(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetByAuthor(ctx *fiber.Ctx) error
	GetByTitle(ctx *fiber.Ctx) error
	GetAllWithAuthors(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type bookController struct {
	service service.IBookService
}

func NewBookController(service service.IBookService) IBookController {
	return &bookController{service: service}
}

func (c *bookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/books")
	h.Get("", c.GetExample)
	h.Get("/GetAll", c.GetAll)
	h.Get("/byAuthor/:id", c.GetByAuthor)
	h.Get("/GetByTitle", c.GetByTitle)
	h.Get("/GetAllWithAuthors", c.GetAllWithAuthors)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *bookController) GetExample(ctx *fiber.Ctx) error {
	res, err := c.service.GetExample(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get book", res))
}

func (c *bookController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all books", res))
}

func (c *bookController) GetByAuthor(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetByAuthor(ctx.Context(), id, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get books by author", res))
}

func (c *bookController) GetByTitle(ctx *fiber.Ctx) error {
	res, err := c.service.GetByTitle(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get book by title", res))
}

func (c *bookController) GetAllWithAuthors(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllWithAuthors(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get books with authors", res))
}

func (c *bookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success create book", res))
}

func (c *bookController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBookRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update book", res))
}

func (c *bookController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete book", nil))
}
