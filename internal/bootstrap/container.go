package bootstrap

import (
	"bookshelf-be/internal/config"
	"bookshelf-be/internal/controller"
	"bookshelf-be/internal/pkg/logger"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthorController controller.IAuthorController
	BookController   controller.IBookController

	// Background services (exposed for main to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Services
	publisherService := service.NewPublisherService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)
	authorService := service.NewAuthorService(uowFactory, publisherService)
	bookService := service.NewBookService(uowFactory, publisherService)

	return &Container{
		AuthorController: controller.NewAuthorController(authorService),
		BookController:   controller.NewBookController(bookService),
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
