package bootstrap

import (
	"content-discovery-be/internal/catalog"
	"content-discovery-be/internal/config"
	"content-discovery-be/internal/controller"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/memory"
	"content-discovery-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	InterestController  controller.IInterestController
	ContentController   controller.IContentController
	DiscoveryController controller.IDiscoveryController
	SearchController    controller.ISearchController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. In-memory storage
	userRepo := memory.NewUserRepository()
	interestRepo := memory.NewInterestRepository()
	tokenRepo := memory.NewTokenRepository()
	counterRepo := memory.NewInteractionCounterRepository()

	// 4. Catalog
	clock := catalog.SystemClock()
	generator := catalog.NewGenerator(cfg.Catalog.Seed, clock)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Auth.InteractionTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Auth.InteractionTopic, counterRepo, sysLogger)

	authService := service.NewAuthService(cfg.Auth, userRepo, interestRepo, tokenRepo, sysLogger)
	userService := service.NewUserService(userRepo, interestRepo)
	interestService := service.NewInterestService(interestRepo)
	feedService := service.NewFeedService(generator, clock, counterRepo)
	interactionService := service.NewInteractionService(publisherService, sysLogger)
	discoveryService := service.NewDiscoveryService()
	searchService := service.NewSearchService(generator, cfg.Catalog.Seed)

	// 6. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		InterestController:  controller.NewInterestController(interestService),
		ContentController:   controller.NewContentController(feedService, interactionService),
		DiscoveryController: controller.NewDiscoveryController(discoveryService),
		SearchController:    controller.NewSearchController(searchService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
