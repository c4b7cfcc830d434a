// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"

	"exam-prep-be/internal/config"
	"exam-prep-be/internal/controller"
	"exam-prep-be/internal/handler"
	"exam-prep-be/internal/pkg/logger"
	"exam-prep-be/internal/pkg/mailer"
	"exam-prep-be/internal/repository/memory"
	"exam-prep-be/internal/repository/unitofwork"
	"exam-prep-be/internal/service"
	"exam-prep-be/internal/websocket"
	"exam-prep-be/pkg/lock"

	pktNats "exam-prep-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	OAuthController   controller.IOAuthController
	UserController    controller.IUserController
	PlanController    controller.IPlanController
	PaymentController controller.IPaymentController
	ContentController controller.IContentController
	AdminController   controller.IAdminController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus (in-process email job queue)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	planLocker := lock.NewRedisLocker(rdb)

	// In-memory catalog cache
	catalogCache := memory.NewCatalogCache()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmailTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmailTopic,
		uowFactory,
		emailService,
	)

	userService := service.NewUserService(uowFactory)
	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(uowFactory)

	planService := service.NewPlanService(uowFactory, catalogCache)
	catalogService := service.NewCatalogService(uowFactory)
	contentService := service.NewContentService(uowFactory, catalogCache)
	discountService := service.NewDiscountService(uowFactory)

	subscriptionService := service.NewSubscriptionService(uowFactory, planLocker)
	usageService := service.NewUsageService(uowFactory)
	paymentService := service.NewPaymentService(uowFactory, planLocker, natsPub, publisherService)
	supportService := service.NewSupportService(uowFactory, natsPub, publisherService)

	adminService := service.NewAdminService(uowFactory, subscriptionService, sysLogger)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService),
		UserController: controller.NewUserController(
			userService,
			subscriptionService,
			usageService,
			paymentService,
			supportService,
		),
		PlanController:    controller.NewPlanController(planService, catalogService),
		PaymentController: controller.NewPaymentController(paymentService, discountService),
		ContentController: controller.NewContentController(contentService, supportService),
		AdminController: controller.NewAdminController(
			adminService,
			authService,
			planService,
			discountService,
			paymentService,
			catalogService,
			contentService,
			supportService,
		),

		ConsumerService: consumerService,
	}
}
