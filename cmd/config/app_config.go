package config

import (
	"context"
	"os"
	"time"

	"foodkeeper-backend/internal/api/handlers"
	"foodkeeper-backend/internal/api/routes"
	"foodkeeper-backend/internal/middleware"
	"foodkeeper-backend/internal/utils"
	"foodkeeper-backend/internal/utils/storage"
	"foodkeeper-backend/pkg/food"
	"foodkeeper-backend/pkg/group"
	"foodkeeper-backend/pkg/jwt"
	"foodkeeper-backend/pkg/notification"
	"foodkeeper-backend/pkg/recipe"
	"foodkeeper-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	groupRepository := group.NewGroupRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Notification pipeline. The alarm port calls back into the delivery
	// service, which only depends on repositories, so the chain has no cycle.
	notifier := buildNotifier(userRepository)
	deliveryService := notification.NewDeliveryService(
		foodRepository,
		notificationRepository,
		notifier,
	)
	alarmPort := notification.NewTimerAlarmPort(func(key notification.AlarmKey) {
		if err := deliveryService.HandleFired(context.Background(), key); err != nil {
			log.Errorf("alarm delivery failed for food %s: %v", key.FoodID, err)
		}
	})
	schedulerService := notification.NewSchedulerService(
		notificationRepository,
		foodRepository,
		alarmPort,
	)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, schedulerService, s3)
	groupService := group.NewGroupService(groupRepository, foodRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository)
	queryService := notification.NewQueryService(notificationRepository, foodRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	groupHandler := handlers.NewGroupHandler(groupService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(queryService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		GroupHandler:        groupHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	// Re-arm alarms for everything still pending. Process restarts lose the
	// in-memory timers, the records in the database do not.
	go func() {
		if err := schedulerService.RescheduleAll(context.Background()); err != nil {
			log.Errorf("rescheduling pending notifications failed: %v", err)
		}
	}()

	return app, nil
}

func buildNotifier(userRepository user.UserRepository) notification.Notifier {
	var channels []notification.Notifier

	if credentials := utils.GetConfig("FCM_CREDENTIALS"); credentials != "" {
		fcm, err := notification.NewFCMNotifier(credentials, userRepository)
		if err != nil {
			log.Errorf("firebase messaging unavailable: %v", err)
		} else {
			channels = append(channels, fcm)
		}
	}
	if utils.GetConfig("MAIL_NOTIFY") == "true" {
		channels = append(channels, notification.NewMailNotifier(userRepository))
	}

	return notification.NewMultiNotifier(channels...)
}
