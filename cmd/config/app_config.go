package config

import (
	"os"
	"time"

	"jobcost-backend/internal/api/handlers"
	"jobcost-backend/internal/api/routes"
	"jobcost-backend/internal/middleware"
	"jobcost-backend/internal/utils"
	"jobcost-backend/internal/utils/storage"
	"jobcost-backend/pkg/expense"
	"jobcost-backend/pkg/hours"
	"jobcost-backend/pkg/jwt"
	"jobcost-backend/pkg/mileage"
	"jobcost-backend/pkg/project"
	"jobcost-backend/pkg/receipt"
	"jobcost-backend/pkg/user"

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	analyzer := receipt.NewGeminiAnalyzer(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	projectRepository := project.NewProjectRepository(db)
	expenseRepository := expense.NewExpenseRepository(db)
	hoursRepository := hours.NewHoursRepository(db)
	mileageRepository := mileage.NewMileageRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	projectService := project.NewProjectService(projectRepository)
	expenseService := expense.NewExpenseService(expenseRepository, projectRepository)
	hoursService := hours.NewHoursService(hoursRepository, projectRepository)
	mileageService := mileage.NewMileageService(mileageRepository, projectRepository)
	receiptService := receipt.NewReceiptService(
		receiptRepository,
		projectRepository,
		s3,
		analyzer,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	projectHandler := handlers.NewProjectHandler(projectService, validator)
	expenseHandler := handlers.NewExpenseHandler(expenseService, validator)
	trackingHandler := handlers.NewTrackingHandler(hoursService, mileageService, validator)
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ProjectHandler:  projectHandler,
		ExpenseHandler:  expenseHandler,
		TrackingHandler: trackingHandler,
		ReceiptHandler:  receiptHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
