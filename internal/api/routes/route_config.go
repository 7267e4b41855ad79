package routes

import (
	"jobcost-backend/internal/api/handlers"
	"jobcost-backend/internal/middleware"
	"jobcost-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ProjectHandler  handlers.ProjectHandler
	ExpenseHandler  handlers.ExpenseHandler
	TrackingHandler handlers.TrackingHandler
	ReceiptHandler  handlers.ReceiptHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Projects()
	c.Expenses()
	c.Tracking()
	c.Receipts()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Projects() {
	projects := c.App.Group("/api/v1/projects", c.Middleware.AuthMiddleware(c.JWTService))

	projects.Post("", c.ProjectHandler.CreateProject)
	projects.Get("", c.ProjectHandler.GetProjects)
	projects.Get("/:id", c.ProjectHandler.GetProjectDetails)
	projects.Put("/:id", c.ProjectHandler.UpdateProject)
	projects.Delete("/:id", c.ProjectHandler.DeleteProject)
}

func (c *Config) Expenses() {
	expenses := c.App.Group("/api/v1/expenses", c.Middleware.AuthMiddleware(c.JWTService))

	expenses.Post("", c.ExpenseHandler.CreateExpense)
	expenses.Get("", c.ExpenseHandler.GetExpenses)
	expenses.Get("/:id", c.ExpenseHandler.GetExpenseDetails)
	expenses.Put("/:id", c.ExpenseHandler.UpdateExpense)
	expenses.Delete("/:id", c.ExpenseHandler.DeleteExpense)
}

func (c *Config) Tracking() {
	hours := c.App.Group("/api/v1/hours", c.Middleware.AuthMiddleware(c.JWTService))

	hours.Post("", c.TrackingHandler.CreateHoursEntry)
	hours.Get("", c.TrackingHandler.GetHoursEntries)
	hours.Delete("/:id", c.TrackingHandler.DeleteHoursEntry)

	mileage := c.App.Group("/api/v1/mileage", c.Middleware.AuthMiddleware(c.JWTService))

	mileage.Post("", c.TrackingHandler.CreateMileageEntry)
	mileage.Get("", c.TrackingHandler.GetMileageEntries)
	mileage.Delete("/:id", c.TrackingHandler.DeleteMileageEntry)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts", c.Middleware.AuthMiddleware(c.JWTService))

	receipts.Post("", c.ReceiptHandler.UploadReceipt)
	receipts.Get("", c.ReceiptHandler.GetReceipts)
	receipts.Get("/:id", c.ReceiptHandler.GetReceiptDetails)
	receipts.Post("/analyze", c.ReceiptHandler.AnalyzeReceipt)
	receipts.Get("/:id/analysis", c.ReceiptHandler.GetReceiptAnalysis)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
