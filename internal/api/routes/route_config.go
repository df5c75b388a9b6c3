package routes

import (
	"pocketsense-backend/internal/api/handlers"
	"pocketsense-backend/internal/middleware"
	"pocketsense-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	StudentHandler    handlers.StudentHandler
	GroupHandler      handlers.GroupHandler
	CategoryHandler   handlers.CategoryHandler
	ExpenseHandler    handlers.ExpenseHandler
	SettlementHandler handlers.SettlementHandler
	AnalysisHandler   handlers.AnalysisHandler
	AuthHandler       handlers.AuthHandler
	MidtransHandler   handlers.MidtransHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Students()
	c.Groups()
	c.Categories()
	c.Expenses()
	c.Settlements()
	c.Analysis()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}

func (c *Config) Auth() {
	token := c.App.Group("/api/token")
	token.Post("", c.AuthHandler.ObtainToken)
	token.Post("/refresh", c.AuthHandler.RefreshToken)
}

func (c *Config) Students() {
	students := c.App.Group("/api/students")
	// registration is open
	students.Post("", c.StudentHandler.CreateStudent)

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	students.Get("", auth, c.StudentHandler.GetStudents)
	students.Get("/:id", auth, c.StudentHandler.GetStudent)
	students.Put("/:id", auth, c.StudentHandler.UpdateStudent)
	students.Patch("/:id", auth, c.StudentHandler.UpdateStudent)
	students.Delete("/:id", auth, c.StudentHandler.DeleteStudent)
}

func (c *Config) Groups() {
	groups := c.App.Group("/api/groups", c.Middleware.AuthMiddleware(c.JWTService))
	groups.Post("", c.GroupHandler.CreateGroup)
	groups.Get("", c.GroupHandler.GetGroups)
	groups.Get("/:id", c.GroupHandler.GetGroup)
	groups.Put("/:id", c.GroupHandler.UpdateGroup)
	groups.Patch("/:id", c.GroupHandler.UpdateGroup)
	groups.Delete("/:id", c.GroupHandler.DeleteGroup)
	groups.Get("/:id/expenses", c.GroupHandler.GetGroupExpenses)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/categories", c.Middleware.AuthMiddleware(c.JWTService))
	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategory)
	categories.Put("/:id", c.CategoryHandler.UpdateCategory)
	categories.Patch("/:id", c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
}

func (c *Config) Expenses() {
	expenses := c.App.Group("/api/expenses", c.Middleware.AuthMiddleware(c.JWTService))
	expenses.Post("", c.ExpenseHandler.CreateExpense)
	expenses.Get("", c.ExpenseHandler.GetExpenses)
	expenses.Get("/:id", c.ExpenseHandler.GetExpense)
	expenses.Put("/:id", c.ExpenseHandler.UpdateExpense)
	expenses.Patch("/:id", c.ExpenseHandler.UpdateExpense)
	expenses.Delete("/:id", c.ExpenseHandler.DeleteExpense)
	expenses.Post("/:id/receipt", c.ExpenseHandler.UploadReceipt)
}

func (c *Config) Settlements() {
	settlements := c.App.Group("/api/settlements", c.Middleware.AuthMiddleware(c.JWTService))
	settlements.Post("", c.SettlementHandler.CreateSettlement)
	settlements.Get("", c.SettlementHandler.GetSettlements)
	settlements.Get("/:id", c.SettlementHandler.GetSettlement)
	settlements.Put("/:id", c.SettlementHandler.UpdateSettlement)
	settlements.Patch("/:id", c.SettlementHandler.UpdateSettlement)
	settlements.Delete("/:id", c.SettlementHandler.DeleteSettlement)
	settlements.Post("/:id/reminder", c.SettlementHandler.SendReminder)
	settlements.Post("/:id/pay", c.MidtransHandler.CreateSettlementPayment)
}

func (c *Config) Analysis() {
	analysis := c.App.Group("/api/analysis", c.Middleware.AuthMiddleware(c.JWTService))
	analysis.Get("/monthly", c.AnalysisHandler.MonthlyAnalysis)
}
