package routes

import (
	"foodkeeper-backend/internal/api/handlers"
	"foodkeeper-backend/internal/middleware"
	"foodkeeper-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	GroupHandler        handlers.GroupHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.FoodGroups()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/device-token", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.RegisterDeviceToken)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// Special operations
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
	foodItems.Get("/:id/notification", c.NotificationHandler.GetSchedule)
}

func (c *Config) FoodGroups() {
	groups := c.App.Group("/api/v1/food-groups", c.Middleware.AuthMiddleware(c.JWTService))

	groups.Post("", c.GroupHandler.AddFoodGroup)
	groups.Get("", c.GroupHandler.GetFoodGroups)
	groups.Put("/:id", c.GroupHandler.UpdateFoodGroup)
	groups.Delete("/:id", c.GroupHandler.DeleteFoodGroup)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
