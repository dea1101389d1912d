package routes

import (
	"CookShare-Backend/internal/api/handlers"
	"CookShare-Backend/internal/middleware"
	"CookShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RecipeHandler      handlers.RecipeHandler
	InteractionHandler handlers.InteractionHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Interactions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/change-password", c.UserHandler.ChangePassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/view-history", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetViewHistory)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/all", c.RecipeHandler.GetAllRecipes)
		recipes.Get("/top-trending", c.RecipeHandler.GetTopTrending)
		recipes.Get("/ingredients", c.RecipeHandler.GetAllIngredients)
		recipes.Get("/tags", c.RecipeHandler.GetAllTags)
		recipes.Get("/growth", c.RecipeHandler.GetRecipeGrowth)
		recipes.Post("/create", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Post("/search", c.RecipeHandler.SearchRecipes)
		recipes.Post("/search-by-tag", c.RecipeHandler.SearchRecipesByTag)
		recipes.Post("/by-user", c.RecipeHandler.GetRecipesByUser)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
	}
}

func (c *Config) Interactions() {
	interactions := c.App.Group("/api/interactions")
	{
		interactions.Post("/like", c.Middleware.AuthMiddleware(c.JWTService), c.InteractionHandler.LikeRecipe)
		interactions.Post("/comment", c.Middleware.AuthMiddleware(c.JWTService), c.InteractionHandler.AddComment)
		interactions.Post("/view", c.InteractionHandler.IncreaseViewCount)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
