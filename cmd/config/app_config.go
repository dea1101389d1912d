package config

import (
	"CookShare-Backend/internal/api/handlers"
	"CookShare-Backend/internal/api/routes"
	"CookShare-Backend/internal/middleware"
	"CookShare-Backend/internal/utils"
	"CookShare-Backend/internal/utils/storage"
	"CookShare-Backend/pkg/interaction"
	"CookShare-Backend/pkg/jwt"
	"CookShare-Backend/pkg/recipe"
	"CookShare-Backend/pkg/user"
	"os"
	"time"

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
		BodyLimit:         storage.MaxImageSize,
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

	// image storage backend: local disk serves /images itself, S3 returns
	// public links
	assetsDir := utils.GetConfig("ASSETS_DIR")
	var imageStorage storage.ImageStorage
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		imageStorage = storage.NewAwsS3()
	} else {
		imageStorage = storage.NewLocalStorage(assetsDir)
		app.Static("/images", assetsDir+"/images")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository)
	interactionService := interaction.NewInteractionService(interactionRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, imageStorage, validator)
	interactionHandler := handlers.NewInteractionHandler(interactionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RecipeHandler:      recipeHandler,
		InteractionHandler: interactionHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
