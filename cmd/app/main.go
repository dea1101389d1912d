package main

import (
	"CookShare-Backend/cmd/config"
	migration "CookShare-Backend/cmd/database/migrate"
	"CookShare-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("error getting database pool: %v", err)
	}
	defer sqlDB.Close()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
