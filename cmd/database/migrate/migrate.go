package migration

import (
	"CookShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.RecipeIngredient{},
		&entities.CookingStep{},
		&entities.Tag{},
		&entities.RecipeTag{},
		&entities.Comment{},
		&entities.Like{},
		&entities.ViewHistory{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
