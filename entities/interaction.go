package entities

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"comment_id"`
	RecipeID  uint      `json:"recipe_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `gorm:"type:varchar(1500)" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

// Like existence is boolean, at most one row per (user, recipe).
type Like struct {
	UserID   uint `gorm:"primaryKey" json:"user_id"`
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type ViewHistory struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint      `json:"user_id"`
	RecipeID uint      `json:"recipe_id"`
	ViewedAt time.Time `gorm:"type:timestamp" json:"viewed_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
