package entities

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"user_id"`
	FullName     string `json:"full_name"`
	Phone        string `gorm:"uniqueIndex" json:"phone"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RecipeCount  int    `json:"recipe_count"`

	Timestamp
}
