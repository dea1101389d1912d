package entities

type Recipe struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"recipe_id"`
	UserID       uint   `json:"user_id"`
	RecipeName   string `json:"recipe_name"`
	SearchName   string `gorm:"index" json:"-"` // folded lowercase form of RecipeName
	Image        string `json:"image,omitempty"`
	CookingTime  int    `json:"cooking_time"`
	Ration       int    `json:"ration"`
	ViewCount    int    `json:"view_count"`
	LikeQuantity int    `json:"like_quantity"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Ingredient struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"ingredient_id"`
	IngredientName string `gorm:"uniqueIndex" json:"ingredient_name"`
}

// RecipeIngredient carries the per-recipe weight/unit of a shared ingredient.
type RecipeIngredient struct {
	RecipeID     uint   `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint   `gorm:"primaryKey" json:"ingredient_id"`
	Weight       int    `json:"weight"`
	Unit         string `json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

type CookingStep struct {
	RecipeID  uint   `gorm:"primaryKey" json:"recipe_id"`
	IndexStep int    `gorm:"primaryKey;autoIncrement:false" json:"index_step"` // 1-based, dense per recipe
	Content   string `gorm:"type:text" json:"content"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type Tag struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"tag_id"`
	TagName    string `gorm:"uniqueIndex" json:"tag_name"`
	SearchName string `gorm:"index" json:"-"`
}

type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey" json:"tag_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Tag    *Tag    `gorm:"foreignKey:TagID"`
}
