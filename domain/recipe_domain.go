package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes     = "success get recipes"
	MessageSuccessCreateRecipe   = "Recipe created successfully"
	MessageSuccessSearchRecipes  = "success search recipes"
	MessageSuccessGetTrending    = "success get trending recipes"
	MessageSuccessGetIngredients = "success get ingredients"
	MessageSuccessGetTags        = "success get tags"
	MessageSuccessGetGrowth      = "success get recipe growth report"

	MessageFailedGetRecipes     = "failed to get recipes"
	MessageFailedCreateRecipe   = "failed to create recipe"
	MessageFailedSearchRecipes  = "failed to search recipes"
	MessageFailedGetTrending    = "failed to get trending recipes"
	MessageFailedGetIngredients = "failed to get ingredients"
	MessageFailedGetTags        = "failed to get tags"
	MessageFailedGetGrowth      = "failed to get recipe growth report"
	MessageFailedUploadImage    = "failed to store recipe image"

	ErrCreateRecipeFailed = errors.New("failed to create recipe")
	ErrImageRequired      = errors.New("image is required")
	ErrNoIngredients      = errors.New("ingredients must be a non-empty array")
	ErrNoCookingSteps     = errors.New("cooking steps must be a non-empty array")
)

type (
	CreateRecipeRequest struct {
		RecipeName   string                   `json:"recipeName" validate:"required"`
		CookingTime  int                      `json:"cookingTime" validate:"required,gt=0"`
		Ration       int                      `json:"ration" validate:"required,gt=0"`
		UserID       uint                     `json:"userId" validate:"required,gt=0"`
		ImagePath    string                   `json:"-" validate:"required"`
		Ingredients  []CreateRecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
		CookingSteps []CreateRecipeStep       `json:"cookingSteps" validate:"required,min=1,dive"`
		Tags         []CreateRecipeTag        `json:"tags" validate:"dive"`
	}

	CreateRecipeIngredient struct {
		IngredientName string `json:"ingredientName" validate:"required"`
		Weight         int    `json:"weight" validate:"required,gt=0"`
		Unit           string `json:"unit" validate:"required"`
	}

	CreateRecipeStep struct {
		Content string `json:"content" validate:"required"`
	}

	CreateRecipeTag struct {
		TagName string `json:"tagName" validate:"required"`
	}

	SearchRecipeRequest struct {
		RecipeName string `json:"recipeName" validate:"required"`
		UserID     uint   `json:"userId" validate:"omitempty,gt=0"`
	}

	SearchByTagRequest struct {
		TagName string `json:"tagName" validate:"required"`
		UserID  uint   `json:"userId" validate:"omitempty,gt=0"`
	}

	RecipesByUserRequest struct {
		UserID uint `json:"userId" validate:"required,gt=0"`
	}

	// Recipe is the fully aggregated nested form assembled from the
	// normalized tables.
	Recipe struct {
		RecipeID     uint               `json:"recipeId"`
		RecipeName   string             `json:"recipeName"`
		Image        string             `json:"image"`
		UserName     string             `json:"userName"`
		LikeQuantity int                `json:"likeQuantity"`
		ViewCount    int                `json:"viewCount"`
		CookingTime  int                `json:"cookingTime"`
		Ration       int                `json:"ration"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		CookingSteps []CookingStep      `json:"cookingSteps"`
		Comments     []Comment          `json:"comments"`
		Tags         []Tag              `json:"tags"`
		IsLiked      bool               `json:"isLiked"`
		CreatedAt    time.Time          `json:"createdAt"`
	}

	RecipeIngredient struct {
		IngredientID   uint   `json:"ingredientId"`
		IngredientName string `json:"ingredientName"`
		Weight         int    `json:"weight"`
		Unit           string `json:"unit"`
	}

	CookingStep struct {
		IndexStep   int    `json:"indexStep"`
		StepContent string `json:"stepContent"`
	}

	Comment struct {
		CommentID uint      `json:"commentId"`
		UserID    uint      `json:"userId"`
		UserName  string    `json:"userName"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"createdAt"`
	}

	Tag struct {
		TagID   uint   `json:"tagId"`
		TagName string `json:"tagName"`
	}

	IngredientInfo struct {
		IngredientID   uint   `json:"ingredientId"`
		IngredientName string `json:"ingredientName"`
	}

	MonthlyGrowth struct {
		Month       string `json:"month"`
		RecipeCount int    `json:"recipeCount"`
	}
)
