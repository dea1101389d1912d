package domain

import (
	"errors"
)

var (
	MessageSuccessLikeRecipe   = "Recipe liked successfully"
	MessageSuccessAddComment   = "Comment added successfully"
	MessageSuccessIncreaseView = "Increase view count successfully"

	MessageAlreadyLiked       = "User has already liked this recipe"
	MessageRecipeNotFound     = "Recipe not found"
	MessageFailedLikeRecipe   = "failed to like recipe"
	MessageFailedAddComment   = "failed to add comment"
	MessageFailedIncreaseView = "failed to increase view count"

	ErrAlreadyLiked = errors.New("user has already liked this recipe")
	ErrCommentEmpty = errors.New("comment content must not be blank")
)

type (
	LikeRecipeRequest struct {
		UserID   uint `json:"userId" validate:"required,gt=0"`
		RecipeID uint `json:"recipeId" validate:"required,gt=0"`
	}

	LikeRecipeResponse struct {
		Count int `json:"count"`
	}

	AddCommentRequest struct {
		UserID   uint   `json:"userId" validate:"required,gt=0"`
		RecipeID uint   `json:"recipeId" validate:"required,gt=0"`
		Content  string `json:"content" validate:"required,max=1500"`
	}

	AddCommentResponse struct {
		Count    int64     `json:"count"`
		Comments []Comment `json:"comments"`
	}

	IncreaseViewCountRequest struct {
		RecipeID uint `json:"recipeId" validate:"required,gt=0"`
		UserID   uint `json:"userId" validate:"omitempty,gt=0"`
	}

	IncreaseViewCountResponse struct {
		Count int `json:"count"`
	}
)
