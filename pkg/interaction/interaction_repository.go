package interaction

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InteractionRepository interface {
		LikeRecipe(ctx context.Context, userID uint, recipeID uint) (int, error)
		AddComment(ctx context.Context, comment *entities.Comment) (int64, []domain.Comment, error)
		IncreaseViewCount(ctx context.Context, recipeID uint, userID uint) (int, error)
	}

	interactionRepository struct {
		db *gorm.DB
	}
)

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// LikeRecipe records the like and bumps the recipe counter inside one
// transaction, returning the counter the increment produced. A repeated like
// by the same user leaves both tables untouched.
func (r *interactionRepository) LikeRecipe(ctx context.Context, userID uint, recipeID uint) (int, error) {
	var likeQuantity int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&entities.Like{}).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.ErrAlreadyLiked
		}

		if err := tx.Create(&entities.Like{UserID: userID, RecipeID: recipeID}).Error; err != nil {
			return err
		}

		var recipe entities.Recipe
		result := tx.Model(&recipe).
			Clauses(clause.Returning{Columns: []clause.Column{{Name: "like_quantity"}}}).
			Where("id = ?", recipeID).
			UpdateColumn("like_quantity", gorm.Expr("like_quantity + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}

		likeQuantity = recipe.LikeQuantity
		return nil
	})
	if err != nil {
		return 0, err
	}

	return likeQuantity, nil
}

// AddComment verifies both sides of the relation before inserting, then
// returns the recipe's total comment count alongside the full thread in
// posting order.
func (r *interactionRepository) AddComment(ctx context.Context, comment *entities.Comment) (int64, []domain.Comment, error) {
	var (
		total  int64
		thread []domain.Comment
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userCount int64
		if err := tx.Model(&entities.User{}).
			Where("id = ?", comment.UserID).
			Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			return domain.ErrUserNotFound
		}

		var recipeCount int64
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", comment.RecipeID).
			Count(&recipeCount).Error; err != nil {
			return err
		}
		if recipeCount == 0 {
			return domain.ErrRecipeNotFound
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Comment{}).
			Where("recipe_id = ?", comment.RecipeID).
			Count(&total).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Comment{}).
			Select("comments.id AS comment_id, comments.user_id, users.full_name AS user_name, comments.content, comments.created_at").
			Joins("JOIN users ON users.id = comments.user_id").
			Where("comments.recipe_id = ?", comment.RecipeID).
			Order("comments.created_at ASC").
			Scan(&thread).Error
	})
	if err != nil {
		return 0, nil, err
	}

	return total, thread, nil
}

// IncreaseViewCount atomically increments and reads back the counter in one
// statement. When a logged-in viewer is known, the view is also appended to
// their history; a failure there never undoes the increment.
func (r *interactionRepository) IncreaseViewCount(ctx context.Context, recipeID uint, userID uint) (int, error) {
	var recipe entities.Recipe
	result := r.db.WithContext(ctx).Model(&recipe).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "view_count"}}}).
		Where("id = ?", recipeID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domain.ErrRecipeNotFound
	}

	if userID > 0 {
		r.db.WithContext(ctx).Create(&entities.ViewHistory{
			UserID:   userID,
			RecipeID: recipeID,
			ViewedAt: time.Now(),
		})
	}

	return recipe.ViewCount, nil
}
