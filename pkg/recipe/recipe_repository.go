package recipe

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"CookShare-Backend/internal/utils"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrendingLimit caps the globally ranked trending list.
const TrendingLimit = 30

type (
	// RecipeRow is one selected recipe joined with its owner's name, before
	// child collections are attached.
	RecipeRow struct {
		RecipeID     uint
		RecipeName   string
		Image        string
		UserName     string
		LikeQuantity int
		ViewCount    int
		CookingTime  int
		Ration       int
		CreatedAt    time.Time
	}

	IngredientRow struct {
		RecipeID       uint
		IngredientID   uint
		IngredientName string
		Weight         int
		Unit           string
	}

	StepRow struct {
		RecipeID  uint
		IndexStep int
		Content   string
	}

	TagRow struct {
		RecipeID uint
		TagID    uint
		TagName  string
	}

	CommentRow struct {
		RecipeID  uint
		CommentID uint
		UserID    uint
		UserName  string
		Content   string
		CreatedAt time.Time
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.CreateRecipeIngredient, steps []string, tags []string) error
		GetAllRecipeRows(ctx context.Context) ([]RecipeRow, error)
		GetRecipeRowByID(ctx context.Context, recipeID uint) (*RecipeRow, error)
		SearchRecipeRows(ctx context.Context, foldedName string) ([]RecipeRow, error)
		SearchRecipeRowsByTag(ctx context.Context, foldedTag string) ([]RecipeRow, error)
		GetTrendingRecipeRows(ctx context.Context, limit int) ([]RecipeRow, error)
		GetRecipeRowsByUser(ctx context.Context, userID uint) ([]RecipeRow, error)

		GetStepsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]StepRow, error)
		GetIngredientsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]IngredientRow, error)
		GetTagsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]TagRow, error)
		GetCommentsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]CommentRow, error)
		GetLikedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) ([]uint, error)

		GetAllIngredients(ctx context.Context) ([]domain.IngredientInfo, error)
		GetAllTags(ctx context.Context) ([]domain.Tag, error)
		GetRecipeGrowthByMonth(ctx context.Context) ([]domain.MonthlyGrowth, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

const recipeRowSelect = "recipes.id AS recipe_id, recipes.recipe_name, recipes.image, " +
	"users.full_name AS user_name, recipes.like_quantity, recipes.view_count, " +
	"recipes.cooking_time, recipes.ration, recipes.created_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring LIKE pattern with needle wildcards escaped,
// so "100%" matches the literal text rather than everything.
func likePattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

// CreateRecipe runs the whole create workflow in one transaction: recipe row,
// owner recipe_count bump, ingredient upserts + associations, dense-indexed
// steps, tag upserts + associations. Any failure rolls everything back.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.CreateRecipeIngredient, steps []string, tags []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		res := tx.Model(&entities.User{}).
			Where("id = ?", recipe.UserID).
			UpdateColumn("recipe_count", gorm.Expr("recipe_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		for _, ing := range ingredients {
			ingredientID, err := upsertIngredient(tx, ing.IngredientName)
			if err != nil {
				return err
			}
			association := entities.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredientID,
				Weight:       ing.Weight,
				Unit:         ing.Unit,
			}
			if err := tx.Create(&association).Error; err != nil {
				return err
			}
		}

		for i, content := range steps {
			step := entities.CookingStep{
				RecipeID:  recipe.ID,
				IndexStep: i + 1,
				Content:   content,
			}
			if err := tx.Create(&step).Error; err != nil {
				return err
			}
		}

		for _, tagName := range tags {
			tagID, err := upsertTag(tx, tagName)
			if err != nil {
				return err
			}
			if err := tx.Create(&entities.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// upsertIngredient resolves an ingredient id by exact name, inserting the row
// when absent. The conditional insert keeps concurrent creates of the same new
// name race-safe; the loser of the conflict re-selects the winner's id.
func upsertIngredient(tx *gorm.DB, name string) (uint, error) {
	ingredient := entities.Ingredient{IngredientName: name}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_name"}},
		DoNothing: true,
	}).Create(&ingredient).Error
	if err != nil {
		return 0, err
	}
	if ingredient.ID != 0 {
		return ingredient.ID, nil
	}
	if err := tx.Where("ingredient_name = ?", name).First(&ingredient).Error; err != nil {
		return 0, err
	}
	return ingredient.ID, nil
}

func upsertTag(tx *gorm.DB, name string) (uint, error) {
	tag := entities.Tag{TagName: name, SearchName: utils.FoldSearch(name)}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag_name"}},
		DoNothing: true,
	}).Create(&tag).Error
	if err != nil {
		return 0, err
	}
	if tag.ID != 0 {
		return tag.ID, nil
	}
	if err := tx.Where("tag_name = ?", name).First(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}

func (r *recipeRepository) GetAllRecipeRows(ctx context.Context) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.id").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetRecipeRowByID(ctx context.Context, recipeID uint) (*RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.id = ?", recipeID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &rows[0], nil
}

func (r *recipeRepository) SearchRecipeRows(ctx context.Context, foldedName string) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Where(`recipes.search_name LIKE ? ESCAPE '\'`, likePattern(foldedName)).
		Order("recipes.view_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) SearchRecipeRowsByTag(ctx context.Context, foldedTag string) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("DISTINCT "+recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where(`tags.search_name LIKE ? ESCAPE '\'`, likePattern(foldedTag)).
		Order("recipes.view_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetTrendingRecipeRows(ctx context.Context, limit int) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.view_count DESC, recipes.id").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetRecipeRowsByUser(ctx context.Context, userID uint) ([]RecipeRow, error) {
	var rows []RecipeRow
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(recipeRowSelect).
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.user_id = ?", userID).
		Order("recipes.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetStepsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]StepRow, error) {
	var rows []StepRow
	err := r.db.WithContext(ctx).
		Model(&entities.CookingStep{}).
		Select("recipe_id, index_step, content").
		Where("recipe_id IN ?", recipeIDs).
		Order("recipe_id, index_step").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetIngredientsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]IngredientRow, error) {
	var rows []IngredientRow
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id, ingredients.id AS ingredient_id, ingredients.ingredient_name, recipe_ingredients.weight, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Order("recipe_ingredients.recipe_id, recipe_ingredients.ingredient_id").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetTagsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]TagRow, error) {
	var rows []TagRow
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeTag{}).
		Select("recipe_tags.recipe_id, tags.id AS tag_id, tags.tag_name").
		Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
		Where("recipe_tags.recipe_id IN ?", recipeIDs).
		Order("recipe_tags.recipe_id, recipe_tags.tag_id").
		Scan(&rows).Error
	return rows, err
}

// GetCommentsByRecipeIDs returns comments newest-first, the order browsing
// views render them in.
func (r *recipeRepository) GetCommentsByRecipeIDs(ctx context.Context, recipeIDs []uint) ([]CommentRow, error) {
	var rows []CommentRow
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Select("comments.recipe_id, comments.id AS comment_id, comments.user_id, users.full_name AS user_name, comments.content, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.recipe_id IN ?", recipeIDs).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetLikedRecipeIDs(ctx context.Context, userID uint, recipeIDs []uint) ([]uint, error) {
	var liked []uint
	err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &liked).Error
	return liked, err
}

func (r *recipeRepository) GetAllIngredients(ctx context.Context) ([]domain.IngredientInfo, error) {
	var rows []domain.IngredientInfo
	err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Select("id AS ingredient_id, ingredient_name").
		Order("ingredient_name").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetAllTags(ctx context.Context) ([]domain.Tag, error) {
	var rows []domain.Tag
	err := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Select("id AS tag_id, tag_name").
		Order("tag_name").
		Scan(&rows).Error
	return rows, err
}

func (r *recipeRepository) GetRecipeGrowthByMonth(ctx context.Context) ([]domain.MonthlyGrowth, error) {
	monthExpr := "TO_CHAR(created_at, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', created_at)"
	}

	var rows []domain.MonthlyGrowth
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select(monthExpr + " AS month, COUNT(*) AS recipe_count").
		Group(monthExpr).
		Order("month").
		Scan(&rows).Error
	return rows, err
}
