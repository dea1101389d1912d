package interaction

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.Comment{},
		&entities.Like{},
		&entities.ViewHistory{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, phone string) *entities.User {
	t.Helper()

	user := &entities.User{
		FullName:     name,
		Phone:        phone,
		Email:        phone + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRecipe(t *testing.T, db *gorm.DB, userID uint, name string) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		UserID:     userID,
		RecipeName: name,
		SearchName: name,
		Image:      "/images/test.jpg",
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestLikeRecipe(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	fan := seedUser(t, db, "Fan", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "liked dish")

	res, err := service.LikeRecipe(ctx, domain.LikeRecipeRequest{UserID: fan.ID, RecipeID: recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	var fresh entities.Recipe
	require.NoError(t, db.First(&fresh, recipe.ID).Error)
	assert.Equal(t, 1, fresh.LikeQuantity)
}

func TestLikeRecipeTwiceRejectsSecond(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	fan := seedUser(t, db, "Fan", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "liked dish")

	req := domain.LikeRecipeRequest{UserID: fan.ID, RecipeID: recipe.ID}
	_, err := service.LikeRecipe(ctx, req)
	require.NoError(t, err)

	_, err = service.LikeRecipe(ctx, req)
	require.ErrorIs(t, err, domain.ErrAlreadyLiked)

	var fresh entities.Recipe
	require.NoError(t, db.First(&fresh, recipe.ID).Error)
	assert.Equal(t, 1, fresh.LikeQuantity)

	var likes int64
	require.NoError(t, db.Model(&entities.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}

func TestLikeRecipeByTwoUsersCountsBoth(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	first := seedUser(t, db, "First Fan", "0822222222")
	second := seedUser(t, db, "Second Fan", "0833333333")
	recipe := seedRecipe(t, db, owner.ID, "popular dish")

	res, err := service.LikeRecipe(ctx, domain.LikeRecipeRequest{UserID: first.ID, RecipeID: recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	res, err = service.LikeRecipe(ctx, domain.LikeRecipeRequest{UserID: second.ID, RecipeID: recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
}

func TestLikeRecipeMissingRecipe(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	fan := seedUser(t, db, "Fan", "0822222222")

	_, err := service.LikeRecipe(context.Background(), domain.LikeRecipeRequest{UserID: fan.ID, RecipeID: 999})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	var likes int64
	require.NoError(t, db.Model(&entities.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(0), likes)
}

func TestAddCommentReturnsThreadOldestFirst(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	commenter := seedUser(t, db, "Commenter", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "discussed dish")

	require.NoError(t, db.Create(&entities.Comment{
		RecipeID:  recipe.ID,
		UserID:    owner.ID,
		Content:   "first!",
		CreatedAt: time.Now().Add(-time.Hour),
	}).Error)

	res, err := service.AddComment(ctx, domain.AddCommentRequest{
		UserID:   commenter.ID,
		RecipeID: recipe.ID,
		Content:  "looks delicious",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Count)
	require.Len(t, res.Comments, 2)
	assert.Equal(t, "first!", res.Comments[0].Content)
	assert.Equal(t, "looks delicious", res.Comments[1].Content)
	assert.Equal(t, "Commenter", res.Comments[1].UserName)
}

func TestAddCommentMissingRecipeInsertsNothing(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	commenter := seedUser(t, db, "Commenter", "0822222222")

	_, err := service.AddComment(context.Background(), domain.AddCommentRequest{
		UserID:   commenter.ID,
		RecipeID: 999,
		Content:  "into the void",
	})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	var comments int64
	require.NoError(t, db.Model(&entities.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)
}

func TestAddCommentBlankContentInsertsNothing(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	commenter := seedUser(t, db, "Commenter", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "dish")

	_, err := service.AddComment(ctx, domain.AddCommentRequest{
		UserID:   commenter.ID,
		RecipeID: recipe.ID,
		Content:  "   \t\n ",
	})
	require.ErrorIs(t, err, domain.ErrCommentEmpty)

	var comments int64
	require.NoError(t, db.Model(&entities.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)
}

func TestAddCommentStoresTrimmedContent(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	commenter := seedUser(t, db, "Commenter", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "dish")

	res, err := service.AddComment(ctx, domain.AddCommentRequest{
		UserID:   commenter.ID,
		RecipeID: recipe.ID,
		Content:  "  great recipe  ",
	})
	require.NoError(t, err)
	require.Len(t, res.Comments, 1)
	assert.Equal(t, "great recipe", res.Comments[0].Content)
}

func TestAddCommentMissingUser(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	owner := seedUser(t, db, "Owner", "0811111111")
	recipe := seedRecipe(t, db, owner.ID, "dish")

	_, err := service.AddComment(context.Background(), domain.AddCommentRequest{
		UserID:   999,
		RecipeID: recipe.ID,
		Content:  "ghost comment",
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIncreaseViewCountReturnsNewValue(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	recipe := seedRecipe(t, db, owner.ID, "viewed dish")

	res, err := service.IncreaseViewCount(ctx, domain.IncreaseViewCountRequest{RecipeID: recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	res, err = service.IncreaseViewCount(ctx, domain.IncreaseViewCountRequest{RecipeID: recipe.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
}

func TestIncreaseViewCountRecordsHistoryForKnownViewer(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))
	ctx := context.Background()

	owner := seedUser(t, db, "Owner", "0811111111")
	viewer := seedUser(t, db, "Viewer", "0822222222")
	recipe := seedRecipe(t, db, owner.ID, "viewed dish")

	_, err := service.IncreaseViewCount(ctx, domain.IncreaseViewCountRequest{RecipeID: recipe.ID, UserID: viewer.ID})
	require.NoError(t, err)

	var history []entities.ViewHistory
	require.NoError(t, db.Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, viewer.ID, history[0].UserID)
	assert.Equal(t, recipe.ID, history[0].RecipeID)

	// anonymous views bump the counter without a history row
	_, err = service.IncreaseViewCount(ctx, domain.IncreaseViewCountRequest{RecipeID: recipe.ID})
	require.NoError(t, err)
	require.NoError(t, db.Find(&history).Error)
	assert.Len(t, history, 1)
}

func TestIncreaseViewCountMissingRecipe(t *testing.T) {
	db := newTestDB(t)
	service := NewInteractionService(NewInteractionRepository(db))

	_, err := service.IncreaseViewCount(context.Background(), domain.IncreaseViewCountRequest{RecipeID: 999})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
