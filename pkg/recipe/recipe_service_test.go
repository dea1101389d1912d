package recipe

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"context"
	"fmt"
	"testing"

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
		&entities.Ingredient{},
		&entities.RecipeIngredient{},
		&entities.CookingStep{},
		&entities.Tag{},
		&entities.RecipeTag{},
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

func createRecipeReq(userID uint, name string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		RecipeName:  name,
		CookingTime: 45,
		Ration:      2,
		UserID:      userID,
		ImagePath:   "/images/test.jpg",
		Ingredients: []domain.CreateRecipeIngredient{
			{IngredientName: "tomato", Weight: 200, Unit: "gram"},
			{IngredientName: "onion", Weight: 50, Unit: "gram"},
		},
		CookingSteps: []domain.CreateRecipeStep{
			{Content: "Chop everything."},
			{Content: "Simmer for 30 minutes."},
		},
		Tags: []domain.CreateRecipeTag{
			{TagName: "vegan"},
		},
	}
}

func TestCreateRecipeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Alice Smith", "0811111111")

	recipeID, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "spicy tomato soup"))
	require.NoError(t, err)
	require.NotZero(t, recipeID)

	got, err := service.GetRecipeByID(ctx, recipeID, 0)
	require.NoError(t, err)

	assert.Equal(t, "spicy tomato soup", got.RecipeName)
	assert.Equal(t, "Alice Smith", got.UserName)
	assert.Equal(t, 0, got.LikeQuantity)
	assert.Equal(t, 0, got.ViewCount)
	assert.False(t, got.IsLiked)

	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "Tomato", got.Ingredients[0].IngredientName)
	assert.Equal(t, "Gram", got.Ingredients[0].Unit)

	require.Len(t, got.CookingSteps, 2)
	assert.Equal(t, 1, got.CookingSteps[0].IndexStep)
	assert.Equal(t, 2, got.CookingSteps[1].IndexStep)
	assert.Equal(t, "Chop everything.", got.CookingSteps[0].StepContent)

	require.Len(t, got.Tags, 1)
	assert.Equal(t, "Vegan", got.Tags[0].TagName)

	assert.NotNil(t, got.Comments)
	assert.Len(t, got.Comments, 0)
}

func TestCreateRecipeBumpsOwnerRecipeCount(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Bob", "0822222222")

	_, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "first dish"))
	require.NoError(t, err)
	_, err = service.CreateRecipe(ctx, createRecipeReq(user.ID, "second dish"))
	require.NoError(t, err)

	var fresh entities.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 2, fresh.RecipeCount)
}

func TestCreateRecipeReusesIngredientAndTagIDs(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Carol", "0833333333")

	firstID, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "soup one"))
	require.NoError(t, err)
	secondID, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "soup two"))
	require.NoError(t, err)

	first, err := service.GetRecipeByID(ctx, firstID, 0)
	require.NoError(t, err)
	second, err := service.GetRecipeByID(ctx, secondID, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Ingredients[0].IngredientID, second.Ingredients[0].IngredientID)
	assert.Equal(t, first.Tags[0].TagID, second.Tags[0].TagID)

	var ingredientCount int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredientCount).Error)
	assert.Equal(t, int64(2), ingredientCount)

	var tagCount int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestCreateRecipeMissingUserRollsBack(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	_, err := service.CreateRecipe(ctx, createRecipeReq(999, "orphan dish"))
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	var recipeCount int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(0), recipeCount)

	var stepCount int64
	require.NoError(t, db.Model(&entities.CookingStep{}).Count(&stepCount).Error)
	assert.Equal(t, int64(0), stepCount)
}

func TestSearchRecipesEmptyResult(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	got, err := service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "nothing here"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestSearchRecipesIgnoresDiacriticsAndCase(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Duc", "0844444444")

	_, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "Phở Bò Đặc Biệt"))
	require.NoError(t, err)

	got, err := service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "pho bo"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Phở Bò Đặc Biệt", got[0].RecipeName)

	got, err = service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "DAC BIET"})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSearchRecipesTreatsWildcardsAsLiterals(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Judy", "0810101010")

	_, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "100% Whole Wheat Bread"))
	require.NoError(t, err)
	_, err = service.CreateRecipe(ctx, createRecipeReq(user.ID, "Plain Loaf"))
	require.NoError(t, err)

	got, err := service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "100%"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% Whole Wheat Bread", got[0].RecipeName)

	// a bare % must not match everything
	got, err = service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "%"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = service.SearchRecipes(ctx, domain.SearchRecipeRequest{RecipeName: "w_ole"})
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestSearchRecipesByTag(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Eve", "0855555555")

	_, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "green salad"))
	require.NoError(t, err)

	other := createRecipeReq(user.ID, "beef stew")
	other.Tags = []domain.CreateRecipeTag{{TagName: "hearty"}}
	_, err = service.CreateRecipe(ctx, other)
	require.NoError(t, err)

	got, err := service.SearchRecipesByTag(ctx, domain.SearchByTagRequest{TagName: "vegan"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "green salad", got[0].RecipeName)
}

func TestGetTopTrendingOrdersByViewCount(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Frank", "0866666666")

	coldID, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "cold dish"))
	require.NoError(t, err)
	hotID, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "hot dish"))
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.Recipe{}).Where("id = ?", hotID).
		UpdateColumn("view_count", 10).Error)
	require.NoError(t, db.Model(&entities.Recipe{}).Where("id = ?", coldID).
		UpdateColumn("view_count", 3).Error)

	got, err := service.GetTopTrending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, hotID, got[0].RecipeID)
	assert.Equal(t, coldID, got[1].RecipeID)
}

func TestGetAllRecipesIsLikedPerViewer(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "Grace", "0877777777")
	fan := seedUser(t, db, "Heidi", "0888888888")

	recipeID, err := service.CreateRecipe(ctx, createRecipeReq(owner.ID, "liked dish"))
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.Like{UserID: fan.ID, RecipeID: recipeID}).Error)

	asFan, err := service.GetAllRecipes(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, asFan, 1)
	assert.True(t, asFan[0].IsLiked)

	asOwner, err := service.GetAllRecipes(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, asOwner[0].IsLiked)

	asGuest, err := service.GetAllRecipes(ctx, 0)
	require.NoError(t, err)
	assert.False(t, asGuest[0].IsLiked)
}

func TestGetAllIngredientsAndTags(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "Ivan", "0899999999")

	_, err := service.CreateRecipe(ctx, createRecipeReq(user.ID, "plain dish"))
	require.NoError(t, err)

	ingredients, err := service.GetAllIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Onion", ingredients[0].IngredientName)
	assert.Equal(t, "Tomato", ingredients[1].IngredientName)

	tags, err := service.GetAllTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Vegan", tags[0].TagName)
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewRecipeService(NewRecipeRepository(db))

	_, err := service.GetRecipeByID(context.Background(), 12345, 0)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
