package recipe

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"CookShare-Backend/internal/utils"
	"context"
	"log"
	"strings"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error)
		GetAllRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, recipeID uint, userID uint) (domain.Recipe, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipeRequest) ([]domain.Recipe, error)
		SearchRecipesByTag(ctx context.Context, req domain.SearchByTagRequest) ([]domain.Recipe, error)
		GetTopTrending(ctx context.Context, userID uint) ([]domain.Recipe, error)
		GetRecipesByUser(ctx context.Context, req domain.RecipesByUserRequest) ([]domain.Recipe, error)
		GetAllIngredients(ctx context.Context) ([]domain.IngredientInfo, error)
		GetAllTags(ctx context.Context) ([]domain.Tag, error)
		GetRecipeGrowthByMonth(ctx context.Context) ([]domain.MonthlyGrowth, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

// CreateRecipe canonicalizes ingredient/tag names to title case and hands the
// whole workflow to one repository transaction. The original failure is
// logged; callers only see a generic creation error.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error) {
	if len(req.Ingredients) == 0 {
		return 0, domain.ErrNoIngredients
	}
	if len(req.CookingSteps) == 0 {
		return 0, domain.ErrNoCookingSteps
	}
	if req.ImagePath == "" {
		return 0, domain.ErrImageRequired
	}

	ingredients := make([]domain.CreateRecipeIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, domain.CreateRecipeIngredient{
			IngredientName: utils.TitleCase(ing.IngredientName),
			Weight:         ing.Weight,
			Unit:           utils.TitleCase(ing.Unit),
		})
	}

	steps := make([]string, 0, len(req.CookingSteps))
	for _, step := range req.CookingSteps {
		steps = append(steps, step.Content)
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tags = append(tags, utils.TitleCase(tag.TagName))
	}

	recipe := &entities.Recipe{
		UserID:       req.UserID,
		RecipeName:   req.RecipeName,
		SearchName:   utils.FoldSearch(req.RecipeName),
		Image:        req.ImagePath,
		CookingTime:  req.CookingTime,
		Ration:       req.Ration,
		ViewCount:    0,
		LikeQuantity: 0,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, ingredients, steps, tags); err != nil {
		if err == domain.ErrUserNotFound {
			return 0, err
		}
		log.Printf("error creating recipe: %v", err)
		return 0, domain.ErrCreateRecipeFailed
	}

	return recipe.ID, nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context, userID uint) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.GetAllRecipeRows(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, rows, userID)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID uint, userID uint) (domain.Recipe, error) {
	row, err := s.recipeRepository.GetRecipeRowByID(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	recipes, err := s.aggregate(ctx, []RecipeRow{*row}, userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipes[0], nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipeRequest) ([]domain.Recipe, error) {
	needle := utils.FoldSearch(strings.TrimSpace(req.RecipeName))
	rows, err := s.recipeRepository.SearchRecipeRows(ctx, needle)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, rows, req.UserID)
}

func (s *recipeService) SearchRecipesByTag(ctx context.Context, req domain.SearchByTagRequest) ([]domain.Recipe, error) {
	needle := utils.FoldSearch(strings.TrimSpace(req.TagName))
	rows, err := s.recipeRepository.SearchRecipeRowsByTag(ctx, needle)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, rows, req.UserID)
}

func (s *recipeService) GetTopTrending(ctx context.Context, userID uint) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.GetTrendingRecipeRows(ctx, TrendingLimit)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, rows, userID)
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, req domain.RecipesByUserRequest) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.GetRecipeRowsByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, rows, req.UserID)
}

func (s *recipeService) GetAllIngredients(ctx context.Context) ([]domain.IngredientInfo, error) {
	return s.recipeRepository.GetAllIngredients(ctx)
}

func (s *recipeService) GetAllTags(ctx context.Context) ([]domain.Tag, error) {
	return s.recipeRepository.GetAllTags(ctx)
}

func (s *recipeService) GetRecipeGrowthByMonth(ctx context.Context) ([]domain.MonthlyGrowth, error) {
	return s.recipeRepository.GetRecipeGrowthByMonth(ctx)
}

// aggregate bulk-fetches the child collections for the whole matched id set
// (one query per child type, never per row) and reassembles the nested form
// in memory. An empty selection short-circuits to an empty, successful result.
func (s *recipeService) aggregate(ctx context.Context, rows []RecipeRow, userID uint) ([]domain.Recipe, error) {
	if len(rows) == 0 {
		return []domain.Recipe{}, nil
	}

	recipeIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		recipeIDs = append(recipeIDs, row.RecipeID)
	}

	steps, err := s.recipeRepository.GetStepsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.recipeRepository.GetIngredientsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.recipeRepository.GetTagsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.recipeRepository.GetCommentsByRecipeIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	var liked []uint
	if userID > 0 {
		liked, err = s.recipeRepository.GetLikedRecipeIDs(ctx, userID, recipeIDs)
		if err != nil {
			return nil, err
		}
	}

	return assemble(rows, steps, ingredients, tags, comments, liked), nil
}

// assemble is the pure in-memory join: child rows are matched to parents
// solely by recipe id. Recipes keep the selection order of rows; child
// collections keep their query order. isLiked is always emitted and is false
// whenever no requesting user was supplied.
func assemble(rows []RecipeRow, steps []StepRow, ingredients []IngredientRow, tags []TagRow, comments []CommentRow, liked []uint) []domain.Recipe {
	stepsByRecipe := make(map[uint][]domain.CookingStep)
	for _, step := range steps {
		stepsByRecipe[step.RecipeID] = append(stepsByRecipe[step.RecipeID], domain.CookingStep{
			IndexStep:   step.IndexStep,
			StepContent: step.Content,
		})
	}

	ingredientsByRecipe := make(map[uint][]domain.RecipeIngredient)
	for _, ing := range ingredients {
		ingredientsByRecipe[ing.RecipeID] = append(ingredientsByRecipe[ing.RecipeID], domain.RecipeIngredient{
			IngredientID:   ing.IngredientID,
			IngredientName: ing.IngredientName,
			Weight:         ing.Weight,
			Unit:           ing.Unit,
		})
	}

	tagsByRecipe := make(map[uint][]domain.Tag)
	for _, tag := range tags {
		tagsByRecipe[tag.RecipeID] = append(tagsByRecipe[tag.RecipeID], domain.Tag{
			TagID:   tag.TagID,
			TagName: tag.TagName,
		})
	}

	commentsByRecipe := make(map[uint][]domain.Comment)
	for _, comment := range comments {
		commentsByRecipe[comment.RecipeID] = append(commentsByRecipe[comment.RecipeID], domain.Comment{
			CommentID: comment.CommentID,
			UserID:    comment.UserID,
			UserName:  comment.UserName,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		})
	}

	likedSet := make(map[uint]bool, len(liked))
	for _, recipeID := range liked {
		likedSet[recipeID] = true
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, domain.Recipe{
			RecipeID:     row.RecipeID,
			RecipeName:   row.RecipeName,
			Image:        row.Image,
			UserName:     row.UserName,
			LikeQuantity: row.LikeQuantity,
			ViewCount:    row.ViewCount,
			CookingTime:  row.CookingTime,
			Ration:       row.Ration,
			Ingredients:  orEmpty(ingredientsByRecipe[row.RecipeID]),
			CookingSteps: orEmpty(stepsByRecipe[row.RecipeID]),
			Comments:     orEmpty(commentsByRecipe[row.RecipeID]),
			Tags:         orEmpty(tagsByRecipe[row.RecipeID]),
			IsLiked:      likedSet[row.RecipeID],
			CreatedAt:    row.CreatedAt,
		})
	}
	return recipes
}

// orEmpty keeps empty child collections as [] rather than null in payloads.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
