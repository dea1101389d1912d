package handlers

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/internal/api/presenters"
	"CookShare-Backend/internal/utils/storage"
	"CookShare-Backend/pkg/recipe"
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		SearchRecipesByTag(c *fiber.Ctx) error
		GetTopTrending(c *fiber.Ctx) error
		GetRecipesByUser(c *fiber.Ctx) error
		GetAllIngredients(c *fiber.Ctx) error
		GetAllTags(c *fiber.Ctx) error
		GetRecipeGrowth(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		imageStorage  storage.ImageStorage
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, imageStorage storage.ImageStorage, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		imageStorage:  imageStorage,
		validator:     validator,
	}
}

// viewerID reads the optional userId query parameter used to resolve the
// isLiked flag on read endpoints. Absent or malformed values mean anonymous.
func viewerID(c *fiber.Ctx) uint {
	id, err := strconv.ParseUint(c.Query("userId", "0"), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetAllRecipes(c.Context(), viewerID(c))
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), uint(recipeID), viewerID(c))
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.FailedResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// CreateRecipe accepts a multipart form: scalar fields plus JSON-encoded
// ingredients, cookingSteps and tags arrays, with the image as a file part.
// The image is stored first; the orchestrator receives the saved reference.
func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	req := domain.CreateRecipeRequest{
		RecipeName: c.FormValue("recipeName"),
		UserID:     userID,
	}

	cookingTime, err := strconv.Atoi(c.FormValue("cookingTime", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.CookingTime = cookingTime

	ration, err := strconv.Atoi(c.FormValue("ration", "0"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Ration = ration

	if err := json.Unmarshal([]byte(c.FormValue("ingredients", "[]")), &req.Ingredients); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := json.Unmarshal([]byte(c.FormValue("cookingSteps", "[]")), &req.CookingSteps); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if tagsValue := c.FormValue("tags", "[]"); tagsValue != "" {
		if err := json.Unmarshal([]byte(tagsValue), &req.Tags); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, domain.ErrImageRequired)
	}

	imagePath, err := h.imageStorage.SaveImage(image, "images")
	if err != nil {
		if err == storage.ErrFileTypeNotAllowed || err == storage.ErrFileTooLarge {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
		}
		return presenters.InternalErrorResponse(c, domain.MessageFailedUploadImage, err)
	}
	req.ImagePath = imagePath

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	recipeID, err := h.recipeService.CreateRecipe(c.Context(), req)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"recipeId": recipeID}, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := new(domain.SearchRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	res, err := h.recipeService.SearchRecipes(c.Context(), *req)
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) SearchRecipesByTag(c *fiber.Ctx) error {
	req := new(domain.SearchByTagRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	res, err := h.recipeService.SearchRecipesByTag(c.Context(), *req)
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) GetTopTrending(c *fiber.Ctx) error {
	res, err := h.recipeService.GetTopTrending(c.Context(), viewerID(c))
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetTrending, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrending)
}

func (h *recipeHandler) GetRecipesByUser(c *fiber.Ctx) error {
	req := new(domain.RecipesByUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipesByUser(c.Context(), *req)
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetAllIngredients(c *fiber.Ctx) error {
	res, err := h.recipeService.GetAllIngredients(c.Context())
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *recipeHandler) GetAllTags(c *fiber.Ctx) error {
	res, err := h.recipeService.GetAllTags(c.Context())
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTags)
}

func (h *recipeHandler) GetRecipeGrowth(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeGrowthByMonth(c.Context())
	if err != nil {
		return presenters.InternalErrorResponse(c, domain.MessageFailedGetGrowth, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGrowth)
}
