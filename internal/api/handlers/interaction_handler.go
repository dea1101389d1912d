package handlers

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/internal/api/presenters"
	"CookShare-Backend/pkg/interaction"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InteractionHandler interface {
		LikeRecipe(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		IncreaseViewCount(c *fiber.Ctx) error
	}

	interactionHandler struct {
		interactionService interaction.InteractionService
		validator          *validator.Validate
	}
)

func NewInteractionHandler(interactionService interaction.InteractionService, validator *validator.Validate) InteractionHandler {
	return &interactionHandler{
		interactionService: interactionService,
		validator:          validator,
	}
}

func (h *interactionHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.LikeRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeRecipe, err)
	}

	res, err := h.interactionService.LikeRecipe(c.Context(), *req)
	if err != nil {
		if err == domain.ErrAlreadyLiked {
			return presenters.FailedResponse(c, fiber.StatusOK, domain.MessageAlreadyLiked)
		}
		if err == domain.ErrRecipeNotFound {
			return presenters.FailedResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.InternalErrorResponse(c, domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLikeRecipe)
}

func (h *interactionHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.AddCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.UserID = userID
	req.Content = strings.TrimSpace(req.Content)

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.interactionService.AddComment(c.Context(), *req)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.FailedResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		if err == domain.ErrUserNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddComment, err)
		}
		if err == domain.ErrCommentEmpty {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
		}
		return presenters.InternalErrorResponse(c, domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

// IncreaseViewCount is open to anonymous viewers; a missing recipe is a
// non-exceptional outcome reported as a failed response.
func (h *interactionHandler) IncreaseViewCount(c *fiber.Ctx) error {
	req := new(domain.IncreaseViewCountRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIncreaseView, err)
	}

	res, err := h.interactionService.IncreaseViewCount(c.Context(), *req)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.FailedResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.InternalErrorResponse(c, domain.MessageFailedIncreaseView, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessIncreaseView)
}
