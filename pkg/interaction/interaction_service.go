package interaction

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"context"
	"strings"
	"time"
)

type (
	InteractionService interface {
		LikeRecipe(ctx context.Context, req domain.LikeRecipeRequest) (domain.LikeRecipeResponse, error)
		AddComment(ctx context.Context, req domain.AddCommentRequest) (domain.AddCommentResponse, error)
		IncreaseViewCount(ctx context.Context, req domain.IncreaseViewCountRequest) (domain.IncreaseViewCountResponse, error)
	}

	interactionService struct {
		interactionRepository InteractionRepository
	}
)

func NewInteractionService(interactionRepository InteractionRepository) InteractionService {
	return &interactionService{interactionRepository: interactionRepository}
}

func (s *interactionService) LikeRecipe(ctx context.Context, req domain.LikeRecipeRequest) (domain.LikeRecipeResponse, error) {
	count, err := s.interactionRepository.LikeRecipe(ctx, req.UserID, req.RecipeID)
	if err != nil {
		return domain.LikeRecipeResponse{}, err
	}
	return domain.LikeRecipeResponse{Count: count}, nil
}

func (s *interactionService) AddComment(ctx context.Context, req domain.AddCommentRequest) (domain.AddCommentResponse, error) {
	// content length bounds apply to the trimmed form
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.AddCommentResponse{}, domain.ErrCommentEmpty
	}

	comment := &entities.Comment{
		RecipeID:  req.RecipeID,
		UserID:    req.UserID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	count, thread, err := s.interactionRepository.AddComment(ctx, comment)
	if err != nil {
		return domain.AddCommentResponse{}, err
	}
	return domain.AddCommentResponse{Count: count, Comments: thread}, nil
}

func (s *interactionService) IncreaseViewCount(ctx context.Context, req domain.IncreaseViewCountRequest) (domain.IncreaseViewCountResponse, error) {
	count, err := s.interactionRepository.IncreaseViewCount(ctx, req.RecipeID, req.UserID)
	if err != nil {
		return domain.IncreaseViewCountResponse{}, err
	}
	return domain.IncreaseViewCountResponse{Count: count}, nil
}
