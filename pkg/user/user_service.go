package user

import (
	"CookShare-Backend/domain"
	"CookShare-Backend/entities"
	"CookShare-Backend/internal/utils/mailing"
	"CookShare-Backend/pkg/jwt"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
		GetViewHistory(ctx context.Context, userID uint) (domain.ViewHistoryResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if existing, err := s.userRepository.GetUserByPhone(ctx, req.Phone); err == nil && existing != nil {
		return domain.UserResponse{}, domain.ErrPhoneAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, domain.ErrHashPasswordFailed
	}

	user := &entities.User{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.LoginResponse{}, domain.ErrIdentifierNotFound
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrPasswordNotMatch
	}

	token := s.jwtService.GenerateTokenUser(user.ID)

	return domain.LoginResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

// ForgotPassword replaces the account password with a generated temporary
// one and mails it to the account email. The password swap is only persisted
// when the mail goes out first.
func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrIdentifierNotFound
		}
		return err
	}

	tempPassword := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPasswordFailed
	}

	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your temporary password is <b>%s</b>.</p><p>Please log in and change it right away.</p>",
		user.FullName, tempPassword,
	)
	if err := mailing.SendMail(user.Email, "Reset your CookShare password", body); err != nil {
		log.Printf("error sending reset password mail: %v", err)
		return domain.ErrSendResetMailFailed
	}

	return s.userRepository.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *userService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	user, err := s.userRepository.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrIdentifierNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return domain.ErrPasswordNotMatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPasswordFailed
	}

	return s.userRepository.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetViewHistory(ctx context.Context, userID uint) (domain.ViewHistoryResponse, error) {
	items, err := s.userRepository.GetViewHistory(ctx, userID)
	if err != nil {
		return domain.ViewHistoryResponse{}, err
	}
	if items == nil {
		items = []domain.ViewHistoryItem{}
	}
	return domain.ViewHistoryResponse{
		UserID:             userID,
		RecipesViewHistory: items,
	}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		UserID:      user.ID,
		FullName:    user.FullName,
		Phone:       user.Phone,
		Email:       user.Email,
		RecipeCount: user.RecipeCount,
		CreatedAt:   user.CreatedAt,
	}
}
