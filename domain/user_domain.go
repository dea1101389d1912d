package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "User created successfully"
	MessageSuccessLogin          = "Login successfully"
	MessageSuccessResetPassword  = "Reset password successfully"
	MessageSuccessChangePassword = "Change password successfully"
	MessageSuccessGetUser        = "success get user"
	MessageSuccessGetViewHistory = "Get recipes view history successfully"

	MessagePhoneAlreadyUsed     = "Phone number is in use"
	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "There was an error logging in"
	MessageFailedResetPassword  = "There was an error resetting password"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedGetViewHistory = "failed to get recipes view history"

	ErrPhoneAlreadyUsed    = errors.New("phone number is in use")
	ErrIdentifierNotFound  = errors.New("email or phone number does not exist")
	ErrPasswordNotMatch    = errors.New("password is incorrect")
	ErrCredentialsRequired = errors.New("identifier and password are required")
	ErrHashPasswordFailed  = errors.New("failed to hash password")
	ErrSendResetMailFailed = errors.New("failed to send reset password mail")
)

type (
	RegisterRequest struct {
		FullName string `json:"fullName" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=1"`
	}

	LoginRequest struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Phone string `json:"phone" validate:"required"`
	}

	ChangePasswordRequest struct {
		Phone       string `json:"phone" validate:"required"`
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=1"`
	}

	UserResponse struct {
		UserID      uint      `json:"userId"`
		FullName    string    `json:"fullName"`
		Phone       string    `json:"phone"`
		Email       string    `json:"email"`
		RecipeCount int       `json:"recipeCount"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	LoginResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}

	ViewHistoryItem struct {
		RecipeID uint      `json:"recipeId"`
		ViewedAt time.Time `json:"viewedAt"`
	}

	ViewHistoryResponse struct {
		UserID             uint              `json:"userId"`
		RecipesViewHistory []ViewHistoryItem `json:"recipesViewHistory"`
	}
)
