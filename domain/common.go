package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("failed to token invalid")
	ErrTokenExpired  = errors.New("token expired")

	ErrUserNotFound   = errors.New("user does not exist")
	ErrRecipeNotFound = errors.New("recipe does not exist")
)
