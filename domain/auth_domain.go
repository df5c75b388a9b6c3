package domain

import (
	"errors"
)

var (
	MessageSuccessObtainToken  = "token issued successfully"
	MessageSuccessRefreshToken = "token refreshed successfully"

	MessageFailedObtainToken  = "failed to issue token"
	MessageFailedRefreshToken = "failed to refresh token"

	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)

type (
	TokenObtainRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	TokenRefreshRequest struct {
		Refresh string `json:"refresh" validate:"required"`
	}

	TokenResponse struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh,omitempty"`
	}
)
