package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/crammer/internal/client/models"
)

// Client is the remote auth API as seen by the screens.
type Client interface {
	Close() error
	Signup(ctx context.Context, req SignupRequest) (*models.AuthPayload, error)
	Login(ctx context.Context, req LoginRequest) (*models.AuthPayload, error)
	GetCurrentUser(ctx context.Context, token string) (*models.User, error)
	Ping(ctx context.Context) error
}

type SignupRequest struct {
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Envelope is the body shape of every API response.
type Envelope[T any] struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *T              `json:"data,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}
