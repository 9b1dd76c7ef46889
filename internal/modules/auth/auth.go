package auth

import (
	"context"

	"github.com/lesatelierszo/zopos-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// RegisterRequest is the payload for creating a staff account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}
