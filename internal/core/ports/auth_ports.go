package ports

import (
	"context"

	"github.com/courseboard/api/internal/core/domain"
	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Authorize validates a bearer token and resolves it to the user it
	// was issued for.
	Authorize(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type TokenService interface {
	Generate(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
