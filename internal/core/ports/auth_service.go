package ports

import (
	"context"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username        string
	Password        string
	FullName        string
	CurrentLocation string
	ProfileImage    string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
