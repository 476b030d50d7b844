package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User) (domain.User, error)
}
