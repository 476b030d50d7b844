package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelshop/internal/db"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var u domain.User

	dbUser, err := r.q.GetUser(ctx, userID)
	if err != nil {
		return u, fmt.Errorf("q.GetUser: %w", mapDBError(err))
	}

	user, err := mapDBUserToDomain(dbUser)
	if err != nil {
		return u, fmt.Errorf("mapDBUserToDomain: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User

	dbUser, err := r.q.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return u, fmt.Errorf("q.GetUserByEmail: %w", mapDBError(err))
	}

	user, err := mapDBUserToDomain(dbUser)
	if err != nil {
		return u, fmt.Errorf("mapDBUserToDomain: %w", err)
	}

	return user, nil
}

func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return user, errors.New("email is empty")
	}

	if user.PasswordHash == "" {
		return user, errors.New("password hash is empty")
	}

	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}

	user.Email = normalizeEmail(user.Email)

	row, err := r.q.InsertUser(ctx, db.InsertUserParams{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Role:         string(user.Role),
	})
	if err != nil {
		return user, fmt.Errorf("q.InsertUser: %w", mapDBError(err))
	}

	user.ID = row.ID
	user.Active = row.IsActive
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == uuid.Nil {
		return user, errors.New("userID is empty")
	}

	updatedAt, err := r.q.UpdateUserProfile(ctx, db.UpdateUserProfileParams{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Address:   user.Address,
		City:      user.City,
		State:     user.State,
		ZipCode:   user.ZipCode,
		Country:   user.Country,
		ID:        user.ID,
	})
	if err != nil {
		return user, fmt.Errorf("q.UpdateUserProfile: %w", mapDBError(err))
	}

	user.UpdatedAt = updatedAt

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapDBUserToDomain(dbUser db.User) (domain.User, error) {
	role, err := domain.ToRole(dbUser.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("domain.ToRole[%s]: %w", dbUser.Role, err)
	}

	return domain.User{
		ID:           dbUser.ID,
		FirstName:    dbUser.FirstName,
		LastName:     dbUser.LastName,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Phone:        dbUser.Phone,
		Address:      dbUser.Address,
		City:         dbUser.City,
		State:        dbUser.State,
		ZipCode:      dbUser.ZipCode,
		Country:      dbUser.Country,
		Role:         role,
		Active:       dbUser.IsActive,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}, nil
}
