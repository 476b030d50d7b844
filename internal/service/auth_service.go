package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type AuthService struct {
	users  port.UserRepository
	tokens *TokenIssuer
	cost   int
	log    *logrus.Logger
}

func NewAuthService(users port.UserRepository, tokens *TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		log:    log,
	}
}

// Session is a user together with a freshly issued bearer token.
type Session struct {
	User  domain.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (Session, error) {
	var session Session

	reg.Email = normalizeEmail(reg.Email)

	if err := reg.Validate(); err != nil {
		return session, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return session, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err := s.users.InsertUser(ctx, domain.User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return session, fmt.Errorf("users.InsertUser: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return session, fmt.Errorf("tokens.Issue: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID}).Info("user registered")

	return Session{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	var session Session

	if email == "" || password == "" {
		return session, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return session, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err != nil {
		return session, fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.WithFields(logrus.Fields{"user_id": user.ID}).Warn("login with wrong password")
		return session, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	if !user.Active {
		return session, fmt.Errorf("%w: account is disabled", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return session, fmt.Errorf("tokens.Issue: %w", err)
	}

	return Session{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token into the caller identity.
func (s *AuthService) Authenticate(token string) (domain.Principal, error) {
	return s.tokens.Parse(token)
}

func (s *AuthService) Profile(ctx context.Context, principal domain.Principal) (domain.User, error) {
	user, err := s.users.GetUser(ctx, principal.UserID)
	if err != nil {
		return user, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, principal domain.Principal, update domain.ProfileUpdate) (domain.User, error) {
	user, err := s.users.GetUser(ctx, principal.UserID)
	if err != nil {
		return user, fmt.Errorf("users.GetUser: %w", err)
	}

	if update.Phone != "" && (len(update.Phone) < 10 || len(update.Phone) > 20) {
		return user, fmt.Errorf("%w: phone must be 10..20 characters", domain.ErrValidation)
	}

	user, err = s.users.UpdateProfile(ctx, update.Apply(user))
	if err != nil {
		return user, fmt.Errorf("users.UpdateProfile: %w", err)
	}

	return user, nil
}
