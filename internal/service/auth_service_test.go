package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
)

// fakeUsers is an in-memory port.UserRepository.
type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uuid.UUID]domain.User{}}
}

func (f *fakeUsers) GetUser(_ context.Context, userID uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return u, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) InsertUser(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return user, domain.ErrConflict
		}
	}

	user.ID = uuid.New()
	user.Active = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return user, domain.ErrNotFound
	}

	f.users[user.ID] = user
	return user, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUsers) {
	t.Helper()

	tokens, err := NewTokenIssuer("test-secret-of-sufficient-length", time.Hour)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := newFakeUsers()

	s := NewAuthService(users, tokens, log)
	s.cost = bcrypt.MinCost

	return s, users
}

func registration() domain.Registration {
	return domain.Registration{
		FirstName: "Kiran",
		LastName:  "Mahi",
		Email:     "Kiran@Example.com",
		Password:  "s3cret-passw0rd",
		Phone:     "9876543210",
	}
}

func TestAuthService_Register(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tests := []struct {
		name      string
		mutate    func(r *domain.Registration)
		wantError error
	}{
		{
			name: "valid registration: ok",
		},
		{
			name: "short password: fail",
			mutate: func(r *domain.Registration) {
				r.Password = "short"
			},
			wantError: domain.ErrValidation,
		},
		{
			name: "bad email: fail",
			mutate: func(r *domain.Registration) {
				r.Email = "not-an-email"
			},
			wantError: domain.ErrValidation,
		},
		{
			name: "missing last name: fail",
			mutate: func(r *domain.Registration) {
				r.LastName = ""
			},
			wantError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestAuthService(t)

			reg := registration()
			if tt.mutate != nil {
				tt.mutate(&reg)
			}

			session, err := s.Register(t.Context(), reg)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "kiran@example.com", session.User.Email)
			assert.Equal(t, domain.RoleCustomer, session.User.Role)
			assert.NotEqual(t, reg.Password, session.User.PasswordHash)

			principal, err := s.Authenticate(session.Token)
			require.NoError(t, err)
			assert.Equal(t, session.User.ID, principal.UserID)
			assert.Equal(t, domain.RoleCustomer, principal.Role)
		})
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	s, _ := newTestAuthService(t)

	_, err := s.Register(t.Context(), registration())
	require.NoError(t, err)

	dup := registration()
	dup.Email = "kiran@example.com"

	_, err = s.Register(t.Context(), dup)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, users := newTestAuthService(t)

	registered, err := s.Register(t.Context(), registration())
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		password  string
		prepare   func()
		wantError error
	}{
		{
			name:     "valid credentials, any email case: ok",
			email:    "KIRAN@example.com",
			password: "s3cret-passw0rd",
		},
		{
			name:      "wrong password: unauthorized",
			email:     "kiran@example.com",
			password:  "wrong-password",
			wantError: domain.ErrUnauthorized,
		},
		{
			name:      "unknown email: unauthorized",
			email:     "nobody@example.com",
			password:  "s3cret-passw0rd",
			wantError: domain.ErrUnauthorized,
		},
		{
			name:      "empty password: validation",
			email:     "kiran@example.com",
			wantError: domain.ErrValidation,
		},
		{
			name:     "disabled account: unauthorized",
			email:    "kiran@example.com",
			password: "s3cret-passw0rd",
			prepare: func() {
				u := users.users[registered.User.ID]
				u.Active = false
				users.users[u.ID] = u
			},
			wantError: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepare != nil {
				tt.prepare()
			}

			session, err := s.Login(t.Context(), tt.email, tt.password)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.User.ID, session.User.ID)
			assert.NotEmpty(t, session.Token)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	s, _ := newTestAuthService(t)

	registered, err := s.Register(t.Context(), registration())
	require.NoError(t, err)

	principal := domain.Principal{UserID: registered.User.ID, Role: registered.User.Role}

	updated, err := s.UpdateProfile(t.Context(), principal, domain.ProfileUpdate{
		City:    "Vijayawada",
		Country: "India",
	})
	require.NoError(t, err)
	assert.Equal(t, "Vijayawada", updated.City)
	assert.Equal(t, "Kiran", updated.FirstName)

	profile, err := s.Profile(t.Context(), principal)
	require.NoError(t, err)
	assert.Equal(t, updated, profile)

	_, err = s.UpdateProfile(t.Context(), principal, domain.ProfileUpdate{Phone: "123"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Profile(t.Context(), domain.Principal{UserID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
