package repository_test

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
	"github.com/nikolayk812/jewelshop/internal/repository"
	"github.com/nikolayk812/jewelshop/internal/testpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type userRepositorySuite struct {
	suite.Suite

	pg   *testpg.Postgres
	repo port.UserRepository
}

// entry point to run the tests in the suite
func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(userRepositorySuite))
}

// before all tests in the suite
func (suite *userRepositorySuite) SetupSuite() {
	var err error

	suite.pg, err = testpg.Start(suite.T().Context())
	suite.Require().NoError(err)

	suite.repo = repository.NewUser(suite.pg.Pool)
}

// after all tests in the suite
func (suite *userRepositorySuite) TearDownSuite() {
	if suite.pg != nil {
		suite.NoError(suite.pg.Stop(suite.T().Context()))
	}
}

func (suite *userRepositorySuite) TearDownTest() {
	suite.NoError(suite.pg.Truncate(suite.T().Context()))
}

func randomUser() domain.User {
	return domain.User{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 60),
		Phone:        "9876543210",
	}
}

func assertUser(t *testing.T, expected, actual domain.User) {
	t.Helper()

	diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(domain.User{}, "CreatedAt", "UpdatedAt"))
	assert.Empty(t, diff)
}

func (suite *userRepositorySuite) TestInsertUser() {
	tests := []struct {
		name      string
		mutate    func(u *domain.User)
		wantRole  domain.Role
		wantError string
	}{
		{
			name:     "customer by default: ok",
			wantRole: domain.RoleCustomer,
		},
		{
			name: "admin: ok",
			mutate: func(u *domain.User) {
				u.Role = domain.RoleAdmin
			},
			wantRole: domain.RoleAdmin,
		},
		{
			name: "empty email: fail",
			mutate: func(u *domain.User) {
				u.Email = ""
			},
			wantError: "email is empty",
		},
		{
			name: "empty password hash: fail",
			mutate: func(u *domain.User) {
				u.PasswordHash = ""
			},
			wantError: "password hash is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			user := randomUser()
			if tt.mutate != nil {
				tt.mutate(&user)
			}

			inserted, err := suite.repo.InsertUser(ctx, user)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, inserted.ID)
			assert.True(t, inserted.Active)
			assert.Equal(t, tt.wantRole, inserted.Role)

			actual, err := suite.repo.GetUser(ctx, inserted.ID)
			require.NoError(t, err)

			assertUser(t, inserted, actual)
		})
	}
}

func (suite *userRepositorySuite) TestGetUserByEmail() {
	t := suite.T()
	ctx := t.Context()

	user := randomUser()
	user.Email = "Asha.Rao@Example.com"

	inserted, err := suite.repo.InsertUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "asha.rao@example.com", inserted.Email)

	actual, err := suite.repo.GetUserByEmail(ctx, " ASHA.RAO@example.com ")
	require.NoError(t, err)
	assertUser(t, inserted, actual)

	_, err = suite.repo.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrNotFound)

	duplicate := randomUser()
	duplicate.Email = strings.ToUpper(user.Email)

	_, err = suite.repo.InsertUser(ctx, duplicate)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func (suite *userRepositorySuite) TestUpdateProfile() {
	t := suite.T()
	ctx := t.Context()

	inserted, err := suite.repo.InsertUser(ctx, randomUser())
	require.NoError(t, err)

	updated := domain.ProfileUpdate{
		City:    "Jaipur",
		ZipCode: "302001",
		Country: "India",
	}.Apply(inserted)

	_, err = suite.repo.UpdateProfile(ctx, updated)
	require.NoError(t, err)

	actual, err := suite.repo.GetUser(ctx, inserted.ID)
	require.NoError(t, err)
	assertUser(t, updated, actual)

	_, err = suite.repo.UpdateProfile(ctx, domain.User{ID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.repo.UpdateProfile(ctx, domain.User{})
	require.EqualError(t, err, "userID is empty")
}
