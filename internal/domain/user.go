package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

var validRoles = map[Role]struct{}{
	RoleCustomer: {},
	RoleAdmin:    {},
}

func ToRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := validRoles[r]; ok {
		return r, nil
	}

	return "", errors.New("invalid role")
}

type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	Role         Role
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated caller supplied by the access gate.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("first and last name are required")
	}

	if len(r.FirstName) > 100 || len(r.LastName) > 100 {
		return errors.New("name is longer than 100 characters")
	}

	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("invalid email")
	}

	if len(r.Password) < 8 {
		return errors.New("password is shorter than 8 characters")
	}

	if r.Phone != "" && (len(r.Phone) < 10 || len(r.Phone) > 20) {
		return errors.New("phone must be 10..20 characters")
	}

	return nil
}

// ProfileUpdate only overwrites non-empty fields.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

func (u ProfileUpdate) Apply(user User) User {
	user.FirstName = orDefault(u.FirstName, user.FirstName)
	user.LastName = orDefault(u.LastName, user.LastName)
	user.Phone = orDefault(u.Phone, user.Phone)
	user.Address = orDefault(u.Address, user.Address)
	user.City = orDefault(u.City, user.City)
	user.State = orDefault(u.State, user.State)
	user.ZipCode = orDefault(u.ZipCode, user.ZipCode)
	user.Country = orDefault(u.Country, user.Country)
	return user
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
