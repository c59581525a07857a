package domain

import (
	"errors"
	"time"
)

const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidEmailFormat = errors.New("invalid email format")
var ErrInvalidEmailDomain = errors.New("invalid email domain")
var ErrInvalidRole = errors.New("invalid role")
var ErrWrongPassword = errors.New("incorrect password")
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
var ErrMissingCompanyName = errors.New("company name not set")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the two supported roles.
// A user's role is fixed at signup and never changes afterwards.
func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleEmployer
}

// User models an account in the portal. Email is globally unique and the
// password is stored only as a bcrypt hash. Verification and reset tokens
// are single-use: they are cleared the moment they are consumed.
type User struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 string    `json:"role"`
	CompanyName          string    `json:"company_name,omitempty"`
	IsVerified           bool      `json:"is_verified"`
	VerificationToken    string    `json:"-"`
	VerificationExpires  time.Time `json:"-"`
	ResetPasswordToken   string    `json:"-"`
	ResetPasswordExpires time.Time `json:"-"`
	ProfilePhoto         string    `json:"profile_photo,omitempty"`
	Resume               string    `json:"resume,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
