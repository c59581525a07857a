package ports

import (
	"context"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

// SignupInput carries everything needed to create an account.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CompanyName string
}

// Profile is the public projection of the current user.
type Profile struct {
	Name         string
	Email        string
	CompanyName  string
	ProfilePhoto string
	Resume       string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	// Login authenticates the (email, role) pair. A valid email with the
	// wrong role fails with ErrUserNotFound, not ErrWrongPassword.
	Login(ctx context.Context, email, password, role string) (string, *domain.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CurrentUser(ctx context.Context, userID string) (*Profile, error)
}

// Mailer sends account emails. Implementations must bound the send with
// the context deadline so a slow SMTP server cannot hang a request.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// EmailDomainValidator checks an address before an account is created:
// structural shape, a disposable-domain denylist, and a live MX lookup.
// Resolution failures count as invalid (fail closed). Kept behind an
// interface so tests substitute a fake resolver for live DNS.
type EmailDomainValidator interface {
	Validate(ctx context.Context, email string) error
}
