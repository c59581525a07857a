package ports

import (
	"context"
	"time"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Token-lookup methods only match records whose expiry is still in the
// future; an expired token behaves exactly like an unknown one.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndRole looks up the (email, role) pair used by login.
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	// MarkVerified sets is_verified and clears both verification fields.
	MarkVerified(ctx context.Context, id string) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	// UpdatePassword stores a new hash and clears both reset fields.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetProfilePhoto(ctx context.Context, id, path string) error
	SetResume(ctx context.Context, id, path string) error
}
