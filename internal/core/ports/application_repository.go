package ports

import (
	"context"
	"time"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
// Create must rely on the store's unique (job, user) index: a concurrent
// duplicate apply yields exactly one success and ErrDuplicateApplication
// for the rest.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	// UpdateStatus persists a status change and returns the updated record.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, updatedBy string, updatedAt time.Time) (*domain.Application, error)
}
