package ports

import (
	"context"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

// CreateJobInput carries the fields of a new posting. The company name
// is never taken from the request: it is snapshotted from the employer's
// profile at creation time.
type CreateJobInput struct {
	Title       string
	Description string
	Location    string
	Salary      string
	Experience  string
}

type JobService interface {
	Create(ctx context.Context, employerID string, input CreateJobInput) (*domain.Job, error)
	ListAll(ctx context.Context) ([]*domain.Job, error)
	// ListMine returns the postings owned by the calling employer.
	ListMine(ctx context.Context, employerID string) ([]*domain.Job, error)
}
