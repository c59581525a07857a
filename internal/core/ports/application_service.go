package ports

import (
	"context"
	"time"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

// MyApplication is the jobseeker-facing projection: the application
// joined with its job and the name of whoever last changed the status.
// The resume path is intentionally absent — only the owning employer's
// explicit resume fetch reveals it.
type MyApplication struct {
	ID              string
	Job             *domain.Job
	Status          domain.ApplicationStatus
	AppliedAt       time.Time
	StatusUpdatedAt time.Time
	StatusUpdatedBy string
}

// ApplicantInfo identifies the applicant in employer-facing listings.
type ApplicantInfo struct {
	Name  string
	Email string
}

// JobApplication is the employer-facing projection for one application
// to a job they own.
type JobApplication struct {
	ID              string
	Applicant       ApplicantInfo
	Status          domain.ApplicationStatus
	AppliedAt       time.Time
	StatusUpdatedAt time.Time
	StatusUpdatedBy string
}

type ApplicationService interface {
	// Apply creates an Applied-status record referencing an already
	// stored resume path.
	Apply(ctx context.Context, userID, jobID, resumePath string) (*domain.Application, error)
	ListMine(ctx context.Context, userID string) ([]MyApplication, error)
	// ListForJob is restricted to the employer owning the job.
	ListForJob(ctx context.Context, employerID, jobID string) ([]JobApplication, error)
	// UpdateStatus is restricted to the employer owning the referenced job.
	UpdateStatus(ctx context.Context, employerID, applicationID string, status domain.ApplicationStatus) (*domain.Application, error)
	// ResumePath returns the stored relative path, not file content.
	ResumePath(ctx context.Context, employerID, applicationID string) (string, error)
}
