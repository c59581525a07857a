package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

// ApplicationService implements the application workflow: apply,
// listing for both roles, status changes, and resume path access.
// Ownership checks happen here, request-scoped, against the stores.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewApplicationService(
	applications ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		logger:       logger,
	}
}

// Apply creates an Applied-status record for (job, user). Duplicates are
// settled by the store's unique index, not a check-then-insert here.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID, resumePath string) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:           job.ID,
		UserID:          userID,
		Resume:          resumePath,
		Status:          domain.StatusApplied,
		AppliedAt:       now,
		StatusUpdatedAt: now,
	}

	created, err := s.applications.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", created.ID).Str("job_id", jobID).Str("user_id", userID).Msg("application submitted")
	return created, nil
}

// ListMine returns the caller's applications joined with their jobs and
// status-updater names. The resume path never appears in this view.
func (s *ApplicationService) ListMine(ctx context.Context, userID string) ([]ports.MyApplication, error) {
	apps, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobCache := make(map[string]*domain.Job)
	nameCache := make(map[string]string)

	out := make([]ports.MyApplication, 0, len(apps))
	for _, app := range apps {
		job, err := s.jobByID(ctx, jobCache, app.JobID)
		if err != nil {
			return nil, fmt.Errorf("list applications: %w", err)
		}
		updatedBy, err := s.userName(ctx, nameCache, app.StatusUpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("list applications: %w", err)
		}
		out = append(out, ports.MyApplication{
			ID:              app.ID,
			Job:             job,
			Status:          app.Status,
			AppliedAt:       app.AppliedAt,
			StatusUpdatedAt: app.StatusUpdatedAt,
			StatusUpdatedBy: updatedBy,
		})
	}
	return out, nil
}

// ListForJob returns every application to a job the caller owns, joined
// with applicant name/email and status-updater name.
func (s *ApplicationService) ListForJob(ctx context.Context, employerID, jobID string) ([]ports.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != employerID {
		return nil, domain.ErrForbidden
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	nameCache := make(map[string]string)
	out := make([]ports.JobApplication, 0, len(apps))
	for _, app := range apps {
		applicant, err := s.users.FindByID(ctx, app.UserID)
		if err != nil {
			return nil, fmt.Errorf("list job applications: %w", err)
		}
		updatedBy, err := s.userName(ctx, nameCache, app.StatusUpdatedBy)
		if err != nil {
			return nil, fmt.Errorf("list job applications: %w", err)
		}
		out = append(out, ports.JobApplication{
			ID:              app.ID,
			Applicant:       ports.ApplicantInfo{Name: applicant.Name, Email: applicant.Email},
			Status:          app.Status,
			AppliedAt:       app.AppliedAt,
			StatusUpdatedAt: app.StatusUpdatedAt,
			StatusUpdatedBy: updatedBy,
		})
	}
	return out, nil
}

// UpdateStatus sets any of the five enum values; transitions are flat
// and unrestricted, only enum membership is enforced.
func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.applications.UpdateStatus(ctx, app.ID, status, employerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", app.ID).
		Str("status", string(status)).
		Str("updated_by", employerID).
		Msg("application status updated")
	return updated, nil
}

// ResumePath returns the stored relative path for the caller to resolve
// against static storage.
func (s *ApplicationService) ResumePath(ctx context.Context, employerID, applicationID string) (string, error) {
	app, err := s.ownedApplication(ctx, employerID, applicationID)
	if err != nil {
		return "", err
	}
	return app.Resume, nil
}

// ownedApplication loads an application and verifies the caller owns the
// job it references.
func (s *ApplicationService) ownedApplication(ctx context.Context, employerID, applicationID string) (*domain.Application, error) {
	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != employerID {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

func (s *ApplicationService) jobByID(ctx context.Context, cache map[string]*domain.Job, id string) (*domain.Job, error) {
	if job, ok := cache[id]; ok {
		return job, nil
	}
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = job
	return job, nil
}

// userName resolves a user id to a display name, tolerating empty ids
// (no status change yet).
func (s *ApplicationService) userName(ctx context.Context, cache map[string]string, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if name, ok := cache[id]; ok {
		return name, nil
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	cache[id] = user.Name
	return user.Name, nil
}
