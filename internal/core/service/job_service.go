package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

// JobService implements posting and listing jobs.
type JobService struct {
	jobs   ports.JobRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, logger: logger}
}

// Create posts a new job for the calling employer. The employer's
// company name is snapshotted onto the job at creation time; without a
// company name on the profile the posting is rejected.
func (s *JobService) Create(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error) {
	employer, err := s.users.FindByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if employer.CompanyName == "" {
		return nil, domain.ErrMissingCompanyName
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Salary:      input.Salary,
		Experience:  input.Experience,
		PostedBy:    employer.ID,
		Company:     employer.CompanyName,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("employer_id", employerID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("employer_id", employerID).Msg("job posted")
	return created, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.ListAll(ctx)
}

func (s *JobService) ListMine(ctx context.Context, employerID string) ([]*domain.Job, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}
