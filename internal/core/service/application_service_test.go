package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

type stubApplicationRepo struct {
	apps   map[string]*domain.Application
	nextID int
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func cloneApp(a *domain.Application) *domain.Application {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	// Mirrors the unique (job, user) index.
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.nextID++
	copy := cloneApp(app)
	copy.ID = fmt.Sprintf("app_%d", r.nextID)
	r.apps[copy.ID] = copy
	return cloneApp(copy), nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return cloneApp(a), nil
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, cloneApp(a))
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, cloneApp(a))
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus, updatedBy string, updatedAt time.Time) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	a.StatusUpdatedBy = updatedBy
	a.StatusUpdatedAt = updatedAt
	return cloneApp(a), nil
}

// workflowFixture wires an application service with one employer, one
// jobseeker, and one posted job.
type workflowFixture struct {
	svc      *ApplicationService
	users    *stubUserRepo
	jobs     *stubJobRepo
	apps     *stubApplicationRepo
	employer *domain.User
	seeker   *domain.User
	job      *domain.Job
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()

	employer := addUser(t, users, "Employer", "boss@corp.com", domain.RoleEmployer, "Corp Inc")
	seeker := addUser(t, users, "Seeker", "seeker@example.com", domain.RoleJobseeker, "")

	job, err := jobs.Create(context.Background(), &domain.Job{
		Title: "Go Engineer", PostedBy: employer.ID, Company: "Corp Inc", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	return &workflowFixture{
		svc:      NewApplicationService(apps, jobs, users, zerolog.Nop()),
		users:    users,
		jobs:     jobs,
		apps:     apps,
		employer: employer,
		seeker:   seeker,
		job:      job,
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newWorkflowFixture(t)

	app, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/123.pdf")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if app.Status != domain.StatusApplied {
		t.Fatalf("expected initial status Applied, got %s", app.Status)
	}
	if app.Resume != "uploads/resumes/123.pdf" {
		t.Fatalf("unexpected resume path %q", app.Resume)
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.Apply(context.Background(), f.seeker.ID, "job_missing", "uploads/resumes/a.pdf")
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newWorkflowFixture(t)

	if _, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf"); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	_, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/b.pdf")
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_FlatTransitions(t *testing.T) {
	f := newWorkflowFixture(t)
	app, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// Any enum value is reachable from any current value, including
	// moving back out of a terminal-looking state.
	sequence := []domain.ApplicationStatus{
		domain.StatusShortlisted,
		domain.StatusRejected,
		domain.StatusUnderReview,
		domain.StatusAccepted,
		domain.StatusApplied,
	}
	for _, status := range sequence {
		updated, err := f.svc.UpdateStatus(context.Background(), f.employer.ID, app.ID, status)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
		if updated.Status != status || updated.StatusUpdatedBy != f.employer.ID {
			t.Fatalf("unexpected record after transition: %+v", updated)
		}
	}
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	app, _ := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf")

	_, err := f.svc.UpdateStatus(context.Background(), f.employer.ID, app.ID, "Hired")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_NonOwnerForbidden(t *testing.T) {
	f := newWorkflowFixture(t)
	other := addUser(t, f.users, "Other", "other@corp.com", domain.RoleEmployer, "Other Corp")
	app, _ := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf")

	_, err := f.svc.UpdateStatus(context.Background(), other.ID, app.ID, domain.StatusShortlisted)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), f.employer.ID, "app_missing", domain.StatusShortlisted)
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_ListForJob_OwnerOnly(t *testing.T) {
	f := newWorkflowFixture(t)
	other := addUser(t, f.users, "Other", "other@corp.com", domain.RoleEmployer, "Other Corp")
	if _, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	list, err := f.svc.ListForJob(context.Background(), f.employer.ID, f.job.ID)
	if err != nil {
		t.Fatalf("list for job failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}
	if list[0].Applicant.Name != "Seeker" || list[0].Applicant.Email != "seeker@example.com" {
		t.Fatalf("unexpected applicant projection: %+v", list[0].Applicant)
	}

	if _, err := f.svc.ListForJob(context.Background(), other.ID, f.job.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := f.svc.ListForJob(context.Background(), f.employer.ID, "job_missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_ListMine_JoinsJobAndUpdater(t *testing.T) {
	f := newWorkflowFixture(t)
	app, err := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := f.svc.UpdateStatus(context.Background(), f.employer.ID, app.ID, domain.StatusShortlisted); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	mine, err := f.svc.ListMine(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("list mine failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 application, got %d", len(mine))
	}
	got := mine[0]
	if got.Status != domain.StatusShortlisted {
		t.Fatalf("expected Shortlisted, got %s", got.Status)
	}
	if got.Job == nil || got.Job.Title != "Go Engineer" {
		t.Fatalf("expected joined job, got %+v", got.Job)
	}
	if got.StatusUpdatedBy != "Employer" {
		t.Fatalf("expected updater name, got %q", got.StatusUpdatedBy)
	}
}

func TestApplicationService_ResumePath_OwnershipEnforced(t *testing.T) {
	f := newWorkflowFixture(t)
	other := addUser(t, f.users, "Other", "other@corp.com", domain.RoleEmployer, "Other Corp")
	app, _ := f.svc.Apply(context.Background(), f.seeker.ID, f.job.ID, "uploads/resumes/a.pdf")

	path, err := f.svc.ResumePath(context.Background(), f.employer.ID, app.ID)
	if err != nil {
		t.Fatalf("resume path failed: %v", err)
	}
	if path != "uploads/resumes/a.pdf" {
		t.Fatalf("unexpected path %q", path)
	}

	if _, err := f.svc.ResumePath(context.Background(), other.ID, app.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.ResumePath(context.Background(), f.employer.ID, "app_missing"); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
