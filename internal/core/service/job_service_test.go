package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	copy := cloneJob(job)
	copy.ID = fmt.Sprintf("job_%d", r.nextID)
	r.jobs[copy.ID] = copy
	return cloneJob(copy), nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) ListAll(_ context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, cloneJob(j))
	}
	return out, nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.PostedBy == employerID {
			out = append(out, cloneJob(j))
		}
	}
	return out, nil
}

func addUser(t *testing.T, repo *stubUserRepo, name, email, role, company string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name: name, Email: email, PasswordHash: "x", Role: role, CompanyName: company,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestJobService_Create_SnapshotsCompany(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())
	employer := addUser(t, users, "Owner", "owner@corp.com", domain.RoleEmployer, "Corp Inc")

	job, err := svc.Create(context.Background(), employer.ID, ports.CreateJobInput{
		Title: "Go Engineer", Description: "Build services", Location: "Remote",
		Salary: "100k", Experience: "3y",
	})
	if err != nil {
		t.Fatalf("create job failed: %v", err)
	}
	if job.PostedBy != employer.ID {
		t.Fatalf("expected postedBy %s, got %s", employer.ID, job.PostedBy)
	}
	if job.Company != "Corp Inc" {
		t.Fatalf("expected company snapshot, got %q", job.Company)
	}
}

func TestJobService_Create_MissingCompany(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())
	seeker := addUser(t, users, "Seeker", "seeker@example.com", domain.RoleJobseeker, "")

	_, err := svc.Create(context.Background(), seeker.ID, ports.CreateJobInput{Title: "X"})
	if !errors.Is(err, domain.ErrMissingCompanyName) {
		t.Fatalf("expected ErrMissingCompanyName, got %v", err)
	}
}

func TestJobService_Create_UnknownEmployer(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "ghost", ports.CreateJobInput{Title: "X"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJobService_ListMine_ScopedToOwner(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, zerolog.Nop())
	a := addUser(t, users, "A", "a@corp.com", domain.RoleEmployer, "A Corp")
	b := addUser(t, users, "B", "b@corp.com", domain.RoleEmployer, "B Corp")

	if _, err := svc.Create(context.Background(), a.ID, ports.CreateJobInput{Title: "One"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), a.ID, ports.CreateJobInput{Title: "Two"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), b.ID, ports.CreateJobInput{Title: "Other"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("list mine failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(mine))
	}
	for _, j := range mine {
		if j.PostedBy != a.ID {
			t.Fatalf("unexpected owner %s", j.PostedBy)
		}
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
}
