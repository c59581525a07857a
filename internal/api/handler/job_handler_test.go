package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

type stubJobService struct {
	createFn   func(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error)
	listAllFn  func(ctx context.Context) ([]*domain.Job, error)
	listMineFn func(ctx context.Context, employerID string) ([]*domain.Job, error)
}

func (s *stubJobService) Create(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, employerID, input)
}

func (s *stubJobService) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return s.listAllFn(ctx)
}

func (s *stubJobService) ListMine(ctx context.Context, employerID string) ([]*domain.Job, error) {
	return s.listMineFn(ctx, employerID)
}

func TestJobHandler_Create_Success(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		createFn: func(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error) {
			if employerID != "emp1" || input.Title != "Go Engineer" {
				t.Fatalf("unexpected args: %s %+v", employerID, input)
			}
			return &domain.Job{ID: "job1", Title: input.Title, Company: "Initech", PostedBy: employerID}, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/jobs",
		`{"title":"Go Engineer","description":"Build services","location":"Remote","salary":"competitive"}`)
	c.Set("user_id", "emp1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["company"] != "Initech" {
		t.Fatalf("expected snapshotted company, got %v", resp["company"])
	}
}

func TestJobHandler_Create_MissingTitle(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		createFn: func(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/jobs", `{"description":"no title","location":"Remote"}`)
	c.Set("user_id", "emp1")

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJobHandler_Create_MissingCompanyPropagates(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		createFn: func(ctx context.Context, employerID string, input ports.CreateJobInput) (*domain.Job, error) {
			return nil, domain.ErrMissingCompanyName
		},
	}
	handler := NewJobHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/jobs",
		`{"title":"Go Engineer","description":"Build services","location":"Remote"}`)
	c.Set("user_id", "seeker1")

	if err := handler.Create(c); !errors.Is(err, domain.ErrMissingCompanyName) {
		t.Fatalf("expected ErrMissingCompanyName, got %v", err)
	}
}

func TestJobHandler_List(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		listAllFn: func(ctx context.Context) ([]*domain.Job, error) {
			return []*domain.Job{
				{ID: "job1", Title: "Go Engineer"},
				{ID: "job2", Title: "SRE"},
			}, nil
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["jobs"]) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resp["jobs"]))
	}
}

func TestJobHandler_Dashboard_MissingClaims(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		listMineFn: func(ctx context.Context, employerID string) ([]*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Dashboard(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJobHandler_Dashboard_ScopedToCaller(t *testing.T) {
	e := testEcho()
	stub := &stubJobService{
		listMineFn: func(ctx context.Context, employerID string) ([]*domain.Job, error) {
			if employerID != "emp1" {
				t.Fatalf("unexpected employer id: %s", employerID)
			}
			return []*domain.Job{{ID: "job1", PostedBy: "emp1"}}, nil
		},
	}
	handler := NewJobHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/jobs/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "emp1")

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
