package handler

import (
	"time"

	"github.com/talenthub/job-portal-api/internal/core/domain"
)

type createJobRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Salary      string `json:"salary"`
	Experience  string `json:"experience"`
}

type jobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	Company     string    `json:"company"`
	PostedBy    string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type jobListResponse struct {
	Jobs []jobResponse `json:"jobs"`
}

func toJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Salary:      job.Salary,
		Experience:  job.Experience,
		Company:     job.Company,
		PostedBy:    job.PostedBy,
		CreatedAt:   job.CreatedAt,
	}
}

func toJobListResponse(jobs []*domain.Job) jobListResponse {
	out := jobListResponse{Jobs: make([]jobResponse, 0, len(jobs))}
	for _, job := range jobs {
		out.Jobs = append(out.Jobs, toJobResponse(job))
	}
	return out
}
