package handler

import (
	"time"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type applicantResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// myApplicationResponse is the jobseeker-facing projection. It carries
// the joined job but never the resume path.
type myApplicationResponse struct {
	ID              string                   `json:"id"`
	Job             *jobResponse             `json:"job,omitempty"`
	Status          domain.ApplicationStatus `json:"status"`
	AppliedAt       time.Time                `json:"applied_at"`
	StatusUpdatedAt time.Time                `json:"status_updated_at"`
	StatusUpdatedBy string                   `json:"status_updated_by,omitempty"`
}

// jobApplicationResponse is the employer-facing projection for one
// application to a job they own.
type jobApplicationResponse struct {
	ID              string                   `json:"id"`
	Applicant       applicantResponse        `json:"applicant"`
	Status          domain.ApplicationStatus `json:"status"`
	AppliedAt       time.Time                `json:"applied_at"`
	StatusUpdatedAt time.Time                `json:"status_updated_at"`
	StatusUpdatedBy string                   `json:"status_updated_by,omitempty"`
}

type resumeResponse struct {
	Resume string `json:"resume"`
}

func toMyApplicationResponse(app ports.MyApplication) myApplicationResponse {
	out := myApplicationResponse{
		ID:              app.ID,
		Status:          app.Status,
		AppliedAt:       app.AppliedAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
		StatusUpdatedBy: app.StatusUpdatedBy,
	}
	if app.Job != nil {
		job := toJobResponse(app.Job)
		out.Job = &job
	}
	return out
}

func toJobApplicationResponse(app ports.JobApplication) jobApplicationResponse {
	return jobApplicationResponse{
		ID: app.ID,
		Applicant: applicantResponse{
			Name:  app.Applicant.Name,
			Email: app.Applicant.Email,
		},
		Status:          app.Status,
		AppliedAt:       app.AppliedAt,
		StatusUpdatedAt: app.StatusUpdatedAt,
		StatusUpdatedBy: app.StatusUpdatedBy,
	}
}
