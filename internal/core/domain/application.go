package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the lifecycle label on an application.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusUnderReview ApplicationStatus = "Under Review"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusAccepted    ApplicationStatus = "Accepted"
)

// allStatuses is the closed set of accepted status values. Transitions
// between them are deliberately unrestricted: the owning employer may set
// any value at any time, so there is no transition table, only a
// membership check.
var allStatuses = map[ApplicationStatus]struct{}{
	StatusApplied:     {},
	StatusUnderReview: {},
	StatusShortlisted: {},
	StatusRejected:    {},
	StatusAccepted:    {},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("already applied to this job")
var ErrInvalidStatus = errors.New("invalid application status")

// IsValid reports whether s is one of the five accepted status values.
func (s ApplicationStatus) IsValid() bool {
	_, ok := allStatuses[s]
	return ok
}

// Application links a job and a jobseeker. The (job, user) pair is
// unique — enforced atomically by the store, not by application logic.
// Applications are never deleted.
type Application struct {
	ID              string            `json:"id"`
	JobID           string            `json:"job_id"`
	UserID          string            `json:"user_id"`
	Resume          string            `json:"resume,omitempty"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       time.Time         `json:"applied_at"`
	StatusUpdatedAt time.Time         `json:"status_updated_at"`
	StatusUpdatedBy string            `json:"status_updated_by,omitempty"`
}
