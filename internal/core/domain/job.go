package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posting created by an employer. Company is a denormalized
// snapshot of the employer's company name at creation time; it does not
// track later renames. Jobs have no update or delete operations.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Experience  string    `json:"experience"`
	PostedBy    string    `json:"posted_by"`
	Company     string    `json:"company"`
	CreatedAt   time.Time `json:"created_at"`
}
