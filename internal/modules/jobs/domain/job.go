package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "sabalabor/internal/platform/errors"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("unsupported job status %q: %w", string(s), apperrors.ErrInvalidInput)
	}
}

type Job struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"client_id,omitempty"`
	WorkerID       int64     `json:"worker_id,omitempty"`
	Applicants     []int64   `json:"applicants,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	JobType        string    `json:"job_type"`
	Location       string    `json:"location"`
	Budget         float64   `json:"budget"`
	EstimatedHours float64   `json:"estimated_hours"`
	Status         Status    `json:"status"`
	ScheduledDate  string    `json:"scheduled_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Open reports whether workers may still apply.
func (j Job) Open() bool {
	return j.Status == StatusAvailable
}

// Draft is the client-editable part of a job.
type Draft struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	JobType        string  `json:"job_type"`
	Location       string  `json:"location"`
	Budget         float64 `json:"budget"`
	EstimatedHours float64 `json:"estimated_hours"`
	ScheduledDate  string  `json:"scheduled_date,omitempty"`
}

func (d Draft) Validate() error {
	required := map[string]string{
		"title":       d.Title,
		"description": d.Description,
		"job_type":    d.JobType,
		"location":    d.Location,
	}
	for _, name := range []string{"title", "description", "job_type", "location"} {
		if strings.TrimSpace(required[name]) == "" {
			return fmt.Errorf("%s is required: %w", name, apperrors.ErrInvalidInput)
		}
	}
	if d.Budget <= 0 {
		return fmt.Errorf("budget must be positive: %w", apperrors.ErrInvalidInput)
	}
	if d.EstimatedHours <= 0 {
		return fmt.Errorf("estimated hours must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

type Filter struct {
	Status   Status
	JobType  string
	Location string
}
