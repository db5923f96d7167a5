package dto

import "time"

type JobOutput struct {
	ID             int64
	ClientID       int64
	WorkerID       int64
	Applicants     []int64
	Title          string
	Description    string
	JobType        string
	Location       string
	Budget         float64
	EstimatedHours float64
	Status         string
	ScheduledDate  string
	CreatedAt      time.Time
}

type DraftInput struct {
	Title          string
	Description    string
	JobType        string
	Location       string
	Budget         float64
	EstimatedHours float64
	ScheduledDate  string
}

type ListInput struct {
	Status   string
	JobType  string
	Location string
}

type AcceptInput struct {
	JobID    int64
	WorkerID int64
}
