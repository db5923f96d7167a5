package domain

import (
	"fmt"
	"time"

	apperrors "sabalabor/internal/platform/errors"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Payment struct {
	ID        string    `json:"id"`
	JobID     int64     `json:"job_id"`
	PayerID   int64     `json:"payer_id,omitempty"`
	PayeeID   int64     `json:"payee_id,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	Status    Status    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Payment) Settled() bool {
	return p.Status == StatusCompleted
}

type Request struct {
	JobID  int64   `json:"job_id"`
	Amount float64 `json:"amount"`
}

func (r Request) Validate() error {
	if r.JobID <= 0 {
		return fmt.Errorf("job id must be positive: %w", apperrors.ErrInvalidInput)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}
