package dto

import "time"

type PaymentOutput struct {
	ID        string
	JobID     int64
	PayerID   int64
	PayeeID   int64
	Amount    float64
	Currency  string
	Status    string
	Reference string
	CreatedAt time.Time
}

type CreateInput struct {
	JobID  int64
	Amount float64
}
