package in

import (
	"context"

	"sabalabor/internal/modules/payments/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.PaymentOutput, error)
	Confirm(ctx context.Context, id string) (dto.PaymentOutput, error)
	Transactions(ctx context.Context) ([]dto.PaymentOutput, error)
}
