package out

import (
	"context"

	"sabalabor/internal/modules/payments/domain"
)

type PaymentGateway interface {
	Create(ctx context.Context, req domain.Request) (domain.Payment, error)
	Confirm(ctx context.Context, id string) (domain.Payment, error)
	Transactions(ctx context.Context) ([]domain.Payment, error)
}
