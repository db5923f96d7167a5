package in

import (
	"context"

	"sabalabor/internal/modules/payments/dto"
	paymentsin "sabalabor/internal/modules/payments/port/in"
)

type CLIHandler struct {
	usecase paymentsin.Usecase
}

func NewCLIHandler(usecase paymentsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, jobID int64, amount float64) (dto.PaymentOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{JobID: jobID, Amount: amount})
}

func (h CLIHandler) Confirm(ctx context.Context, id string) (dto.PaymentOutput, error) {
	return h.usecase.Confirm(ctx, id)
}

func (h CLIHandler) Transactions(ctx context.Context) ([]dto.PaymentOutput, error) {
	return h.usecase.Transactions(ctx)
}
