package usecase

import (
	"context"
	"fmt"
	"strings"

	"sabalabor/internal/modules/payments/domain"
	"sabalabor/internal/modules/payments/dto"
	paymentsin "sabalabor/internal/modules/payments/port/in"
	paymentsout "sabalabor/internal/modules/payments/port/out"
	apperrors "sabalabor/internal/platform/errors"
)

type Interactor struct {
	gateway paymentsout.PaymentGateway
}

func NewInteractor(gateway paymentsout.PaymentGateway) paymentsin.Usecase {
	return &Interactor{gateway: gateway}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.PaymentOutput, error) {
	req := domain.Request{JobID: input.JobID, Amount: input.Amount}
	if err := req.Validate(); err != nil {
		return dto.PaymentOutput{}, err
	}
	payment, err := i.gateway.Create(ctx, req)
	if err != nil {
		return dto.PaymentOutput{}, err
	}
	return toOutput(payment), nil
}

func (i *Interactor) Confirm(ctx context.Context, id string) (dto.PaymentOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dto.PaymentOutput{}, fmt.Errorf("payment id is required: %w", apperrors.ErrInvalidInput)
	}
	payment, err := i.gateway.Confirm(ctx, id)
	if err != nil {
		return dto.PaymentOutput{}, err
	}
	return toOutput(payment), nil
}

func (i *Interactor) Transactions(ctx context.Context) ([]dto.PaymentOutput, error) {
	payments, err := i.gateway.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentOutput, 0, len(payments))
	for _, p := range payments {
		out = append(out, toOutput(p))
	}
	return out, nil
}

func toOutput(p domain.Payment) dto.PaymentOutput {
	return dto.PaymentOutput{
		ID:        p.ID,
		JobID:     p.JobID,
		PayerID:   p.PayerID,
		PayeeID:   p.PayeeID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}
