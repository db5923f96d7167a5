package out

import (
	"context"
	"net/url"

	"sabalabor/internal/modules/payments/domain"
	paymentsout "sabalabor/internal/modules/payments/port/out"
	"sabalabor/internal/platform/httpapi"
)

type HTTPPaymentGateway struct {
	client *httpapi.Client
}

func NewHTTPPaymentGateway(client *httpapi.Client) paymentsout.PaymentGateway {
	return &HTTPPaymentGateway{client: client}
}

func (g *HTTPPaymentGateway) Create(ctx context.Context, req domain.Request) (domain.Payment, error) {
	payment := domain.Payment{}
	err := g.client.Post(ctx, "/api/payments/create", req, &payment)
	return payment, err
}

func (g *HTTPPaymentGateway) Confirm(ctx context.Context, id string) (domain.Payment, error) {
	payment := domain.Payment{}
	err := g.client.Post(ctx, "/api/payments/"+url.PathEscape(id)+"/confirm", nil, &payment)
	return payment, err
}

func (g *HTTPPaymentGateway) Transactions(ctx context.Context) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	if err := g.client.Get(ctx, "/api/payments/transactions", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
