package out

import (
	"context"
	"fmt"
	"net/url"

	"sabalabor/internal/modules/account/domain"
	accountout "sabalabor/internal/modules/account/port/out"
	"sabalabor/internal/platform/httpapi"
)

type HTTPAccountGateway struct {
	client *httpapi.Client
}

func NewHTTPAccountGateway(client *httpapi.Client) accountout.AccountGateway {
	return &HTTPAccountGateway{client: client}
}

func (g *HTTPAccountGateway) GetProfile(ctx context.Context) (domain.Profile, error) {
	profile := domain.Profile{}
	err := g.client.Get(ctx, "/api/user/profile", nil, &profile)
	return profile, err
}

func (g *HTTPAccountGateway) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	profile := domain.Profile{}
	err := g.client.Put(ctx, "/api/user/profile", update, &profile)
	return profile, err
}

func (g *HTTPAccountGateway) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Profile, error) {
	query := url.Values{}
	if filter.Skill != "" {
		query.Set("skill", filter.Skill)
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.Available {
		query.Set("available", "true")
	}
	workers := []domain.Profile{}
	if err := g.client.Get(ctx, "/api/user/workers", query, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (g *HTTPAccountGateway) GetWorker(ctx context.Context, id int64) (domain.Profile, error) {
	worker := domain.Profile{}
	err := g.client.Get(ctx, fmt.Sprintf("/api/user/workers/%d", id), nil, &worker)
	return worker, err
}
