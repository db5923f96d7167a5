package out

import (
	"context"
	"fmt"
	"net/url"

	"sabalabor/internal/modules/jobs/domain"
	jobsout "sabalabor/internal/modules/jobs/port/out"
	"sabalabor/internal/platform/httpapi"
)

type HTTPJobGateway struct {
	client *httpapi.Client
}

func NewHTTPJobGateway(client *httpapi.Client) jobsout.JobGateway {
	return &HTTPJobGateway{client: client}
}

func (g *HTTPJobGateway) ListAvailable(ctx context.Context) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := g.client.Get(ctx, "/api/jobs/available", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *HTTPJobGateway) List(ctx context.Context, filter domain.Filter) ([]domain.Job, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.JobType != "" {
		query.Set("job_type", filter.JobType)
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	jobs := []domain.Job{}
	if err := g.client.Get(ctx, "/api/jobs", query, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (g *HTTPJobGateway) Get(ctx context.Context, id int64) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Get(ctx, jobPath(id), nil, &job)
	return job, err
}

func (g *HTTPJobGateway) Create(ctx context.Context, draft domain.Draft) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Post(ctx, "/api/jobs", draft, &job)
	return job, err
}

func (g *HTTPJobGateway) Update(ctx context.Context, id int64, draft domain.Draft) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Put(ctx, jobPath(id), draft, &job)
	return job, err
}

func (g *HTTPJobGateway) Delete(ctx context.Context, id int64) error {
	return g.client.Delete(ctx, jobPath(id), nil)
}

func (g *HTTPJobGateway) Apply(ctx context.Context, id int64) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Post(ctx, jobPath(id)+"/apply", nil, &job)
	return job, err
}

func (g *HTTPJobGateway) AcceptWorker(ctx context.Context, id, workerID int64) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Post(ctx, fmt.Sprintf("%s/accept/%d", jobPath(id), workerID), nil, &job)
	return job, err
}

func (g *HTTPJobGateway) Complete(ctx context.Context, id int64) (domain.Job, error) {
	job := domain.Job{}
	err := g.client.Post(ctx, jobPath(id)+"/complete", nil, &job)
	return job, err
}

func jobPath(id int64) string {
	return fmt.Sprintf("/api/jobs/%d", id)
}
