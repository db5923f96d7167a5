package service

import (
	"context"
	"fmt"
	"strings"

	"sabalabor/internal/modules/jobs/domain"
	jobsout "sabalabor/internal/modules/jobs/port/out"
	apperrors "sabalabor/internal/platform/errors"
)

type JobService struct {
	gateway jobsout.JobGateway
}

func NewJobService(gateway jobsout.JobGateway) *JobService {
	return &JobService{gateway: gateway}
}

func (s *JobService) ListAvailable(ctx context.Context) ([]domain.Job, error) {
	return s.gateway.ListAvailable(ctx)
}

func (s *JobService) List(ctx context.Context, filter domain.Filter) ([]domain.Job, error) {
	if filter.Status != "" {
		if err := filter.Status.Validate(); err != nil {
			return nil, err
		}
	}
	filter.JobType = strings.TrimSpace(filter.JobType)
	filter.Location = strings.TrimSpace(filter.Location)
	return s.gateway.List(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id int64) (domain.Job, error) {
	if err := requireID("job", id); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.Get(ctx, id)
}

func (s *JobService) Create(ctx context.Context, draft domain.Draft) (domain.Job, error) {
	draft = normalize(draft)
	if err := draft.Validate(); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.Create(ctx, draft)
}

func (s *JobService) Update(ctx context.Context, id int64, draft domain.Draft) (domain.Job, error) {
	if err := requireID("job", id); err != nil {
		return domain.Job{}, err
	}
	draft = normalize(draft)
	if err := draft.Validate(); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.Update(ctx, id, draft)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	if err := requireID("job", id); err != nil {
		return err
	}
	return s.gateway.Delete(ctx, id)
}

func (s *JobService) Apply(ctx context.Context, id int64) (domain.Job, error) {
	if err := requireID("job", id); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.Apply(ctx, id)
}

func (s *JobService) AcceptWorker(ctx context.Context, id, workerID int64) (domain.Job, error) {
	if err := requireID("job", id); err != nil {
		return domain.Job{}, err
	}
	if err := requireID("worker", workerID); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.AcceptWorker(ctx, id, workerID)
}

func (s *JobService) Complete(ctx context.Context, id int64) (domain.Job, error) {
	if err := requireID("job", id); err != nil {
		return domain.Job{}, err
	}
	return s.gateway.Complete(ctx, id)
}

func requireID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive: %w", kind, apperrors.ErrInvalidInput)
	}
	return nil
}

func normalize(d domain.Draft) domain.Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.JobType = strings.TrimSpace(d.JobType)
	d.Location = strings.TrimSpace(d.Location)
	d.ScheduledDate = strings.TrimSpace(d.ScheduledDate)
	return d
}
