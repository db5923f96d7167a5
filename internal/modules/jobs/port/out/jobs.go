package out

import (
	"context"

	"sabalabor/internal/modules/jobs/domain"
)

type JobGateway interface {
	ListAvailable(ctx context.Context) ([]domain.Job, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Job, error)
	Get(ctx context.Context, id int64) (domain.Job, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Job, error)
	Update(ctx context.Context, id int64, draft domain.Draft) (domain.Job, error)
	Delete(ctx context.Context, id int64) error
	Apply(ctx context.Context, id int64) (domain.Job, error)
	AcceptWorker(ctx context.Context, id, workerID int64) (domain.Job, error)
	Complete(ctx context.Context, id int64) (domain.Job, error)
}
