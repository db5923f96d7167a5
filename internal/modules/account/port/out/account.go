package out

import (
	"context"

	"sabalabor/internal/modules/account/domain"
)

type AccountGateway interface {
	GetProfile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error)
	ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Profile, error)
	GetWorker(ctx context.Context, id int64) (domain.Profile, error)
}
