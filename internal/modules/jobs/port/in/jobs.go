package in

import (
	"context"

	"sabalabor/internal/modules/jobs/dto"
)

type Usecase interface {
	ListAvailable(ctx context.Context) ([]dto.JobOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.JobOutput, error)
	Get(ctx context.Context, id int64) (dto.JobOutput, error)
	Create(ctx context.Context, input dto.DraftInput) (dto.JobOutput, error)
	Update(ctx context.Context, id int64, input dto.DraftInput) (dto.JobOutput, error)
	Delete(ctx context.Context, id int64) error
	Apply(ctx context.Context, id int64) (dto.JobOutput, error)
	AcceptWorker(ctx context.Context, input dto.AcceptInput) (dto.JobOutput, error)
	Complete(ctx context.Context, id int64) (dto.JobOutput, error)
}
