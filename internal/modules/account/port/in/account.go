package in

import (
	"context"

	"sabalabor/internal/modules/account/dto"
)

type Usecase interface {
	GetProfile(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
	ListWorkers(ctx context.Context, input dto.ListWorkersInput) ([]dto.ProfileOutput, error)
	GetWorker(ctx context.Context, id int64) (dto.ProfileOutput, error)
}
