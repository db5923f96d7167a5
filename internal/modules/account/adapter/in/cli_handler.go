package in

import (
	"context"

	"sabalabor/internal/modules/account/dto"
	accountin "sabalabor/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetProfile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.GetProfile(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, input)
}

func (h CLIHandler) ListWorkers(ctx context.Context, skill, location string, availableOnly bool) ([]dto.ProfileOutput, error) {
	return h.usecase.ListWorkers(ctx, dto.ListWorkersInput{Skill: skill, Location: location, AvailableOnly: availableOnly})
}

func (h CLIHandler) GetWorker(ctx context.Context, id int64) (dto.ProfileOutput, error) {
	return h.usecase.GetWorker(ctx, id)
}
