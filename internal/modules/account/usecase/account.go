package usecase

import (
	"context"
	"fmt"

	"sabalabor/internal/modules/account/domain"
	"sabalabor/internal/modules/account/dto"
	accountin "sabalabor/internal/modules/account/port/in"
	accountout "sabalabor/internal/modules/account/port/out"
	apperrors "sabalabor/internal/platform/errors"
)

// Interactor talks to the remote profile endpoints. Updating the profile
// does not touch the user cached in the session.
type Interactor struct {
	gateway accountout.AccountGateway
}

func NewInteractor(gateway accountout.AccountGateway) accountin.Usecase {
	return &Interactor{gateway: gateway}
}

func (i *Interactor) GetProfile(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.gateway.GetProfile(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error) {
	update := domain.ProfileUpdate{
		Name:      input.Name,
		Phone:     input.Phone,
		Location:  input.Location,
		Bio:       input.Bio,
		Skills:    input.Skills,
		Available: input.Available,
	}
	if err := update.Validate(); err != nil {
		return dto.ProfileOutput{}, err
	}
	profile, err := i.gateway.UpdateProfile(ctx, update)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) ListWorkers(ctx context.Context, input dto.ListWorkersInput) ([]dto.ProfileOutput, error) {
	workers, err := i.gateway.ListWorkers(ctx, domain.WorkerFilter{Skill: input.Skill, Location: input.Location, Available: input.AvailableOnly})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfileOutput, 0, len(workers))
	for _, w := range workers {
		out = append(out, toOutput(w))
	}
	return out, nil
}

func (i *Interactor) GetWorker(ctx context.Context, id int64) (dto.ProfileOutput, error) {
	if id <= 0 {
		return dto.ProfileOutput{}, fmt.Errorf("worker id must be positive: %w", apperrors.ErrInvalidInput)
	}
	worker, err := i.gateway.GetWorker(ctx, id)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(worker), nil
}

func toOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		UserType:  p.UserType,
		Location:  p.Location,
		Bio:       p.Bio,
		Skills:    p.Skills,
		Rating:    p.Rating,
		Available: p.Available,
	}
}
