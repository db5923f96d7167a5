package usecase

import (
	"context"

	"sabalabor/internal/modules/jobs/domain"
	"sabalabor/internal/modules/jobs/dto"
	jobsin "sabalabor/internal/modules/jobs/port/in"
	"sabalabor/internal/modules/jobs/service"
)

type Interactor struct {
	svc *service.JobService
}

func NewInteractor(svc *service.JobService) jobsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListAvailable(ctx context.Context) ([]dto.JobOutput, error) {
	jobs, err := i.svc.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(jobs), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.JobOutput, error) {
	jobs, err := i.svc.List(ctx, domain.Filter{Status: domain.Status(input.Status), JobType: input.JobType, Location: input.Location})
	if err != nil {
		return nil, err
	}
	return toOutputs(jobs), nil
}

func (i *Interactor) Get(ctx context.Context, id int64) (dto.JobOutput, error) {
	return single(i.svc.Get(ctx, id))
}

func (i *Interactor) Create(ctx context.Context, input dto.DraftInput) (dto.JobOutput, error) {
	return single(i.svc.Create(ctx, toDraft(input)))
}

func (i *Interactor) Update(ctx context.Context, id int64, input dto.DraftInput) (dto.JobOutput, error) {
	return single(i.svc.Update(ctx, id, toDraft(input)))
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Apply(ctx context.Context, id int64) (dto.JobOutput, error) {
	return single(i.svc.Apply(ctx, id))
}

func (i *Interactor) AcceptWorker(ctx context.Context, input dto.AcceptInput) (dto.JobOutput, error) {
	return single(i.svc.AcceptWorker(ctx, input.JobID, input.WorkerID))
}

func (i *Interactor) Complete(ctx context.Context, id int64) (dto.JobOutput, error) {
	return single(i.svc.Complete(ctx, id))
}

func single(job domain.Job, err error) (dto.JobOutput, error) {
	if err != nil {
		return dto.JobOutput{}, err
	}
	return toOutput(job), nil
}

func toDraft(input dto.DraftInput) domain.Draft {
	return domain.Draft{
		Title:          input.Title,
		Description:    input.Description,
		JobType:        input.JobType,
		Location:       input.Location,
		Budget:         input.Budget,
		EstimatedHours: input.EstimatedHours,
		ScheduledDate:  input.ScheduledDate,
	}
}

func toOutputs(jobs []domain.Job) []dto.JobOutput {
	out := make([]dto.JobOutput, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toOutput(job))
	}
	return out
}

func toOutput(job domain.Job) dto.JobOutput {
	return dto.JobOutput{
		ID:             job.ID,
		ClientID:       job.ClientID,
		WorkerID:       job.WorkerID,
		Applicants:     job.Applicants,
		Title:          job.Title,
		Description:    job.Description,
		JobType:        job.JobType,
		Location:       job.Location,
		Budget:         job.Budget,
		EstimatedHours: job.EstimatedHours,
		Status:         string(job.Status),
		ScheduledDate:  job.ScheduledDate,
		CreatedAt:      job.CreatedAt,
	}
}
