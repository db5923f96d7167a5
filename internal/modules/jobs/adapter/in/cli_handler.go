package in

import (
	"context"
	"strconv"

	"sabalabor/internal/modules/jobs/dto"
	jobsin "sabalabor/internal/modules/jobs/port/in"
	"sabalabor/internal/platform/form"
)

var JobSchema = form.Schema{
	{Name: "title", Rules: []form.Rule{form.Required()}},
	{Name: "description", Rules: []form.Rule{form.Required()}},
	{Name: "job_type", Rules: []form.Rule{form.Required()}},
	{Name: "location", Rules: []form.Rule{form.Required()}},
	{Name: "budget", Rules: []form.Rule{form.Required(), form.Positive()}},
	{Name: "estimated_hours", Rules: []form.Rule{form.Required(), form.Positive()}},
}

// DraftFromValues validates raw form values and converts them to a draft.
func DraftFromValues(values form.Values) (dto.DraftInput, error) {
	if err := JobSchema.Validate(values); err != nil {
		return dto.DraftInput{}, err
	}
	budget, _ := strconv.ParseFloat(values["budget"], 64)
	hours, _ := strconv.ParseFloat(values["estimated_hours"], 64)
	return dto.DraftInput{
		Title:          values["title"],
		Description:    values["description"],
		JobType:        values["job_type"],
		Location:       values["location"],
		Budget:         budget,
		EstimatedHours: hours,
		ScheduledDate:  values["scheduled_date"],
	}, nil
}

type CLIHandler struct {
	usecase jobsin.Usecase
}

func NewCLIHandler(usecase jobsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListAvailable(ctx context.Context) ([]dto.JobOutput, error) {
	return h.usecase.ListAvailable(ctx)
}

func (h CLIHandler) List(ctx context.Context, status, jobType, location string) ([]dto.JobOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Status: status, JobType: jobType, Location: location})
}

func (h CLIHandler) Get(ctx context.Context, id int64) (dto.JobOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Create(ctx context.Context, values form.Values) (dto.JobOutput, error) {
	draft, err := DraftFromValues(values)
	if err != nil {
		return dto.JobOutput{}, err
	}
	return h.usecase.Create(ctx, draft)
}

func (h CLIHandler) Update(ctx context.Context, id int64, values form.Values) (dto.JobOutput, error) {
	draft, err := DraftFromValues(values)
	if err != nil {
		return dto.JobOutput{}, err
	}
	return h.usecase.Update(ctx, id, draft)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Apply(ctx context.Context, id int64) (dto.JobOutput, error) {
	return h.usecase.Apply(ctx, id)
}

func (h CLIHandler) AcceptWorker(ctx context.Context, id, workerID int64) (dto.JobOutput, error) {
	return h.usecase.AcceptWorker(ctx, dto.AcceptInput{JobID: id, WorkerID: workerID})
}

func (h CLIHandler) Complete(ctx context.Context, id int64) (dto.JobOutput, error) {
	return h.usecase.Complete(ctx, id)
}
