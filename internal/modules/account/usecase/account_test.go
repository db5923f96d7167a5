package usecase_test

import (
	"context"
	"errors"
	"testing"

	"sabalabor/internal/modules/account/domain"
	"sabalabor/internal/modules/account/dto"
	"sabalabor/internal/modules/account/usecase"
	apperrors "sabalabor/internal/platform/errors"
)

type fakeGateway struct {
	profile     domain.Profile
	workers     []domain.Profile
	lastUpdate  domain.ProfileUpdate
	lastFilter  domain.WorkerFilter
	lastWorker  int64
	updateCalls int
	workerCalls int
}

func (f *fakeGateway) GetProfile(context.Context) (domain.Profile, error) {
	return f.profile, nil
}

func (f *fakeGateway) UpdateProfile(_ context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	f.updateCalls++
	f.lastUpdate = update
	if update.Location != nil {
		f.profile.Location = *update.Location
	}
	if update.Available != nil {
		f.profile.Available = *update.Available
	}
	return f.profile, nil
}

func (f *fakeGateway) ListWorkers(_ context.Context, filter domain.WorkerFilter) ([]domain.Profile, error) {
	f.lastFilter = filter
	return f.workers, nil
}

func (f *fakeGateway) GetWorker(_ context.Context, id int64) (domain.Profile, error) {
	f.workerCalls++
	f.lastWorker = id
	return domain.Profile{ID: id, Name: "Bola", UserType: "worker"}, nil
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	t.Parallel()
	gateway := &fakeGateway{profile: domain.Profile{ID: 1, Name: "Ada", Location: "Abuja"}}
	uc := usecase.NewInteractor(gateway)

	location := "Lagos"
	available := true
	out, err := uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{Location: &location, Available: &available})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if gateway.lastUpdate.Name != nil || gateway.lastUpdate.Bio != nil || gateway.lastUpdate.Phone != nil || gateway.lastUpdate.Skills != nil {
		t.Fatalf("unchanged fields must stay unset: %+v", gateway.lastUpdate)
	}
	if gateway.lastUpdate.Location == nil || *gateway.lastUpdate.Location != "Lagos" {
		t.Fatalf("location should be sent")
	}
	if out.Location != "Lagos" || !out.Available || out.Name != "Ada" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestUpdateProfileRejectsEmptyAndBlankName(t *testing.T) {
	t.Parallel()
	gateway := &fakeGateway{}
	uc := usecase.NewInteractor(gateway)

	if _, err := uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty update should be invalid, got %v", err)
	}
	blank := "  "
	if _, err := uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{Name: &blank}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank name should be invalid, got %v", err)
	}
	if gateway.updateCalls != 0 {
		t.Fatalf("invalid updates must not reach the gateway")
	}
}

func TestGetWorkerGuardsID(t *testing.T) {
	t.Parallel()
	gateway := &fakeGateway{}
	uc := usecase.NewInteractor(gateway)

	if _, err := uc.GetWorker(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero id should be invalid, got %v", err)
	}
	if gateway.workerCalls != 0 {
		t.Fatalf("gateway called for an invalid id")
	}
	out, err := uc.GetWorker(context.Background(), 9)
	if err != nil || out.ID != 9 || gateway.lastWorker != 9 {
		t.Fatalf("expected worker 9, got %+v (%v)", out, err)
	}
}

func TestListWorkersMapsFilter(t *testing.T) {
	t.Parallel()
	gateway := &fakeGateway{workers: []domain.Profile{
		{ID: 2, Name: "Bola", Skills: []string{"plumbing"}, Available: true},
		{ID: 3, Name: "Chi", Skills: []string{"plumbing", "tiling"}},
	}}
	uc := usecase.NewInteractor(gateway)

	out, err := uc.ListWorkers(context.Background(), dto.ListWorkersInput{Skill: "plumbing", Location: "Lagos", AvailableOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := domain.WorkerFilter{Skill: "plumbing", Location: "Lagos", Available: true}
	if gateway.lastFilter != want {
		t.Fatalf("filter mismatch: %+v", gateway.lastFilter)
	}
	if len(out) != 2 || out[1].Name != "Chi" || len(out[1].Skills) != 2 {
		t.Fatalf("unexpected workers: %+v", out)
	}
}
