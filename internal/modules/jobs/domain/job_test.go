package domain_test

import (
	"errors"
	"testing"

	"sabalabor/internal/modules/jobs/domain"
	apperrors "sabalabor/internal/platform/errors"
)

func TestDraftValidate(t *testing.T) {
	t.Parallel()
	base := domain.Draft{
		Title:          "Apartment Move",
		Description:    "Two bedroom flat",
		JobType:        "Moving",
		Location:       "Durban Central",
		Budget:         800,
		EstimatedHours: 4,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("draft should be valid: %v", err)
	}
	noTitle := base
	noTitle.Title = "  "
	if err := noTitle.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing title should be invalid input, got %v", err)
	}
	noLocation := base
	noLocation.Location = ""
	if err := noLocation.Validate(); err == nil {
		t.Fatalf("missing location should fail")
	}
	zeroBudget := base
	zeroBudget.Budget = 0
	if err := zeroBudget.Validate(); err == nil {
		t.Fatalf("zero budget should fail")
	}
	negativeHours := base
	negativeHours.EstimatedHours = -1
	if err := negativeHours.Validate(); err == nil {
		t.Fatalf("negative hours should fail")
	}
}

func TestStatusValidateAndOpen(t *testing.T) {
	t.Parallel()
	if err := domain.StatusInProgress.Validate(); err != nil {
		t.Fatalf("in_progress should be valid: %v", err)
	}
	if err := domain.Status("cancelled").Validate(); err == nil {
		t.Fatalf("cancelled is not a known status")
	}
	if !(domain.Job{Status: domain.StatusAvailable}).Open() {
		t.Fatalf("available job should be open")
	}
	if (domain.Job{Status: domain.StatusAssigned}).Open() {
		t.Fatalf("assigned job should be closed")
	}
}
