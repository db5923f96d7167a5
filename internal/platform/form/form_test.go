package form_test

import (
	"errors"
	"testing"

	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/form"
)

var registerSchema = form.Schema{
	{Name: "email", Rules: []form.Rule{form.Required(), form.Email()}},
	{Name: "password", Rules: []form.Rule{form.Required(), form.MinLen(6)}},
	{Name: "confirmPassword", Rules: []form.Rule{form.Required(), form.Matches("password", "Passwords must match")}},
	{Name: "budget", Rules: []form.Rule{form.Positive()}},
	{Name: "userType", Rules: []form.Rule{form.OneOf("client", "worker")}},
}

func TestSchemaCollectsFirstFailurePerField(t *testing.T) {
	t.Parallel()
	err := registerSchema.Validate(form.Values{
		"email":           "not-an-email",
		"password":        "abc",
		"confirmPassword": "abd",
		"budget":          "-3",
		"userType":        "admin",
	})
	var errs form.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected form errors, got %v", err)
	}
	want := map[string]string{
		"email":           "Invalid email",
		"password":        "Too Short!",
		"confirmPassword": "Passwords must match",
		"budget":          "Must be positive",
		"userType":        "Must be one of client, worker",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("form errors should wrap invalid input")
	}
}

func TestSchemaAcceptsValidValues(t *testing.T) {
	t.Parallel()
	err := registerSchema.Validate(form.Values{
		"email":           "a@b.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"budget":          "800",
		"userType":        "worker",
	})
	if err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}
