package domain

import (
	"errors"
	"testing"

	apperrors "sabalabor/internal/platform/errors"
)

func TestRequestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		req  Request
		ok   bool
	}{
		{name: "valid", req: Request{JobID: 1, Amount: 2500}, ok: true},
		{name: "missing job", req: Request{Amount: 10}},
		{name: "zero amount", req: Request{JobID: 1}},
		{name: "negative amount", req: Request{JobID: 1, Amount: -3}},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}
