package domain

import (
	"fmt"
	"strings"

	apperrors "sabalabor/internal/platform/errors"
)

type Profile struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	UserType  string   `json:"user_type"`
	Location  string   `json:"location,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Available bool     `json:"available"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Available *bool    `json:"available,omitempty"`
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Location == nil && u.Bio == nil && u.Skills == nil && u.Available == nil
}

func (u ProfileUpdate) Validate() error {
	if u.Empty() {
		return fmt.Errorf("nothing to update: %w", apperrors.ErrInvalidInput)
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("name cannot be blank: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

type WorkerFilter struct {
	Skill     string
	Location  string
	Available bool
}
