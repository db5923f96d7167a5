package dto

type ProfileOutput struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	UserType  string
	Location  string
	Bio       string
	Skills    []string
	Rating    float64
	Available bool
}

type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	Location  *string
	Bio       *string
	Skills    []string
	Available *bool
}

type ListWorkersInput struct {
	Skill         string
	Location      string
	AvailableOnly bool
}
