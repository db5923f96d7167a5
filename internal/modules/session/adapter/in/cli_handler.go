package in

import (
	"context"

	sessiondto "sabalabor/internal/modules/session/dto"
	sessionin "sabalabor/internal/modules/session/port/in"
	"sabalabor/internal/platform/form"
)

var (
	LoginSchema = form.Schema{
		{Name: "email", Rules: []form.Rule{form.Required(), form.Email()}},
		{Name: "password", Rules: []form.Rule{form.Required(), form.MinLen(6)}},
	}
	RegisterSchema = form.Schema{
		{Name: "name", Rules: []form.Rule{form.Required()}},
		{Name: "email", Rules: []form.Rule{form.Required(), form.Email()}},
		{Name: "phone", Rules: []form.Rule{form.Required()}},
		{Name: "password", Rules: []form.Rule{form.Required(), form.MinLen(6)}},
		{Name: "confirmPassword", Rules: []form.Rule{form.Required(), form.Matches("password", "Passwords must match")}},
		{Name: "userType", Rules: []form.Rule{form.OneOf("client", "worker")}},
	}
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Restore(ctx context.Context) sessiondto.SessionOutput {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (sessiondto.SessionOutput, error) {
	if err := LoginSchema.Validate(form.Values{"email": email, "password": password}); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return h.usecase.Login(ctx, sessiondto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, input sessiondto.RegisterInput, confirmPassword string) (sessiondto.SessionOutput, error) {
	values := form.Values{
		"name":            input.Name,
		"email":           input.Email,
		"phone":           input.Phone,
		"password":        input.Password,
		"confirmPassword": confirmPassword,
		"userType":        input.UserType,
	}
	if err := RegisterSchema.Validate(values); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return h.usecase.Register(ctx, input)
}

func (h CLIHandler) Logout(ctx context.Context, remote bool) {
	h.usecase.Logout(ctx, sessiondto.LogoutInput{Remote: remote})
}

func (h CLIHandler) Current(ctx context.Context) sessiondto.SessionOutput {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Verify(ctx context.Context) (sessiondto.UserOutput, error) {
	return h.usecase.Verify(ctx)
}

func (h CLIHandler) Claims(ctx context.Context) (sessiondto.ClaimsOutput, error) {
	return h.usecase.Claims(ctx)
}

func (h CLIHandler) Subscribe(fn func(sessiondto.SessionOutput)) func() {
	return h.usecase.Subscribe(fn)
}
