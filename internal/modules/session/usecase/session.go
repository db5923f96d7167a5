package usecase

import (
	"context"
	"strings"

	"sabalabor/internal/modules/session/domain"
	sessiondto "sabalabor/internal/modules/session/dto"
	sessionin "sabalabor/internal/modules/session/port/in"
	"sabalabor/internal/modules/session/service"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/token"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Restore(ctx context.Context) sessiondto.SessionOutput {
	return toOutput(i.svc.Restore(ctx))
}

func (i *Interactor) Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.SessionOutput, error) {
	if _, err := i.svc.Login(ctx, input.Email, input.Password); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(i.svc.Current()), nil
}

func (i *Interactor) Register(ctx context.Context, input sessiondto.RegisterInput) (sessiondto.SessionOutput, error) {
	registration := domain.Registration{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Password: input.Password,
		UserType: domain.UserType(input.UserType),
	}
	if registration.UserType == "" {
		registration.UserType = domain.UserTypeClient
	}
	if _, err := i.svc.Register(ctx, registration); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(i.svc.Current()), nil
}

func (i *Interactor) Logout(ctx context.Context, input sessiondto.LogoutInput) {
	if input.Remote {
		i.svc.RemoteLogout(ctx)
		return
	}
	i.svc.Logout(ctx)
}

func (i *Interactor) Current(_ context.Context) sessiondto.SessionOutput {
	return toOutput(i.svc.Current())
}

func (i *Interactor) Verify(ctx context.Context) (sessiondto.UserOutput, error) {
	user, err := i.svc.Verify(ctx)
	if err != nil {
		return sessiondto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Claims(_ context.Context) (sessiondto.ClaimsOutput, error) {
	snap := i.svc.Current()
	if snap.State != domain.Authenticated {
		return sessiondto.ClaimsOutput{}, apperrors.ErrNoSession
	}
	claims, err := token.Inspect(snap.Session.Token)
	if err != nil {
		return sessiondto.ClaimsOutput{}, err
	}
	return sessiondto.ClaimsOutput{
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (i *Interactor) Subscribe(fn func(sessiondto.SessionOutput)) func() {
	return i.svc.Subscribe(func(snap domain.Snapshot) {
		fn(toOutput(snap))
	})
}

func toOutput(snap domain.Snapshot) sessiondto.SessionOutput {
	out := sessiondto.SessionOutput{
		Authenticated: snap.State == domain.Authenticated,
		Loading:       snap.Loading,
	}
	if out.Authenticated {
		out.Token = snap.Session.Token
		out.User = toUserOutput(snap.Session.User)
	}
	return out
}

func toUserOutput(user domain.User) sessiondto.UserOutput {
	return sessiondto.UserOutput{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		UserType: string(user.UserType),
	}
}
