package in

import (
	"context"

	"sabalabor/internal/modules/session/dto"
)

type Usecase interface {
	Restore(ctx context.Context) dto.SessionOutput
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.SessionOutput, error)
	Logout(ctx context.Context, input dto.LogoutInput)
	Current(ctx context.Context) dto.SessionOutput
	Verify(ctx context.Context) (dto.UserOutput, error)
	Claims(ctx context.Context) (dto.ClaimsOutput, error)
	Subscribe(fn func(dto.SessionOutput)) (unsubscribe func())
}
