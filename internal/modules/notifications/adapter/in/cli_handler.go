package in

import (
	"context"

	"sabalabor/internal/modules/notifications/dto"
	notificationsin "sabalabor/internal/modules/notifications/port/in"
)

type CLIHandler struct {
	usecase notificationsin.Usecase
}

func NewCLIHandler(usecase notificationsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) MarkRead(ctx context.Context, id string) error {
	return h.usecase.MarkRead(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
