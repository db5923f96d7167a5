package in

import (
	"context"

	"sabalabor/internal/modules/notifications/dto"
)

type Usecase interface {
	List(ctx context.Context) (dto.ListOutput, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
