package out

import (
	"context"

	"sabalabor/internal/modules/notifications/domain"
)

type NotificationGateway interface {
	List(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
