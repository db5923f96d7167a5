package usecase

import (
	"context"
	"fmt"
	"strings"

	"sabalabor/internal/modules/notifications/domain"
	"sabalabor/internal/modules/notifications/dto"
	notificationsin "sabalabor/internal/modules/notifications/port/in"
	notificationsout "sabalabor/internal/modules/notifications/port/out"
	apperrors "sabalabor/internal/platform/errors"
)

type Interactor struct {
	gateway notificationsout.NotificationGateway
}

func NewInteractor(gateway notificationsout.NotificationGateway) notificationsin.Usecase {
	return &Interactor{gateway: gateway}
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	items, err := i.gateway.List(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Items: make([]dto.NotificationOutput, 0, len(items)), Unread: domain.Unread(items)}
	for _, item := range items {
		out.Items = append(out.Items, dto.NotificationOutput{
			ID:        item.ID,
			Title:     item.Title,
			Message:   item.Message,
			Kind:      item.Kind,
			Read:      item.Read,
			CreatedAt: item.CreatedAt,
		})
	}
	return out, nil
}

func (i *Interactor) MarkRead(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return i.gateway.MarkRead(ctx, id)
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return i.gateway.Delete(ctx, id)
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("notification id is required: %w", apperrors.ErrInvalidInput)
	}
	return id, nil
}
