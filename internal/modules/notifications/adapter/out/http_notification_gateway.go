package out

import (
	"context"
	"net/url"

	"sabalabor/internal/modules/notifications/domain"
	notificationsout "sabalabor/internal/modules/notifications/port/out"
	"sabalabor/internal/platform/httpapi"
)

type HTTPNotificationGateway struct {
	client *httpapi.Client
}

func NewHTTPNotificationGateway(client *httpapi.Client) notificationsout.NotificationGateway {
	return &HTTPNotificationGateway{client: client}
}

func (g *HTTPNotificationGateway) List(ctx context.Context) ([]domain.Notification, error) {
	items := []domain.Notification{}
	if err := g.client.Get(ctx, "/api/notifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *HTTPNotificationGateway) MarkRead(ctx context.Context, id string) error {
	return g.client.Put(ctx, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (g *HTTPNotificationGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/api/notifications/"+url.PathEscape(id), nil)
}
