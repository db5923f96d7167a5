package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sabalabor/internal/modules/session/domain"
	sessionout "sabalabor/internal/modules/session/port/out"
	apperrors "sabalabor/internal/platform/errors"
	"sabalabor/internal/platform/httpapi"
)

type HTTPAuthGateway struct {
	client *httpapi.Client
}

func NewHTTPAuthGateway(client *httpapi.Client) sessionout.AuthGateway {
	return &HTTPAuthGateway{client: client}
}

type authResponse struct {
	Token       string      `json:"token"`
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

func (r authResponse) session() domain.Session {
	token := r.Token
	if token == "" {
		token = r.AccessToken
	}
	return domain.Session{Token: token, User: r.User}
}

func (g *HTTPAuthGateway) Login(ctx context.Context, email, password string) (domain.Session, error) {
	resp := authResponse{}
	body := map[string]string{"email": email, "password": password}
	if err := g.client.PostAnonymous(ctx, "/api/auth/login", body, &resp); err != nil {
		return domain.Session{}, credentialError(err)
	}
	return resp.session(), nil
}

func (g *HTTPAuthGateway) Register(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	resp := authResponse{}
	if err := g.client.PostAnonymous(ctx, "/api/auth/register", registration, &resp); err != nil {
		return domain.Session{}, credentialError(err)
	}
	return resp.session(), nil
}

// Login and register go out without the current bearer, so a 401 there is
// a credential rejection and not the end of the current session.
func credentialError(err error) error {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, err)
	}
	return err
}

func (g *HTTPAuthGateway) Logout(ctx context.Context) error {
	return g.client.Post(ctx, "/api/auth/logout", nil, nil)
}

// Verify accepts either {"user": {...}} or the bare user object.
func (g *HTTPAuthGateway) Verify(ctx context.Context) (domain.User, error) {
	raw := json.RawMessage{}
	if err := g.client.Get(ctx, "/api/auth/verify", nil, &raw); err != nil {
		return domain.User{}, err
	}
	wrapped := struct {
		User *domain.User `json:"user"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}
	user := domain.User{}
	if err := json.Unmarshal(raw, &user); err != nil {
		return domain.User{}, fmt.Errorf("decode verify response: %w", err)
	}
	return user, nil
}
