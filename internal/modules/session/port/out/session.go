package out

import (
	"context"

	"sabalabor/internal/modules/session/domain"
)

// CredentialStore is the durable copy of the session.
type CredentialStore interface {
	// LoadSession returns apperrors.ErrNoSession when either entry is
	// missing or the user entry does not decode.
	LoadSession(ctx context.Context) (domain.Session, error)
	CommitSession(ctx context.Context, session domain.Session) error
	ClearSession(ctx context.Context) error
}

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, registration domain.Registration) (domain.Session, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (domain.User, error)
}

// BearerSink receives the credential attached to outgoing requests.
type BearerSink interface {
	SetBearer(token string)
	ClearBearer()
}
