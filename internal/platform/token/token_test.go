package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sabalabor/internal/platform/token"
)

func TestInspectReadsRegisteredClaims(t *testing.T) {
	t.Parallel()
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "sabalabor-dev",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := token.Inspect(signed)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if claims.Subject != "42" || claims.Issuer != "sabalabor-dev" || !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestInspectOpaqueToken(t *testing.T) {
	t.Parallel()
	if _, err := token.Inspect("tok-1"); !errors.Is(err, token.ErrOpaque) {
		t.Fatalf("expected opaque error, got %v", err)
	}
}
