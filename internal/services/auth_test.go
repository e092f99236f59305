package services

import (
	"context"
	"errors"
	"testing"

	"symposiumadmin/internal/domain"
)

type mockPasskeyVerifier struct{ err error }

func (m *mockPasskeyVerifier) Verify(passkey string) error { return m.err }

type mockSessionIssuer struct {
	credential string
	err        error
	gotRole    string
}

func (m *mockSessionIssuer) Issue(role string) (string, error) {
	m.gotRole = role
	return m.credential, m.err
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("empty passkey", func(t *testing.T) {
		svc := NewAuthService(&mockPasskeyVerifier{}, &mockSessionIssuer{})
		_, err := svc.Login(ctx, "")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("wrong passkey", func(t *testing.T) {
		svc := NewAuthService(&mockPasskeyVerifier{err: domain.ErrUnauthorized}, &mockSessionIssuer{})
		_, err := svc.Login(ctx, "nope")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("success issues admin credential", func(t *testing.T) {
		issuer := &mockSessionIssuer{credential: "signed-credential"}
		svc := NewAuthService(&mockPasskeyVerifier{}, issuer)

		credential, err := svc.Login(ctx, "letmein")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if credential != "signed-credential" {
			t.Fatalf("unexpected credential %q", credential)
		}
		if issuer.gotRole != AdminRole {
			t.Fatalf("issued role %q", issuer.gotRole)
		}
	})
}
