package services

import (
	"context"
	"fmt"

	"symposiumadmin/internal/domain"
)

// AdminRole is the role claim carried by every admin session credential.
const AdminRole = "admin"

type authService struct {
	passkeys domain.PasskeyVerifier
	issuer   domain.SessionIssuer
}

// NewAuthService creates an AuthService over the passkey verifier and
// session issuer.
func NewAuthService(passkeys domain.PasskeyVerifier, issuer domain.SessionIssuer) domain.AuthService {
	return &authService{passkeys: passkeys, issuer: issuer}
}

func (s *authService) Login(ctx context.Context, passkey string) (string, error) {
	if passkey == "" {
		return "", domain.ErrUnauthorized
	}
	if err := s.passkeys.Verify(passkey); err != nil {
		return "", domain.ErrUnauthorized
	}
	credential, err := s.issuer.Issue(AdminRole)
	if err != nil {
		return "", fmt.Errorf("issue session credential: %w", err)
	}
	return credential, nil
}
