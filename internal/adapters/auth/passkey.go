package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"symposiumadmin/internal/domain"
)

type passkeyVerifier struct {
	plain string
	hash  string
}

// NewPasskeyVerifier returns a PasskeyVerifier for the shared admin passkey.
// When a bcrypt hash is configured it takes precedence over the plaintext
// passkey; the plaintext path still compares in constant time.
func NewPasskeyVerifier(plain, hash string) domain.PasskeyVerifier {
	return &passkeyVerifier{plain: plain, hash: hash}
}

func (v *passkeyVerifier) Verify(passkey string) error {
	if v.hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(passkey)); err != nil {
			return domain.ErrUnauthorized
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(v.plain), []byte(passkey)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}
