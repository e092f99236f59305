package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"symposiumadmin/internal/domain"
)

// Verification errors. ErrInvalidSignature covers any forged or tampered
// credential; callers should treat all of these as unauthorized.
var (
	ErrInvalidFormat    = errors.New("token: invalid format")
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrInvalidPayload   = errors.New("token: invalid payload")
	ErrExpired          = errors.New("token: expired")
)

// sessionClaims is the signed session payload.
type sessionClaims struct {
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Codec signs and verifies compact admin session credentials. The credential
// is base64url(json claims) + "." + hex(HMAC-SHA256 over the encoded half).
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing with the given secret. Credentials carry
// an expiry claim of ttl from issue time, checked on Verify independently of
// any cookie max-age.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

var _ domain.SessionIssuer = (*Codec)(nil)
var _ domain.SessionVerifier = (*Codec)(nil)

// Issue signs a credential for the given role.
func (c *Codec) Issue(role string) (string, error) {
	now := c.now()
	payload, err := json.Marshal(sessionClaims{
		Role:      role,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(c.ttl).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.mac(encoded), nil
}

// Verify checks the credential's signature and expiry and returns its role.
func (c *Codec) Verify(credential string) (string, error) {
	i := strings.LastIndex(credential, ".")
	if i <= 0 || i == len(credential)-1 {
		return "", ErrInvalidFormat
	}
	encoded, sig := credential[:i], credential[i+1:]

	// Constant-time comparison: a tampered credential must not leak how
	// much of the MAC matched.
	expected, err := hex.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	if !hmac.Equal(expected, mac.Sum(nil)) {
		return "", ErrInvalidSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidPayload
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", ErrInvalidPayload
	}
	if claims.ExpiresAt > 0 && c.now().Unix() > claims.ExpiresAt {
		return "", ErrExpired
	}
	return claims.Role, nil
}

func (c *Codec) mac(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
