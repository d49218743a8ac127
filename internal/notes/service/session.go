package service

import (
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
)

// SessionService mints and checks the session tokens carried in the
// browser cookie.
type SessionService struct {
	Keys   *jwtx.Keyring
	Issuer string
	TTL    time.Duration
}

// Issue signs a session token for the user.
func (s *SessionService) Issue(u domain.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(u.ID, u.Username, ttl, s.Issuer, time.Now())
	return s.Keys.Signer().Sign(claims)
}

// Verifier returns a verifier bound to this service's keys and issuer.
func (s *SessionService) Verifier() jwtx.Verifier {
	return jwtx.NewVerifierHS256(s.Keys, jwtx.VerifyOptions{
		Issuer: s.Issuer,
		Leeway: 30 * time.Second,
	})
}

// Verify checks signature, algorithm, issuer and expiry.
func (s *SessionService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier().Verify(token)
}
