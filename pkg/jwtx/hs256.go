package jwtx

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretSize is the smallest HMAC secret accepted, in bytes.
const MinSecretSize = 32

// SecretKID derives a stable key identifier from a secret so tokens can be
// matched with the secret that signed them after a rotation. Only a short
// digest prefix is exposed.
func SecretKID(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:8])
}

// HS256Signer implements the Signer interface using HMAC-SHA256.
type HS256Signer struct {
	kid    string
	secret []byte
}

func newHS256Signer(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{
		kid:    SecretKID(secret),
		secret: append([]byte(nil), secret...),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }
func (s *HS256Signer) KID() string { return s.kid }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check on the secret.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretSize {
		return ErrWeakSecret
	}
	return nil
}

// Keyring holds the HMAC secrets accepted for verification: the current
// signing secret plus any previous ones still inside their grace period.
// It's safe for concurrent use.
type Keyring struct {
	mu      sync.RWMutex
	primary string
	secrets map[string][]byte
}

// NewKeyring builds a keyring whose primary secret is current. Previous
// secrets are accepted for verification only.
func NewKeyring(current []byte, previous ...[]byte) (*Keyring, error) {
	k := &Keyring{secrets: make(map[string][]byte, 1+len(previous))}
	if err := k.add(current); err != nil {
		return nil, err
	}
	k.primary = SecretKID(current)

	for _, p := range previous {
		if err := k.add(p); err != nil {
			return nil, fmt.Errorf("jwtx: previous secret: %w", err)
		}
	}
	return k, nil
}

func (k *Keyring) add(secret []byte) error {
	if len(secret) < MinSecretSize {
		return ErrWeakSecret
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.secrets[SecretKID(secret)] = append([]byte(nil), secret...)
	return nil
}

// Signer returns a signer for the primary secret.
func (k *Keyring) Signer() Signer {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return &HS256Signer{kid: k.primary, secret: k.secrets[k.primary]}
}

// get returns the secret for a kid. An empty kid resolves to the primary
// secret so tokens minted before kids were stamped keep working.
func (k *Keyring) get(kid string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if kid == "" {
		kid = k.primary
	}
	secret, ok := k.secrets[kid]
	if !ok {
		return nil, ErrUnknownKID
	}
	return secret, nil
}

// IsReady reports whether a signing secret is loaded.
func (k *Keyring) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.secrets[k.primary]
	return ok
}

// HS256Verifier validates JWTs signed using HMAC-SHA256.
type HS256Verifier struct {
	keys *Keyring
	opts VerifyOptions
}

// NewVerifierHS256 creates a verifier over a keyring.
func NewVerifierHS256(keys *Keyring, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{keys: keys, opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	if tokenStr == "" {
		return Claims{}, ErrMalformed
	}

	// Only HMAC; any other alg fails as an invalid signature.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.opts.Leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return v.keys.get(kid)
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, ErrUnknownKID):
			return Claims{}, ErrUnknownKID
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrAlgMismatch
		}
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
