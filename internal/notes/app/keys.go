package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
)

// InitSessionKeys builds the HS256 keyring from the configured secrets.
//
// Without JWT_SECRET, which Validate only allows in development, a random
// secret is generated. Sessions then do not survive a restart.
// JWT_PREVIOUS_SECRETS keeps tokens signed with a rotated-out secret valid
// until they expire.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.Keyring, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("generate development secret: %w", err)
		}
		secret = generated
		logger.Warn("JWT_SECRET not set, using an ephemeral secret; sessions end on restart")
	}

	previous := make([][]byte, 0, len(cfg.JWTPreviousSecrets))
	for _, s := range cfg.JWTPreviousSecrets {
		previous = append(previous, []byte(s))
	}

	keys, err := jwtx.NewKeyring([]byte(secret), previous...)
	if err != nil {
		return nil, fmt.Errorf("load session keys: %w", err)
	}

	logger.Info("session keys loaded",
		"kid", jwtx.SecretKID([]byte(secret)),
		"previous", len(previous),
	)
	return keys, nil
}
