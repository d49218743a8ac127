package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    *sqlite.Store
	auth     *AuthService
	sessions *SessionService
	notes    *NoteService
	tags     *TagService
	assoc    *AssociationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	keys, err := jwtx.NewKeyring([]byte(strings.Repeat("s", jwtx.MinSecretSize)))
	require.NoError(t, err)

	sessions := &SessionService{Keys: keys, Issuer: "notes-test", TTL: time.Hour}
	return &testEnv{
		store:    s,
		sessions: sessions,
		auth:     &AuthService{Store: s, Sessions: sessions},
		notes:    &NoteService{Store: s},
		tags:     &TagService{Store: s},
		assoc:    &AssociationService{Store: s},
	}
}

// seedUser inserts a user directly, skipping the bcrypt cost of Register.
func (e *testEnv) seedUser(t *testing.T, username string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FullName:     "Test " + username,
		PasswordHash: "unused",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))
	return u
}

func requireKind(t *testing.T, err error, kind Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, IsKind(err, kind), "want kind %s, got %v", kind, err)
	require.Equal(t, msg, MessageOf(err))
}

func ptr[T any](v T) *T { return &v }
