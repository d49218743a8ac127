package notes_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit verifies the strict limit on login attempts.
func TestLoginRateLimit(t *testing.T) {
	baseURL := setupNotesContainerWithDefaultRateLimits(t)
	client := notesdk.NewSDKClient(baseURL)

	var limited bool
	for i := 0; i < 10; i++ {
		_, _, err := client.Login(t.Context(), notesdk.LoginRequest{Username: "nobody", Password: "x"})
		require.Error(t, err)
		if notesdk.IsStatus(err, http.StatusTooManyRequests) {
			limited = true
			break
		}
		assertStatus(t, err, http.StatusNotFound, "")
	}

	require.True(t, limited, "login should be rate limited within 10 attempts")
}
