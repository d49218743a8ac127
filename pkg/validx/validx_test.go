package validx_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/validx"
	"github.com/stretchr/testify/require"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"no values", nil, false},
		{"single filled", []string{"a"}, false},
		{"single empty", []string{""}, true},
		{"spaces only", []string{"   "}, true},
		{"tabs and newlines", []string{"\t\n "}, true},
		{"one of many empty", []string{"a", "", "c"}, true},
		{"all filled", []string{"a", "b", "c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, validx.IsBlank(tt.values...))
		})
	}
}

func TestAllBlank(t *testing.T) {
	require.True(t, validx.AllBlank("", "  "))
	require.False(t, validx.AllBlank("", "x"))
	require.True(t, validx.AllBlank())
}

func TestIsUsernameValid(t *testing.T) {
	valid := []string{"jane.doe", "jane_doe", "j4ne", "a", "...", "___"}
	for _, u := range valid {
		require.True(t, validx.IsUsernameValid(u), u)
	}

	invalid := []string{"", "Jane", "jane doe", "jane-doe", "jane@doe", "JANE", "jäne", "jane\n"}
	for _, u := range invalid {
		require.False(t, validx.IsUsernameValid(u), u)
	}
}

func TestExceedsLength(t *testing.T) {
	require.False(t, validx.ExceedsLength(20, strings.Repeat("a", 19)))
	require.True(t, validx.ExceedsLength(20, strings.Repeat("a", 20)))
	require.True(t, validx.ExceedsLength(20, "short", strings.Repeat("b", 25)))

	// UTF-16 code units, not bytes or runes.
	require.False(t, validx.ExceedsLength(20, strings.Repeat("é", 19)))
	require.False(t, validx.ExceedsLength(20, strings.Repeat("語", 19)))
	require.True(t, validx.ExceedsLength(20, strings.Repeat("😀", 10)))
	require.False(t, validx.ExceedsLength(20, strings.Repeat("😀", 9)+"a"))
	require.True(t, validx.ExceedsLength(20, strings.Repeat("😀", 19)))
}

func TestIsID(t *testing.T) {
	require.True(t, validx.IsID(idx.New().String()))
	require.False(t, validx.IsID(""))
	require.False(t, validx.IsID("not-an-id"))
}
