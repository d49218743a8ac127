package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk on fire")
	internal := internalErr("save", cause)

	require.True(t, IsKind(internal, KindInternal))
	require.ErrorIs(t, internal, cause)
	require.Equal(t, MsgInternal, MessageOf(internal))

	wrapped := fmt.Errorf("outer: %w", validationErr(MsgInvalidID))
	require.True(t, IsKind(wrapped, KindValidation))
	require.Equal(t, KindValidation, KindOf(wrapped))
	require.Equal(t, MsgInvalidID, MessageOf(wrapped))

	plain := errors.New("plain")
	require.Equal(t, KindInternal, KindOf(plain))
	require.False(t, IsKind(plain, KindInternal))
	require.Equal(t, MsgInternal, MessageOf(plain))

	require.Equal(t, "not_found: Note Not Found!", notFoundErr(MsgNoteNotFound).Error())
}
