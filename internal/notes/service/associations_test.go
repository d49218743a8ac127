package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestAttachDetach(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")

	note, err := env.notes.Create(ctx, alice.ID, "n", "")
	require.NoError(t, err)
	work, err := env.tags.Create(ctx, alice.ID, "work")
	require.NoError(t, err)
	home, err := env.tags.Create(ctx, alice.ID, "home")
	require.NoError(t, err)

	got, err := env.assoc.Attach(ctx, alice.ID, note.ID, home.ID)
	require.NoError(t, err)
	require.Equal(t, home.ID, got.ID)
	require.Equal(t, "home", got.Name)

	_, err = env.assoc.Attach(ctx, alice.ID, note.ID, home.ID)
	requireKind(t, err, KindValidation, MsgTagAlreadyAdded)

	_, err = env.assoc.Attach(ctx, alice.ID, note.ID, work.ID)
	require.NoError(t, err)

	notes, err := env.notes.ListMine(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{home.ID, work.ID}, notes[0].TagIDs)
	require.Equal(t, "home", notes[0].Tags[0].Name)
	require.Equal(t, "work", notes[0].Tags[1].Name)

	require.NoError(t, env.assoc.Detach(ctx, alice.ID, note.ID, home.ID))
	err = env.assoc.Detach(ctx, alice.ID, note.ID, home.ID)
	requireKind(t, err, KindNotFound, MsgTagNotAssociated)

	notes, err = env.notes.ListMine(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{work.ID}, notes[0].TagIDs)
}

func TestAttachValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	note, err := env.notes.Create(ctx, alice.ID, "n", "")
	require.NoError(t, err)
	bobsTag, err := env.tags.Create(ctx, bob.ID, "bobs")
	require.NoError(t, err)

	_, err = env.assoc.Attach(ctx, alice.ID, "", bobsTag.ID)
	requireKind(t, err, KindValidation, MsgNoAssocIDs)
	_, err = env.assoc.Attach(ctx, alice.ID, note.ID, "zzz")
	requireKind(t, err, KindValidation, MsgInvalidAssocIDs)
	_, err = env.assoc.Attach(ctx, alice.ID, idx.New().String(), bobsTag.ID)
	requireKind(t, err, KindNotFound, MsgAssocNoNote)
	_, err = env.assoc.Attach(ctx, alice.ID, note.ID, idx.New().String())
	requireKind(t, err, KindNotFound, MsgAssocNoTag)

	// Another user's tag is treated as missing.
	_, err = env.assoc.Attach(ctx, alice.ID, note.ID, bobsTag.ID)
	requireKind(t, err, KindNotFound, MsgAssocNoTag)

	// Another user's note is treated as missing too.
	_, err = env.assoc.Attach(ctx, bob.ID, note.ID, bobsTag.ID)
	requireKind(t, err, KindNotFound, MsgAssocNoNote)

	err = env.assoc.Detach(ctx, alice.ID, " ", bobsTag.ID)
	requireKind(t, err, KindValidation, MsgNoAssocIDs)
	err = env.assoc.Detach(ctx, alice.ID, idx.New().String(), bobsTag.ID)
	requireKind(t, err, KindNotFound, MsgAssocNoNote)
}
