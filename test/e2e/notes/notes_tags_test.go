package notes_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

// TestTagLifecycle covers tag CRUD and note associations.
func TestTagLifecycle(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()
	client, user := registerClient(t, baseURL, "Tagger")

	tag, err := client.CreateTag(ctx, notesdk.TagRequest{Name: "ideas"})
	require.NoError(t, err)
	require.Equal(t, user.ID, tag.Owner)

	note, err := client.CreateNote(ctx, notesdk.CreateNoteRequest{Content: "rocket skates"})
	require.NoError(t, err)

	_, err = client.AttachTag(ctx, note.ID, tag.ID)
	require.NoError(t, err)

	_, err = client.AttachTag(ctx, note.ID, tag.ID)
	assertStatus(t, err, http.StatusBadRequest, "Tag already Added To the Note!")

	_, err = client.UpdateTag(ctx, tag.ID, notesdk.TagRequest{Name: "plans"})
	require.NoError(t, err)

	notes, err := client.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Len(t, notes[0].Tags, 1)
	require.Equal(t, "plans", notes[0].Tags[0].Name)

	require.NoError(t, client.DeleteTag(ctx, tag.ID))

	notes, err = client.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, notes[0].Tags, "deleting a tag removes it from notes")
}

// TestCrossOwnerTagRejected checks a tag cannot be attached to another
// user's note or borrowed from another user.
func TestCrossOwnerTagRejected(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()
	alice, _ := registerClient(t, baseURL, "Alice")
	bob, _ := registerClient(t, baseURL, "Bob")

	aliceTag, err := alice.CreateTag(ctx, notesdk.TagRequest{Name: "alice"})
	require.NoError(t, err)
	bobNote, err := bob.CreateNote(ctx, notesdk.CreateNoteRequest{Title: "bob"})
	require.NoError(t, err)

	_, err = bob.AttachTag(ctx, bobNote.ID, aliceTag.ID)
	assertStatus(t, err, http.StatusNotFound, "No Tag found!")

	_, err = alice.AttachTag(ctx, bobNote.ID, aliceTag.ID)
	assertStatus(t, err, http.StatusNotFound, "No Note found!")
}
