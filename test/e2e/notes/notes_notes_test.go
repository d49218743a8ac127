package notes_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

// TestNoteFlags covers the archive/bookmark rules end to end.
func TestNoteFlags(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()
	client, _ := registerClient(t, baseURL, "Flag Tester")

	note, err := client.CreateNote(ctx, notesdk.CreateNoteRequest{Title: "todo", Content: "write tests"})
	require.NoError(t, err)

	yes, no := true, false

	bookmarked, err := client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsBookmarked: &yes})
	require.NoError(t, err)
	require.True(t, bookmarked.IsBookmarked)
	require.NotNil(t, bookmarked.BookmarkedAt)

	_, err = client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsArchived: &yes})
	assertStatus(t, err, http.StatusBadRequest, "Cannot archive a bookmarked note!")

	cleared, err := client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsBookmarked: &no})
	require.NoError(t, err)
	require.Nil(t, cleared.BookmarkedAt)

	archived, err := client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsArchived: &yes})
	require.NoError(t, err)
	require.True(t, archived.IsArchived)

	_, err = client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsBookmarked: &yes})
	assertStatus(t, err, http.StatusBadRequest, "Cannot bookmark an archived note!")
}

// TestBatchDeleteIsIdempotent deletes the same ids twice.
func TestBatchDeleteIsIdempotent(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()
	client, _ := registerClient(t, baseURL, "Batch Tester")

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		note, err := client.CreateNote(ctx, notesdk.CreateNoteRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, note.ID)
	}

	first, err := client.BatchDelete(ctx, ids[:2])
	require.NoError(t, err)
	second, err := client.BatchDelete(ctx, ids[:2])
	require.NoError(t, err)
	require.Equal(t, first, second)

	notes, err := client.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, ids[2], notes[0].ID)
}

// TestNotesAreIsolatedBetweenUsers checks another user cannot see or
// change someone else's notes.
func TestNotesAreIsolatedBetweenUsers(t *testing.T) {
	baseURL := setupNotesContainer(t)
	ctx := t.Context()
	alice, _ := registerClient(t, baseURL, "Alice")
	bob, _ := registerClient(t, baseURL, "Bob")

	note, err := alice.CreateNote(ctx, notesdk.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)

	notes, err := bob.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)

	title := "mine now"
	_, err = bob.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{Title: &title})
	assertStatus(t, err, http.StatusNotFound, "Note Not Found!")

	require.NoError(t, bob.DeleteNote(ctx, note.ID))

	notes, err = alice.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
}
