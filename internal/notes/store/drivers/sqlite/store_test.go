package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, username string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FullName:     "Test User",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedNote(t *testing.T, s store.Store, ownerID, title string) domain.Note {
	t.Helper()
	now := time.Now().UTC()
	n := domain.Note{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Notes().CreateNote(context.Background(), n))
	return n
}

func seedTag(t *testing.T, s store.Store, ownerID, name string) domain.Tag {
	t.Helper()
	now := time.Now().UTC()
	tag := domain.Tag{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Tags().CreateTag(context.Background(), tag))
	return tag
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	u := seedUser(t, s, "alice")

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "Test User", got.FullName)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestNotesCRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	first := seedNote(t, s, alice.ID, "first")
	second := seedNote(t, s, alice.ID, "second")
	seedNote(t, s, bob.ID, "bobs")

	notes, err := s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, first.ID, notes[0].ID)
	require.Equal(t, second.ID, notes[1].ID)
	require.False(t, notes[0].IsArchived)
	require.False(t, notes[0].IsBookmarked)
	require.Nil(t, notes[0].BookmarkedAt)

	_, err = s.Notes().GetNote(ctx, bob.ID, first.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now().UTC()
	first.IsBookmarked = true
	first.BookmarkedAt = &now
	first.Content = "body"
	require.NoError(t, s.Notes().UpdateNote(ctx, first))

	got, err := s.Notes().GetNote(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	require.True(t, got.IsBookmarked)
	require.Equal(t, "body", got.Content)
	require.NotNil(t, got.BookmarkedAt)
	require.WithinDuration(t, now, *got.BookmarkedAt, time.Millisecond)

	// Updating a note owned by someone else touches nothing.
	foreign := first
	foreign.OwnerID = bob.ID
	require.ErrorIs(t, s.Notes().UpdateNote(ctx, foreign), store.ErrNotFound)

	require.NoError(t, s.Notes().DeleteNote(ctx, alice.ID, first.ID))
	require.NoError(t, s.Notes().DeleteNote(ctx, alice.ID, first.ID))

	n, err := s.Notes().DeleteNotes(ctx, alice.ID, []string{second.ID, idx.New().String()})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	notes, err = s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestDeleteNotesLongList(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedUser(t, s, "alice")
	first := seedNote(t, s, alice.ID, "first")
	last := seedNote(t, s, alice.ID, "last")
	kept := seedNote(t, s, alice.ID, "kept")

	// More ids than SQLite accepts as bound variables in one statement.
	ids := make([]string, 0, 33000)
	ids = append(ids, first.ID)
	for len(ids) < cap(ids)-1 {
		ids = append(ids, idx.New().String())
	}
	ids = append(ids, last.ID)

	var deleted int64
	err := s.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Notes().DeleteNotes(ctx, alice.ID, ids)
		deleted = n
		return err
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	notes, err := s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, kept.ID, notes[0].ID)
}

func TestNoteTagsOrderAndCascade(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedUser(t, s, "alice")
	note := seedNote(t, s, alice.ID, "n")
	work := seedTag(t, s, alice.ID, "work")
	home := seedTag(t, s, alice.ID, "home")
	misc := seedTag(t, s, alice.ID, "misc")

	now := time.Now().UTC()
	require.NoError(t, s.Notes().AddNoteTag(ctx, note.ID, home.ID, now))
	require.NoError(t, s.Notes().AddNoteTag(ctx, note.ID, work.ID, now))
	require.NoError(t, s.Notes().AddNoteTag(ctx, note.ID, misc.ID, now))
	require.ErrorIs(t, s.Notes().AddNoteTag(ctx, note.ID, home.ID, now), store.ErrAlreadyExists)

	got, err := s.Notes().GetNote(ctx, alice.ID, note.ID)
	require.NoError(t, err)
	require.Equal(t, []string{home.ID, work.ID, misc.ID}, got.TagIDs)

	require.NoError(t, s.Notes().RemoveNoteTag(ctx, note.ID, work.ID, now))
	require.ErrorIs(t, s.Notes().RemoveNoteTag(ctx, note.ID, work.ID, now), store.ErrNotFound)

	// Re-adding goes to the end.
	require.NoError(t, s.Notes().AddNoteTag(ctx, note.ID, work.ID, now))

	tags, err := s.Notes().ListNoteTags(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	require.Equal(t, []string{home.ID, misc.ID, work.ID}, []string{tags[0].ID, tags[1].ID, tags[2].ID})

	// Deleting a tag removes it from notes.
	require.NoError(t, s.Tags().DeleteTag(ctx, alice.ID, misc.ID))
	notes, err := s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{home.ID, work.ID}, notes[0].TagIDs)

	require.ErrorIs(t, s.Tags().DeleteTag(ctx, alice.ID, misc.ID), store.ErrNotFound)
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	tag := seedTag(t, s, alice.ID, "work")
	seedTag(t, s, bob.ID, "bobs")

	tags, err := s.Tags().ListTagsByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	require.NoError(t, s.Tags().RenameTag(ctx, alice.ID, tag.ID, "job", time.Now().UTC()))
	got, err := s.Tags().GetTag(ctx, alice.ID, tag.ID)
	require.NoError(t, err)
	require.Equal(t, "job", got.Name)

	require.ErrorIs(t, s.Tags().RenameTag(ctx, bob.ID, tag.ID, "x", time.Now().UTC()), store.ErrNotFound)
	_, err = s.Tags().GetTag(ctx, bob.ID, tag.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := seedUser(t, s, "alice")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		seedNote(t, tx, alice.ID, "lost")
		return boom
	})
	require.ErrorIs(t, err, boom)

	notes, err := s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, notes)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		seedNote(t, tx, alice.ID, "kept")
		return nil
	}))

	notes, err = s.Notes().ListNotesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestPingAndMigrationsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.ApplyMigrations())
}
