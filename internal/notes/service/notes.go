package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/validx"
)

type NoteService struct {
	Store store.Store
}

// errForbiddenFlags aborts the update transaction so the merged state is
// never committed.
var errForbiddenFlags = errors.New("forbidden flag state")

// ListMine returns the owner's notes in creation order with tags resolved.
func (s *NoteService) ListMine(ctx context.Context, ownerID string) ([]domain.NoteWithTags, error) {
	if validx.IsBlank(ownerID) {
		return nil, validationErr(MsgNoUserID)
	}

	notes, err := s.Store.Notes().ListNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalErr("list notes", err)
	}

	// Only the owner's tags can be attached to the owner's notes, so one
	// lookup resolves every reference.
	tags, err := s.Store.Tags().ListTagsByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalErr("list tags", err)
	}
	byID := make(map[string]domain.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	out := make([]domain.NoteWithTags, 0, len(notes))
	for _, n := range notes {
		nt := domain.NoteWithTags{Note: n, Tags: make([]domain.Tag, 0, len(n.TagIDs))}
		for _, id := range n.TagIDs {
			if t, ok := byID[id]; ok {
				nt.Tags = append(nt.Tags, t)
			}
		}
		out = append(out, nt)
	}
	return out, nil
}

// Create stores a new note with both flags cleared.
func (s *NoteService) Create(ctx context.Context, ownerID, title, content string) (domain.NoteWithTags, error) {
	if validx.IsBlank(ownerID) {
		return domain.NoteWithTags{}, validationErr(MsgNoUserID)
	}
	if validx.AllBlank(title, content) {
		return domain.NoteWithTags{}, validationErr(MsgNoteEmpty)
	}

	now := time.Now().UTC()
	n := domain.Note{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Notes().CreateNote(ctx, n); err != nil {
		return domain.NoteWithTags{}, internalErr("create note", err)
	}

	return domain.NoteWithTags{Note: n, Tags: []domain.Tag{}}, nil
}

// Update applies a partial change. The requested flags are checked before
// touching storage, then the merged note is checked again inside the
// transaction.
func (s *NoteService) Update(ctx context.Context, ownerID, id string, patch domain.NotePatch) (domain.NoteWithTags, error) {
	if err := validateNoteID(id); err != nil {
		return domain.NoteWithTags{}, err
	}
	if patchIsEmpty(patch) {
		return domain.NoteWithTags{}, validationErr(MsgNothingToUpdate)
	}
	if isTrue(patch.IsArchived) && isTrue(patch.IsBookmarked) {
		return domain.NoteWithTags{}, validationErr(MsgArchivedBookmark)
	}

	var result domain.NoteWithTags
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Notes().GetNote(ctx, ownerID, id)
		if err != nil {
			return err
		}

		n.Apply(patch, time.Now().UTC())
		if err := n.Validate(); err != nil {
			return errForbiddenFlags
		}

		if err := tx.Notes().UpdateNote(ctx, n); err != nil {
			return err
		}

		tags, err := tx.Notes().ListNoteTags(ctx, n.ID)
		if err != nil {
			return err
		}
		result = domain.NoteWithTags{Note: n, Tags: tags}
		return nil
	})

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.NoteWithTags{}, notFoundErr(MsgNoteNotFound)
	case errors.Is(err, errForbiddenFlags):
		if isTrue(patch.IsBookmarked) {
			return domain.NoteWithTags{}, validationErr(MsgBookmarkArchived)
		}
		return domain.NoteWithTags{}, validationErr(MsgArchiveBookmarked)
	default:
		return domain.NoteWithTags{}, internalErr("update note", err)
	}
}

// Delete removes a note. A note that does not exist is already deleted.
func (s *NoteService) Delete(ctx context.Context, ownerID, id string) error {
	if err := validateNoteID(id); err != nil {
		return err
	}
	if err := s.Store.Notes().DeleteNote(ctx, ownerID, id); err != nil {
		return internalErr("delete note", err)
	}
	return nil
}

// BatchDelete removes every listed note of the owner and echoes the
// requested ids back. Every id must be well formed.
func (s *NoteService) BatchDelete(ctx context.Context, ownerID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, validationErr(MsgNoNotesSelected)
	}
	for _, id := range ids {
		if err := validateNoteID(id); err != nil {
			return nil, err
		}
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Notes().DeleteNotes(ctx, ownerID, ids)
		return err
	})
	if err != nil {
		return nil, internalErr("batch delete notes", err)
	}
	return ids, nil
}

func validateNoteID(id string) error {
	if validx.IsBlank(id) {
		return validationErr(MsgNoNoteID)
	}
	if !validx.IsID(id) {
		return validationErr(MsgInvalidID)
	}
	return nil
}

// patchIsEmpty reports whether the patch carries nothing: every field absent
// and text fields blank.
func patchIsEmpty(p domain.NotePatch) bool {
	if p.IsArchived != nil || p.IsBookmarked != nil {
		return false
	}
	return (p.Title == nil || validx.IsBlank(*p.Title)) &&
		(p.Content == nil || validx.IsBlank(*p.Content))
}

func isTrue(b *bool) bool { return b != nil && *b }
