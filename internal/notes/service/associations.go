package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/validx"
)

// AssociationService is the only writer of a note's tag list.
type AssociationService struct {
	Store store.Store
}

// Sentinels used inside transactions, mapped to client errors afterwards.
var (
	errAssocNoNote        = errors.New("note missing")
	errAssocNoTag         = errors.New("tag missing")
	errAssocAlreadyAdded  = errors.New("tag already on note")
	errAssocNotAssociated = errors.New("tag not on note")
)

func validateAssocIDs(noteID, tagID string) error {
	if validx.IsBlank(noteID, tagID) {
		return validationErr(MsgNoAssocIDs)
	}
	if !validx.IsID(noteID) || !validx.IsID(tagID) {
		return validationErr(MsgInvalidAssocIDs)
	}
	return nil
}

// Attach appends the tag to the note and returns the tag. The tag must
// belong to the note's owner.
func (s *AssociationService) Attach(ctx context.Context, ownerID, noteID, tagID string) (domain.Tag, error) {
	if err := validateAssocIDs(noteID, tagID); err != nil {
		return domain.Tag{}, err
	}

	var tag domain.Tag
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		note, err := tx.Notes().GetNote(ctx, ownerID, noteID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errAssocNoNote
			}
			return err
		}

		if note.HasTag(tagID) {
			return errAssocAlreadyAdded
		}

		tag, err = tx.Tags().GetTag(ctx, note.OwnerID, tagID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errAssocNoTag
			}
			return err
		}

		if err := tx.Notes().AddNoteTag(ctx, noteID, tagID, time.Now().UTC()); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return errAssocAlreadyAdded
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Tag{}, mapAssocErr("attach tag", err)
	}
	return tag, nil
}

// Detach removes the tag from the note.
func (s *AssociationService) Detach(ctx context.Context, ownerID, noteID, tagID string) error {
	if err := validateAssocIDs(noteID, tagID); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Notes().GetNote(ctx, ownerID, noteID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errAssocNoNote
			}
			return err
		}

		if err := tx.Notes().RemoveNoteTag(ctx, noteID, tagID, time.Now().UTC()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return errAssocNotAssociated
			}
			return err
		}
		return nil
	})
	if err != nil {
		return mapAssocErr("detach tag", err)
	}
	return nil
}

func mapAssocErr(op string, err error) error {
	switch {
	case errors.Is(err, errAssocNoNote):
		return notFoundErr(MsgAssocNoNote)
	case errors.Is(err, errAssocNoTag):
		return notFoundErr(MsgAssocNoTag)
	case errors.Is(err, errAssocAlreadyAdded):
		return validationErr(MsgTagAlreadyAdded)
	case errors.Is(err, errAssocNotAssociated):
		return notFoundErr(MsgTagNotAssociated)
	default:
		return internalErr(op, err)
	}
}
