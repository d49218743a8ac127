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

type TagService struct {
	Store store.Store
}

// ListMine returns the owner's tags in creation order.
func (s *TagService) ListMine(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	if validx.IsBlank(ownerID) {
		return nil, validationErr(MsgNoUserID)
	}
	tags, err := s.Store.Tags().ListTagsByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalErr("list tags", err)
	}
	return tags, nil
}

func (s *TagService) Create(ctx context.Context, ownerID, name string) (domain.Tag, error) {
	if validx.IsBlank(ownerID) {
		return domain.Tag{}, validationErr(MsgNoUserID)
	}
	if validx.IsBlank(name) {
		return domain.Tag{}, validationErr(MsgTagFieldsEmpty)
	}

	now := time.Now().UTC()
	t := domain.Tag{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Tags().CreateTag(ctx, t); err != nil {
		return domain.Tag{}, internalErr("create tag", err)
	}
	return t, nil
}

// Update renames a tag.
func (s *TagService) Update(ctx context.Context, ownerID, id, name string) (domain.Tag, error) {
	if validx.IsBlank(name, id) {
		return domain.Tag{}, validationErr(MsgTagFieldsEmpty)
	}
	if !validx.IsID(id) {
		return domain.Tag{}, validationErr(MsgInvalidID)
	}

	var result domain.Tag
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tags().RenameTag(ctx, ownerID, id, name, time.Now().UTC()); err != nil {
			return err
		}
		t, err := tx.Tags().GetTag(ctx, ownerID, id)
		if err != nil {
			return err
		}
		result = t
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Tag{}, notFoundErr(MsgNoTagFound)
		}
		return domain.Tag{}, internalErr("rename tag", err)
	}
	return result, nil
}

// Delete removes a tag and its links to notes.
func (s *TagService) Delete(ctx context.Context, ownerID, id string) error {
	if validx.IsBlank(id) {
		return validationErr(MsgNoTagID)
	}
	if !validx.IsID(id) {
		return validationErr(MsgInvalidID)
	}

	if err := s.Store.Tags().DeleteTag(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundErr(MsgTagNotFound)
		}
		return internalErr("delete tag", err)
	}
	return nil
}
