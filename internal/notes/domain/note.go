package domain

import (
	"errors"
	"time"
)

// ErrArchivedAndBookmarked is the forbidden joint flag state.
var ErrArchivedAndBookmarked = errors.New("domain: note cannot be both archived and bookmarked")

type Note struct {
	ID           string
	OwnerID      string
	Title        string
	Content      string
	IsArchived   bool
	IsBookmarked bool
	BookmarkedAt *time.Time // set while bookmarked
	TagIDs       []string   // insertion order, unique
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NotePatch carries optional changes to a note. A nil field is absent.
type NotePatch struct {
	Title        *string
	Content      *string
	IsArchived   *bool
	IsBookmarked *bool
}

// Validate reports whether the flags are in an allowed state.
func (n Note) Validate() error {
	if n.IsArchived && n.IsBookmarked {
		return ErrArchivedAndBookmarked
	}
	return nil
}

// Apply merges the patch into the note and keeps BookmarkedAt in step with
// the bookmark flag. It does not check the flag invariant.
func (n *Note) Apply(p NotePatch, now time.Time) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.IsArchived != nil {
		n.IsArchived = *p.IsArchived
	}
	if p.IsBookmarked != nil {
		was := n.IsBookmarked
		n.IsBookmarked = *p.IsBookmarked
		switch {
		case !was && n.IsBookmarked:
			t := now
			n.BookmarkedAt = &t
		case was && !n.IsBookmarked:
			n.BookmarkedAt = nil
		}
	}
	n.UpdatedAt = now
}

// HasTag reports whether tagID is referenced by the note.
func (n Note) HasTag(tagID string) bool {
	for _, id := range n.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// NoteWithTags is a note paired with its resolved tags, in TagIDs order.
type NoteWithTags struct {
	Note
	Tags []Tag
}
