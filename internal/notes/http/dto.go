package http

import (
	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

func toUser(u domain.User) notesdk.User {
	return notesdk.User{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

func toTag(t domain.Tag) notesdk.Tag {
	return notesdk.Tag{
		ID:        t.ID,
		Owner:     t.OwnerID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTags(tags []domain.Tag) []notesdk.Tag {
	out := make([]notesdk.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTag(t))
	}
	return out
}

func toNote(n domain.NoteWithTags) notesdk.Note {
	return notesdk.Note{
		ID:           n.ID,
		Owner:        n.OwnerID,
		Title:        n.Title,
		Content:      n.Content,
		IsArchived:   n.IsArchived,
		IsBookmarked: n.IsBookmarked,
		BookmarkedAt: n.BookmarkedAt,
		Tags:         toTags(n.Tags),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func toNotes(notes []domain.NoteWithTags) []notesdk.Note {
	out := make([]notesdk.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNote(n))
	}
	return out
}
