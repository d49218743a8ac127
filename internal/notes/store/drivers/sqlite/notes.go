package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
)

type notesRepo struct {
	db dbtx
}

const noteColumns = `id, owner_id, title, content, is_archived, is_bookmarked, bookmarked_at, created_at, updated_at`

func scanNote(row interface{ Scan(...any) error }) (domain.Note, error) {
	var (
		n            domain.Note
		bookmarkedAt sql.NullTime
	)
	err := row.Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Content,
		&n.IsArchived, &n.IsBookmarked, &bookmarkedAt,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return domain.Note{}, err
	}
	n.BookmarkedAt = mapNullTimePtr(bookmarkedAt)
	return n, nil
}

func (r *notesRepo) ListNotesByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}

	notes := []domain.Note{}
	index := map[string]int{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		index[n.ID] = len(notes)
		notes = append(notes, n)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The first result set must be closed before the next query: the pool
	// holds a single connection.
	links, err := r.db.QueryContext(ctx, `
		SELECT nt.note_id, nt.tag_id
		FROM note_tags nt
		JOIN notes n ON n.id = nt.note_id
		WHERE n.owner_id = ?
		ORDER BY nt.note_id, nt.position`, ownerID)
	if err != nil {
		return nil, err
	}
	defer links.Close()

	for links.Next() {
		var noteID, tagID string
		if err := links.Scan(&noteID, &tagID); err != nil {
			return nil, err
		}
		if i, ok := index[noteID]; ok {
			notes[i].TagIDs = append(notes[i].TagIDs, tagID)
		}
	}
	return notes, links.Err()
}

func (r *notesRepo) GetNote(ctx context.Context, ownerID, id string) (domain.Note, error) {
	n, err := scanNote(r.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID))
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}

	n.TagIDs, err = r.tagIDs(ctx, id)
	if err != nil {
		return domain.Note{}, err
	}
	return n, nil
}

func (r *notesRepo) tagIDs(ctx context.Context, noteID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tag_id FROM note_tags WHERE note_id = ? ORDER BY position`, noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.OwnerID, n.Title, n.Content,
		n.IsArchived, n.IsBookmarked, mapOptionalTime(n.BookmarkedAt),
		n.CreatedAt, n.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, is_archived = ?, is_bookmarked = ?,
		    bookmarked_at = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		n.Title, n.Content, n.IsArchived, n.IsBookmarked,
		mapOptionalTime(n.BookmarkedAt), n.UpdatedAt,
		n.ID, n.OwnerID,
	)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *notesRepo) DeleteNote(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
	return err
}

// deleteChunk keeps each statement well under SQLite's bound variable limit.
const deleteChunk = 500

func (r *notesRepo) DeleteNotes(ctx context.Context, ownerID string, ids []string) (int64, error) {
	var total int64
	for start := 0; start < len(ids); start += deleteChunk {
		chunk := ids[start:min(start+deleteChunk, len(ids))]

		args := make([]any, 0, len(chunk)+1)
		args = append(args, ownerID)
		for _, id := range chunk {
			args = append(args, id)
		}

		res, err := r.db.ExecContext(ctx,
			`DELETE FROM notes WHERE owner_id = ? AND id IN (`+placeholders(len(chunk))+`)`, args...)
		if err != nil {
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (r *notesRepo) AddNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO note_tags (note_id, tag_id, position)
		SELECT ?, ?, COALESCE(MAX(position), 0) + 1 FROM note_tags WHERE note_id = ?`,
		noteID, tagID, noteID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return r.touch(ctx, noteID, now)
}

func (r *notesRepo) RemoveNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM note_tags WHERE note_id = ? AND tag_id = ?`, noteID, tagID)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	return r.touch(ctx, noteID, now)
}

func (r *notesRepo) touch(ctx context.Context, noteID string, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notes SET updated_at = ? WHERE id = ?`, now, noteID)
	return err
}

func (r *notesRepo) ListNoteTags(ctx context.Context, noteID string) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.owner_id, t.name, t.created_at, t.updated_at
		FROM note_tags nt
		JOIN tags t ON t.id = nt.tag_id
		WHERE nt.note_id = ?
		ORDER BY nt.position`, noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ store.Notes = (*notesRepo)(nil)
