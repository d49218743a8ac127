package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/jackc/pgx/v5"
)

type notesRepo struct {
	q querier
}

const noteColumns = `id, owner_id, title, content, is_archived, is_bookmarked, bookmarked_at, created_at, updated_at`

func scanNote(row pgx.Row) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Content,
		&n.IsArchived, &n.IsBookmarked, &n.BookmarkedAt,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *notesRepo) ListNotesByOwner(ctx context.Context, ownerID string) ([]domain.Note, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		return scanNote(row)
	})
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(notes))
	for i, n := range notes {
		index[n.ID] = i
	}

	links, err := r.q.Query(ctx, `
		SELECT nt.note_id, nt.tag_id
		FROM note_tags nt
		JOIN notes n ON n.id = nt.note_id
		WHERE n.owner_id = $1
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
	n, err := scanNote(r.q.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT tag_id FROM note_tags WHERE note_id = $1 ORDER BY position`, id)
	if err != nil {
		return domain.Note{}, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return domain.Note{}, err
	}
	if len(ids) > 0 {
		n.TagIDs = ids
	}
	return n, nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.OwnerID, n.Title, n.Content,
		n.IsArchived, n.IsBookmarked, n.BookmarkedAt,
		n.CreatedAt, n.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE notes
		SET title = $1, content = $2, is_archived = $3, is_bookmarked = $4,
		    bookmarked_at = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8`,
		n.Title, n.Content, n.IsArchived, n.IsBookmarked,
		n.BookmarkedAt, n.UpdatedAt,
		n.ID, n.OwnerID,
	)
	if err != nil {
		return err
	}
	return mustAffect(tag)
}

func (r *notesRepo) DeleteNote(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	return err
}

func (r *notesRepo) DeleteNotes(ctx context.Context, ownerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx,
		`DELETE FROM notes WHERE owner_id = $1 AND id = ANY($2)`, ownerID, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *notesRepo) AddNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO note_tags (note_id, tag_id, position)
		SELECT $1::text, $2::text, COALESCE(MAX(position), 0) + 1
		FROM note_tags WHERE note_id = $1::text`,
		noteID, tagID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return r.touch(ctx, noteID, now)
}

func (r *notesRepo) RemoveNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM note_tags WHERE note_id = $1 AND tag_id = $2`, noteID, tagID)
	if err != nil {
		return err
	}
	if err := mustAffect(tag); err != nil {
		return err
	}
	return r.touch(ctx, noteID, now)
}

func (r *notesRepo) touch(ctx context.Context, noteID string, now time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE notes SET updated_at = $1 WHERE id = $2`, now, noteID)
	return err
}

func (r *notesRepo) ListNoteTags(ctx context.Context, noteID string) ([]domain.Tag, error) {
	rows, err := r.q.Query(ctx, `
		SELECT t.id, t.owner_id, t.name, t.created_at, t.updated_at
		FROM note_tags nt
		JOIN tags t ON t.id = nt.tag_id
		WHERE nt.note_id = $1
		ORDER BY nt.position`, noteID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tag, error) {
		return scanTag(row)
	})
}
