package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

type tagsRepo struct {
	db dbtx
}

const tagColumns = `id, owner_id, name, created_at, updated_at`

func scanTag(row interface{ Scan(...any) error }) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *tagsRepo) ListTagsByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE owner_id = ? ORDER BY id`, ownerID)
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

func (r *tagsRepo) GetTag(ctx context.Context, ownerID, id string) (domain.Tag, error) {
	t, err := scanTag(r.db.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = ? AND owner_id = ?`, id, ownerID))
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tagsRepo) CreateTag(ctx context.Context, t domain.Tag) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (`+tagColumns+`) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.OwnerID, t.Name, t.CreatedAt, t.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *tagsRepo) RenameTag(ctx context.Context, ownerID, id, name string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tags SET name = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		name, now, id, ownerID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func (r *tagsRepo) DeleteTag(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tags WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return mustAffect(res)
}
