package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/jackc/pgx/v5"
)

type tagsRepo struct {
	q querier
}

const tagColumns = `id, owner_id, name, created_at, updated_at`

func scanTag(row pgx.Row) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *tagsRepo) ListTagsByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tag, error) {
		return scanTag(row)
	})
}

func (r *tagsRepo) GetTag(ctx context.Context, ownerID, id string) (domain.Tag, error) {
	t, err := scanTag(r.q.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		return domain.Tag{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tagsRepo) CreateTag(ctx context.Context, t domain.Tag) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tags (`+tagColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.OwnerID, t.Name, t.CreatedAt, t.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *tagsRepo) RenameTag(ctx context.Context, ownerID, id, name string, now time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE tags SET name = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`,
		name, now, id, ownerID)
	if err != nil {
		return err
	}
	return mustAffect(tag)
}

func (r *tagsRepo) DeleteTag(ctx context.Context, ownerID, id string) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM tags WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	return mustAffect(tag)
}
