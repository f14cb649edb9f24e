package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"estate_ingest/internal/domain"
)

type DuplicateStore struct {
	db *sqlx.DB
}

func NewDuplicateStore(db *sqlx.DB) *DuplicateStore {
	return &DuplicateStore{db: db}
}

// Create records a duplicate link. Re-linking the same ordered pair is a
// no-op: created reports whether a new row was actually written.
func (s *DuplicateStore) Create(ctx context.Context, link *domain.DuplicateLink) (bool, error) {
	query := `
		INSERT INTO duplicates (original_id, duplicate_id, similarity, match_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (original_id, duplicate_id) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		link.OriginalID, link.DuplicateID, link.Similarity, link.MatchType)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
