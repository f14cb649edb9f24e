package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"estate_ingest/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// GetOrCreate returns the channel row for a telegram id, inserting it on
// first sight. The upsert keeps the title fresh since channels rename;
// an empty title never overwrites a known one.
func (s *ChannelStore) GetOrCreate(ctx context.Context, telegramID int64, title string) (*domain.Channel, error) {
	query := `
		INSERT INTO channels (telegram_id, title)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE
		SET title = COALESCE(NULLIF(EXCLUDED.title, ''), channels.title)
		RETURNING id, telegram_id, title, added_at`

	var ch domain.Channel
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, telegramID, title).StructScan(&ch)
	if err != nil {
		return nil, err
	}

	return &ch, nil
}
