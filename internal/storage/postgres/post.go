package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"estate_ingest/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Create stores the post and returns its id. A uniqueness conflict on
// insert means a concurrent delivery already stored this post; that is
// reported as domain.ErrPostExists, not as a failure.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) (int64, error) {
	query := `
		INSERT INTO posts (
			post_uid, channel_id, message_id, text_raw, text_len,
			phones, hashtags, published_at, text_hash, fingerprint
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT DO NOTHING
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		post.PostUID,
		post.ChannelID,
		post.MessageID,
		post.TextRaw,
		post.TextLen,
		pq.Array(post.Phones),
		pq.Array(post.Hashtags),
		post.PublishedAt,
		post.TextHash,
		post.Fingerprint,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrPostExists
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *PostStore) ExistsByUID(ctx context.Context, postUID string) (bool, error) {
	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		"SELECT id FROM posts WHERE post_uid = $1", postUID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const postColumns = `
	id, post_uid, channel_id, message_id, text_raw, text_len,
	phones, published_at, is_deleted, text_hash, fingerprint, duplicate_of`

// FindByTextHash returns non-deleted posts with the given text hash,
// excluding excludeID, ordered by published_at ascending so the first row
// is the canonical candidate.
func (s *PostStore) FindByTextHash(ctx context.Context, textHash string, excludeID int64) ([]domain.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts
		WHERE text_hash = $1 AND id != $2 AND is_deleted = FALSE
		ORDER BY published_at ASC`

	return s.queryPosts(ctx, query, textHash, excludeID)
}

// FindByPhoneOverlap returns non-deleted posts whose phone set intersects
// the given one, excluding excludeID, ordered by published_at ascending.
func (s *PostStore) FindByPhoneOverlap(ctx context.Context, phones []string, excludeID int64) ([]domain.Post, error) {
	if len(phones) == 0 {
		return nil, nil
	}

	query := `
		SELECT` + postColumns + `
		FROM posts
		WHERE phones && $1 AND id != $2 AND is_deleted = FALSE
		ORDER BY published_at ASC`

	return s.queryPosts(ctx, query, pq.Array(phones), excludeID)
}

// MarkDuplicateOf writes the denormalized duplicate pointer. Written once
// per post; an existing pointer is left alone.
func (s *PostStore) MarkDuplicateOf(ctx context.Context, postID, originalID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE posts SET duplicate_of = $2 WHERE id = $1 AND duplicate_of IS NULL",
		postID, originalID,
	)
	return err
}

// MarkDeletedByMessage soft-deletes posts for a deleted channel message.
// Returns the affected post IDs.
func (s *PostStore) MarkDeletedByMessage(ctx context.Context, channelID, messageID int64) ([]int64, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, `
		UPDATE posts
		SET is_deleted = TRUE, deleted_at = $3
		WHERE channel_id = $1 AND message_id = $2 AND is_deleted = FALSE
		RETURNING id`,
		channelID, messageID, time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PostStore) queryPosts(ctx context.Context, query string, args ...interface{}) ([]domain.Post, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		var textRaw, textHash, fprint sql.NullString
		if err := rows.Scan(
			&p.ID, &p.PostUID, &p.ChannelID, &p.MessageID,
			&textRaw, &p.TextLen, pq.Array(&p.Phones),
			&p.PublishedAt, &p.IsDeleted, &textHash, &fprint, &p.DuplicateOf,
		); err != nil {
			return nil, err
		}
		p.TextRaw = textRaw.String
		p.TextHash = textHash.String
		p.Fingerprint = fprint.String
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
