package domain

import (
	"errors"
	"time"
)

// ErrPostExists signals an insert that lost the race against another
// delivery of the same post.
var ErrPostExists = errors.New("post already exists")

// RawPost is what the channel listener delivers for a single message.
// It is immutable once received.
type RawPost struct {
	PostUID      string    `json:"post_uid"`
	ChannelID    int64     `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	MessageID    int64     `json:"message_id"`
	Text         string    `json:"text"`
	Hashtags     []string  `json:"hashtags"`
	Phones       []string  `json:"phones"`
	PublishedAt  time.Time `json:"published_at"`
}

// Post is the stored form of a raw post plus derived identity keys.
type Post struct {
	ID          int64     `db:"id"`
	PostUID     string    `db:"post_uid"`
	ChannelID   int64     `db:"channel_id"`
	MessageID   int64     `db:"message_id"`
	TextRaw     string    `db:"text_raw"`
	TextLen     int       `db:"text_len"`
	Phones      []string  `db:"-"`
	Hashtags    []string  `db:"-"`
	PublishedAt time.Time `db:"published_at"`
	IsDeleted   bool      `db:"is_deleted"`
	TextHash    string    `db:"text_hash"`
	Fingerprint string    `db:"fingerprint"`
	DuplicateOf *int64    `db:"duplicate_of"`
}

// Channel identifies a source channel. Allow-list management lives in the
// listener; here channels are created on first sight.
type Channel struct {
	ID         int64     `db:"id"`
	TelegramID int64     `db:"telegram_id"`
	Title      string    `db:"title"`
	AddedAt    time.Time `db:"added_at"`
}
