package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"estate_ingest/internal/domain"
)

type PostStore interface {
	Create(ctx context.Context, post *domain.Post) (int64, error)
	ExistsByUID(ctx context.Context, postUID string) (bool, error)
	FindByTextHash(ctx context.Context, textHash string, excludeID int64) ([]domain.Post, error)
	FindByPhoneOverlap(ctx context.Context, phones []string, excludeID int64) ([]domain.Post, error)
	MarkDuplicateOf(ctx context.Context, postID, originalID int64) error
	MarkDeletedByMessage(ctx context.Context, channelID, messageID int64) ([]int64, error)
}

type ListingStore interface {
	Create(ctx context.Context, listing *domain.Listing) (int64, error)
}

type DuplicateStore interface {
	Create(ctx context.Context, link *domain.DuplicateLink) (bool, error)
}

type ChannelStore interface {
	GetOrCreate(ctx context.Context, telegramID int64, title string) (*domain.Channel, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
