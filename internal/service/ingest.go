package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"estate_ingest/internal/domain"
	"estate_ingest/internal/fingerprint"
	"estate_ingest/internal/parse"
)

// IngestService turns one raw channel post into stored rows: the post
// itself, a listing when the text is a real-estate ad, and duplicate
// links against earlier posts. One call, one transaction.
type IngestService struct {
	posts      PostStore
	listings   ListingStore
	duplicates DuplicateStore
	channels   ChannelStore
	txManager  TransactionManager
	logger     *slog.Logger
}

func NewIngestService(
	posts PostStore,
	listings ListingStore,
	duplicates DuplicateStore,
	channels ChannelStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		posts:      posts,
		listings:   listings,
		duplicates: duplicates,
		channels:   channels,
		txManager:  txManager,
		logger:     logger,
	}
}

// Ingest is idempotent on RawPost.PostUID: redelivery of an already
// stored post is a no-op, not an error. Everything a first delivery
// writes — post, listing, duplicate links — commits atomically.
func (s *IngestService) Ingest(ctx context.Context, raw *domain.RawPost) (*domain.IngestResult, error) {
	exists, err := s.posts.ExistsByUID(ctx, raw.PostUID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if exists {
		s.logger.Debug("post already ingested", "post_uid", raw.PostUID)
		return &domain.IngestResult{Ingested: false}, nil
	}

	listing := parse.Parse(raw.Text, raw.Hashtags)
	phones := mergePhones(raw.Phones, listing.Phones)

	hashtags := raw.Hashtags
	if hashtags == nil {
		hashtags = parse.ExtractHashtags(raw.Text)
	}

	post := &domain.Post{
		PostUID:     raw.PostUID,
		MessageID:   raw.MessageID,
		TextRaw:     raw.Text,
		TextLen:     len([]rune(raw.Text)),
		Phones:      phones,
		Hashtags:    hashtags,
		PublishedAt: raw.PublishedAt,
		TextHash:    fingerprint.TextHash(raw.Text),
		Fingerprint: fingerprint.Fingerprint(raw.Text, phones),
	}

	result := &domain.IngestResult{Ingested: true}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		channel, err := s.channels.GetOrCreate(txCtx, raw.ChannelID, raw.ChannelTitle)
		if err != nil {
			return fmt.Errorf("get or create channel: %w", err)
		}
		post.ChannelID = channel.ID

		postID, err := s.posts.Create(txCtx, post)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		post.ID = postID
		result.PostID = postID

		if listing.IsRealEstate {
			listing.PostID = postID
			listing.Phones = phones
			if _, err := s.listings.Create(txCtx, &listing); err != nil {
				return fmt.Errorf("create listing: %w", err)
			}
			result.Listing = true
		}

		links, err := s.resolveDuplicates(txCtx, post)
		if err != nil {
			return err
		}
		result.LinksMade = links

		return nil
	})
	// ExistsByUID runs outside the transaction, so a concurrent delivery
	// of the same post can still reach the insert. Losing that race is
	// the same no-op as the exists check firing.
	if errors.Is(err, domain.ErrPostExists) {
		s.logger.Debug("post already ingested", "post_uid", raw.PostUID)
		return &domain.IngestResult{Ingested: false}, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("post ingested",
		"post_uid", raw.PostUID,
		"post_id", result.PostID,
		"is_real_estate", listing.IsRealEstate,
		"parse_score", listing.ParseScore,
		"links_made", result.LinksMade,
	)

	return result, nil
}

// DeleteByMessage soft-deletes the stored post for a channel message the
// upstream reports as removed. Unknown messages are a no-op.
func (s *IngestService) DeleteByMessage(ctx context.Context, channelTelegramID, messageID int64) error {
	channel, err := s.channels.GetOrCreate(ctx, channelTelegramID, "")
	if err != nil {
		return fmt.Errorf("resolve channel: %w", err)
	}

	ids, err := s.posts.MarkDeletedByMessage(ctx, channel.ID, messageID)
	if err != nil {
		return fmt.Errorf("mark deleted: %w", err)
	}
	if len(ids) > 0 {
		s.logger.Info("posts marked deleted",
			"channel_id", channelTelegramID,
			"message_id", messageID,
			"post_ids", ids,
		)
	}
	return nil
}

// mergePhones keeps the listener's hint order first, then extracted
// numbers, without repeats.
func mergePhones(hint, extracted []string) []string {
	seen := make(map[string]struct{}, len(hint)+len(extracted))
	var merged []string
	for _, set := range [][]string{hint, extracted} {
		for _, p := range set {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			merged = append(merged, p)
		}
	}
	return merged
}
