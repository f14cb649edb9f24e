package service

import (
	"context"
	"fmt"

	"estate_ingest/internal/domain"
)

const (
	similarityTextExact = 1.0
	similarityPhone     = 0.7
)

// resolveDuplicates links a freshly stored post against earlier posts.
// Exact text-hash matches win; phone-overlap matches are tried only when
// no exact match exists. Missing hash or phones just skips the step.
// Returns the number of links actually created.
func (s *IngestService) resolveDuplicates(ctx context.Context, post *domain.Post) (int, error) {
	if post.TextHash != "" {
		candidates, err := s.posts.FindByTextHash(ctx, post.TextHash, post.ID)
		if err != nil {
			return 0, fmt.Errorf("find by text hash: %w", err)
		}
		if len(candidates) > 0 {
			return s.linkCandidates(ctx, post, candidates, domain.MatchTextExact, similarityTextExact)
		}
	}

	if len(post.Phones) == 0 {
		return 0, nil
	}

	candidates, err := s.posts.FindByPhoneOverlap(ctx, post.Phones, post.ID)
	if err != nil {
		return 0, fmt.Errorf("find by phone overlap: %w", err)
	}
	if len(candidates) == 0 {
		return 0, nil
	}
	return s.linkCandidates(ctx, post, candidates, domain.MatchPhone, similarityPhone)
}

func (s *IngestService) linkCandidates(ctx context.Context, post *domain.Post, candidates []domain.Post, matchType domain.DuplicateMatchType, similarity float64) (int, error) {
	made := 0
	for i := range candidates {
		original, duplicate := orderPair(&candidates[i], post)

		created, err := s.duplicates.Create(ctx, &domain.DuplicateLink{
			OriginalID:  original.ID,
			DuplicateID: duplicate.ID,
			Similarity:  similarity,
			MatchType:   matchType,
		})
		if err != nil {
			return made, fmt.Errorf("create duplicate link: %w", err)
		}
		if created {
			made++
		}

		// Only an exact match hides the post behind duplicate_of. Phone
		// overlap is weaker evidence (one agent, many flats), the link
		// alone surfaces the pair.
		if matchType == domain.MatchTextExact {
			if err := s.posts.MarkDuplicateOf(ctx, duplicate.ID, original.ID); err != nil {
				return made, fmt.Errorf("mark duplicate: %w", err)
			}
		}
	}
	return made, nil
}

// orderPair decides canonical direction: the earlier published_at is the
// original. On an exact timestamp tie the already-stored post wins, which
// keeps the outcome independent of redelivery order.
func orderPair(stored, incoming *domain.Post) (original, duplicate *domain.Post) {
	if incoming.PublishedAt.Before(stored.PublishedAt) {
		return incoming, stored
	}
	return stored, incoming
}
