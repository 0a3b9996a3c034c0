package app

import (
	"context"
	"fmt"

	"listing_hub/internal/domain"
)

// SeedService copies catalog listings into a writable store.
type SeedService struct {
	repo  domain.ListingWriter
	cache domain.Cache
}

func NewSeedService(r domain.ListingWriter, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

func (s *SeedService) SeedListing(ctx context.Context, l domain.Listing) error {
	if err := l.Validate(); err != nil {
		return err
	}
	// Parent first, reviews reference it.
	if err := s.repo.UpsertListing(ctx, l); err != nil {
		return fmt.Errorf("upsert listing %s: %w", l.ID, err)
	}
	if err := s.repo.ReplaceReviews(ctx, l.ID, l.Reviews); err != nil {
		return fmt.Errorf("replace reviews for %s: %w", l.ID, err)
	}
	if s.cache != nil {
		s.invalidate(ctx, l.ID)
	}
	return nil
}

func (s *SeedService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, catalogKey)
	_ = s.cache.Del(ctx, listingKey(id))
	for lim := 1; lim <= domain.MaxReviewLimit; lim++ {
		_ = s.cache.Del(ctx, reviewsKey(id, lim))
	}
}
