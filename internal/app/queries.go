package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing_hub/internal/domain"
)

const catalogKey = "listings:all"

type QueryService struct {
	src      domain.ListingSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(src domain.ListingSource, c domain.Cache, ttl time.Duration) *QueryService {
	if c == nil {
		c = NopCache{}
	}
	return &QueryService{src: src, cache: c, cacheTTL: ttl}
}

// ListListings returns the catalog cards matching active. Only the unfiltered
// catalog is cached; the filter runs on every call.
func (s *QueryService) ListListings(ctx context.Context, active *string) ([]ListingSummary, error) {
	var all []domain.Listing
	if ok, _ := s.cache.Get(ctx, catalogKey, &all); !ok {
		ls, err := s.src.ListListings(ctx)
		if err != nil {
			return nil, err
		}
		all = ls
		_ = s.cache.Set(ctx, catalogKey, all, s.ttlSeconds())
	}

	filtered := domain.FilterByCategory(all, active)
	out := make([]ListingSummary, 0, len(filtered))
	for _, l := range filtered {
		out = append(out, toSummary(l))
	}
	return out, nil
}

func (s *QueryService) GetListing(ctx context.Context, id string) (ListingView, error) {
	key := listingKey(id)
	var v ListingView
	if ok, _ := s.cache.Get(ctx, key, &v); ok {
		return v, nil
	}
	l, err := s.src.GetListing(ctx, id)
	if err != nil {
		return ListingView{}, err
	}
	v = toView(l)
	_ = s.cache.Set(ctx, key, v, s.ttlSeconds())
	return v, nil
}

func (s *QueryService) ListReviews(ctx context.Context, id string, pg domain.PageQuery) (ReviewsPage, error) {
	key := reviewsKey(id, pg.Limit)
	var out ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	rs, err := s.src.ListReviews(ctx, id, pg)
	if err != nil {
		return ReviewsPage{}, err
	}
	out = toReviewsPage(rs)

	// optional size guard
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, s.ttlSeconds())
	}
	return out, nil
}

// Filters describes the home page pills for the caller's current selection.
func (s *QueryService) Filters(active *string) []FilterPill {
	out := make([]FilterPill, 0, len(domain.FilterLabels))
	for _, label := range domain.FilterLabels {
		out = append(out, FilterPill{
			Label:    label,
			Selected: active != nil && *active == label,
			Next:     domain.ToggleCategory(active, label),
		})
	}
	return out
}

func (s *QueryService) ttlSeconds() int { return int(s.cacheTTL.Seconds()) }

func listingKey(id string) string { return "listing:" + id }

func reviewsKey(id string, limit int) string { return fmt.Sprintf("reviews:%s:%d", id, limit) }

// NopCache never hits. Used when no redis is configured.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string, dst any) (bool, error)   { return false, nil }
func (NopCache) Set(ctx context.Context, key string, v any, ttlSec int) error { return nil }
func (NopCache) Del(ctx context.Context, key string) error                    { return nil }
