package app_test

import (
	"context"
	"testing"
	"time"

	"listing_hub/internal/app"
	"listing_hub/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	listings []domain.Listing
	reviews  []domain.Review
	calls    int
}

func (f *fakeSource) ListListings(ctx context.Context) ([]domain.Listing, error) {
	f.calls++
	out := make([]domain.Listing, len(f.listings))
	copy(out, f.listings)
	return out, nil
}
func (f *fakeSource) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	f.calls++
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrNotFound
}
func (f *fakeSource) ListReviews(ctx context.Context, id string, pg domain.PageQuery) ([]domain.Review, error) {
	f.calls++
	out := make([]domain.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Listing:
		*d = v.([]domain.Listing)
	case *app.ListingView:
		*d = v.(app.ListingView)
	case *app.ReviewsPage:
		*d = v.(app.ReviewsPage)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func catalog() []domain.Listing {
	return []domain.Listing{
		{ID: "villa", Name: "Villa", NightlyPrice: 500, Rating: 4.8, Categories: []string{"Pool"}},
		{ID: "hut", Name: "Hut", NightlyPrice: 80, Rating: 3, Categories: []string{"Beach"}},
		{ID: "house", Name: "House", NightlyPrice: 200, Rating: 4, Categories: []string{"Pool", "Beach"},
			Reviews: []domain.Review{{Author: "Ana", Rating: 5}}},
	}
}

// ---- tests ----

func TestListListings_FilterAndCache(t *testing.T) {
	src := &fakeSource{listings: catalog()}
	q := app.NewQueryService(src, &fakeCache{}, 10*time.Minute)
	ctx := context.Background()

	all, err := q.ListListings(ctx, nil)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(all))
	}

	pool := "Pool"
	got, err := q.ListListings(ctx, &pool)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "villa" || got[1].ID != "house" {
		t.Fatalf("unexpected filter result: %+v", got)
	}

	// second and third call were served from the cached catalog
	if src.calls != 1 {
		t.Fatalf("expected 1 source call, got %d", src.calls)
	}
}

func TestListListings_NoCache(t *testing.T) {
	src := &fakeSource{listings: catalog()}
	q := app.NewQueryService(src, nil, time.Minute)

	beach := "Beach"
	got, err := q.ListListings(context.Background(), &beach)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "hut" {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestGetListing_CacheMissThenHit(t *testing.T) {
	src := &fakeSource{listings: catalog()}
	q := app.NewQueryService(src, &fakeCache{}, 10*time.Minute)

	v, err := q.GetListing(context.Background(), "house")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Name != "House" || v.ReviewCount != 1 || v.Stars.Full != 4 {
		t.Fatalf("unexpected listing: %+v", v)
	}

	// Mutate source to ensure second read indeed comes from cache
	src.listings[2].Name = "SHOULD NOT SEE THIS"

	v2, err := q.GetListing(context.Background(), "house")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v2.Name != "House" {
		t.Fatalf("expected cached name, got %s", v2.Name)
	}
}

func TestGetListing_NotFound(t *testing.T) {
	q := app.NewQueryService(&fakeSource{}, &fakeCache{}, time.Minute)
	if _, err := q.GetListing(context.Background(), "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReviews_Cache(t *testing.T) {
	src := &fakeSource{reviews: []domain.Review{{Author: "Ana", Rating: 4.5}}}
	q := app.NewQueryService(src, &fakeCache{}, 10*time.Minute)

	out, err := q.ListReviews(context.Background(), "house", domain.PageQuery{Limit: 10})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Count != 1 || out.Items[0].Author != "Ana" || !out.Items[0].Stars.Half {
		t.Fatalf("unexpected reviews: %+v", out)
	}

	src.reviews[0].Author = "Changed"
	out2, _ := q.ListReviews(context.Background(), "house", domain.PageQuery{Limit: 10})
	if out2.Items[0].Author != "Ana" {
		t.Fatalf("expected cached author Ana, got %s", out2.Items[0].Author)
	}
}

func TestFilters_ToggleDescription(t *testing.T) {
	q := app.NewQueryService(&fakeSource{}, nil, time.Minute)

	pills := q.Filters(nil)
	if len(pills) != len(domain.FilterLabels) {
		t.Fatalf("expected %d pills, got %d", len(domain.FilterLabels), len(pills))
	}
	for _, p := range pills {
		if p.Selected || p.Next == nil || *p.Next != p.Label {
			t.Fatalf("unexpected pill with no selection: %+v", p)
		}
	}

	pool := "Pool"
	for _, p := range q.Filters(&pool) {
		switch p.Label {
		case "Pool":
			if !p.Selected || p.Next != nil {
				t.Fatalf("active pill should clear on click: %+v", p)
			}
		default:
			if p.Selected || p.Next == nil || *p.Next != p.Label {
				t.Fatalf("other pill should replace selection: %+v", p)
			}
		}
	}
}

func TestSeedListing_InvalidatesCache(t *testing.T) {
	w := &fakeWriter{}
	cache := &fakeCache{}
	s := app.NewSeedService(w, cache)

	l := catalog()[2]
	if err := s.SeedListing(context.Background(), l); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(w.listings) != 1 || len(w.reviews["house"]) != 1 {
		t.Fatalf("unexpected writes: %+v", w)
	}
	want := map[string]bool{"listings:all": true, "listing:house": true, "reviews:house:50": true}
	for _, k := range cache.dels {
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("cache keys not evicted: %v", want)
	}

	if err := s.SeedListing(context.Background(), domain.Listing{ID: "bad"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestSeedListing_EvictsEveryReviewPage(t *testing.T) {
	src := &fakeSource{reviews: []domain.Review{{Author: "Ana", Rating: 4}}}
	cache := &fakeCache{}
	q := app.NewQueryService(src, cache, 10*time.Minute)
	ctx := context.Background()

	for _, lim := range []int{1, 7, 50, 199} {
		if _, err := q.ListReviews(ctx, "house", domain.PageQuery{Limit: lim}); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	s := app.NewSeedService(&fakeWriter{}, cache)
	if err := s.SeedListing(ctx, catalog()[2]); err != nil {
		t.Fatalf("err: %v", err)
	}

	src.reviews = []domain.Review{{Author: "Bo", Rating: 5}}
	for _, lim := range []int{1, 7, 50, 199} {
		out, _ := q.ListReviews(ctx, "house", domain.PageQuery{Limit: lim})
		if out.Items[0].Author != "Bo" {
			t.Fatalf("limit %d served stale reviews: %+v", lim, out)
		}
	}
}

type fakeWriter struct {
	listings []domain.Listing
	reviews  map[string][]domain.Review
}

func (f *fakeWriter) UpsertListing(ctx context.Context, l domain.Listing) error {
	f.listings = append(f.listings, l)
	return nil
}
func (f *fakeWriter) ReplaceReviews(ctx context.Context, id string, rs []domain.Review) error {
	if f.reviews == nil {
		f.reviews = map[string][]domain.Review{}
	}
	f.reviews[id] = rs
	return nil
}
