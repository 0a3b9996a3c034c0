package domain

import "context"

// ListingSource is the read side of the catalog. The sample fixture and the
// MySQL store both satisfy it.
type ListingSource interface {
	ListListings(ctx context.Context) ([]Listing, error)
	GetListing(ctx context.Context, id string) (Listing, error)
	ListReviews(ctx context.Context, id string, pg PageQuery) ([]Review, error)
}

type ListingWriter interface {
	UpsertListing(ctx context.Context, l Listing) error
	ReplaceReviews(ctx context.Context, listingID string, rs []Review) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Review page sizes accepted by the API.
const (
	DefaultReviewLimit = 50
	MaxReviewLimit     = 200
)

type PageQuery struct {
	Limit int
}
