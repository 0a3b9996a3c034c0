package memory

import (
	"context"
	"fmt"

	"listing_hub/internal/domain"
)

// Repo serves a fixed catalog. It is safe for concurrent use because nothing
// is written after New returns.
type Repo struct {
	listings []domain.Listing
	byID     map[string]int
}

// New validates and indexes listings, keeping their order. A listing without
// an ID is keyed by the slug of its name.
func New(listings []domain.Listing) (*Repo, error) {
	r := &Repo{
		listings: make([]domain.Listing, 0, len(listings)),
		byID:     make(map[string]int, len(listings)),
	}
	for _, l := range listings {
		if l.ID == "" {
			l.ID = domain.Slug(l.Name)
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidListing, l.ID)
		}
		l.Position = len(r.listings)
		r.byID[l.ID] = l.Position
		r.listings = append(r.listings, cloneListing(l))
	}
	return r, nil
}

// NewSample is New over SampleListings.
func NewSample() *Repo {
	r, err := New(SampleListings())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	out := make([]domain.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		out = append(out, cloneListing(l))
	}
	return out, nil
}

func (r *Repo) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Listing{}, domain.ErrNotFound
	}
	return cloneListing(r.listings[i]), nil
}

func (r *Repo) ListReviews(ctx context.Context, id string, pg domain.PageQuery) ([]domain.Review, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rs := r.listings[i].Reviews
	if pg.Limit > 0 && len(rs) > pg.Limit {
		rs = rs[:pg.Limit]
	}
	out := make([]domain.Review, len(rs))
	copy(out, rs)
	return out, nil
}

func cloneListing(l domain.Listing) domain.Listing {
	out := l
	out.Categories = append([]string(nil), l.Categories...)
	if len(l.Reviews) > 0 {
		out.Reviews = make([]domain.Review, len(l.Reviews))
		for i, rv := range l.Reviews {
			rv.ListingID = l.ID
			out.Reviews[i] = rv
		}
	}
	return out
}

var _ domain.ListingSource = (*Repo)(nil)
