package app

import "listing_hub/internal/domain"

// ListingSummary is a home page card.
type ListingSummary struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Rating       float64        `json:"rating"`
	Address      domain.Address `json:"address"`
	Image        string         `json:"image"`
	Categories   []string       `json:"categories"`
	NightlyPrice float64        `json:"nightly_price"`
}

type ListingView struct {
	ListingSummary
	Description string       `json:"description"`
	Stars       domain.Stars `json:"stars"`
	ReviewCount int          `json:"review_count"`
}

type ReviewView struct {
	Author  string       `json:"author"`
	Avatar  string       `json:"avatar"`
	Rating  float64      `json:"rating"`
	Stars   domain.Stars `json:"stars"`
	Comment string       `json:"comment"`
}

type ReviewsPage struct {
	Count int          `json:"count"`
	Items []ReviewView `json:"items"`
}

type FilterPill struct {
	Label    string  `json:"label"`
	Selected bool    `json:"selected"`
	Next     *string `json:"next"` // active category after clicking this pill
}

func toSummary(l domain.Listing) ListingSummary {
	return ListingSummary{
		ID:           l.ID,
		Name:         l.Name,
		Rating:       l.Rating,
		Address:      l.Address,
		Image:        l.Image,
		Categories:   append([]string(nil), l.Categories...),
		NightlyPrice: l.NightlyPrice,
	}
}

func toView(l domain.Listing) ListingView {
	return ListingView{
		ListingSummary: toSummary(l),
		Description:    l.Description,
		Stars:          domain.StarsFor(l.Rating),
		ReviewCount:    len(l.Reviews),
	}
}

func toReviewsPage(rs []domain.Review) ReviewsPage {
	out := ReviewsPage{Count: len(rs), Items: make([]ReviewView, 0, len(rs))}
	for _, r := range rs {
		out.Items = append(out.Items, ReviewView{
			Author:  r.Author,
			Avatar:  r.Avatar,
			Rating:  r.Rating,
			Stars:   domain.StarsFor(r.Rating),
			Comment: r.Comment,
		})
	}
	return out
}
