package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Listing is read-only catalog data. Categories double as the amenity list
// shown on the detail page and as filter labels.
type Listing struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	Address      Address  `json:"address"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Categories   []string `json:"categories"`
	NightlyPrice float64  `json:"nightly_price"`
	Reviews      []Review `json:"reviews,omitempty"`

	// Position is the catalog order kept by stores that do not preserve
	// insertion order.
	Position int `json:"position"`
}

// HasCategory is a case-sensitive exact match.
func (l Listing) HasCategory(label string) bool {
	return slices.Contains(l.Categories, label)
}

func (l Listing) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidListing)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: %s: name is required", ErrInvalidListing, l.ID)
	}
	if err := ValidatePrice(l.NightlyPrice); err != nil || l.NightlyPrice == 0 {
		return fmt.Errorf("%w: %s: nightly price must be positive", ErrInvalidListing, l.ID)
	}
	return nil
}

// Slug turns a listing name into a URL-safe identifier.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
