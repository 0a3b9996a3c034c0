package domain

// FilterLabels are the category pills offered on the home page, in display
// order.
var FilterLabels = []string{
	"Luxury Villa",
	"Pool",
	"Free Parking",
	"Self Checkin",
	"Beachfront",
	"Mountain View",
}

// FilterByCategory returns the listings tagged with active, in their original
// order. A nil active returns listings as is. The input is never modified.
func FilterByCategory(listings []Listing, active *string) []Listing {
	if active == nil {
		return listings
	}
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.HasCategory(*active) {
			out = append(out, l)
		}
	}
	return out
}

// ToggleCategory is the single-select pill behaviour: picking the active
// label clears the selection, any other label replaces it.
func ToggleCategory(active *string, label string) *string {
	if active != nil && *active == label {
		return nil
	}
	return &label
}
