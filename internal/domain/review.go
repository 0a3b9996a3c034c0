package domain

import "math"

const MaxStars = 5

type Review struct {
	ListingID string  `json:"listing_id,omitempty"`
	Author    string  `json:"author"`
	Avatar    string  `json:"avatar"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

// Stars is how a rating is drawn on a five star scale.
type Stars struct {
	Full  int  `json:"full"`
	Half  bool `json:"half"`
	Empty int  `json:"empty"`
}

// StarsFor renders any fractional part as a single half star. Ratings are
// clamped to [0, MaxStars].
func StarsFor(rating float64) Stars {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}
	full := int(math.Floor(rating))
	half := rating != math.Floor(rating)
	empty := MaxStars - full
	if half {
		empty--
	}
	return Stars{Full: full, Half: half, Empty: empty}
}
