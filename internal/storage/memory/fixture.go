package memory

import "listing_hub/internal/domain"

// SampleListings is the static catalog served when no database is configured.
func SampleListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:     "luxury-beachfront-villa",
			Name:   "Luxury Beachfront Villa",
			Rating: 4.8,
			Address: domain.Address{
				Street:  "123 Ocean Drive",
				City:    "Miami",
				Country: "USA",
			},
			Image:       "https://placehold.co/1200x800/22d3ee/FFFFFF?text=Beachfront+Villa",
			Description: "Experience unparalleled luxury at this stunning beachfront villa. Perfect for a relaxing getaway.",
			Categories: []string{
				"Luxury Villa", "Pool", "Beachfront", "Free Parking",
				"Private Pool", "Beach Access", "Gym", "Wi-Fi", "Air Conditioning", "Ocean View", "Parking",
			},
			NightlyPrice: 500,
			Reviews: []domain.Review{
				{Author: "Alice Johnson", Avatar: "https://placehold.co/64x64/22d3ee/FFFFFF?text=AJ", Rating: 5, Comment: "Absolutely beautiful place! Had an amazing time with family."},
				{Author: "Bob Williams", Avatar: "https://placehold.co/64x64/818cf8/FFFFFF?text=BW", Rating: 4, Comment: "Great location and amenities. Would definitely recommend."},
			},
		},
		{
			ID:     "cozy-mountain-cabin",
			Name:   "Cozy Mountain Cabin",
			Rating: 4.5,
			Address: domain.Address{
				Street:  "456 Peak Road",
				City:    "Aspen",
				Country: "USA",
			},
			Image:        "https://placehold.co/1200x800/8b5cf6/FFFFFF?text=Mountain+Cabin",
			Description:  "A charming cabin nestled in the mountains, offering serene views and hiking trails.",
			Categories:   []string{"Mountain View", "Self Checkin", "Fireplace", "Pet Friendly", "Kitchen", "Hot Tub"},
			NightlyPrice: 250,
			Reviews: []domain.Review{
				{Author: "Charlie Brown", Avatar: "https://placehold.co/64x64/0ea5e9/FFFFFF?text=CB", Rating: 5, Comment: "Perfect cozy retreat! Loved the fireplace."},
				{Author: "Diana Prince", Avatar: "https://placehold.co/64x64/f472b6/FFFFFF?text=DP", Rating: 4, Comment: "Beautiful surroundings, very peaceful."},
			},
		},
		{
			ID:     "downtown-loft",
			Name:   "Downtown Loft",
			Rating: 4.2,
			Address: domain.Address{
				Street:  "78 Market Street",
				City:    "San Francisco",
				Country: "USA",
			},
			Image:        "https://placehold.co/1200x800/f59e0b/FFFFFF?text=Downtown+Loft",
			Description:  "Industrial loft in the heart of the city, walking distance to cafes and galleries.",
			Categories:   []string{"Self Checkin", "Free Parking", "Wi-Fi", "Kitchen"},
			NightlyPrice: 180,
			Reviews: []domain.Review{
				{Author: "Evan Wright", Avatar: "https://placehold.co/64x64/f59e0b/FFFFFF?text=EW", Rating: 4.5, Comment: "Great base for exploring the city."},
			},
		},
		{
			ID:     "lakeside-cottage",
			Name:   "Lakeside Cottage",
			Rating: 4.9,
			Address: domain.Address{
				Street:  "9 Shoreline Lane",
				City:    "Lake Tahoe",
				Country: "USA",
			},
			Image:        "https://placehold.co/1200x800/10b981/FFFFFF?text=Lakeside+Cottage",
			Description:  "Quiet cottage on the water with a private dock and mountain views.",
			Categories:   []string{"Mountain View", "Pool", "Free Parking", "Hot Tub"},
			NightlyPrice: 320,
		},
	}
}
