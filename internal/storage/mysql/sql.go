package mysql

import sq "github.com/Masterminds/squirrel"

var listingColumns = []string{
	"id", "position", "name", "rating", "street", "city", "country",
	"image", "description", "categories", "nightly_price",
}

const upsertListingSuffix = `ON DUPLICATE KEY UPDATE
  position      = VALUES(position),
  name          = VALUES(name),
  rating        = VALUES(rating),
  street        = VALUES(street),
  city          = VALUES(city),
  country       = VALUES(country),
  image         = VALUES(image),
  description   = VALUES(description),
  categories    = VALUES(categories),
  nightly_price = VALUES(nightly_price),
  updated_at    = CURRENT_TIMESTAMP`

var reviewColumns = []string{"listing_id", "position", "author", "avatar", "rating", "comment"}

const deleteReviewsSQL = `DELETE FROM reviews WHERE listing_id = ?`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

func selectListings() sq.SelectBuilder {
	return sq.Select(listingColumns...).
		From("listings").
		OrderBy("position", "id")
}

func selectReviews(listingID string) sq.SelectBuilder {
	return sq.Select("listing_id", "author", "avatar", "rating", "comment").
		From("reviews").
		Where(sq.Eq{"listing_id": listingID}).
		OrderBy("position", "id")
}
