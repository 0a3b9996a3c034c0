package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"listing_hub/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	cats, err := json.Marshal(orEmpty(l.Categories))
	if err != nil {
		return err
	}
	q, args, err := sq.Insert("listings").
		Columns(listingColumns...).
		Values(
			l.ID,
			l.Position,
			l.Name,
			l.Rating,
			valStr(l.Address.Street),
			valStr(l.Address.City),
			valStr(l.Address.Country),
			valStr(l.Image),
			valStr(l.Description),
			string(cats),
			l.NightlyPrice,
		).
		Suffix(upsertListingSuffix).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// ReplaceReviews swaps the listing's reviews in one transaction.
func (r *Repo) ReplaceReviews(ctx context.Context, listingID string, rs []domain.Review) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteReviewsSQL, listingID); err != nil {
		return err
	}
	if len(rs) > 0 {
		ins := sq.Insert("reviews").Columns(reviewColumns...)
		for i, rv := range rs {
			ins = ins.Values(listingID, i, rv.Author, valStr(rv.Avatar), rv.Rating, valStr(rv.Comment))
		}
		q, args, qerr := ins.ToSql()
		if qerr != nil {
			return qerr
		}
		if _, err = tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	q, args, err := selectListings().ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	q, args, err := selectListings().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Listing{}, err
	}
	l, err := scanListing(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Listing{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Listing{}, err
	}
	l.Reviews, err = r.reviews(ctx, id, 0)
	if err != nil {
		return domain.Listing{}, err
	}
	return l, nil
}

func (r *Repo) ListReviews(ctx context.Context, id string, pg domain.PageQuery) ([]domain.Review, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM listings WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.reviews(ctx, id, pg.Limit)
}

func (r *Repo) reviews(ctx context.Context, id string, limit int) ([]domain.Review, error) {
	b := selectReviews(id)
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		var (
			rv              domain.Review
			avatar, comment sql.NullString
		)
		if err := rows.Scan(&rv.ListingID, &rv.Author, &avatar, &rv.Rating, &comment); err != nil {
			return nil, err
		}
		rv.Avatar = avatar.String
		rv.Comment = comment.String
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reviews for %s: %w", id, err)
	}
	return out, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanListing(s scanner) (domain.Listing, error) {
	var (
		l                     domain.Listing
		street, city, country sql.NullString
		image, description    sql.NullString
		categoriesJSON        []byte
	)
	if err := s.Scan(
		&l.ID,
		&l.Position,
		&l.Name,
		&l.Rating,
		&street, &city, &country,
		&image,
		&description,
		&categoriesJSON,
		&l.NightlyPrice,
	); err != nil {
		return domain.Listing{}, err
	}
	l.Address = domain.Address{Street: street.String, City: city.String, Country: country.String}
	l.Image = image.String
	l.Description = description.String
	if err := json.Unmarshal(categoriesJSON, &l.Categories); err != nil {
		return domain.Listing{}, fmt.Errorf("listing %s categories: %w", l.ID, err)
	}
	return l, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var (
	_ domain.ListingSource = (*Repo)(nil)
	_ domain.ListingWriter = (*Repo)(nil)
)
