package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"listing_hub/internal/app"
	"listing_hub/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type reservationRequest struct {
	CheckIn  *domain.DateStamp `json:"check_in"`
	CheckOut *domain.DateStamp `json:"check_out"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/filters", h.listFilters)
	s.mux.Get("/v1/listings", h.listListings)
	s.mux.Get("/v1/listings/{id}", h.getListing)
	s.mux.Get("/v1/listings/{id}/reviews", h.listReviews)
	s.mux.Get("/v1/listings/{id}/quote", h.quote)
	s.mux.Post("/v1/listings/{id}/reservations", h.reserve)
}

// activeCategory reads ?category=. Absent or empty means no filter.
func activeCategory(r *http.Request) *string {
	if c := r.URL.Query().Get("category"); c != "" {
		return &c
	}
	return nil
}

// optionalDate parses a YYYY-MM-DD query parameter; empty means absent.
func optionalDate(r *http.Request, key string) (*domain.DateStamp, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	d, err := domain.ParseDateStamp(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "listing not found")
	case errors.Is(err, domain.ErrInvalidDate):
		writeProblem(w, http.StatusBadRequest, "Invalid date", "dates must be formatted YYYY-MM-DD")
	case errors.Is(err, domain.ErrNotReservable):
		writeProblem(w, http.StatusConflict, "Not reservable", err.Error())
	case errors.Is(err, domain.ErrCheckInInPast):
		writeProblem(w, http.StatusUnprocessableEntity, "Check-in in the past", err.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		log.Error().Err(err).Msg("listing has an invalid nightly price")
		writeProblem(w, http.StatusInternalServerError, "Invalid price", "listing price is not valid")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable writes v as JSON with an ETag, answering 304 when the client
// already has it.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listFilters(w http.ResponseWriter, r *http.Request) {
	active := activeCategory(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"active":  active,
		"filters": h.Q.Filters(active),
	})
}

func (h *Handlers) listListings(w http.ResponseWriter, r *http.Request) {
	active := activeCategory(r)
	items, err := h.Q.ListListings(r.Context(), active)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, map[string]any{
		"active": active,
		"count":  len(items),
		"items":  items,
	})
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	v, err := h.Q.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, v)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	limit := domain.DefaultReviewLimit
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > domain.MaxReviewLimit {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", fmt.Sprintf("limit must be an integer between 1 and %d", domain.MaxReviewLimit))
			return
		}
		limit = l
	}

	out, err := h.Q.ListReviews(r.Context(), chi.URLParam(r, "id"), domain.PageQuery{Limit: limit})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	checkIn, err := optionalDate(r, "check_in")
	if err != nil {
		writeError(w, err)
		return
	}
	checkOut, err := optionalDate(r, "check_out")
	if err != nil {
		writeError(w, err)
		return
	}
	q, err := h.B.Quote(r.Context(), chi.URLParam(r, "id"), checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) reserve(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<12))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			writeError(w, err)
			return
		}
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"check_in\":\"YYYY-MM-DD\",\"check_out\":\"YYYY-MM-DD\"}")
		return
	}
	if req.CheckIn == nil || req.CheckOut == nil {
		writeError(w, domain.ErrNotReservable)
		return
	}

	c, err := h.B.Reserve(r.Context(), chi.URLParam(r, "id"), *req.CheckIn, *req.CheckOut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
