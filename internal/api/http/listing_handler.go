package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
	"stayhaven-backend/internal/service"
)

type ListingHandler struct {
	listings service.ListingService
}

func NewListingHandler(listings service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

type createListingRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	Type              string `json:"type" validate:"required"`
	Address           string `json:"address" validate:"required"`
	City              string `json:"city" validate:"required"`
	NightlyPriceCents int64  `json:"nightly_price_cents" validate:"required,gt=0"`
	Capacity          int32  `json:"capacity" validate:"required,gt=0"`
	PhotoURL          string `json:"photo_url"`
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperr.InvalidInput("title, type, address, city, nightly_price_cents and capacity are required"))
		return
	}

	listingType := domain.ListingType(req.Type)
	if !listingType.Valid() {
		writeError(w, r, apperr.InvalidInput("unknown listing type: "+req.Type))
		return
	}

	listing := &domain.Listing{
		Title:             req.Title,
		Description:       req.Description,
		Type:              listingType,
		Address:           req.Address,
		City:              req.City,
		NightlyPriceCents: req.NightlyPriceCents,
		Capacity:          req.Capacity,
		Available:         true,
		PhotoURL:          req.PhotoURL,
	}

	created, err := h.listings.CreateListing(r.Context(), listing, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(created))
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := listingFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	listings, err := h.listings.ListListings(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(listings))
}

func listingFilterFromQuery(r *http.Request) (repository.ListingFilter, error) {
	var filter repository.ListingFilter
	q := r.URL.Query()

	filter.City = q.Get("city")

	if raw := q.Get("types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			t := domain.ListingType(strings.TrimSpace(part))
			if !t.Valid() {
				return filter, apperr.InvalidInput("unknown listing type: " + string(t))
			}
			filter.Types = append(filter.Types, t)
		}
	}

	parse := func(name string) (int64, error) {
		raw := q.Get(name)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return 0, apperr.InvalidInput(name + " must be a non-negative integer")
		}
		return v, nil
	}

	capacity, err := parse("capacity")
	if err != nil {
		return filter, err
	}
	filter.MinCapacity = int32(capacity)
	if filter.MinPriceCents, err = parse("min_price_cents"); err != nil {
		return filter, err
	}
	if filter.MaxPriceCents, err = parse("max_price_cents"); err != nil {
		return filter, err
	}
	return filter, nil
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	listing, err := h.listings.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

type updateListingRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Type              *string `json:"type"`
	Address           *string `json:"address"`
	City              *string `json:"city"`
	NightlyPriceCents *int64  `json:"nightly_price_cents"`
	Capacity          *int32  `json:"capacity"`
	Available         *bool   `json:"available"`
	PhotoURL          *string `json:"photo_url"`
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	update := service.ListingUpdate{
		Title:             req.Title,
		Description:       req.Description,
		Address:           req.Address,
		City:              req.City,
		NightlyPriceCents: req.NightlyPriceCents,
		Capacity:          req.Capacity,
		Available:         req.Available,
		PhotoURL:          req.PhotoURL,
	}
	if req.Type != nil {
		listingType := domain.ListingType(*req.Type)
		if !listingType.Valid() {
			writeError(w, r, apperr.InvalidInput("unknown listing type: "+*req.Type))
			return
		}
		update.Type = &listingType
	}
	if req.NightlyPriceCents != nil && *req.NightlyPriceCents <= 0 {
		writeError(w, r, apperr.InvalidInput("nightly_price_cents must be positive"))
		return
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		writeError(w, r, apperr.InvalidInput("capacity must be positive"))
		return
	}

	listing, err := h.listings.UpdateListing(r.Context(), id, update, requesterID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.listings.DeleteListing(r.Context(), id, requesterID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
