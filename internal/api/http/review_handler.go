package http

import (
	"encoding/json"
	"net/http"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/service"
)

type ReviewHandler struct {
	reviews service.ReviewService
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	ListingID int64  `json:"listing_id" validate:"required,gt=0"`
	Rating    int32  `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperr.InvalidInput("listing_id is required and rating must be between 1 and 5"))
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), authorID, req.ListingID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(review))
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListReviews(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

func (h *ReviewHandler) ListByListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "listingId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.reviews.ListReviewsByListing(r.Context(), listingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

func (h *ReviewHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "authorId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviews, err := h.reviews.ListReviewsByAuthor(r.Context(), authorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
