package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/service"
)

var validate = validator.New()

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidInput("invalid " + name + " path parameter")
	}
	return id, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.InvalidInput(field + " must be a date in YYYY-MM-DD format")
	}
	return t.UTC(), nil
}

func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, apperr.Unauthorized("authentication required"))
		return 0, false
	}
	return id, true
}

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	ListingID int64  `json:"listing_id" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperr.InvalidInput("listing_id, start_date and end_date are required"))
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), customerID, req.ListingID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAllBookings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

type updateBookingDatesRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (h *BookingHandler) UpdateDates(w http.ResponseWriter, r *http.Request) {
	customerID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateBookingDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperr.InvalidInput("start_date and end_date are required"))
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookings.UpdateBookingDates(r.Context(), id, customerID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

// Cancel handles DELETE on a booking. The row survives with a cancelled
// status rather than being removed.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	customerID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.bookings.CancelBooking(r.Context(), id, customerID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, r, apperr.InvalidInput("status is required"))
		return
	}

	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		writeError(w, r, apperr.InvalidInput("unknown booking status: "+req.Status))
		return
	}

	booking, err := h.bookings.UpdateBookingStatus(r.Context(), id, ownerID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	customerID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookings.ListBookingsByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListForMyListings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookings.ListBookingsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}
