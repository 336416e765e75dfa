package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending             BookingStatus = "PENDING"
	BookingStatusConfirmed           BookingStatus = "CONFIRMED"
	BookingStatusCancelledByCustomer BookingStatus = "CANCELLED_BY_CUSTOMER"
	BookingStatusCancelledByOwner    BookingStatus = "CANCELLED_BY_OWNER"
	BookingStatusCompleted           BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelledByCustomer,
		BookingStatusCancelledByOwner, BookingStatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the booking can still be modified or cancelled
// by its customer.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// CanOwnerTransition reports whether a listing owner may move a booking
// from one status to another. Owners only decide on pending requests:
// confirm them or cancel them. Everything else, including self-loops and
// any move out of a terminal status, is rejected. Customer cancellations
// and completion are driven elsewhere and never pass through here.
func CanOwnerTransition(from, to BookingStatus) bool {
	return from == BookingStatusPending &&
		(to == BookingStatusConfirmed || to == BookingStatusCancelledByOwner)
}

type Booking struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`
	ListingID  int64 `json:"listing_id"`
	// Calendar dates, no time component. Stored as DATE columns.
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	TotalCostCents int64         `json:"total_cost_cents"`
	Status         BookingStatus `json:"status"`
	CreatedOn      time.Time     `json:"created_on"`
	Customer       *User         `json:"customer,omitempty"`
	Listing        *Listing      `json:"listing,omitempty"`
}
