package domain

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleOwner    UserRole = "OWNER"
	UserRoleBoth     UserRole = "BOTH"
)

// DeriveRole computes a user's role from what they currently hold. A user
// owning listings is an OWNER, one owning listings and bookings is BOTH,
// everyone else (including booking-only users) is a CUSTOMER.
func DeriveRole(listingCount, bookingCount int64) UserRole {
	switch {
	case listingCount > 0 && bookingCount > 0:
		return UserRoleBoth
	case listingCount > 0:
		return UserRoleOwner
	default:
		return UserRoleCustomer
	}
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
