package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name     string
		listings int64
		bookings int64
		want     UserRole
	}{
		{"nothing held", 0, 0, UserRoleCustomer},
		{"bookings only", 0, 3, UserRoleCustomer},
		{"listings only", 2, 0, UserRoleOwner},
		{"listings and bookings", 1, 1, UserRoleBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRole(tt.listings, tt.bookings))
		})
	}
}
