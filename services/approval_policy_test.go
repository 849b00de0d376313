package services_test

import (
	"testing"
	"time"

	"lodging-backend/models"
	"lodging-backend/services"

	"github.com/stretchr/testify/assert"
)

func TestAutoApprovePolicy_NeverRequiresApproval(t *testing.T) {
	policy := services.AutoApprovePolicy{}

	bookings := []models.Booking{
		{},
		{
			ID:      "b1",
			Start:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			GuestID: "g1",
			Status:  models.BookingPending,
		},
	}
	for _, b := range bookings {
		assert.False(t, policy.RequiresApproval("any-place", b))
	}
}
