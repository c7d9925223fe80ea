package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

func TestBookingService_CreateBooking(t *testing.T) {
	db := utils.SetupTestDB(t, "bakholokoe_test_bookings", bookingsCollection)
	svc := NewBookingService(db)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, models.Booking{
		Category:  models.CategoryHunt,
		UserEmail: "jane@example.com",
		FirstName: "Jane",
		Contact:   "555",
		HuntDate:  "2025-10-01",
	})
	require.NoError(t, err)
	assert.NotEqual(t, utils.SixID{}, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingService_ListByUser(t *testing.T) {
	db := utils.SetupTestDB(t, "bakholokoe_test_bookings_list", bookingsCollection)
	svc := NewBookingService(db)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, models.Booking{
		Category:  models.CategoryHunt,
		UserEmail: "jane@example.com",
		FirstName: "Jane",
		Contact:   "555",
		HuntDate:  "2025-10-01",
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, models.Booking{
		Category:    models.CategoryAccommodation,
		UserEmail:   "jane@example.com",
		FirstName:   "Jane",
		Contact:     "555",
		CheckinDate: "2025-11-15",
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, models.Booking{
		Category:        models.CategoryWater,
		UserEmail:       "john@example.com",
		FirstName:       "John",
		Contact:         "556",
		ProductQuantity: "20",
		Location:        "Qacha's Nek",
	})
	require.NoError(t, err)

	bookings, err := svc.ListByUser(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, "jane@example.com", b.UserEmail)
	}

	// Resubmitting the same form creates a second record; the workflow is not idempotent.
	_, err = svc.CreateBooking(ctx, models.Booking{
		Category:  models.CategoryHunt,
		UserEmail: "jane@example.com",
		FirstName: "Jane",
		Contact:   "555",
		HuntDate:  "2025-10-01",
	})
	require.NoError(t, err)

	bookings, err = svc.ListByUser(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
}
