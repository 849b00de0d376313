package repository

import (
	"context"
	"errors"
	"fmt"

	"lodging-backend/models"

	"gorm.io/gorm"
)

// PlaceRepository is the storage side of the place aggregate. Bookings live in
// a child table of places, so appending one booking is a single INSERT and
// removing one is a single DELETE. Both are atomic at the engine level, which
// is the only guarantee the reservation flow relies on: two concurrent appends
// against the same place both land, and an append never has to read first.
type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) FindAll(ctx context.Context) ([]models.Place, error) {
	var places []models.Place
	if err := r.db.WithContext(ctx).Preload("Bookings").Find(&places).Error; err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

// FindByBookingGuest returns the places where any booking belongs to guestID.
func (r *PlaceRepository) FindByBookingGuest(ctx context.Context, guestID string) ([]models.Place, error) {
	var places []models.Place
	err := r.db.WithContext(ctx).
		Distinct("places.*").
		Joins("JOIN bookings ON bookings.place_id = places.id").
		Where("bookings.guest_id = ?", guestID).
		Preload("Bookings").
		Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list places for guest: %w", err)
	}
	return places, nil
}

// FindByID returns (nil, nil) when the place does not exist.
func (r *PlaceRepository) FindByID(ctx context.Context, placeID string) (*models.Place, error) {
	var place models.Place
	err := r.db.WithContext(ctx).Preload("Bookings").Where("id = ?", placeID).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find place %s: %w", placeID, err)
	}
	return &place, nil
}

// AppendBooking attaches booking to the place in one INSERT.
func (r *PlaceRepository) AppendBooking(ctx context.Context, placeID string, booking models.Booking) error {
	booking.PlaceID = placeID
	if err := r.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return fmt.Errorf("failed to append booking to place %s: %w", placeID, err)
	}
	return nil
}

// RemoveBooking deletes the matching booking. Matching zero rows is fine:
// cancellation is idempotent.
func (r *PlaceRepository) RemoveBooking(ctx context.Context, placeID, bookingID string) error {
	err := r.db.WithContext(ctx).
		Where("place_id = ? AND id = ?", placeID, bookingID).
		Delete(&models.Booking{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove booking %s from place %s: %w", bookingID, placeID, err)
	}
	return nil
}

func (r *PlaceRepository) Insert(ctx context.Context, place *models.Place) error {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}
	return nil
}
