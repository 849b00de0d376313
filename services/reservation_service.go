package services

import (
	"context"
	"fmt"
	"time"

	"lodging-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PlaceStore is the slice of storage the reservation flow needs. Append and
// remove are single atomic array operations against one place; the service
// never asks for anything stronger (no transactions, no read-modify-write).
type PlaceStore interface {
	FindByID(ctx context.Context, placeID string) (*models.Place, error)
	AppendBooking(ctx context.Context, placeID string, booking models.Booking) error
	RemoveBooking(ctx context.Context, placeID, bookingID string) error
}

// BookingRequest is what a guest submits. Any id the caller puts on the wire
// is ignored; the service assigns identity itself.
type BookingRequest struct {
	Start   time.Time `json:"start" validate:"required"`
	End     time.Time `json:"end" validate:"required,gtfield=Start"`
	GuestID string    `json:"guestId" validate:"required"`
}

// ReservationService owns booking identity, the status transition at creation
// time, and cancellation. Persistence details stay behind PlaceStore.
type ReservationService struct {
	store    PlaceStore
	policy   ApprovalPolicy
	validate *validator.Validate
}

func NewReservationService(store PlaceStore, policy ApprovalPolicy) *ReservationService {
	if policy == nil {
		policy = AutoApprovePolicy{}
	}
	return &ReservationService{
		store:    store,
		policy:   policy,
		validate: validator.New(),
	}
}

// Reserve creates a booking against placeID. The booking gets a fresh id and
// starts pending; it flips to approved right here when the policy does not
// ask for review. The returned value is the service's own view — it is not
// re-read from storage after the append.
func (s *ReservationService) Reserve(ctx context.Context, placeID string, req BookingRequest) (models.Booking, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Booking{}, &ValidationError{Reason: err.Error()}
	}

	place, err := s.store.FindByID(ctx, placeID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("reserve: %w", err)
	}
	if place == nil {
		return models.Booking{}, ErrPlaceNotFound
	}

	booking := models.Booking{
		ID:      uuid.NewString(),
		Start:   req.Start,
		End:     req.End,
		Status:  models.BookingPending,
		GuestID: req.GuestID,
	}
	if !s.policy.RequiresApproval(placeID, booking) {
		booking.Status = models.BookingApproved
	}

	// No retry on failure: if the append actually committed, retrying would
	// duplicate the booking.
	if err := s.store.AppendBooking(ctx, placeID, booking); err != nil {
		return models.Booking{}, fmt.Errorf("reserve: %w", err)
	}
	return booking, nil
}

// Cancel removes the booking from its place. Cancelling a booking that does
// not exist is a successful no-op, so callers can retry freely.
func (s *ReservationService) Cancel(ctx context.Context, placeID, bookingID string) error {
	if err := s.store.RemoveBooking(ctx, placeID, bookingID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	return nil
}
