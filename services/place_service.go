package services

import (
	"context"
	"fmt"

	"lodging-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlaceCatalog is the storage surface for place listing and creation.
type PlaceCatalog interface {
	FindAll(ctx context.Context) ([]models.Place, error)
	FindByBookingGuest(ctx context.Context, guestID string) ([]models.Place, error)
	FindByID(ctx context.Context, placeID string) (*models.Place, error)
	Insert(ctx context.Context, place *models.Place) error
}

// PlaceInput is the creation payload. Name is the only required field.
type PlaceInput struct {
	Owner     string           `json:"owner"`
	Name      string           `json:"name" validate:"required"`
	Photo     string           `json:"photo"`
	Amenities []models.Amenity `json:"amenities"`
}

type PlaceService struct {
	store    PlaceCatalog
	validate *validator.Validate
}

func NewPlaceService(store PlaceCatalog) *PlaceService {
	return &PlaceService{store: store, validate: validator.New()}
}

func (s *PlaceService) GetAll(ctx context.Context) ([]models.Place, error) {
	return s.store.FindAll(ctx)
}

// GetByID returns ErrPlaceNotFound when the id matches nothing.
func (s *PlaceService) GetByID(ctx context.Context, placeID string) (models.Place, error) {
	place, err := s.store.FindByID(ctx, placeID)
	if err != nil {
		return models.Place{}, err
	}
	if place == nil {
		return models.Place{}, ErrPlaceNotFound
	}
	return *place, nil
}

// GetForGuest lists the places where the guest holds at least one booking.
func (s *PlaceService) GetForGuest(ctx context.Context, guestID string) ([]models.Place, error) {
	if guestID == "" {
		return nil, &ValidationError{Reason: "guestId is required"}
	}
	return s.store.FindByBookingGuest(ctx, guestID)
}

// Create validates the input, assigns a fresh id and stores the place with an
// empty booking list.
func (s *PlaceService) Create(ctx context.Context, input PlaceInput) (models.Place, error) {
	if err := s.validate.Struct(input); err != nil {
		return models.Place{}, &ValidationError{Reason: err.Error()}
	}

	amenities := input.Amenities
	if amenities == nil {
		amenities = []models.Amenity{}
	}

	place := models.Place{
		ID:        uuid.NewString(),
		Owner:     input.Owner,
		Name:      input.Name,
		Photo:     input.Photo,
		Amenities: datatypes.NewJSONSlice(amenities),
		Bookings:  []models.Booking{},
	}
	if err := s.store.Insert(ctx, &place); err != nil {
		return models.Place{}, fmt.Errorf("create place: %w", err)
	}
	return place, nil
}
