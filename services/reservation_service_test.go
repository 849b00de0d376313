package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lodging-backend/models"
	"lodging-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeMock struct {
	findFn   func(ctx context.Context, placeID string) (*models.Place, error)
	appendFn func(ctx context.Context, placeID string, booking models.Booking) error
	removeFn func(ctx context.Context, placeID, bookingID string) error
}

func (m *storeMock) FindByID(ctx context.Context, placeID string) (*models.Place, error) {
	return m.findFn(ctx, placeID)
}
func (m *storeMock) AppendBooking(ctx context.Context, placeID string, booking models.Booking) error {
	return m.appendFn(ctx, placeID, booking)
}
func (m *storeMock) RemoveBooking(ctx context.Context, placeID, bookingID string) error {
	return m.removeFn(ctx, placeID, bookingID)
}

// memStore keeps places in memory behind a mutex so the concurrency test has
// the same append-is-atomic guarantee the real store gives.
type memStore struct {
	mu     sync.Mutex
	places map[string]*models.Place
}

func newMemStore(placeIDs ...string) *memStore {
	m := &memStore{places: map[string]*models.Place{}}
	for _, id := range placeIDs {
		m.places[id] = &models.Place{ID: id, Name: "Cabin " + id, Bookings: []models.Booking{}}
	}
	return m
}

func (m *memStore) FindByID(ctx context.Context, placeID string) (*models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	place, ok := m.places[placeID]
	if !ok {
		return nil, nil
	}
	cp := *place
	cp.Bookings = append([]models.Booking(nil), place.Bookings...)
	return &cp, nil
}

func (m *memStore) AppendBooking(ctx context.Context, placeID string, booking models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	place, ok := m.places[placeID]
	if !ok {
		return nil
	}
	booking.PlaceID = placeID
	place.Bookings = append(place.Bookings, booking)
	return nil
}

func (m *memStore) RemoveBooking(ctx context.Context, placeID, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	place, ok := m.places[placeID]
	if !ok {
		return nil
	}
	kept := place.Bookings[:0]
	for _, b := range place.Bookings {
		if b.ID != bookingID {
			kept = append(kept, b)
		}
	}
	place.Bookings = kept
	return nil
}

type requireApprovalPolicy struct{}

func (requireApprovalPolicy) RequiresApproval(string, models.Booking) bool { return true }

func validRequest() services.BookingRequest {
	return services.BookingRequest{
		Start:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		GuestID: "g1",
	}
}

func TestReserve_AssignsIDAndAutoApproves(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, services.AutoApprovePolicy{})

	booking, err := s.Reserve(context.Background(), "P1", validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingApproved, booking.Status)
	assert.Equal(t, "g1", booking.GuestID)

	// Round-trip: the booking is in the place with identical fields.
	place, err := store.FindByID(context.Background(), "P1")
	require.NoError(t, err)
	require.Len(t, place.Bookings, 1)
	got := place.Bookings[0]
	assert.Equal(t, booking.ID, got.ID)
	assert.Equal(t, booking.Start, got.Start)
	assert.Equal(t, booking.End, got.End)
	assert.Equal(t, booking.Status, got.Status)
	assert.Equal(t, booking.GuestID, got.GuestID)
}

func TestReserve_IDsAreFreshPerCall(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, nil)

	first, err := s.Reserve(context.Background(), "P1", validRequest())
	require.NoError(t, err)
	second, err := s.Reserve(context.Background(), "P1", validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestReserve_StaysPendingWhenPolicyRequiresApproval(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, requireApprovalPolicy{})

	booking, err := s.Reserve(context.Background(), "P1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
}

func TestReserve_Validation(t *testing.T) {
	// A validation failure must never reach the store.
	s := services.NewReservationService(&storeMock{
		findFn: func(context.Context, string) (*models.Place, error) {
			t.Fatal("store called for invalid request")
			return nil, nil
		},
	}, nil)

	cases := map[string]services.BookingRequest{
		"missing guest": {
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		"missing window": {GuestID: "g1"},
		"end before start": {
			Start:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			GuestID: "g1",
		},
		"end equals start": {
			Start:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			GuestID: "g1",
		},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Reserve(context.Background(), "P1", req)
			require.Error(t, err)
			assert.True(t, services.IsValidation(err), "want ValidationError, got %v", err)
		})
	}
}

func TestReserve_PlaceNotFound(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, nil)

	_, err := s.Reserve(context.Background(), "nope", validRequest())
	assert.ErrorIs(t, err, services.ErrPlaceNotFound)
}

func TestReserve_StorageErrorSurfaced(t *testing.T) {
	boom := errors.New("connection reset")
	s := services.NewReservationService(&storeMock{
		findFn: func(context.Context, string) (*models.Place, error) {
			return &models.Place{ID: "P1"}, nil
		},
		appendFn: func(context.Context, string, models.Booking) error {
			return boom
		},
	}, nil)

	_, err := s.Reserve(context.Background(), "P1", validRequest())
	assert.ErrorIs(t, err, boom)
}

func TestReserve_DoesNotTouchOtherPlaces(t *testing.T) {
	store := newMemStore("A", "B")
	s := services.NewReservationService(store, nil)

	_, err := s.Reserve(context.Background(), "A", validRequest())
	require.NoError(t, err)

	other, err := store.FindByID(context.Background(), "B")
	require.NoError(t, err)
	assert.Empty(t, other.Bookings)
}

func TestCancel_Idempotent(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, nil)

	booking, err := s.Reserve(context.Background(), "P1", validRequest())
	require.NoError(t, err)

	// Unknown booking id: no error, nothing removed.
	require.NoError(t, s.Cancel(context.Background(), "P1", "nonexistent-id"))
	place, _ := store.FindByID(context.Background(), "P1")
	assert.Len(t, place.Bookings, 1)

	// Real cancellation removes the booking.
	require.NoError(t, s.Cancel(context.Background(), "P1", booking.ID))
	place, _ = store.FindByID(context.Background(), "P1")
	assert.Empty(t, place.Bookings)

	// Cancelling again is still fine.
	require.NoError(t, s.Cancel(context.Background(), "P1", booking.ID))
	place, _ = store.FindByID(context.Background(), "P1")
	assert.Empty(t, place.Bookings)
}

func TestReserve_ConcurrentAppendsBothLand(t *testing.T) {
	store := newMemStore("P1")
	s := services.NewReservationService(store, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, guest := range []string{"g1", "g2"} {
		wg.Add(1)
		go func(i int, guest string) {
			defer wg.Done()
			req := validRequest()
			req.GuestID = guest
			_, errs[i] = s.Reserve(context.Background(), "P1", req)
		}(i, guest)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	place, err := store.FindByID(context.Background(), "P1")
	require.NoError(t, err)
	require.Len(t, place.Bookings, 2)
	assert.NotEqual(t, place.Bookings[0].ID, place.Bookings[1].ID)
}
