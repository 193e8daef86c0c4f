package repository

import (
	"context"
	"sync"
	"testing"

	"bt2horizon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, repo *TripRepository, max int) *domain.TravelTrip {
	t.Helper()
	img := "/static/trip.jpg"
	trip := &domain.TravelTrip{
		Title:           "Sahara Expedition",
		Destination:     "Merzouga",
		Country:         "Morocco",
		StartDate:       "2026-11-01",
		EndDate:         "2026-11-10",
		MaxParticipants: max,
		ImageURL:        &img,
		Images:          []string{img},
		Status:          domain.TripOpen,
	}
	require.NoError(t, repo.Create(context.Background(), trip))
	return trip
}

func participantFor(userID int64) *domain.TripParticipant {
	return &domain.TripParticipant{UserID: &userID, Status: "confirmed"}
}

func TestTripRepository_JoinIncrementsAndFlipsStatus(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	trip := seedTrip(t, repo, 2)

	p1 := participantFor(1)
	p1.TripID = trip.ID
	require.NoError(t, repo.Join(ctx, trip.ID, p1))

	got, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentParticipants)
	assert.Equal(t, domain.TripOpen, got.Status)

	p2 := participantFor(2)
	p2.TripID = trip.ID
	require.NoError(t, repo.Join(ctx, trip.ID, p2))

	got, err = repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentParticipants)
	assert.Equal(t, domain.TripFull, got.Status)

	// No third seat.
	p3 := participantFor(3)
	p3.TripID = trip.ID
	assert.ErrorIs(t, repo.Join(ctx, trip.ID, p3), ErrSeatUnavailable)
}

func TestTripRepository_ConcurrentLastSeat(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	trip := seedTrip(t, repo, 1)

	const joiners = 8
	errs := make([]error, joiners)
	var wg sync.WaitGroup
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := participantFor(int64(100 + i))
			p.TripID = trip.ID
			errs[i] = repo.Join(ctx, trip.ID, p)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	got, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentParticipants)
	assert.LessOrEqual(t, got.CurrentParticipants, got.MaxParticipants)
}

func TestTripRepository_LeaveReopensTrip(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	trip := seedTrip(t, repo, 1)

	p := participantFor(1)
	p.TripID = trip.ID
	require.NoError(t, repo.Join(ctx, trip.ID, p))

	got, err := repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TripFull, got.Status)

	require.NoError(t, repo.Leave(ctx, trip.ID, p.ID))

	got, err = repo.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentParticipants)
	assert.Equal(t, domain.TripOpen, got.Status)

	// Leaving twice reports the missing registration.
	assert.ErrorIs(t, repo.Leave(ctx, trip.ID, p.ID), ErrParticipantNotFound)
}

func TestTripRepository_FindParticipantByGuestEmail(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()
	trip := seedTrip(t, repo, 5)

	email := "Guest@Example.com"
	name := "Guest"
	p := &domain.TripParticipant{TripID: trip.ID, GuestName: &name, GuestEmail: &email, Status: "confirmed"}
	require.NoError(t, repo.Join(ctx, trip.ID, p))

	found, err := repo.FindParticipant(ctx, trip.ID, nil, "guest@example.COM")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
}

func TestTripRepository_ListFilters(t *testing.T) {
	repo := NewTripRepository(newTestDB(t))
	ctx := context.Background()

	img := "/static/a.jpg"
	trips := []domain.TravelTrip{
		{Title: "A", Destination: "Merzouga", Country: "Morocco", StartDate: "2026-01-01", EndDate: "2026-01-05", MaxParticipants: 5, ImageURL: &img, Images: []string{img}, Status: domain.TripOpen},
		{Title: "B", Destination: "Kyoto", Country: "Japan", StartDate: "2026-02-01", EndDate: "2026-02-10", MaxParticipants: 5, ImageURL: &img, Images: []string{img}, Status: domain.TripCancelled},
	}
	for i := range trips {
		require.NoError(t, repo.Create(ctx, &trips[i]))
	}

	open, err := repo.List(ctx, TripFilter{Status: "open"})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "A", open[0].Title)

	japan, err := repo.List(ctx, TripFilter{Country: "japan"})
	require.NoError(t, err)
	require.Len(t, japan, 1)
	assert.Equal(t, "Kyoto", japan[0].Destination)
}
