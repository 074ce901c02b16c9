package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
)

func booking(id, carID string, status domain.BookingStatus, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		CarID:          carID,
		Status:         status,
		ScheduledStart: start,
		ScheduledEnd:   end,
	}
}

func TestFindConflicts(t *testing.T) {
	t.Parallel()

	existing := []*domain.Booking{
		booking("b1", "car-1", domain.BookingStatusBooked, date(1), date(5)),
		booking("b2", "car-1", domain.BookingStatusCancelled, date(6), date(10)),
		booking("b3", "car-2", domain.BookingStatusActive, date(1), date(5)),
		booking("b4", "car-1", domain.BookingStatusCompleted, date(11), date(15)),
	}

	cases := []struct {
		name       string
		carID      string
		start, end time.Time
		exclude    string
		wantIDs    []string
	}{
		{"overlap with booked", "car-1", date(3), date(7), "", []string{"b1"}},
		{"cancelled never blocks", "car-1", date(6), date(10), "", nil},
		{"completed never blocks", "car-1", date(11), date(15), "", nil},
		{"other car not consulted", "car-3", date(1), date(5), "", nil},
		{"touching end", "car-1", date(5), date(6), "", nil},
		{"touching start", "car-1", date(0), date(1), "", nil},
		{"contained interval", "car-1", date(2), date(3), "", []string{"b1"}},
		{"containing interval", "car-1", date(0), date(20), "", []string{"b1"}},
		{"excluded booking ignored", "car-1", date(3), date(7), "b1", nil},
		{"active blocks on its car", "car-2", date(4), date(6), "", []string{"b3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := findConflicts(existing, tc.carID, tc.start, tc.end, tc.exclude)
			assert.ElementsMatch(t, tc.wantIDs, conflictIDs(got))
		})
	}
}

func TestFindConflicts_RandomIntervalsNeverOverlapAfterRejection(t *testing.T) {
	t.Parallel()

	// Place random intervals one at a time, admitting only the ones the
	// conflict check clears; the accepted set must stay pairwise disjoint.
	rng := rand.New(rand.NewSource(42))
	var accepted []*domain.Booking

	base := date(1)
	for i := 0; i < 500; i++ {
		startOff := rng.Intn(90)
		length := 1 + rng.Intn(14)
		start := base.AddDate(0, 0, startOff)
		end := start.AddDate(0, 0, length)

		if len(findConflicts(accepted, "car-1", start, end, "")) == 0 {
			accepted = append(accepted, booking("", "car-1", domain.BookingStatusBooked, start, end))
		}
	}

	assert.NotEmpty(t, accepted)
	for i := 0; i < len(accepted); i++ {
		for j := i + 1; j < len(accepted); j++ {
			a, b := accepted[i], accepted[j]
			overlap := a.ScheduledStart.Before(b.ScheduledEnd) && b.ScheduledStart.Before(a.ScheduledEnd)
			assert.False(t, overlap, "accepted bookings %d and %d overlap", i, j)
		}
	}
}
