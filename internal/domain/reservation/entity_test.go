//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/reservation"
	"staybook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkIn = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func materialize(t *testing.T, guest uuid.UUID) *reservation.Reservation {
	t.Helper()
	stay, err := booking.NewDateRange(checkIn, checkIn.AddDate(0, 0, 4))
	require.NoError(t, err)
	key, err := booking.NewKey(guest, uuid.New(), []uuid.UUID{uuid.New(), uuid.New()}, stay)
	require.NoError(t, err)
	f := reservation.NewFactory(clock.NewMockClock(checkIn.AddDate(0, -2, 0)))
	return f.Materialize(key, uuid.New())
}

func TestMaterialize(t *testing.T) {
	guest := uuid.New()
	r := materialize(t, guest)

	assert.Equal(t, reservation.StatusConfirmed, r.Status())
	assert.Equal(t, guest, r.GuestID())
	assert.Len(t, r.RoomIDs(), 2)
	assert.Equal(t, 4, r.Stay().Nights())
	assert.NotEqual(t, uuid.Nil, r.ID())
}

func TestCheckCancellable(t *testing.T) {
	guest := uuid.New()

	testCases := []struct {
		name  string
		actor uuid.UUID
		now   time.Time
		prep  func(r *reservation.Reservation)
		errIs error
	}{
		{name: "exactly thirty days ahead", actor: guest, now: checkIn.AddDate(0, 0, -30)},
		{name: "thirty days ahead late in the evening", actor: guest, now: checkIn.AddDate(0, 0, -30).Add(23 * time.Hour)},
		{name: "twenty nine days ahead", actor: guest, now: checkIn.AddDate(0, 0, -29), errIs: reservation.ErrInsufficientNotice},
		{name: "after check-in", actor: guest, now: checkIn.AddDate(0, 0, 1), errIs: reservation.ErrInsufficientNotice},
		{name: "someone else", actor: uuid.New(), now: checkIn.AddDate(0, -3, 0), errIs: reservation.ErrNotGuest},
		{
			name:  "already cancelled",
			actor: guest,
			now:   checkIn.AddDate(0, -3, 0),
			prep:  func(r *reservation.Reservation) { require.NoError(t, r.Cancel(checkIn)) },
			errIs: reservation.ErrReservationCanceled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := materialize(t, guest)
			if tc.prep != nil {
				tc.prep(r)
			}
			err := r.CheckCancellable(tc.actor, tc.now, 30)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCancel(t *testing.T) {
	r := materialize(t, uuid.New())
	require.NoError(t, r.Cancel(checkIn))
	assert.True(t, r.IsCancelled())
	assert.False(t, r.IsActive())
	assert.ErrorIs(t, r.Cancel(checkIn), reservation.ErrReservationCanceled)
}

func TestHasCompleted(t *testing.T) {
	r := materialize(t, uuid.New())
	assert.False(t, r.HasCompleted(checkIn.AddDate(0, 0, 3)))
	assert.True(t, r.HasCompleted(checkIn.AddDate(0, 0, 4)))
}
