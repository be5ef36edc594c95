//go:build unit

package payment_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *payment.Payment {
	t.Helper()
	stay, err := booking.NewDateRange(now.AddDate(0, 1, 0), now.AddDate(0, 1, 3))
	require.NoError(t, err)
	key, err := booking.NewKey(uuid.New(), uuid.New(), []uuid.UUID{uuid.New()}, stay)
	require.NoError(t, err)
	amount, err := booking.NewMoney(30000, "eur")
	require.NoError(t, err)
	p, err := payment.NewPayment("pi_123", amount, key, now)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	p := newPending(t)
	assert.Equal(t, payment.StatusPending, p.Status())
	assert.Nil(t, p.ReservationID())
	assert.True(t, p.BelongsTo(p.Key().GuestID()))
	assert.False(t, p.BelongsTo(uuid.New()))

	zero, err := booking.NewMoney(0, "eur")
	require.NoError(t, err)
	_, err = payment.NewPayment("pi_1", zero, p.Key(), now)
	assert.ErrorIs(t, err, payment.ErrZeroAmount)

	_, err = payment.NewPayment("", p.Amount(), p.Key(), now)
	assert.ErrorIs(t, err, payment.ErrMissingIntent)
}

func TestPaymentTransitions(t *testing.T) {
	type step func(p *payment.Payment) error
	succeed := func(p *payment.Payment) error { return p.Succeed(uuid.New(), now) }
	fail := func(p *payment.Payment) error { return p.Fail("rooms taken", now) }
	refund := func(p *payment.Payment) error { return p.Refund(now) }

	testCases := []struct {
		name  string
		steps []step
		final payment.Status
		errIs error
	}{
		{name: "pending to succeeded", steps: []step{succeed}, final: payment.StatusSucceeded},
		{name: "pending to failed", steps: []step{fail}, final: payment.StatusFailed},
		{name: "succeeded to refunded", steps: []step{succeed, refund}, final: payment.StatusRefunded},
		{name: "failed to refunded", steps: []step{fail, refund}, final: payment.StatusRefunded},
		{name: "double succeed rejected", steps: []step{succeed, succeed}, errIs: payment.ErrInvalidTransition},
		{name: "pending cannot be refunded", steps: []step{refund}, errIs: payment.ErrInvalidTransition},
		{name: "refunded cannot succeed", steps: []step{fail, refund, succeed}, errIs: payment.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPending(t)
			var err error
			for _, s := range tc.steps {
				if err = s(p); err != nil {
					break
				}
			}
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.final, p.Status())
		})
	}
}

func TestSucceedLinksReservation(t *testing.T) {
	p := newPending(t)
	resID := uuid.New()
	require.NoError(t, p.Succeed(resID, now))
	require.NotNil(t, p.ReservationID())
	assert.Equal(t, resID, *p.ReservationID())
}

func TestParseStatus(t *testing.T) {
	s, err := payment.ParseStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, s)

	_, err = payment.ParseStatus("paid")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}
