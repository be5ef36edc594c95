//go:build integration

package uow_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/uow"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/pgtest"
	commandsmock "staybook/internal/testutil/mock/commands"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type BookingStoreSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	uow        shared.UnitOfWork
	ownerID    uuid.UUID
	propertyID uuid.UUID
	roomID     uuid.UUID
}

func TestBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(BookingStoreSuite))
}

func (s *BookingStoreSuite) SetupTest() {
	s.pool, _ = pgtest.NewDatabase(s.T())
	s.uow = uow.NewPostgresUoW(s.pool)

	s.ownerID = s.insertUser("owner")
	s.propertyID = uuid.New()
	s.exec(`INSERT INTO properties (id, owner_id, name, region, stars, property_type, created_at, updated_at)
VALUES ($1, $2, 'Casa Verde', 'brasov', 4, 'guesthouse', $3, $3)`, s.propertyID, s.ownerID, now)
	s.roomID = uuid.New()
	s.exec(`INSERT INTO rooms (id, property_id, room_type, capacity, price_cents, currency, price_rating, created_at, updated_at)
VALUES ($1, $2, 'double', 2, 9000, 'eur', 'fair price', $3, $3)`, s.roomID, s.propertyID, now)
}

func (s *BookingStoreSuite) exec(sql string, args ...any) {
	_, err := s.pool.Exec(context.Background(), sql, args...)
	s.Require().NoError(err)
}

func (s *BookingStoreSuite) count(sql string, args ...any) int {
	var n int
	s.Require().NoError(s.pool.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

func (s *BookingStoreSuite) insertUser(role string) uuid.UUID {
	id := uuid.New()
	s.exec(`INSERT INTO users (id, email, role) VALUES ($1, $2, $3)`, id, id.String()+"@example.com", role)
	return id
}

func (s *BookingStoreSuite) stay(in, out string) booking.DateRange {
	r, err := booking.ParseDateRange(in, out)
	s.Require().NoError(err)
	return r
}

// insertPendingPayment stores a pending payment for the room over stay.
func (s *BookingStoreSuite) insertPendingPayment(guestID uuid.UUID, stay booking.DateRange) uuid.UUID {
	id := uuid.New()
	s.exec(`INSERT INTO payments (id, intent_id, guest_id, property_id, room_ids, check_in, check_out, amount_cents, currency, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 36000, 'eur', 'pending', $8, $8)`,
		id, "pi_"+id.String(), guestID, s.propertyID, []uuid.UUID{s.roomID}, stay.CheckIn(), stay.CheckOut(), now)
	return id
}

func (s *BookingStoreSuite) createReservation(stay booking.DateRange, status reservation.Status) error {
	guestID := s.insertUser("guest")
	paymentID := s.insertPendingPayment(guestID, stay)
	res := reservation.ReconstructReservation(uuid.New(), guestID, s.propertyID, paymentID, []uuid.UUID{s.roomID}, stay, status, now, now)
	return s.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, tx.DB(), res)
	})
}

func (s *BookingStoreSuite) TestOverlapExclusion() {
	testCases := []struct {
		name           string
		first          booking.DateRange
		firstStatus    reservation.Status
		second         booking.DateRange
		expectConflict bool
	}{
		{
			name:           "overlapping nights are rejected",
			first:          s.stay("2026-08-10", "2026-08-14"),
			firstStatus:    reservation.StatusConfirmed,
			second:         s.stay("2026-08-13", "2026-08-16"),
			expectConflict: true,
		},
		{
			name:           "identical stay is rejected",
			first:          s.stay("2026-08-10", "2026-08-14"),
			firstStatus:    reservation.StatusConfirmed,
			second:         s.stay("2026-08-10", "2026-08-14"),
			expectConflict: true,
		},
		{
			name:        "back-to-back stays share no night",
			first:       s.stay("2026-08-10", "2026-08-14"),
			firstStatus: reservation.StatusConfirmed,
			second:      s.stay("2026-08-14", "2026-08-16"),
		},
		{
			name:        "cancelled stays do not hold the room",
			first:       s.stay("2026-08-10", "2026-08-14"),
			firstStatus: reservation.StatusCancelled,
			second:      s.stay("2026-08-11", "2026-08-12"),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.exec(`DELETE FROM reservations`)

			s.Require().NoError(s.createReservation(tc.first, tc.firstStatus))
			err := s.createReservation(tc.second, reservation.StatusConfirmed)

			if tc.expectConflict {
				s.Require().Error(err)
				s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)
				s.Equal(1, s.count(`SELECT count(*) FROM reservations`))
				return
			}
			s.Require().NoError(err)
			s.Equal(2, s.count(`SELECT count(*) FROM reservations`))
		})
	}
}

func (s *BookingStoreSuite) TestConcurrentConfirm() {
	t := s.T()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockPaymentGateway(ctrl)
	clk := clock.NewMockClock(now)
	uc := commands.NewBookingUseCase(
		s.uow,
		gateway,
		commandsmock.NewMockWebhookVerifier(ctrl),
		commandsmock.NewMockWebhookDeduper(ctrl),
		reservation.NewFactory(clk),
		clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		config.NewTestConfig(),
	)

	const guests = 5
	stay := s.stay("2026-08-10", "2026-08-14")
	type attempt struct{ guestID, paymentID uuid.UUID }
	attempts := make([]attempt, guests)
	for i := range attempts {
		g := s.insertUser("guest")
		attempts[i] = attempt{guestID: g, paymentID: s.insertPendingPayment(g, stay)}
	}

	gateway.EXPECT().RetrieveIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*payment.Intent, error) {
			return &payment.Intent{ID: id, Status: payment.IntentSucceeded}, nil
		}).Times(guests)
	gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(payment.RefundSucceeded, nil).Times(guests - 1)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	start := make(chan struct{})
	for _, a := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.Confirm(ctx, a.paymentID, a.guestID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, commands.ErrPaymentFailed):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, guests-1, conflicts)
	require.Equal(t, 1, s.count(`SELECT count(*) FROM reservations WHERE status = 'confirmed'`))
	assert.Equal(t, 1, s.count(`SELECT count(*) FROM payments WHERE status = 'succeeded' AND reservation_id IS NOT NULL`))
	assert.Equal(t, guests-1, s.count(`SELECT count(*) FROM payments WHERE status = 'refunded'`))
	assert.Equal(t, 1, s.count(`SELECT count(*) FROM notification_jobs WHERE topic = 'reservation_confirmed'`))
}
