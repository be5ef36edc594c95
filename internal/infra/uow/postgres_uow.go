package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/preference"
	"staybook/internal/domain/property"
	"staybook/internal/domain/reservation"
	"staybook/internal/infra/db"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var errMaxRetriesExceeded = errs.New("transaction failed after max retries")

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Double booking is prevented by row locks and the exclusion constraint,
// not by isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, shared.ErrTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, shared.ErrTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	paymentRepo        shared.PaymentRepository
	reservationRepo    shared.ReservationRepository
	propertyRepo       shared.PropertyRepository
	roomRepo           shared.RoomRepository
	reviewRepo         shared.ReviewRepository
	ratingStatsRepo    shared.RatingStatsRepository
	favoriteRepo       shared.FavoriteRepository
	preferenceRepo     shared.PreferenceRepository
	notificationRepo   shared.NotificationRepository
	reconciliationRepo shared.ReconciliationRepository
	commandReads       shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) Properties() shared.PropertyRepository {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository()
	}
	return t.propertyRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository()
	}
	return t.roomRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = repository.NewRatingStatsRepository()
	}
	return t.ratingStatsRepo
}

func (t *pgTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository()
	}
	return t.favoriteRepo
}

func (t *pgTx) Preferences() shared.PreferenceRepository {
	if t.preferenceRepo == nil {
		t.preferenceRepo = repository.NewPreferenceRepository()
	}
	return t.preferenceRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reconciliation() shared.ReconciliationRepository {
	if t.reconciliationRepo == nil {
		t.reconciliationRepo = repository.NewReconciliationRepository()
	}
	return t.reconciliationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	propertyStore    *readstore.PropertyReadStore
	paymentStore     *readstore.PaymentReadStore
	reservationStore *readstore.ReservationReadStore
	reviewStore      *readstore.ReviewReadStore
	userStore        *readstore.UserReadStore
}

func (r *commandReads) properties() *readstore.PropertyReadStore {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.dbtx)
	}
	return r.propertyStore
}

func (r *commandReads) payments() *readstore.PaymentReadStore {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}
	return r.paymentStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return r.properties().LoadProperty(ctx, id)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*property.Room, error) {
	return r.properties().LoadRoom(ctx, id)
}

func (r *commandReads) RoomsByIDs(ctx context.Context, ids []uuid.UUID) ([]*property.Room, error) {
	return r.properties().LoadRooms(ctx, ids)
}

func (r *commandReads) PricingContext(ctx context.Context, propertyID uuid.UUID) (*shared.PricingContext, error) {
	return r.properties().PricingContext(ctx, propertyID)
}

func (r *commandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return r.payments().LoadPayment(ctx, id)
}

func (r *commandReads) PaymentByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	return r.payments().LoadPaymentByIntent(ctx, intentID)
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservations().LoadReservation(ctx, id)
}

func (r *commandReads) Occupancy(ctx context.Context, roomIDs []uuid.UUID, stay booking.DateRange) ([]booking.Occupancy, error) {
	return r.reservations().Occupancy(ctx, roomIDs, stay)
}

func (r *commandReads) PreferencesByUser(ctx context.Context, userID uuid.UUID) (*preference.Preferences, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore.LoadPreferences(ctx, userID)
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.dbtx)
	}
	return r.reviewStore.Snapshot(ctx, id)
}
