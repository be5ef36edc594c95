package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/favorite"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/preference"
	"staybook/internal/domain/property"
	"staybook/internal/domain/reservation"
	"staybook/internal/domain/review"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Payments() PaymentRepository
	Reservations() ReservationRepository
	Properties() PropertyRepository
	Rooms() RoomRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Favorites() FavoriteRepository
	Preferences() PreferenceRepository
	Notifications() NotificationRepository
	Reconciliation() ReconciliationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*property.Room, error)
	RoomsByIDs(ctx context.Context, ids []uuid.UUID) ([]*property.Room, error)
	PricingContext(ctx context.Context, propertyID uuid.UUID) (*PricingContext, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	PaymentByIntentID(ctx context.Context, intentID string) (*payment.Payment, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Occupancy(ctx context.Context, roomIDs []uuid.UUID, stay booking.DateRange) ([]booking.Occupancy, error)
	PreferencesByUser(ctx context.Context, userID uuid.UUID) (*preference.Preferences, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	// LockByID selects the payment FOR UPDATE.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payment.Payment, error)
	Update(ctx context.Context, tx db.DBTX, p *payment.Payment) error
}

type ReservationRepository interface {
	// LockRooms takes row locks on the rooms in id order so concurrent
	// confirmations over intersecting room sets serialize without deadlock.
	LockRooms(ctx context.Context, tx db.DBTX, roomIDs []uuid.UUID) error
	// Overlapping returns the rooms with an active stay intersecting stay.
	Overlapping(ctx context.Context, tx db.DBTX, roomIDs []uuid.UUID, stay booking.DateRange) ([]uuid.UUID, error)
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// Update persists the status; a cancelled reservation releases its room links.
	Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	HasUpcomingStays(ctx context.Context, tx db.DBTX, propertyID uuid.UUID, roomID *uuid.UUID, now time.Time) (bool, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *property.Property) error
	Update(ctx context.Context, tx db.DBTX, p *property.Property) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	AssignCluster(ctx context.Context, tx db.DBTX, id uuid.UUID, clusterID int) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *property.Room) error
	// Update fails with a conflict when the stored updated_at is no longer seen.
	Update(ctx context.Context, tx db.DBTX, r *property.Room, seen time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcPropertyRatingStats(ctx context.Context, tx db.DBTX, propertyID uuid.UUID) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, tx db.DBTX, f favorite.Favorite) error
	Remove(ctx context.Context, tx db.DBTX, userID, propertyID uuid.UUID) error
}

type PreferenceRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, p *preference.Preferences) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type ReconciliationRepository interface {
	Record(ctx context.Context, tx db.DBTX, ev ReconciliationEvent) error
}
