//go:build unit || integration

// Package fakeuow is an in-memory shared.UnitOfWork. Transactions are
// serialized and rolled back on error, which is enough to exercise the
// locking protocol of the booking flow without Postgres.
package fakeuow

import (
	"context"
	"slices"
	"sync"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/favorite"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/preference"
	"staybook/internal/domain/property"
	"staybook/internal/domain/reservation"
	"staybook/internal/domain/review"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Operation names accepted by FailNext.
const (
	OpWithin              = "within"
	OpPaymentCreate       = "payments.create"
	OpPaymentUpdate       = "payments.update"
	OpReservationCreate   = "reservations.create"
	OpReservationUpdate   = "reservations.update"
	OpReviewCreate        = "reviews.create"
	OpRoomCreate          = "rooms.create"
	OpRoomUpdate          = "rooms.update"
	OpAssignCluster       = "properties.assign_cluster"
	OpReadPaymentByIntent = "reads.payment_by_intent"
	OpRecord              = "reconciliation.record"
)

// Job is a queued outbox row.
type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	properties   map[uuid.UUID]*property.Property
	rooms        map[uuid.UUID]*property.Room
	payments     map[uuid.UUID]*payment.Payment
	reservations map[uuid.UUID]*reservation.Reservation
	reviews      map[uuid.UUID]*review.Review
	preferences  map[uuid.UUID]*preference.Preferences
	favorites    map[[2]uuid.UUID]favorite.Favorite
	clusters     map[uuid.UUID]int
	jobs         []Job
	recon        []shared.ReconciliationEvent
	recalcs      []uuid.UUID
}

func (s state) clone() state {
	out := state{
		properties:   cloneMap(s.properties),
		rooms:        cloneMap(s.rooms),
		payments:     cloneMap(s.payments),
		reservations: cloneMap(s.reservations),
		reviews:      cloneMap(s.reviews),
		preferences:  cloneMap(s.preferences),
		favorites:    cloneMap(s.favorites),
		clusters:     cloneMap(s.clusters),
		jobs:         slices.Clone(s.jobs),
		recon:        slices.Clone(s.recon),
		recalcs:      slices.Clone(s.recalcs),
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store holds committed state. Stored entities are never mutated in place:
// reads hand out copies and writes store fresh copies.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state

	failures map[string][]error
	calls    map[string]int
}

func New() *Store {
	return &Store{
		st: state{
			properties:   map[uuid.UUID]*property.Property{},
			rooms:        map[uuid.UUID]*property.Room{},
			payments:     map[uuid.UUID]*payment.Payment{},
			reservations: map[uuid.UUID]*reservation.Reservation{},
			reviews:      map[uuid.UUID]*review.Review{},
			preferences:  map[uuid.UUID]*preference.Preferences{},
			favorites:    map[[2]uuid.UUID]favorite.Favorite{},
			clusters:     map[uuid.UUID]int{},
		},
		failures: map[string][]error{},
		calls:    map[string]int{},
	}
}

// FailNext makes the next call of op return err. Calls queue up.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = append(s.failures[op], err)
}

// Calls reports how many times op was attempted.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// hit must be called with mu held.
func (s *Store) hit(op string) error {
	s.calls[op]++
	q := s.failures[op]
	if len(q) == 0 {
		return nil
	}
	s.failures[op] = q[1:]
	return q[0]
}

// ExclusionViolation is what the reservation_rooms constraint raises.
func ExclusionViolation() error {
	return infra.WrapRepoErr("create reservation", &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

// Seeding and inspection helpers.

func (s *Store) PutProperty(p *property.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.st.properties[p.ID()] = &cp
}

func (s *Store) PutRoom(r *property.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.st.rooms[r.ID()] = &cp
}

func (s *Store) PutPayment(p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.st.payments[p.ID()] = &cp
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.st.reservations[r.ID()] = &cp
}

func (s *Store) PutReview(r *review.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.st.reviews[r.ID()] = &cp
}

func (s *Store) PutPreferences(p *preference.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.st.preferences[p.UserID()] = &cp
}

func (s *Store) Payment(id uuid.UUID) *payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.payments[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *Store) Payments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*payment.Payment, 0, len(s.st.payments))
	for _, p := range s.st.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *Store) Reservation(id uuid.UUID) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.reservations[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.st.reservations))
	for _, r := range s.st.reservations {
		cp := *r
		out = append(out, &cp)
	}
	return out
}

func (s *Store) Room(id uuid.UUID) *property.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.rooms[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (s *Store) Property(id uuid.UUID) *property.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.properties[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *Store) Preferences(userID uuid.UUID) *preference.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.preferences[userID]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *Store) Reviews() []*review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*review.Review, 0, len(s.st.reviews))
	for _, r := range s.st.reviews {
		cp := *r
		out = append(out, &cp)
	}
	return out
}

func (s *Store) HasFavorite(userID, propertyID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.st.favorites[[2]uuid.UUID{userID, propertyID}]
	return ok
}

func (s *Store) Cluster(propertyID uuid.UUID) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.clusters[propertyID]
	return c, ok
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.jobs)
}

func (s *Store) Reconciliations() []shared.ReconciliationEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.recon)
}

func (s *Store) Recalcs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.recalcs)
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	if err := s.hit(OpWithin); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(ctx, &tx{s: s}); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads { return &reads{s: s} }

type tx struct{ s *Store }

func (t *tx) Payments() shared.PaymentRepository             { return &payments{s: t.s} }
func (t *tx) Reservations() shared.ReservationRepository     { return &reservations{s: t.s} }
func (t *tx) Properties() shared.PropertyRepository          { return &properties{s: t.s} }
func (t *tx) Rooms() shared.RoomRepository                   { return &rooms{s: t.s} }
func (t *tx) Reviews() shared.ReviewRepository               { return &reviews{s: t.s} }
func (t *tx) RatingStats() shared.RatingStatsRepository      { return &ratingStats{s: t.s} }
func (t *tx) Favorites() shared.FavoriteRepository           { return &favorites{s: t.s} }
func (t *tx) Preferences() shared.PreferenceRepository       { return &preferences{s: t.s} }
func (t *tx) Notifications() shared.NotificationRepository   { return &notifications{s: t.s} }
func (t *tx) Reconciliation() shared.ReconciliationRepository { return &reconciliation{s: t.s} }
func (t *tx) Reads() shared.CommandReads                     { return &reads{s: t.s} }
func (t *tx) DB() db.DBTX                                    { return nil }

type reads struct{ s *Store }

func (r *reads) PropertyByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	if p := r.s.Property(id); p != nil {
		return p, nil
	}
	return nil, notFound("property")
}

func (r *reads) RoomByID(_ context.Context, id uuid.UUID) (*property.Room, error) {
	if room := r.s.Room(id); room != nil {
		return room, nil
	}
	return nil, notFound("room")
}

func (r *reads) RoomsByIDs(_ context.Context, ids []uuid.UUID) ([]*property.Room, error) {
	var out []*property.Room
	for _, id := range ids {
		if room := r.s.Room(id); room != nil {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *reads) PricingContext(_ context.Context, propertyID uuid.UUID) (*shared.PricingContext, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.properties[propertyID]
	if !ok {
		return nil, notFound("property")
	}
	count := 0
	for _, rev := range r.s.st.reviews {
		if rev.PropertyID() == propertyID {
			count++
		}
	}
	return &shared.PricingContext{
		PropertyID:   p.ID(),
		OwnerID:      p.OwnerID(),
		PropertyType: p.Type().String(),
		Region:       p.Region(),
		Stars:        p.Stars(),
		ReviewCount:  count,
	}, nil
}

func (r *reads) PaymentByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	if p := r.s.Payment(id); p != nil {
		return p, nil
	}
	return nil, notFound("payment")
}

func (r *reads) PaymentByIntentID(_ context.Context, intentID string) (*payment.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpReadPaymentByIntent); err != nil {
		return nil, err
	}
	for _, p := range r.s.st.payments {
		if p.IntentID() == intentID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, notFound("payment")
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if res := r.s.Reservation(id); res != nil {
		return res, nil
	}
	return nil, notFound("reservation")
}

func (r *reads) Occupancy(_ context.Context, roomIDs []uuid.UUID, stay booking.DateRange) ([]booking.Occupancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []booking.Occupancy
	for _, res := range r.s.st.reservations {
		if !res.Stay().Overlaps(stay) {
			continue
		}
		for _, id := range res.RoomIDs() {
			if slices.Contains(roomIDs, id) {
				out = append(out, booking.Occupancy{RoomID: id, Stay: res.Stay(), Cancelled: res.IsCancelled()})
			}
		}
	}
	return out, nil
}

func (r *reads) PreferencesByUser(_ context.Context, userID uuid.UUID) (*preference.Preferences, error) {
	if p := r.s.Preferences(userID); p != nil {
		return p, nil
	}
	return nil, notFound("preferences")
}

func (r *reads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rev, ok := r.s.st.reviews[id]
	if !ok {
		return nil, notFound("review")
	}
	return &shared.ReviewSnapshot{
		ID:            rev.ID(),
		UserID:        rev.UserID(),
		PropertyID:    rev.PropertyID(),
		ReservationID: rev.ReservationID(),
		Scores:        rev.Scores().Values(),
		Comment:       rev.Comment().String(),
		CreatedAt:     rev.CreatedAt(),
	}, nil
}

type payments struct{ s *Store }

func (p *payments) Create(_ context.Context, _ db.DBTX, pay *payment.Payment) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.hit(OpPaymentCreate); err != nil {
		return err
	}
	cp := *pay
	p.s.st.payments[pay.ID()] = &cp
	return nil
}

func (p *payments) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*payment.Payment, error) {
	if pay := p.s.Payment(id); pay != nil {
		return pay, nil
	}
	return nil, notFound("payment")
}

func (p *payments) Update(_ context.Context, _ db.DBTX, pay *payment.Payment) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.hit(OpPaymentUpdate); err != nil {
		return err
	}
	if _, ok := p.s.st.payments[pay.ID()]; !ok {
		return notFound("payment")
	}
	cp := *pay
	p.s.st.payments[pay.ID()] = &cp
	return nil
}

type reservations struct{ s *Store }

// LockRooms is a no-op; Within already serializes transactions.
func (r *reservations) LockRooms(context.Context, db.DBTX, []uuid.UUID) error { return nil }

func (r *reservations) Overlapping(_ context.Context, _ db.DBTX, roomIDs []uuid.UUID, stay booking.DateRange) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []uuid.UUID
	for _, res := range r.s.st.reservations {
		if !res.IsActive() || !res.Stay().Overlaps(stay) {
			continue
		}
		for _, id := range res.RoomIDs() {
			if slices.Contains(roomIDs, id) && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (r *reservations) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpReservationCreate); err != nil {
		return err
	}
	cp := *res
	r.s.st.reservations[res.ID()] = &cp
	return nil
}

func (r *reservations) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	if res := r.s.Reservation(id); res != nil {
		return res, nil
	}
	return nil, notFound("reservation")
}

func (r *reservations) Update(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpReservationUpdate); err != nil {
		return err
	}
	cp := *res
	r.s.st.reservations[res.ID()] = &cp
	return nil
}

func (r *reservations) HasUpcomingStays(_ context.Context, _ db.DBTX, propertyID uuid.UUID, roomID *uuid.UUID, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, res := range r.s.st.reservations {
		if res.PropertyID() != propertyID || !res.IsActive() || !res.Stay().CheckOut().After(now) {
			continue
		}
		if roomID == nil || slices.Contains(res.RoomIDs(), *roomID) {
			return true, nil
		}
	}
	return false, nil
}

type properties struct{ s *Store }

func (p *properties) Create(_ context.Context, _ db.DBTX, prop *property.Property) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := *prop
	p.s.st.properties[prop.ID()] = &cp
	return nil
}

func (p *properties) Update(_ context.Context, _ db.DBTX, prop *property.Property) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := *prop
	p.s.st.properties[prop.ID()] = &cp
	return nil
}

func (p *properties) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	delete(p.s.st.properties, id)
	for rid, room := range p.s.st.rooms {
		if room.PropertyID() == id {
			delete(p.s.st.rooms, rid)
		}
	}
	return nil
}

func (p *properties) AssignCluster(_ context.Context, _ db.DBTX, id uuid.UUID, clusterID int) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if err := p.s.hit(OpAssignCluster); err != nil {
		return err
	}
	p.s.st.clusters[id] = clusterID
	return nil
}

type rooms struct{ s *Store }

func (r *rooms) Create(_ context.Context, _ db.DBTX, room *property.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpRoomCreate); err != nil {
		return err
	}
	cp := *room
	r.s.st.rooms[room.ID()] = &cp
	return nil
}

func (r *rooms) Update(_ context.Context, _ db.DBTX, room *property.Room, seen time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpRoomUpdate); err != nil {
		return err
	}
	stored, ok := r.s.st.rooms[room.ID()]
	if !ok {
		return notFound("room")
	}
	if !stored.UpdatedAt().Equal(seen) {
		return infra.WrapRepoErr("room changed since it was read", nil, infra.KindConflict)
	}
	cp := *room
	r.s.st.rooms[room.ID()] = &cp
	return nil
}

func (r *rooms) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.st.rooms, id)
	return nil
}

type reviews struct{ s *Store }

func (r *reviews) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpReviewCreate); err != nil {
		return uuid.Nil, err
	}
	for _, existing := range r.s.st.reviews {
		if existing.ReservationID() == rev.ReservationID() {
			return uuid.Nil, infra.WrapRepoErr("create review", &pgconn.PgError{Code: "23505"})
		}
	}
	cp := *rev
	r.s.st.reviews[rev.ID()] = &cp
	return rev.ID(), nil
}

func (r *reviews) Update(_ context.Context, _ db.DBTX, rev *review.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *rev
	r.s.st.reviews[rev.ID()] = &cp
	return nil
}

func (r *reviews) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.st.reviews, id)
	return nil
}

type ratingStats struct{ s *Store }

func (r *ratingStats) RecalcPropertyRatingStats(_ context.Context, _ db.DBTX, propertyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.recalcs = append(r.s.st.recalcs, propertyID)
	return nil
}

type favorites struct{ s *Store }

func (f *favorites) Add(_ context.Context, _ db.DBTX, fav favorite.Favorite) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	key := [2]uuid.UUID{fav.UserID, fav.PropertyID}
	if _, ok := f.s.st.favorites[key]; !ok {
		f.s.st.favorites[key] = fav
	}
	return nil
}

func (f *favorites) Remove(_ context.Context, _ db.DBTX, userID, propertyID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.st.favorites, [2]uuid.UUID{userID, propertyID})
	return nil
}

type preferences struct{ s *Store }

func (p *preferences) Upsert(_ context.Context, _ db.DBTX, prefs *preference.Preferences) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := *prefs
	p.s.st.preferences[prefs.UserID()] = &cp
	return nil
}

type notifications struct{ s *Store }

func (n *notifications) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	n.s.st.jobs = append(n.s.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type reconciliation struct{ s *Store }

func (r *reconciliation) Record(_ context.Context, _ db.DBTX, ev shared.ReconciliationEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(OpRecord); err != nil {
		return err
	}
	r.s.st.recon = append(r.s.st.recon, ev)
	return nil
}
