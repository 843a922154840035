//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for usecase tests.
// Transactions are serialized by one mutex and rolled back from a snapshot,
// and overlapping active reservations on a court are rejected the way the
// PostgreSQL exclusion constraint rejects them.
package memuow

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/infra"
	sqlc "github.com/Arielcito/rcfapp-sub002/internal/infra/sqlc/generated"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	reservations map[uuid.UUID]reservation.Reservation
	credits      map[uuid.UUID]credit.Credit
	movements    []ledger.Movement
	idempotency  map[idemKey]shared.IdempotencyRecord
	outbox       []shared.OutboxEvent
	published    map[uuid.UUID]time.Time
}

func (s state) clone() state {
	return state{
		reservations: cloneMap(s.reservations),
		credits:      cloneMap(s.credits),
		movements:    slices.Clone(s.movements),
		idempotency:  cloneMap(s.idempotency),
		outbox:       slices.Clone(s.outbox),
		published:    cloneMap(s.published),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Store struct {
	mu       sync.Mutex
	venues   map[uuid.UUID]venue.Venue
	courts   map[uuid.UUID]venue.Court
	data     state
	beginErr error
	txCount  int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		venues: make(map[uuid.UUID]venue.Venue),
		courts: make(map[uuid.UUID]venue.Court),
		data: state{
			reservations: make(map[uuid.UUID]reservation.Reservation),
			credits:      make(map[uuid.UUID]credit.Credit),
			idempotency:  make(map[idemKey]shared.IdempotencyRecord),
			published:    make(map[uuid.UUID]time.Time),
		},
	}
}

func (s *Store) AddVenue(v venue.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venues[v.ID] = v
}

func (s *Store) AddCourt(c venue.Court) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[c.ID] = c
}

// FailBegin makes every later transaction fail to start with err until reset with nil.
func (s *Store) FailBegin(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginErr = err
}

// PutReservation stores r as if it had been committed earlier.
func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reservations[r.ID()] = *r
}

func (s *Store) PutCredit(c *credit.Credit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.credits[c.ID()] = *c
}

func (s *Store) AddMovement(m *ledger.Movement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.movements = append(s.data.movements, *m)
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.reservations[id]
	return &r, ok
}

func (s *Store) Credit(id uuid.UUID) (*credit.Credit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data.credits[id]
	return &c, ok
}

// CreditsBySource returns the credits issued for a cancelled reservation.
func (s *Store) CreditsBySource(reservationID uuid.UUID) []*credit.Credit {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*credit.Credit
	for _, c := range s.data.credits {
		if c.SourceReservationID() == reservationID {
			out = append(out, &c)
		}
	}
	return out
}

func (s *Store) ActiveReservationCount(courtID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.data.reservations {
		if r.CourtID() == courtID && !r.IsCancelled() {
			n++
		}
	}
	return n
}

func (s *Store) Movements() []*ledger.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ledger.Movement, len(s.data.movements))
	for i := range s.data.movements {
		m := s.data.movements[i]
		out[i] = &m
	}
	return out
}

func (s *Store) OutboxEvents() []shared.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.outbox)
}

func (s *Store) PublishedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.published)
}

func (s *Store) TxCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.beginErr != nil {
		return s.beginErr
	}
	s.txCount++

	snapshot := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r shared.Reads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.beginErr != nil {
		return s.beginErr
	}
	return fn(ctx, &memReads{s: s})
}

func (s *Store) Reads() shared.Reads {
	return &memReads{s: s, lock: true}
}

type memTx struct {
	s *Store
}

func (t *memTx) Reservations() shared.ReservationRepository { return (*reservationRepo)(t) }
func (t *memTx) Credits() shared.CreditRepository           { return (*creditRepo)(t) }
func (t *memTx) Ledger() shared.LedgerRepository            { return (*ledgerRepo)(t) }
func (t *memTx) Idempotency() shared.IdempotencyRepository  { return (*idempotencyRepo)(t) }
func (t *memTx) Outbox() shared.OutboxRepository            { return (*outboxRepo)(t) }
func (t *memTx) Reads() shared.Reads                        { return &memReads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

type reservationRepo memTx

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	for _, other := range r.s.data.reservations {
		if other.CourtID() == res.CourtID() && !other.IsCancelled() && other.Interval().Overlaps(res.Interval()) {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation",
				&pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})
		}
	}
	r.s.data.reservations[res.ID()] = *res
	return res.ID(), nil
}

func (r *reservationRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, notFound("failed to get reservation")
	}
	return &res, nil
}

func (r *reservationRepo) UpdatePayment(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.data.reservations[res.ID()]; !ok {
		return notFound("failed to update reservation")
	}
	r.s.data.reservations[res.ID()] = *res
	return nil
}

type creditRepo memTx

func (r *creditRepo) Create(_ context.Context, _ sqlc.DBTX, c *credit.Credit) error {
	r.s.data.credits[c.ID()] = *c
	return nil
}

func (r *creditRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*credit.Credit, error) {
	c, ok := r.s.data.credits[id]
	if !ok {
		return nil, notFound("failed to get credit")
	}
	return &c, nil
}

func (r *creditRepo) Update(_ context.Context, _ sqlc.DBTX, c *credit.Credit) error {
	r.s.data.credits[c.ID()] = *c
	return nil
}

func (r *creditRepo) ListPendingForUpdate(_ context.Context, _ sqlc.DBTX, after shared.PendingCursor, limit int) ([]*credit.Credit, error) {
	var out []*credit.Credit
	for _, c := range r.s.data.credits {
		if c.Status() != credit.StatusPendingResolution || c.ResolveAfter() == nil {
			continue
		}
		ra := *c.ResolveAfter()
		if ra.Before(after.ResolveAfter) || (ra.Equal(after.ResolveAfter) && uuidCompare(c.ID(), after.ID) <= 0) {
			continue
		}
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *credit.Credit) int {
		if c := a.ResolveAfter().Compare(*b.ResolveAfter()); c != 0 {
			return c
		}
		return uuidCompare(a.ID(), b.ID())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *creditRepo) ListExpiredForUpdate(_ context.Context, _ sqlc.DBTX, now time.Time, limit int) ([]*credit.Credit, error) {
	var out []*credit.Credit
	for _, c := range r.s.data.credits {
		if c.Status() == credit.StatusAvailable && c.ExpiresAt() != nil && !c.ExpiresAt().After(now) {
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *credit.Credit) int {
		if c := a.ExpiresAt().Compare(*b.ExpiresAt()); c != 0 {
			return c
		}
		return uuidCompare(a.ID(), b.ID())
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func uuidCompare(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}

type ledgerRepo memTx

func (r *ledgerRepo) Append(_ context.Context, _ sqlc.DBTX, m *ledger.Movement) error {
	r.s.data.movements = append(r.s.data.movements, *m)
	return nil
}

func (r *ledgerRepo) PaymentStageRecorded(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID, stage ledger.Stage) (bool, error) {
	for _, m := range r.s.data.movements {
		if m.Kind() == ledger.KindPaymentIncome && m.Stage() == stage &&
			m.ReservationID() != nil && *m.ReservationID() == reservationID {
			return true, nil
		}
	}
	return false, nil
}

type idempotencyRepo memTx

func (r *idempotencyRepo) Claim(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, now, expiresAt time.Time) (bool, error) {
	k := idemKey{key: key, userID: userID}
	if existing, ok := r.s.data.idempotency[k]; ok && !existing.ExpiresAt.Before(now) {
		return false, nil
	}
	r.s.data.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) AttachReservation(_ context.Context, _ sqlc.DBTX, key, userID, reservationID uuid.UUID) error {
	k := idemKey{key: key, userID: userID}
	rec, ok := r.s.data.idempotency[k]
	if !ok {
		return notFound("failed to attach reservation")
	}
	rec.ReservationID = &reservationID
	r.s.data.idempotency[k] = rec
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for k, rec := range r.s.data.idempotency {
		if rec.ExpiresAt.Before(now) {
			delete(r.s.data.idempotency, k)
			n++
		}
	}
	return n, nil
}

type outboxRepo memTx

func (r *outboxRepo) Enqueue(_ context.Context, _ sqlc.DBTX, ev shared.NewOutboxEvent) error {
	r.s.data.outbox = append(r.s.data.outbox, shared.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: ev.AggregateType,
		AggregateID:   ev.AggregateID,
		EventType:     ev.EventType,
		Payload:       ev.Payload,
		CreatedAt:     ev.At,
	})
	return nil
}

func (r *outboxRepo) ListUnpublishedForUpdate(_ context.Context, _ sqlc.DBTX, limit int) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, ev := range r.s.data.outbox {
		if _, done := r.s.data.published[ev.ID]; done {
			continue
		}
		out = append(out, ev)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	r.s.data.published[id] = at
	return nil
}

func (r *outboxRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ string) error {
	for i := range r.s.data.outbox {
		if r.s.data.outbox[i].ID == id {
			r.s.data.outbox[i].Attempts++
			return nil
		}
	}
	return notFound("failed to mark outbox event")
}

// memReads locks the store itself only when used outside a transaction.
type memReads struct {
	s    *Store
	lock bool
}

func (r *memReads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memReads) VenueByID(_ context.Context, id uuid.UUID) (venue.Venue, error) {
	defer r.guard()()
	v, ok := r.s.venues[id]
	if !ok {
		return venue.Venue{}, notFound("failed to get venue")
	}
	return v, nil
}

func (r *memReads) CourtByID(_ context.Context, id uuid.UUID) (venue.Court, error) {
	defer r.guard()()
	c, ok := r.s.courts[id]
	if !ok {
		return venue.Court{}, notFound("failed to get court")
	}
	return c, nil
}

func (r *memReads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	defer r.guard()()
	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, notFound("failed to get reservation")
	}
	return &res, nil
}

func (r *memReads) ActiveReservations(_ context.Context, courtID uuid.UUID, window reservation.Interval) ([]reservation.Interval, error) {
	defer r.guard()()
	var out []reservation.Interval
	for _, res := range r.s.data.reservations {
		if res.CourtID() == courtID && !res.IsCancelled() && res.Interval().Overlaps(window) {
			out = append(out, res.Interval())
		}
	}
	sortIntervals(out)
	return out, nil
}

func (r *memReads) Rebookings(_ context.Context, q shared.RebookingQuery) ([]reservation.Interval, error) {
	defer r.guard()()
	var out []reservation.Interval
	for _, res := range r.s.data.reservations {
		if res.CourtID() != q.CourtID || res.ID() == q.ExcludeID || res.IsCancelled() {
			continue
		}
		if !res.Interval().Overlaps(q.Interval) {
			continue
		}
		if res.CreatedAt().Before(q.CreatedFrom) || !res.CreatedAt().Before(q.CreatedBefore) {
			continue
		}
		out = append(out, res.Interval())
	}
	sortIntervals(out)
	return out, nil
}

func sortIntervals(ivs []reservation.Interval) {
	slices.SortFunc(ivs, func(a, b reservation.Interval) int { return a.Start.Compare(b.Start) })
}

func (r *memReads) CreditByID(_ context.Context, id uuid.UUID) (*credit.Credit, error) {
	defer r.guard()()
	c, ok := r.s.data.credits[id]
	if !ok {
		return nil, notFound("failed to get credit")
	}
	return &c, nil
}

func (r *memReads) CreditsByPlayer(_ context.Context, playerID uuid.UUID, venueID *uuid.UUID) ([]*credit.Credit, error) {
	defer r.guard()()
	var out []*credit.Credit
	for _, c := range r.s.data.credits {
		if c.PlayerID() != playerID {
			continue
		}
		if venueID != nil && c.VenueID() != *venueID {
			continue
		}
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *credit.Credit) int { return b.IssuedAt().Compare(a.IssuedAt()) })
	return out, nil
}

func (r *memReads) Movements(_ context.Context, venueID uuid.UUID, from, to time.Time) ([]*ledger.Movement, error) {
	defer r.guard()()
	var out []*ledger.Movement
	for _, m := range r.s.data.movements {
		if m.VenueID() != venueID || m.OccurredAt().Before(from) || m.OccurredAt().After(to) {
			continue
		}
		out = append(out, &m)
	}
	slices.SortStableFunc(out, func(a, b *ledger.Movement) int { return a.OccurredAt().Compare(b.OccurredAt()) })
	return out, nil
}

func (r *memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	defer r.guard()()
	rec, ok := r.s.data.idempotency[idemKey{key: key, userID: userID}]
	if !ok {
		return nil, notFound("failed to get idempotency key")
	}
	return &rec, nil
}
