//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/venue"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"
	"github.com/Arielcito/rcfapp-sub002/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	hourlyRate = int64(10000)
	deposit    = int64(3000)
)

var (
	// Monday 10:00 UTC; the booked slot is two days later at 20:00.
	baseNow   = time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	slotStart = time.Date(2025, time.March, 12, 20, 0, 0, 0, time.UTC)
)

type commandSuite struct {
	suite.Suite

	ctx    context.Context
	store  *memuow.Store
	clock  *clock.MockClock
	venue  venue.Venue
	court  venue.Court
	owner  user.Actor
	player user.Actor

	reservations commands.ReservationCommands
	credits      commands.CreditCommands
	cash         commands.CashCommands
}

func (s *commandSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memuow.New()
	s.clock = clock.NewMockClock(baseNow)

	hours, err := venue.NewHours(8*60, 23*60)
	s.Require().NoError(err)

	s.owner = user.Actor{ID: uuid.New(), Role: user.RoleOwner}
	s.player = user.Actor{ID: uuid.New(), Role: user.RolePlayer}
	s.venue = venue.Venue{
		ID:       uuid.New(),
		OwnerID:  s.owner.ID,
		Name:     "Club Norte",
		Hours:    hours,
		TimeZone: "UTC",
	}
	s.court = venue.Court{
		ID:                 uuid.New(),
		VenueID:            s.venue.ID,
		Name:               "Cancha 1",
		SlotMinutes:        60,
		GranularityMinutes: 30,
		HourlyRateCents:    hourlyRate,
		DepositCents:       deposit,
		Active:             true,
	}
	s.store.AddVenue(s.venue)
	s.store.AddCourt(s.court)

	cfg := config.NewTestConfig()
	s.reservations = commands.NewReservationUseCase(s.store, s.clock, clock.NewZoneProvider(), cfg.Booking)
	s.credits = commands.NewCreditUseCase(s.store, s.clock, cfg.Booking, cfg.Worker)
	s.cash = commands.NewCashUseCase(s.store, s.clock)
}

func (s *commandSuite) reserveInput(start time.Time, minutes int) commands.ReserveInput {
	return commands.ReserveInput{
		CourtID:         s.court.ID,
		Start:           start,
		DurationMinutes: minutes,
		DepositRequired: true,
	}
}

// paidReservation books the default slot for the player and pays its deposit.
func (s *commandSuite) paidReservation() uuid.UUID {
	res, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
	s.Require().NoError(err)
	_, err = s.reservations.MarkPaid(s.ctx, res.Reservation.ID(), ledger.MethodCard)
	s.Require().NoError(err)
	return res.Reservation.ID()
}

func (s *commandSuite) movementsOf(kind ledger.Kind) []*ledger.Movement {
	var out []*ledger.Movement
	for _, m := range s.store.Movements() {
		if m.Kind() == kind {
			out = append(out, m)
		}
	}
	return out
}

func (s *commandSuite) eventTypes() []string {
	var out []string
	for _, ev := range s.store.OutboxEvents() {
		out = append(out, ev.EventType)
	}
	return out
}
