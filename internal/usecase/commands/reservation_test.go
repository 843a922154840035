//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/credit"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/ledger"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	commandSuite
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestReserve() {
	s.Run("デポジット必須の予約は支払い待ちで作成される", func() {
		s.SetupTest()

		got, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 90))

		s.Require().NoError(err)
		s.False(got.IsReplayed)
		res := got.Reservation
		s.Equal(reservation.StatusDepositPending, res.Status())
		s.Equal(s.player.ID, res.PlayerID())
		s.Equal(s.venue.ID, res.VenueID())
		s.Equal(slotStart.Add(90*time.Minute), res.Interval().End)
		s.Equal(int64(15000), res.Quote().TotalCents)
		s.Equal(deposit, res.Quote().DepositCents)
		s.Equal([]string{commands.EventReservationCreated}, s.eventTypes())
	})

	s.Run("デポジット不要の予約はNONE", func() {
		s.SetupTest()
		in := s.reserveInput(slotStart, 60)
		in.DepositRequired = false

		got, err := s.reservations.Reserve(s.ctx, s.player, in)

		s.Require().NoError(err)
		s.Equal(reservation.StatusNone, got.Reservation.Status())
		s.Equal(int64(0), got.Reservation.Quote().DepositCents)
	})

	s.Run("隣接する枠は両方予約できる", func() {
		s.SetupTest()

		_, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)
		_, err = s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart.Add(time.Hour), 60))
		s.Require().NoError(err)

		s.Equal(2, s.store.ActiveReservationCount(s.court.ID))
	})

	s.Run("重なる枠は競合になる", func() {
		s.SetupTest()

		_, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)
		_, err = s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart.Add(30*time.Minute), 60))

		s.True(errs.Is(err, errs.ErrReservationConflict))
		s.Equal(1, s.store.ActiveReservationCount(s.court.ID))
	})

	s.Run("キャンセル済みの枠は再予約できる", func() {
		s.SetupTest()

		first, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)
		_, err = s.reservations.Cancel(s.ctx, s.player, first.Reservation.ID())
		s.Require().NoError(err)

		_, err = s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.NoError(err)
	})

	s.Run("オーナーは自分の会場で選手の代わりに予約できる", func() {
		s.SetupTest()
		in := s.reserveInput(slotStart, 60)
		in.PlayerID = s.player.ID

		got, err := s.reservations.Reserve(s.ctx, s.owner, in)

		s.Require().NoError(err)
		s.Equal(s.player.ID, got.Reservation.PlayerID())
	})

	s.Run("選手は他人の代わりに予約できない", func() {
		s.SetupTest()
		in := s.reserveInput(slotStart, 60)
		in.PlayerID = uuid.New()

		_, err := s.reservations.Reserve(s.ctx, s.player, in)

		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *ReservationCommandsTestSuite) TestReserve_Validation() {
	tests := []struct {
		name    string
		start   time.Time
		minutes int
		prepare func(s *ReservationCommandsTestSuite) uuid.UUID
		wantErr error
	}{
		{
			name:    "閉店時刻を超える",
			start:   slotStart.Add(2*time.Hour + 30*time.Minute),
			minutes: 60,
			wantErr: errs.ErrOutOfHours,
		},
		{
			name:    "開店前に始まる",
			start:   time.Date(2025, time.March, 12, 7, 30, 0, 0, time.UTC),
			minutes: 60,
			wantErr: errs.ErrOutOfHours,
		},
		{
			name:    "刻み幅に合わない長さ",
			start:   slotStart,
			minutes: 45,
			wantErr: errs.ErrInvalidDuration,
		},
		{
			name:    "長さがゼロ",
			start:   slotStart,
			minutes: 0,
			wantErr: errs.ErrInvalidDuration,
		},
		{
			name:    "過去の枠",
			start:   baseNow.Add(-time.Hour),
			minutes: 60,
			wantErr: errs.ErrSlotInPast,
		},
		{
			name:    "存在しないコート",
			start:   slotStart,
			minutes: 60,
			prepare: func(*ReservationCommandsTestSuite) uuid.UUID { return uuid.New() },
			wantErr: errs.ErrCourtNotFound,
		},
		{
			name:    "休止中のコート",
			start:   slotStart,
			minutes: 60,
			prepare: func(s *ReservationCommandsTestSuite) uuid.UUID {
				c := s.court
				c.ID = uuid.New()
				c.Active = false
				s.store.AddCourt(c)
				return c.ID
			},
			wantErr: errs.ErrCourtInactive,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			in := s.reserveInput(tt.start, tt.minutes)
			if tt.prepare != nil {
				in.CourtID = tt.prepare(s)
			}

			_, err := s.reservations.Reserve(s.ctx, s.player, in)

			s.True(errs.Is(err, tt.wantErr), "got %v", err)
			s.Zero(s.store.ActiveReservationCount(s.court.ID))
			s.Empty(s.store.OutboxEvents())
		})
	}
}

func (s *ReservationCommandsTestSuite) TestReserve_Concurrent() {
	const players = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	start := make(chan struct{})
	for range players {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actor := user.Actor{ID: uuid.New(), Role: user.RolePlayer}
			<-start
			_, err := s.reservations.Reserve(context.Background(), actor, s.reserveInput(slotStart, 60))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errs.Is(err, errs.ErrReservationConflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(players-1, conflicts)
	s.Equal(1, s.store.ActiveReservationCount(s.court.ID))
}

func (s *ReservationCommandsTestSuite) TestReserve_Idempotency() {
	s.Run("同じキーと内容の再送は最初の予約を返す", func() {
		s.SetupTest()
		key := uuid.New()
		in := s.reserveInput(slotStart, 60)
		in.IdempotencyKey = &key

		first, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)
		second, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)

		s.True(second.IsReplayed)
		s.Equal(first.Reservation.ID(), second.Reservation.ID())
		s.Equal(1, s.store.ActiveReservationCount(s.court.ID))
		s.Len(s.store.OutboxEvents(), 1)
	})

	s.Run("同じキーで内容が違えば拒否", func() {
		s.SetupTest()
		key := uuid.New()
		in := s.reserveInput(slotStart, 60)
		in.IdempotencyKey = &key

		_, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)
		in.Start = slotStart.Add(time.Hour)
		_, err = s.reservations.Reserve(s.ctx, s.player, in)

		s.True(errs.Is(err, errs.ErrIdempotencyKeyReused))
		s.Equal(1, s.store.ActiveReservationCount(s.court.ID))
	})

	s.Run("キーはユーザーごとに独立している", func() {
		s.SetupTest()
		key := uuid.New()
		other := user.Actor{ID: uuid.New(), Role: user.RolePlayer}

		in := s.reserveInput(slotStart, 60)
		in.IdempotencyKey = &key
		_, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)

		in.Start = slotStart.Add(time.Hour)
		got, err := s.reservations.Reserve(s.ctx, other, in)
		s.Require().NoError(err)
		s.False(got.IsReplayed)
	})

	s.Run("競合で失敗したキーは再利用できる", func() {
		s.SetupTest()
		_, err := s.reservations.Reserve(s.ctx, s.owner, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)

		key := uuid.New()
		in := s.reserveInput(slotStart, 60)
		in.IdempotencyKey = &key
		_, err = s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().True(errs.Is(err, errs.ErrReservationConflict))

		in.Start = slotStart.Add(time.Hour)
		got, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)
		s.False(got.IsReplayed)
	})
}

func (s *ReservationCommandsTestSuite) TestReserve_StorageUnavailable() {
	s.store.FailBegin(context.DeadlineExceeded)

	_, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))

	s.True(errs.Is(err, errs.ErrStorageUnavailable))
}

func (s *ReservationCommandsTestSuite) TestMarkPaid() {
	s.Run("デポジットの入金を一度だけ記帳する", func() {
		s.SetupTest()
		got, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)
		id := got.Reservation.ID()

		res, err := s.reservations.MarkPaid(s.ctx, id, ledger.MethodTransfer)
		s.Require().NoError(err)
		s.Equal(reservation.StatusDepositPaid, res.Status())

		_, err = s.reservations.MarkPaid(s.ctx, id, ledger.MethodTransfer)
		s.Require().NoError(err)

		payments := s.movementsOf(ledger.KindPaymentIncome)
		s.Require().Len(payments, 1)
		s.Equal(deposit, payments[0].AmountCents())
		s.Equal(ledger.StageDeposit, payments[0].Stage())
		s.Equal(ledger.MethodTransfer, payments[0].Method())
		s.Equal([]string{commands.EventReservationCreated, commands.EventReservationPaid}, s.eventTypes())
	})

	s.Run("不明な支払い方法は拒否", func() {
		s.SetupTest()
		_, err := s.reservations.MarkPaid(s.ctx, uuid.New(), ledger.Method("crypto"))
		s.True(errs.Is(err, errs.ErrInvalidMovement))
	})

	s.Run("存在しない予約", func() {
		s.SetupTest()
		_, err := s.reservations.MarkPaid(s.ctx, uuid.New(), ledger.MethodCash)
		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})

	s.Run("キャンセル済みの予約には入金できない", func() {
		s.SetupTest()
		got, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)
		_, err = s.reservations.Cancel(s.ctx, s.player, got.Reservation.ID())
		s.Require().NoError(err)

		_, err = s.reservations.MarkPaid(s.ctx, got.Reservation.ID(), ledger.MethodCash)

		s.True(errs.Is(err, errs.ErrReservationCancelled))
		s.Empty(s.movementsOf(ledger.KindPaymentIncome))
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("24時間以上前のキャンセルは利用可能なクレジットを発行する", func() {
		s.SetupTest()
		id := s.paidReservation()

		res, err := s.reservations.Cancel(s.ctx, s.player, id)
		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, res.Status())
		s.Require().NotNil(res.CancelledAt())
		s.Equal(baseNow, *res.CancelledAt())

		credits := s.store.CreditsBySource(id)
		s.Require().Len(credits, 1)
		cr := credits[0]
		s.Equal(credit.StatusAvailable, cr.Status())
		s.Equal(deposit, cr.AmountCents())
		s.Equal(s.player.ID, cr.PlayerID())
		s.Require().NotNil(cr.ExpiresAt())
		s.Equal(baseNow.Add(21*24*time.Hour), *cr.ExpiresAt())

		adjustments := s.movementsOf(ledger.KindCreditAdjustment)
		s.Require().Len(adjustments, 1)
		s.Equal(-deposit, adjustments[0].AmountCents())
		s.Equal(cr.ID(), *adjustments[0].CreditID())
		s.Zero(s.store.ActiveReservationCount(s.court.ID))
	})

	s.Run("直前のキャンセルは保留クレジットで記帳しない", func() {
		s.SetupTest()
		id := s.paidReservation()
		s.clock.Set(slotStart.Add(-2 * time.Hour))

		_, err := s.reservations.Cancel(s.ctx, s.player, id)
		s.Require().NoError(err)

		credits := s.store.CreditsBySource(id)
		s.Require().Len(credits, 1)
		s.Equal(credit.StatusPendingResolution, credits[0].Status())
		s.Require().NotNil(credits[0].ResolveAfter())
		s.Equal(slotStart, *credits[0].ResolveAfter())
		s.Empty(s.movementsOf(ledger.KindCreditAdjustment))
	})

	s.Run("未払いの予約はクレジットを発行しない", func() {
		s.SetupTest()
		got, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)

		_, err = s.reservations.Cancel(s.ctx, s.player, got.Reservation.ID())
		s.Require().NoError(err)

		s.Empty(s.store.CreditsBySource(got.Reservation.ID()))
		s.Empty(s.movementsOf(ledger.KindCreditAdjustment))
	})

	s.Run("二重キャンセルは何もしない", func() {
		s.SetupTest()
		id := s.paidReservation()

		_, err := s.reservations.Cancel(s.ctx, s.player, id)
		s.Require().NoError(err)
		s.clock.Add(time.Hour)
		res, err := s.reservations.Cancel(s.ctx, s.player, id)
		s.Require().NoError(err)

		s.Equal(baseNow, *res.CancelledAt())
		s.Len(s.store.CreditsBySource(id), 1)
		s.Len(s.movementsOf(ledger.KindCreditAdjustment), 1)
	})

	s.Run("他の選手はキャンセルできない", func() {
		s.SetupTest()
		id := s.paidReservation()
		stranger := user.Actor{ID: uuid.New(), Role: user.RolePlayer}

		_, err := s.reservations.Cancel(s.ctx, stranger, id)

		s.True(errs.Is(err, errs.ErrForbidden))
		res, _ := s.store.Reservation(id)
		s.Equal(reservation.StatusDepositPaid, res.Status())
	})

	s.Run("オーナーは自分の会場の予約をキャンセルできる", func() {
		s.SetupTest()
		id := s.paidReservation()

		_, err := s.reservations.Cancel(s.ctx, s.owner, id)

		s.Require().NoError(err)
		s.Len(s.store.CreditsBySource(id), 1)
	})
}

func (s *ReservationCommandsTestSuite) TestMarkCancelled() {
	s.Run("通知時刻でクレジットの種類が決まる", func() {
		s.SetupTest()
		id := s.paidReservation()
		at := slotStart.Add(-3 * time.Hour)

		res, err := s.reservations.MarkCancelled(s.ctx, id, at)

		s.Require().NoError(err)
		s.Equal(at, *res.CancelledAt())
		credits := s.store.CreditsBySource(id)
		s.Require().Len(credits, 1)
		s.Equal(credit.StatusPendingResolution, credits[0].Status())
	})

	s.Run("時刻が無ければ現在時刻", func() {
		s.SetupTest()
		id := s.paidReservation()

		res, err := s.reservations.MarkCancelled(s.ctx, id, time.Time{})

		s.Require().NoError(err)
		s.Equal(baseNow, *res.CancelledAt())
	})
}

func (s *ReservationCommandsTestSuite) TestSettleBalance() {
	s.Run("残額を一度だけ記帳する", func() {
		s.SetupTest()
		id := s.paidReservation()

		_, err := s.reservations.SettleBalance(s.ctx, s.owner, id, ledger.MethodCash)
		s.Require().NoError(err)
		_, err = s.reservations.SettleBalance(s.ctx, s.owner, id, ledger.MethodCash)
		s.Require().NoError(err)

		var balances []*ledger.Movement
		for _, m := range s.movementsOf(ledger.KindPaymentIncome) {
			if m.Stage() == ledger.StageBalance {
				balances = append(balances, m)
			}
		}
		s.Require().Len(balances, 1)
		s.Equal(hourlyRate-deposit, balances[0].AmountCents())
		s.Equal(ledger.MethodCash, balances[0].Method())
	})

	s.Run("デポジット不要の予約は全額を精算する", func() {
		s.SetupTest()
		in := s.reserveInput(slotStart, 60)
		in.DepositRequired = false
		got, err := s.reservations.Reserve(s.ctx, s.player, in)
		s.Require().NoError(err)

		_, err = s.reservations.SettleBalance(s.ctx, s.owner, got.Reservation.ID(), ledger.MethodCard)

		s.Require().NoError(err)
		payments := s.movementsOf(ledger.KindPaymentIncome)
		s.Require().Len(payments, 1)
		s.Equal(hourlyRate, payments[0].AmountCents())
	})

	s.Run("デポジット未払いは拒否", func() {
		s.SetupTest()
		got, err := s.reservations.Reserve(s.ctx, s.player, s.reserveInput(slotStart, 60))
		s.Require().NoError(err)

		_, err = s.reservations.SettleBalance(s.ctx, s.owner, got.Reservation.ID(), ledger.MethodCash)

		s.True(errs.Is(err, errs.ErrDepositOutstanding))
	})

	s.Run("キャンセル済みは拒否", func() {
		s.SetupTest()
		id := s.paidReservation()
		_, err := s.reservations.Cancel(s.ctx, s.player, id)
		s.Require().NoError(err)

		_, err = s.reservations.SettleBalance(s.ctx, s.owner, id, ledger.MethodCash)

		s.True(errs.Is(err, errs.ErrReservationCancelled))
	})

	s.Run("選手は精算できない", func() {
		s.SetupTest()
		id := s.paidReservation()

		_, err := s.reservations.SettleBalance(s.ctx, s.player, id, ledger.MethodCash)

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("他の会場のオーナーは精算できない", func() {
		s.SetupTest()
		id := s.paidReservation()
		other := user.Actor{ID: uuid.New(), Role: user.RoleOwner}

		_, err := s.reservations.SettleBalance(s.ctx, other, id, ledger.MethodCash)

		s.True(errs.Is(err, errs.ErrForbidden))
	})
}
