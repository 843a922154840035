//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/dto/request"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/tests/common/authtest"
	"github.com/Arielcito/rcfapp-sub002/tests/common/dbtest"
	"github.com/Arielcito/rcfapp-sub002/tests/common/httptest"
	"github.com/Arielcito/rcfapp-sub002/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	ownerID  uuid.UUID
	venueID  uuid.UUID
	courtID  uuid.UUID
	playerA  uuid.UUID
	playerB  uuid.UUID
	tokenA   string
	tokenB   string
	ownerTok string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.ownerID, s.playerA, s.playerB = uuid.New(), uuid.New(), uuid.New()
	s.venueID = dbtest.CreateTestVenue(t, s.DB, s.ownerID, 8*60, 23*60, "UTC")
	s.courtID = dbtest.CreateTestCourt(t, s.DB, s.venueID, dbtest.DefaultCourtOpts())

	s.tokenA = s.jwt.GenerateToken(t, s.playerA, user.RolePlayer)
	s.tokenB = s.jwt.GenerateToken(t, s.playerB, user.RolePlayer)
	s.ownerTok = s.jwt.GenerateToken(t, s.ownerID, user.RoleOwner)
}

func oneHour() *int {
	n := 60
	return &n
}

// slotAt returns hour:00 UTC, days ahead of today.
func slotAt(days, hour int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).Add(time.Duration(days)*24*time.Hour + time.Duration(hour)*time.Hour)
}

func (s *reservationSuite) reserve(token string, start time.Time, minutes int, deposit bool, headers map[string]string) (*response.ReservationResponse, int) {
	body := request.ReserveRequest{
		CourtID:         s.courtID,
		Start:           start,
		DurationMinutes: &minutes,
		DepositRequired: deposit,
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, reservationsURL, body, token, headers)
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return nil, w.Code
	}
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, w.Code, &res)
	return &res, w.Code
}

func (s *reservationSuite) TestReserve() {
	s.Run("正常系: 空き枠を予約できる", func() {
		res, code := s.reserve(s.tokenA, slotAt(3, 10), 60, true, nil)

		require.Equal(s.T(), http.StatusCreated, code)
		assert.Equal(s.T(), s.playerA, res.PlayerID)
		assert.Equal(s.T(), "DEPOSIT_PENDING", res.Status)
		assert.Equal(s.T(), int64(10000), res.TotalCents)
		assert.Equal(s.T(), int64(3000), res.DepositDueCents)
		assert.Equal(s.T(), 1, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})

	s.Run("異常系: 重なる枠は409", func() {
		_, code := s.reserve(s.tokenA, slotAt(3, 10), 90, false, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.ReserveRequest{
			CourtID: s.courtID, Start: slotAt(3, 11), DurationMinutes: oneHour(),
		}, s.tokenB)

		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "SLOT_ALREADY_BOOKED")
		assert.Equal(s.T(), 1, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})

	s.Run("正常系: 終了時刻に接する枠は予約できる", func() {
		_, code := s.reserve(s.tokenA, slotAt(3, 10), 60, false, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		_, code = s.reserve(s.tokenB, slotAt(3, 11), 60, false, nil)

		assert.Equal(s.T(), http.StatusCreated, code)
		assert.Equal(s.T(), 2, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})

	s.Run("異常系: 0分・負の時間・単位外の時間はどれも422", func() {
		for _, minutes := range []int{0, -30, 45} {
			_, code := s.reserve(s.tokenA, slotAt(3, 10), minutes, false, nil)
			assert.Equal(s.T(), http.StatusUnprocessableEntity, code, "minutes=%d", minutes)
		}
		assert.Equal(s.T(), 0, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})

	s.Run("異常系: 営業時間外は422", func() {
		_, code := s.reserve(s.tokenA, slotAt(3, 22), 120, false, nil)

		assert.Equal(s.T(), http.StatusUnprocessableEntity, code)
	})

	s.Run("異常系: 過去の枠は422", func() {
		_, code := s.reserve(s.tokenA, slotAt(-1, 10), 60, false, nil)

		assert.Equal(s.T(), http.StatusUnprocessableEntity, code)
	})

	s.Run("正常系: 同じIdempotency-Keyは元の予約を返す", func() {
		headers := httptest.IdempotencyHeaders(uuid.New())

		first, code := s.reserve(s.tokenA, slotAt(4, 9), 60, false, headers)
		require.Equal(s.T(), http.StatusCreated, code)

		replay, code := s.reserve(s.tokenA, slotAt(4, 9), 60, false, headers)

		require.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), first.ID, replay.ID)
		assert.Equal(s.T(), 1, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})

	s.Run("異常系: 同じキーで内容が異なると409", func() {
		headers := httptest.IdempotencyHeaders(uuid.New())

		_, code := s.reserve(s.tokenA, slotAt(4, 9), 60, false, headers)
		require.Equal(s.T(), http.StatusCreated, code)

		_, code = s.reserve(s.tokenA, slotAt(4, 15), 60, false, headers)

		assert.Equal(s.T(), http.StatusConflict, code)
	})
}

func (s *reservationSuite) TestConcurrentReserve() {
	s.Run("同時実行: 同じ枠は一件だけ確定する", func() {
		const workers = 8
		start := slotAt(5, 18)

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				token := s.tokenA
				if i%2 == 1 {
					token = s.tokenB
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.ReserveRequest{
					CourtID: s.courtID, Start: start, DurationMinutes: oneHour(),
				}, token)
				mu.Lock()
				codes[w.Code]++
				mu.Unlock()
			}(i)
		}
		wg.Wait()

		assert.Equal(s.T(), 1, codes[http.StatusCreated], "codes: %v", codes)
		assert.Equal(s.T(), workers-1, codes[http.StatusConflict], "codes: %v", codes)
		assert.Equal(s.T(), 1, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))
	})
}

func (s *reservationSuite) TestDepositAndCancel() {
	s.Run("正常系: 入金後の早期キャンセルで利用可能なクレジットが発行される", func() {
		res, code := s.reserve(s.tokenA, slotAt(6, 12), 60, true, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/payments/callback",
			request.PaymentCallbackRequest{ReservationID: res.ID, Event: request.PaymentEventPaid, Method: "transfer"},
			"", httptest.PaymentCallbackHeaders(s.Config.Payment.CallbackToken))
		var paid response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		assert.Equal(s.T(), "DEPOSIT_PAID", paid.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/"+res.ID.String()+"/cancel", nil, s.tokenA)
		var cancelled response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cancelled)
		assert.Equal(s.T(), "CANCELLED", cancelled.Status)
		assert.Equal(s.T(), 0, dbtest.CountActiveReservations(s.T(), s.DB, s.courtID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/credits", nil, s.tokenA)
		var credits []response.CreditResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &credits)
		require.Len(s.T(), credits, 1)
		assert.Equal(s.T(), "AVAILABLE", credits[0].Status)
		assert.Equal(s.T(), int64(3000), credits[0].AmountCents)
		assert.Equal(s.T(), res.ID, credits[0].SourceReservationID)
		require.NotNil(s.T(), credits[0].ExpiresAt)

		// the freed slot can be booked again
		_, code = s.reserve(s.tokenB, slotAt(6, 12), 60, false, nil)
		assert.Equal(s.T(), http.StatusCreated, code)
	})

	s.Run("異常系: コールバックのトークン不一致は401", func() {
		res, code := s.reserve(s.tokenA, slotAt(6, 14), 60, true, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/payments/callback",
			request.PaymentCallbackRequest{ReservationID: res.ID, Event: request.PaymentEventPaid},
			"", httptest.PaymentCallbackHeaders("wrong"))

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid payment token")
	})

	s.Run("異常系: 他人の予約はキャンセルできない", func() {
		res, code := s.reserve(s.tokenA, slotAt(6, 16), 60, false, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL+"/"+res.ID.String()+"/cancel", nil, s.tokenB)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *reservationSuite) TestCaja() {
	s.Run("正常系: 入金がキャッシュ台帳に記録される", func() {
		res, code := s.reserve(s.tokenA, slotAt(2, 20), 60, true, nil)
		require.Equal(s.T(), http.StatusCreated, code)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/payments/callback",
			request.PaymentCallbackRequest{ReservationID: res.ID, Event: request.PaymentEventPaid, Method: "cash"},
			"", httptest.PaymentCallbackHeaders(s.Config.Payment.CallbackToken))
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		desc := "pelotas"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/venues/"+s.venueID.String()+"/caja/movements",
			request.RecordMovementRequest{Kind: "MANUAL_EXPENSE", AmountCents: 1200, Description: &desc, Method: "cash"}, s.ownerTok)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		today := time.Now().UTC().Format(time.DateOnly)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/venues/"+s.venueID.String()+"/caja?from="+today+"&to="+today, nil, s.ownerTok)
		var report response.CajaResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &report)

		require.Len(s.T(), report.Movements, 2)
		assert.Equal(s.T(), "PAYMENT_INCOME", report.Movements[0].Kind)
		assert.Equal(s.T(), "DEPOSIT", report.Movements[0].Stage)
		assert.Equal(s.T(), int64(3000), report.Totals.IncomeCents)
		assert.Equal(s.T(), int64(1200), report.Totals.ExpenseCents)
		assert.Equal(s.T(), int64(1800), report.Totals.NetCents)
	})

	s.Run("異常系: 他のオーナーは閲覧できない", func() {
		other := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleOwner)
		today := time.Now().UTC().Format(time.DateOnly)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/venues/"+s.venueID.String()+"/caja?from="+today+"&to="+today, nil, other)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}
