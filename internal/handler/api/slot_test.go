//go:build unit

package api_test

import (
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/Arielcito/rcfapp-sub002/internal/domain/reservation"
	"github.com/Arielcito/rcfapp-sub002/internal/handler/api"
	resdto "github.com/Arielcito/rcfapp-sub002/internal/handler/dto/response"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/clock"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/usecase/queries"
	"github.com/Arielcito/rcfapp-sub002/tests/common/httptest"
	queriesmock "github.com/Arielcito/rcfapp-sub002/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
}

func (s *SlotHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)

	h := api.NewSlotHandler(s.mockQueries)
	s.router.GET("/courts/:id/slots", h.List)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestList() {
	courtID := uuid.New()
	date := clock.Date{Year: 2025, Month: time.March, Day: 12}
	url := "/courts/" + courtID.String() + "/slots?date=2025-03-12"

	first := time.Date(2025, time.March, 12, 11, 0, 0, 0, time.UTC)
	slots := []reservation.Slot{
		{Interval: reservation.NewInterval(first, time.Hour), Status: reservation.SlotAvailable},
		{Interval: reservation.NewInterval(first.Add(time.Hour), time.Hour), Status: reservation.SlotBooked},
	}

	s.Run("success: 200 OK with every slot of the day", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), courtID, date).Return(&queries.SlotListing{
			CourtID:  courtID,
			Date:     date,
			TimeZone: "America/Argentina/Buenos_Aires",
			Slots:    slices.Values(slots),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-03-12", body.Date)
		s.Equal("America/Argentina/Buenos_Aires", body.TimeZone)
		s.Require().Len(body.Slots, 2)
		s.Equal("AVAILABLE", body.Slots[0].Status)
		s.Equal("BOOKED", body.Slots[1].Status)
		s.True(body.Slots[1].Start.Equal(body.Slots[0].End))
	})

	s.Run("success: an empty day still answers an empty list", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), courtID, date).Return(&queries.SlotListing{
			CourtID: courtID,
			Date:    date,
			Slots:   slices.Values([]reservation.Slot(nil)),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	s.Run("error: 400 on bad input", func() {
		for _, path := range []string{
			"/courts/" + courtID.String() + "/slots",
			"/courts/" + courtID.String() + "/slots?date=12-03-2025",
			"/courts/nope/slots?date=2025-03-12",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"court not found", errs.ErrCourtNotFound, http.StatusNotFound, "Court not found"},
			{"inactive court", errs.ErrCourtInactive, http.StatusUnprocessableEntity, "Court is not active"},
			{"storage unavailable", errs.ErrStorageUnavailable, http.StatusServiceUnavailable, "temporarily unavailable"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().ListSlots(gomock.Any(), courtID, date).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
