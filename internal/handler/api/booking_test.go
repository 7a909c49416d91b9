//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"itemshare/internal/domain/booking"
	"itemshare/internal/handler/api"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/queries"
	commandsmock "itemshare/tests/mock/commands"
	queriesmock "itemshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	group := s.router.Group("/bookings")
	group.Use(middleware.RequireUserID())
	group.POST("", s.handler.CreateBooking)
	group.GET("", s.handler.ListBookings)
	group.GET("/owner", s.handler.ListOwnerBookings)
	group.GET("/:id", s.handler.GetBooking)
	group.PATCH("/:id", s.handler.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any, sharerID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sharerID != "" {
		req.Header.Set(middleware.SharerUserIDHeader, sharerID)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) sampleView() *queries.BookingView {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		Booking: booking.Reconstruct(
			uuid.New(), uuid.New(), s.userID, start, start.Add(24*time.Hour), booking.StatusWaiting,
		),
		BookerName: "alice",
		ItemName:   "drill",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	view := s.sampleView()
	reqBody := map[string]any{
		"itemId": view.ItemID().String(),
		"start":  view.Start().Format(time.RFC3339),
		"end":    view.End().Format(time.RFC3339),
	}

	s.Run("success: 201 with decorated booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqBody, s.userID.String())

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(view.ID().String(), body["id"])
		s.Equal("WAITING", body["status"])
		s.Equal("alice", body["bookerName"])
	})

	s.Run("error: 400 without identity header", func() {
		rec := s.perform(http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 with malformed identity header", func() {
		rec := s.perform(http.MethodPost, url, reqBody, "not-a-uuid")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on missing body fields", func() {
		rec := s.perform(http.MethodPost, url, map[string]any{"itemId": view.ItemID().String()}, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown user", err: errs.ErrUserNotFound, expectCode: http.StatusNotFound},
			{name: "unknown item", err: errs.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "unavailable item", err: errs.ErrItemUnavailable, expectCode: http.StatusBadRequest},
			{name: "inverted range", err: booking.ErrInvalidTimeRange, expectCode: http.StatusBadRequest},
			{name: "storage failure", err: errs.ErrStorageFailure, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.err).Times(1)

				rec := s.perform(http.MethodPost, url, reqBody, s.userID.String())
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	view := s.sampleView()
	url := "/bookings/" + view.ID().String() + "?approved=true"

	s.Run("success: 200 after approval", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), view.ID(), s.userID, true).
			Return(view, nil).Times(1)

		rec := s.perform(http.MethodPatch, url, nil, s.userID.String())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without approved parameter", func() {
		rec := s.perform(http.MethodPatch, "/bookings/"+view.ID().String(), nil, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on malformed booking id", func() {
		rec := s.perform(http.MethodPatch, "/bookings/nope?approved=true", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: non-owner gets 400", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), view.ID(), s.userID, true).
			Return(nil, errs.ErrNotItemOwner).Times(1)

		rec := s.perform(http.MethodPatch, url, nil, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: already decided gets 400", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), view.ID(), s.userID, true).
			Return(nil, errs.ErrAlreadyDecided).Times(1)

		rec := s.perform(http.MethodPatch, url, nil, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := s.sampleView()
	url := "/bookings/" + view.ID().String()

	s.Run("success: 200 with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID(), s.userID).
			Return(view, nil).Times(1)

		rec := s.perform(http.MethodGet, url, nil, s.userID.String())

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(view.ID().String(), body["id"])
		s.Equal("drill", body["itemName"])
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID(), s.userID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := s.perform(http.MethodGet, url, nil, s.userID.String())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	view := s.sampleView()

	s.Run("success: default state is ALL", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID, booking.StateAll).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/bookings", nil, s.userID.String())

		s.Equal(http.StatusOK, rec.Code)
		var body []map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Len(body, 1)
	})

	s.Run("success: state is parsed case-insensitively", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID, booking.StatePast).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/bookings?state=past", nil, s.userID.String())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for unknown state", func() {
		rec := s.perform(http.MethodGet, "/bookings?state=SOMETIMES", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: owner listing routes to ListByOwner", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID, booking.StateFuture).
			Return([]*queries.BookingView{view}, nil).Times(1)

		rec := s.perform(http.MethodGet, "/bookings/owner?state=FUTURE", nil, s.userID.String())
		s.Equal(http.StatusOK, rec.Code)
	})
}
