//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/api"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"
	"parkhub/tests/common/httptest"
	"parkhub/tests/common/testutil"
	commandsmock "parkhub/tests/mock/commands"
	queriesmock "parkhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	mockClock    *clock.MockClock
	handler      *api.SessionHandler
	actorID      uuid.UUID
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.mockClock = clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries, s.mockClock)

	// Mock middleware behavior: an Authorization header authenticates as s.actorID
	authed := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", user.RoleDriver)
		}
		c.Next()
	}

	s.router.POST("/sessions", authed, s.handler.EnterParking)
	s.router.GET("/sessions", authed, s.handler.GetUserSessions)
	s.router.GET("/sessions/:id", authed, s.handler.GetSession)
	s.router.POST("/sessions/:id/exit", authed, s.handler.ExitParking)
	s.router.GET("/parkings/:id/overstays", authed, s.handler.ListOverstayingSessions)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestEnterParking() {
	url := "/sessions"
	reqBody := builder.NewSessionBuilder().BuildEnterRequestDTO()

	s.Run("success: returns 201 Created with the active session", func() {
		result := &commands.SessionResult{
			ID:            uuid.New(),
			UserID:        s.actorID,
			LotID:         reqBody.LotID,
			ReservationID: reqBody.ReservationID,
			EntryTime:     s.mockClock.Now(),
			Status:        "active",
		}
		s.mockCommands.EXPECT().EnterParking(gomock.Any(), s.actorID, reqBody).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.ID, response.ID)
		s.Equal("active", response.Status)
		s.Require().NotNil(response.ReservationID)
		s.Equal(*reqBody.ReservationID, *response.ReservationID)
		s.Nil(response.ExitTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("lot_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown parking lot",
				commandsError:  commands.ErrParkingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User or parking lot not found",
			},
			{
				name:           "both or neither backing supplied",
				commandsError:  commands.ErrInvalidRequest,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Exactly one of reservation_id or subscription_id is required",
			},
			{
				name:           "active session already exists",
				commandsError:  commands.ErrSessionAlreadyActive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "active session already exists",
			},
			{
				name:           "reservation cannot back the session",
				commandsError:  commands.ErrInvalidReservation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Reservation cannot back this session",
			},
			{
				name:           "subscription cannot back the session",
				commandsError:  commands.ErrInvalidSubscription,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Subscription cannot back this session",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().EnterParking(gomock.Any(), s.actorID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestExitParking() {
	sessionID := uuid.New()
	url := "/sessions/" + sessionID.String() + "/exit"

	s.Run("success: returns 200 OK with the completed session", func() {
		exitTime := s.mockClock.Now()
		reservationID := uuid.New()
		result := &commands.SessionResult{
			ID:            sessionID,
			UserID:        s.actorID,
			LotID:         uuid.New(),
			ReservationID: &reservationID,
			EntryTime:     exitTime.Add(-2 * time.Hour),
			ExitTime:      &exitTime,
			FinalPrice:    4.0,
			PenaltyAmount: 2.5,
			Status:        "completed",
		}
		s.mockCommands.EXPECT().ExitParking(gomock.Any(), sessionID, s.actorID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.InDelta(4.0, response.FinalPrice, 1e-9)
		s.InDelta(2.5, response.PenaltyAmount, 1e-9)
		s.Require().NotNil(response.ExitTime)
	})

	s.Run("error: 400 on malformed session ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions/not-a-uuid/exit", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no active session",
				commandsError:  commands.ErrSessionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Active session not found",
			},
			{
				name:           "session owned by another user",
				commandsError:  commands.ErrUnauthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed to exit this session",
			},
			{
				name:           "session already completed",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already completed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExitParking(gomock.Any(), sessionID, s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestGetSession() {
	view := builder.NewSessionBuilder().WithUserID(s.actorID).BuildView()
	url := "/sessions/" + view.ID.String()

	s.Run("success: returns 200 OK with the session", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleDriver, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(s.actorID, response.UserID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				queriesError:   queries.ErrSessionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Session not found",
			},
			{
				name:           "access denied",
				queriesError:   queries.ErrSessionAccessDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed to view this session",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleDriver, view.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *SessionHandlerTestSuite) TestListOverstayingSessions() {
	lotID := uuid.New()
	url := "/parkings/" + lotID.String() + "/overstays"

	s.Run("success: queries overstays at the injected clock's now", func() {
		now := s.mockClock.Now()
		views := []queries.OverstayView{
			{
				SessionID:       uuid.New(),
				UserID:          uuid.New(),
				ReservationID:   uuid.New(),
				ReservationEnd:  now.Add(-90 * time.Minute),
				OverstayMinutes: 90,
			},
		}
		s.mockQueries.EXPECT().ListOverstaying(gomock.Any(), lotID, now).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OverstayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(int64(90), response[0].OverstayMinutes)
	})

	s.Run("error: 400 on malformed lot ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/parkings/not-a-uuid/overstays", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot ID format")
	})

	s.Run("error: 500 when the query fails", func() {
		s.mockQueries.EXPECT().ListOverstaying(gomock.Any(), lotID, s.mockClock.Now()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
