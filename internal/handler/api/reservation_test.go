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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an Authorization header authenticates as s.actorID
	authed := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", user.RoleDriver)
		}
		c.Next()
	}

	s.router.POST("/reservations", authed, s.handler.CreateReservation)
	s.router.GET("/reservations", authed, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", authed, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", authed, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the reservation", func() {
		result := &commands.ReservationResult{
			ID:             uuid.New(),
			UserID:         s.actorID,
			LotID:          reqBody.LotID,
			StartTime:      time.Unix(reqBody.StartTime, 0),
			EndTime:        time.Unix(reqBody.EndTime, 0),
			EstimatedPrice: 5.0,
			Status:         "active",
		}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actorID, reqBody).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.ID, response.ID)
		s.Equal("active", response.Status)
		s.InDelta(5.0, response.EstimatedPrice, 1e-9)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: lot_id (required)", mutate: testutil.Field("lot_id", nil)},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil)},
			{name: "malformed lot_id", mutate: testutil.Field("lot_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
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
				name:           "invalid time slot",
				commandsError:  commands.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "lot closed for the slot",
				commandsError:  commands.ErrParkingClosed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "closed",
			},
			{
				name:           "tariff table cannot price the slot",
				commandsError:  commands.ErrTariffNotPriceable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "tariffs",
			},
			{
				name:           "lot full",
				commandsError:  commands.ErrParkingFull,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Parking lot is full",
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
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actorID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	baseView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns the reservation", func() {
		ownView := testutil.Clone(s.T(), *baseView)
		ownView.UserID = s.actorID
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleDriver, ownView.ID).
			Return(&ownView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+ownView.ID.String(), nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(ownView.ID, response.ID)
		s.Equal(s.actorID, response.UserID)
		s.Equal(ownView.LotName, response.LotName)
	})

	s.Run("error: 400 on malformed reservation ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
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
				queriesError:   queries.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "access denied",
				queriesError:   queries.ErrReservationAccessDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed to view this reservation",
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
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, user.RoleDriver, baseView.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+baseView.ID.String(), nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	s.Run("success: returns the caller's reservations", func() {
		views := []queries.ReservationView{
			*builder.NewReservationBuilder().WithUserID(s.actorID).BuildView(),
			*builder.NewReservationBuilder().WithUserID(s.actorID).WithStatus("completed").BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("completed", response[1].Status)
	})

	s.Run("error: 500 when listing fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  commands.ErrReservationMissing,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrUnauthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed to cancel this reservation",
			},
			{
				name:           "already cancelled",
				commandsError:  commands.ErrInvalidState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation is not active",
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
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID, s.actorID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
