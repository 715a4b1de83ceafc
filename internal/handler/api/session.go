package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
	sessionQueries  queries.SessionQueries
	clock           clock.Clock
}

func NewSessionHandler(sessionCommands commands.SessionCommands, sessionQueries queries.SessionQueries, clk clock.Clock) *SessionHandler {
	return &SessionHandler{
		sessionCommands: sessionCommands,
		sessionQueries:  sessionQueries,
		clock:           clk,
	}
}

// @Summary Enter parking
// @Description Start a parking session backed by a reservation or subscription
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnterParkingRequest true "Entry request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) EnterParking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.EnterParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.sessionCommands.EnterParking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound),
			errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User or parking lot not found"})
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one of reservation_id or subscription_id is required"})
		case errors.Is(err, commands.ErrSessionAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{"error": "An active session already exists for this lot"})
		case errors.Is(err, commands.ErrInvalidReservation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reservation cannot back this session"})
		case errors.Is(err, commands.ErrInvalidSubscription):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Subscription cannot back this session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionResult(result))
}

// @Summary Exit parking
// @Description Close an active session, computing price and penalty
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/exit [post]
func (h *SessionHandler) ExitParking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return
	}

	result, err := h.sessionCommands.ExitParking(c.Request.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound),
			errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Active session not found"})
		case errors.Is(err, commands.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to exit this session"})
		case errors.Is(err, commands.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": "Session is already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}

// @Summary Get session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return
	}

	view, err := h.sessionQueries.GetByID(c.Request.Context(), userID, role, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, queries.ErrSessionAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary List own sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /sessions [get]
func (h *SessionHandler) GetUserSessions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.sessionQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary List overstaying sessions
// @Description Active reservation-backed sessions past their reservation end
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {array} resdto.OverstayResponse
// @Router /parkings/{id}/overstays [get]
func (h *SessionHandler) ListOverstayingSessions(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lot ID format"})
		return
	}

	views, err := h.sessionQueries.ListOverstaying(c.Request.Context(), lotID, h.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverstayViews(views))
}
