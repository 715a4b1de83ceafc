package api

import (
	"errors"
	"net/http"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	subscriptionCommands commands.SubscriptionCommands
	subscriptionQueries  queries.SubscriptionQueries
}

func NewSubscriptionHandler(subscriptionCommands commands.SubscriptionCommands, subscriptionQueries queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionCommands: subscriptionCommands,
		subscriptionQueries:  subscriptionQueries,
	}
}

// @Summary Subscribe to a plan
// @Description Buy a daily/weekly/monthly/yearly parking pass
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribeRequest true "Subscription request"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.subscriptionCommands.Subscribe(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound),
			errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User or parking lot not found"})
		case errors.Is(err, commands.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription plan"})
		case errors.Is(err, commands.ErrParkingClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Parking lot is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubscriptionResult(result))
}

// @Summary Get subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID format"})
		return
	}

	view, err := h.subscriptionQueries.GetByID(c.Request.Context(), userID, role, subscriptionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		case errors.Is(err, queries.ErrSubscriptionAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view this subscription"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary List own subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.subscriptionQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(views))
}
