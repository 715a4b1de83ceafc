package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "parkhub/internal/handler/dto/request"
	resdto "parkhub/internal/handler/dto/response"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/usecase/commands"
	"parkhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ParkingHandler struct {
	parkingCommands     commands.ParkingCommands
	parkingQueries      queries.ParkingQueries
	availabilityQueries queries.AvailabilityQueries
	revenueQueries      queries.RevenueQueries
	clock               clock.Clock
}

func NewParkingHandler(
	parkingCommands commands.ParkingCommands,
	parkingQueries queries.ParkingQueries,
	availabilityQueries queries.AvailabilityQueries,
	revenueQueries queries.RevenueQueries,
	clk clock.Clock,
) *ParkingHandler {
	return &ParkingHandler{
		parkingCommands:     parkingCommands,
		parkingQueries:      parkingQueries,
		availabilityQueries: availabilityQueries,
		revenueQueries:      revenueQueries,
		clock:               clk,
	}
}

// @Summary Create parking lot
// @Description Register a new lot owned by the caller
// @Tags parkings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateParkingRequest true "Parking lot"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /parkings [post]
func (h *ParkingHandler) CreateParking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.parkingCommands.CreateParking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidParking):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parking lot data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update parking lot
// @Tags parkings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateParkingRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parkings/{id} [patch]
func (h *ParkingHandler) UpdateParking(c *gin.Context) {
	userID, role, lotID, ok := actorAndLotID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateParkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.parkingCommands.UpdateParking(c.Request.Context(), userID, role, lotID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking lot not found"})
		case errors.Is(err, commands.ErrParkingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage this lot"})
		case errors.Is(err, commands.ErrInvalidParking):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parking lot data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Deactivate parking lot
// @Tags parkings
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parkings/{id} [delete]
func (h *ParkingHandler) DeactivateParking(c *gin.Context) {
	userID, role, lotID, ok := actorAndLotID(c)
	if !ok {
		return
	}

	err := h.parkingCommands.DeactivateParking(c.Request.Context(), userID, role, lotID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking lot not found"})
		case errors.Is(err, commands.ErrParkingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to manage this lot"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get parking lot
// @Tags parkings
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.ParkingResponse
// @Failure 404 {object} map[string]string
// @Router /parkings/{id} [get]
func (h *ParkingHandler) GetParking(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lot ID format"})
		return
	}

	view, err := h.parkingQueries.GetByID(c.Request.Context(), lotID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrParkingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking lot not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromParkingView(view))
}

// @Summary List active parking lots
// @Tags parkings
// @Produce json
// @Success 200 {array} resdto.ParkingResponse
// @Router /parkings [get]
func (h *ParkingHandler) ListParkings(c *gin.Context) {
	views, err := h.parkingQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromParkingViews(views))
}

// @Summary Nearby parking lots
// @Description Active lots ranked by distance from the given coordinates
// @Tags parkings
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Max distance in km"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.NearbyParkingResponse
// @Failure 400 {object} map[string]string
// @Router /parkings/nearby [get]
func (h *ParkingHandler) NearbyParkings(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	radiusKm, _ := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.parkingQueries.Nearby(c.Request.Context(), lat, lon, radiusKm, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromNearbyParkingViews(views))
}

// @Summary Spot availability
// @Description Available spots for a lot at a point in time
// @Tags parkings
// @Produce json
// @Param id path string true "Lot ID"
// @Param at query int false "Unix timestamp, defaults to now"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /parkings/{id}/availability [get]
func (h *ParkingHandler) GetAvailability(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lot ID format"})
		return
	}

	at := h.clock.Now()
	if atStr := c.Query("at"); atStr != "" {
		ts, parseErr := strconv.ParseInt(atStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp"})
			return
		}
		at = time.Unix(ts, 0).UTC()
	}

	view, err := h.availabilityQueries.ComputeAvailability(c.Request.Context(), lotID, at)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAvailabilityLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking lot not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Monthly revenue
// @Description Revenue report for a lot, restricted to its owner and admins
// @Tags parkings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parkings/{id}/revenue [get]
func (h *ParkingHandler) GetMonthlyRevenue(c *gin.Context) {
	userID, role, lotID, ok := actorAndLotID(c)
	if !ok {
		return
	}

	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	view, err := h.revenueQueries.MonthlyRevenue(c.Request.Context(), userID, role, lotID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRevenueLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking lot not found"})
		case errors.Is(err, queries.ErrRevenueAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to view revenue for this lot"})
		case errors.Is(err, queries.ErrInvalidRevenueMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueView(view))
}
