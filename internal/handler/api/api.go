package api

import (
	"net/http"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorAndLotID pulls the authenticated actor from context and the lot id
// from the path, writing the error response itself on failure.
func actorAndLotID(c *gin.Context) (uuid.UUID, user.Role, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", uuid.Nil, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", uuid.Nil, false
	}

	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lot ID format"})
		return uuid.Nil, "", uuid.Nil, false
	}

	return userID, role, lotID, true
}

// actor pulls the authenticated actor id and role from context.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", false
	}
	return userID, role, true
}
