package api

import (
	"net/http"

	"arbitat/internal/handler/middleware"
	"arbitat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	ownerQueries queries.OwnerQueries
}

func NewOwnerHandler(ownerQueries queries.OwnerQueries) *OwnerHandler {
	return &OwnerHandler{ownerQueries: ownerQueries}
}

// @Summary Owner dashboard
// @Description Aggregate the owner's listings, matches, bookings and revenue
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.OwnerDashboardView
// @Failure 403 {object} map[string]string
// @Router /owner/dashboard [get]
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	dashboard, err := h.ownerQueries.Dashboard(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Owner bookings
// @Description Get bookings across the owner's listings in creation order
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingView
// @Failure 403 {object} map[string]string
// @Router /owner/bookings [get]
func (h *OwnerHandler) Bookings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookings, err := h.ownerQueries.Bookings(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
