package api

import (
	"errors"
	"net/http"

	reqdto "arbitat/internal/handler/dto/request"
	resdto "arbitat/internal/handler/dto/response"
	"arbitat/internal/handler/middleware"
	"arbitat/internal/usecase/commands"
	"arbitat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	bookingQueries  queries.BookingQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, bookingQueries queries.BookingQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit a payment
// @Description Charge the derived lease total and create the booking. Amounts are recomputed server-side.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Submit(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.SubmitPayment(c.Request.Context(), req, renterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidLeaseTerm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid lease term",
			})
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, commands.ErrPaymentFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment could not be processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.PaymentResponse{
		Reference: result.Reference,
		Booking:   result.Booking,
	})
}

// @Summary List bookings
// @Description Get the renter's bookings in creation order
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *PaymentHandler) ListBookings(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookings, err := h.bookingQueries.ListByRenter(c.Request.Context(), renterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
