package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/activity-service/internal/models"
	"utsav/activity-service/internal/services"
	"utsav/activity-service/internal/utils"
)

type BookingHandler struct {
	service services.BookingService
}

func NewBookingHandler(service services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// VerifyUserBeforeBooking checks whether an account exists for the supplied
// (email, mobile number, name) triple. The response echoes the triple back
// either way so the client can correlate the answer with its form state.
func (h *BookingHandler) VerifyUserBeforeBooking(c *gin.Context) {
	var verification models.BookingVerification
	if err := c.ShouldBindJSON(&verification); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid input"})
		return
	}

	_, err := h.service.VerifyUser(c.Request.Context(), &verification)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message":      "User not found",
				"email":        verification.Email,
				"mobileNumber": verification.MobileNumber,
				"name":         verification.Name,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User found",
		"email":        verification.Email,
		"mobileNumber": verification.MobileNumber,
		"name":         verification.Name,
	})
}

// BookVenue places a booking. No authentication and no duplicate check:
// repeat bookings for the same contact are all kept.
func (h *BookingHandler) BookVenue(c *gin.Context) {
	var order models.PlacedOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	placed, err := h.service.BookVenue(c.Request.Context(), &order)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": placed})
}

// FetchPlacedOrdersData lists the authenticated user's bookings, matched by
// the profile email rather than user id.
func (h *BookingHandler) FetchPlacedOrdersData(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	orders, err := h.service.PlacedOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"placedOrdersData": orders})
}
