package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"utsav/activity-service/internal/models"
	"utsav/activity-service/internal/services"
	"utsav/activity-service/internal/utils"
)

type ReviewHandler struct {
	service services.ReviewService
}

func NewReviewHandler(service services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// SaveReview posts the authenticated user's review of an item. A second
// review of the same item by the same user is rejected.
func (h *ReviewHandler) SaveReview(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), userID, &review)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		case errors.Is(err, models.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// GetAllReviews lists an item's reviews with each author's display name.
// Public endpoint, no authentication.
func (h *ReviewHandler) GetAllReviews(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	reviews, err := h.service.ListForItem(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview deletes a review; only its author may do so.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	err := h.service.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		case errors.Is(err, models.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// FetchAllReviews lists every review the authenticated user has posted.
// An empty array is a normal response.
func (h *ReviewHandler) FetchAllReviews(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	reviews, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
