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

type SavedItemHandler struct {
	service services.SavedItemService
}

func NewSavedItemHandler(service services.SavedItemService) *SavedItemHandler {
	return &SavedItemHandler{service: service}
}

// SaveItem shortlists an item for the authenticated user.
func (h *SavedItemHandler) SaveItem(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	var item models.SavedItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), userID, &item)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
		case errors.Is(err, models.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Item already saved by this user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// RemoveItem deletes a shortlist entry by its record id.
func (h *SavedItemHandler) RemoveItem(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	err := h.service.Remove(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}

// GetSavedItems lists the authenticated user's shortlist.
func (h *SavedItemHandler) GetSavedItems(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	items, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CheckVenue reports whether the authenticated user has shortlisted an item.
// "Not shortlisted" is an expected outcome signaled as 404 with a body; the
// client relies on that contract.
func (h *SavedItemHandler) CheckVenue(c *gin.Context) {
	userID := c.GetString(utils.UserIDKey)

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, err := h.service.CheckShortlisted(c.Request.Context(), userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"shortlisted": false, "userId": userID})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedItem": item, "shortlisted": true})
}
