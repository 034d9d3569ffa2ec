package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoachLinkServices/coach-scheduler/internal/middleware"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": publicUser(&user)})
}

func (h *MeHandler) ListNotifications(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}
