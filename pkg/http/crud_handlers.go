package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/Musoye/ecoflow-backend/pkg/models"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid '" + name + "'"})
		return 0, false
	}
	return uint(parsed), true
}

func validAlertStatus(status string) bool {
	return status == "" ||
		status == string(models.AlertStatusOpen) ||
		status == string(models.AlertStatusClosed)
}

type AlertRequest struct {
	Heading    string `json:"heading"`
	SubHeading string `json:"sub_heading"`
	Status     string `json:"status"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"Heading":    z.String().Required(),
	"SubHeading": z.String(),
	"Status":     z.String(),
})

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	status := c.Query("status")
	if !validAlertStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'status'"})
		return
	}

	alerts, err := rs.Eco.Alert.ListAlerts(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if !validAlertStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'status'"})
		return
	}

	alert := models.Alert{
		Heading:    req.Heading,
		SubHeading: req.SubHeading,
		Status:     models.AlertStatusOpen,
	}
	if req.Status != "" {
		alert.Status = models.AlertStatus(req.Status)
	}

	if err := rs.Eco.Db.Conn.Create(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "alert_id")
	if !ok {
		return
	}

	alert, err := rs.Eco.Alert.GetAlert(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// UpdateAlert applies a partial update; this is how operators close an
// alert after the overcrowding condition clears.
func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "alert_id")
	if !ok {
		return
	}

	var req struct {
		Heading    *string `json:"heading"`
		SubHeading *string `json:"sub_heading"`
		Status     *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Status != nil && !validAlertStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'status'"})
		return
	}

	patch := &models.AlertPatch{
		Heading:    req.Heading,
		SubHeading: req.SubHeading,
	}
	if req.Status != nil {
		status := models.AlertStatus(*req.Status)
		patch.Status = &status
	}

	alert, err := rs.Eco.Alert.UpdateAlert(alertID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	alertID, ok := parseIDParam(c, "alert_id")
	if !ok {
		return
	}

	if err := rs.Eco.Alert.DeleteAlert(alertID); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type NotificationRequest struct {
	Heading string `json:"heading"`
	Message string `json:"message"`
}

var notificationRequestSchema = z.Struct(z.Shape{
	"Heading": z.String(),
	"Message": z.String().Required(),
})

func (rs *RestfulServer) ListNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := rs.Eco.Db.Conn.Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// CreateNotification broadcasts a message; every reader sees every
// notification, there is no per-user fanout.
func (rs *RestfulServer) CreateNotification(c *gin.Context) {
	var req NotificationRequest
	if err := notificationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	notification := models.Notification{
		Heading: req.Heading,
		Message: req.Message,
	}
	if err := rs.Eco.Db.Conn.Create(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (rs *RestfulServer) GetNotification(c *gin.Context) {
	notificationID, ok := parseIDParam(c, "notification_id")
	if !ok {
		return
	}

	var notification models.Notification
	if err := rs.Eco.Db.Conn.First(&notification, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

func (rs *RestfulServer) DeleteNotification(c *gin.Context) {
	notificationID, ok := parseIDParam(c, "notification_id")
	if !ok {
		return
	}

	if err := rs.Eco.Db.Conn.Delete(&models.Notification{}, notificationID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
