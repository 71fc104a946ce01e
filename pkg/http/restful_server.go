package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Musoye/ecoflow-backend/pkg/ecoflow"
)

type RestfulServer struct {
	Server           *gin.Engine
	Eco              *ecoflow.Ecoflow
	RateLimiterStore *ecoflow.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(zoneID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(zoneID)
	}
}

func (rs *RestfulServer) CheckZoneLimiter(zoneID string) bool {
	limiter := rs.GetLimiter(zoneID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(zoneID string, zoneRate float64, zoneBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(zoneID, rate.Limit(zoneRate), zoneBurst)
}

func (rs *RestfulServer) Setup() {
	api := rs.Server.Group("/api")
	{
		api.GET("/status/", rs.SystemStatus)
		api.GET("/health/", rs.SystemHealth)
	}

	rs.Server.POST("/sensor/detect/", rs.SensorDetect)
	rs.Server.GET("/carbon/stats/", rs.GetCarbonStats)
	rs.Server.POST("/zones/:zone_id/limiter", rs.PostLimiter)

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("/", rs.ListAlerts)
		alerts.POST("/", rs.CreateAlert)
		alerts.GET("/:alert_id", rs.GetAlert)
		alerts.PUT("/:alert_id", rs.UpdateAlert)
		alerts.DELETE("/:alert_id", rs.DeleteAlert)
	}

	notifications := rs.Server.Group("/notifications")
	{
		notifications.GET("/", rs.ListNotifications)
		notifications.POST("/", rs.CreateNotification)
		notifications.GET("/:notification_id", rs.GetNotification)
		notifications.DELETE("/:notification_id", rs.DeleteNotification)
	}
}
