package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	"github.com/Musoye/ecoflow-backend/pkg/vision"
)

// SensorDetect handles the detection pipeline endpoint: multipart upload
// with zone_id (required), camera_id (optional) and file (required).
func (rs *RestfulServer) SensorDetect(c *gin.Context) {
	zoneIDParam := c.PostForm("zone_id")
	fileHeader, fileErr := c.FormFile("file")
	if zoneIDParam == "" || fileErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'zone_id' or 'file'"})
		return
	}

	if !rs.CheckZoneLimiter(zoneIDParam) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	zoneID, err := strconv.ParseUint(zoneIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'zone_id'"})
		return
	}

	var cameraID *uint
	if cameraIDParam := c.PostForm("camera_id"); cameraIDParam != "" {
		parsed, err := strconv.ParseUint(cameraIDParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'camera_id'"})
			return
		}
		id := uint(parsed)
		cameraID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}
	defer file.Close()

	// read once; the same bytes feed both estimate clients
	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read uploaded file"})
		return
	}

	result, err := rs.Eco.Detect.Detect(c.Request.Context(), &models.DetectInput{
		ZoneID:      uint(zoneID),
		CameraID:    cameraID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Image:       imageData,
	})
	if err != nil {
		rs.writeDetectError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) writeDetectError(c *gin.Context, err error) {
	var statusErr *vision.CrowdStatusError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
	case errors.Is(err, vision.ErrCrowdTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Crowd API timeout. Please try again."})
	case errors.Is(err, vision.ErrCrowdUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cannot connect to Crowd API. Service may be down."})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Crowd Service failed", "details": statusErr.Body})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unexpected error calling Crowd API", "details": err.Error()})
	}
}

func (rs *RestfulServer) GetCarbonStats(c *gin.Context) {
	var zoneID *uint
	if zoneIDParam := c.Query("zone_id"); zoneIDParam != "" {
		parsed, err := strconv.ParseUint(zoneIDParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'zone_id'"})
			return
		}
		id := uint(parsed)
		zoneID = &id
	}

	stats, err := rs.Eco.Carbon.Stats(zoneID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(zoneID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) SystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Ecoflow system is operational."})
}

func (rs *RestfulServer) SystemHealth(c *gin.Context) {
	dbStatus := "OK"
	var one int
	if err := rs.Eco.Db.Conn.Raw("SELECT 1").Scan(&one).Error; err != nil {
		dbStatus = fmt.Sprintf("ERROR: %v", err)
	}

	// upstream vision services have no health endpoint to probe
	externalServiceStatus := "OK"

	checks := []string{dbStatus, externalServiceStatus}
	healthy := common.Reducer(checks, func(acc bool, status string) bool {
		return acc && status == "OK"
	}, true)

	overallStatus := "OK"
	httpStatus := http.StatusOK
	if !healthy {
		overallStatus = "DEGRADED"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"overall_status":   overallStatus,
		"database":         dbStatus,
		"external_service": externalServiceStatus,
	})
}
