package ecoflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	"github.com/Musoye/ecoflow-backend/pkg/vision"
)

const (
	StatusNormal = "NORMAL"
	StatusDanger = "DANGER"

	// a zone counts as overcrowded at 90% of declared capacity
	dangerOccupancyFactor = 0.9
)

func IsDanger(detected int, capacity uint) bool {
	return float64(detected) >= float64(capacity)*dangerOccupancyFactor
}

// OccupancyPercentage formats detected/capacity as a percentage with one
// decimal. Zero-capacity zones report "N/A": the threshold check already
// classifies them as DANGER, so there is no ratio worth reporting.
func OccupancyPercentage(detected int, capacity uint) string {
	if capacity == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(detected)/float64(capacity)*100)
}

// detect runs the pipeline: resolve the zone, get the primary estimate,
// classify, then either raise/reuse an alert (DANGER) or get the secondary
// estimate and record a carbon saving (NORMAL). Primary-estimate failures
// abort the request; secondary-estimate failures only degrade the response.
func (e *Ecoflow) detect(ctx context.Context, input *models.DetectInput) (*models.DetectResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoDetect),
		zap.String("request_id", uuid.NewString()),
		zap.Uint("zone_id", input.ZoneID),
	)

	zone, err := e.Zone.ResolveZone(input.ZoneID)
	if err != nil {
		return nil, err
	}

	detected, err := e.Crowd.CountPeople(ctx, vision.ImageUpload{
		Filename:    input.Filename,
		ContentType: input.ContentType,
		Data:        input.Image,
	})
	if err != nil {
		logger.Warn("Primary estimate failed", zap.Error(err))
		return nil, err
	}

	result := &models.DetectResult{
		Zone:                zone.Name,
		Capacity:            zone.Capacity,
		DetectedPeople:      detected,
		OccupancyPercentage: OccupancyPercentage(detected, zone.Capacity),
		Status:              StatusNormal,
	}

	if IsDanger(detected, zone.Capacity) {
		result.Status = StatusDanger

		outcome, err := e.Alert.EnsureOpenAlert(input.CameraID, zone.Name, detected, zone.Capacity)
		if err != nil {
			return nil, err
		}
		result.AlertCreated = &outcome.Created
		result.AlertID = &outcome.AlertID
		if !outcome.Created {
			result.AlertMessage = "Existing alert still active"
		}
		result.CarbonMessage = "Skipped secondary count due to overcrowding."

		logger.Info("Overcrowding detected",
			zap.Int("detected", detected),
			zap.Uint("capacity", zone.Capacity),
			zap.Uint("alert_id", outcome.AlertID),
			zap.Bool("alert_created", outcome.Created))
		return result, nil
	}

	secondary, err := e.Scene.CountPeople(ctx, input.Image, zone.Capacity)
	if err != nil {
		// occupancy detection already succeeded; report the failure
		// inside an otherwise successful response
		logger.Warn("Secondary estimate failed", zap.Error(err))
		result.CarbonError = fmt.Sprintf("Error calling scene model: %v", err)
		return result, nil
	}

	saving, err := e.Carbon.RecordSaving(input.ZoneID, detected, secondary)
	if err != nil {
		logger.Warn("Carbon saving not recorded", zap.Error(err))
		result.CarbonError = fmt.Sprintf("Error recording carbon saving: %v", err)
		return result, nil
	}

	created := false
	result.AlertCreated = &created
	result.CarbonData = &models.CarbonData{
		Filename:          input.Filename,
		SahiCount:         detected,
		GeminiCount:       secondary,
		CalculationResult: saving.Ratio,
		Formula:           saving.Formula,
		Message:           "Prediction successful via scene model",
	}

	logger.Info("Detection completed",
		zap.Int("detected", detected),
		zap.Int("secondary", secondary),
		zap.Float64("saved_amount", saving.Ratio))
	return result, nil
}

type IDetectImpl struct {
	eco *Ecoflow
}

func (id *IDetectImpl) Detect(ctx context.Context, input *models.DetectInput) (*models.DetectResult, error) {
	return id.eco.detect(ctx, input)
}

func (e *Ecoflow) GetIDetect() IDetect {
	return &IDetectImpl{eco: e}
}
