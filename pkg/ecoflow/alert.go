package ecoflow

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
)

// ensureOpenAlert is the deduplication step of the pipeline: at most one
// OPEN alert per camera. The lookup and the conditional insert run in one
// transaction so racing detections for the same camera cannot both insert.
func (e *Ecoflow) ensureOpenAlert(cameraID *uint, zoneName string, detected int, capacity uint) (*models.AlertOutcome, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoAlert),
	)

	var outcome models.AlertOutcome
	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("status = ?", models.AlertStatusOpen)
		if cameraID == nil {
			query = query.Where("camera_id IS NULL")
		} else {
			query = query.Where("camera_id = ?", *cameraID)
		}

		var existing models.Alert
		err := query.Order("created_at desc").First(&existing).Error
		if err == nil {
			logger.Info("Reusing open alert", zap.Uint("alert_id", existing.ID))
			outcome = models.AlertOutcome{AlertID: existing.ID, Created: false}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		cameraLabel := "none"
		if cameraID != nil {
			cameraLabel = strconv.FormatUint(uint64(*cameraID), 10)
		}
		alert := models.Alert{
			CameraID:   cameraID,
			Heading:    fmt.Sprintf("Overcrowding in %s", zoneName),
			SubHeading: fmt.Sprintf("Detected %d/%d people. (Cam: %s)", detected, capacity, cameraLabel),
			Status:     models.AlertStatusOpen,
		}
		if err := tx.Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
		outcome = models.AlertOutcome{AlertID: alert.ID, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

func (e *Ecoflow) listAlerts(status string) ([]models.Alert, error) {
	query := e.Db.Conn.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var alerts []models.Alert
	err := query.Find(&alerts).Error
	return alerts, err
}

func (e *Ecoflow) getAlert(alertID uint) (*models.Alert, error) {
	var alert models.Alert
	if err := e.Db.Conn.First(&alert, alertID).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// updateAlert is the only path that transitions an alert OPEN -> CLOSED;
// the detection pipeline never closes alerts.
func (e *Ecoflow) updateAlert(alertID uint, patch *models.AlertPatch) (*models.Alert, error) {
	alert, err := e.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	if patch.Heading != nil {
		alert.Heading = *patch.Heading
	}
	if patch.SubHeading != nil {
		alert.SubHeading = *patch.SubHeading
	}
	if patch.Status != nil {
		alert.Status = *patch.Status
	}

	if err := e.Db.Conn.Save(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

func (e *Ecoflow) deleteAlert(alertID uint) error {
	return e.Db.Conn.Delete(&models.Alert{}, alertID).Error
}

type IAlertImpl struct {
	eco *Ecoflow
}

func (ia *IAlertImpl) EnsureOpenAlert(cameraID *uint, zoneName string, detected int, capacity uint) (*models.AlertOutcome, error) {
	return ia.eco.ensureOpenAlert(cameraID, zoneName, detected, capacity)
}

func (ia *IAlertImpl) ListAlerts(status string) ([]models.Alert, error) {
	return ia.eco.listAlerts(status)
}

func (ia *IAlertImpl) GetAlert(alertID uint) (*models.Alert, error) {
	return ia.eco.getAlert(alertID)
}

func (ia *IAlertImpl) UpdateAlert(alertID uint, patch *models.AlertPatch) (*models.Alert, error) {
	return ia.eco.updateAlert(alertID, patch)
}

func (ia *IAlertImpl) DeleteAlert(alertID uint) error {
	return ia.eco.deleteAlert(alertID)
}

func (e *Ecoflow) GetIAlert() IAlert {
	return &IAlertImpl{eco: e}
}
