package ecoflow

import (
	"github.com/Musoye/ecoflow-backend/pkg/models"
)

// resolveZone fetches only the fields the detection pipeline needs. A
// missing zone surfaces as gorm.ErrRecordNotFound for the caller to map.
func (e *Ecoflow) resolveZone(zoneID uint) (*models.Zone, error) {
	var zone models.Zone
	if err := e.Db.Conn.Select("id", "name", "capacity").First(&zone, zoneID).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

type IZoneImpl struct {
	eco *Ecoflow
}

func (iz *IZoneImpl) ResolveZone(zoneID uint) (*models.Zone, error) {
	return iz.eco.resolveZone(zoneID)
}

func (e *Ecoflow) GetIZone() IZone {
	return &IZoneImpl{eco: e}
}
