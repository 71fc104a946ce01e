package ecoflow

import (
	"context"

	"github.com/Musoye/ecoflow-backend/pkg/db"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	"github.com/Musoye/ecoflow-backend/pkg/vision"
)

//go:generate mockgen -source=ecoflow.go -destination=mocks/mock_ecoflow.go -package=mocks

type IZone interface {
	ResolveZone(zoneID uint) (*models.Zone, error)
}

type IAlert interface {
	EnsureOpenAlert(cameraID *uint, zoneName string, detected int, capacity uint) (*models.AlertOutcome, error)
	ListAlerts(status string) ([]models.Alert, error)
	GetAlert(alertID uint) (*models.Alert, error)
	UpdateAlert(alertID uint, patch *models.AlertPatch) (*models.Alert, error)
	DeleteAlert(alertID uint) error
}

type ICarbon interface {
	RecordSaving(zoneID uint, primary int, secondary int) (*models.CarbonSaving, error)
	Stats(zoneID *uint) (*models.CarbonStats, error)
}

type IDetect interface {
	Detect(ctx context.Context, input *models.DetectInput) (*models.DetectResult, error)
}

// Ecoflow is the core of the monitoring backend. The vision clients are
// constructed once at process start and injected here; nothing in the
// pipeline reaches for ambient state.
type Ecoflow struct {
	Db    db.DB
	Crowd vision.CrowdCounter
	Scene vision.SceneCounter

	Zone   IZone
	Alert  IAlert
	Carbon ICarbon
	Detect IDetect
}

type ServiceOpts struct {
	Zone   IZone
	Alert  IAlert
	Carbon ICarbon
	Detect IDetect
}

func (e *Ecoflow) WithServices(opts ServiceOpts) *Ecoflow {
	if opts.Zone != nil {
		e.Zone = opts.Zone
	}
	if opts.Alert != nil {
		e.Alert = opts.Alert
	}
	if opts.Carbon != nil {
		e.Carbon = opts.Carbon
	}
	if opts.Detect != nil {
		e.Detect = opts.Detect
	}
	return e
}
