package ecoflow

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Musoye/ecoflow-backend/pkg/db"
	"github.com/Musoye/ecoflow-backend/pkg/ecoflow/mocks"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	visionmocks "github.com/Musoye/ecoflow-backend/pkg/vision/mocks"
)

func GetMockEcoflowWithMemorySqliteDialector(t *testing.T, useMockZone, useMockAlert, useMockCarbon bool) (
	*gomock.Controller,
	*Ecoflow,
	*visionmocks.MockCrowdCounter,
	*visionmocks.MockSceneCounter,
	*mocks.MockIZone,
	*mocks.MockIAlert,
	*mocks.MockICarbon,
) {
	ctrl := gomock.NewController(t)

	mockCrowd := visionmocks.NewMockCrowdCounter(ctrl)
	mockScene := visionmocks.NewMockSceneCounter(ctrl)
	mockIZone := mocks.NewMockIZone(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockICarbon := mocks.NewMockICarbon(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	ecoInstance := &Ecoflow{
		Db:    *dbInstance,
		Crowd: mockCrowd,
		Scene: mockScene,
	}

	zoneService := ecoInstance.GetIZone()
	if useMockZone {
		zoneService = mockIZone
	}

	alertService := ecoInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	carbonService := ecoInstance.GetICarbon()
	if useMockCarbon {
		carbonService = mockICarbon
	}

	ecoInstance.WithServices(ServiceOpts{
		Zone:   zoneService,
		Alert:  alertService,
		Carbon: carbonService,
		Detect: ecoInstance.GetIDetect(),
	})

	return ctrl, ecoInstance, mockCrowd, mockScene, mockIZone, mockIAlert, mockICarbon
}

// SeedZone inserts an organization/zone/camera chain so detections have a
// real row to resolve against.
func SeedZone(t *testing.T, eco *Ecoflow, capacity uint) (*models.Zone, *models.Camera) {
	t.Helper()

	org := models.Organization{Name: "Org " + uuid.NewString(), OrgType: "Warehouse"}
	require.NoError(t, eco.Db.Conn.Create(&org).Error)

	zone := models.Zone{
		OrganizationID: org.ID,
		Name:           "Zone " + uuid.NewString(),
		ZoneType:       "Hall",
		Capacity:       capacity,
	}
	require.NoError(t, eco.Db.Conn.Create(&zone).Error)

	camera := models.Camera{ZoneID: zone.ID, Name: "Camera " + uuid.NewString(), IsActive: true}
	require.NoError(t, eco.Db.Conn.Create(&camera).Error)

	return &zone, &camera
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
