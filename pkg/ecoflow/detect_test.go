package ecoflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	_ "github.com/Musoye/ecoflow-backend/pkg/testing"
	"github.com/Musoye/ecoflow-backend/pkg/vision"
)

func TestIsDanger(t *testing.T) {
	cases := []struct {
		name     string
		detected int
		capacity uint
		want     bool
	}{
		{"well below threshold", 50, 100, false},
		{"just below threshold", 89, 100, false},
		{"at threshold", 90, 100, true},
		{"above capacity", 120, 100, true},
		{"zero capacity", 0, 0, true},
		{"zero capacity with people", 3, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDanger(tc.detected, tc.capacity))
		})
	}
}

func TestOccupancyPercentage(t *testing.T) {
	assert.Equal(t, "50.0%", OccupancyPercentage(50, 100))
	assert.Equal(t, "112.5%", OccupancyPercentage(45, 40))
	assert.Equal(t, "0.0%", OccupancyPercentage(0, 100))
	assert.Equal(t, "N/A", OccupancyPercentage(3, 0))
}

func TestDetect_DangerPath(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, mockCrowd, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, camera := SeedZone(t, ecoObj, 100)

	mockCrowd.EXPECT().
		CountPeople(gomock.Any(), gomock.Any()).
		Return(95, nil)
	// no scene expectation: the secondary estimate must be skipped

	result, err := ecoObj.Detect.Detect(context.Background(), &models.DetectInput{
		ZoneID:      zone.ID,
		CameraID:    &camera.ID,
		Filename:    "crowd.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDanger, result.Status)
	assert.Equal(t, zone.Name, result.Zone)
	assert.Equal(t, 95, result.DetectedPeople)
	assert.Equal(t, "95.0%", result.OccupancyPercentage)
	require.NotNil(t, result.AlertCreated)
	assert.True(t, *result.AlertCreated)
	require.NotNil(t, result.AlertID)
	assert.Equal(t, "Skipped secondary count due to overcrowding.", result.CarbonMessage)
	assert.Nil(t, result.CarbonData)

	var count int64
	require.NoError(t, ecoObj.Db.Conn.Model(&models.CarbonLog{}).
		Where("zone_id = ?", zone.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDetect_DangerPath_ExistingAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, mockCrowd, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, camera := SeedZone(t, ecoObj, 100)

	mockCrowd.EXPECT().
		CountPeople(gomock.Any(), gomock.Any()).
		Return(95, nil).
		Times(2)

	input := &models.DetectInput{
		ZoneID:      zone.ID,
		CameraID:    &camera.ID,
		Filename:    "crowd.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	}

	first, err := ecoObj.Detect.Detect(context.Background(), input)
	require.NoError(t, err)
	require.True(t, *first.AlertCreated)

	second, err := ecoObj.Detect.Detect(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, *second.AlertCreated)
	assert.Equal(t, *first.AlertID, *second.AlertID)
	assert.Equal(t, "Existing alert still active", second.AlertMessage)
}

func TestDetect_NormalPath(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, mockCrowd, mockScene, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, camera := SeedZone(t, ecoObj, 100)

	mockCrowd.EXPECT().
		CountPeople(gomock.Any(), gomock.Any()).
		Return(50, nil)
	mockScene.EXPECT().
		CountPeople(gomock.Any(), gomock.Any(), zone.Capacity).
		Return(45, nil)

	result, err := ecoObj.Detect.Detect(context.Background(), &models.DetectInput{
		ZoneID:      zone.ID,
		CameraID:    &camera.ID,
		Filename:    "hall.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusNormal, result.Status)
	assert.Equal(t, "50.0%", result.OccupancyPercentage)
	require.NotNil(t, result.AlertCreated)
	assert.False(t, *result.AlertCreated)
	assert.Nil(t, result.AlertID)
	assert.Empty(t, result.CarbonError)

	require.NotNil(t, result.CarbonData)
	assert.Equal(t, "hall.jpg", result.CarbonData.Filename)
	assert.Equal(t, 50, result.CarbonData.SahiCount)
	assert.Equal(t, 45, result.CarbonData.GeminiCount)
	assert.Equal(t, 1.1111, result.CarbonData.CalculationResult)
	assert.Equal(t, "50 / 45 rounded", result.CarbonData.Formula)
	assert.Equal(t, "Prediction successful via scene model", result.CarbonData.Message)

	var saved models.CarbonLog
	require.NoError(t, ecoObj.Db.Conn.Where("zone_id = ?", zone.ID).First(&saved).Error)
	assert.Equal(t, 1.1111, saved.SavedAmount)
}

func TestDetect_SecondaryFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, mockCrowd, mockScene, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, _ := SeedZone(t, ecoObj, 100)

	mockCrowd.EXPECT().
		CountPeople(gomock.Any(), gomock.Any()).
		Return(50, nil)
	mockScene.EXPECT().
		CountPeople(gomock.Any(), gomock.Any(), zone.Capacity).
		Return(0, errors.New("generateContent: status 500"))

	result, err := ecoObj.Detect.Detect(context.Background(), &models.DetectInput{
		ZoneID:      zone.ID,
		Filename:    "hall.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusNormal, result.Status)
	assert.Equal(t, "Error calling scene model: generateContent: status 500", result.CarbonError)
	assert.Nil(t, result.CarbonData)

	var count int64
	require.NoError(t, ecoObj.Db.Conn.Model(&models.CarbonLog{}).
		Where("zone_id = ?", zone.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDetect_PrimaryTimeout(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, mockCrowd, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, _ := SeedZone(t, ecoObj, 100)

	mockCrowd.EXPECT().
		CountPeople(gomock.Any(), gomock.Any()).
		Return(0, vision.ErrCrowdTimeout)

	_, err := ecoObj.Detect.Detect(context.Background(), &models.DetectInput{
		ZoneID:      zone.ID,
		Filename:    "hall.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	})
	assert.True(t, errors.Is(err, vision.ErrCrowdTimeout))

	var count int64
	require.NoError(t, ecoObj.Db.Conn.Model(&models.CarbonLog{}).
		Where("zone_id = ?", zone.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDetect_ZoneNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := ecoObj.Detect.Detect(context.Background(), &models.DetectInput{
		ZoneID:      9999999,
		Filename:    "hall.jpg",
		ContentType: "image/jpeg",
		Image:       []byte{0xff, 0xd8},
	})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
