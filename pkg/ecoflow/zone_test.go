package ecoflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	_ "github.com/Musoye/ecoflow-backend/pkg/testing"
)

func TestResolveZone(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	zone, _ := SeedZone(t, ecoObj, 100)

	resolved, err := ecoObj.Zone.ResolveZone(zone.ID)
	assert.NoError(t, err)
	assert.Equal(t, zone.Name, resolved.Name)
	assert.Equal(t, uint(100), resolved.Capacity)
}

func TestResolveZone_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _, _, _, _, _ := GetMockEcoflowWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := ecoObj.Zone.ResolveZone(9999999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
