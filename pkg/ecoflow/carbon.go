package ecoflow

import (
	"fmt"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
)

const (
	statsCacheTTL      = 30 * time.Second
	recentHistoryLimit = 10
)

// recordSaving persists the ratio of the two independent estimates as the
// zone's saved amount. A zero secondary count yields 0.0 rather than a
// division by zero; this guard is independent of the parse fallback in the
// scene client.
func (e *Ecoflow) recordSaving(zoneID uint, primary int, secondary int) (*models.CarbonSaving, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoCarbon),
	)

	ratio := 0.0
	if secondary != 0 {
		ratio = math.Round(float64(primary)/float64(secondary)*10000) / 10000
	}

	carbonLog := models.CarbonLog{ZoneID: zoneID, SavedAmount: ratio}
	if err := e.Db.Conn.Create(&carbonLog).Error; err != nil {
		return nil, err
	}

	logger.Info("Carbon saving recorded", zap.Reflect("carbon_log", carbonLog))

	return &models.CarbonSaving{
		Ratio:   ratio,
		Formula: fmt.Sprintf("%d / %d rounded", primary, secondary),
	}, nil
}

func (e *Ecoflow) computeCarbonStats(zoneID *uint) (*models.CarbonStats, error) {
	logsQuery := e.Db.Conn.
		Preload("Zone").
		Order("timestamp desc").
		Limit(recentHistoryLimit)
	aggQuery := e.Db.Conn.Model(&models.CarbonLog{})
	if zoneID != nil {
		logsQuery = logsQuery.Where("zone_id = ?", *zoneID)
		aggQuery = aggQuery.Where("zone_id = ?", *zoneID)
	}

	var logs []models.CarbonLog
	if err := logsQuery.Find(&logs).Error; err != nil {
		return nil, err
	}

	var agg struct {
		TotalSaved float64
		AvgSaved   float64
	}
	err := aggQuery.
		Select("COALESCE(SUM(saved_amount), 0) AS total_saved, COALESCE(AVG(saved_amount), 0) AS avg_saved").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	history := common.Mapper(logs, func(l models.CarbonLog) models.CarbonHistoryEntry {
		return models.CarbonHistoryEntry{
			Zone:  l.Zone.Name,
			Saved: l.SavedAmount,
			Date:  l.Timestamp.Format("2006-01-02 15:04"),
		}
	})

	return &models.CarbonStats{
		Summary: models.CarbonStatsSummary{
			TotalSavedAllTime:   math.Round(agg.TotalSaved*100) / 100,
			AveragePerDetection: math.Round(agg.AvgSaved*100) / 100,
		},
		RecentHistory: history,
	}, nil
}

type ICarbonImpl struct {
	eco        *Ecoflow
	statsCache *cache.Cache
}

func (ic *ICarbonImpl) RecordSaving(zoneID uint, primary int, secondary int) (*models.CarbonSaving, error) {
	return ic.eco.recordSaving(zoneID, primary, secondary)
}

// Stats serves aggregates from a short-lived cache: within the TTL window
// repeated reads return the cached payload verbatim. Staleness inside the
// window is acceptable, so no locking beyond what the cache provides.
func (ic *ICarbonImpl) Stats(zoneID *uint) (*models.CarbonStats, error) {
	cacheKey := "carbon_stats_all"
	if zoneID != nil {
		cacheKey = fmt.Sprintf("carbon_stats_%d", *zoneID)
	}

	if cached, found := ic.statsCache.Get(cacheKey); found {
		return cached.(*models.CarbonStats), nil
	}

	stats, err := ic.eco.computeCarbonStats(zoneID)
	if err != nil {
		return nil, err
	}

	ic.statsCache.Set(cacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}

func (e *Ecoflow) GetICarbon() ICarbon {
	return &ICarbonImpl{
		eco:        e,
		statsCache: cache.New(statsCacheTTL, 2*statsCacheTTL),
	}
}
