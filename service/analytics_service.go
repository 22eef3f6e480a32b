package services

import (
	"fmt"
	"log"

	"github.com/NDNewell/earnings-analytics/analytics"
	"github.com/NDNewell/earnings-analytics/api/earnings"
	"github.com/NDNewell/earnings-analytics/dao/redis"
	"github.com/NDNewell/earnings-analytics/models"
)

// SummaryOptions controls one summary computation. TopN is used as-is
// (0 is a valid "no rankings" request); the HTTP layer applies the
// default when the caller did not ask for a specific size.
type SummaryOptions struct {
	TopN          int
	IncludeBlocks bool
}

// AnalyticsService runs the full earnings analytics pipeline for one
// request: fetch a raw snapshot, derive metrics, aggregate, rank, and
// (optionally) pick the top two 4-hour blocks per day. It holds no
// cross-request state, so concurrent requests need no coordination.
type AnalyticsService struct {
	earningsAPI earnings.EarningsAPI
	snapshotDao *redis.RedisSnapshotDAO // nil when the cache tier is disabled
}

// NewAnalyticsService constructs a new AnalyticsService. snapshotDao
// may be nil, in which case every request fetches upstream directly.
func NewAnalyticsService(
	earningsAPI earnings.EarningsAPI,
	snapshotDao *redis.RedisSnapshotDAO) *AnalyticsService {

	return &AnalyticsService{
		earningsAPI: earningsAPI,
		snapshotDao: snapshotDao,
	}
}

// BuildSummary fetches one snapshot and runs it through the pipeline.
// Any upstream fetch failure propagates unmodified; there is no
// partial summary.
func (as *AnalyticsService) BuildSummary(opts SummaryOptions) (*models.AnalyticsSummary, error) {
	records, err := as.fetchRecords()
	if err != nil {
		return nil, err
	}

	enriched := analytics.DeriveMetrics(records)
	aggs := analytics.Aggregate(enriched)

	summary := &models.AnalyticsSummary{
		TopRevenuePerMile:        analytics.SelectTop(enriched, analytics.RevenuePerMile, opts.TopN),
		TopRevenuePerMinute:      analytics.SelectTop(enriched, analytics.RevenuePerMinute, opts.TopN),
		EarningsByDay:            aggs.EarningsByDay,
		EarningsByHour:           aggs.EarningsByHour,
		EarningsByHourForEachDay: aggs.DayHourTable,
	}
	if opts.IncludeBlocks {
		summary.TopTwoFourHourBlocks = analytics.TopTwoBlocks(aggs.DayHourTable)
	}
	return summary, nil
}

// fetchRecords serves the snapshot cache-first. Cache failures degrade
// to a direct upstream fetch; an upstream failure on a cold cache fails
// the whole request.
func (as *AnalyticsService) fetchRecords() ([]models.RawRecord, error) {
	if as.snapshotDao != nil {
		cached, err := as.snapshotDao.GetSnapshot()
		if err != nil {
			log.Printf("[AnalyticsService] Snapshot cache read failed, falling back to upstream: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	records, err := as.earningsAPI.FetchRecords()
	if err != nil {
		return nil, fmt.Errorf("fetching earnings records: %w", err)
	}

	if as.snapshotDao != nil {
		if err := as.snapshotDao.SetSnapshot(records); err != nil {
			log.Printf("[AnalyticsService] Failed to cache earnings snapshot: %v", err)
		}
	}
	return records, nil
}
