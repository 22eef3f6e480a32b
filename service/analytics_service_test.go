package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisdao "github.com/NDNewell/earnings-analytics/dao/redis"
	"github.com/NDNewell/earnings-analytics/db"
	"github.com/NDNewell/earnings-analytics/models"
)

// stubEarningsAPI is a canned-response Record Source for tests.
type stubEarningsAPI struct {
	records []models.RawRecord
	err     error
	calls   int
}

func (s *stubEarningsAPI) FetchRecords() ([]models.RawRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func sampleRecords() []models.RawRecord {
	return []models.RawRecord{
		{Earnings: 22.5, Distance: "6.3", Duration: "00:25:00", DateRequested: "2023-05-01", TimeRequested: "08:15:00"},
		{Earnings: 30, Distance: "N/A", Duration: "00:30:00", DateRequested: "2023-05-01", TimeRequested: "14:05:00"},
		{Earnings: 41.2, Distance: "12.8", Duration: "00:52:10", DateRequested: "2023-05-02", TimeRequested: "17:20:00"},
	}
}

func TestBuildSummary_Success(t *testing.T) {
	api := &stubEarningsAPI{records: sampleRecords()}
	svc := NewAnalyticsService(api, nil)

	summary, err := svc.BuildSummary(SummaryOptions{TopN: 5, IncludeBlocks: true})
	require.NoError(t, err)

	// The N/A-distance record is aggregated but never ranked by mile.
	assert.Len(t, summary.TopRevenuePerMile, 2)
	assert.Len(t, summary.TopRevenuePerMinute, 3)
	assert.Contains(t, summary.EarningsByDay, "Monday")
	assert.Contains(t, summary.EarningsByDay, "Tuesday")
	require.Len(t, summary.TopTwoFourHourBlocks, 7)
	assert.Equal(t, -1, summary.TopTwoFourHourBlocks["Sunday"].FirstBlock.StartHour)
}

func TestBuildSummary_BlocksOnlyWhenRequested(t *testing.T) {
	api := &stubEarningsAPI{records: sampleRecords()}
	svc := NewAnalyticsService(api, nil)

	summary, err := svc.BuildSummary(SummaryOptions{TopN: 5})
	require.NoError(t, err)
	assert.Nil(t, summary.TopTwoFourHourBlocks)
}

func TestBuildSummary_UpstreamFailureFailsRequest(t *testing.T) {
	api := &stubEarningsAPI{err: errors.New("unexpected status code: 500 Internal Server Error")}
	svc := NewAnalyticsService(api, nil)

	summary, err := svc.BuildSummary(SummaryOptions{TopN: 5})
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestBuildSummary_EmptyBatch(t *testing.T) {
	api := &stubEarningsAPI{records: []models.RawRecord{}}
	svc := NewAnalyticsService(api, nil)

	summary, err := svc.BuildSummary(SummaryOptions{TopN: 5, IncludeBlocks: true})
	require.NoError(t, err)

	assert.Empty(t, summary.TopRevenuePerMile)
	assert.Empty(t, summary.EarningsByDay)
	assert.Empty(t, summary.EarningsByHour)
	require.Len(t, summary.TopTwoFourHourBlocks, 7)
	for _, pair := range summary.TopTwoFourHourBlocks {
		assert.Equal(t, -1, pair.FirstBlock.StartHour)
		assert.Equal(t, -1, pair.SecondBlock.StartHour)
	}
}

func TestBuildSummary_Idempotent(t *testing.T) {
	api := &stubEarningsAPI{records: sampleRecords()}
	svc := NewAnalyticsService(api, nil)

	first, err := svc.BuildSummary(SummaryOptions{TopN: 5, IncludeBlocks: true})
	require.NoError(t, err)
	second, err := svc.BuildSummary(SummaryOptions{TopN: 5, IncludeBlocks: true})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestFetchRecords_CacheReadThrough(t *testing.T) {
	api := &stubEarningsAPI{records: sampleRecords()}
	mockClient := db.NewMockRedisClient(context.Background())
	dao := redisdao.NewRedisSnapshotDAO(mockClient, 0)
	svc := NewAnalyticsService(api, dao)

	_, err := svc.BuildSummary(SummaryOptions{TopN: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls, "cold cache fetches upstream")

	_, err = svc.BuildSummary(SummaryOptions{TopN: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls, "second request is served from the snapshot cache")
}

func TestFetchRecords_UpstreamFailureNotMaskedByColdCache(t *testing.T) {
	api := &stubEarningsAPI{err: errors.New("connection refused")}
	mockClient := db.NewMockRedisClient(context.Background())
	dao := redisdao.NewRedisSnapshotDAO(mockClient, 0)
	svc := NewAnalyticsService(api, dao)

	_, err := svc.BuildSummary(SummaryOptions{TopN: 5})
	require.Error(t, err)
}
