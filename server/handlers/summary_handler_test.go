package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NDNewell/earnings-analytics/models"
	services "github.com/NDNewell/earnings-analytics/service"
)

type stubEarningsAPI struct {
	records []models.RawRecord
	err     error
}

func (s *stubEarningsAPI) FetchRecords() ([]models.RawRecord, error) {
	return s.records, s.err
}

func newHandler(api *stubEarningsAPI) *EarningsHandler {
	return NewEarningsHandler(services.NewAnalyticsService(api, nil))
}

func TestGetSummary_Success(t *testing.T) {
	api := &stubEarningsAPI{records: []models.RawRecord{
		{Earnings: 22.5, Distance: "6.3", Duration: "00:25:00", DateRequested: "2023-05-01", TimeRequested: "08:15:00"},
		{Earnings: 41.2, Distance: "12.8", Duration: "00:52:10", DateRequested: "2023-05-02", TimeRequested: "17:20:00"},
	}}
	h := newHandler(api)

	req := httptest.NewRequest("GET", "/v1/earnings/summary", nil)
	rr := httptest.NewRecorder()
	h.GetSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	for _, key := range []string{
		"top_revenue_per_mile",
		"top_revenue_per_minute",
		"earnings_by_day",
		"earnings_by_hour",
		"earnings_by_hour_for_each_day",
	} {
		assert.Contains(t, body, key)
	}
	assert.NotContains(t, body, "top_two_four_hour_blocks")
}

func TestGetSummary_WithBlocks(t *testing.T) {
	api := &stubEarningsAPI{records: []models.RawRecord{
		{Earnings: 10, Distance: "2", Duration: "00:10:00", DateRequested: "2023-05-01", TimeRequested: "08:00:00"},
	}}
	h := newHandler(api)

	req := httptest.NewRequest("GET", "/v1/earnings/summary?blocks=true", nil)
	rr := httptest.NewRecorder()
	h.GetSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Blocks map[string]struct {
			First  models.WindowResult `json:"1st_block"`
			Second models.WindowResult `json:"2nd_block"`
		} `json:"top_two_four_hour_blocks"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Blocks, 7)
	assert.Equal(t, -1, body.Blocks["Sunday"].First.StartHour)
}

func TestGetSummary_TopNLimitsRankings(t *testing.T) {
	records := make([]models.RawRecord, 0, 6)
	for _, d := range []string{"1", "2", "3", "4", "5", "6"} {
		records = append(records, models.RawRecord{
			Earnings: 10, Distance: models.FlexString(d), Duration: "00:10:00",
			DateRequested: "2023-05-01", TimeRequested: "08:00:00",
		})
	}
	h := newHandler(&stubEarningsAPI{records: records})

	req := httptest.NewRequest("GET", "/v1/earnings/summary?top_n=2", nil)
	rr := httptest.NewRecorder()
	h.GetSummary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		TopMile []models.EnrichedRecord `json:"top_revenue_per_mile"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.TopMile, 2)
}

func TestGetSummary_InvalidTopN(t *testing.T) {
	h := newHandler(&stubEarningsAPI{})

	for _, arg := range []string{"top_n=abc", "top_n=-1"} {
		req := httptest.NewRequest("GET", "/v1/earnings/summary?"+arg, nil)
		rr := httptest.NewRecorder()
		h.GetSummary(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, arg)
		assert.Contains(t, rr.Body.String(), "Invalid argument top_n", arg)
	}
}

func TestGetSummary_UpstreamFailure(t *testing.T) {
	h := newHandler(&stubEarningsAPI{err: errors.New("unexpected status code: 502 Bad Gateway")})

	req := httptest.NewRequest("GET", "/v1/earnings/summary", nil)
	rr := httptest.NewRecorder()
	h.GetSummary(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to fetch data"}`, rr.Body.String())
}

func TestGetChart_RendersHTML(t *testing.T) {
	api := &stubEarningsAPI{records: []models.RawRecord{
		{Earnings: 10, Distance: "2", Duration: "00:10:00", DateRequested: "2023-05-01", TimeRequested: "08:00:00"},
	}}
	h := newHandler(api)

	req := httptest.NewRequest("GET", "/v1/earnings/chart", nil)
	rr := httptest.NewRecorder()
	h.GetChart(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(rr.Body.String(), "Earnings"), "chart HTML should mention the series")
}

func TestGetChart_UpstreamFailure(t *testing.T) {
	h := newHandler(&stubEarningsAPI{err: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/v1/earnings/chart", nil)
	rr := httptest.NewRecorder()
	h.GetChart(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Failed to fetch data"}`, rr.Body.String())
}

func TestPing(t *testing.T) {
	h := newHandler(&stubEarningsAPI{})

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	h.Ping(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "pong"}`, rr.Body.String())
}
