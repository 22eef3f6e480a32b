package earnings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NDNewell/earnings-analytics/api"
)

func TestFetchRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/earnings" {
			t.Errorf("Expected endpoint '/earnings', got '%s'", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"earnings": 22.5, "distance": 6.3, "duration": "00:25:00", "date_requested": "2023-05-01", "time_requested": "08:15:00"},
			{"earnings": 30, "distance": "N/A", "duration": "00:30:00", "date_requested": "2023-05-01", "time_requested": "14:05:00"}
		]`))
	}))
	defer srv.Close()

	client := NewEarningsApiClient(api.NewHTTPClient(srv.URL))

	records, err := client.FetchRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 22.5, records[0].Earnings)
	assert.Equal(t, "6.3", string(records[0].Distance))
	assert.Equal(t, "N/A", string(records[1].Distance))
	assert.Equal(t, "00:30:00", records[1].Duration)
}

func TestFetchRecords_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	}))
	defer srv.Close()

	client := NewEarningsApiClient(api.NewHTTPClient(srv.URL))

	records, err := client.FetchRecords()
	assert.Nil(t, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestFetchRecords_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewEarningsApiClient(api.NewHTTPClient(srv.URL))

	_, err := client.FetchRecords()
	require.Error(t, err)
}
