package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NDNewell/earnings-analytics/analytics"
	services "github.com/NDNewell/earnings-analytics/service"
	"github.com/NDNewell/earnings-analytics/util"
)

const (
	TOP_N_QUERY_ARG  = "top_n"
	BLOCKS_QUERY_ARG = "blocks"
)

// fetchFailedPayload mirrors the upstream proxy's historical error
// contract: a client-error status with {"error": "Failed to fetch data"}.
var fetchFailedPayload = map[string]string{"error": "Failed to fetch data"}

type EarningsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewEarningsHandler(analyticsService *services.AnalyticsService) *EarningsHandler {
	return &EarningsHandler{analyticsService: analyticsService}
}

// GetSummary handles GET /v1/earnings/summary.
func (h *EarningsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	opts, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Run the pipeline on a fresh snapshot
	summary, err := h.analyticsService.BuildSummary(opts)
	if err != nil {
		log.Println("Error building earnings summary:", err)
		writeFetchFailed(w)
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetChart handles GET /v1/earnings/chart, rendering the earnings-by-hour
// view as an HTML bar chart.
func (h *EarningsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.BuildSummary(services.SummaryOptions{})
	if err != nil {
		log.Println("Error building earnings summary for chart:", err)
		writeFetchFailed(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := util.PlotEarningsByHour(summary.EarningsByHour, w); err != nil {
		log.Println("Error rendering earnings chart:", err)
	}
}

// Ping handles GET /ping
func (h *EarningsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *EarningsHandler) parseArgs(vals url.Values, w http.ResponseWriter) (services.SummaryOptions, bool) {
	opts := services.SummaryOptions{TopN: analytics.DefaultTopN}

	if v := vals.Get(TOP_N_QUERY_ARG); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "Invalid argument "+TOP_N_QUERY_ARG, http.StatusBadRequest)
			return opts, false
		}
		opts.TopN = n
	}
	if v := vals.Get(BLOCKS_QUERY_ARG); v != "" {
		opts.IncludeBlocks, _ = strconv.ParseBool(v)
	}
	return opts, true
}

func writeFetchFailed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(fetchFailedPayload)
}
