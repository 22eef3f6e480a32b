package models

import (
	"encoding/json"
	"strings"
)

// FlexString accepts a JSON string, number, or null and keeps the raw
// textual form. The upstream earnings API is known to send distance as
// either a number or arbitrary string garbage ("N/A", "", ...), so the
// coercion to a numeric value is deferred to the metric deriver.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// bare number, keep its textual form
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// RawRecord is one trip/earning event exactly as returned by the
// upstream earnings API. Immutable once received.
type RawRecord struct {
	Earnings      float64    `json:"earnings"`
	Distance      FlexString `json:"distance"`
	Duration      string     `json:"duration"`
	DateRequested string     `json:"date_requested"`
	TimeRequested string     `json:"time_requested"`
}

// EnrichedRecord is a RawRecord plus the derived efficiency metrics.
// Undefined metrics (missing or non-positive denominators) are nil and
// serialize as JSON null; they are filtered out by consumers, never by
// the deriver itself.
type EnrichedRecord struct {
	Earnings         float64  `json:"earnings"`
	Distance         *float64 `json:"distance"`
	Duration         string   `json:"duration"`
	DurationSeconds  int      `json:"duration_seconds"`
	DateRequested    string   `json:"date_requested"`
	TimeRequested    string   `json:"time_requested"`
	RevenuePerMile   *float64 `json:"revenue_per_mile"`
	RevenuePerMinute *float64 `json:"revenue_per_minute"`
	DayOfWeek        int      `json:"day_of_week"`
	Hour             int      `json:"hour"`
}
