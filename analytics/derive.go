package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/NDNewell/earnings-analytics/models"
)

const secondsPerMinute = 60

// DeriveMetrics converts a batch of raw records into enriched records
// carrying the derived efficiency metrics. The output has the same
// length and order as the input; a record is never dropped here.
// Malformed fields degrade locally: a non-numeric distance becomes a
// missing value, a malformed duration counts as 0 seconds, and a
// malformed date or time marks day_of_week/hour as -1. Ratio metrics
// with a missing or non-positive denominator stay nil and are filtered
// by downstream consumers, not by the deriver.
func DeriveMetrics(records []models.RawRecord) []models.EnrichedRecord {
	enriched := make([]models.EnrichedRecord, len(records))
	for i, r := range records {
		distance := parseDistance(string(r.Distance))
		durationSeconds := parseDurationSeconds(r.Duration)

		e := models.EnrichedRecord{
			Earnings:        r.Earnings,
			Distance:        distance,
			Duration:        r.Duration,
			DurationSeconds: durationSeconds,
			DateRequested:   r.DateRequested,
			TimeRequested:   r.TimeRequested,
			DayOfWeek:       parseDayOfWeek(r.DateRequested),
			Hour:            parseHour(r.TimeRequested),
		}

		if distance != nil && *distance > 0 {
			rpm := r.Earnings / *distance
			e.RevenuePerMile = &rpm
		}
		if durationSeconds > 0 {
			rpm := r.Earnings / float64(durationSeconds) * secondsPerMinute
			e.RevenuePerMinute = &rpm
		}

		enriched[i] = e
	}
	return enriched
}

func parseDistance(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseDurationSeconds parses an "HH:MM:SS" span into whole seconds.
// Malformed input yields 0, which leaves revenue_per_minute undefined
// while keeping the record eligible for day/hour aggregation.
func parseDurationSeconds(raw string) int {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 3 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	s, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || h < 0 || m < 0 || s < 0 {
		return 0
	}
	return h*3600 + m*60 + s
}

// parseDayOfWeek maps an ISO date to 0=Monday ... 6=Sunday, or -1 when
// the date does not parse.
func parseDayOfWeek(raw string) int {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return -1
	}
	// time.Weekday counts 0=Sunday; shift so Monday is 0.
	return (int(t.Weekday()) + 6) % 7
}

// parseHour extracts the hour (0-23) from a time-of-day string, or -1
// when the time does not parse.
func parseHour(raw string) int {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Hour()
		}
	}
	return -1
}
