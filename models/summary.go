package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// WindowResult describes a single 4-hour earning block. A pair with
// StartHour == -1 means the day had no data at all; EndHour is then -1
// as well and Earnings is 0.
type WindowResult struct {
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
	Earnings  float64 `json:"earnings"`
}

// DayWindowPair holds the best and second-best non-overlapping 4-hour
// blocks for one day.
type DayWindowPair struct {
	FirstBlock  WindowResult `json:"1st_block"`
	SecondBlock WindowResult `json:"2nd_block"`
}

// DayEarnings maps a canonical day name to a date-normalized average
// earnings value. Days with no records are absent.
type DayEarnings map[string]float64

// HourEarnings maps an hour of day (0-23) to a date-normalized average
// earnings value. Hours with no records are absent.
type HourEarnings map[int]float64

// DayHourTable is the joint (day, hour) earnings table. Day keys with
// no records are absent; present days may have sparse hour maps.
type DayHourTable map[string]HourEarnings

// DayWindows maps a canonical day name to its best window pair. Always
// carries all 7 days once computed.
type DayWindows map[string]DayWindowPair

// AnalyticsSummary is the top-level response of the analytics pipeline.
// Built fresh per request and handed straight to the HTTP layer.
type AnalyticsSummary struct {
	TopRevenuePerMile        []EnrichedRecord `json:"top_revenue_per_mile"`
	TopRevenuePerMinute      []EnrichedRecord `json:"top_revenue_per_minute"`
	EarningsByDay            DayEarnings      `json:"earnings_by_day"`
	EarningsByHour           HourEarnings     `json:"earnings_by_hour"`
	EarningsByHourForEachDay DayHourTable     `json:"earnings_by_hour_for_each_day"`
	TopTwoFourHourBlocks     DayWindows       `json:"top_two_four_hour_blocks,omitempty"`
}

// The custom marshalers below keep the wire format deterministic:
// day-keyed objects serialize Monday→Sunday and hour-keyed objects in
// numeric hour order, regardless of map iteration order. Running the
// pipeline twice on the same snapshot therefore yields byte-identical
// output.

func (d DayEarnings) MarshalJSON() ([]byte, error) {
	return marshalDayOrdered(func(day string) (interface{}, bool) {
		v, ok := d[day]
		return v, ok
	})
}

func (t DayHourTable) MarshalJSON() ([]byte, error) {
	return marshalDayOrdered(func(day string) (interface{}, bool) {
		v, ok := t[day]
		return v, ok
	})
}

func (w DayWindows) MarshalJSON() ([]byte, error) {
	return marshalDayOrdered(func(day string) (interface{}, bool) {
		v, ok := w[day]
		return v, ok
	})
}

func (h HourEarnings) MarshalJSON() ([]byte, error) {
	hours := make([]int, 0, len(h))
	for hour := range h {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, hour := range hours {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(hour)))
		buf.WriteByte(':')
		val, err := json.Marshal(h[hour])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalDayOrdered writes a JSON object whose keys follow the
// canonical Monday→Sunday order, skipping absent days.
func marshalDayOrdered(lookup func(day string) (interface{}, bool)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	for _, day := range DayNames {
		v, ok := lookup(day)
		if !ok {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(day))
		buf.WriteByte(':')
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
		written++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
