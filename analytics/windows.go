package analytics

import (
	"math"
	"sort"

	"github.com/NDNewell/earnings-analytics/models"
)

const (
	// windowSpan is the length of one earning block in hours.
	windowSpan = 4
	// lastWindowStart is the last candidate start hour: a block never
	// wraps past hour 23, so starts run 0..20.
	lastWindowStart = 24 - windowSpan
)

type window struct {
	start    int
	earnings float64
}

// TopTwoBlocks computes, for every canonical day, the two most
// lucrative non-overlapping 4-hour blocks from the sparse (day, hour)
// earnings table. Hours absent from the table count as zero. A day
// with no data at all yields a pair of no-data windows (start_hour -1).
//
// Selection is done in two passes: score all 21 candidate windows,
// then sort by earnings descending (earlier start wins ties), take the
// best, and take the first remaining candidate at least 4 hours away
// from it. Unlike a single greedy scan that checks separation against
// a moving counterpart, this guarantees the returned pair never
// overlaps.
func TopTwoBlocks(table models.DayHourTable) models.DayWindows {
	out := make(models.DayWindows, len(models.DayNames))
	for _, day := range models.DayNames {
		out[day] = bestPairForDay(table[day])
	}
	return out
}

func bestPairForDay(hours models.HourEarnings) models.DayWindowPair {
	best := window{start: -1, earnings: math.Inf(-1)}
	second := window{start: -1, earnings: math.Inf(-1)}

	if len(hours) > 0 {
		candidates := scoreWindows(hours)
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].earnings > candidates[j].earnings
		})
		best = candidates[0]
		for _, w := range candidates[1:] {
			if absInt(w.start-best.start) >= windowSpan {
				second = w
				break
			}
		}
	}

	return models.DayWindowPair{
		FirstBlock:  toResult(best),
		SecondBlock: toResult(second),
	}
}

// scoreWindows returns all candidate windows in ascending start order,
// each scored as the sum of its four hourly values with missing hours
// defaulting to zero.
func scoreWindows(hours models.HourEarnings) []window {
	candidates := make([]window, 0, lastWindowStart+1)
	for s := 0; s <= lastWindowStart; s++ {
		var sum float64
		for h := s; h < s+windowSpan; h++ {
			sum += hours[h]
		}
		candidates = append(candidates, window{start: s, earnings: sum})
	}
	return candidates
}

// toResult converts the internal scan state to the wire shape. The
// -Inf sentinel cannot be serialized as JSON, so a no-data window goes
// out as {-1, -1, 0}.
func toResult(w window) models.WindowResult {
	if w.start < 0 {
		return models.WindowResult{StartHour: -1, EndHour: -1, Earnings: 0}
	}
	return models.WindowResult{
		StartHour: w.start,
		EndHour:   w.start + windowSpan,
		Earnings:  w.earnings,
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
