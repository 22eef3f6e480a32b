package analytics

import (
	"github.com/NDNewell/earnings-analytics/models"
)

// Aggregates bundles the three time-bucketed views over one record
// batch. All three are sparse: a bucket with no records is absent, not
// zero. Consumers that need a dense view (the window optimizer) apply
// their own zero default.
type Aggregates struct {
	EarningsByDay  models.DayEarnings
	EarningsByHour models.HourEarnings
	DayHourTable   models.DayHourTable
}

// bucketAcc accumulates total earnings and the set of distinct calendar
// dates seen in one bucket.
type bucketAcc struct {
	sum   float64
	dates map[string]struct{}
}

func (b *bucketAcc) add(earnings float64, date string) {
	b.sum += earnings
	b.dates[date] = struct{}{}
}

func (b *bucketAcc) average() float64 {
	return b.sum / float64(len(b.dates))
}

// Aggregate buckets records by day-of-week, hour-of-day, and their
// combination. Each bucket's value is summed earnings divided by the
// count of distinct calendar dates contributing to it, i.e. the
// typical earnings per occurrence of that bucket rather than per
// record. Records whose day or hour could not be derived (-1) are
// skipped for the affected dimension.
func Aggregate(records []models.EnrichedRecord) Aggregates {
	byDay := make(map[int]*bucketAcc)
	byHour := make(map[int]*bucketAcc)
	joint := make(map[[2]int]*bucketAcc)

	for _, r := range records {
		if r.DayOfWeek >= 0 {
			accFor(byDay, r.DayOfWeek).add(r.Earnings, r.DateRequested)
		}
		if r.Hour >= 0 {
			accFor(byHour, r.Hour).add(r.Earnings, r.DateRequested)
		}
		if r.DayOfWeek >= 0 && r.Hour >= 0 {
			accForJoint(joint, r.DayOfWeek, r.Hour).add(r.Earnings, r.DateRequested)
		}
	}

	out := Aggregates{
		EarningsByDay:  make(models.DayEarnings, len(byDay)),
		EarningsByHour: make(models.HourEarnings, len(byHour)),
		DayHourTable:   make(models.DayHourTable, 7),
	}
	for day, acc := range byDay {
		out.EarningsByDay[models.DayName(day)] = acc.average()
	}
	for hour, acc := range byHour {
		out.EarningsByHour[hour] = acc.average()
	}
	for key, acc := range joint {
		name := models.DayName(key[0])
		if out.DayHourTable[name] == nil {
			out.DayHourTable[name] = make(models.HourEarnings)
		}
		out.DayHourTable[name][key[1]] = acc.average()
	}
	return out
}

func accFor(m map[int]*bucketAcc, key int) *bucketAcc {
	acc, ok := m[key]
	if !ok {
		acc = &bucketAcc{dates: make(map[string]struct{})}
		m[key] = acc
	}
	return acc
}

func accForJoint(m map[[2]int]*bucketAcc, day, hour int) *bucketAcc {
	key := [2]int{day, hour}
	acc, ok := m[key]
	if !ok {
		acc = &bucketAcc{dates: make(map[string]struct{})}
		m[key] = acc
	}
	return acc
}
