package models

// DayNames maps the pipeline's day-of-week index (0 = Monday ... 6 =
// Sunday) to the canonical calendar name. Read-only process-wide state.
var DayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayName returns the canonical name for a day-of-week index, or ""
// when the index is out of range (e.g. the -1 marker for records whose
// date could not be parsed).
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek >= len(DayNames) {
		return ""
	}
	return DayNames[dayOfWeek]
}
