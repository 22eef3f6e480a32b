package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/NDNewell/earnings-analytics/models"
)

// PlotEarningsByHour renders the date-normalized earnings-by-hour view
// as an HTML bar chart. Hours absent from the input render as zero so
// the 24-hour axis stays contiguous.
func PlotEarningsByHour(hours models.HourEarnings, w io.Writer) error {
	labels := make([]string, 24)
	values := make([]opts.BarData, 24)
	for h := 0; h < 24; h++ {
		labels[h] = fmt.Sprintf("%02d:00", h)
		values[h] = opts.BarData{Value: hours[h]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Earnings By Hour",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Average earnings by hour of day",
			Subtitle: "normalized by distinct calendar dates per hour",
		}),
	)

	bar.SetXAxis(labels).AddSeries("Earnings", values)

	return bar.Render(w)
}
