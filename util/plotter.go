package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// MaxPlottedReadings is how many readings the chart shows.
const MaxPlottedReadings = 7

// PlotReadings renders a line chart of up to MaxPlottedReadings readings as
// HTML into w. Only the most recent readings are kept when more are given.
func PlotReadings(w io.Writer, readings []float64) error {
	if len(readings) > MaxPlottedReadings {
		readings = readings[len(readings)-MaxPlottedReadings:]
	}

	labels := make([]string, len(readings))
	points := make([]opts.LineData, len(readings))
	for i, v := range readings {
		labels[i] = fmt.Sprintf("Reading %d", i+1)
		points[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Blood Glucose Readings",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Blood Glucose Readings",
			Subtitle: fmt.Sprintf("Last %d readings (mg/dL)", len(readings)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mg/dL"}),
	)

	// Reference lines at the classifier's band edges.
	line.SetXAxis(labels).AddSeries("Glucose", points,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false), ShowSymbol: opts.Bool(true)}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "Hypoglycemia", YAxis: 70},
			opts.MarkLineNameYAxisItem{Name: "Fasting prediabetes", YAxis: 100},
			opts.MarkLineNameYAxisItem{Name: "Postprandial prediabetes", YAxis: 140},
			opts.MarkLineNameYAxisItem{Name: "Postprandial diabetes", YAxis: 200},
		),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
