package chart

import (
	"fmt"

	"github.com/i474232898/temperature-chart/internal/weather"
)

// Tooltip holds the hover text for every sample, looked up by data index.
type Tooltip struct {
	Titles []string `json:"titles"`
	Labels []string `json:"labels"`
}

// View is everything a Chart.js page needs to draw one series.
type View struct {
	Config  Config  `json:"config"`
	Tooltip Tooltip `json:"tooltip"`
}

// Build derives labels and tooltip text from series and returns a fresh view.
// The series is not modified and is not validated: labels follow Time and
// dataset values follow Temperature2m. A missing sample stays null in the
// dataset and gets an empty tooltip label.
func (f Formatter) Build(series weather.Series) View {
	data := series.Temperature2m
	if data == nil {
		data = []*float64{}
	}

	tooltip := Tooltip{
		Titles: make([]string, len(data)),
		Labels: make([]string, len(data)),
	}
	for i, v := range data {
		tooltip.Titles[i] = f.TooltipTitle(series.Time, i)
		if v != nil {
			tooltip.Labels[i] = TooltipLabel(*v)
		}
	}

	return View{
		Config: Config{
			Type: "line",
			Data: Data{
				Labels: f.DeriveLabels(series.Time),
				Datasets: []Dataset{
					{
						Label:                DatasetLabel,
						Data:                 data,
						BorderColor:          AccentColor,
						BackgroundColor:      AccentFillColor,
						PointBackgroundColor: PointColor,
						PointBorderColor:     AccentColor,
					},
				},
			},
			Options: defaultOptions(),
		},
		Tooltip: tooltip,
	}
}

// Build is Formatter.Build in UTC.
func Build(series weather.Series) View {
	return NewFormatter(nil).Build(series)
}

// TooltipTitle formats the raw timestamp at index i. An index past the end
// of times formats as an invalid date.
func (f Formatter) TooltipTitle(times []string, i int) string {
	if i < 0 || i >= len(times) {
		return InvalidDate + " " + InvalidDate
	}
	return f.Tooltip(times[i])
}

// TooltipLabel is the tooltip body for a temperature value.
func TooltipLabel(v float64) string {
	return fmt.Sprintf("%s: %s %s", DatasetLabel, FormatValue(v), Unit)
}
