// Package chart builds the Chart.js line chart configuration for an hourly
// temperature series: day-collapsed axis labels, tooltip text, and the fixed
// dark-theme styling. Rendering itself is left to Chart.js in the browser.
package chart

// Styling shared by the dataset and the options.
const (
	AccentColor     = "rgb(10, 132, 255)"
	AccentFillColor = "rgba(10, 132, 255, 0.5)"
	PointColor      = "#ffffff"
	TextColor       = "#ffffff"
	GridColor       = "#444444"

	DatasetLabel = "Temperature"
	XAxisTitle   = "Time"
	YAxisTitle   = "Temperature (°C)"
	Unit         = "°C"
)

// Config is a Chart.js chart configuration.
// Check: https://www.chartjs.org/docs/latest/configuration/.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label                string     `json:"label"`
	// Data holds nil where a sample is missing; it marshals as null and
	// Chart.js leaves a gap.
	Data                 []*float64 `json:"data"`
	BorderColor          string     `json:"borderColor"`
	BackgroundColor      string     `json:"backgroundColor"`
	PointBackgroundColor string     `json:"pointBackgroundColor"`
	PointBorderColor     string     `json:"pointBorderColor"`
}

type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Plugins             Plugins `json:"plugins"`
	Scales              Scales  `json:"scales"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Position string       `json:"position"`
	Labels   LegendLabels `json:"labels"`
}

type LegendLabels struct {
	Color string `json:"color"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Title       AxisTitle `json:"title"`
	Ticks       Ticks     `json:"ticks"`
	Grid        Grid      `json:"grid"`
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Color   string `json:"color"`
}

type Ticks struct {
	Color string `json:"color"`
}

type Grid struct {
	Color string `json:"color"`
}

func axis(title string) Axis {
	return Axis{
		Title: AxisTitle{Display: true, Text: title, Color: TextColor},
		Ticks: Ticks{Color: TextColor},
		Grid:  Grid{Color: GridColor},
	}
}

func defaultOptions() Options {
	y := axis(YAxisTitle)
	y.BeginAtZero = true

	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: Plugins{
			Legend: Legend{
				Position: "top",
				Labels:   LegendLabels{Color: TextColor},
			},
		},
		Scales: Scales{
			X: axis(XAxisTitle),
			Y: y,
		},
	}
}
