package chart

import (
	"bytes"
	"fmt"
	"html/template"
)

// ChartJSURL is the Chart.js bundle loaded by the page.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4"

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>{{ .Title }}</title>
	<script src="{{ .ScriptURL }}"></script>
	<style>
	html, body { margin: 0; height: 100%; background: #1c1c1e; color: #ffffff; font-family: sans-serif; }
	h1 { font-size: 1.1rem; font-weight: 500; margin: 0; padding: 1rem 1.5rem 0; }
	.chart { position: relative; width: 100%; height: calc(100% - 4rem); padding: 0 1.5rem 1.5rem; box-sizing: border-box; }
	</style>
</head>
<body>
	<h1>{{ .Title }}</h1>
	<div class="chart"><canvas id="temperature-chart"></canvas></div>
	<script>
	const view = {{ .View }};
	view.config.options.plugins.tooltip = {
		callbacks: {
			title: (items) => view.tooltip.titles[items[0].dataIndex],
			label: (item) => view.tooltip.labels[item.dataIndex],
		},
	};
	new Chart(document.getElementById("temperature-chart"), view.config);
	</script>
</body>
</html>
`))

// Page renders an HTML document that draws view with Chart.js.
func Page(title string, view View) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title     string
		ScriptURL string
		View      View
	}{
		Title:     title,
		ScriptURL: ChartJSURL,
		View:      view,
	})
	if err != nil {
		return nil, fmt.Errorf("render chart page: %w", err)
	}
	return buf.Bytes(), nil
}
