package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSeries = `{"time":["2024-01-01T00:00","2024-01-01T06:00","2024-01-02T00:00"],"temperature_2m":[5,7,3]}`

func TestRenderPreviewFromStdin(t *testing.T) {
	cmd := newRenderCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(sampleSeries))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-", "--width", "10"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"02 Jan", "01 Jan 2024 06:00", "Temperature: 7 °C"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRenderHTMLFromFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "series.json")
	if err := os.WriteFile(in, []byte(sampleSeries), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outPath := filepath.Join(dir, "chart.html")

	cmd := newRenderCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{in, "--html", outPath, "--timezone", "Europe/Berlin"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	// Zone-less timestamps stay wall-clock times in the chosen zone.
	if !strings.Contains(string(page), "01 Jan 2024 06:00") {
		t.Error("page is missing the tooltip title")
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	cmd := newRenderCmd()
	cmd.SetIn(strings.NewReader("not json"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected a decode error")
	}
}
