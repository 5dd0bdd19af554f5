package chart

import (
	"fmt"
	"strconv"
	"time"
)

// InvalidDate is what a timestamp that cannot be parsed formats to.
const InvalidDate = "Invalid Date"

const tooltipTimeLayout = "15:04"

// zoned layouts carry their own offset and are converted into the
// formatter's location.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// zone-less layouts are read as wall-clock times in the formatter's location.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Formatter turns raw series timestamps into axis and tooltip text.
type Formatter struct {
	loc *time.Location
}

// NewFormatter returns a Formatter that displays times in loc (UTC when nil).
func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{loc: loc}
}

func (f Formatter) location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

// Parse reads a timestamp. Values with a zone or offset, with or without
// seconds, are converted into the formatter's location.
func (f Formatter) Parse(ts string) (time.Time, bool) {
	loc := f.location()
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Axis formats ts as two-digit day and short month, e.g. "01 Jan".
func (f Formatter) Axis(ts string) string {
	t, ok := f.Parse(ts)
	if !ok {
		return InvalidDate
	}
	return dayMonth(t)
}

// Tooltip formats ts as date, year and 24-hour time, e.g. "01 Jan 2024 06:00".
func (f Formatter) Tooltip(ts string) string {
	t, ok := f.Parse(ts)
	if !ok {
		return InvalidDate + " " + InvalidDate
	}
	return fmt.Sprintf("%s %d %s", dayMonth(t), t.Year(), t.Format(tooltipTimeLayout))
}

// dayMonth is the en-GB short date, which abbreviates September as "Sept".
func dayMonth(t time.Time) string {
	month := t.Month().String()[:3]
	if t.Month() == time.September {
		month = "Sept"
	}
	return fmt.Sprintf("%02d %s", t.Day(), month)
}

// FormatAxis formats ts for the time axis in UTC.
func FormatAxis(ts string) string {
	return NewFormatter(nil).Axis(ts)
}

// FormatTooltip formats ts for a tooltip title in UTC.
func FormatTooltip(ts string) string {
	return NewFormatter(nil).Tooltip(ts)
}

// FormatValue renders v the way a browser prints a number: shortest form,
// no trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
