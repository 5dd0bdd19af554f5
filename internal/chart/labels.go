package chart

// DeriveLabels returns one axis label per timestamp. A label is shown only
// where the day changes from the previous timestamp; every other position
// gets "".
func (f Formatter) DeriveLabels(times []string) []string {
	labels := make([]string, len(times))
	prev := ""
	for i, ts := range times {
		day := f.Axis(ts)
		if i == 0 || day != prev {
			labels[i] = day
		}
		prev = day
	}
	return labels
}

// DeriveLabels is Formatter.DeriveLabels in UTC.
func DeriveLabels(times []string) []string {
	return NewFormatter(nil).DeriveLabels(times)
}
