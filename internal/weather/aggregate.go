package weather

import "sort"

// AggregateSeries combines multiple provider series into a single Series.
// Temperatures sharing a timestamp are averaged, skipping missing samples;
// a timestamp no provider has a value for stays missing. The result is
// ordered by timestamp. A single input is returned unchanged.
func AggregateSeries(inputs []ProviderSeries) (Series, []string) {
	if len(inputs) == 0 {
		return Series{Time: []string{}, Temperature2m: []*float64{}}, nil
	}

	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.ProviderName)
	}

	if len(inputs) == 1 {
		return inputs[0].Series, names
	}

	var (
		sums   = make(map[string]float64)
		counts = make(map[string]int)
	)

	for _, in := range inputs {
		s := in.Series
		// Samples without a matching temperature are skipped.
		n := len(s.Time)
		if len(s.Temperature2m) < n {
			n = len(s.Temperature2m)
		}
		for i := 0; i < n; i++ {
			ts := s.Time[i]
			if _, ok := counts[ts]; !ok {
				counts[ts] = 0
			}
			if v := s.Temperature2m[i]; v != nil {
				sums[ts] += *v
				counts[ts]++
			}
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := Series{
		Time:          make([]string, 0, len(keys)),
		Temperature2m: make([]*float64, 0, len(keys)),
	}
	for _, k := range keys {
		out.Time = append(out.Time, k)
		if counts[k] == 0 {
			out.Temperature2m = append(out.Temperature2m, nil)
			continue
		}
		out.Temperature2m = append(out.Temperature2m, Temp(sums[k]/float64(counts[k])))
	}

	return out, names
}
