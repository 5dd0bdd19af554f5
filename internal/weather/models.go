package weather

import (
	"fmt"
	"time"
)

// TimeLayout is the zone-less hourly timestamp layout used by Open-Meteo
// and by every series this service produces.
const TimeLayout = "2006-01-02T15:04"

// Series is an index-aligned pair of hourly timestamps and temperatures.
// Time[i] belongs to Temperature2m[i]. A nil temperature is a missing
// sample and round-trips as JSON null.
type Series struct {
	Time          []string   `json:"time"`
	Temperature2m []*float64 `json:"temperature_2m"`
}

// Temp returns v as a present sample.
func Temp(v float64) *float64 {
	return &v
}

// Temps returns vs as present samples.
func Temps(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i, v := range vs {
		out[i] = Temp(v)
	}
	return out
}

// Location represents a logical place for which we track temperatures.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f:%.4f", l.Latitude, l.Longitude)
}

// String returns the name if set, otherwise the key.
func (l Location) String() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Key()
}

// StoredSeries is a series as kept by the store.
type StoredSeries struct {
	ID        string    `json:"id"`
	Location  *Location `json:"location,omitempty"`
	Providers []string  `json:"providers,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"` // always UTC
	Days      int       `json:"days,omitempty"`
	Series
}
