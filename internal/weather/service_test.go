package weather_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/i474232898/temperature-chart/internal/store"
	"github.com/i474232898/temperature-chart/internal/weather"
)

type fakeProvider struct {
	name   string
	series weather.Series
	err    error
	calls  int
	days   []int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchSeries(ctx context.Context, loc weather.Location, days int) (weather.Series, error) {
	f.calls++
	f.days = append(f.days, days)
	return f.series, f.err
}

func TestAggregateSeries(t *testing.T) {
	single := weather.Series{Time: []string{"2024-01-01T01:00", "2024-01-01T00:00"}, Temperature2m: weather.Temps(2, 1)}
	got, names := weather.AggregateSeries([]weather.ProviderSeries{{ProviderName: "a", Series: single}})
	if !reflect.DeepEqual(got, single) || !reflect.DeepEqual(names, []string{"a"}) {
		t.Errorf("single input should pass through, got %+v %v", got, names)
	}

	got, names = weather.AggregateSeries([]weather.ProviderSeries{
		{ProviderName: "a", Series: weather.Series{
			Time:          []string{"2024-01-01T00:00", "2024-01-01T01:00"},
			Temperature2m: weather.Temps(2, 4),
		}},
		{ProviderName: "b", Series: weather.Series{
			Time:          []string{"2024-01-01T01:00", "2024-01-01T02:00", "2024-01-01T03:00"},
			Temperature2m: weather.Temps(6, 8),
		}},
	})
	want := weather.Series{
		Time:          []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"},
		Temperature2m: weather.Temps(2, 5, 8),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("names = %v", names)
	}

	got, _ = weather.AggregateSeries([]weather.ProviderSeries{
		{ProviderName: "a", Series: weather.Series{
			Time:          []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"},
			Temperature2m: []*float64{weather.Temp(-4), nil, nil},
		}},
		{ProviderName: "b", Series: weather.Series{
			Time:          []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"},
			Temperature2m: []*float64{weather.Temp(-2), weather.Temp(-3), nil},
		}},
	})
	want = weather.Series{
		Time:          []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"},
		Temperature2m: []*float64{weather.Temp(-3), weather.Temp(-3), nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing samples: got %+v, want %+v", got, want)
	}
}

func TestServiceFetchAndStore(t *testing.T) {
	mem := store.NewMemoryStore(10, time.Hour)
	ok := &fakeProvider{name: "ok", series: weather.Series{Time: []string{"2024-01-01T00:00"}, Temperature2m: weather.Temps(5)}}
	bad := &fakeProvider{name: "bad", err: errors.New("boom")}
	svc := weather.NewService(mem, []weather.Provider{ok, bad}, 3)

	loc := weather.Location{Name: "Berlin", Latitude: 52.52, Longitude: 13.41}
	stored, err := svc.FetchAndStore(context.Background(), loc, 0)
	if err != nil {
		t.Fatalf("FetchAndStore: %v", err)
	}
	if stored.ID == "" || !reflect.DeepEqual(stored.Providers, []string{"ok"}) {
		t.Errorf("unexpected stored series: %+v", stored)
	}

	// Latest serves from the store without calling providers again.
	latest, err := svc.Latest(context.Background(), loc, 0)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != stored.ID || ok.calls != 1 {
		t.Errorf("expected cached series, got %s after %d calls", latest.ID, ok.calls)
	}
}

func TestServiceMergesProvidersOnLocalTime(t *testing.T) {
	// Both providers report wall-clock time at the location, so equal
	// timestamps line up and are averaged rather than interleaved.
	local := []string{"2024-01-01T00:00", "2024-01-01T01:00"}
	meteo := &fakeProvider{name: "openmeteo", series: weather.Series{Time: local, Temperature2m: []*float64{weather.Temp(-4), nil}}}
	keyed := &fakeProvider{name: "weatherapi", series: weather.Series{Time: local, Temperature2m: weather.Temps(-2, -1)}}
	svc := weather.NewService(store.NewMemoryStore(10, time.Hour), []weather.Provider{meteo, keyed}, 2)

	loc := weather.Location{Name: "Tokyo", Latitude: 35.68, Longitude: 139.69}
	stored, err := svc.FetchAndStore(context.Background(), loc, 0)
	if err != nil {
		t.Fatalf("FetchAndStore: %v", err)
	}

	want := weather.Series{Time: local, Temperature2m: weather.Temps(-3, -1)}
	if !reflect.DeepEqual(stored.Series, want) {
		t.Errorf("got %+v, want %+v", stored.Series, want)
	}
	if stored.Days != 2 || len(stored.Providers) != 2 {
		t.Errorf("unexpected stored series: %+v", stored)
	}
}

func TestServiceLatestRefetchesOtherHorizon(t *testing.T) {
	p := &fakeProvider{name: "ok", series: weather.Series{Time: []string{"2024-01-01T00:00"}, Temperature2m: weather.Temps(5)}}
	svc := weather.NewService(store.NewMemoryStore(10, time.Hour), []weather.Provider{p}, 7)
	loc := weather.Location{Latitude: 52.52, Longitude: 13.41}

	week, err := svc.Latest(context.Background(), loc, 0)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	short, err := svc.Latest(context.Background(), loc, 2)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if short.ID == week.ID || short.Days != 2 {
		t.Errorf("expected a fresh 2 day series, got %+v", short)
	}
	again, err := svc.Latest(context.Background(), loc, 2)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if again.ID != short.ID {
		t.Errorf("expected cached 2 day series, got %s", again.ID)
	}
	if !reflect.DeepEqual(p.days, []int{7, 2}) {
		t.Errorf("provider asked for days %v", p.days)
	}
}

func TestServiceAllProvidersFail(t *testing.T) {
	mem := store.NewMemoryStore(10, 0)
	svc := weather.NewService(mem, []weather.Provider{&fakeProvider{name: "bad", err: errors.New("boom")}}, 1)

	loc := weather.Location{Latitude: 1, Longitude: 2}
	if _, err := svc.FetchAndStore(context.Background(), loc, 1); err == nil {
		t.Fatal("expected an error when every provider fails")
	}
	if _, err := mem.GetLatest(loc); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("nothing should be stored, got %v", err)
	}

	empty := weather.NewService(mem, nil, 1)
	if _, err := empty.FetchAndStore(context.Background(), loc, 1); err == nil {
		t.Fatal("expected an error without providers")
	}
}

func TestServicePutAndGet(t *testing.T) {
	svc := weather.NewService(store.NewMemoryStore(0, 0), nil, 1)
	in := weather.Series{Time: []string{"2024-01-01T00:00"}, Temperature2m: weather.Temps(1)}

	stored := svc.Put(in)
	got, err := svc.Get(stored.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got.Series, in) || got.Location != nil {
		t.Errorf("unexpected series: %+v", got)
	}
}
