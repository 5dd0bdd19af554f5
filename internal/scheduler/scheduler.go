package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/i474232898/temperature-chart/internal/weather"
)

// Refresher fetches and stores a fresh series for a location.
type Refresher interface {
	FetchAndStore(ctx context.Context, loc weather.Location, days int) (weather.StoredSeries, error)
}

// Scheduler periodically refreshes temperature series for configured locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	locations []weather.Location
	interval  time.Duration
	days      int
}

// New creates a new Scheduler.
func New(locations []weather.Location, interval time.Duration, days int, service Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		interval:  interval,
		days:      days,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce refreshes every location concurrently and waits for all of them.
func (s *Scheduler) RunOnce() {
	log.Println("scheduler: running temperature refresh job")

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := s.service.FetchAndStore(ctx, loc, s.days); err != nil {
				log.Printf("scheduler: refresh failed for %s: %v", loc, err)
			}
		}()
	}
	wg.Wait()
	log.Println("scheduler: completed temperature refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
