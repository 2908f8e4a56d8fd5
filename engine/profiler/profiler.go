// Package profiler reports camera tick throughput and memory statistics to a logger.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, time spent inside ticks and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	logger         *log.Logger
	now            func() time.Time
	tickCount      int
	busy           time.Duration
	slowest        time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second and the logger
// to log.Default().
//
// Parameters:
//   - options: variadic list of ProfilerOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         log.Default(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Begin marks the start of a tick.
//
// Returns:
//   - time.Time: the start stamp to hand to End
func (p *Profiler) Begin() time.Time {
	return p.now()
}

// End records a tick that started at start and logs statistics when the update interval has
// elapsed. Statistics include ticks per second, average and slowest tick time, heap usage,
// allocation rate and GC count.
//
// Parameters:
//   - start: the stamp returned by Begin
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) End(start time.Time) bool {
	currentTime := p.now()
	spent := currentTime.Sub(start)
	p.tickCount++
	p.busy += spent
	p.slowest = max(p.slowest, spent)

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	avgUs := float64(p.busy.Microseconds()) / float64(p.tickCount)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	p.logger.Printf("[Profiler] Ticks/s: %.2f | Tick: avg %.1f µs, max %d µs | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		tps, avgUs, p.slowest.Microseconds(), allocMB, allocRateMB, p.memStats.NumGC-p.lastGCCount)

	p.tickCount = 0
	p.busy = 0
	p.slowest = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(p *Profiler)

// WithLogger sets the logger stats are written to.
func WithLogger(l *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithInterval sets how often stats are logged. Non-positive values are ignored.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
