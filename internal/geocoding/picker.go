package geocoding

import (
	"context"
	"sync"
	"time"
)

// Picker debounces location changes: each Move restarts the quiet period
// and only the last point is resolved once it elapses.
type Picker struct {
	geocoder  ReverseGeocoder
	delay     time.Duration
	timeout   time.Duration
	onResolve func(Location)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewPicker creates a picker reporting resolved locations to onResolve
func NewPicker(g ReverseGeocoder, delay time.Duration, onResolve func(Location)) *Picker {
	return &Picker{
		geocoder:  g,
		delay:     delay,
		timeout:   10 * time.Second,
		onResolve: onResolve,
	}
}

// Move records a new point and restarts the debounce timer
func (p *Picker) Move(lat, lng float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.timer = time.AfterFunc(p.delay, func() { p.fire(gen, lat, lng) })
}

func (p *Picker) fire(gen uint64, lat, lng float64) {
	if !p.current(gen) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	loc := Resolve(ctx, p.geocoder, lat, lng)

	// A newer Move during the lookup supersedes this result.
	if !p.current(gen) {
		return
	}
	p.onResolve(loc)
}

func (p *Picker) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.stopped && gen == p.gen
}

// Stop cancels any pending lookup. Later calls to Move are ignored.
func (p *Picker) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
	}
}
