package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
	"github.com/lixenwraith/vi-life/status"
)

// ClockScheduler advances an Engine on a fixed tick
// Simulation cadence is independent of display cadence: the viewer reads
// snapshots whenever it draws and uses Updates only as a redraw hint
type ClockScheduler struct {
	engine   *Engine
	interval time.Duration

	paused atomic.Bool

	// Tick counter and rate window
	tickCount atomic.Uint64
	rateStart time.Time
	rateCount uint64
	statTicks *atomic.Int64
	statRate  *status.AtomicFloat

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	stepChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	// Update signal, buffered 1 and coalesced
	updates chan struct{}

	errMu sync.Mutex
	err   error
}

// NewClockScheduler creates a scheduler advancing e every interval
// reg may be nil
func NewClockScheduler(e *Engine, interval time.Duration, reg *status.Registry) *ClockScheduler {
	if interval < parameter.MinSimulationInterval {
		interval = parameter.MinSimulationInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &ClockScheduler{
		engine:    e,
		interval:  interval,
		statTicks: reg.Ints.Get(parameter.MetricClockTicks),
		statRate:  reg.Floats.Get(parameter.MetricStepsPerSec),
		stopChan:  make(chan struct{}),
		stepChan:  make(chan struct{}, 1),
		updates:   make(chan struct{}, 1),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight generation
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.wg.Wait()
		cs.running.Store(false)
	})
}

// Pause suspends ticking; StepOnce still advances
func (cs *ClockScheduler) Pause() {
	cs.paused.Store(true)
}

// Resume continues ticking
func (cs *ClockScheduler) Resume() {
	cs.paused.Store(false)
}

// TogglePause flips the paused state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.paused.Load()
		if cs.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether ticking is suspended
func (cs *ClockScheduler) Paused() bool {
	return cs.paused.Load()
}

// StepOnce requests a single generation, intended for paused single-stepping
// Requests coalesce if one is already pending
func (cs *ClockScheduler) StepOnce() {
	select {
	case cs.stepChan <- struct{}{}:
	default:
	}
}

// Updates is signalled after each published generation and when the loop stops on error
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updates
}

// Ticks returns the number of generations advanced by this scheduler
func (cs *ClockScheduler) Ticks() uint64 {
	return cs.tickCount.Load()
}

// Err returns the engine failure that stopped the loop, if any
func (cs *ClockScheduler) Err() error {
	cs.errMu.Lock()
	defer cs.errMu.Unlock()
	return cs.err
}

// schedulerLoop ticks until stopped or the engine fails
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	cs.rateStart = time.Now()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-cs.stepChan:
		case <-ticker.C:
			if cs.paused.Load() {
				continue
			}
		}

		if !cs.processTick() {
			return
		}
	}
}

// processTick advances one generation and returns false on a fatal engine error
func (cs *ClockScheduler) processTick() bool {
	if err := cs.engine.Advance(); err != nil {
		cs.errMu.Lock()
		cs.err = err
		cs.errMu.Unlock()
		cs.notify()
		return false
	}

	cs.statTicks.Store(int64(cs.tickCount.Add(1)))

	cs.rateCount++
	if elapsed := time.Since(cs.rateStart); elapsed >= time.Second {
		cs.statRate.Store(float64(cs.rateCount) / elapsed.Seconds())
		cs.rateStart = time.Now()
		cs.rateCount = 0
	}

	cs.notify()
	return true
}

// notify performs a non-blocking coalescing send on updates
func (cs *ClockScheduler) notify() {
	select {
	case cs.updates <- struct{}{}:
	default:
	}
}
