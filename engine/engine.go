// Package engine advances a Life-like simulation one generation at a time.
//
// An Engine couples a rule table, a double-buffered grid and a dispatcher. Each
// Advance evaluates the kernel for every cell against the frozen front buffer,
// writes the back buffer, and publishes it with an index flip under a write lock.
// Readers only ever see a completed generation.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-life/dispatch"
	"github.com/lixenwraith/vi-life/grid"
	"github.com/lixenwraith/vi-life/kernel"
	"github.com/lixenwraith/vi-life/parameter"
	"github.com/lixenwraith/vi-life/rule"
	"github.com/lixenwraith/vi-life/status"
)

// Construction and runtime errors
var (
	ErrInvalidRuleTableSize = rule.ErrInvalidRuleTableSize
	ErrInvalidGridSize      = grid.ErrInvalidGridSize

	// ErrEngineUnavailable is fatal to the instance; recovery means building a new Engine
	ErrEngineUnavailable = errors.New("engine unavailable")
)

// Option configures an Engine at construction
type Option func(*Engine)

// WithDispatcher supplies the execution substrate; the caller keeps ownership
func WithDispatcher(d dispatch.Dispatcher) Option {
	return func(e *Engine) {
		e.dispatcher = d
		e.ownsDispatcher = false
	}
}

// WithPool sizes the engine-owned worker pool
func WithPool(workers, tileSize int) Option {
	return func(e *Engine) {
		e.poolWorkers = workers
		e.poolTile = tileSize
	}
}

// WithStatus publishes generation, population and step timing into reg
func WithStatus(reg *status.Registry) Option {
	return func(e *Engine) {
		e.statusReg = reg
	}
}

// WithLogger routes engine diagnostics; defaults to the standard logger
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine runs one simulation instance
type Engine struct {
	params  Params
	table   rule.Table
	kparams kernel.Params
	grid    *grid.Grid

	stepMu sync.Mutex   // serializes Advance and Close
	mu     sync.RWMutex // guards publish (front flip, generation) against readers
	failed error

	dispatcher     dispatch.Dispatcher
	ownsDispatcher bool
	poolWorkers    int
	poolTile       int

	logger    *log.Logger
	statusReg *status.Registry

	// Cached metric pointers
	statGen  *atomic.Int64
	statPop  *atomic.Int64
	statStep *atomic.Int64
}

// New validates params and initial cells and allocates both buffers
// initial must hold exactly Width*Height row-major cells
func New(p Params, initial []uint32, opts ...Option) (*Engine, error) {
	p = p.clone()

	table, err := p.Rule()
	if err != nil {
		return nil, err
	}

	g, err := grid.New(p.Width, p.Height, p.Lifetime, initial)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		params: p,
		table:  table,
		kparams: kernel.Params{
			Width:    p.Width,
			Height:   p.Height,
			Lifetime: p.Lifetime,
			Rule:     table,
		},
		grid:           g,
		ownsDispatcher: true,
		logger:         log.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.dispatcher == nil {
		e.dispatcher = dispatch.NewPool(e.poolWorkers, e.poolTile)
		e.ownsDispatcher = true
	}

	if e.statusReg != nil {
		e.statGen = e.statusReg.Ints.Get(parameter.MetricGeneration)
		e.statPop = e.statusReg.Ints.Get(parameter.MetricPopulation)
		e.statStep = e.statusReg.Ints.Get(parameter.MetricStepMicros)
		front, _ := e.grid.Front()
		e.statGen.Store(0)
		e.statPop.Store(int64(countAlive(front)))
	}

	return e, nil
}

// Advance computes and publishes exactly one generation
// On substrate failure the current generation stays visible and the engine is unusable
func (e *Engine) Advance() error {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	if e.failed != nil {
		return e.failed
	}

	start := time.Now()

	// Front is only flipped by this goroutine while stepMu is held
	src, srcAges := e.grid.Front()
	dst, dstAges := e.grid.Back()
	kp := e.kparams

	err := e.dispatcher.Dispatch(kp.Width, kp.Height, func(x, y int) {
		kernel.Step(kp, src, srcAges, dst, dstAges, x, y)
	})
	if err != nil {
		e.failed = fmt.Errorf("%w: generation %d: %w", ErrEngineUnavailable, e.Generation()+1, err)
		e.logger.Printf("engine: %v", e.failed)
		return e.failed
	}

	e.mu.Lock()
	e.grid.Swap()
	gen := e.grid.Generation()
	e.mu.Unlock()

	if e.statusReg != nil {
		e.statGen.Store(int64(gen))
		e.statPop.Store(int64(countAlive(dst)))
		e.statStep.Store(time.Since(start).Microseconds())
	}
	return nil
}

// AdvanceN calls Advance n times, stopping at the first error
func (e *Engine) AdvanceN(n int) error {
	for i := 0; i < n; i++ {
		if err := e.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// ReadCurrent returns a copy of the last completed generation
func (e *Engine) ReadCurrent() grid.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Snapshot()
}

// Generation returns the number of completed generations
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Generation()
}

// Params returns a copy of the construction parameters
func (e *Engine) Params() Params {
	return e.params.clone()
}

// Rule returns the rule table
func (e *Engine) Rule() rule.Table {
	return e.table
}

// Err returns the fatal error, if any
func (e *Engine) Err() error {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()
	return e.failed
}

// Close releases an engine-owned dispatcher; the engine reports ErrEngineUnavailable afterwards
func (e *Engine) Close() error {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	if e.failed == nil {
		e.failed = fmt.Errorf("%w: closed", ErrEngineUnavailable)
	}
	if e.ownsDispatcher && e.dispatcher != nil {
		err := e.dispatcher.Close()
		e.dispatcher = nil
		return err
	}
	return nil
}

func countAlive(cells []grid.Cell) int {
	n := 0
	for _, c := range cells {
		if c != grid.Dead {
			n++
		}
	}
	return n
}
