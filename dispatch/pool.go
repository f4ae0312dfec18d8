package dispatch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/parameter"
)

// Pool is a fixed set of worker goroutines fed with tiles
// Dispatch calls are serialized; the workers of one dispatch share no state besides the batch
type Pool struct {
	workers  int
	tileSize int

	jobs chan job

	mu       sync.Mutex // serializes Dispatch against Close
	closed   atomic.Bool
	workerWg sync.WaitGroup

	dispatched atomic.Uint64
}

type job struct {
	tile  Tile
	fn    CellFunc
	batch *batch
}

// batch tracks completion and the first failure of one dispatch
type batch struct {
	wg     sync.WaitGroup
	failed atomic.Bool
	cause  atomic.Value
}

func (b *batch) fail(r any) {
	if b.failed.CompareAndSwap(false, true) {
		b.cause.Store(fmt.Sprint(r))
	}
}

// NewPool starts workers goroutines processing tileSize x tileSize tiles
// Non-positive workers defaults to runtime.NumCPU, non-positive tileSize to parameter.DefaultTileSize
func NewPool(workers, tileSize int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if tileSize <= 0 {
		tileSize = parameter.DefaultTileSize
	}
	if tileSize > parameter.MaxTileSize {
		tileSize = parameter.MaxTileSize
	}

	p := &Pool{
		workers:  workers,
		tileSize: tileSize,
		jobs:     make(chan job, workers*2),
	}

	p.workerWg.Add(workers)
	for i := 0; i < workers; i++ {
		core.Go(p.workerLoop)
	}
	return p
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.workers
}

// TileSize returns the tile edge length
func (p *Pool) TileSize() int {
	return p.tileSize
}

// Dispatched returns the number of completed dispatches
func (p *Pool) Dispatched() uint64 {
	return p.dispatched.Load()
}

// workerLoop drains jobs until the channel closes
func (p *Pool) workerLoop() {
	defer p.workerWg.Done()
	for j := range p.jobs {
		p.run(j)
	}
}

// run executes one tile, converting a panic into a batch failure
func (p *Pool) run(j job) {
	defer j.batch.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			j.batch.fail(r)
		}
	}()

	// Skip remaining tiles once the batch is known to be lost
	if j.batch.failed.Load() {
		return
	}
	runTile(j.tile, j.fn)
}

// Dispatch implements Dispatcher
func (p *Pool) Dispatch(width, height int, fn CellFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return fmt.Errorf("%w: pool closed", ErrUnavailable)
	}

	tiles := Tiles(width, height, p.tileSize, p.tileSize)
	b := &batch{}
	b.wg.Add(len(tiles))
	for _, t := range tiles {
		p.jobs <- job{tile: t, fn: fn, batch: b}
	}
	b.wg.Wait()

	if b.failed.Load() {
		return fmt.Errorf("%w: cell function panicked: %v", ErrUnavailable, b.cause.Load())
	}
	p.dispatched.Add(1)
	return nil
}

// Close stops the workers after any in-flight dispatch; safe to call repeatedly
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.CompareAndSwap(false, true) {
		close(p.jobs)
		p.workerWg.Wait()
	}
	return nil
}
