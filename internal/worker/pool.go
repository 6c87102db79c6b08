// Package worker evaluates search branches in parallel on a pool of
// goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// WorkItem is one root branch: the position reached by playing Action.
// Each item owns its Position; workers never share one.
type WorkItem struct {
	Index    int // Original index for ordering results
	Action   chess.Action
	Position *chess.Position
}

// ProcessResult is the outcome of evaluating a branch.
type ProcessResult struct {
	Index   int
	Action  chess.Action
	Value   float64
	Payload interface{} // Opaque per-branch data, e.g. a search subtree; typed by consumer
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// PoolOption configures a pool.
type PoolOption func(*pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// pool fans branches out to numWorkers goroutines. Every submitted item
// produces exactly one result; a search needs all of them for its
// tie-break, so there is no early stop.
type pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// newPool creates a pool whose channels hold bufferSize items.
// Default: 1 worker.
func newPool(processFunc ProcessFunc, bufferSize int, opts ...PoolOption) *pool {
	p := &pool{
		numWorkers:  1,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, bufferSize)
	p.resultChan = make(chan ProcessResult, bufferSize)
	return p
}

func (p *pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *pool) close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// RunOrdered processes every item on a fresh pool and returns the results
// indexed by WorkItem.Index, so the caller sees them in submission order
// however the workers interleave. Indexes must be 0..len(items)-1.
//
// Results are consumed by the calling goroutine only; processFunc is the
// only code that runs concurrently.
func RunOrdered(items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	results := make([]ProcessResult, len(items))
	if len(items) == 0 {
		return results
	}

	p := newPool(processFunc, len(items), opts...)
	p.start()

	go func() {
		for _, item := range items {
			p.workChan <- item
		}
		p.close()
	}()

	for result := range p.resultChan {
		results[result.Index] = result
	}
	return results
}
