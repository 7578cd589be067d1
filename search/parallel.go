package search

import (
	"runtime"
	"sync"

	"carocore/board"
)

// ParallelDriver runs Lazy-SMP search: several workers search the same
// position concurrently against a shared TranspositionTable, each with its
// own SearchFn instance (so per-worker mutable state such as killer tables
// stays unshared) and its own depth-diversity offset. Grounded on
// blunext-chess/engine/session.go's searchParallel, generalized from a
// single fixed SearchFn to a per-worker factory since the core's SearchFn
// is an external collaborator the driver does not own.
type ParallelDriver struct {
	// NewWorkerFn builds one worker's SearchFn, given its shared TT. Called
	// once per worker so each gets its own mutable state over the same TT.
	NewWorkerFn func(tt *TranspositionTable) SearchFn
	TT          *TranspositionTable
	NumThreads  int
}

type workerOutcome struct {
	result SearchResult
	err    error
}

// Search runs NumThreads workers (runtime.NumCPU()-1, minimum 1, if unset)
// against pos, each its own iterative-deepening Driver over the same
// candidate list, and returns the result of whichever worker reached the
// deepest completed iteration. Ties favor the lowest thread index.
func (p *ParallelDriver) Search(pos *board.SearchBoard, side board.Side, candidates []board.Move, params Params) (SearchResult, error) {
	numThreads := p.NumThreads
	if numThreads < 1 {
		numThreads = max(runtime.NumCPU()-1, 1)
	}

	outcomes := make([]workerOutcome, numThreads)
	var wg sync.WaitGroup

	for i := 0; i < numThreads; i++ {
		wg.Add(1)
		go func(threadID int) {
			defer wg.Done()

			workerPos := pos.Clone()
			workerParams := params
			// Diversity: odd-numbered threads start one ply deeper, the same
			// split blunext-chess's searchParallel uses to avoid every
			// thread walking an identical principal variation.
			if threadID%2 == 1 && workerParams.MinDepth+1 <= workerParams.MaxDepth {
				workerParams.MinDepth++
			}

			driver := &Driver{SearchFn: p.NewWorkerFn(p.TT)}
			result, err := driver.Search(workerPos, side, candidates, workerParams)
			outcomes[threadID] = workerOutcome{result: result, err: err}
		}(i)
	}

	wg.Wait()

	best := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.err == nil && (best.err != nil || o.result.DepthAchieved > best.result.DepthAchieved) {
			best = o
		}
	}
	return best.result, best.err
}
