// Package difficulty implements the DifficultyProfile registry (spec.md
// §4.6, component C6): a closed five-level enum mapping a named strength
// tier to immutable search parameters. Grounded on blunext-chess's
// engine.Session thread/time configuration (GetThreads, SetThreads,
// defaultNumOfCPU), generalized from a single ad hoc thread-count knob into
// the spec's full per-level parameter table.
package difficulty

import (
	"errors"
	"fmt"
	"runtime"
)

// Level is a closed enumeration of the five strength tiers.
type Level uint8

const (
	Braindead Level = iota
	Easy
	Medium
	Hard
	Grandmaster
)

// IsHard, IsGrandmaster, and IsExperimental implement book.Difficulty, so
// a Level can be passed directly to Facade.BookMove. Experimental is not a
// level this registry's closed five-level enumeration defines (spec.md
// §4.6), so it is always false here; the opening-book facade's gate still
// names it for parity with the spec's documented gate set.
func (l Level) IsHard() bool        { return l == Hard }
func (l Level) IsGrandmaster() bool { return l == Grandmaster }
func (l Level) IsExperimental() bool { return false }

func (l Level) String() string {
	switch l {
	case Braindead:
		return "Braindead"
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Grandmaster:
		return "Grandmaster"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// ErrInvalidDifficulty is returned for a Level outside the closed
// enumeration (spec.md §7's InvalidDifficulty, fatal and surfaced).
var ErrInvalidDifficulty = errors.New("difficulty: invalid difficulty level")

// Settings is the immutable record GetSettings returns. Field names follow
// spec.md §6's DifficultyProfile table column order.
type Settings struct {
	Level                Level
	ThreadCount          int
	PonderThreadCount    int
	TimeBudgetFraction   float64
	ParallelSearchEnabled bool
	PonderingEnabled     bool
	VCFEnabled           bool
	ErrorRate            float64
	MinDepth             int
	TargetNPS            int
}

func (s Settings) validate() {
	if s.ThreadCount < 1 {
		panic("difficulty: thread_count must be >= 1")
	}
	if s.PonderThreadCount > s.ThreadCount {
		panic("difficulty: pondering_thread_count must be <= thread_count")
	}
	if s.ErrorRate < 0 || s.ErrorRate > 1 {
		panic("difficulty: error_rate must be in [0, 1]")
	}
	if s.TimeBudgetFraction <= 0 || s.TimeBudgetFraction > 1 {
		panic("difficulty: time_budget_fraction must be in (0, 1]")
	}
}

// SupportsPondering is the derived predicate: pondering is only offered
// from Medium upward, even at a tier where PonderingEnabled is set.
func (s Settings) SupportsPondering() bool {
	return s.PonderingEnabled && s.Level >= Medium
}

// SupportsParallelSearch mirrors ParallelSearchEnabled.
func (s Settings) SupportsParallelSearch() bool {
	return s.ParallelSearchEnabled
}

// SupportsVCF mirrors VCFEnabled.
func (s Settings) SupportsVCF() bool {
	return s.VCFEnabled
}

// cpuCountFn is overridable in tests so the Grandmaster thread-count
// derivation can be exercised deterministically without depending on the
// host machine's actual core count.
var cpuCountFn = runtime.NumCPU

// grandmasterThreads computes the CPU-derived thread counts spec.md §4.6
// specifies: main = max(4, cpu_count/2 - 1), ponder = max(2, main/2).
func grandmasterThreads() (main, ponder int) {
	cpu := cpuCountFn()
	main = cpu/2 - 1
	if main < 4 {
		main = 4
	}
	ponder = main / 2
	if ponder < 2 {
		ponder = 2
	}
	return main, ponder
}

// table holds all five rows; Grandmaster's thread fields are left zero here
// and computed on each GetSettings call since they depend on the host CPU.
var table = map[Level]Settings{
	Braindead: {
		Level: Braindead, ThreadCount: 1, PonderThreadCount: 0,
		TimeBudgetFraction: 0.05, ParallelSearchEnabled: false, PonderingEnabled: false,
		VCFEnabled: false, ErrorRate: 0.10, MinDepth: 1, TargetNPS: 10_000,
	},
	Easy: {
		Level: Easy, ThreadCount: 2, PonderThreadCount: 1,
		TimeBudgetFraction: 0.20, ParallelSearchEnabled: true, PonderingEnabled: false,
		VCFEnabled: false, ErrorRate: 0.00, MinDepth: 2, TargetNPS: 50_000,
	},
	Medium: {
		Level: Medium, ThreadCount: 3, PonderThreadCount: 2,
		TimeBudgetFraction: 0.50, ParallelSearchEnabled: true, PonderingEnabled: true,
		VCFEnabled: false, ErrorRate: 0.00, MinDepth: 3, TargetNPS: 100_000,
	},
	Hard: {
		Level: Hard, ThreadCount: 4, PonderThreadCount: 3,
		TimeBudgetFraction: 0.75, ParallelSearchEnabled: true, PonderingEnabled: true,
		VCFEnabled: true, ErrorRate: 0.00, MinDepth: 4, TargetNPS: 200_000,
	},
	Grandmaster: {
		Level: Grandmaster, TimeBudgetFraction: 1.00, ParallelSearchEnabled: true, PonderingEnabled: true,
		VCFEnabled: true, ErrorRate: 0.00, MinDepth: 5, TargetNPS: 500_000,
	},
}

// GetSettings returns the immutable record for level, or ErrInvalidDifficulty
// if level is outside the closed enumeration.
func GetSettings(level Level) (Settings, error) {
	s, ok := table[level]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidDifficulty, level)
	}
	if level == Grandmaster {
		main, ponder := grandmasterThreads()
		s.ThreadCount = main
		s.PonderThreadCount = ponder
	}
	s.validate()
	return s, nil
}
