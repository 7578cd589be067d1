// Command carocli is a demo harness that plays the engine against itself
// and prints the game. Grounded on blunext-chess's root main.go +
// engine.Run(): a thin driver that wires the library packages together and
// prints what happened, with no protocol loop of its own (spec.md §1
// places UI/network plumbing out of scope; this is a demonstration caller,
// not a specified component).
package main

import (
	"flag"
	"fmt"
	"os"

	"carocore/board"
	"carocore/candidates"
	"carocore/difficulty"
	"carocore/search"
)

func main() {
	difficultyName := flag.String("difficulty", "Medium", "Braindead|Easy|Medium|Hard|Grandmaster")
	maxPlies := flag.Int("plies", 40, "maximum number of stones to place before stopping")
	radius := flag.Int("radius", candidates.DefaultRadius, "candidate generator radius")
	flag.Parse()

	level, err := parseLevel(*difficultyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	settings, err := difficulty.GetSettings(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pos := board.New()
	side := board.Red
	tt := search.NewTranspositionTable(search.DefaultHashMB)
	ab := &search.AlphaBeta{Eval: materialBalance, Radius: *radius, TT: tt}
	driver := &search.Driver{SearchFn: ab.Fn()}

	softSeconds := settings.TimeBudgetFraction * 2.0

	for ply := 0; ply < *maxPlies; ply++ {
		cands := candidates.Candidates(pos, *radius)
		result, err := driver.Search(pos, side, cands, search.Params{
			MinDepth:         settings.MinDepth,
			MaxDepth:         settings.MinDepth + 3,
			SoftBoundSeconds: softSeconds,
			HardBoundSeconds: softSeconds * 2,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "search:", err)
			os.Exit(1)
		}

		pos.MakeMove(result.X, result.Y, side)
		fmt.Printf("ply %d: %s places at (%d,%d) depth=%d score=%d nodes=%d\n",
			ply+1, side, result.X, result.Y, result.DepthAchieved, result.Score, result.NodesSearched)

		if win := board.DetectWin(pos); win.HasWinner {
			fmt.Println(pos.String())
			fmt.Printf("%s wins on the line %v\n", win.Winner, win.WinningLine)
			return
		}

		side = side.Opponent()
	}

	fmt.Println(pos.String())
	fmt.Println("plies exhausted with no winner")
}

func materialBalance(pos *board.SearchBoard, side board.Side) int {
	own := pos.GetBitboard(side).Count()
	opp := pos.GetBitboard(side.Opponent()).Count()
	return own - opp
}

func parseLevel(name string) (difficulty.Level, error) {
	switch name {
	case "Braindead":
		return difficulty.Braindead, nil
	case "Easy":
		return difficulty.Easy, nil
	case "Medium":
		return difficulty.Medium, nil
	case "Hard":
		return difficulty.Hard, nil
	case "Grandmaster":
		return difficulty.Grandmaster, nil
	default:
		return 0, fmt.Errorf("carocli: unknown difficulty %q", name)
	}
}
