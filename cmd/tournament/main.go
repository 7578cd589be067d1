// Command tournament self-plays two difficulty levels against each other
// and reports Elo difference, likelihood of superiority, and an optional
// SPRT verdict, using rating.EloDiff/LOS/SPRT for the match-level
// statistics. Grounded on blunext-chess/tools/tournament/{main,match}.go,
// adapted from driving two external UCI engine processes to calling the
// library's own Driver directly for both sides (there is no separate
// engine binary to pipe a protocol to, per spec.md §1's UI/network
// Non-goal).
package main

import (
	"flag"
	"fmt"
	"os"

	"carocore/board"
	"carocore/candidates"
	"carocore/difficulty"
	"carocore/rating"
	"carocore/search"
)

type gameResult int

const (
	resultEngine1Wins gameResult = iota
	resultEngine2Wins
	resultDraw
)

func main() {
	level1Name := flag.String("engine1", "Medium", "difficulty for engine 1")
	level2Name := flag.String("engine2", "Hard", "difficulty for engine 2")
	games := flag.Int("games", 20, "number of games to play")
	maxPlies := flag.Int("plies", 60, "maximum plies per game before calling it a draw")
	useSPRT := flag.Bool("sprt", false, "stop early on a SPRT verdict (elo0=-5, elo1=0)")
	flag.Parse()

	level1, err := parseLevel(*level1Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level2, err := parseLevel(*level2Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var wins, draws, losses int
	rating1, rating2 := 1500, 1500

	for gameNum := 1; gameNum <= *games; gameNum++ {
		engine1First := gameNum%2 == 1

		result := playGame(level1, level2, engine1First, *maxPlies)

		preRating1, preRating2 := rating1, rating2
		switch result {
		case resultEngine1Wins:
			wins++
			rating1 = rating.NewRating(preRating1, preRating2, true, 1.0)
			rating2 = rating.NewRating(preRating2, preRating1, false, 1.0)
		case resultEngine2Wins:
			losses++
			rating1 = rating.NewRating(preRating1, preRating2, false, 1.0)
			rating2 = rating.NewRating(preRating2, preRating1, true, 1.0)
		case resultDraw:
			draws++
		}

		total := wins + draws + losses
		score := float64(wins) + 0.5*float64(draws)
		fmt.Printf("game %d/%d: +%d =%d -%d (%.1f%%) ratings %d/%d\n",
			gameNum, *games, wins, draws, losses, 100*score/float64(total), rating1, rating2)

		if *useSPRT && total >= 10 {
			llr, conclusion := rating.SPRT(wins, draws, losses, -5, 0)
			if conclusion != "" {
				fmt.Printf("SPRT stopped after %d games: %s (LLR=%.2f)\n", total, conclusion, llr)
				break
			}
		}
	}

	eloDiff, eloError := rating.EloDiff(wins, draws, losses)
	los := rating.LOS(wins, draws, losses)
	fmt.Printf("\nfinal: engine1=%s engine2=%s +%d =%d -%d\n", level1, level2, wins, draws, losses)
	fmt.Printf("elo diff: %.1f +/- %.1f, LOS: %.1f%%\n", eloDiff, eloError, 100*los)
}

// playGame plays engine1 (level1) against engine2 (level2), alternating
// who moves first, until a win or the ply cap, and returns the outcome
// from engine1's perspective.
func playGame(level1, level2 difficulty.Level, engine1First bool, maxPlies int) gameResult {
	settings1, _ := difficulty.GetSettings(level1)
	settings2, _ := difficulty.GetSettings(level2)

	pos := board.New()
	tt1 := search.NewTranspositionTable(search.DefaultHashMB)
	tt2 := search.NewTranspositionTable(search.DefaultHashMB)
	driver1 := &search.Driver{SearchFn: (&search.AlphaBeta{Eval: materialBalance, Radius: 2, TT: tt1}).Fn()}
	driver2 := &search.Driver{SearchFn: (&search.AlphaBeta{Eval: materialBalance, Radius: 2, TT: tt2}).Fn()}

	side := board.Red
	engine1Side := board.Red
	if !engine1First {
		engine1Side = board.Blue
	}

	for ply := 0; ply < maxPlies; ply++ {
		driver, settings := driver1, settings1
		if side != engine1Side {
			driver, settings = driver2, settings2
		}

		cands := candidates.Candidates(pos, 2)
		result, err := driver.Search(pos, side, cands, search.Params{
			MinDepth:         settings.MinDepth,
			MaxDepth:         settings.MinDepth + 2,
			SoftBoundSeconds: settings.TimeBudgetFraction,
			HardBoundSeconds: settings.TimeBudgetFraction * 2,
		})
		if err != nil {
			return resultDraw
		}

		pos.MakeMove(result.X, result.Y, side)

		if win := board.DetectWin(pos); win.HasWinner {
			if win.Winner == engine1Side {
				return resultEngine1Wins
			}
			return resultEngine2Wins
		}

		side = side.Opponent()
	}

	return resultDraw
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
		return 0, fmt.Errorf("tournament: unknown difficulty %q", name)
	}
}
