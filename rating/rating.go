// Package rating implements the EloCalculator (spec.md §4.7, component
// C7): the pure rating-update functions used after a single game, plus the
// aggregate match-level statistics (EloDiff, LOS, SPRT) a self-play
// harness needs to summarize a whole series of games against the same
// K=32 Elo model. Grounded on blunext-chess/tools/tournament/stats.go,
// adapted from three free-standing functions living inside the tournament
// binary into this package's own collaborators: SPRT's win/loss
// probabilities are now derived from Expected (the same function NewRating
// uses for a single game) instead of re-deriving the logistic curve by
// hand, and EloDiff/LOS/erf take carocore's own naming and are exercised
// by cmd/tournament rather than carried there as a private copy.
package rating

import "math"

// kFactor is the Elo K-factor spec.md §4.7 fixes at 32.
const kFactor = 32.0

// Expected returns the probability a player rated p is expected to score
// against an opponent rated o.
func Expected(p, o float64) float64 {
	return 1 / (1 + math.Pow(10, (o-p)/400))
}

// NewRating returns the updated integer rating for a player rated p after
// a game against a player rated o, where won is true if p won and mult
// scales the K-factor (e.g. for tournaments that weight games unevenly).
// Rounding is half-away-from-zero, per spec.md §4.7.
func NewRating(p, o int, won bool, mult float64) int {
	score := 0.0
	if won {
		score = 1.0
	}
	delta := kFactor * mult * (score - Expected(float64(p), float64(o)))
	return roundHalfAwayFromZero(float64(p) + delta)
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}

// EloDiff estimates the Elo strength difference implied by a set of game
// results (wins/draws/losses from one side's perspective) and its 95%
// confidence interval, using the normal approximation to the score's
// sampling distribution.
func EloDiff(wins, draws, losses int) (eloDiff, eloError float64) {
	total := float64(wins + draws + losses)
	if total == 0 {
		return 0, 0
	}

	score := (float64(wins) + 0.5*float64(draws)) / total
	if score <= 0 || score >= 1 {
		if score >= 1 {
			return 800, 0
		}
		return -800, 0
	}
	eloDiff = -400 * math.Log10(1/score-1)

	variance := score * (1 - score) / total
	stdErr := math.Sqrt(variance)

	if score > 0.01 && score < 0.99 {
		dElo := 400 / (math.Ln10 * score * (1 - score))
		eloError = 1.96 * stdErr * dElo
	} else {
		eloError = 200
	}

	return eloDiff, eloError
}

// LOS returns the likelihood of superiority: the probability that the side
// with wins/losses counted here is truly the stronger side, using the
// normal approximation to the binomial.
func LOS(wins, draws, losses int) float64 {
	if wins+losses == 0 {
		return 0.5
	}

	n := float64(wins + losses)
	p := float64(wins) / n
	z := (p - 0.5) * math.Sqrt(n) / 0.5

	return 0.5 * (1 + erf(z/math.Sqrt2))
}

// SPRT runs a Sequential Probability Ratio Test over an elo0/elo1 hypothesis
// pair, returning the log-likelihood ratio and a conclusion string once the
// test can stop ("" means keep playing). p0/p1 reuse Expected — the same
// win-probability curve a single game's NewRating update is built on —
// rather than re-deriving the logistic formula.
func SPRT(wins, draws, losses int, elo0, elo1 float64) (llr float64, conclusion string) {
	total := float64(wins + draws + losses)
	if total < 10 {
		return 0, ""
	}

	w := float64(wins) / total
	d := float64(draws) / total
	l := float64(losses) / total

	p0 := Expected(elo0, 0)
	p1 := Expected(elo1, 0)

	w0 := p0 - d/2
	l0 := 1 - p0 - d/2
	w1 := p1 - d/2
	l1 := 1 - p1 - d/2

	if w0 <= 0 || w1 <= 0 || l0 <= 0 || l1 <= 0 {
		return 0, ""
	}

	llr = total * (w*math.Log(w1/w0) + l*math.Log(l1/l0))

	const alpha, beta = 0.05, 0.05
	lowerBound := math.Log(beta / (1 - alpha))
	upperBound := math.Log((1 - beta) / alpha)

	if llr >= upperBound {
		return llr, "H0 rejected: not weaker than elo0"
	}
	if llr <= lowerBound {
		return llr, "H1 rejected: may be weaker than elo0"
	}

	return llr, ""
}

// erf is the Gauss error function, Abramowitz and Stegun's approximation,
// used by LOS's normal-distribution tail.
func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1
		x = -x
	}

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)

	return sign * y
}
