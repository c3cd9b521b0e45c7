// Package rating implements plain Elo arithmetic.
//
// Everything here is stateless: two ratings and a K-factor go in, two new
// ratings come out. Which K-factor applies to a given match is league policy
// and lives in the league package, not here.
package rating

import "math"

// KSensitive is the baseline K-factor before any league-level adjustment.
// Higher K means a single result moves ratings further.
const KSensitive = 32

// Odds returns the probability that a player rated a beats a player rated b,
// using the standard logistic curve with a 400-point spread.
func Odds(a, b int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(b-a)/400.0))
}

// Win returns the ratings of winner and loser after a decisive result.
// The transfer is zero-sum: whatever the winner gains the loser pays.
func Win(k, winner, loser int) (int, int) {
	delta := round(float64(k) * (1.0 - Odds(winner, loser)))
	return winner + delta, loser - delta
}

// Draw returns the ratings of a and b after a drawn result. When the ratings
// are equal the deltas are zero; otherwise points flow toward the underdog.
func Draw(k, a, b int) (int, int) {
	delta := round(float64(k) * (0.5 - Odds(a, b)))
	return a + delta, b - delta
}

// round is half-away-from-zero, which math.Round already implements. Kept as
// a named helper so the rounding rule shows up in exactly one place.
func round(x float64) int {
	return int(math.Round(x))
}
