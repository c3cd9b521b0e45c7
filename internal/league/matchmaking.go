package league

import "math/rand"

// NextMatch proposes a pairing without mutating the league; StartMatch is
// what commits it. Returns false when fewer than two players exist.
//
// Selection runs in two weighted phases:
//
//  1. The first player is drawn from the play-in pool (anyone with at most
//     PlayInMatches matches) when that pool is non-empty, otherwise from the
//     whole roster. Candidates with fewer matches are quadratically more
//     likely, so fresh players get on the board fast.
//  2. The opponent is drawn from everyone else, weighted quadratically toward
//     the closest rating, favoring matches that should be close contests.
//
// A fair coin then decides which player is listed first; that only affects
// display order.
func (l *League) NextMatch(rng *rand.Rand) (Match, bool) {
	if len(l.players) < 2 {
		return Match{}, false
	}

	pool := l.playInPool()
	if len(pool) == 0 {
		pool = l.players
	}

	maxMatches := 0
	for _, p := range pool {
		if p.Matches > maxMatches {
			maxMatches = p.Matches
		}
	}
	weights := make([]int, len(pool))
	for i, p := range pool {
		d := maxMatches - p.Matches
		weights[i] = d * d
	}
	first := pool[weightedIndex(rng, weights)]

	rest := make([]Player, 0, len(l.players)-1)
	for _, p := range l.players {
		if p.ID != first.ID {
			rest = append(rest, p)
		}
	}

	maxGap := 0
	for _, p := range rest {
		if g := gap(first.Rating, p.Rating); g > maxGap {
			maxGap = g
		}
	}
	weights = make([]int, len(rest))
	for i, p := range rest {
		d := maxGap - gap(first.Rating, p.Rating)
		weights[i] = d * d
	}
	second := rest[weightedIndex(rng, weights)]

	if rng.Intn(2) == 0 {
		return Match{A: first, B: second}, true
	}
	return Match{A: second, B: first}, true
}

func (l *League) playInPool() []Player {
	var pool []Player
	for _, p := range l.players {
		if p.Matches <= PlayInMatches {
			pool = append(pool, p)
		}
	}
	return pool
}

// weightedIndex draws one index with probability proportional to its weight.
// An all-zero weight vector happens whenever every candidate is equally
// extreme (same match count, same rating gap); that degenerates to a uniform
// draw instead of a division by zero.
func weightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return rng.Intn(len(weights))
	}
	pick := rng.Intn(total)
	for i, w := range weights {
		pick -= w
		if pick < 0 {
			return i
		}
	}
	// unreachable while the weights sum to total
	return len(weights) - 1
}

func gap(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
