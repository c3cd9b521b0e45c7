// Package league holds the whole matchmaking and rating engine: the roster,
// the at-most-one in-flight match, pair selection, the adaptive K-factor
// policy and the save-file codec.
//
// A League is deliberately opaque. The shell only ever goes through the
// operations below, so every invariant (unique ids, a valid in-flight match,
// integer ratings) is enforced in exactly one place. Nothing here does I/O or
// touches process-wide randomness; NextMatch takes its entropy as an argument
// and callers own serialization if they run it from multiple goroutines.
package league

import (
	"math"
	"sort"

	"github.com/jose-valero/club-ladder-bot/internal/rating"
)

const (
	// DefaultRating seeds the first player admitted to an empty league.
	DefaultRating = 1000

	// PlayInMatches is how many matches a player is considered provisional
	// for. Provisional players are favored by matchmaking and rated with a
	// doubled K so they converge quickly.
	PlayInMatches = 5

	// stabilizePercentile marks the top of the board; players at or above
	// this rating percentile are rated with a halved K.
	stabilizePercentile = 90
)

// League owns the roster (insertion-ordered, ids unique) and the in-flight
// match slot. Zero players and no match is a valid state.
type League struct {
	players []Player
	current *Match
}

// New returns an empty league.
func New() *League {
	return &League{}
}

// Len returns the roster size.
func (l *League) Len() int { return len(l.players) }

// Players returns the roster as a copy, in insertion order.
func (l *League) Players() []Player {
	return append([]Player(nil), l.players...)
}

// Player looks up a roster member by id.
func (l *League) Player(id string) (Player, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.players[i], true
	}
	return Player{}, false
}

// Current returns the in-flight match, if any.
func (l *League) Current() (Match, bool) {
	if l.current == nil {
		return Match{}, false
	}
	return *l.current, true
}

// AddPlayer admits a new competitor. The rating is seeded from the current
// roster mean so newcomers land mid-pack instead of at the bottom; the first
// player ever gets DefaultRating. Returns the created player.
func (l *League) AddPlayer(name string) Player {
	p := newPlayer(name, l.meanRating())
	l.players = append(l.players, p)
	return p
}

// RetirePlayer removes a competitor by id. If the player is part of the
// in-flight match that match is cleared too; the league never keeps a match
// referencing someone who is gone. Reports whether the id was on the roster.
func (l *League) RetirePlayer(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.players = append(l.players[:i], l.players[i+1:]...)
	if l.current != nil && l.current.involves(id) {
		l.current = nil
	}
	return true
}

// RenamePlayer changes a player's display name. Identity is the id, so this
// never affects matchmaking or ratings. Reports whether the id was found.
func (l *League) RenamePlayer(id, name string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.players[i].Name = name
	// the in-flight snapshot mirrors the roster, so it renames too
	if l.current != nil {
		if l.current.A.ID == id {
			l.current.A.Name = name
		}
		if l.current.B.ID == id {
			l.current.B.Name = name
		}
	}
	return true
}

// StartMatch commits a proposal from NextMatch into the in-flight slot. The
// proposal is re-validated against the roster: both players must still exist
// and must be two distinct entities. A stale proposal is silently dropped
// rather than reported, since it can only come from calling out of turn.
func (l *League) StartMatch(m Match) {
	if m.A.ID == m.B.ID {
		return
	}
	a, okA := l.Player(m.A.ID)
	b, okB := l.Player(m.B.ID)
	if !okA || !okB {
		return
	}
	// refresh the snapshots so the slot always mirrors the roster
	l.current = &Match{A: a, B: b}
}

// CancelMatch abandons the in-flight match without rating anyone. A no-op
// when nothing is in flight.
func (l *League) CancelMatch() {
	l.current = nil
}

// FinishMatch applies an outcome. The K-factor comes from the snapshots
// carried by the outcome (who the players were when the match started) judged
// against the current rating distribution; the arithmetic is delegated to the
// rating package. Participants that have since retired are skipped. The
// in-flight slot is always cleared, whatever the outcome refers to.
func (l *League) FinishMatch(o Outcome) {
	switch res := o.(type) {
	case Win:
		k := l.kFactor(res.Winner)
		w, lo := rating.Win(k, res.Winner.Rating, res.Loser.Rating)
		l.applyResult(res.Winner.ID, w)
		l.applyResult(res.Loser.ID, lo)
	case Draw:
		// stabilize-the-leader applies to draws too: use the K of
		// whichever side is rated higher
		leader := res.A
		if res.B.Rating > leader.Rating {
			leader = res.B
		}
		k := l.kFactor(leader)
		a, b := rating.Draw(k, res.A.Rating, res.B.Rating)
		l.applyResult(res.A.ID, a)
		l.applyResult(res.B.ID, b)
	}
	l.current = nil
}

// kFactor picks the sensitivity for p's next update. Provisional players move
// at double speed; players at the top decile are deliberately slowed down so
// the leaderboard doesn't churn on single results.
func (l *League) kFactor(p Player) int {
	if p.Matches < PlayInMatches {
		return 2 * rating.KSensitive
	}
	if len(l.players) > 0 && float64(p.Rating) >= l.ratingPercentile(stabilizePercentile) {
		return rating.KSensitive / 2
	}
	return rating.KSensitive
}

// ratingPercentile computes the q-th percentile of all current ratings by
// linear interpolation between the two nearest sorted values.
func (l *League) ratingPercentile(q int) float64 {
	ratings := make([]int, len(l.players))
	for i, p := range l.players {
		ratings[i] = p.Rating
	}
	sort.Ints(ratings)

	h := float64(q) / 100.0 * float64(len(ratings)-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= len(ratings) {
		return float64(ratings[lo])
	}
	return float64(ratings[lo]) + (h-float64(lo))*float64(ratings[hi]-ratings[lo])
}

func (l *League) applyResult(id string, newRating int) {
	i := l.indexOf(id)
	if i < 0 {
		// retired mid-match; nothing to update for this side
		return
	}
	l.players[i].Rating = newRating
	l.players[i].Matches++
}

func (l *League) meanRating() int {
	if len(l.players) == 0 {
		return DefaultRating
	}
	sum := 0
	for _, p := range l.players {
		sum += p.Rating
	}
	return sum / len(l.players)
}

func (l *League) indexOf(id string) int {
	for i, p := range l.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
