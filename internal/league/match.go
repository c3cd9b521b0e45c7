package league

// Match is a proposed or in-flight pairing. A and B are display order only
// (NextMatch flips a coin for sides); identity-wise the pair is unordered.
type Match struct {
	A Player
	B Player
}

// involves reports whether the given player id is on either side.
func (m Match) involves(id string) bool {
	return m.A.ID == id || m.B.ID == id
}

// Outcome is the result of a finished match, carrying the snapshots of the
// players it applies to so rating deltas can be computed without a re-lookup.
// It is a closed set: Win or Draw, nothing else.
type Outcome interface {
	outcome()
}

// Win is a decisive result: Winner beat Loser.
type Win struct {
	Winner Player
	Loser  Player
}

// Draw is a shared result between two players; the order of A and B carries
// no meaning.
type Draw struct {
	A Player
	B Player
}

func (Win) outcome()  {}
func (Draw) outcome() {}
