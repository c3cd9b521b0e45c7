package league

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Player is one competitor on the ladder. ID is the stable identity; Name is
// display-only and may be edited later. Rating is always stored as an integer,
// rounding happens at update time. Matches only ever goes up.
type Player struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Matches int    `json:"matches"`
}

func newPlayer(name string, rating int) Player {
	return Player{
		ID:     uuid.NewString(),
		Name:   name,
		Rating: rating,
	}
}

// decodePlayer validates one raw player record. fallbackName is used when the
// record itself carries no name (legacy documents keyed records by name).
// A missing id is filled with a fresh uuid, matching how pre-id save files
// are upgraded on load.
func decodePlayer(raw json.RawMessage, fallbackName string) (Player, *FormatError) {
	var p Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return Player{}, formatErrorf("%s", describeJSONError(err))
	}
	if p.Name == "" {
		p.Name = fallbackName
	}
	if p.Name == "" {
		return Player{}, formatErrorf("record %s is missing a name", raw)
	}
	if p.Matches < 0 {
		return Player{}, formatErrorf("matches must be >= 0, got %d", p.Matches)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return p, nil
}
