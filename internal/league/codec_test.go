package league

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := fixture(
		p("id-a", "alice", 1200, 14),
		p("id-b", "bob", 950, 3),
		p("id-c", "carol", 1000, 0),
	)
	// an in-flight match must not survive the trip
	m, ok := l.NextMatch(rand.New(rand.NewSource(1)))
	require.True(t, ok)
	l.StartMatch(m)

	data, err := l.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, l.Players(), got.Players(), "roster must round-trip losslessly")
	_, inFlight := got.Current()
	assert.False(t, inFlight, "a reloaded league starts with no match in progress")
}

func TestEncodeEmptyLeague(t *testing.T) {
	data, err := New().Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"players"`)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestDecodeLegacyFlatMap(t *testing.T) {
	// the pre-id save format: a bare object keyed by player name
	data := []byte(`{
		"bob":   {"rating": 950,  "matches": 3},
		"alice": {"rating": 1200, "matches": 14}
	}`)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	players := got.Players()
	// legacy load orders by name for reproducibility
	assert.Equal(t, "alice", players[0].Name)
	assert.Equal(t, 1200, players[0].Rating)
	assert.Equal(t, 14, players[0].Matches)
	assert.Equal(t, "bob", players[1].Name)
	assert.Equal(t, 950, players[1].Rating)

	for _, pl := range players {
		assert.NotEmpty(t, pl.ID, "legacy players get a synthesized id")
	}
}

func TestDecodeLegacyKeepsExplicitFields(t *testing.T) {
	data := []byte(`{"alice": {"id": "keep-me", "name": "Alice", "rating": 1200, "matches": 14}}`)

	got, err := Decode(data)
	require.NoError(t, err)

	players := got.Players()
	require.Len(t, players, 1)
	assert.Equal(t, "keep-me", players[0].ID)
	assert.Equal(t, "Alice", players[0].Name, "an explicit name wins over the map key")
}

func TestLegacyReEncodingKeepsPlayers(t *testing.T) {
	// write today's roster back out as the old flat map and reload it:
	// ids may change but everything a player earned must survive
	l := fixture(
		p("id-a", "alice", 1200, 14),
		p("id-b", "bob", 950, 3),
	)

	legacy := map[string]Player{}
	for _, pl := range l.Players() {
		pl.ID = ""
		legacy[pl.Name] = pl
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, l.Len(), got.Len())

	for _, want := range l.Players() {
		var found *Player
		for _, pl := range got.Players() {
			if pl.Name == want.Name {
				pl := pl
				found = &pl
			}
		}
		require.NotNil(t, found, "player %q lost in translation", want.Name)
		assert.Equal(t, want.Rating, found.Rating)
		assert.Equal(t, want.Matches, found.Matches)
	}
}

func TestDecodeLegacyPlayerNamedPlayers(t *testing.T) {
	// a legacy roster whose only member happens to be called "players"
	// must still parse as legacy, not be mistaken for the current shape
	data := []byte(`{"players": {"rating": 1000, "matches": 3}}`)

	got, err := Decode(data)
	require.NoError(t, err)

	players := got.Players()
	require.Len(t, players, 1)
	assert.Equal(t, "players", players[0].Name)
	assert.Equal(t, 1000, players[0].Rating)
	assert.Equal(t, 3, players[0].Matches)
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{{
		"not json at all",
		`ladder time`,
	}, {
		"null document",
		`null`,
	}, {
		"top level array",
		`[1, 2, 3]`,
	}, {
		"players field that is neither a list nor a record",
		`{"players": "nope"}`,
	}, {
		"player record with a string rating",
		`{"players": [{"name": "a", "rating": "high", "matches": 0}]}`,
	}, {
		"legacy record with negative matches",
		`{"alice": {"rating": 1000, "matches": -1}}`,
	}, {
		"legacy value that is not a record",
		`{"alice": 17}`,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode([]byte(test.data))
			require.Error(t, err)

			var ferr *FormatError
			require.True(t, errors.As(err, &ferr), "want a *FormatError, got %T", err)
			assert.NotEmpty(t, ferr.Reason)
		})
	}
}

func TestDecodeCurrentRecordMissingName(t *testing.T) {
	_, err := Decode([]byte(`{"players": [{"rating": 1000, "matches": 2}]}`))

	var ferr *FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Contains(t, ferr.Reason, "players[0]")
}
