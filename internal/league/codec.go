package league

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FormatError is returned by Decode when the document matches neither the
// current nor the legacy save format, or when a player record inside it is
// malformed. Decoding is all-or-nothing; there is no partial recovery.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "league document: " + e.Reason
}

func formatErrorf(format string, args ...interface{}) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// document is the current save shape. The in-flight match is deliberately
// absent: a reloaded league always starts with no match in progress.
type document struct {
	Players []Player `json:"players"`
}

// Encode serializes the league to the current document format, players in
// insertion order.
func (l *League) Encode() ([]byte, error) {
	doc := document{Players: l.players}
	if doc.Players == nil {
		doc.Players = []Player{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a save document into a league. It tries the current shape
// first (an object with a "players" list); anything that doesn't match that
// shape falls through to the legacy one, a bare map from player name to
// record, used before players had ids. Only when both shapes miss does a
// *FormatError come back. The ordering matters: a legacy roster may well
// contain a player literally named "players".
func Decode(data []byte) (*League, error) {
	var doc struct {
		Players *[]json.RawMessage `json:"players"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Players != nil {
		return decodeCurrent(*doc.Players)
	}

	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, formatErrorf("expected an object with a %q list or a name-to-record map, got %s",
			"players", describeJSONError(err))
	}
	if legacy == nil {
		// json "null" unmarshals into a nil map without error
		return nil, formatErrorf("expected an object with a %q list or a name-to-record map, got null",
			"players")
	}
	return decodeLegacy(legacy)
}

func decodeCurrent(records []json.RawMessage) (*League, error) {
	l := New()
	for i, raw := range records {
		p, err := decodePlayer(raw, "")
		if err != nil {
			return nil, formatErrorf("players[%d]: %s", i, err.Reason)
		}
		l.players = append(l.players, p)
	}
	return l, nil
}

func decodeLegacy(records map[string]json.RawMessage) (*League, error) {
	// map order is random; sort the names so legacy loads are reproducible
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	l := New()
	for _, name := range names {
		p, err := decodePlayer(records[name], name)
		if err != nil {
			return nil, formatErrorf("player %q: %s", name, err.Reason)
		}
		l.players = append(l.players, p)
	}
	return l, nil
}

// describeJSONError turns the stdlib json error types into something a person
// reading a log can act on.
func describeJSONError(err error) string {
	switch e := err.(type) {
	case *json.UnmarshalTypeError:
		if e.Field != "" {
			return fmt.Sprintf("field %q: expected %s, found %s", e.Field, e.Type, e.Value)
		}
		return fmt.Sprintf("expected %s, found %s", e.Type, e.Value)
	case *json.SyntaxError:
		return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e)
	default:
		return err.Error()
	}
}
