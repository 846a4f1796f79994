package bankroll

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultImportPath selects the bets of a local-storage dump such as
//
//	{"bets_v1": "[{\"id\":…}]", "bankroll_initial_v1": "100"}
const DefaultImportPath = "$." + BetsKey

// ImportJSON reads a JSON document and decodes the bets found at the JSONPath
// expression path (DefaultImportPath when empty).
//
// The selected value may be an array of bets, a single bet, or a string
// holding the JSON array, which is how browser local storage keeps it.
// Like DecodeBets, invalid records are skipped and reported in the error
// while the valid ones are returned.
func ImportJSON(r io.Reader, path string) ([]Bet, error) {
	if path == "" {
		path = DefaultImportPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep odds and stakes exact
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not parse import document: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select %q: %w", path, err)
	}

	var raw []byte
	switch v := selected.(type) {
	case string:
		raw = []byte(v)
	case map[string]any:
		raw, err = json.Marshal([]any{v})
	default:
		raw, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read bets at %q: %w", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 || strings.TrimSpace(string(raw)) == "null" {
		return nil, nil
	}
	return DecodeBets(bytes.NewReader(raw))
}
