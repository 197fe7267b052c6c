// Package replay drives a session from a recorded picks file, for scripted
// and headless runs.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/abhisek/traitsort/internal/bank"
	"github.com/abhisek/traitsort/internal/round"
	"github.com/abhisek/traitsort/internal/validate"
)

// PicksSchema is the JSON schema of a picks file.
var PicksSchema = &validate.Schema{
	Name: "picks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rounds": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    round.Count,
				"description": "One entry per round, in play order",
				"items": map[string]any{
					"type": "object",
					"patternProperties": map[string]any{
						"^[1-9][0-9]*$": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string", "minLength": 1},
							"uniqueItems": true,
							"description": "Labels to check in this group",
						},
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"rounds"},
		"additionalProperties": false,
	},
}

// RoundPicks maps each group to the labels checked in one round.
type RoundPicks map[bank.GroupID][]string

// Groups returns the group IDs in ascending order.
func (rp RoundPicks) Groups() []bank.GroupID {
	ids := make([]bank.GroupID, 0, len(rp))
	for id := range rp {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Picks is a recorded run: the picks of up to three rounds.
type Picks struct {
	Rounds []RoundPicks
}

// ParsePicks validates raw against PicksSchema and decodes it.
func ParsePicks(raw []byte) (*Picks, error) {
	if err := validate.JSON(PicksSchema, raw); err != nil {
		return nil, err
	}

	var doc struct {
		Rounds []map[string][]string `json:"rounds"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode picks: %w", err)
	}

	p := &Picks{Rounds: make([]RoundPicks, 0, len(doc.Rounds))}
	for _, r := range doc.Rounds {
		rp := make(RoundPicks, len(r))
		for k, labels := range r {
			id, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("group key %q: %w", k, err)
			}
			rp[bank.GroupID(id)] = labels
		}
		p.Rounds = append(p.Rounds, rp)
	}
	return p, nil
}

// LoadPicks reads and parses a picks file.
func LoadPicks(path string) (*Picks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read picks: %w", err)
	}
	p, err := ParsePicks(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}
