package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/traitsort/internal/traits"
	"github.com/abhisek/traitsort/internal/validate"
)

func TestDefault_Shape(t *testing.T) {
	b := Default()
	require.Len(t, b.Groups(), GroupCount)
	for i, g := range b.Groups() {
		assert.Equal(t, GroupID(i+1), g.ID)
		assert.Len(t, g.Options, OptionsPerGroup, "group %d", g.ID)
		for j, opt := range g.Options {
			assert.Equal(t, g.ID, opt.Group)
			assert.Equal(t, j, opt.Index)
		}
	}
	assert.Equal(t, []GroupID{1, 2, 3, 4, 5}, b.GroupIDs())
	assert.Len(t, b.Options(), GroupCount*OptionsPerGroup)
}

func TestDefault_Lookup(t *testing.T) {
	b := Default()

	opt, ok := b.Lookup(1, "獨當一面")
	require.True(t, ok)
	assert.Equal(t, traits.Decisive, opt.Trait)
	assert.Equal(t, 0, opt.Index)

	opt, ok = b.Lookup(4, "行政處理")
	require.True(t, ok)
	assert.Equal(t, traits.Affairs, opt.Trait)

	_, ok = b.Lookup(2, "獨當一面")
	assert.False(t, ok, "labels are scoped to their group")

	_, ok = b.Group(6)
	assert.False(t, ok)
}

func TestDefault_NonScoringTags(t *testing.T) {
	var nonScoring []Key
	for _, opt := range Default().Options() {
		if !opt.Scores() {
			assert.Equal(t, traits.Primary("action"), opt.Trait)
			nonScoring = append(nonScoring, opt.Key())
		}
	}
	assert.Len(t, nonScoring, 6)
}

func TestCompare(t *testing.T) {
	a := Option{Group: 1, Index: 7}
	b := Option{Group: 2, Index: 0}
	c := Option{Group: 2, Index: 3}
	assert.Negative(t, Compare(a, b))
	assert.Negative(t, Compare(b, c))
	assert.Positive(t, Compare(c, b))
	assert.Zero(t, Compare(c, c))
}

func bankDoc(t *testing.T, mutate func(groups []map[string]any) []map[string]any) []byte {
	t.Helper()
	groups := make([]map[string]any, 0, GroupCount)
	for g := 0; g < GroupCount; g++ {
		opts := make([]map[string]any, 0, OptionsPerGroup)
		for o := 0; o < OptionsPerGroup; o++ {
			opts = append(opts, map[string]any{
				"label": fmt.Sprintf("%c%d", 'a'+o, g),
				"trait": string(traits.AllPrimary()[o]),
			})
		}
		groups = append(groups, map[string]any{"options": opts})
	}
	if mutate != nil {
		groups = mutate(groups)
	}
	raw, err := json.Marshal(map[string]any{"groups": groups})
	require.NoError(t, err)
	return raw
}

func TestParse_Valid(t *testing.T) {
	b, err := Parse(bankDoc(t, nil))
	require.NoError(t, err)
	g, ok := b.Group(3)
	require.True(t, ok)
	assert.Equal(t, "Group 3", g.Title, "missing titles default to the group number")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(groups []map[string]any) []map[string]any
		schema bool
	}{
		{
			name:   "too few groups",
			mutate: func(g []map[string]any) []map[string]any { return g[:4] },
			schema: true,
		},
		{
			name: "too few options",
			mutate: func(g []map[string]any) []map[string]any {
				g[0]["options"] = g[0]["options"].([]map[string]any)[:7]
				return g
			},
			schema: true,
		},
		{
			name: "empty label",
			mutate: func(g []map[string]any) []map[string]any {
				g[2]["options"].([]map[string]any)[1]["label"] = ""
				return g
			},
			schema: true,
		},
		{
			name: "duplicate label",
			mutate: func(g []map[string]any) []map[string]any {
				opts := g[1]["options"].([]map[string]any)
				opts[5]["label"] = opts[4]["label"]
				return g
			},
			schema: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(bankDoc(t, tt.mutate))
			require.Error(t, err)
			var invalid *validate.InvalidDocumentError
			assert.Equal(t, tt.schema, errors.As(err, &invalid))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, bankDoc(t, nil), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, b.Options(), GroupCount*OptionsPerGroup)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
