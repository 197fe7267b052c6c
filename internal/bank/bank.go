// Package bank holds the quiz's question groups and their options.
package bank

import (
	"cmp"
	_ "embed"
	"fmt"
	"sync"

	"github.com/abhisek/traitsort/internal/traits"
)

const (
	// GroupCount is the number of question groups in a bank.
	GroupCount = 5

	// OptionsPerGroup is the number of options offered in every group.
	OptionsPerGroup = 8
)

// GroupID identifies a question group, 1-based.
type GroupID int

// Key is the identity of an option: its group plus its label.
type Key struct {
	Group GroupID
	Label string
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s", k.Group, k.Label)
}

// Option is an immutable selectable choice inside a group.
type Option struct {
	Group GroupID
	Trait traits.Primary
	Label string
	Index int // position within the group, for display order
}

// Key returns the option's identity.
func (o Option) Key() Key {
	return Key{Group: o.Group, Label: o.Label}
}

// Scores reports whether the option's trait tag contributes to scoring.
func (o Option) Scores() bool {
	return o.Trait.Valid()
}

// Group is one question group.
type Group struct {
	ID      GroupID
	Title   string
	Options []Option
}

// Bank is a complete, validated set of question groups.
type Bank struct {
	groups []Group
	index  map[Key]Option
}

// Groups returns the groups in display order.
func (b *Bank) Groups() []Group {
	return b.groups
}

// GroupIDs returns every group ID in display order.
func (b *Bank) GroupIDs() []GroupID {
	ids := make([]GroupID, len(b.groups))
	for i, g := range b.groups {
		ids[i] = g.ID
	}
	return ids
}

// Group returns the group with the given ID.
func (b *Bank) Group(id GroupID) (Group, bool) {
	if id < 1 || int(id) > len(b.groups) {
		return Group{}, false
	}
	return b.groups[id-1], true
}

// Lookup finds an option by group and label.
func (b *Bank) Lookup(group GroupID, label string) (Option, bool) {
	opt, ok := b.index[Key{Group: group, Label: label}]
	return opt, ok
}

// Options returns every option in bank order.
func (b *Bank) Options() []Option {
	out := make([]Option, 0, len(b.groups)*OptionsPerGroup)
	for _, g := range b.groups {
		out = append(out, g.Options...)
	}
	return out
}

// Compare orders options by group, then by position inside the group.
func Compare(a, b Option) int {
	if c := cmp.Compare(a.Group, b.Group); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

//go:embed default.json
var defaultBankJSON []byte

var defaultBank = sync.OnceValue(func() *Bank {
	b, err := Parse(defaultBankJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank is invalid: %v", err))
	}
	return b
})

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank()
}
