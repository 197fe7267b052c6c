package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/traitsort/internal/traits"
	"github.com/abhisek/traitsort/internal/validate"
)

type fileDoc struct {
	Groups []struct {
		Title   string `json:"title"`
		Options []struct {
			Label string `json:"label"`
			Trait string `json:"trait"`
		} `json:"options"`
	} `json:"groups"`
}

// LoadFile reads and validates a question bank from a JSON file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Parse validates raw against FileSchema and builds a Bank. Labels must be
// unique within a group since (group, label) is an option's identity.
func Parse(raw []byte) (*Bank, error) {
	if err := validate.JSON(FileSchema, raw); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{
		groups: make([]Group, 0, len(doc.Groups)),
		index:  make(map[Key]Option, GroupCount*OptionsPerGroup),
	}
	for gi, g := range doc.Groups {
		id := GroupID(gi + 1)
		title := g.Title
		if title == "" {
			title = fmt.Sprintf("Group %d", id)
		}
		group := Group{ID: id, Title: title, Options: make([]Option, 0, len(g.Options))}
		for oi, o := range g.Options {
			opt := Option{
				Group: id,
				Trait: traits.Primary(o.Trait),
				Label: o.Label,
				Index: oi,
			}
			if _, dup := b.index[opt.Key()]; dup {
				return nil, fmt.Errorf("group %d: duplicate option label %q", id, o.Label)
			}
			b.index[opt.Key()] = opt
			group.Options = append(group.Options, opt)
		}
		b.groups = append(b.groups, group)
	}
	return b, nil
}
