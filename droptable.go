package bubble

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemType identifies a reward item.
type ItemType string

const (
	ItemCoin   ItemType = "coin"
	ItemGem    ItemType = "gem"
	ItemCard   ItemType = "card"
	ItemChest  ItemType = "chest"
	ItemEnergy ItemType = "energy"
)

// RewardItem is an item and how many of it drop.
type RewardItem struct {
	Type  ItemType `yaml:"type"`
	Count int      `yaml:"count"`
}

// ItemDropData is one entry of a stage's drop table.
type ItemDropData struct {
	Item RewardItem `yaml:"item"`
	// Chance is the drop probability in [0, 1].
	Chance float64 `yaml:"chance"`
}

// Guaranteed reports whether the drop always happens.
func (d ItemDropData) Guaranteed() bool {
	return math.Abs(d.Chance-1) < 1e-6
}

// StageData is the reward configuration of one stage.
type StageData struct {
	ID    string         `yaml:"id"`
	Name  string         `yaml:"name"`
	Coins []int          `yaml:"coins"` // coin drops, one per wave
	Drops []ItemDropData `yaml:"drops"`
}

// AllCoinsDrop returns the total coins the stage awards.
func (s *StageData) AllCoinsDrop() int {
	total := 0
	for _, c := range s.Coins {
		total += c
	}
	return total
}

// DropSource looks stage data up by ID.
type DropSource interface {
	Stage(id string) (*StageData, bool)
}

// DropTable is a DropSource backed by a YAML document:
//
//	stages:
//	  - id: "1-1"
//	    coins: [10, 15]
//	    drops:
//	      - item: {type: gem, count: 2}
//	        chance: 1
type DropTable struct {
	stages []*StageData
	byID   map[string]*StageData
}

type dropTableFile struct {
	Stages []*StageData `yaml:"stages"`
}

// ParseDropTable decodes and validates a drop table document.
func ParseDropTable(data []byte) (*DropTable, error) {
	var f dropTableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bubble: failed to parse drop table YAML: %w", err)
	}

	t := &DropTable{byID: make(map[string]*StageData, len(f.Stages))}
	for i, st := range f.Stages {
		if st == nil || st.ID == "" {
			return nil, fmt.Errorf("bubble: stage %d has no id", i)
		}
		if _, dup := t.byID[st.ID]; dup {
			return nil, fmt.Errorf("bubble: duplicate stage id %q", st.ID)
		}
		for _, c := range st.Coins {
			if c < 0 {
				return nil, fmt.Errorf("bubble: stage %q: negative coin drop %d", st.ID, c)
			}
		}
		for j, d := range st.Drops {
			if d.Chance < 0 || d.Chance > 1 {
				return nil, fmt.Errorf("bubble: stage %q drop %d: chance must be in [0, 1], got %v", st.ID, j, d.Chance)
			}
			if d.Item.Type == "" {
				return nil, fmt.Errorf("bubble: stage %q drop %d: missing item type", st.ID, j)
			}
			if d.Item.Count < 0 {
				return nil, fmt.Errorf("bubble: stage %q drop %d: negative count %d", st.ID, j, d.Item.Count)
			}
		}
		t.stages = append(t.stages, st)
		t.byID[st.ID] = st
	}
	return t, nil
}

// LoadDropTable reads and parses a drop table file.
func LoadDropTable(path string) (*DropTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bubble: failed to read drop table %s: %w", path, err)
	}
	t, err := ParseDropTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Stage returns the stage with the given ID.
func (t *DropTable) Stage(id string) (*StageData, bool) {
	st, ok := t.byID[id]
	return st, ok
}

// Stages returns all stages in file order. The returned slice MUST NOT be mutated.
func (t *DropTable) Stages() []*StageData {
	return t.stages
}
