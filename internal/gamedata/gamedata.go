package gamedata

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when a category lists the same id twice.
var ErrDuplicateID = errors.New("duplicate id")

// Table is the data of one game version. It is not modified after NewTable
// returns, so it can be shared by concurrent readers.
type Table struct {
	Version  string
	Blocks   []Block
	Items    []Item
	Entities []Entity
	Foods    []Food

	itemsByID map[int]int
}

// NewTable validates per-category id uniqueness and indexes items by id.
// Record order is kept as given.
func NewTable(version string, blocks []Block, items []Item, entities []Entity, foods []Food) (*Table, error) {
	if err := uniqueIDs("blocks", blocks, func(b Block) int { return b.ID }); err != nil {
		return nil, err
	}
	if err := uniqueIDs("entities", entities, func(e Entity) int { return e.ID }); err != nil {
		return nil, err
	}
	if err := uniqueIDs("foods", foods, func(f Food) int { return f.ID }); err != nil {
		return nil, err
	}

	itemsByID := make(map[int]int, len(items))
	for i, it := range items {
		if _, ok := itemsByID[it.ID]; ok {
			return nil, fmt.Errorf("items: %w %d", ErrDuplicateID, it.ID)
		}
		itemsByID[it.ID] = i
	}

	return &Table{
		Version:   version,
		Blocks:    blocks,
		Items:     items,
		Entities:  entities,
		Foods:     foods,
		itemsByID: itemsByID,
	}, nil
}

// ItemByID returns the item with the given id.
func (t *Table) ItemByID(id int) (Item, bool) {
	i, ok := t.itemsByID[id]
	if !ok {
		return Item{}, false
	}
	return t.Items[i], true
}

func uniqueIDs[T any](category string, records []T, id func(T) int) error {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		k := id(r)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%s: %w %d", category, ErrDuplicateID, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
