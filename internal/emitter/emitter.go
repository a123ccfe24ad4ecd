// Package emitter renders Java registry constants for blocks, items, entities
// and foods into template documents.
//
// Every template carries a single Placeholder line. An emitter formats one
// declaration per record, in input order, and substitutes the joined
// declarations for the placeholder. Emitters are pure: they take and return
// text and never touch the filesystem.
package emitter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

// Placeholder marks where declarations are inserted into a template.
const Placeholder = "// VALUES REPLACE"

// lineSeparator keeps every declaration at the indentation of the first one.
const lineSeparator = "\n    "

var (
	// ErrPlaceholderMissing is returned for a template without a Placeholder line.
	ErrPlaceholderMissing = errors.New("template has no placeholder")
	// ErrPlaceholderRepeated is returned for a template with several.
	ErrPlaceholderRepeated = errors.New("template has more than one placeholder")
)

// LookupError reports a food whose id matches no item.
type LookupError struct {
	FoodID   int
	FoodName string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("food %q: no item with id %d", e.FoodName, e.FoodID)
}

// Category is one kind of record that gets its own Java registry class.
type Category int

const (
	Blocks Category = iota
	Items
	Entities
	Foods
)

// Categories lists every category in generation order.
var Categories = []Category{Blocks, Items, Entities, Foods}

func (c Category) String() string {
	switch c {
	case Blocks:
		return "blocks"
	case Items:
		return "items"
	case Entities:
		return "entities"
	case Foods:
		return "foods"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// FileName is the name of both the template and the generated file.
func (c Category) FileName() string {
	switch c {
	case Blocks:
		return "BlockType.java"
	case Items:
		return "ItemType.java"
	case Entities:
		return "EntityType.java"
	case Foods:
		return "FoodType.java"
	default:
		return ""
	}
}

// Emit renders the records of category c from table into tmpl.
func Emit(c Category, table *gamedata.Table, tmpl string, refs BlockRefs) (string, error) {
	switch c {
	case Blocks:
		return EmitBlocks(table.Blocks, tmpl, refs)
	case Items:
		return EmitItems(table.Items, tmpl)
	case Entities:
		return EmitEntities(table.Entities, tmpl)
	case Foods:
		return EmitFoods(table.Foods, table, tmpl)
	default:
		return "", fmt.Errorf("unknown category %d", int(c))
	}
}

// Substitute replaces the placeholder in tmpl with lines. The template must
// contain the placeholder exactly once.
func Substitute(tmpl string, lines []string) (string, error) {
	switch n := strings.Count(tmpl, Placeholder); {
	case n == 0:
		return "", ErrPlaceholderMissing
	case n > 1:
		return "", fmt.Errorf("%w (found %d)", ErrPlaceholderRepeated, n)
	}
	return strings.Replace(tmpl, Placeholder, strings.Join(lines, lineSeparator), 1), nil
}

func emit[T any](records []T, tmpl string, format func(T) (string, error)) (string, error) {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line, err := format(r)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return Substitute(tmpl, lines)
}
