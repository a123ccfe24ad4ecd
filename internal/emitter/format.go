package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

// Sentinels for absent optional fields.
const (
	noHardness   = -1.0
	noDurability = -1
)

// BlockRefs supplies the Java expressions a block declaration uses for its
// state properties and collision shapes. Both are keyed by raw block name.
type BlockRefs interface {
	PropertyMap(name string) string
	Shapes(name string) string
}

// JavaBlockRefs points at the lookup tables the Java runtime loads itself.
type JavaBlockRefs struct{}

// PropertyMap looks the block up in the runtime property map.
func (JavaBlockRefs) PropertyMap(name string) string {
	return "ResourceData.BLOCK_PROPERTY_MAP.get(" + javaString(name) + ")"
}

// Shapes loads the block's collision shapes at runtime.
func (JavaBlockRefs) Shapes(name string) string {
	return "BlockStateLoader.getBlockShapes(" + javaString(name) + ")"
}

// ItemLookup resolves items by id. *gamedata.Table implements it.
type ItemLookup interface {
	ItemByID(id int) (gamedata.Item, bool)
}

// EmitBlocks renders one BlockType declaration per block into tmpl. A nil
// refs selects JavaBlockRefs.
func EmitBlocks(blocks []gamedata.Block, tmpl string, refs BlockRefs) (string, error) {
	if refs == nil {
		refs = JavaBlockRefs{}
	}
	return emit(blocks, tmpl, func(b gamedata.Block) (string, error) {
		return BlockLine(b, refs), nil
	})
}

// EmitItems renders one ItemType declaration per item into tmpl.
func EmitItems(items []gamedata.Item, tmpl string) (string, error) {
	return emit(items, tmpl, func(it gamedata.Item) (string, error) {
		return ItemLine(it), nil
	})
}

// EmitEntities renders one EntityType declaration per entity into tmpl.
func EmitEntities(entities []gamedata.Entity, tmpl string) (string, error) {
	return emit(entities, tmpl, func(e gamedata.Entity) (string, error) {
		return EntityLine(e), nil
	})
}

// EmitFoods fails with *LookupError on the first food that has no item.
func EmitFoods(foods []gamedata.Food, items ItemLookup, tmpl string) (string, error) {
	return emit(foods, tmpl, func(f gamedata.Food) (string, error) {
		return FoodLine(f, items)
	})
}

// BlockLine renders an absent hardness as -1.
func BlockLine(b gamedata.Block, refs BlockRefs) string {
	hardness := noHardness
	if b.Hardness != nil {
		hardness = *b.Hardness
	}
	return fmt.Sprintf("public static final BlockType %s = register(new BlockType(%d, %s, %s, %sF, %d, %t, %s, %s));",
		ConstName(b.Name), b.ID, javaString(b.Name), javaString(b.DisplayName),
		number(hardness), b.StackSize, b.Diggable,
		refs.PropertyMap(b.Name), refs.Shapes(b.Name))
}

// ItemLine renders an absent max durability as -1.
func ItemLine(it gamedata.Item) string {
	durability := noDurability
	if it.MaxDurability != nil {
		durability = *it.MaxDurability
	}
	return fmt.Sprintf("public static final ItemType %s = register(new ItemType(%d, %s, %s, %d, %s, %s, %d));",
		ConstName(it.Name), it.ID, javaString(it.Name), javaString(it.DisplayName),
		it.StackSize, JavaList(it.EnchantCategories), JavaList(it.RepairWith), durability)
}

// EntityLine renders an absent width or height as 0.
func EntityLine(e gamedata.Entity) string {
	return fmt.Sprintf("public static final EntityType %s = register(new EntityType(%d, %s, %s, %s, %sF, %sF, %s));",
		ConstName(e.Name), e.ID, javaString(e.Name), javaString(e.DisplayName), javaString(e.Type),
		number(deref(e.Width)), number(deref(e.Height)), javaString(e.Category))
}

// FoodLine refers to the food's item constant, found by id.
func FoodLine(f gamedata.Food, items ItemLookup) (string, error) {
	item, ok := items.ItemByID(f.ID)
	if !ok {
		return "", &LookupError{FoodID: f.ID, FoodName: f.Name}
	}
	return fmt.Sprintf("public static final FoodType %s = register(new FoodType(ItemType.%s, %s, %s, %s, %s));",
		ConstName(f.Name), ConstName(item.Name),
		number(f.FoodPoints), number(f.Saturation), number(f.EffectiveQuality), number(f.SaturationRatio)), nil
}

// JavaList renders values as a List.of(...) expression, or null when values
// is nil. An empty, non-nil slice renders as List.of().
func JavaList(values []string) string {
	if values == nil {
		return "null"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = javaString(v)
	}
	return "List.of(" + strings.Join(quoted, ", ") + ")"
}

// ConstName upper-cases a raw name into a Java constant identifier. The root
// locale is used so that the result does not depend on the host.
func ConstName(name string) string {
	// A Caser holds state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(name)
}

var javaEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func javaString(s string) string {
	return `"` + javaEscaper.Replace(s) + `"`
}

// number prints the shortest decimal that round-trips, without an exponent.
func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
