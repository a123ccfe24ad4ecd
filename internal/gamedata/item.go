package gamedata

// Item is one entry of items.json. EnchantCategories and RepairWith are nil
// when the field is absent and empty when the data lists no values.
type Item struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	DisplayName       string   `json:"displayName"`
	StackSize         int      `json:"stackSize"`
	MaxDurability     *int     `json:"maxDurability"`
	EnchantCategories []string `json:"enchantCategories"`
	RepairWith        []string `json:"repairWith"`
}
