package gamedata

// Block is one entry of minecraft-data's blocks.json.
type Block struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Hardness    *float64 `json:"hardness"`
	StackSize   int      `json:"stackSize"`
	Diggable    bool     `json:"diggable"`
}
