package gamedata

// Food carries the nutrition values of an edible item. ID is the item id.
type Food struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"displayName"`
	StackSize        int     `json:"stackSize"`
	FoodPoints       float64 `json:"foodPoints"`
	Saturation       float64 `json:"saturation"`
	EffectiveQuality float64 `json:"effectiveQuality"`
	SaturationRatio  float64 `json:"saturationRatio"`
}
