package gamedata

import (
	"encoding/json"
	"fmt"
)

// LoadJSON decodes a JSON array of records, keeping their order.
func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
