package emitter

import (
	"embed"
	"fmt"
)

//go:embed templates/*.java
var templateFS embed.FS

// DefaultTemplate returns the built-in template for c.
func DefaultTemplate(c Category) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + c.FileName())
	if err != nil {
		return "", fmt.Errorf("read default template %s: %w", c.FileName(), err)
	}
	return string(raw), nil
}
