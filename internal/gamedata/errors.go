package gamedata

import "fmt"

// MissingVersionError reports that a source has no data for Version.
type MissingVersionError struct {
	Version string
}

func (e *MissingVersionError) Error() string {
	return fmt.Sprintf("version %s not found", e.Version)
}
