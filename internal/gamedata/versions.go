package gamedata

import (
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// SortVersions orders release versions ("1.8", "1.20.4") by precedence.
// Snapshots ("21w07a") and other dotless names follow them in lexical order.
func SortVersions(names []string) {
	parsed := make(map[string]*goversion.Version, len(names))
	for _, n := range names {
		if !strings.Contains(n, ".") {
			continue
		}
		if v, err := goversion.NewVersion(n); err == nil {
			parsed[n] = v
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		vi, okI := parsed[names[i]]
		vj, okJ := parsed[names[j]]
		switch {
		case okI && okJ:
			if vi.Equal(vj) {
				return names[i] < names[j]
			}
			return vi.LessThan(vj)
		case okI != okJ:
			return okI
		default:
			return names[i] < names[j]
		}
	})
}
