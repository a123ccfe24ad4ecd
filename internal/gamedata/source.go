package gamedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source looks up the table of a game version. A version without data
// yields a *MissingVersionError.
type Source interface {
	Load(ctx context.Context, version string) (*Table, error)
}

// DataPathsFile is the minecraft-data index mapping each platform/version to
// the directory that holds each of its data files.
const DataPathsFile = "dataPaths.json"

// DirSource reads tables from a checkout of minecraft-data's data/ directory.
// When Root has a dataPaths.json, the index decides where each category lives.
// Otherwise every file is expected under <Root>/<Platform>/<version>/.
type DirSource struct {
	Root     string
	Platform string
}

// CategoryNames are the data files every version provides, without the .json
// extension.
var CategoryNames = []string{"blocks", "items", "entities", "foods"}

// DataPaths is a parsed dataPaths.json: platform, then version, then category,
// mapped to a directory relative to the data root such as "pc/1.20.3".
type DataPaths map[string]map[string]map[string]string

// Dirs returns the relative directory of each category of version.
func (p DataPaths) Dirs(platform, version string) (map[string]string, error) {
	entry, ok := p[platform][version]
	if !ok {
		return nil, &MissingVersionError{Version: version}
	}

	dirs := make(map[string]string, len(CategoryNames))
	for _, cat := range CategoryNames {
		rel, ok := entry[cat]
		if !ok {
			return nil, fmt.Errorf("version %s: %s has no %s entry", version, DataPathsFile, cat)
		}
		dirs[cat] = rel
	}
	return dirs, nil
}

// ReadDataPaths parses root's dataPaths.json. It returns nil when root has none.
func ReadDataPaths(root string) (DataPaths, error) {
	raw, err := os.ReadFile(filepath.Join(root, DataPathsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", DataPathsFile, err)
	}

	var paths DataPaths
	if err := json.Unmarshal(raw, &paths); err != nil {
		return nil, fmt.Errorf("parse %s: %w", DataPathsFile, err)
	}
	return paths, nil
}

// Load reads and validates the four category files of version.
func (s DirSource) Load(ctx context.Context, version string) (*Table, error) {
	dirs, err := s.categoryDirs(version)
	if err != nil {
		return nil, err
	}

	blocks, err := readCategory[Block](ctx, dirs, "blocks")
	if err != nil {
		return nil, err
	}
	items, err := readCategory[Item](ctx, dirs, "items")
	if err != nil {
		return nil, err
	}
	entities, err := readCategory[Entity](ctx, dirs, "entities")
	if err != nil {
		return nil, err
	}
	foods, err := readCategory[Food](ctx, dirs, "foods")
	if err != nil {
		return nil, err
	}

	t, err := NewTable(version, blocks, items, entities, foods)
	if err != nil {
		return nil, fmt.Errorf("version %s: %w", version, err)
	}
	return t, nil
}

// Versions lists the versions available for the platform, oldest first.
func (s DirSource) Versions() ([]string, error) {
	paths, err := ReadDataPaths(s.Root)
	if err != nil {
		return nil, err
	}

	var names []string
	if paths != nil {
		for v := range paths[s.Platform] {
			names = append(names, v)
		}
	} else {
		entries, err := os.ReadDir(filepath.Join(s.Root, s.Platform))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("list versions: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}

	SortVersions(names)
	return names, nil
}

func (s DirSource) categoryDirs(version string) (map[string]string, error) {
	paths, err := ReadDataPaths(s.Root)
	if err != nil {
		return nil, err
	}

	if paths == nil {
		dir := filepath.Join(s.Root, s.Platform, version)
		info, err := os.Stat(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &MissingVersionError{Version: version}
			}
			return nil, fmt.Errorf("stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, &MissingVersionError{Version: version}
		}
		dirs := make(map[string]string, len(CategoryNames))
		for _, cat := range CategoryNames {
			dirs[cat] = dir
		}
		return dirs, nil
	}

	dirs, err := paths.Dirs(s.Platform, version)
	if err != nil {
		return nil, err
	}
	for cat, rel := range dirs {
		dirs[cat] = filepath.Join(s.Root, filepath.FromSlash(rel))
	}
	return dirs, nil
}

func readCategory[T any](ctx context.Context, dirs map[string]string, category string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := category + ".json"
	raw, err := os.ReadFile(filepath.Join(dirs[category], file))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	records, err := LoadJSON[T](raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return records, nil
}

var (
	_ Source = DirSource{}
	_ Source = (*Registry)(nil)
)
