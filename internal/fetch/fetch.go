// Package fetch downloads minecraft-data for one platform and version.
//
// minecraft-data stores a category that did not change between versions only
// once, and data/dataPaths.json says which directory holds each category of
// each version. Fetch follows that index: it pulls every directory the
// version needs and installs the index next to them, so that
// gamedata.DirSource reads the local copy the same way.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

const (
	DefaultBase     = "https://github.com/PrismarineJS/minecraft-data.git"
	DefaultPlatform = "pc"
)

// Options selects what to download and where.
type Options struct {
	// Base is the minecraft-data repository. A remote URL is cloned with git.
	// A local path or an address with a forced getter ("file::", "git::") is
	// used as given.
	Base     string
	Platform string
	Version  string
	// Dir is the local data root. The version's directories land under
	// Dir/Platform and the index at Dir/dataPaths.json.
	Dir string
	// Source replaces the repository with any go-getter address holding just
	// the version's directory, e.g. a mirror archive. It is copied to
	// Dir/Platform/Version as is and no index is installed.
	Source string
}

var get = func(ctx context.Context, dst, src string) error {
	return getter.Get(dst, src, getter.WithContext(ctx))
}

func (o Options) withDefaults() Options {
	if o.Base == "" {
		o.Base = DefaultBase
	}
	if o.Platform == "" {
		o.Platform = DefaultPlatform
	}
	return o
}

// URL is the go-getter address Fetch downloads from: Source when set,
// otherwise the repository root.
func URL(opts Options) string {
	opts = opts.withDefaults()
	if opts.Source != "" {
		return opts.Source
	}
	base := opts.Base
	if strings.Contains(base, "::") || !strings.Contains(base, "://") {
		return base
	}
	// https://github.com/PrismarineJS/minecraft-data/tree/master/data
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return "git::" + base + sep + "depth=1"
}

// Path is the version's own directory under the data root.
func Path(opts Options) string {
	opts = opts.withDefaults()
	return filepath.Join(opts.Dir, opts.Platform, opts.Version)
}

// Fetch downloads the version's data into opts.Dir and returns Path(opts).
// That directory is absent when the index routes every category of the
// version to older directories. A version the repository does not have
// yields a *gamedata.MissingVersionError.
func Fetch(ctx context.Context, opts Options) (string, error) {
	opts = opts.withDefaults()
	if opts.Version == "" {
		return "", errors.New("fetch: version is required")
	}
	if opts.Dir == "" {
		return "", errors.New("fetch: output dir is required")
	}

	if opts.Source != "" {
		dst := Path(opts)
		if err := replace(ctx, dst, opts.Source); err != nil {
			return "", err
		}
		return dst, nil
	}
	return fetchRepo(ctx, opts)
}

func fetchRepo(ctx context.Context, opts Options) (string, error) {
	if !strings.Contains(opts.Base, "::") && !strings.Contains(opts.Base, "://") {
		abs, err := filepath.Abs(opts.Base)
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		opts.Base = abs
	}

	staging, err := os.MkdirTemp("", "minecraft-data-")
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer os.RemoveAll(staging)

	src := URL(opts)
	checkout := filepath.Join(staging, "repo")
	if err := get(ctx, checkout, src); err != nil {
		return "", fmt.Errorf("fetch: get %s: %w", src, err)
	}
	data := filepath.Join(checkout, "data")

	paths, err := gamedata.ReadDataPaths(data)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	own := path.Join(opts.Platform, opts.Version)
	var dirs []string
	if paths == nil {
		if !isDir(filepath.Join(data, filepath.FromSlash(own))) {
			return "", fmt.Errorf("fetch: %w", &gamedata.MissingVersionError{Version: opts.Version})
		}
		dirs = []string{own}
	} else {
		byCategory, err := paths.Dirs(opts.Platform, opts.Version)
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		for _, rel := range byCategory {
			if !slices.Contains(dirs, rel) {
				dirs = append(dirs, rel)
			}
		}
		if !slices.Contains(dirs, own) && isDir(filepath.Join(data, filepath.FromSlash(own))) {
			dirs = append(dirs, own)
		}
		slices.Sort(dirs)
	}

	// Check everything before replacing anything under opts.Dir.
	for _, rel := range dirs {
		if !isDir(filepath.Join(data, filepath.FromSlash(rel))) {
			return "", fmt.Errorf("fetch: %s lists %s, which is missing", gamedata.DataPathsFile, rel)
		}
	}

	for _, rel := range dirs {
		dst := filepath.Join(opts.Dir, filepath.FromSlash(rel))
		if err := replace(ctx, dst, data+"//"+rel); err != nil {
			return "", err
		}
	}

	if paths != nil {
		raw, err := os.ReadFile(filepath.Join(data, gamedata.DataPathsFile))
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		if err := os.WriteFile(filepath.Join(opts.Dir, gamedata.DataPathsFile), raw, 0o644); err != nil {
			return "", fmt.Errorf("fetch: install %s: %w", gamedata.DataPathsFile, err)
		}
	}
	return Path(opts), nil
}

// replace downloads src into dst, dropping any previous copy.
func replace(ctx context.Context, dst, src string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("fetch: clear %s: %w", dst, err)
	}
	if err := get(ctx, dst, src); err != nil {
		return fmt.Errorf("fetch: get %s: %w", src, err)
	}
	return nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
