// Package generator runs the enum emitters against a data directory and
// writes the generated Java sources.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/enumgen/internal/config"
	"github.com/OCharnyshevich/enumgen/internal/emitter"
	"github.com/OCharnyshevich/enumgen/internal/fetch"
	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

// ErrStale is returned in check mode when a generated file differs from
// what is on disk.
var ErrStale = errors.New("generated files are out of date")

// File is one generated source.
type File struct {
	Category emitter.Category
	Name     string
	Content  []byte
	Records  int
}

// Run generates all categories for cfg.Version. Nothing is written unless
// every category succeeds.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger, stdout io.Writer) error {
	if cfg.Fetch {
		path, err := fetch.Fetch(ctx, fetch.Options{
			Base:     cfg.FetchBase,
			Platform: cfg.Platform,
			Version:  cfg.Version,
			Dir:      cfg.DataDir,
			Source:   cfg.FetchSource,
		})
		if err != nil {
			return err
		}
		log.Info("fetched data", "version", cfg.Version, "path", path)
	}

	src := gamedata.DirSource{Root: cfg.DataDir, Platform: cfg.Platform}
	table, err := src.Load(ctx, cfg.Version)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	log.Debug("loaded data", "version", table.Version,
		"blocks", len(table.Blocks), "items", len(table.Items),
		"entities", len(table.Entities), "foods", len(table.Foods))

	templates, err := LoadTemplates(cfg.TemplateDir)
	if err != nil {
		return err
	}

	files, err := Generate(ctx, table, templates)
	if err != nil {
		return err
	}

	switch {
	case cfg.DryRun:
		return printFiles(stdout, files)
	case cfg.Check:
		return check(cfg.OutDir, files, log)
	default:
		return write(cfg.OutDir, files, log)
	}
}

// LoadTemplates reads every category's template from dir, or returns the
// built-in templates when dir is empty.
func LoadTemplates(dir string) (map[emitter.Category]string, error) {
	templates := make(map[emitter.Category]string, len(emitter.Categories))
	for _, c := range emitter.Categories {
		if dir == "" {
			tmpl, err := emitter.DefaultTemplate(c)
			if err != nil {
				return nil, err
			}
			templates[c] = tmpl
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, c.FileName()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", c.FileName(), err)
		}
		templates[c] = string(raw)
	}
	return templates, nil
}

// Generate emits every category concurrently. The table is only read, and
// each goroutine fills its own slot.
func Generate(ctx context.Context, table *gamedata.Table, templates map[emitter.Category]string) ([]File, error) {
	files := make([]File, len(emitter.Categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range emitter.Categories {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tmpl, ok := templates[c]
			if !ok {
				return fmt.Errorf("generate %s: no template", c.FileName())
			}
			out, err := emitter.Emit(c, table, tmpl, emitter.JavaBlockRefs{})
			if err != nil {
				return fmt.Errorf("generate %s: %w", c.FileName(), err)
			}
			files[i] = File{
				Category: c,
				Name:     c.FileName(),
				Content:  []byte(out),
				Records:  recordCount(c, table),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func recordCount(c emitter.Category, table *gamedata.Table) int {
	switch c {
	case emitter.Blocks:
		return len(table.Blocks)
	case emitter.Items:
		return len(table.Items)
	case emitter.Entities:
		return len(table.Entities)
	case emitter.Foods:
		return len(table.Foods)
	default:
		return 0
	}
}

func printFiles(w io.Writer, files []File) error {
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "// ===== %s =====\n%s", f.Name, f.Content); err != nil {
			return err
		}
		if !bytes.HasSuffix(f.Content, []byte("\n")) {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func check(outDir string, files []File, log *slog.Logger) error {
	var stale []string
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		existing, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err != nil || !bytes.Equal(existing, f.Content) {
			log.Warn("stale", "file", path)
			stale = append(stale, f.Name)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}
	log.Info("generated files are up to date", "dir", outDir)
	return nil
}

// write installs files in two phases. Every file is first written to a temp
// file next to its target, and any failure there removes the temp files and
// leaves outDir as it was. Only then are the temp files renamed into place.
func write(outDir string, files []File, log *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()

	for _, f := range files {
		tmp, err := stage(filepath.Join(outDir, f.Name), f.Content)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.Rename(staged[i], path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info("generated", "file", path, "records", f.Records)
	}
	return nil
}

// stage writes data to a temp file beside path and returns its name. It
// fails when path is a directory, since the rename would.
func stage(path string, data []byte) (string, error) {
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("write %s: is a directory", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(name)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return name, nil
}
