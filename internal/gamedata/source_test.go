package gamedata_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

const (
	blocksJSON   = `[{"id":1,"name":"stone","displayName":"Stone","hardness":1.5,"stackSize":64,"diggable":true},{"id":0,"name":"air","displayName":"Air","hardness":null,"stackSize":64,"diggable":false}]`
	itemsJSON    = `[{"id":1,"name":"stone","displayName":"Stone","stackSize":64},{"id":840,"name":"apple","displayName":"Apple","stackSize":64}]`
	entitiesJSON = `[{"id":54,"internalId":54,"name":"zombie","displayName":"Zombie","type":"hostile","width":0.6,"height":1.95,"category":"Hostile mobs"}]`
	foodsJSON    = `[{"id":840,"name":"apple","displayName":"Apple","stackSize":64,"foodPoints":4,"saturation":2.4,"effectiveQuality":6.4,"saturationRatio":0.6}]`
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func versionFiles() map[string]string {
	return map[string]string{
		"blocks.json":   blocksJSON,
		"items.json":    itemsJSON,
		"entities.json": entitiesJSON,
		"foods.json":    foodsJSON,
	}
}

func TestDirSource_PlatformLayout(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "pc", "1.20.4"), versionFiles())

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	tbl, err := src.Load(context.Background(), "1.20.4")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(tbl.Blocks) != 2 || tbl.Blocks[0].Name != "stone" || tbl.Blocks[1].Name != "air" {
		t.Fatalf("unexpected blocks %+v", tbl.Blocks)
	}
	if tbl.Blocks[1].Hardness != nil {
		t.Error("expected null hardness to decode as nil")
	}
	if len(tbl.Entities) != 1 || tbl.Entities[0].Type != "hostile" {
		t.Errorf("unexpected entities %+v", tbl.Entities)
	}
	if len(tbl.Foods) != 1 || tbl.Foods[0].SaturationRatio != 0.6 {
		t.Errorf("unexpected foods %+v", tbl.Foods)
	}
	if _, ok := tbl.ItemByID(840); !ok {
		t.Error("expected item 840 to be indexed")
	}
}

func TestDirSource_MissingVersion(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "pc", "1.20.4"), versionFiles())

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	_, err := src.Load(context.Background(), "1.99")

	var missing *gamedata.MissingVersionError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingVersionError, got %v", err)
	}
	if missing.Version != "1.99" {
		t.Errorf("expected version 1.99, got %q", missing.Version)
	}
}

func TestDirSource_DataPaths(t *testing.T) {
	root := t.TempDir()
	// 1.20.4 shares blocks with 1.20.3 and keeps the rest in its own directory.
	writeFiles(t, filepath.Join(root, "pc", "1.20.3"), map[string]string{"blocks.json": blocksJSON})
	writeFiles(t, filepath.Join(root, "pc", "1.20.4"), map[string]string{
		"items.json":    itemsJSON,
		"entities.json": entitiesJSON,
		"foods.json":    foodsJSON,
	})
	writeFiles(t, root, map[string]string{gamedata.DataPathsFile: `{
		"pc": {
			"1.20.4": {"blocks": "pc/1.20.3", "items": "pc/1.20.4", "entities": "pc/1.20.4", "foods": "pc/1.20.4"},
			"1.8": {"blocks": "pc/1.8", "items": "pc/1.8", "entities": "pc/1.8", "foods": "pc/1.8"}
		},
		"bedrock": {}
	}`})

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	tbl, err := src.Load(context.Background(), "1.20.4")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tbl.Blocks) != 2 {
		t.Errorf("expected blocks from pc/1.20.3, got %d", len(tbl.Blocks))
	}

	_, err = src.Load(context.Background(), "1.20.3")
	var missing *gamedata.MissingVersionError
	if !errors.As(err, &missing) {
		t.Fatalf("a directory without an index entry is not a version, got %v", err)
	}

	versions, err := src.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if diff := cmp.Diff([]string{"1.8", "1.20.4"}, versions); diff != "" {
		t.Errorf("Versions() mismatch (-want +got):\n%s", diff)
	}
}

func TestDirSource_DataPathsMissingCategory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{gamedata.DataPathsFile: `{"pc":{"1.20.4":{"blocks":"pc/1.20.4"}}}`})

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	_, err := src.Load(context.Background(), "1.20.4")
	if err == nil || !strings.Contains(err.Error(), "no items entry") {
		t.Fatalf("expected missing items entry error, got %v", err)
	}
}

func TestDirSource_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	files := versionFiles()
	files["entities.json"] = "{"
	writeFiles(t, filepath.Join(root, "pc", "1.20.4"), files)

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	_, err := src.Load(context.Background(), "1.20.4")
	if err == nil || !strings.Contains(err.Error(), "parse entities.json") {
		t.Fatalf("expected parse error naming entities.json, got %v", err)
	}
}

func TestDirSource_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "pc", "1.20.4"), versionFiles())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := gamedata.DirSource{Root: root, Platform: "pc"}
	if _, err := src.Load(ctx, "1.20.4"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDirSource_Versions(t *testing.T) {
	root := t.TempDir()
	for _, v := range []string{"1.20.4", "1.8", "1.12.2"} {
		writeFiles(t, filepath.Join(root, "pc", v), nil)
	}
	writeFiles(t, filepath.Join(root, "pc"), map[string]string{"README.md": "not a version"})

	versions, err := gamedata.DirSource{Root: root, Platform: "pc"}.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if diff := cmp.Diff([]string{"1.8", "1.12.2", "1.20.4"}, versions); diff != "" {
		t.Errorf("Versions() mismatch (-want +got):\n%s", diff)
	}

	none, err := gamedata.DirSource{Root: root, Platform: "bedrock"}.Versions()
	if err != nil || len(none) != 0 {
		t.Errorf("expected no versions for unknown platform, got %v, %v", none, err)
	}
}

func TestReadDataPaths(t *testing.T) {
	root := t.TempDir()
	paths, err := gamedata.ReadDataPaths(root)
	if err != nil || paths != nil {
		t.Fatalf("expected no index, got %v, %v", paths, err)
	}

	writeFiles(t, root, map[string]string{gamedata.DataPathsFile: `{"pc":{"1.20.4":{"blocks":"pc/1.20.3","items":"pc/1.20.4","entities":"pc/1.20.3","foods":"pc/1.20.3"}}}`})
	paths, err = gamedata.ReadDataPaths(root)
	if err != nil {
		t.Fatalf("ReadDataPaths: %v", err)
	}

	dirs, err := paths.Dirs("pc", "1.20.4")
	if err != nil {
		t.Fatalf("Dirs: %v", err)
	}
	want := map[string]string{"blocks": "pc/1.20.3", "items": "pc/1.20.4", "entities": "pc/1.20.3", "foods": "pc/1.20.3"}
	if diff := cmp.Diff(want, dirs); diff != "" {
		t.Errorf("Dirs mismatch (-want +got):\n%s", diff)
	}

	var missing *gamedata.MissingVersionError
	if _, err := paths.Dirs("bedrock", "1.20.4"); !errors.As(err, &missing) {
		t.Errorf("expected MissingVersionError for another platform, got %v", err)
	}
}
