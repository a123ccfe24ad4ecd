// Command enumgen generates the Java registry classes (BlockType, ItemType,
// EntityType, FoodType) from minecraft-data for one game version.
//
// Usage:
//
//	enumgen [flags]
//
// Settings are read from, in increasing precedence: built-in defaults,
// ./enumgen.yaml (or -config), ENUMGEN_* environment variables, and flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/enumgen/cmd/enumgen/internal/generator"
	"github.com/OCharnyshevich/enumgen/internal/config"
	"github.com/OCharnyshevich/enumgen/internal/gamedata"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "enumgen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()

	flags := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file (default: ./"+config.DefaultFile+" if present)")
	list := flags.Bool("list", false, "list the versions available in the data dir and exit")
	flags.StringVar(&cfg.Version, "version", cfg.Version, "game version to generate")
	flags.StringVar(&cfg.Platform, "platform", cfg.Platform, "minecraft-data platform")
	flags.StringVar(&cfg.DataDir, "data", cfg.DataDir, "minecraft-data data/ directory")
	flags.StringVar(&cfg.TemplateDir, "templates", cfg.TemplateDir, "template directory (default: built-in templates)")
	flags.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory for generated sources")
	flags.BoolVar(&cfg.Fetch, "fetch", cfg.Fetch, "download the version's data before generating")
	flags.StringVar(&cfg.FetchBase, "fetch-base", cfg.FetchBase, "minecraft-data repository to fetch from: a git URL or a local checkout")
	flags.StringVar(&cfg.FetchSource, "fetch-source", cfg.FetchSource, "go-getter source holding just the version's directory, used instead of the repository")
	flags.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "print generated sources to stdout instead of writing them")
	flags.BoolVar(&cfg.Check, "check", cfg.Check, "fail if generated sources on disk are out of date")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	explicitFlags := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicitFlags[f.Name] = true })

	layered := config.DefaultConfig()
	path := *configPath
	if path == "" {
		path = config.DefaultFile
	}
	if err := config.LoadFile(path, layered); err != nil {
		if *configPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := config.ApplyEnv(layered); err != nil {
		return err
	}
	config.Merge(cfg, layered, explicitFlags)

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		versions, err := gamedata.DirSource{Root: cfg.DataDir, Platform: cfg.Platform}.Versions()
		if err != nil {
			return err
		}
		for _, v := range versions {
			fmt.Fprintln(stdout, v)
		}
		return nil
	}

	log.Info("generating", "version", cfg.Version, "platform", cfg.Platform, "data", cfg.DataDir)

	return generator.Run(ctx, cfg, log, stdout)
}
