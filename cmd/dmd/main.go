// Command dmd downloads one version of minecraft-data into a local data
// directory laid out the way enumgen reads it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/enumgen/internal/fetch"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dmd: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("dmd", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		base     = flags.String("base", fetch.DefaultBase, "minecraft-data repository: a git URL or a local checkout")
		platform = flags.String("platform", fetch.DefaultPlatform, "platform of schemas")
		ver      = flags.String("version", "1.20.4", "version of schemas")
		out      = flags.String("o", "./scheme", "output dir path")
		source   = flags.String("source", "", "go-getter source holding just the version's directory, used instead of the repository")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *platform == "" {
		return errors.New("platform required")
	}

	log := slog.New(slog.NewTextHandler(stderr, nil))

	opts := fetch.Options{
		Base:     *base,
		Platform: *platform,
		Version:  *ver,
		Dir:      *out,
		Source:   *source,
	}
	log.Info("start downloading schemes", "url", fetch.URL(opts), "path", fetch.Path(opts))

	path, err := fetch.Fetch(ctx, opts)
	if err != nil {
		return err
	}

	log.Info("done downloading schemes", "path", path)
	return nil
}
