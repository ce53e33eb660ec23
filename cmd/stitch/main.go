package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/buildbuildio/stitch"
	"github.com/buildbuildio/stitch/config"
	"github.com/buildbuildio/stitch/gqlerrors"

	json "github.com/goccy/go-json"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "stitch.yaml", "path to stitching config")
	outPath := fs.String("out", "", "write merged schema to file instead of config output or stdout")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: stitch [--config stitch.yaml] [--out merged.graphql]\n\n")
		fmt.Fprintln(stderr, "Merges GraphQL schemas of several services into one schema.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// schema paths are relative to the config file
	dir := filepath.Dir(*configPath)
	sources, options := stitch.FromConfig(cfg, os.DirFS(dir))
	options = append(options, stitch.WithLogger(logger))

	s, err := stitch.NewStitcher(sources, options...)
	if err != nil {
		emitErrors(stderr, err)
		return 1
	}

	schemaPath := *outPath
	if schemaPath == "" && cfg.Output.Schema != "" {
		schemaPath = filepath.Join(dir, cfg.Output.Schema)
	}

	if err := write(stdout, schemaPath, []byte(s.SDL())); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if cfg.Output.Provenance != "" {
		b, err := json.MarshalIndent(s.Provenance(), "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if err := write(stdout, filepath.Join(dir, cfg.Output.Provenance), b); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	return 0
}

func write(stdout io.Writer, path string, b []byte) error {
	if path == "" {
		_, err := stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func emitErrors(w io.Writer, err error) {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	e.Encode(map[string]interface{}{
		"errors": gqlerrors.FormatError(err),
	})
}
