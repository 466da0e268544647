// Package main is the fsminer command-line entry point: load a YAML
// configuration, run one search against a graph database, and write
// the reported fragments to stdout (plus an optional identifier
// sidecar file).
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/config"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/ioiface"
	"github.com/fsminer/fsminer/miner"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file (defaults applied when empty)")
	idsPath := flag.String("ids", "", "optional path for the id:list identifier sidecar")
	kindFlag := flag.String("cf", "breadth1", "canonical form: breadth1, breadth2, or depth")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts, err := loadOptions(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	idsFile, closeIDs := openIdentifierSink(*idsPath, &logger)
	if closeIDs != nil {
		defer closeIDs()
	}
	var idsWriter io.Writer
	if idsFile != nil {
		idsWriter = idsFile
	}
	bw := ioiface.NewBufferedWriter(os.Stdout, idsWriter)

	cfg := miner.Config{
		Options: opts,
		// A real deployment supplies a GraphSource that parses its own
		// line notation or table format (spec: out of scope for this
		// engine); the empty SliceSource below lets the binary start up
		// and exit cleanly with a zero-graph database.
		Source:      ioiface.NewSliceSource(nil),
		Writer:      bw,
		Identifiers: bw,
		Logger:      logger,
		Kind:        parseKind(*kindFlag),
		SupportKind: fragment.Graphs,
	}

	m, err := miner.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up search")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := m.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("search failed")
	}
}

func loadOptions(path string) (config.Options, error) {
	if path == "" {
		return config.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Options{}, err
	}

	return config.Load(data)
}

func parseKind(s string) canon.Kind {
	switch s {
	case "breadth2":
		return canon.Breadth2
	case "depth":
		return canon.Depth
	default:
		return canon.Breadth1
	}
}

func openIdentifierSink(path string, logger *zerolog.Logger) (*os.File, func()) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("could not open identifier sidecar, continuing without it")

		return nil, nil
	}

	return f, func() { _ = f.Close() }
}
