package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilegrid/grid"
)

// Environment keys read by loadConfig. A .env file in the working directory
// is loaded into the environment first, if present.
const (
	envFile       = "GRIDPATH_FILE"
	envFilterFile = "GRIDPATH_FILTER_FILE"
	envUseCost    = "GRIDPATH_USE_COST"
	envAllowed    = "GRIDPATH_ALLOWED"
	envLogLevel   = "GRIDPATH_LOG_LEVEL"
)

var (
	errMissingFile  = errors.New("gridpath: no grid file (set -file or " + envFile + ")")
	errMissingPoint = errors.New("gridpath: -start and -end are required")
	errBadPoint     = errors.New("gridpath: coordinate must be x,y")
)

// Config holds the resolved settings of one gridpath invocation.
type Config struct {
	GridFile   string          // cost grid, one row per line
	FilterFile string          // type grid for -allowed; empty means the cost grid
	UseCost    bool            // add entered cell values to the path cost
	Allowed    []int           // permitted type values; empty means unconstrained
	LogLevel   slog.Level      // minimum level written to stderr
	Start, End grid.Coordinate // search endpoints
}

// loadConfig resolves Config from lookup (the environment) overridden by args.
func loadConfig(args []string, lookup func(string) (string, bool)) (Config, error) {
	env := func(key, def string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return def
	}

	useCost, err := strconv.ParseBool(env(envUseCost, "false"))
	if err != nil {
		return Config{}, fmt.Errorf("gridpath: %s: %w", envUseCost, err)
	}

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		file       = fs.String("file", env(envFile, ""), "cost grid file")
		filterFile = fs.String("filter-file", env(envFilterFile, ""), "type grid file for -allowed")
		cost       = fs.Bool("cost", useCost, "add entered cell values to the path cost")
		allowed    = fs.String("allowed", env(envAllowed, ""), "comma-separated permitted type values")
		level      = fs.String("log-level", env(envLogLevel, "info"), "debug, info, warn or error")
		start      = fs.String("start", "", "start coordinate x,y")
		end        = fs.String("end", "", "end coordinate x,y")
	)
	if err = fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("gridpath: %w", err)
	}

	cfg := Config{GridFile: *file, FilterFile: *filterFile, UseCost: *cost}
	if cfg.GridFile == "" {
		return Config{}, errMissingFile
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return Config{}, fmt.Errorf("gridpath: log level: %w", err)
	}
	if cfg.Allowed, err = parseInts(*allowed); err != nil {
		return Config{}, fmt.Errorf("gridpath: allowed: %w", err)
	}
	if *start == "" || *end == "" {
		return Config{}, errMissingPoint
	}
	if cfg.Start, err = parsePoint(*start); err != nil {
		return Config{}, err
	}
	if cfg.End, err = parsePoint(*end); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (grid.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coordinate{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if err := errors.Join(errX, errY); err != nil {
		return grid.Coordinate{}, fmt.Errorf("%w: %q: %w", errBadPoint, s, err)
	}
	return grid.Coordinate{X: x, Y: y}, nil
}

// parseInts parses a comma-separated list; blank input yields nil.
func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
