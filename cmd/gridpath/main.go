// Command gridpath loads an integer grid from a text file and prints the A*
// path between two coordinates, end first, one coordinate per line.
//
// Usage:
//
//	gridpath -file costs.txt -start 0,0 -end 9,9 [-cost] [-allowed 1,2 -filter-file types.txt]
//
// Every flag except -start and -end falls back to a GRIDPATH_* environment
// variable, which may also come from a .env file.
//
// Exit status is 0 when a path is printed, 2 when end is unreachable and 1 on
// any error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tilegrid/astar"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/metrics"
)

const tracerName = "tilegrid/cmd/gridpath"

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUnreachable = 2
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "gridpath: .env: %v\n", err)
	}
	cfg, err := loadConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	os.Exit(run(context.Background(), cfg, os.Stdout, logger))
}

// run executes one search described by cfg and writes the path to out.
func run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) int {
	costs, err := loadGrid(cfg.GridFile)
	if err != nil {
		logger.Error("load_grid", slog.String("file", cfg.GridFile), slog.Any("error", err))
		return exitError
	}
	logger.Debug("grid_loaded",
		slog.String("file", cfg.GridFile),
		slog.Int("width", costs.Width()),
		slog.Int("height", costs.Height()),
	)

	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		logger.Error("metrics", slog.Any("error", err))
		return exitError
	}

	opts := []astar.Option{astar.WithCost(cfg.UseCost), astar.WithObserver(collector)}
	if len(cfg.Allowed) > 0 {
		types := costs
		if cfg.FilterFile != "" {
			if types, err = loadGrid(cfg.FilterFile); err != nil {
				logger.Error("load_filter_grid", slog.String("file", cfg.FilterFile), slog.Any("error", err))
				return exitError
			}
		}
		opts = append(opts, astar.WithTypeFilter(astar.NewTypeFilter(types, cfg.Allowed...)))
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "gridpath.Search",
		trace.WithAttributes(
			attribute.String("start", cfg.Start.String()),
			attribute.String("end", cfg.End.String()),
			attribute.Bool("use_cost", cfg.UseCost),
			attribute.Int("allowed_values", len(cfg.Allowed)),
		),
	)
	defer span.End()

	res, err := astar.Search(costs, cfg.Start, cfg.End, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search rejected")
		logger.Error("search",
			slog.String("start", cfg.Start.String()),
			slog.String("end", cfg.End.String()),
			slog.Any("error", err),
		)
		return exitError
	}
	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("cost", res.Cost),
	)

	if err = writePath(out, res.Path); err != nil {
		span.RecordError(err)
		logger.Error("write_path", slog.Any("error", err))
		return exitError
	}

	variant := metrics.VariantPlain
	if len(cfg.Allowed) > 0 {
		variant = metrics.VariantFiltered
	}
	logger.Info("search_complete",
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
		slog.Int("path_len", len(res.Path)),
		slog.Int("cost", res.Cost),
		slog.Float64("searches_found", collector.Searches(variant, metrics.ResultFound)),
		slog.Float64("searches_unreachable", collector.Searches(variant, metrics.ResultUnreachable)),
	)

	if !res.Found {
		span.SetStatus(codes.Ok, "unreachable")
		return exitUnreachable
	}
	span.SetStatus(codes.Ok, "found")
	return exitOK
}

// writePath prints one "x y" pair per line in the order given.
func writePath(w io.Writer, path []grid.Coordinate) error {
	for _, c := range path {
		if _, err := fmt.Fprintf(w, "%d %d\n", c.X, c.Y); err != nil {
			return err
		}
	}
	return nil
}
