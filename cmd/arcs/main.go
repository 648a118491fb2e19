package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"great-circle-arcs/internal/adapters/export"
	"great-circle-arcs/internal/adapters/places"
	"great-circle-arcs/internal/config"
	"great-circle-arcs/internal/domain"
	"great-circle-arcs/internal/platform/logging"
	"great-circle-arcs/internal/platform/obs"
	"great-circle-arcs/internal/ports"
	"great-circle-arcs/internal/services"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// main is the application composition root.
// It wires the place source and GeoJSON writer behind ports and runs one batch of arcs.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode follows flag.ExitOnError: -h/-help exits 0, any other failure 1.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		return 1
	}
}

type options struct {
	from           string
	to             string
	origin         string
	originName     string
	placesPath     string
	segments       int
	workers        int
	split          bool
	skipDegenerate bool
	indent         string
}

// run parses flags (defaults come from the environment) and writes a GeoJSON
// FeatureCollection of arcs to stdout. Failures are logged to stderr with the
// configured logger before being returned.
//
// Two modes:
//
//	arcs -from 48.85,2.35 -to 40.71,-74.00          one arc
//	arcs -origin 48.85,2.35 -places places.geojson  one arc per place
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		fallback := logging.New(stderr, "info", "console")
		fallback.Error().Err(err).Msg("arcs failed")
		return err
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	defer func() {
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			logger.Error().Err(err).Msg("arcs failed")
		}
	}()
	if !envLoaded {
		logger.Debug().Msg("No .env file found (using environment variables)")
	}

	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	ctx = obs.WithRequestID(logger.WithContext(ctx), "cli")

	req, source, err := buildRequest(opts)
	if err != nil {
		return err
	}

	arcs, err := services.ArcsFromOrigin(ctx, req, source)
	if err != nil {
		return err
	}

	writerOpts := []export.Option{export.WithAntimeridianSplit(opts.split)}
	if opts.indent != "" {
		writerOpts = append(writerOpts, export.WithIndent(opts.indent))
	}

	var sink ports.ArcSink = export.NewArcWriter(stdout, writerOpts...)
	return sink.WriteArcs(ctx, arcs)
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	var opts options

	defaultOrigin := ""
	if cfg.Origin != nil {
		defaultOrigin = fmt.Sprintf("%g,%g", cfg.Origin.Lat, cfg.Origin.Lon)
	}

	fs := flag.NewFlagSet("arcs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.from, "from", "", "start point as lat,lon (single-arc mode)")
	fs.StringVar(&opts.to, "to", "", "end point as lat,lon (single-arc mode)")
	fs.StringVar(&opts.origin, "origin", defaultOrigin, "origin as lat,lon for -places mode (ARC_ORIGIN)")
	fs.StringVar(&opts.originName, "origin-name", "origin", "name reported for the origin")
	fs.StringVar(&opts.placesPath, "places", cfg.PlacesPath, "GeoJSON FeatureCollection of Point places (ARC_PLACES_PATH)")
	fs.IntVar(&opts.segments, "segments", cfg.Segments, "segments per arc; each arc has segments+1 points (ARC_SEGMENTS)")
	fs.IntVar(&opts.workers, "workers", cfg.Workers, "arcs computed concurrently (ARC_WORKERS)")
	fs.BoolVar(&opts.split, "split", cfg.SplitAntimeridian, "cut arcs at the ±180° meridian (ARC_SPLIT_ANTIMERIDIAN)")
	fs.BoolVar(&opts.skipDegenerate, "skip-degenerate", false, "skip places antipodal to the origin instead of failing")
	fs.StringVar(&opts.indent, "indent", "", "indent string for pretty-printed output")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("parse flags: unexpected arguments %v", fs.Args())
	}

	return opts, nil
}

func buildRequest(opts options) (services.ArcsFromOriginRequest, ports.PlaceSource, error) {
	req := services.ArcsFromOriginRequest{
		Segments:       opts.segments,
		Workers:        opts.workers,
		SkipDegenerate: opts.skipDegenerate,
	}

	if opts.from != "" || opts.to != "" {
		if opts.from == "" || opts.to == "" {
			return req, nil, errors.New("build request: -from and -to must be given together")
		}
		from, err := config.ParseCoordinates(opts.from)
		if err != nil {
			return req, nil, fmt.Errorf("build request: -from: %w", err)
		}
		to, err := config.ParseCoordinates(opts.to)
		if err != nil {
			return req, nil, fmt.Errorf("build request: -to: %w", err)
		}

		req.Origin = domain.Place{Name: "from", Coords: from}
		return req, places.NewStaticPlaceSource([]domain.Place{{Name: "to", Coords: to}}), nil
	}

	if opts.origin == "" || opts.placesPath == "" {
		return req, nil, errors.New("build request: need -from/-to, or -origin with -places")
	}

	origin, err := config.ParseCoordinates(opts.origin)
	if err != nil {
		return req, nil, fmt.Errorf("build request: -origin: %w", err)
	}
	source, err := places.NewGeoJSONPlaceSource(opts.placesPath)
	if err != nil {
		return req, nil, fmt.Errorf("build request: %w", err)
	}

	req.Origin = domain.Place{Name: opts.originName, Coords: origin}
	return req, source, nil
}
