package config

import (
	"errors"
	"fmt"
	"great-circle-arcs/internal/domain"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for arc generation.
type Config struct {
	Segments          int
	Workers           int
	SplitAntimeridian bool
	Origin            *domain.Coordinates
	PlacesPath        string
	LogLevel          string
	LogFormat         string
}

// Load reads an optional .env file and then the process environment.
// It reports whether a .env file was found so the caller can log it.
func Load() (Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg := Config{
		Segments:          GetInt("ARC_SEGMENTS", 100),
		Workers:           GetInt("ARC_WORKERS", 4),
		SplitAntimeridian: GetBool("ARC_SPLIT_ANTIMERIDIAN", true),
		PlacesPath:        Get("ARC_PLACES_PATH", ""),
		LogLevel:          Get("LOG_LEVEL", "info"),
		LogFormat:         Get("LOG_FORMAT", "console"),
	}

	if raw := Get("ARC_ORIGIN", ""); raw != "" {
		origin, err := ParseCoordinates(raw)
		if err != nil {
			return Config{}, envLoaded, fmt.Errorf("load config: ARC_ORIGIN: %w", err)
		}
		cfg.Origin = &origin
	}

	if cfg.Segments < 1 {
		return Config{}, envLoaded, fmt.Errorf("load config: ARC_SEGMENTS must be >= 1, got %d", cfg.Segments)
	}
	if cfg.Workers < 1 {
		return Config{}, envLoaded, fmt.Errorf("load config: ARC_WORKERS must be >= 1, got %d", cfg.Workers)
	}

	return cfg, envLoaded, nil
}

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integers. Unparseable values fall back.
func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// GetBool is Get for booleans. Unparseable values fall back.
func GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// ParseCoordinates parses "lat,lon" in decimal degrees.
func ParseCoordinates(s string) (domain.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates %q: want \"lat,lon\"", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates %q: latitude: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates %q: longitude: %w", s, err)
	}

	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.Coordinates{}, fmt.Errorf("parse coordinates %q: %w", s, ErrOutOfRange)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

var ErrOutOfRange = errors.New("latitude must be a number in [-90, 90] and longitude in [-180, 180]")
