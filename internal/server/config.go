package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ironsheep/seam-carving-mcp/internal/imaging"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel   = "SEAM_MCP_LOG_LEVEL"
	EnvRGBWeights = "SEAM_MCP_RGB_WEIGHTS"
	EnvPreviewMax = "SEAM_MCP_PREVIEW_MAX"
)

// Config holds server-wide settings.
type Config struct {
	// Debug enables progress logging from the carving engine.
	Debug bool

	// Weights is the default RGB weighting for tools that do not pass
	// their own.
	Weights imaging.RGBWeights

	// PreviewMax caps the longest edge of images returned inline. Results
	// saved with output_path are always written at full size. Zero
	// disables the cap.
	PreviewMax int
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Weights:    imaging.DefaultRGBWeights,
		PreviewMax: 1024,
	}
}

// ConfigFromEnv reads SEAM_MCP_LOG_LEVEL ("debug"), SEAM_MCP_RGB_WEIGHTS
// ("r,g,b") and SEAM_MCP_PREVIEW_MAX (pixels) over DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"

	if v := os.Getenv(EnvRGBWeights); v != "" {
		w, err := imaging.ParseRGBWeights(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvRGBWeights, err)
		}
		cfg.Weights = w
	}

	if v := os.Getenv(EnvPreviewMax); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s: invalid preview size %q", EnvPreviewMax, v)
		}
		cfg.PreviewMax = n
	}

	return cfg, nil
}
