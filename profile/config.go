package profile

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds classifier thresholds
type Config struct {
	// MaxWallRatio is the largest plausible wall thickness as a fraction
	// of the outer dimension (radius for round sections, half the smaller
	// extent for prismatic ones). Thicker walls are flagged with a
	// ThicknessOutOfRange diagnostic but still reported.
	MaxWallRatio float64

	// OpenSectionRatio separates channels from angles in the open-section
	// branch: when the smaller extent divided by the larger is below this
	// ratio, the section is markedly shallower in one direction and reads
	// as a channel; otherwise as an angle.
	OpenSectionRatio float64

	// Logger receives debug-level stage traces. Nil disables tracing.
	// Logging never influences classification.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration the thresholds were tuned with
func DefaultConfig() Config {
	return Config{
		MaxWallRatio:     0.20,
		OpenSectionRatio: 0.75,
	}
}

// configFile is the on-disk shape of a threshold tuning file. Pointer
// fields distinguish an absent key from an explicit zero.
type configFile struct {
	MaxWallRatio     *float64 `yaml:"max_wall_ratio"`
	OpenSectionRatio *float64 `yaml:"open_section_ratio"`
}

// LoadConfig reads threshold overrides from a YAML file. Keys absent from
// the file keep their default values; present keys must be positive.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.MaxWallRatio != nil {
		if *file.MaxWallRatio <= 0 {
			return cfg, fmt.Errorf("config %s: max_wall_ratio must be positive, got %g", path, *file.MaxWallRatio)
		}
		cfg.MaxWallRatio = *file.MaxWallRatio
	}
	if file.OpenSectionRatio != nil {
		if *file.OpenSectionRatio <= 0 {
			return cfg, fmt.Errorf("config %s: open_section_ratio must be positive, got %g", path, *file.OpenSectionRatio)
		}
		cfg.OpenSectionRatio = *file.OpenSectionRatio
	}

	return cfg, nil
}
