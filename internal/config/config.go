package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStep      = 0.1
	DefaultXEnd      = 10.0
	DefaultPrecision = 6
	DefaultXGrid     = 5.0
	DefaultYGrid     = 5.0
)

// Config is a yaml job file describing either a table run or a direction
// field. CLI flags override whatever is loaded here.
type Config struct {
	Formula   string       `yaml:"formula"`
	Step      float64      `yaml:"step"`
	X0        float64      `yaml:"x0"`
	Y0        float64      `yaml:"y0"`
	XEnd      float64      `yaml:"x_end"`
	Precision int          `yaml:"precision"`
	Format    string       `yaml:"format"`
	Field     FieldConfig  `yaml:"field"`
	Curve     *CurveConfig `yaml:"curve,omitempty"`
}

// FieldConfig holds the direction-field domain and grid spacing.
type FieldConfig struct {
	XMin  float64 `yaml:"x_min"`
	YMin  float64 `yaml:"y_min"`
	XMax  float64 `yaml:"x_max"`
	YMax  float64 `yaml:"y_max"`
	XGrid float64 `yaml:"x_grid"`
	YGrid float64 `yaml:"y_grid"`
}

// CurveConfig holds the overlay curve settings. Step has no default: the
// field grid spacing is a density parameter, not a time step.
type CurveConfig struct {
	Step float64 `yaml:"step"`
	X0   float64 `yaml:"x0"`
	Y0   float64 `yaml:"y0"`
}

func DefaultConfig() *Config {
	return &Config{
		Step:      DefaultStep,
		XEnd:      DefaultXEnd,
		Precision: DefaultPrecision,
		Format:    "table",
		Field: FieldConfig{
			XGrid: DefaultXGrid,
			YGrid: DefaultYGrid,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
