package config

// Presets are ready-made runs for common first-order equations.
var Presets = map[string]*Config{
	"cooling": {
		Formula: "0.3*(300 - y)", Step: 0.1, X0: 0, Y0: 350, XEnd: 10, Precision: 6,
		Field: FieldConfig{XMin: 0, YMin: 280, XMax: 10, YMax: 360, XGrid: 0.5, YGrid: 0.5},
	},
	"logistic": {
		Formula: "0.5*y*(1 - y/10)", Step: 0.1, X0: 0, Y0: 0.5, XEnd: 20, Precision: 6,
		Field: FieldConfig{XMin: 0, YMin: 0, XMax: 20, YMax: 12, XGrid: 1, YGrid: 1},
	},
	"decay": {
		Formula: "-0.7*y", Step: 0.05, X0: 0, Y0: 100, XEnd: 5, Precision: 6,
		Field: FieldConfig{XMin: 0, YMin: 0, XMax: 5, YMax: 100, XGrid: 0.25, YGrid: 0.25},
	},
	"ramp": {
		Formula: "x - y", Step: 0.1, X0: 0, Y0: 1, XEnd: 6, Precision: 4,
		Field: FieldConfig{XMin: 0, YMin: -2, XMax: 6, YMax: 6, XGrid: 0.3, YGrid: 0.3},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Format == "" {
		cfg.Format = "table"
	}
	return &cfg
}

// ListPresets returns the preset names in map order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
