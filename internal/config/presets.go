package config

var Presets = map[string]*Config{
	"sparse": {
		Law: "linear", Particles: 60, Spread: 250.0, Dt: 0.02,
		GrowthRate: 0.05, DotSize: 3, FrameRate: 30, SnapshotDir: "snapshots",
	},
	"dense": {
		Law: "linear", Particles: 800, Spread: 150.0, Dt: 0.02,
		GrowthRate: 0.03, DotSize: 1, FrameRate: 30, SnapshotDir: "snapshots",
	},
	"rapid": {
		Law: "linear", Particles: 200, Spread: 100.0, Dt: 0.01,
		GrowthRate: 0.25, DotSize: 2, FrameRate: 60, SnapshotDir: "snapshots",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
