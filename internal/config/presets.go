package config

// Presets are named starting points for a session: which algorithm the
// window opens on and what the first baseline looks like.
var Presets = map[string]*Config{
	"classic": {
		Algorithm: "bubble", Pattern: "random", Theme: "classic",
	},
	"worst-case": {
		Algorithm: "insertion", Pattern: "reversed", Theme: "sunset",
	},
	"best-case": {
		Algorithm: "bubble", Pattern: "sorted", Theme: "retro",
	},
	"plateaus": {
		Algorithm: "selection", Pattern: "few-unique", Theme: "ocean",
	},
	"flatline": {
		Algorithm: "selection", Pattern: "equal", Theme: "minimal",
	},
}

// GetPreset returns a copy of the preset merged over the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Pattern = p.Pattern
	cfg.Theme = p.Theme
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
