package config

// Presets trade output size for render time. Only appearance fields are set;
// paths and frame geometry keep their current values.
var Presets = map[string]*Config{
	"draft": {
		DPI: 25, SizeInches: 12, FontSize: 18, Delay: 5, Colormap: DefaultColormap,
	},
	"preview": {
		DPI: 75, SizeInches: 12, FontSize: 18, Delay: 2, Colormap: DefaultColormap,
	},
	"print": {
		DPI: 300, SizeInches: 12, FontSize: 18, Delay: 1, Colormap: DefaultColormap,
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

// ApplyPreset copies the preset's appearance fields onto c.
func (c *Config) ApplyPreset(p *Config) {
	c.DPI = p.DPI
	c.SizeInches = p.SizeInches
	c.FontSize = p.FontSize
	c.Delay = p.Delay
	c.Colormap = p.Colormap
}
