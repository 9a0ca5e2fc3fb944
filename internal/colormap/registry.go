package colormap

import "sort"

// ColorBrewer diverging schemes, 11 classes each.
var (
	RdYlGn = New("RdYlGn",
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
	)

	RdBu = New("RdBu",
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	)

	Spectral = New("Spectral",
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
	)

	// Default runs green for low states through yellow to red for high ones.
	Default = RdYlGn.Reversed()

	registry = map[string]Colormap{}
)

func init() {
	for _, c := range []Colormap{RdYlGn, RdBu, Spectral} {
		registry[c.Name] = c
		r := c.Reversed()
		registry[r.Name] = r
	}
}

// Lookup returns the colormap registered under name.
func Lookup(name string) (Colormap, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names lists the registered colormaps in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
