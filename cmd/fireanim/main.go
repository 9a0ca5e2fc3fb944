package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fireanim/internal/census"
	"github.com/san-kum/fireanim/internal/colormap"
	"github.com/san-kum/fireanim/internal/config"
	"github.com/san-kum/fireanim/internal/pipeline"
	"github.com/san-kum/fireanim/internal/trace"
	"github.com/san-kum/fireanim/internal/viz"
)

var (
	configFile string
	preset     string
	input      string
	output     string
	height     int
	width      int
	dpi        float64
	sizeInches float64
	fontSize   float64
	delay      int
	cmapName   string
	asJSON     bool
)

// main renders the default trace when run without arguments and exits with
// status 1 on any error.
func main() {
	rep := viz.NewReporter(os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "fireanim",
		Short:         "render a forest-fire trace as an animated gif",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			report, err := pipeline.Run(cfg, rep)
			if err != nil {
				return err
			}
			rep.Success("wrote %s", report.Output)
			rep.Metric("frames", report.Frames)
			rep.Metric("size", fmt.Sprintf("%.1f KiB", float64(report.Bytes)/1024))
			rep.Metric("elapsed", report.Elapsed.Round(time.Millisecond))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&input, "input", config.DefaultInput, "trace file")
	pf.IntVar(&height, "height", config.DefaultHeightPerState, "rows per time step")
	pf.IntVar(&width, "width", config.DefaultWidthPerState, "columns per row")

	f := rootCmd.Flags()
	f.StringVar(&output, "output", config.DefaultOutput, "gif output path")
	f.Float64Var(&dpi, "dpi", 300, "output resolution")
	f.Float64Var(&sizeInches, "size", 12, "canvas side in inches")
	f.Float64Var(&fontSize, "font-size", 18, "title font size in points (0 disables)")
	f.IntVar(&delay, "delay", 1, "frame delay in 1/100 s")
	f.StringVar(&cmapName, "colormap", config.DefaultColormap, "colormap name")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "summarise a trace without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				m, err := trace.Load(cfg.Input, cfg.WidthPerState)
				if err != nil {
					return err
				}
				return census.WriteJSON(os.Stdout, census.Export(m, cfg.HeightPerState))
			}
			return showInfo(cfg)
		},
	}
	infoCmd.Flags().BoolVar(&asJSON, "json", false, "print the census as json")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %gin @ %gdpi, delay %d\n", name, p.SizeInches, p.DPI, p.Delay)
			}
		},
	}

	colormapsCmd := &cobra.Command{
		Use:   "colormaps",
		Short: "list available colormaps",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range colormap.Names() {
				cm, _ := colormap.Lookup(name)
				fmt.Printf("  %-10s %s\n", name, viz.Swatch(cm.Sample(32)))
			}
		},
	}

	rootCmd.AddCommand(infoCmd, presetsCmd, colormapsCmd)

	if err := rootCmd.Execute(); err != nil {
		rep.Error(err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.ApplyPreset(p)
	}

	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = input
	}
	if flags.Changed("height") {
		cfg.HeightPerState = height
	}
	if flags.Changed("width") {
		cfg.WidthPerState = width
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("dpi") {
		cfg.DPI = dpi
	}
	if flags.Changed("size") {
		cfg.SizeInches = sizeInches
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("colormap") {
		cfg.Colormap = cmapName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func showInfo(cfg *config.Config) error {
	m, err := trace.Load(cfg.Input, cfg.WidthPerState)
	if err != nil {
		return err
	}

	h := cfg.HeightPerState
	n := m.NumStates(h)
	out := viz.NewReporter(os.Stdout)

	out.Header(cfg.Input)
	out.Metric("rows", m.Rows())
	out.Metric("frame", fmt.Sprintf("%dx%d", m.Width(), h))
	out.Metric("frames", n)
	out.Metric("dropped rows", m.Remainder(h))
	if n == 0 {
		out.Warn("no complete frame; nothing to render")
		return nil
	}

	out.Raw(viz.Separator(60))
	total := census.Summary(m, h)
	cells := total.Total()
	for _, s := range total.Present() {
		share := float64(total[s]) / float64(cells)
		out.Raw(fmt.Sprintf("  %-8s %s %5.1f%%", census.StateName(s), viz.ProgressBar(share, 30), share*100))
	}

	fire := census.Series(m, h, census.Fire)
	if len(fire) > 1 {
		out.Raw(viz.Separator(60))
		out.Raw(asciigraph.Plot(fire,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("burning cells per time step"),
		))
	}
	return nil
}
