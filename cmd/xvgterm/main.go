package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/xvgterm/internal/analysis"
	"github.com/san-kum/xvgterm/internal/config"
	"github.com/san-kum/xvgterm/internal/export"
	"github.com/san-kum/xvgterm/internal/render"
	"github.com/san-kum/xvgterm/internal/term"
	"github.com/san-kum/xvgterm/internal/viz"
	"github.com/san-kum/xvgterm/internal/xvg"
)

var version = "dev"

var (
	style      render.Style
	width      int
	height     int
	strict     bool
	configFile string
	preset     string
	// trace
	column      int
	traceWidth  int
	traceHeight int
	// export
	format   string
	output   string
	svgCells int

	logger = log.New(os.Stderr, "", 0)
)

// detectSize is swapped out in tests.
var detectSize term.Detector = term.Stdout

func main() {
	if err := newRootCmd().Execute(); err != nil {
		styles := viz.NewStyles(logger.Writer())
		logger.Printf("%s %v", styles.Error.Render("ERROR:"), err)
		logger.Println("Run with --help for usage information.")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	style = render.Block

	rootCmd := &cobra.Command{
		Use:           "xvgterm [flags] PATH",
		Short:         "display xvg plots in the terminal",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		RunE:          plotFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
		},
	}

	// Declared by hand so cobra leaves -h free for --height.
	rootCmd.Flags().Bool("help", false, "display help")

	rootCmd.PersistentFlags().VarP(&style, "style", "s", "drawing style: ascii, block")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject data rows whose width differs from the first row")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset layout")

	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "explicitly set width (default: terminal width)")
	rootCmd.Flags().IntVarP(&height, "height", "h", 0, "explicitly set height (default: terminal height)")

	statsCmd := &cobra.Command{
		Use:   "stats PATH",
		Short: "describe every data column",
		Args:  cobra.ExactArgs(1),
		RunE:  statsFile,
	}

	traceCmd := &cobra.Command{
		Use:   "trace PATH",
		Short: "line chart of one column against the row index",
		Args:  cobra.ExactArgs(1),
		RunE:  traceFile,
	}
	traceCmd.Flags().IntVarP(&column, "column", "c", 1, "column to plot")
	traceCmd.Flags().IntVar(&traceWidth, "width", 70, "plot width")
	traceCmd.Flags().IntVar(&traceHeight, "height", 15, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export PATH",
		Short: "export the density plot as svg or the data as csv or json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportFile,
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, csv, json")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().IntVar(&svgCells, "cells", 6, "svg cell size in pixels")

	viewCmd := &cobra.Command{
		Use:   "view PATH",
		Short: "interactive viewer that follows the terminal size",
		Args:  cobra.ExactArgs(1),
		RunE:  viewFile,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				size := "terminal"
				if p.Width != 0 || p.Height != 0 {
					size = fmt.Sprintf("%dx%d", p.Width, p.Height)
				}
				fmt.Fprintf(out, "  %-8s  style=%s  size=%s  strict=%v\n", name, p.Style, size, p.Strict)
			}
			return nil
		},
	}

	rootCmd.AddCommand(statsCmd, traceCmd, exportCmd, viewCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg.Apply(p)
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		cfg.Style = style.String()
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if cmd.Name() == cmd.Root().Name() {
		if flags.Changed("width") {
			cfg.Width = width
		}
		if flags.Changed("height") {
			cfg.Height = height
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readDataset(cmd *cobra.Command, path string) (*xvg.Dataset, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ds, err := xvg.ReadFile(path, xvg.ParseOptions{Strict: cfg.Strict})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, cfg, nil
}

// requested is the drawing size asked for by flags or config. A zero flag
// is a size; a zero in the config file means unset.
func requested(cmd *cobra.Command, cfg *config.Config) term.Size {
	want := term.Size{Width: term.Auto, Height: term.Auto}
	flags := cmd.Flags()
	if cfg.Width > 0 || flags.Changed("width") {
		want.Width = cfg.Width
	}
	if cfg.Height > 0 || flags.Changed("height") {
		want.Height = cfg.Height
	}
	return want
}

func warn(msg string) {
	styles := viz.NewStyles(logger.Writer())
	logger.Println(styles.Warning.Render(msg))
}

func plotFile(cmd *cobra.Command, args []string) error {
	ds, cfg, err := readDataset(cmd, args[0])
	if err != nil {
		return err
	}
	if err := render.Check(ds); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	least := term.Size{Width: cfg.MinWidth, Height: cfg.MinHeight}

	size, err := term.Resolve(requested(cmd, cfg), detectSize)
	switch {
	case err != nil:
		warn("Unable to get terminal size.")
	case !size.Fits(least):
		warn("Size is too small to present a meaningful graph.")
	default:
		size = size.Shrink(cfg.ReservedRows)
		graph, err := render.Graph(ds, cfg.DrawingStyle(), size.Width, size.Height)
		if errors.Is(err, render.ErrTooSmall) {
			warn("Size is too small to present a meaningful graph.")
			break
		}
		if err != nil {
			return err
		}
		io.WriteString(out, graph)
	}

	fmt.Fprintln(out, render.Summary(ds.Col(1)))
	return nil
}

func statsFile(cmd *cobra.Command, args []string) error {
	ds, _, err := readDataset(cmd, args[0])
	if err != nil {
		return err
	}
	if ds.IsEmpty() {
		return render.ErrNoData
	}
	return analysis.Write(cmd.OutOrStdout(), ds)
}

func traceFile(cmd *cobra.Command, args []string) error {
	ds, _, err := readDataset(cmd, args[0])
	if err != nil {
		return err
	}

	graph, err := render.Trace(ds, column, traceWidth, traceHeight)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func exportFile(cmd *cobra.Command, args []string) error {
	ds, _, err := readDataset(cmd, args[0])
	if err != nil {
		return err
	}

	write, err := exporter(format)
	if err != nil {
		return err
	}

	if output == "" {
		return write(cmd.OutOrStdout(), ds)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := write(f, ds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exporter(name string) (func(io.Writer, *xvg.Dataset) error, error) {
	switch name {
	case "svg":
		opts := export.DefaultSVGOptions()
		opts.Cell = svgCells
		return func(w io.Writer, ds *xvg.Dataset) error {
			return export.WriteSVG(w, ds, opts)
		}, nil
	case "csv":
		return export.WriteCSV, nil
	case "json":
		return export.WriteJSON, nil
	}
	return nil, fmt.Errorf("unknown export format: %s (available: svg, csv, json)", name)
}

func viewFile(cmd *cobra.Command, args []string) error {
	ds, cfg, err := readDataset(cmd, args[0])
	if err != nil {
		return err
	}
	if err := render.Check(ds); err != nil {
		return err
	}
	if !term.IsTerminal(os.Stdout) {
		return fmt.Errorf("view: %w", term.ErrNoTerminal)
	}
	return viz.Run(ds, cfg.DrawingStyle(), term.Size{Width: cfg.MinWidth, Height: cfg.MinHeight})
}
