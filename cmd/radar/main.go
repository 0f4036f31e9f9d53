// seehuhn.de/go/radar - geometry for multi-axis charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command radar draws a multi-axis chart and writes it as PNG or PDF.
//
// The chart is described by a JSON file (--config), by an Excel sheet
// (--xlsx), by flags, or by a combination of these. Flags override the
// values from files.
package main

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/internal/chartfile"
	"seehuhn.de/go/radar/internal/sheet"
	"seehuhn.de/go/radar/pdfout"
	"seehuhn.de/go/radar/raster"
)

var (
	configPath  string
	xlsxPath    string
	sheetName   string
	data        []float64
	labels      []string
	shape       string
	placement   string
	radius      float64
	innerRadius float64
	angleOffset float64
	rings       int
	segments    int
	align       bool
	indicators  int
	outputPath  string
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "radar",
		Short: "Draw a multi-axis (radar) chart",
		Long: `radar draws a multi-axis chart of normalized values and writes it
as a PNG or PDF file, depending on the extension of the output file.`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "JSON chart description")
	flags.StringVar(&xlsxPath, "xlsx", "", "Excel workbook with labels in column A and values in column B")
	flags.StringVar(&sheetName, "sheet", "", "worksheet to read (default: first sheet)")
	flags.Float64SliceVar(&data, "data", nil, "comma separated data values")
	flags.StringSliceVar(&labels, "labels", nil, "comma separated axis labels")
	flags.StringVar(&shape, "shape", "", "boundary shape: circle or polygon")
	flags.StringVar(&placement, "placement", "", "origin of value scaling: inner or center")
	flags.Float64Var(&radius, "radius", 100, "outer radius")
	flags.Float64Var(&innerRadius, "inner-radius", 0, "inner radius (default: radius/10)")
	flags.Float64Var(&angleOffset, "angle-offset", 0, "rotation of the first axis, in radians")
	flags.IntVar(&rings, "rings", 0, "number of guide rings")
	flags.IntVar(&segments, "segments", 0, "number of spokes")
	flags.BoolVar(&align, "align", false, "use one spoke per data value")
	flags.IntVar(&indicators, "indicators", 0, "number of ticks on every spoke")
	flags.StringVarP(&outputPath, "output", "o", "radar.png", "output file (.png or .pdf)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log details to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		radar.SetLogger(slog.New(h))
	}

	chart, err := loadChart(cmd)
	if err != nil {
		return err
	}

	g, err := radar.Compute(chart.Config, chart.Data)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(outputPath)); ext {
	case ".png":
		err = writePNG(g, chart)
	case ".pdf":
		err = pdfout.Write(outputPath, g, chart.Style)
	default:
		return fmt.Errorf("unsupported output format %q (must be .png or .pdf)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadChart merges the chart file, the workbook and the command line flags,
// in increasing order of precedence.
func loadChart(cmd *cobra.Command) (*chartfile.Chart, error) {
	chart := &chartfile.Chart{
		Config: radar.NewConfig(radius),
		Style:  raster.DefaultStyle(),
	}
	if configPath != "" {
		var err error
		chart, err = chartfile.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load chart: %w", err)
		}
	}

	if xlsxPath != "" {
		s, err := sheet.Load(xlsxPath, sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", xlsxPath, err)
		}
		chart.Data = s.Values
		chart.Labels = s.Labels
	}

	if err := applyFlags(cmd, chart); err != nil {
		return nil, err
	}
	if len(chart.Data) == 0 {
		return nil, errors.New("no data: use --data, --xlsx or --config")
	}
	return chart, nil
}

// applyFlags copies all flags given on the command line into chart. The
// inner radius follows a new radius only if it was not given explicitly.
func applyFlags(cmd *cobra.Command, chart *chartfile.Chart) error {
	flags := cmd.Flags()
	cfg := &chart.Config

	if flags.Changed("radius") {
		cfg.Radius = radius
		if !chart.InnerRadiusSet {
			cfg.InnerRadius = radius / 10
		}
	}
	if flags.Changed("inner-radius") {
		cfg.InnerRadius = innerRadius
	}
	if flags.Changed("shape") {
		if err := cfg.Shape.UnmarshalText([]byte(shape)); err != nil {
			return err
		}
	}
	if flags.Changed("placement") {
		if err := cfg.Placement.UnmarshalText([]byte(placement)); err != nil {
			return err
		}
	}
	if flags.Changed("angle-offset") {
		cfg.AngleOffset = angleOffset
	}
	if flags.Changed("rings") {
		cfg.Rings = rings
	}
	if flags.Changed("segments") {
		cfg.Segments = segments
	}
	if flags.Changed("align") {
		cfg.AlignSegments = align
	}
	if flags.Changed("indicators") {
		cfg.IndicatorSections = indicators
	}

	if flags.Changed("data") {
		chart.Data = data
	}
	if flags.Changed("labels") {
		chart.Labels = labels
	}
	return nil
}

func writePNG(g *radar.Geometry, chart *chartfile.Chart) error {
	img, err := raster.Render(g, chart.Labels, chart.Style)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
