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

// Command genpdf generates reference images for the chart fixtures.
// It writes every fixture as a PDF and as a PNG rendered by package raster.
// If Ghostscript is installed, the PDF is also rendered to a second PNG
// so that both surfaces can be compared.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/radar"
	"seehuhn.de/go/radar/pdfout"
	"seehuhn.de/go/radar/raster"
	"seehuhn.de/go/radar/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	_, err := exec.LookPath("gs")
	haveGS := err == nil

	st := raster.DefaultStyle()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			g, err := radar.Compute(tc.Config, tc.Data)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := pdfout.Write(pdfPath, g, st); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writePNG(g, tc.Labels, st, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if haveGS {
				gsPath := filepath.Join(refDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func writePNG(g *radar.Geometry, labels []string, st raster.Style, pngPath string) error {
	img, err := raster.Render(g, labels, st)
	if err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel, matching layout units)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
