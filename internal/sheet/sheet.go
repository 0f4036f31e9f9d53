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

// Package sheet loads a labelled data series from an Excel workbook.
//
// The series is read from the first two columns of a worksheet: column A
// holds the axis label and column B the value. Rows whose value cell is
// not a number, such as a header row, are skipped. Values formatted as
// percentages ("75%") are divided by 100.
package sheet

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoData indicates that a worksheet contains no numeric rows.
var ErrNoData = errors.New("no data rows")

// ErrSheetNotFound indicates that the workbook has no worksheet of the
// requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Series is a data series together with its axis labels.
type Series struct {
	Labels []string
	Values []float64
}

// Load reads the series from the named worksheet. If sheetName is empty,
// the first worksheet is used.
func Load(fileName, sheetName string) (*Series, error) {
	f, err := excelize.OpenFile(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, sheetName)
}

// Read reads the series from a worksheet of an open workbook.
func Read(f *excelize.File, sheetName string) (*Series, error) {
	sheets := f.GetSheetList()
	if sheetName == "" {
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheetName = sheets[0]
	} else if !slices.Contains(sheets, sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	res := &Series{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		v, ok := parseValue(row[1])
		if !ok {
			continue
		}
		res.Labels = append(res.Labels, strings.TrimSpace(row[0]))
		res.Values = append(res.Values, v)
	}
	if len(res.Values) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrNoData)
	}
	return res, nil
}

// parseValue converts a formatted cell value to a number.
func parseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	div := 1.0
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		s = strings.TrimSpace(rest)
		div = 100
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x / div, true
}
