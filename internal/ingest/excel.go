// Package ingest maps spreadsheet load schedules onto the statics load
// model. All column normalization and missing-field fallback lives here;
// the engine only ever sees fully-formed loads.
package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Girder/internal/statics"
)

// Canonical column keys after header normalization.
const (
	colLoadType  = "load type"
	colMagnitude = "magnitude"
	colPosition  = "position"
	colStart     = "start position"
	colEnd       = "end position"
)

// Table keeps the raw spreadsheet content so reports can reproduce the
// input exactly as the user supplied it.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadLoads parses the first sheet of a workbook into beam loads.
//
// The header row is matched case-insensitively with unit suffixes like
// "(kN)" stripped, so "Magnitude (kN)" and "magnitude" are equivalent.
// Point loads fall back to the start-position column when the position
// cell is blank, and UDLs fall back to the position column for their
// start; rows with an unrecognized load type are skipped.
func ReadLoads(r io.Reader) ([]statics.Load, Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readLoads(f)
}

// ReadLoadsFile is ReadLoads for a workbook on disk.
func ReadLoadsFile(path string) ([]statics.Load, Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Table{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return readLoads(f)
}

func readLoads(f *excelize.File) ([]statics.Load, Table, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, Table{}, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[normalizeHeader(h)] = i
	}
	if _, ok := cols[colLoadType]; !ok {
		return nil, Table{}, fmt.Errorf("sheet %q is missing a load type column", sheet)
	}
	if _, ok := cols[colMagnitude]; !ok {
		return nil, Table{}, fmt.Errorf("sheet %q is missing a magnitude column", sheet)
	}

	table := Table{Headers: rows[0], Rows: rows[1:]}

	var loads []statics.Load
	for _, row := range rows[1:] {
		loadType := strings.ToLower(cell(row, cols, colLoadType))
		magnitude, ok := number(row, cols, colMagnitude)
		if !ok {
			continue
		}

		switch {
		case strings.Contains(loadType, "point"):
			position, ok := number(row, cols, colPosition)
			if !ok {
				// Some schedules put point positions in the start column.
				position, ok = number(row, cols, colStart)
			}
			if !ok {
				continue
			}
			loads = append(loads, statics.PointLoad{Magnitude: magnitude, Position: position})

		case strings.Contains(loadType, "udl"):
			start, ok := number(row, cols, colStart)
			if !ok {
				start, ok = number(row, cols, colPosition)
			}
			end, okEnd := number(row, cols, colEnd)
			if !ok || !okEnd {
				continue
			}
			loads = append(loads, statics.DistributedLoad{Intensity: magnitude, Start: start, End: end})
		}
	}

	return loads, table, nil
}

// normalizeHeader lowercases a header and strips a trailing unit such as
// "(kN)" or "(m)".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if i := strings.Index(h, "("); i >= 0 {
		h = strings.TrimSpace(h[:i])
	}
	return h
}

func cell(row []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func number(row []string, cols map[string]int, key string) (float64, bool) {
	s := cell(row, cols, key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
