package repository

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet layout: row 1 is a header, data starts on row 2.
const (
	colRecto   = iota // A: prompt variants separated by "|"
	colVerso          // B: accepted answers separated by "|"
	colTip            // C: hint, or recto hint when D is set
	colTipBack        // D: verso hint
	colTags           // E: comma separated tags

	xlsxStartRow = 2
)

func loadXLSX(path, sheet string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoCardFiles)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %s: %w", path, err)
	}

	var entries []Entry
	for i, row := range rows {
		if i < xlsxStartRow-1 || blankRow(row) {
			continue
		}

		var tips []string
		if tip := cell(row, colTip); tip != "" {
			tips = append(tips, tip)
			if back := cell(row, colTipBack); back != "" {
				tips = append(tips, back)
			}
		}

		entry, err := newEntry(
			path,
			i+1,
			splitCell(cell(row, colRecto), "|"),
			splitCell(cell(row, colVerso), "|"),
			tips,
			splitCell(cell(row, colTags), ","),
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func splitCell(value, sep string) []string {
	var out []string
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
