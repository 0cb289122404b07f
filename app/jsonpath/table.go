package jsonpath

import (
	"fmt"
	"sort"

	"github.com/ohler55/ojg/oj"
	"github.com/xuri/excelize/v2"
)

// ToTable converts filter results to a header row plus data rows, for
// export. It accepts either a single matched array of objects or multiple
// matched objects; headers are the union of object keys, sorted
// alphabetically for consistent ordering.
func ToTable(results []any) ([][]string, error) {
	items := results
	if len(results) == 1 {
		if arr, ok := results[0].([]any); ok {
			items = arr
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("result is empty, nothing to export")
	}

	headerSet := make(map[string]bool)
	var headers []string
	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("result must be an array of objects to export, got %T", item)
		}
		for key := range obj {
			if !headerSet[key] {
				headerSet[key] = true
				headers = append(headers, key)
			}
		}
		objects = append(objects, obj)
	}
	sort.Strings(headers)

	rows := make([][]string, 0, len(objects)+1)
	rows = append(rows, headers)
	for _, obj := range objects {
		row := make([]string, len(headers))
		for i, h := range headers {
			if val, ok := obj[h]; ok && val != nil {
				row[i] = cellString(val)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString converts a value to its cell representation. Nested objects and
// arrays are JSON-stringified.
func cellString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case map[string]any, []any:
		b, err := oj.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ExportXLSX writes a table (header row first) to an Excel workbook at path.
func ExportXLSX(path string, table [][]string) error {
	if len(table) == 0 {
		return fmt.Errorf("table is empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for r, row := range table {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
