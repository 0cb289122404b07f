package app

import (
	"fmt"

	"qdevkit/app/jsonformat"
	"qdevkit/app/jsonpath"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// FormatJSON pretty-prints a JSON document
func (a *App) FormatJSON(req FormatJSONRequest) (string, error) {
	out, err := jsonformat.Format(req.Input, req.Indent, req.SortKeys)
	if err != nil {
		a.Log("error", fmt.Sprintf("Format failed: %v", err))
		return "", err
	}
	return out, nil
}

// MinifyJSON strips whitespace from a JSON document
func (a *App) MinifyJSON(input string) (string, error) {
	out, err := jsonformat.Minify(input)
	if err != nil {
		a.Log("error", fmt.Sprintf("Minify failed: %v", err))
		return "", err
	}
	return out, nil
}

// FilterJSON applies a JSONPath expression to a document. Successful
// expressions are recorded in the history; failed ones are not.
func (a *App) FilterJSON(req FilterJSONRequest) (*FilterJSONResponse, error) {
	result, err := jsonpath.Filter(req.Input, req.Expression)
	if err != nil {
		a.Log("error", fmt.Sprintf("Filter failed: %v", err))
		return nil, err
	}

	a.historyMu.Lock()
	a.history.Record(req.Expression)
	a.historyMu.Unlock()

	return &FilterJSONResponse{Matches: result.Matches, Output: result.Output}, nil
}

// GetFilterHistory returns recorded JSONPath expressions, most recent first
func (a *App) GetFilterHistory() []string {
	a.historyMu.Lock()
	defer a.historyMu.Unlock()
	return a.history.Entries()
}

// ExportFilterResults re-runs a filter and writes the matched objects to an
// Excel workbook chosen via a save dialog. Returns the chosen path, or an
// empty string if the user cancelled.
func (a *App) ExportFilterResults(req FilterJSONRequest) (string, error) {
	doc, err := jsonpath.ParseDocument(req.Input)
	if err != nil {
		return "", err
	}
	x, err := jsonpath.ParseExpression(req.Expression)
	if err != nil {
		return "", err
	}
	results, err := jsonpath.Evaluate(doc, x)
	if err != nil {
		return "", err
	}
	table, err := jsonpath.ToTable(results)
	if err != nil {
		return "", err
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export Filter Results",
		DefaultFilename: "results.xlsx",
		Filters: []runtime.FileFilter{
			{DisplayName: "Excel Workbook (*.xlsx)", Pattern: "*.xlsx"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		// User cancelled
		return "", nil
	}

	if err := jsonpath.ExportXLSX(path, table); err != nil {
		a.Log("error", fmt.Sprintf("Export failed: %v", err))
		return "", err
	}
	a.Log("info", fmt.Sprintf("Exported %d rows to %s", len(table)-1, path))
	return path, nil
}
