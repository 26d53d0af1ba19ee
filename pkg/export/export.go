// Package export writes fetched issue data to output files.
//
// Two formats exist: JSON (the raw payload) and CSV (a selection of
// fields, addressed by dotted paths into the nested issue objects).
// [ForPath] selects an exporter from the output file extension.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plotkit/plotkit/pkg/errors"
	"github.com/plotkit/plotkit/pkg/gitlab"
)

// Exporter writes issues to w in one output format.
type Exporter interface {
	Export(w io.Writer, issues []gitlab.Issue) error
}

// ForPath returns the exporter matching the extension of target. CSV
// exports write the given fields; JSON ignores them.
func ForPath(target string, fields []string) (Exporter, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(target), ".")) {
	case "csv":
		if len(fields) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "CSV export needs a field list")
		}
		return &CSVExporter{Fields: fields}, nil
	case "json":
		return &JSONExporter{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"no exporter for %q (must be 'csv' or 'json')", target)
}

// ExportFile writes the issues to the file at target, choosing the
// exporter from the target's extension.
func ExportFile(target string, fields []string, issues []gitlab.Issue) error {
	exp, err := ForPath(target, fields)
	if err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	return exp.Export(f, issues)
}

// JSONExporter writes the raw issue payload as JSON.
type JSONExporter struct{}

// Export writes the issues to w.
func (e *JSONExporter) Export(w io.Writer, issues []gitlab.Issue) error {
	return json.NewEncoder(w).Encode(issues)
}

// CSVExporter writes one row per issue with the configured fields as
// columns. Fields are dotted paths into the issue's nested objects;
// "a.b.c" reads key "c" inside "b" inside "a". Missing paths produce
// empty cells.
type CSVExporter struct {
	Fields []string
}

// Export writes the header and one row per issue to w.
func (e *CSVExporter) Export(w io.Writer, issues []gitlab.Issue) error {
	for _, field := range e.Fields {
		if err := errors.ValidateFieldPath(field); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(e.Fields); err != nil {
		return err
	}

	row := make([]string, len(e.Fields))
	for _, issue := range issues {
		for i, field := range e.Fields {
			row[i] = formatValue(Lookup(issue, field))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Lookup resolves a dotted field path inside nested JSON objects.
// It returns nil when any segment is missing or a non-object value is
// traversed.
func Lookup(data map[string]any, path string) any {
	var value any = data
	for _, key := range strings.Split(path, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return value
}

// formatValue renders a JSON value as a CSV cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; keep integers undecorated
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		// Arrays and objects fall back to their JSON form
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
