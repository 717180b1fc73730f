// Package report prints command results as tables, YAML or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

const (
	yamlIndent = 2
	jsonIndent = "  "
)

// ErrUnknownFormat is returned for an output format Write does not know.
var ErrUnknownFormat = errors.New("unknown output format")

// Table is one titled table of a result.
type Table struct {
	Title  string
	Header []any
	Rows   [][]any
}

// Tabular is a result which can be printed as tables. It is encoded as
// is for YAML and JSON.
type Tabular interface {
	Tables() []Table
}

// Write prints result to w in format "table", "yaml" or "json".
func Write(w io.Writer, format string, result Tabular) error {
	switch format {
	case "table":
		return writeTables(w, result.Tables())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)

		err := enc.Encode(result)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", jsonIndent)

		err := enc.Encode(result)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeTables(w io.Writer, tables []Table) error {
	for i, t := range tables {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.Style().Options.SeparateRows = false

		if t.Title != "" {
			tbl.SetTitle(t.Title)
		}

		if len(t.Header) > 0 {
			tbl.AppendHeader(table.Row(t.Header))
		}

		for _, row := range t.Rows {
			tbl.AppendRow(table.Row(row))
		}

		sep := "\n"
		if i == len(tables)-1 {
			sep = ""
		}

		_, err := fmt.Fprintf(w, "%s\n%s", tbl.Render(), sep)
		if err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}

	return nil
}
