// Package report renders catalog data for the terminal: aligned tables for
// people, JSON or YAML for scripts.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColorFunc decorates a cell. Padding is computed from the undecorated value.
type ColorFunc func(value string) string

type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

type Table struct {
	columns []Column
	rows    [][]string
}

func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are dropped and missing ones are blank.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table with one header line, a dashed rule and the rows.
// Widths count runes so labels such as "Künstler" or "1.2M €" line up.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(col.Header, bold.Sprint(col.Header), widths[i], col.Align)
		rule[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, rule); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			cells[i] = pad(row[i], display, widths[i], col.Align)
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func pad(raw, display string, width int, align Alignment) string {
	fill := strings.Repeat(" ", max(0, width-utf8.RuneCountInString(raw)))
	if align == AlignRight {
		return fill + display
	}
	return display + fill
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// Highlight colours the cells for which match returns true.
func Highlight(match func(value string) bool, attrs ...color.Attribute) ColorFunc {
	c := color.New(attrs...)
	return func(value string) string {
		if match(value) {
			return c.Sprint(value)
		}
		return value
	}
}
