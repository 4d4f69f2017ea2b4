package report

import (
	"encoding/csv"
	"io"
	"strings"
	"time"
)

// Document is a flat report ready for CSV export: a title line, a header row
// and the data rows. A zero-row document still exports title and header.
type Document struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func NewDocument(title string, columns []string) *Document {
	return &Document{Title: title, Columns: columns}
}

func (d *Document) AddRow(values ...string) {
	d.Rows = append(d.Rows, values)
}

// Filename derives the attachment name: the title with spaces replaced by
// underscores, suffixed with today's date.
func (d *Document) Filename() string {
	return strings.ReplaceAll(d.Title, " ", "_") + "_" + time.Now().Format(time.DateOnly) + ".csv"
}

// WriteCSV writes the document: the title on its own line, a blank line, the
// header row, then the data rows.
func (d *Document) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{d.Title}); err != nil {
		return err
	}
	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write(d.Columns); err != nil {
		return err
	}
	for _, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
