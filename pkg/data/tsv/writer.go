package tsv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/types"
)

const DateLayout = "2006-01-02 15:04:05"

// Column is a named series written as one column.
type Column struct {
	Name   string
	Series types.Series
}

type Writer struct {
	file io.WriteCloser

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func NewWriter(file io.WriteCloser) *Writer {
	tsv := csv.NewWriter(file)
	tsv.Comma = '\t'
	return &Writer{
		Writer: tsv,
		file:   file,
	}
}

// WriteSeries writes a header row followed by one row per bar, oldest first.
// Only the newest limit bars are written when limit is positive.
// NA values are written as "NA".
func (w *Writer) WriteSeries(d *data.Data, columns []Column, limit int) error {
	header := make([]string, 0, len(columns)+1)
	header = append(header, "date")
	for _, c := range columns {
		header = append(header, c.Name)
	}

	if err := w.Write(header); err != nil {
		return err
	}

	rows := d.Size()
	if limit > 0 && limit < rows {
		rows = limit
	}

	for i := rows - 1; i >= 0; i-- {
		record := make([]string, 0, len(columns)+1)

		date, _ := d.DateAt(i)
		record = append(record, date.Format(DateLayout))
		for _, c := range columns {
			record = append(record, c.Series.Index(i).String())
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Writer.Flush()
	return w.Writer.Error()
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	return w.file.Close()
}
