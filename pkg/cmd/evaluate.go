package cmd

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/data/tsv"
	"github.com/c9s/vista/pkg/indicator"
	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/style"
	"github.com/c9s/vista/pkg/types"
)

// column is one evaluated indicator line, materialized oldest first.
type column struct {
	Name   string
	Values types.Slice
}

func columnName(req indicator.Request, output indicator.Output, outputs int) string {
	if outputs == 1 {
		return req.String()
	}
	return req.String() + "." + output.Name
}

// evaluate builds every requested indicator and computes all of its values.
// The indicators are evaluated concurrently; series shared between them,
// such as the price sources, are read concurrently as well.
func evaluate(ctx context.Context, registry *indicator.Registry, d *data.Data, requests []indicator.Request) ([]column, error) {
	results := make([][]column, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			outputs, err := registry.BuildRequest(req, d)
			if err != nil {
				return err
			}

			start := time.Now()
			for _, output := range outputs {
				if err := ctx.Err(); err != nil {
					return err
				}

				// reading from the oldest bar keeps the recursion shallow
				results[i] = append(results[i], column{
					Name:   columnName(req, output, len(outputs)),
					Values: types.Reverse(output.Series),
				})
			}

			log.Debugf("evaluated %s over %d bars in %s", req, d.Size(), time.Since(start))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var columns []column
	for _, r := range results {
		columns = append(columns, r...)
	}
	return columns, nil
}

func roundColumns(columns []column, decimals int, mode num.RoundMode) {
	for _, c := range columns {
		for i, v := range c.Values {
			c.Values[i] = v.Round(decimals, mode)
		}
	}
}

func tsvColumns(columns []column) []tsv.Column {
	out := make([]tsv.Column, len(columns))
	for i, c := range columns {
		out[i] = tsv.Column{Name: c.Name, Series: c.Values}
	}
	return out
}

func rowCount(d *data.Data, limit int) int {
	if limit > 0 && limit < d.Size() {
		return limit
	}
	return d.Size()
}

func renderTable(w io.Writer, d *data.Data, columns []column, limit int) error {
	colored := !color.NoColor

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle(colored))

	header := table.Row{"date"}
	for _, c := range columns {
		header = append(header, c.Name)
	}
	t.AppendHeader(header)

	for i := rowCount(d, limit) - 1; i >= 0; i-- {
		date, _ := d.DateAt(i)
		row := table.Row{date.Format(tsv.DateLayout)}
		for _, c := range columns {
			row = append(row, style.FormatValue(c.Values.Index(i), c.Values.Index(i+1), colored))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// renderTSV writes to the output file when one is given, to w otherwise.
func renderTSV(w io.Writer, output string, d *data.Data, columns []column, limit int) error {
	writer := tsv.NewWriter(nopCloser{w})
	if output != "" {
		var err error
		if writer, err = tsv.NewWriterFile(output); err != nil {
			return errors.Wrapf(err, "can not create %s", output)
		}
	}

	if err := writer.WriteSeries(d, tsvColumns(columns), limit); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

type jsonSeries struct {
	Name   string    `json:"name"`
	Values []num.Num `json:"values"`
}

type jsonResult struct {
	Dates  []time.Time  `json:"dates"`
	Series []jsonSeries `json:"series"`
}

func renderJSON(w io.Writer, d *data.Data, columns []column, limit int) error {
	rows := rowCount(d, limit)

	result := jsonResult{}
	for i := rows - 1; i >= 0; i-- {
		date, _ := d.DateAt(i)
		result.Dates = append(result.Dates, date)
	}

	for _, c := range columns {
		values := c.Values
		if len(values) > rows {
			values = values[len(values)-rows:]
		}
		result.Series = append(result.Series, jsonSeries{Name: c.Name, Values: values})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// renderMetrics prints the vista counters gathered from the default registry.
func renderMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle(!color.NoColor))
	t.AppendHeader(table.Row{"metric", "labels", "value"})
	for _, row := range counterRows(families, "vista_") {
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

func counterRows(families []*dto.MetricFamily, prefix string) (rows []table.Row) {
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}

			var labels []string
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			rows = append(rows, table.Row{name, strings.Join(labels, ","), metric.GetCounter().GetValue()})
		}
	}
	return rows
}
