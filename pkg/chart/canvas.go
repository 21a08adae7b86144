package chart

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/types"
)

var log = logrus.WithField("component", "chart")

var ErrNothingToPlot = errors.New("nothing to plot")

// Canvas plots series against the dates of the market data they were built on.
type Canvas struct {
	chart.Chart

	data *data.Data
}

func NewCanvas(title string, d *data.Data) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeDateValueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: chart.FloatValueFormatter,
			},
		},
		data: d,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds the newest length values of a, oldest first. NA values are left out.
func (canvas *Canvas) Plot(tag string, a types.Series, length int) {
	if length <= 0 || length > a.Length() {
		length = a.Length()
	}

	var xs []time.Time
	var ys []float64
	for i := length - 1; i >= 0; i-- {
		v := a.Index(i)
		if v.IsNA() {
			continue
		}

		date, ok := canvas.data.DateAt(i)
		if !ok {
			continue
		}

		xs = append(xs, date)
		ys = append(ys, v.Float64())
	}

	if len(ys) == 0 {
		log.Warnf("%s has no value in the last %d bars, skipped", tag, length)
		return
	}

	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		XValues: xs,
		YValues: ys,
	})
}

// Render writes the chart as PNG.
func (canvas *Canvas) Render(w io.Writer) error {
	if len(canvas.Series) == 0 {
		return ErrNothingToPlot
	}
	return canvas.Chart.Render(chart.PNG, w)
}

// Save renders the chart into a PNG file.
func (canvas *Canvas) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "can not create %s", filename)
	}
	//nolint:errcheck // closed on error paths only
	defer f.Close()

	if err := canvas.Render(f); err != nil {
		return errors.Wrapf(err, "can not render %s", filename)
	}
	return f.Close()
}
