package data

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/vista/pkg/num"
)

var log = logrus.WithField("component", "data")

var (
	// ErrMissingColumn is returned when the header lacks one of the required columns.
	ErrMissingColumn = errors.New("missing column")

	// ErrNotEnoughColumns is returned when a record is shorter than the header requires.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrEmpty is returned when the input holds no header.
	ErrEmpty = errors.New("empty input")
)

// DateLayouts are tried in order when decoding the date column.
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006 15:04",
}

// columns maps the required fields to their position in a record.
type columns struct {
	date, open, high, low, close, volume int
}

func (c columns) width() int {
	w := 0
	for _, i := range []int{c.date, c.open, c.high, c.low, c.close, c.volume} {
		if i+1 > w {
			w = i + 1
		}
	}
	return w
}

func newColumns(header []string) (columns, error) {
	index := map[string]int{}
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	lookup := func(names ...string) (int, error) {
		for _, n := range names {
			if i, ok := index[n]; ok {
				return i, nil
			}
		}
		return -1, errors.Wrapf(ErrMissingColumn, "%s", names[0])
	}

	var c columns
	var err error
	if c.date, err = lookup("date", "time", "timestamp", "datetime"); err != nil {
		return c, err
	}
	if c.open, err = lookup("open", "o"); err != nil {
		return c, err
	}
	if c.high, err = lookup("high", "h"); err != nil {
		return c, err
	}
	if c.low, err = lookup("low", "l"); err != nil {
		return c, err
	}
	if c.close, err = lookup("close", "c"); err != nil {
		return c, err
	}
	if c.volume, err = lookup("volume", "vol", "v"); err != nil {
		return c, err
	}
	return c, nil
}

// CSVReader decodes OHLCV bars from a CSV stream with a header row, such as a
// Yahoo Finance export (Date,Open,High,Low,Close,Adj Close,Volume).
// Rows are expected in chronological order.
type CSVReader struct {
	csv     *csv.Reader
	columns *columns
	line    int
}

func NewCSVReader(r io.Reader) *CSVReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return &CSVReader{csv: reader}
}

func (r *CSVReader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return ErrEmpty
	}
	if err != nil {
		return err
	}
	r.line++

	c, err := newColumns(header)
	if err != nil {
		return err
	}
	r.columns = &c
	return nil
}

// Read decodes the next bar.
func (r *CSVReader) Read() (Bar, error) {
	var bar Bar

	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return bar, err
		}
	}

	rec, err := r.csv.Read()
	if err != nil {
		return bar, err
	}
	r.line++

	c := r.columns
	if len(rec) < c.width() {
		return bar, errors.Wrapf(ErrNotEnoughColumns, "line %d: %d < %d", r.line, len(rec), c.width())
	}

	bar.Date = parseDate(rec[c.date])
	bar.Open = rec[c.open]
	bar.High = rec[c.high]
	bar.Low = rec[c.low]
	bar.Close = rec[c.close]
	bar.Volume = rec[c.volume]
	return bar, nil
}

// ReadAll reads all the bars into a Data container.
func (r *CSVReader) ReadAll() (*Data, error) {
	d := &Data{}
	for {
		bar, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		d.Append(bar)
	}
	return d, nil
}

// Parse reads a whole CSV document.
func Parse(r io.Reader) (*Data, error) {
	return NewCSVReader(r).ReadAll()
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}

	log.Debugf("can not parse date %q", s)
	return time.Time{}
}

func parse(field, s string) num.Num {
	n, err := num.ParseStrict(s)
	if err != nil {
		log.WithError(err).Debugf("%s is not available", field)
		return num.NA
	}
	return n
}
