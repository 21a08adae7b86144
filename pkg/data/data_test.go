package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yahooCSV = `Date,Open,High,Low,Close,Adj Close,Volume
2020-01-02,1875.00,1898.01,1864.15,1898.01,1898.01,4029000
2020-01-03,1864.50,1886.20,1864.50,1874.97,1874.97,3764400
2020-01-06,1860.00,1903.69,1860.00,1902.88,1902.88,4061800
2020-01-07,1904.50,1913.89,1892.04,null,null,4044900
`

func TestParse(t *testing.T) {
	d, err := Parse(strings.NewReader(yahooCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, d.Size())
	assert.True(t, d.Close.Index(0).IsNA(), "null close is not available")
	assert.Equal(t, 1902.88, d.Close.Index(1).Float64())
	assert.Equal(t, 1898.01, d.Close.Index(3).Float64())
	assert.Equal(t, 1913.89, d.High.Index(0).Float64())
	assert.Equal(t, 1864.15, d.Low.Index(3).Float64())
	assert.Equal(t, 4029000.0, d.Volume.Index(3).Float64())
	assert.Equal(t, 1875.0, d.Open.Index(3).Float64())

	date, ok := d.DateAt(0)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 7, 0, 0, 0, 0, time.UTC), date)

	_, ok = d.DateAt(4)
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse(strings.NewReader("Date,Open,High,Low,Close\n2020-01-02,1,2,3,4\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Parse(strings.NewReader("Date,Open,High,Low,Close,Volume\n2020-01-02,1,2,3\n"))
	assert.ErrorIs(t, err, ErrNotEnoughColumns)
}

func TestParse_UnixMilliAndShortHeader(t *testing.T) {
	d, err := Parse(strings.NewReader("timestamp,o,h,l,c,v\n1577923200000,1,2,0.5,1.5,10\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Size())

	date, _ := d.DateAt(0)
	assert.Equal(t, int64(1577923200000), date.UnixMilli())
}

func TestData_Source(t *testing.T) {
	d, err := Parse(strings.NewReader(yahooCSV))
	require.NoError(t, err)

	hl2, err := d.Source("hl2")
	require.NoError(t, err)
	assert.InDelta(t, (1903.69+1860.00)/2, hl2.Index(1).Float64(), 1e-9)

	hlc3, err := d.Source("HLC3")
	require.NoError(t, err)
	assert.True(t, hlc3.Index(0).IsNA())

	ohlc4, err := d.Source("ohlc4")
	require.NoError(t, err)
	assert.InDelta(t, (1875.00+1898.01+1864.15+1898.01)/4, ohlc4.Index(3).Float64(), 1e-9)

	for _, name := range Sources {
		s, err := d.Source(name)
		require.NoError(t, err, name)
		assert.Equal(t, 4, s.Length(), name)
	}

	_, err = d.Source("vwap")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amzn.csv")
	require.NoError(t, os.WriteFile(path, []byte(yahooCSV), 0644))

	d, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoad_URL(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			http.NotFound(w, r)
			return
		}

		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(yahooCSV))
	}))
	defer server.Close()

	d, err := Load(context.Background(), server.URL+"/amzn.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, int32(2), hits.Load(), "the bad gateway is retried")

	_, err = Load(context.Background(), server.URL+"/missing.csv")
	assert.Error(t, err)
}
