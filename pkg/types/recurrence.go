package types

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/vista/pkg/metrics"
	"github.com/c9s/vista/pkg/num"
)

var ErrInvalidWindow = errors.New("window length must be positive")

// RecurrenceFunc computes the value at index. It may read self at indices
// greater than index (older values), never at index or below.
type RecurrenceFunc func(self *Recurrence, index int) num.Num

type cacheSlot struct {
	once  sync.Once
	value num.Num
	ok    bool
}

// Recurrence is a lazy series defined by a recurrence relation over a source
// series and its own older values. Every index is computed at most once and
// cached for the lifetime of the series.
//
// A recurrence is expected to have three zones: a seed index (usually
// SeedIndex()) where it bottoms out to a non-recursive computation, the
// interior below it where it reads self[index+1], and NA above it.
type Recurrence struct {
	SeriesBase

	name   string
	source Series
	window int
	calc   RecurrenceFunc

	mu    sync.Mutex
	cache map[int]*cacheSlot

	evaluated atomic.Int64

	evaluations prometheus.Counter
	cacheHits   prometheus.Counter
}

// NewRecurrence creates a recurrence over source. name labels the metrics,
// window is the number of bars the seed computation needs.
func NewRecurrence(name string, source Series, window int, calc RecurrenceFunc) (*Recurrence, error) {
	if window < 1 {
		return nil, errors.Wrapf(ErrInvalidWindow, "%s: window %d", name, window)
	}

	if source == nil || calc == nil {
		return nil, errors.Errorf("%s: source and calc are required", name)
	}

	r := &Recurrence{
		name:        name,
		source:      source,
		window:      window,
		calc:        calc,
		cache:       make(map[int]*cacheSlot),
		evaluations: metrics.RecurrenceEvaluationsMetrics.WithLabelValues(name),
		cacheHits:   metrics.RecurrenceCacheHitsMetrics.WithLabelValues(name),
	}
	r.SeriesBase.Series = r
	return r, nil
}

func (r *Recurrence) Name() string {
	return r.name
}

func (r *Recurrence) Source() Series {
	return r.source
}

func (r *Recurrence) Window() int {
	return r.window
}

func (r *Recurrence) Length() int {
	return r.source.Length()
}

// SeedIndex is the oldest index with a full window of source values behind it.
func (r *Recurrence) SeedIndex() int {
	return r.Length() - r.window
}

// Evaluated returns the number of indices computed so far.
func (r *Recurrence) Evaluated() int {
	return int(r.evaluated.Load())
}

func (r *Recurrence) slot(i int) *cacheSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.cache[i]
	if !ok {
		s = &cacheSlot{}
		r.cache[i] = s
	}
	return s
}

func (r *Recurrence) forget(i int, s *cacheSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache[i] == s {
		delete(r.cache, i)
	}
}

// Index returns the cached value, computing it on the first read.
// Concurrent first reads of the same index block until the single
// computation finishes. The lock is not held while computing, so the
// recurrence can read its own older indices.
func (r *Recurrence) Index(i int) num.Num {
	if i < 0 || i >= r.Length() {
		return num.NA
	}

	s := r.slot(i)
	computed := false
	s.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				r.forget(i, s)
				panic(p)
			}
		}()

		s.value = r.calc(r, i)
		s.ok = true
		computed = true
	})

	if !s.ok {
		// the computation panicked in another goroutine, the slot was dropped
		return r.Index(i)
	}

	if computed {
		r.evaluated.Add(1)
		r.evaluations.Inc()
	} else {
		r.cacheHits.Inc()
	}

	return s.value
}

// Warm evaluates every index from the oldest to the newest one, so later
// reads are cache hits and the recursion depth of each step stays at one.
func (r *Recurrence) Warm() {
	for i := r.Length() - 1; i >= 0; i-- {
		r.Index(i)
	}
}

var _ SeriesExtend = &Recurrence{}
