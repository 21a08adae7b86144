package types

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/c9s/vista/pkg/num"
	"github.com/c9s/vista/pkg/types/mocks"
)

func windowMean(source Series, index, n int) num.Num {
	sum := num.Zero
	for i := index; i < index+n; i++ {
		sum = sum.Add(source.Index(i))
	}
	return sum.DivFloat64(float64(n))
}

// newTestEMA builds an exponential recurrence seeded at size-n and counts
// how often every index is computed.
func newTestEMA(t *testing.T, source Series, n int, calls map[int]int, mu *sync.Mutex) *Recurrence {
	alpha := num.New(2).DivFloat64(float64(n + 1))
	r, err := NewRecurrence("test_ema", source, n, func(self *Recurrence, index int) num.Num {
		if mu != nil {
			mu.Lock()
			calls[index]++
			mu.Unlock()
		} else {
			calls[index]++
		}

		seed := self.SeedIndex()
		switch {
		case index == seed:
			return windowMean(source, index, n)
		case index < seed:
			prev := self.Index(index + 1)
			return alpha.Mul(source.Index(index)).Add(num.One.Sub(alpha).Mul(prev))
		}
		return num.NA
	})
	require.NoError(t, err)
	return r
}

func TestRecurrence_ThreeZones(t *testing.T) {
	calls := map[int]int{}
	ema := newTestEMA(t, SliceOfInts(1, 2, 3), 2, calls, nil)

	assert.Equal(t, 1, ema.SeedIndex())
	assert.True(t, ema.Index(0).Matches(num.New(2.5), .01)) // current value
	assert.True(t, ema.Index(1).Matches(num.New(1.5), .01)) // previous value, seed
	assert.True(t, ema.Index(2).IsNA())                     // oldest value
	assert.True(t, ema.Index(3).IsNA())
	assert.True(t, ema.Index(-1).IsNA())
}

func TestRecurrence_InteriorFollowsFormula(t *testing.T) {
	source := SliceOfRange(1, 30)
	ema := newTestEMA(t, source, 5, map[int]int{}, nil)

	alpha := 2.0 / 6.0
	seed := ema.SeedIndex()
	assert.Equal(t, windowMean(source, seed, 5).Float64(), ema.Index(seed).Float64())

	for i := 0; i < seed; i++ {
		want := alpha*source.Index(i).Float64() + (1-alpha)*ema.Index(i+1).Float64()
		assert.InDelta(t, want, ema.Index(i).Float64(), 1e-9)
	}

	for i := seed + 1; i < source.Length(); i++ {
		assert.True(t, ema.Index(i).IsNA(), "index %d", i)
	}
}

func TestRecurrence_Memoization(t *testing.T) {
	calls := map[int]int{}
	ema := newTestEMA(t, SliceOfRange(1, 200), 9, calls, nil)

	ema.Index(0)
	ema.Index(0)
	ema.Index(5)
	ema.Index(0)

	assert.Equal(t, ema.SeedIndex()+1, len(calls))
	for index, n := range calls {
		assert.Equal(t, 1, n, "index %d computed %d times", index, n)
	}
	assert.Equal(t, ema.SeedIndex()+1, ema.Evaluated())
}

func TestRecurrence_SourceReadOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSeries(ctrl)
	source.EXPECT().Length().Return(3).AnyTimes()
	source.EXPECT().Index(0).Return(num.New(3)).Times(1)
	source.EXPECT().Index(1).Return(num.New(2)).Times(1)

	doubled, err := NewRecurrence("test_double", source, 1, func(self *Recurrence, index int) num.Num {
		return self.Source().Index(index).MulFloat64(2)
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 6.0, doubled.Index(0).Float64())
		assert.Equal(t, 4.0, doubled.Index(1).Float64())
	}
}

func TestRecurrence_ConcurrentFirstRead(t *testing.T) {
	var mu sync.Mutex
	calls := map[int]int{}
	ema := newTestEMA(t, SliceOfRange(1, 500), 10, calls, &mu)

	var wg sync.WaitGroup
	results := make([]num.Num, 32)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			results[g] = ema.Index(g % 4)
		}(g)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for index, n := range calls {
		assert.Equal(t, 1, n, "index %d computed %d times", index, n)
	}
	for g, v := range results {
		assert.True(t, v.Eq(ema.Index(g%4)))
	}
}

func TestRecurrence_InvalidWindow(t *testing.T) {
	_, err := NewRecurrence("bad", SliceOfInts(1, 2), 0, func(self *Recurrence, index int) num.Num {
		return num.NA
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewRecurrence("bad", nil, 1, nil)
	assert.Error(t, err)
}

func TestRecurrence_PanicIsNotCached(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)

	r, err := NewRecurrence("test_panic", SliceOfInts(1, 2), 1, func(self *Recurrence, index int) num.Num {
		if fail.Load() {
			panic("boom")
		}
		return self.Source().Index(index)
	})
	require.NoError(t, err)

	assert.Panics(t, func() { r.Index(0) })

	fail.Store(false)
	assert.Equal(t, 2.0, r.Index(0).Float64())
	assert.Equal(t, 1, r.Evaluated())
}

func TestRecurrence_Warm(t *testing.T) {
	calls := map[int]int{}
	ema := newTestEMA(t, SliceOfRange(1, 50), 3, calls, nil)

	ema.Warm()
	assert.Equal(t, 50, len(calls))
	assert.Equal(t, 50, ema.Evaluated())

	ema.Index(0)
	assert.Equal(t, 1, calls[0])
}

func TestRecurrence_Composition(t *testing.T) {
	source := SliceOfInts(1, 2, 3, 4, 5, 6)
	fast := newTestEMA(t, source, 2, map[int]int{}, nil)
	slow := newTestEMA(t, source, 4, map[int]int{}, nil)

	diff := fast.Sub(slow)
	smoothed := newTestEMA(t, diff, 2, map[int]int{}, nil)

	for i := 0; i < source.Length(); i++ {
		upstreamNA := fast.Index(i).IsNA() || slow.Index(i).IsNA()
		assert.Equal(t, upstreamNA, diff.Index(i).IsNA(), "diff index %d", i)
		if !upstreamNA {
			assert.InDelta(t, fast.Index(i).Float64()-slow.Index(i).Float64(), diff.Index(i).Float64(), 1e-12)
		}
	}

	// slow is NA above index 2, the smoothing seeds at size-n = 4 and reads
	// NA there, so NA flows down to every index.
	for i := 0; i < source.Length(); i++ {
		assert.True(t, smoothed.Index(i).IsNA(), "smoothed index %d", i)
	}
}
