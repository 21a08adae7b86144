package types

import (
	"fmt"
	"math"

	"github.com/c9s/vista/pkg/num"
)

// NumberSeries broadcasts a constant to every index.
type NumberSeries num.Num

func (a NumberSeries) Index(_ int) num.Num {
	return num.Num(a)
}

func (a NumberSeries) Length() int {
	return math.MaxInt32
}

var _ Series = NumberSeries{}

func switchIface(b interface{}) Series {
	switch tp := b.(type) {
	case Series:
		return tp
	case num.Num:
		return NumberSeries(tp)
	case float64:
		return NumberSeries(num.New(tp))
	case float32:
		return NumberSeries(num.New(float64(tp)))
	case int:
		return NumberSeries(num.NewFromInt(tp))
	case int32:
		return NumberSeries(num.NewFromInt(int(tp)))
	case int64:
		return NumberSeries(num.NewFromInt64(tp))
	default:
		panic(fmt.Sprintf("input should be either a Series or a number, got %T", b))
	}
}

func minLength(a, b Series) int {
	lengtha := a.Length()
	lengthb := b.Length()
	if lengtha < lengthb {
		return lengtha
	}
	return lengthb
}

// BinaryResult applies op elementwise on a and b. It holds no state and
// evaluates op on every read.
type BinaryResult struct {
	a  Series
	b  Series
	op func(a, b num.Num) num.Num
}

func (r *BinaryResult) Index(i int) num.Num {
	if i < 0 || i >= r.Length() {
		return num.NA
	}
	return r.op(r.a.Index(i), r.b.Index(i))
}

func (r *BinaryResult) Length() int {
	return minLength(r.a, r.b)
}

var _ Series = &BinaryResult{}

func binary(a, b interface{}, op func(a, b num.Num) num.Num) SeriesExtend {
	return NewSeries(&BinaryResult{a: switchIface(a), b: switchIface(b), op: op})
}

// Combine applies a custom elementwise operator, result[i] = op(a[i], b[i]).
// op receives NA operands as they are and must handle them.
func Combine(a interface{}, b interface{}, op func(a, b num.Num) num.Num) SeriesExtend {
	return binary(a, b, op)
}

// Add two series, result[i] = a[i] + b[i]
func Add(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Num.Add)
}

// Sub two series, result[i] = a[i] - b[i]
func Sub(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Num.Sub)
}

// Mul two series, result[i] = a[i] * b[i]
func Mul(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Num.Mul)
}

// Div two series, result[i] = a[i] / b[i]. Division by zero is NA at that index.
func Div(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Num.Div)
}

// Max of two series, result[i] = max(a[i], b[i])
func Max(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Max)
}

// Min of two series, result[i] = min(a[i], b[i])
func Min(a interface{}, b interface{}) SeriesExtend {
	return binary(a, b, num.Min)
}

type UnaryResult struct {
	a  Series
	op func(a num.Num) num.Num
}

func (r *UnaryResult) Index(i int) num.Num {
	if i < 0 || i >= r.a.Length() {
		return num.NA
	}
	return r.op(r.a.Index(i))
}

func (r *UnaryResult) Length() int {
	return r.a.Length()
}

var _ Series = &UnaryResult{}

// Neg returns -a
func Neg(a Series) SeriesExtend {
	return NewSeries(&UnaryResult{a: a, op: num.Num.Neg})
}

// Abs returns series having all the elements positive
func Abs(a Series) SeriesExtend {
	return NewSeries(&UnaryResult{a: a, op: num.Num.Abs})
}

// Map applies f to every element. f must be pure.
func Map(a Series, f func(v num.Num) num.Num) SeriesExtend {
	return NewSeries(&UnaryResult{a: a, op: f})
}

type ShiftResult struct {
	a      Series
	offset int
}

func (inc *ShiftResult) Index(i int) num.Num {
	if i < 0 || i >= inc.a.Length() {
		return num.NA
	}
	return inc.a.Index(i + inc.offset)
}

func (inc *ShiftResult) Length() int {
	return inc.a.Length()
}

// Shift moves the series along the index space, result[i] = a[i+offset].
// A positive offset reads older values, a negative one newer values;
// whatever falls outside of a is NA.
func Shift(a Series, offset int) SeriesExtend {
	return NewSeries(&ShiftResult{a, offset})
}

// Change is the difference between the current value and a prior one, a[i] - a[i+offset].
// offset: if not given, offset is 1.
func Change(a Series, offset ...int) SeriesExtend {
	o := 1
	if len(offset) > 0 {
		o = offset[0]
	}
	return Sub(a, Shift(a, o))
}

// Array extracts elements from the Series, following the order of Index(0..limit)
// if limit is given, will only take the first limit numbers (a.Index[0..limit])
func Array(a Series, limit ...int) (result []num.Num) {
	l := a.Length()
	if len(limit) > 0 && l > limit[0] {
		l = limit[0]
	}
	result = make([]num.Num, l)
	for i := 0; i < l; i++ {
		result[i] = a.Index(i)
	}
	return
}

// Reverse is similar to Array but in chronological order, oldest first.
// Values are read from the oldest index towards index 0. Without a limit that
// keeps the recursion of a cold Recurrence shallow.
//
// notice that the return type is a Slice, which implements the Series interface
func Reverse(a Series, limit ...int) (result Slice) {
	l := a.Length()
	if len(limit) > 0 && l > limit[0] {
		l = limit[0]
	}
	result = make(Slice, l)
	for i := l - 1; i >= 0; i-- {
		result[l-i-1] = a.Index(i)
	}
	return
}
