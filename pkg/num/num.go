package num

import (
	"encoding/json"
	"math"
	"strconv"
)

// Num is a real number or the "not available" sentinel NA.
//
// The zero value is the number 0. NA is stored as NaN internally, but a Num never
// holds NaN or an infinity as a number: constructors fold them into NA.
type Num struct {
	v float64
}

// NA is the "not available" sentinel. Any arithmetic with an NA operand yields NA.
var NA = Num{v: math.NaN()}

var (
	Zero = Num{}
	One  = Num{v: 1}
	Ten  = Num{v: 10}
)

// New returns the Num of f, or NA if f is NaN or infinite.
func New(f float64) Num {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NA
	}
	return Num{v: f}
}

func NewFromInt(i int) Num {
	return Num{v: float64(i)}
}

func NewFromInt64(i int64) Num {
	return Num{v: float64(i)}
}

func (n Num) IsNA() bool {
	return math.IsNaN(n.v)
}

// IsZero reports whether n is the number 0. NA is not zero.
func (n Num) IsZero() bool {
	return n.v == 0
}

// Float64 returns the value as float64. NA is returned as NaN.
func (n Num) Float64() float64 {
	return n.v
}

func (n Num) Add(o Num) Num {
	return New(n.v + o.v)
}

func (n Num) Sub(o Num) Num {
	return New(n.v - o.v)
}

func (n Num) Mul(o Num) Num {
	return New(n.v * o.v)
}

// Div returns n / o. Division by zero yields NA.
func (n Num) Div(o Num) Num {
	if o.v == 0 {
		return NA
	}
	return New(n.v / o.v)
}

func (n Num) AddFloat64(f float64) Num { return n.Add(New(f)) }
func (n Num) SubFloat64(f float64) Num { return n.Sub(New(f)) }
func (n Num) MulFloat64(f float64) Num { return n.Mul(New(f)) }
func (n Num) DivFloat64(f float64) Num { return n.Div(New(f)) }

func (n Num) Neg() Num {
	return New(-n.v)
}

func (n Num) Abs() Num {
	return New(math.Abs(n.v))
}

// Sqrt returns the square root, NA for negative numbers.
func (n Num) Sqrt() Num {
	if n.v < 0 {
		return NA
	}
	return New(math.Sqrt(n.v))
}

// Sign returns -1, 0 or 1, NA stays NA.
func (n Num) Sign() Num {
	switch {
	case n.IsNA():
		return NA
	case n.v > 0:
		return One
	case n.v < 0:
		return One.Neg()
	}
	return Zero
}

// Compare returns -1, 0 or 1 and ok=false when either side is NA.
func (n Num) Compare(o Num) (int, bool) {
	if n.IsNA() || o.IsNA() {
		return 0, false
	}
	switch {
	case n.v < o.v:
		return -1, true
	case n.v > o.v:
		return 1, true
	}
	return 0, true
}

func (n Num) GreaterThan(o Num) bool {
	c, ok := n.Compare(o)
	return ok && c > 0
}

func (n Num) LessThan(o Num) bool {
	c, ok := n.Compare(o)
	return ok && c < 0
}

// Eq is an exact comparison, NA equals NA.
func (n Num) Eq(o Num) bool {
	if n.IsNA() || o.IsNA() {
		return n.IsNA() && o.IsNA()
	}
	return n.v == o.v
}

// Matches compares with a tolerance. NA only matches NA.
func (n Num) Matches(o Num, epsilon float64) bool {
	if n.IsNA() || o.IsNA() {
		return n.IsNA() && o.IsNA()
	}
	return math.Abs(n.v-o.v) <= epsilon
}

// Max returns the greater of both, NA if either is NA.
func Max(a, b Num) Num {
	if a.IsNA() || b.IsNA() {
		return NA
	}
	if a.v >= b.v {
		return a
	}
	return b
}

// Min returns the lesser of both, NA if either is NA.
func Min(a, b Num) Num {
	if a.IsNA() || b.IsNA() {
		return NA
	}
	if a.v <= b.v {
		return a
	}
	return b
}

func (n Num) String() string {
	if n.IsNA() {
		return "NA"
	}
	return strconv.FormatFloat(n.v, 'f', -1, 64)
}

func (n Num) MarshalJSON() ([]byte, error) {
	if n.IsNA() {
		return []byte("null"), nil
	}
	return json.Marshal(n.v)
}

func (n *Num) UnmarshalJSON(data []byte) error {
	var a interface{}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	switch d := a.(type) {
	case nil:
		*n = NA
	case float64:
		*n = New(d)
	case string:
		*n = Parse(d)
	default:
		*n = NA
	}
	return nil
}
