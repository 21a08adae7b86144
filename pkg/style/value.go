package style

import (
	"strings"

	"github.com/fatih/color"
	"github.com/leekchan/accounting"

	"github.com/c9s/vista/pkg/num"
)

var (
	naColor       = color.New(color.FgHiBlack)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
)

// FormatNumber prints a value with thousands separators, keeping every
// decimal of its shortest representation.
func FormatNumber(v num.Num) string {
	s := v.String()
	if v.IsNA() {
		return s
	}

	precision := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		precision = len(s) - dot - 1
	}
	return accounting.FormatNumberFloat64(v.Float64(), precision, ",", ".")
}

// FormatValue prints a value for a table cell. With colored set, NA is dimmed
// and the value is green or red depending on the move from prev.
func FormatValue(v, prev num.Num, colored bool) string {
	s := FormatNumber(v)
	if !colored {
		return s
	}

	if v.IsNA() {
		return naColor.Sprint(s)
	}

	if cmp, ok := v.Compare(prev); ok {
		switch cmp {
		case 1:
			return positiveColor.Sprint(s)
		case -1:
			return negativeColor.Sprint(s)
		}
	}
	return s
}
