package num

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMode selects how Round resolves the discarded fraction.
type RoundMode int

const (
	// HalfUp rounds towards the nearest neighbour, ties away from zero.
	HalfUp RoundMode = iota
	// HalfDown rounds towards the nearest neighbour, ties towards zero.
	HalfDown
	// HalfEven rounds towards the nearest neighbour, ties to the even neighbour.
	HalfEven
	// Up rounds away from zero.
	Up
	// Down rounds towards zero.
	Down
	Ceiling
	Floor
)

var roundModeNames = map[RoundMode]string{
	HalfUp:   "half_up",
	HalfDown: "half_down",
	HalfEven: "half_even",
	Up:       "up",
	Down:     "down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

func (m RoundMode) String() string {
	if s, ok := roundModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RoundMode(%d)", int(m))
}

// ParseRoundMode accepts the names printed by RoundMode.String, case-insensitive.
func ParseRoundMode(s string) (RoundMode, error) {
	s = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for m, name := range roundModeNames {
		if name == s {
			return m, nil
		}
	}
	return HalfUp, fmt.Errorf("unknown round mode %q", s)
}

var half = decimal.New(5, -1)

// Round rounds to the given number of decimal places. NA is returned unchanged.
func (n Num) Round(decimals int, mode ...RoundMode) Num {
	if n.IsNA() {
		return NA
	}

	m := HalfUp
	if len(mode) > 0 {
		m = mode[0]
	}

	places := int32(decimals)
	d := decimal.NewFromFloat(n.v)

	var r decimal.Decimal
	switch m {
	case HalfDown:
		shifted := d.Shift(places)
		frac := shifted.Sub(shifted.Truncate(0)).Abs()
		if frac.Equal(half) {
			r = d.RoundDown(places)
		} else {
			r = d.Round(places)
		}
	case HalfEven:
		r = d.RoundBank(places)
	case Up:
		r = d.RoundUp(places)
	case Down:
		r = d.RoundDown(places)
	case Ceiling:
		r = d.RoundCeil(places)
	case Floor:
		r = d.RoundFloor(places)
	default:
		r = d.Round(places)
	}

	return New(r.InexactFloat64())
}
