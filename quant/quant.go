// Package quant derives the JPEG luminance quantization table for a given
// quality factor and exposes the per-coefficient step sizes used by the
// channel package to size its modulation amplitude.
//
// The base table and scaling formula are the standard ones from Annex K of
// the JPEG specification.
package quant

import "fmt"

// Size is the side length of the quantization table.
const Size = 8

// Alpha is the multiplier applied to a coefficient's quantization step to
// obtain its embedding strength.
const Alpha = 1.0

// StrengthFloor is the minimum embedding strength regardless of step size;
// it prevents modulation amplitude from collapsing at high-quality,
// low-step positions. Not derived from a documented bit-error target —
// treated as a tunable, per spec.
const StrengthFloor = 25.0

// baseLuminance is the standard JPEG Annex K luminance quantization table,
// in natural (row-major) order.
var baseLuminance = [Size * Size]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// Table is a scaled 8x8 integer quantization table. Every entry is >= 1.
type Table struct {
	values [Size * Size]int
}

// New builds the luminance quantization table scaled for quality q, with
// q in [1,100]. Scaling follows the standard JPEG round: q<50 uses scale
// 5000/q, q>=50 uses scale 200-2q, then
// Q'[u][v] = clamp(((Q[u][v]*scale)+50)/100, 1, 255).
func New(q int) (*Table, error) {
	if q < 1 || q > 100 {
		return nil, fmt.Errorf("quant: invalid quality %d, want [1,100]", q)
	}

	var scale int
	if q < 50 {
		scale = 5000 / q
	} else {
		scale = 200 - 2*q
	}

	var t Table
	for i, base := range baseLuminance {
		v := (base*scale + 50) / 100
		if v < 1 {
			v = 1
		}
		if v > 255 {
			v = 255
		}
		t.values[i] = v
	}
	return &t, nil
}

// Step returns the scaled quantization step for coefficient (u,v).
func (t *Table) Step(u, v int) int {
	return t.values[v*Size+u]
}

// Strength returns the embedding amplitude for coefficient (u,v): the
// scaled step times Alpha, floored at StrengthFloor.
func (t *Table) Strength(u, v int) float64 {
	s := float64(t.Step(u, v)) * Alpha
	if s < StrengthFloor {
		return StrengthFloor
	}
	return s
}
