// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fx provides deterministic saturating fixed-point arithmetic on
// signed 64-bit micro-units (spec §4.1). Every operation is total: overflow
// saturates instead of panicking or wrapping, and division by zero returns 0
// and increments a protocol-error counter rather than ever panicking — a
// well-formed D-GBDT model never divides by zero, so its occurrence marks
// the model invalid rather than the arithmetic layer broken.
//
// No floating-point appears anywhere in this package or in any caller that
// must satisfy bit-identical cross-architecture results (spec §4.1, I5).
package fx

import "math/bits"

// Scale is the fixed-point unit: one whole unit equals Scale micro-units.
const Scale int64 = 1_000_000

// divByZeroCount counts divisions attempted with a zero divisor. Division by
// zero must not occur in well-formed models (spec §4.1); this counter lets
// a caller detect and reject the offending model rather than silently
// returning 0 forever.
var divByZeroCount int64

// DivByZeroCount returns the number of Div calls with a zero divisor
// observed since process start.
func DivByZeroCount() int64 {
	return divByZeroCount
}

// Add returns a+b, saturating at math.MaxInt64/MinInt64 on overflow.
func Add(a, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if b > 0 {
			return maxInt64
		}
		return minInt64
	}
	return sum
}

// Sub returns a-b, saturating on overflow.
func Sub(a, b int64) int64 {
	if b == minInt64 {
		// -b would overflow; handle directly.
		if a < 0 {
			return minInt64
		}
		return maxInt64
	}
	return Add(a, -b)
}

// Mul returns (a*b)/Scale, computed via a 128-bit intermediate product so
// the multiply itself never overflows before the descale, saturating the
// final result to [MinInt64, MaxInt64].
func Mul(a, b int64) int64 {
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	negative := (a < 0) != (b < 0)

	q, _ := div128(hi, lo, uint64(Scale))
	if q > uint64(maxInt64) {
		if negative {
			return minInt64
		}
		return maxInt64
	}
	signed := int64(q)
	if negative {
		return -signed
	}
	return signed
}

// Div returns (a*Scale)/b. b=0 is invalid-model territory: it returns 0 and
// records the occurrence rather than panicking.
func Div(a, b int64) int64 {
	if b == 0 {
		divByZeroCount++
		return 0
	}
	hi, lo := bits.Mul64(abs64(a), uint64(Scale))
	negative := (a < 0) != (b < 0)
	q, _ := div128(hi, lo, abs64(b))
	if q > uint64(maxInt64) {
		if negative {
			return minInt64
		}
		return maxInt64
	}
	signed := int64(q)
	if negative {
		return -signed
	}
	return signed
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit restricts v to [0, Scale].
func ClampUnit(v int64) int64 {
	return Clamp(v, 0, Scale)
}

const (
	maxInt64 = int64(1<<63 - 1)
	minInt64 = -maxInt64 - 1
)

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// div128 divides the 128-bit number (hi,lo) by a 64-bit divisor d, returning
// quotient and remainder. If the quotient does not fit in 64 bits it
// returns (MaxUint64, 0), which callers saturate.
func div128(hi, lo, d uint64) (q, r uint64) {
	if hi == 0 {
		return lo / d, lo % d
	}
	if hi >= d {
		// Quotient would overflow 64 bits; caller-level saturation handles
		// this by comparing against a magnitude ceiling beforehand in
		// practice, but guard here defensively.
		return ^uint64(0), 0
	}
	return bits.Div64(hi, lo, d)
}
