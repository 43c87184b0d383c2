// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package zahl

import (
	"math"
	"math/big"
)

// bracket is a closed floating-point interval [lo, hi] guaranteed to enclose
// the real number it approximates.  Every operation rounds the lower bound
// towards negative infinity and the upper bound towards positive infinity, so
// enclosure is preserved no matter how the hardware rounded the underlying
// arithmetic.  This is the directed-rounding analogue of exact interval
// arithmetic, used where an exact computation would be needlessly expensive
// and a verified correction step follows.
type bracket struct {
	lo float64
	hi float64
}

// newBracket constructs a bracket around a single computed value, widened
// outwards by a given number of ulps to swallow the rounding error of the
// computation which produced it.
func newBracket(val float64, ulps uint) bracket {
	var (
		lo = val
		hi = val
	)
	//
	for range ulps {
		lo = math.Nextafter(lo, math.Inf(-1))
		hi = math.Nextafter(hi, math.Inf(1))
	}
	//
	return bracket{lo, hi}
}

// div divides one bracket by another, rounding outwards.  The divisor must not
// enclose zero.
func (b bracket) div(other bracket) bracket {
	if other.lo <= 0 && other.hi >= 0 {
		panic("division by bracket enclosing zero")
	}
	//
	var (
		lo = math.Min(math.Min(b.lo/other.lo, b.lo/other.hi), math.Min(b.hi/other.lo, b.hi/other.hi))
		hi = math.Max(math.Max(b.lo/other.lo, b.lo/other.hi), math.Max(b.hi/other.lo, b.hi/other.hi))
	)
	// One outward ulp covers the rounding of each quotient.
	return bracket{math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(1))}
}

// floor returns the floor of the bracket's lower bound, clamped at zero.  When
// the bracket is used as an exponent estimate this biases the candidate low,
// which the verification walk then corrects upwards.
func (b bracket) floor() uint64 {
	if b.lo < 0 {
		return 0
	}
	//
	return uint64(math.Floor(b.lo))
}

// log2Bracket returns a bracket enclosing the binary logarithm of a positive
// big integer.  The integer is split as mant * 2^exp with mant in [0.5, 1), so
// log2(x) = exp + log2(mant); only the mantissa rounding and the log itself
// contribute error, each within an ulp, swallowed by the outward widening.
func log2Bracket(x *big.Int) bracket {
	if x.Sign() <= 0 {
		panic("logarithm of non-positive value")
	}
	//
	var (
		f    big.Float
		mant big.Float
	)
	//
	exp := f.SetInt(x).MantExp(&mant)
	// Round-to-nearest mantissa, then its log.
	m, _ := mant.Float64()
	//
	return newBracket(float64(exp)+math.Log2(m), 3)
}
