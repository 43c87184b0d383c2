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
	"math/bits"
)

// Add two integers together, producing a fresh canonical value.  This cannot
// fail.
func (p Int) Add(other Int) Int {
	var val big.Int
	//
	val.Add(&p.val, &other.val)
	//
	return Int{val}
}

// Sub subtracts another integer from this one, producing a fresh canonical
// value.  This cannot fail.
func (p Int) Sub(other Int) Int {
	var val big.Int
	//
	val.Sub(&p.val, &other.val)
	//
	return Int{val}
}

// Neg negates this integer.
func (p Int) Neg() Int {
	var val big.Int
	//
	val.Neg(&p.val)
	//
	return Int{val}
}

// Abs returns the absolute value of this integer.
func (p Int) Abs() Int {
	var val big.Int
	//
	val.Abs(&p.val)
	//
	return Int{val}
}

// Mul multiplies two integers together, producing a fresh canonical value.
// This cannot fail.
func (p Int) Mul(other Int) Int {
	var val big.Int
	//
	val.Mul(&p.val, &other.val)
	//
	return Int{val}
}

// Pow raises this integer to a given integer power via square-and-multiply
// over the exponent's bits.  A zero exponent always yields one, including for
// a zero base.  Negative exponents are defined only for the bases ±1 (whose
// reciprocals remain integers) and yield a DomainError otherwise, including
// for a zero base.  A positive exponent beyond machine range on a base of
// magnitude two or more yields a RangeError, since the result could never be
// materialised.
func (p Int) Pow(exp Int) (Int, error) {
	// Dispense with trivial bases, for which the exponent magnitude is
	// irrelevant.
	switch {
	case p.isOne():
		return One(), nil
	case p.isMinusOne():
		if exp.val.Bit(0) == 0 {
			return One(), nil
		}
		//
		return NewInt(-1), nil
	case exp.Sign() < 0:
		return Zero(), domainErrorf("pow", "negative exponent undefined for base %s", p.String())
	case exp.IsZero():
		return One(), nil
	case p.IsZero():
		return Zero(), nil
	}
	//
	if !exp.val.IsUint64() {
		return Zero(), rangeErrorf("pow", "exponent %s exceeds any addressable magnitude", exp.String())
	}
	//
	return p.pow(exp.val.Uint64()), nil
}

// Raise this value to a given (non-trivial) power.  The accumulator for the
// running square is reused across iterations, so peak transient memory is one
// intermediate beyond the result itself.
func (p Int) pow(exp uint64) Int {
	// Try to stay within machine arithmetic.
	if p.val.IsUint64() {
		if v, ok := powUint64(p.val.Uint64(), exp); ok {
			return NewUint(v)
		}
	}
	//
	var (
		result = big.NewInt(1)
		square = new(big.Int).Set(&p.val)
	)
	//
	for {
		if exp&1 == 1 {
			result.Mul(result, square)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		square.Mul(square, square)
	}
	//
	return Int{*result}
}

// powUint64 raises a given base to a given power entirely within machine
// arithmetic, reporting failure as soon as an intermediate overflows.
func powUint64(base uint64, exp uint64) (uint64, bool) {
	result := uint64(1)
	//
	for {
		if exp&1 == 1 {
			if hi, lo := bits.Mul64(result, base); hi == 0 {
				result = lo
			} else {
				return 0, false
			}
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		if hi, lo := bits.Mul64(base, base); hi == 0 {
			base = lo
		} else {
			return 0, false
		}
	}
	//
	return result, true
}

// Lsh shifts this integer left by a given number of bits, which is exact
// multiplication by the corresponding power of two.  A negative shift amount
// yields a DomainError, and an amount beyond machine range (on a non-zero
// operand) a RangeError.
func (p Int) Lsh(n Int) (Int, error) {
	return p.shift(n, true)
}

// Rsh shifts this integer right by a given number of bits, discarding the low
// bits.  The shift is arithmetic: negative operands keep their infinite run of
// leading one bits, so the result is the floor of division by the
// corresponding power of two.  A negative shift amount yields a DomainError.
func (p Int) Rsh(n Int) (Int, error) {
	return p.shift(n, false)
}

// Unified shift implementation behind Lsh / Rsh.
func (p Int) shift(n Int, left bool) (Int, error) {
	var val big.Int
	//
	if n.Sign() < 0 {
		return Zero(), domainErrorf("shift", "negative shift amount %s", n.String())
	}
	//
	if !n.val.IsUint64() || n.val.Uint64() > math.MaxUint {
		if left {
			if p.IsZero() {
				return Zero(), nil
			}
			//
			return Zero(), rangeErrorf("shift", "left shift by %s exceeds any addressable magnitude", n.String())
		}
		// An oversized right shift has discarded every significant bit, so
		// only the sign extension remains.
		if p.Sign() < 0 {
			return NewInt(-1), nil
		}
		//
		return Zero(), nil
	}
	//
	if left {
		val.Lsh(&p.val, uint(n.val.Uint64()))
	} else {
		val.Rsh(&p.val, uint(n.val.Uint64()))
	}
	//
	return Int{val}, nil
}

// Check whether this value is exactly one.
func (p Int) isOne() bool {
	return p.val.IsUint64() && p.val.Uint64() == 1
}

// Check whether this value is exactly minus one.
func (p Int) isMinusOne() bool {
	return p.val.IsInt64() && p.val.Int64() == -1
}
