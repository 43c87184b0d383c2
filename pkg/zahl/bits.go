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

import "math/big"

// The bitwise operators treat each operand as its infinite two's-complement
// expansion, where a negative number carries infinitely many leading one bits.
// Sign propagation follows directly: And(-1, x) == x, Or(x, -1) == -1,
// Xor(x, x) == 0 and Not(x) == -x-1 hold for every x.

// And computes the bitwise conjunction of two integers under two's-complement
// semantics.
func (p Int) And(other Int) Int {
	var val big.Int
	//
	val.And(&p.val, &other.val)
	//
	return Int{val}
}

// Or computes the bitwise disjunction of two integers under two's-complement
// semantics.
func (p Int) Or(other Int) Int {
	var val big.Int
	//
	val.Or(&p.val, &other.val)
	//
	return Int{val}
}

// Xor computes the bitwise exclusive disjunction of two integers under
// two's-complement semantics.
func (p Int) Xor(other Int) Int {
	var val big.Int
	//
	val.Xor(&p.val, &other.val)
	//
	return Int{val}
}

// Not computes the bitwise complement of this integer, which under
// two's-complement semantics is -p-1.
func (p Int) Not() Int {
	var val big.Int
	//
	val.Not(&p.val)
	//
	return Int{val}
}

// Bit returns the bit at a given offset of the two's-complement expansion,
// where offsets always start with the least significant.  For negative values
// this includes the infinite run of leading ones.
func (p Int) Bit(offset uint) bool {
	return p.val.Bit(int(offset)) == 1
}

// TrailingZeros returns the number of consecutive zero bits above offset zero,
// i.e. the two-adic valuation of the magnitude.  The result for zero is zero
// by convention.
func (p Int) TrailingZeros() uint {
	if p.IsZero() {
		return 0
	}
	//
	return uint(p.val.TrailingZeroBits())
}
