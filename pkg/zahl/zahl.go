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
	"math/big"
)

// Int is an arbitrary-precision signed integer.  The limb representation is
// delegated to the wrapped big.Int, which keeps a sign flag plus a magnitude
// stored without leading zero limbs; hence every reachable Int is canonical and
// equal values have identical encodings (something Hash and Equals rely upon).
//
// Values are immutable once published: operations take value receivers, build
// their result in a fresh big.Int and never write through an operand's backing
// storage, which is what makes the shared instances handed out by Small safe
// to use from multiple threads.  The sole exceptions are Set and SetInt64,
// which take the pointer, exist for pool reuse, and must not be called on a
// value which has already been shared.
type Int struct {
	val big.Int
}

// Zero constructs the canonical zero value.  The zero Int is also usable
// directly, exactly as with big.Int.
func Zero() Int {
	return Int{}
}

// One constructs the value 1.
func One() Int {
	return NewInt(1)
}

// NewInt constructs an Int from a machine integer.  This is exact and total,
// since the target is arbitrary precision.
func NewInt(v int64) Int {
	var p Int
	//
	p.val.SetInt64(v)
	//
	return p
}

// NewUint constructs an Int from an unsigned machine integer.  This is exact
// and total, since the target is arbitrary precision.
func NewUint(v uint64) Int {
	var p Int
	//
	p.val.SetUint64(v)
	//
	return p
}

// Set rebinds this Int to a deep copy of another, sharing no storage with it.
// This exists so a pooled instance can be recycled before being shared;
// it must never race with readers of the same instance, and callers are
// responsible for that synchronisation.  It is deliberately excluded from the
// arithmetic surface, which always returns fresh values.
func (p *Int) Set(other Int) {
	var val big.Int
	// Clone underlying integer
	val.Set(&other.val)
	//
	p.val = val
}

// SetInt64 rebinds this Int to a machine integer, under the same pooling
// contract as Set.
func (p *Int) SetInt64(v int64) {
	var val big.Int
	//
	val.SetInt64(v)
	//
	p.val = val
}

// Sign returns -1, 0 or +1 depending on whether this value is negative, zero
// or positive.
func (p Int) Sign() int {
	return p.val.Sign()
}

// IsZero checks whether this value is zero.
func (p Int) IsZero() bool {
	return p.val.Sign() == 0
}

// BitLen returns the length of the magnitude in bits, with zero having length
// zero.
func (p Int) BitLen() uint {
	return uint(p.val.BitLen())
}

// Cmp compares two values, returning -1, 0 or +1.
func (p Int) Cmp(other Int) int {
	return p.val.Cmp(&other.val)
}

// Int64 converts this value back into a signed machine integer.  The
// conversion is lossless; a value which does not fit yields a RangeError.
func (p Int) Int64() (int64, error) {
	if !p.val.IsInt64() {
		return 0, rangeErrorf("int64", "%s does not fit 64 bits", p.String())
	}
	//
	return p.val.Int64(), nil
}

// Uint64 converts this value back into an unsigned machine integer.  The
// conversion is lossless; a negative value, or one which does not fit, yields
// a RangeError.
func (p Int) Uint64() (uint64, error) {
	if !p.val.IsUint64() {
		return 0, rangeErrorf("uint64", "%s does not fit unsigned 64 bits", p.String())
	}
	//
	return p.val.Uint64(), nil
}

// Float64 converts this value into the nearest float64, overflowing to the
// appropriately signed infinity when the magnitude exceeds the float range.
// Exactness is deliberately not promised; this exists for estimation only.
func (p Int) Float64() float64 {
	var f big.Float
	//
	f.SetInt(&p.val)
	//
	val, _ := f.Float64()
	//
	return val
}

// AsBigInt returns a freshly allocated big integer holding the same value,
// sharing no storage with this Int.
func (p Int) AsBigInt() big.Int {
	var val big.Int
	//
	val.Set(&p.val)
	//
	return val
}

// String returns the decimal rendition of this value.
func (p Int) String() string {
	return p.val.String()
}

// Text returns the rendition of this value in the given base, using lowercase
// letters for digits above 9.  Bases outside 2..36 are a programmer error and
// panic, mirroring the wrapped primitive.
func (p Int) Text(base uint) string {
	if base < 2 || base > 36 {
		panic("illegal base")
	}
	//
	return p.val.Text(int(base))
}
