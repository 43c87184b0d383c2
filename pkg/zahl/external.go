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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Bytes returns the minimal big-endian rendition of the magnitude: leading
// zeros trimmed, and an empty slice for zero.  Together with the sign this is
// the interchange form consumed by external systems, including the field
// boundary below.
func (p Int) Bytes() []byte {
	return p.val.Bytes()
}

// FromBytes constructs an Int from a sign flag and a big-endian magnitude.
// Leading zero bytes are accepted and canonicalised away; a negative zero
// collapses to canonical zero.
func FromBytes(negative bool, magnitude []byte) Int {
	var val big.Int
	//
	val.SetBytes(magnitude)
	//
	if negative {
		val.Neg(&val)
	}
	//
	return Int{val}
}

// Element embeds this value exactly into the BLS12-377 scalar field.  Only
// values in the canonical range 0 <= p < r embed exactly; anything else yields
// a RangeError rather than being silently reduced, since the round trip must
// be mathematically identical.
func (p Int) Element() (fr.Element, error) {
	var elem fr.Element
	//
	if p.Sign() < 0 || p.val.Cmp(fr.Modulus()) >= 0 {
		return elem, rangeErrorf("element", "%s outside the canonical field range", p.String())
	}
	//
	elem.SetBigInt(&p.val)
	//
	return elem, nil
}

// ReduceElement maps this value into the BLS12-377 scalar field by reduction
// modulo r.  This is the total ring homomorphism from the integers: it
// preserves addition and multiplication, though of course not order.
func (p Int) ReduceElement() fr.Element {
	var elem fr.Element
	//
	elem.SetBigInt(&p.val)
	//
	return elem
}

// FromElement recovers the integer held by a field element, being the exact
// inverse of Element on canonical representatives.
func FromElement(elem fr.Element) Int {
	var val big.Int
	//
	elem.BigInt(&val)
	//
	return Int{val}
}
