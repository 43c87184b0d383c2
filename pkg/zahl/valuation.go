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

// Valuation returns the q-adic valuation of this value, being the exponent of
// the largest power of q which divides it exactly.  A q which does not divide
// the value at all simply yields zero.  The modulus must be at least two, and
// the receiver non-zero: the valuation of zero is undefined (every power
// divides it) and yields a DomainError rather than a sentinel.
func (p Int) Valuation(q Int) (uint64, error) {
	k, _, err := p.ValUnit(q)
	//
	return k, err
}

// ValUnit returns the q-adic valuation of this value together with its unit
// part, being the cofactor left once every factor of q has been removed.  The
// unit keeps the receiver's sign, so p == unit * q^k always.  Domain
// restrictions are those of Valuation.
func (p Int) ValUnit(q Int) (uint64, Int, error) {
	switch {
	case p.IsZero():
		return 0, Zero(), domainErrorf("valuation", "valuation of zero is undefined")
	case q.Sign() < 0 || q.val.IsUint64() && q.val.Uint64() < 2:
		return 0, Zero(), domainErrorf("valuation", "invalid modulus %s", q.String())
	case q.val.Bit(0) == 0 && q.val.BitLen() == int(q.TrailingZeros())+1:
		// q is a power of two, for which the valuation falls out of the limb
		// representation directly.
		k, unit := p.valUnitPow2(q.TrailingZeros())
		//
		return k, unit, nil
	}
	//
	return p.valUnitLadder(&q.val)
}

// Power-of-two moduli reduce to counting trailing zero bits; with q = 2^w the
// valuation is trailing/w and the unit a single shift.
func (p Int) valUnitPow2(w uint) (uint64, Int) {
	var (
		unit big.Int
		k    = uint64(p.TrailingZeros() / w)
	)
	//
	unit.Rsh(&p.val, uint(k)*w)
	//
	return k, Int{unit}
}

// General moduli use a squaring ladder, the exact-division dual of the
// logarithm ladder: divide out q, then climb through q^2, q^4, ... while each
// still divides, then walk back down re-trying each level once.  The climb
// leaves a residual exponent strictly below the failed level, so each descent
// level divides at most once and the work is logarithmic in the valuation.
func (p Int) valUnitLadder(q *big.Int) (uint64, Int, error) {
	var (
		k   uint64
		u   = new(big.Int).Abs(&p.val)
		quo = new(big.Int)
		rem = new(big.Int)
	)
	// Peel the first factor by general division.
	if quo.QuoRem(u, q, rem); rem.Sign() != 0 {
		return 0, p, nil
	}
	//
	u.Set(quo)
	k = 1
	// Climb.
	tower := []*big.Int{new(big.Int).Set(q)}
	//
	for i := 0; ; i++ {
		sq := new(big.Int).Mul(tower[i], tower[i])
		//
		if quo.QuoRem(u, sq, rem); rem.Sign() != 0 {
			break
		}
		//
		u.Set(quo)
		k += 2 << uint(i)
		tower = append(tower, sq)
	}
	// Descend.
	for i := len(tower) - 1; i >= 0; i-- {
		if quo.QuoRem(u, tower[i], rem); rem.Sign() == 0 {
			u.Set(quo)
			k += 1 << uint(i)
		}
	}
	// Restore the receiver's sign on the unit.
	if p.Sign() < 0 {
		u.Neg(u)
	}
	//
	return k, Int{*u}, nil
}

// DivExact divides this value by a divisor the caller guarantees divides it
// exactly.
//
// The precondition is NOT checked: this is a caller-responsibility contract,
// kept unchecked so the fast path stays fast.  Violating it yields an
// unspecified (though memory-safe) wrong value, except for a zero divisor
// which panics as with any division.
// Power-of-two divisors reduce to a shift of the magnitude; otherwise the
// quotient is computed by truncated division, which coincides with exact
// division whenever the precondition holds.
func (p Int) DivExact(d Int) Int {
	var val big.Int
	//
	if w := d.TrailingZeros(); uint(d.val.BitLen()) == w+1 {
		// |d| = 2^w, so the quotient magnitude is a shift.
		val.Abs(&p.val)
		val.Rsh(&val, w)
		// Quotient sign is the product of operand signs.
		if p.Sign()*d.Sign() < 0 {
			val.Neg(&val)
		}
		//
		return Int{val}
	}
	//
	val.Quo(&p.val, &d.val)
	//
	return Int{val}
}
