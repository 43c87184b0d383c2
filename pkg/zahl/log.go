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

// Expected exponents below this threshold are estimated via the floating-point
// bracket rather than the squaring ladder, since the ladder's cost is
// dominated by the handful of huge squarings it would perform.
const ladderMinExponent = 8

// ExactLog returns the largest k such that base^k <= p.  The receiver must be
// strictly positive and the base at least two; anything else yields a
// DomainError.
//
// Two estimators sit behind this entry point: an integer repeated-squaring
// ladder, exact by construction and fast when the exponent is large, and a
// floating-point bracket of log2(p)/log2(base), cheaper when the base is
// within a few squarings of p.  Whichever ran, the estimate is verified and
// corrected against exact integer comparisons before being returned, so the
// public contract is exact despite the inexact intermediate arithmetic.
func (p Int) ExactLog(base Int) (uint64, error) {
	switch {
	case p.Sign() <= 0:
		return 0, domainErrorf("log", "logarithm of non-positive value %s", p.String())
	case base.Sign() <= 0 || base.isOne():
		return 0, domainErrorf("log", "logarithm base %s", base.String())
	case p.Cmp(base) < 0:
		return 0, nil
	}
	//
	var estimate uint64
	// Select estimator on the expected exponent, which is roughly the ratio of
	// the operands' bit lengths.
	if ladderMinExponent*base.BitLen() >= p.BitLen() {
		estimate = exactLogBracket(&p.val, &base.val)
	} else {
		estimate = exactLogLadder(&p.val, &base.val)
	}
	//
	return verifyLog(&p.val, &base.val, estimate), nil
}

// exactLogLadder estimates the integer logarithm by repeated squaring: climb
// through base^(2^i) while it stays at or below p, then descend re-admitting
// each power which still fits.  The estimate is exact by construction, though
// the caller verifies it regardless.  Requires 2 <= base <= p.
func exactLogLadder(p *big.Int, base *big.Int) uint64 {
	// Build the tower base^(2^i) <= p.
	tower := []*big.Int{new(big.Int).Set(base)}
	//
	for {
		var (
			top  = tower[len(tower)-1]
			next = new(big.Int).Mul(top, top)
		)
		//
		if next.Cmp(p) > 0 {
			break
		}
		//
		tower = append(tower, next)
	}
	// Descend, accumulating the exponent bit by bit.
	var (
		k   uint64
		acc = big.NewInt(1)
		tmp = new(big.Int)
	)
	//
	for i := len(tower) - 1; i >= 0; i-- {
		tmp.Mul(acc, tower[i])
		//
		if tmp.Cmp(p) <= 0 {
			k |= 1 << uint(i)
			// Swap rather than copy, so the freshly grown accumulator is kept
			// and tmp's old storage recycled.
			acc, tmp = tmp, acc
		}
	}
	//
	return k
}

// exactLogBracket estimates the integer logarithm as the quotient of the
// operands' binary logarithms, each held as a directed-rounding float bracket.
// The returned candidate may be off by a small count in either direction.
// Requires 2 <= base <= p.
func exactLogBracket(p *big.Int, base *big.Int) uint64 {
	var (
		num = log2Bracket(p)
		den = log2Bracket(base)
	)
	//
	return num.div(den).floor()
}

// verifyLog corrects an estimated exponent against exact integer comparisons,
// returning the true largest k with base^k <= p.  The estimate is normally
// within a step or two of the answer, so the walk is short.
func verifyLog(p *big.Int, base *big.Int, k uint64) uint64 {
	pw := new(big.Int).Exp(base, new(big.Int).SetUint64(k), nil)
	// Walk down while the power overshoots.
	for pw.Cmp(p) > 0 {
		k--
		pw.Quo(pw, base)
	}
	// Walk up while the next power still fits.
	for {
		pw.Mul(pw, base)
		//
		if pw.Cmp(p) > 0 {
			return k
		}
		//
		k++
	}
}
