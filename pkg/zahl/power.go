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

// IsPowerOf checks whether this value is n^k for some k >= 0.  The degenerate
// bases are pinned down explicitly: one is a power of anything (k = 0, with
// 0^0 = 1); zero is a power only of zero; one is the only power of one; and
// ±1 are the powers of minus one.  A negative value requires a negative base
// and an odd exponent.
func (p Int) IsPowerOf(n Int) bool {
	switch {
	case p.isOne():
		return true
	case n.IsZero():
		return p.IsZero()
	case n.isOne() || p.IsZero():
		return false
	case n.isMinusOne():
		return p.isMinusOne()
	case p.Sign() < 0 && n.Sign() > 0:
		return false
	}
	// |n| >= 2, so candidate exponents are bounded by the exact logarithm of
	// the magnitudes; only that single candidate can work.
	var (
		pAbs = new(big.Int).Abs(&p.val)
		nAbs = new(big.Int).Abs(&n.val)
	)
	//
	if pAbs.Cmp(nAbs) < 0 {
		return false
	}
	//
	k := exactLogLadder(pAbs, nAbs)
	pw := new(big.Int).Exp(nAbs, new(big.Int).SetUint64(k), nil)
	//
	if pw.Cmp(pAbs) != 0 {
		return false
	}
	// Match the sign: a negative base yields a negative result exactly for odd
	// exponents.
	if n.Sign() < 0 && k%2 == 1 {
		return p.Sign() < 0
	}
	//
	return p.Sign() > 0
}
