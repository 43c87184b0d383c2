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

	log "github.com/sirupsen/logrus"
)

// Verdict is the outcome of a primality test.  It deliberately separates the
// certified and probabilistic positive outcomes, and the machinery failing to
// reach a verdict is reported through the error channel rather than encoded
// as a sentinel value.
type Verdict uint8

const (
	// Composite indicates the value is certainly not prime.  Values below two
	// (including negatives) are classed composite by convention.
	Composite Verdict = iota
	// ProbablePrime indicates the value passed a Baillie-PSW test without a
	// certificate being established.  No composite below 2^64 passes, and no
	// composite of any size is known to.
	ProbablePrime
	// Prime indicates primality was certified, either by the deterministic
	// small-range machinery or by an explicit certificate.
	Prime
)

// String returns a human-readable rendition of this verdict.
func (v Verdict) String() string {
	switch v {
	case Composite:
		return "composite"
	case ProbablePrime:
		return "probable prime"
	case Prime:
		return "prime"
	default:
		return "unknown"
	}
}

// Values below this bound are settled exactly by Miller-Rabin with the first
// twelve prime bases (Sorenson & Webster, 2015).
var millerRabinBound, _ = new(big.Int).SetString("3317044064679887385961981", 10)

var millerRabinBases = [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Iteration budget for the Pocklington prover, shared across the factoring of
// one certificate.  Overridable for testing.
var proverBudget uint = 1 << 22

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsPseudoprime checks whether this value passes a Baillie-PSW probabilistic
// primality test, i.e. a strong base-2 Miller-Rabin round followed by a strong
// Lucas test with Selfridge parameters.  A true result is exact below 2^64 and
// overwhelmingly likely above; a false result is always exact.
func (p Int) IsPseudoprime() bool {
	verdict, _ := p.IsPrime(false)
	//
	return verdict != Composite
}

// IsPrime determines whether this value is prime.  Values below two, including
// all negatives, are Composite by convention.  The pipeline runs trial
// division against the small-prime table, then deterministic Miller-Rabin
// where that bound applies, then Baillie-PSW.  Without proof, the strongest
// positive verdict beyond the deterministic range is ProbablePrime.  With
// proof, a Pocklington N-1 certificate is attempted; when its factoring budget
// runs out, the probabilistic verdict is returned alongside a TestFailure so
// the caller can distinguish "machinery gave up" from "composite".
func (p Int) IsPrime(proof bool) (Verdict, error) {
	verdict := isPrimeCore(&p.val)
	// Escalate when a certificate is wanted.
	if proof && verdict == ProbablePrime {
		return provePocklington(&p.val)
	}
	//
	return verdict, nil
}

// Core pipeline, shared by the public test and the prover's recursion.  Never
// returns ProbablePrime for values below millerRabinBound.
func isPrimeCore(n *big.Int) Verdict {
	if n.Cmp(two) < 0 {
		return Composite
	}
	// Trial division against the table settles small factors, and settles
	// everything below the squared table limit.
	switch trialDivide(n) {
	case Composite:
		return Composite
	case Prime:
		return Prime
	}
	//
	if n.Cmp(millerRabinBound) < 0 {
		for _, a := range millerRabinBases {
			if !millerRabin(n, big.NewInt(a)) {
				return Composite
			}
		}
		//
		return Prime
	}
	// Baillie-PSW.
	if !millerRabin(n, big.NewInt(2)) || !strongLucas(n) {
		return Composite
	}
	//
	return ProbablePrime
}

// trialDivide tests n against the generated small-prime table, returning Prime
// when n is in the table or below the squared table limit with no factor,
// Composite when a proper factor is found, and ProbablePrime when the table
// cannot settle n.
func trialDivide(n *big.Int) Verdict {
	if n.IsUint64() {
		v := n.Uint64()
		//
		for _, q := range smallPrimes {
			if v == uint64(q) {
				return Prime
			}
			//
			if v%uint64(q) == 0 {
				return Composite
			}
		}
		//
		if v < smallPrimesLimit {
			return Prime
		}
		//
		return ProbablePrime
	}
	//
	var (
		q   big.Int
		rem big.Int
	)
	//
	for _, p := range smallPrimes {
		q.SetUint64(uint64(p))
		//
		if rem.Mod(n, &q).Sign() == 0 {
			return Composite
		}
	}
	//
	return ProbablePrime
}

// millerRabin runs one strong probable-prime round on an odd n > 2 with the
// given base, reporting whether n passed.
func millerRabin(n *big.Int, a *big.Int) bool {
	var (
		nm1 = new(big.Int).Sub(n, big.NewInt(1))
		d   = new(big.Int).Set(nm1)
		s   = 0
	)
	// n-1 = d * 2^s with d odd
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	//
	x := new(big.Int).Exp(a, d, n)
	//
	if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(nm1) == 0 {
		return true
	}
	//
	for i := 1; i < s; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		//
		if x.Cmp(nm1) == 0 {
			return true
		}
	}
	//
	return false
}

// strongLucas runs the strong Lucas probable-prime test with Selfridge's
// parameter selection (method A): the first D in 5, -7, 9, -11, ... with
// Jacobi(D/n) = -1, P = 1 and Q = (1-D)/4.  Requires an odd n > 2 with no
// factor in the small-prime table.
func strongLucas(n *big.Int) bool {
	// Parameter search diverges on perfect squares, which are composite
	// anyway.
	if isSquare(n) {
		return false
	}
	//
	var (
		d     = big.NewInt(5)
		neg   = false
		found = false
	)
	//
	for range 64 {
		switch big.Jacobi(d, n) {
		case -1:
			found = true
		case 0:
			// d shares a factor with n.
			return new(big.Int).Abs(d).Cmp(n) == 0
		}
		//
		if found {
			break
		}
		//
		neg = !neg
		d.Abs(d)
		d.Add(d, big.NewInt(2))
		//
		if neg {
			d.Neg(d)
		}
	}
	// No suitable D within a reasonable search means n is a perfect square in
	// disguise; treat conservatively as composite.
	if !found {
		return false
	}
	// P = 1, Q = (1-D)/4
	q := new(big.Int).Sub(big.NewInt(1), d)
	q.Rsh(q, 2)
	// n+1 = m * 2^s with m odd
	var (
		m = new(big.Int).Add(n, big.NewInt(1))
		s = 0
	)
	//
	for m.Bit(0) == 0 {
		m.Rsh(m, 1)
		s++
	}
	//
	u, v, qk := lucasChain(n, d, q, m)
	// Strong test: U_m == 0, or V_{m*2^r} == 0 for some 0 <= r < s.
	if u.Sign() == 0 || v.Sign() == 0 {
		return true
	}
	//
	for r := 1; r < s; r++ {
		// V_{2k} = V_k^2 - 2*Q^k
		v.Mul(v, v)
		v.Sub(v, new(big.Int).Lsh(qk, 1))
		v.Mod(v, n)
		//
		if v.Sign() == 0 {
			return true
		}
		//
		qk.Mul(qk, qk)
		qk.Mod(qk, n)
	}
	//
	return false
}

// lucasChain computes U_m, V_m and Q^m modulo n for the Lucas sequence with
// P = 1 and the given D, Q, walking m's bits most-significant first with the
// usual doubling identities.
func lucasChain(n *big.Int, d *big.Int, q *big.Int, m *big.Int) (*big.Int, *big.Int, *big.Int) {
	var (
		u   = big.NewInt(1) // U_1
		v   = big.NewInt(1) // V_1 = P
		qk  = new(big.Int).Mod(q, n)
		tmp = new(big.Int)
	)
	//
	for i := m.BitLen() - 2; i >= 0; i-- {
		// Double: U_2k = U_k*V_k, V_2k = V_k^2 - 2*Q^k
		u.Mul(u, v)
		u.Mod(u, n)
		//
		v.Mul(v, v)
		v.Sub(v, tmp.Lsh(qk, 1))
		v.Mod(v, n)
		//
		qk.Mul(qk, qk)
		qk.Mod(qk, n)
		//
		if m.Bit(i) == 1 {
			// Advance: U_{2k+1} = (P*U + V)/2, V_{2k+1} = (D*U + P*V)/2
			var (
				u1 = new(big.Int).Add(u, v)
				v1 = new(big.Int).Mul(d, u)
			)
			//
			v1.Add(v1, v)
			//
			halveMod(u1, n)
			halveMod(v1, n)
			//
			u.Mod(u1, n)
			v.Mod(v1, n)
			//
			qk.Mul(qk, q)
			qk.Mod(qk, n)
		}
	}
	//
	return u, v, qk
}

// halveMod divides x by two modulo an odd n, in place.
func halveMod(x *big.Int, n *big.Int) {
	x.Mod(x, n)
	//
	if x.Bit(0) == 1 {
		x.Add(x, n)
	}
	//
	x.Rsh(x, 1)
}

// isSquare checks whether n is a perfect square.
func isSquare(n *big.Int) bool {
	var (
		root = new(big.Int).Sqrt(n)
		sq   = new(big.Int).Mul(root, root)
	)
	//
	return sq.Cmp(n) == 0
}

// ============================================================================
// Pocklington prover
// ============================================================================

// provePocklington attempts an N-1 primality certificate for a value which
// already passed Baillie-PSW: factor enough of n-1 that the factored part F
// exceeds sqrt(n), then exhibit for every prime q dividing F a witness a with
// a^(n-1) = 1 and gcd(a^((n-1)/q) - 1, n) = 1.  Factoring draws on the
// small-prime table and Pollard rho under a shared iteration budget; when the
// budget runs out the probabilistic verdict stands and a TestFailure reports
// that the machinery, not the number, fell short.  Very occasionally the
// search stumbles on a factor of n itself, upgrading the verdict to Composite.
func provePocklington(n *big.Int) (Verdict, error) {
	var (
		budget = proverBudget
		nm1    = new(big.Int).Sub(n, one)
	)
	//
	primes, err := factorUntil(nm1, n, &budget)
	//
	if err != nil {
		return ProbablePrime, err
	}
	//
	log.Debugf("pocklington: %d bit candidate, %d certificate primes", n.BitLen(), len(primes))
	//
	for _, q := range primes {
		verdict, err := pocklingtonWitness(n, nm1, q)
		//
		if verdict != Prime || err != nil {
			return verdict, err
		}
	}
	//
	return Prime, nil
}

// factorUntil extracts proven prime factors of m until their contribution F
// satisfies F^2 > n, returning the distinct primes extracted.  Factors beyond
// the deterministic range are certified recursively before being admitted.
func factorUntil(m *big.Int, n *big.Int, budget *uint) ([]*big.Int, error) {
	var (
		factored = big.NewInt(1)
		residue  = new(big.Int).Set(m)
		square   = new(big.Int)
		rem      = new(big.Int)
		primes   []*big.Int
	)
	//
	enough := func() bool {
		square.Mul(factored, factored)
		return square.Cmp(n) > 0
	}
	// admit divides every occurrence of a proven prime q out of the residue
	// and into the factored part.
	admit := func(q *big.Int) {
		primes = append(primes, q)
		//
		for {
			quo := new(big.Int)
			//
			if quo.QuoRem(residue, q, rem); rem.Sign() != 0 {
				return
			}
			//
			residue.Set(quo)
			factored.Mul(factored, q)
		}
	}
	// Small factors first.
	for _, p := range smallPrimes {
		q := new(big.Int).SetUint64(uint64(p))
		//
		if rem.Mod(residue, q).Sign() == 0 {
			admit(q)
		}
		//
		if enough() {
			return primes, nil
		}
	}
	// Grind the residue with rho until the factored part is heavy enough.
	for !enough() {
		if residue.Cmp(one) == 0 {
			// Fully factored yet still light: impossible, since F*R = n-1 and
			// R = 1 forces F > sqrt(n).
			panic("unreachable")
		}
		//
		q, err := findPrimeFactor(residue, budget)
		//
		if err != nil {
			return nil, err
		}
		//
		admit(q)
	}
	//
	return primes, nil
}

// findPrimeFactor returns a proven prime factor of a composite (or prime)
// residue, splitting with Pollard rho until a prime divisor emerges.
func findPrimeFactor(c *big.Int, budget *uint) (*big.Int, error) {
	for {
		if isPrimeCore(c) != Composite {
			// Beyond the deterministic range the factor must itself be
			// certified before the certificate may lean on it.
			if c.Cmp(millerRabinBound) >= 0 {
				if verdict, err := provePocklington(c); verdict != Prime || err != nil {
					return nil, testFailuref("prime", "could not certify %d bit factor", c.BitLen())
				}
			}
			//
			return new(big.Int).Set(c), nil
		}
		//
		d, err := pollardRho(c, budget)
		//
		if err != nil {
			return nil, err
		}
		//
		c = d
	}
}

// pollardRho finds a non-trivial divisor of an odd composite n, debiting the
// shared budget one gcd per iteration.  Cycles are restarted with a fresh
// polynomial offset.
func pollardRho(n *big.Int, budget *uint) (*big.Int, error) {
	var (
		d    = new(big.Int)
		diff = new(big.Int)
	)
	//
	for c := int64(1); c < 64; c++ {
		var (
			offset = big.NewInt(c)
			x      = big.NewInt(2)
			y      = big.NewInt(2)
		)
		//
		step := func(v *big.Int) {
			v.Mul(v, v)
			v.Add(v, offset)
			v.Mod(v, n)
		}
		//
		for *budget > 0 {
			*budget = *budget - 1
			//
			step(x)
			step(y)
			step(y)
			//
			diff.Sub(x, y)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
			//
			if d.Cmp(n) == 0 {
				// Cycle collapsed; restart with the next offset.
				break
			}
			//
			if d.Cmp(one) > 0 {
				log.Debugf("pocklington: rho split %d bits off a %d bit residue", d.BitLen(), n.BitLen())
				return new(big.Int).Set(d), nil
			}
		}
		//
		if *budget == 0 {
			break
		}
	}
	//
	return nil, testFailuref("prime", "factoring budget exhausted on %d bit residue", n.BitLen())
}

// pocklingtonWitness searches for a base establishing the Pocklington
// condition for one certificate prime q.  Finding instead a Fermat witness or
// a proper factor of n settles n as Composite outright.
func pocklingtonWitness(n *big.Int, nm1 *big.Int, q *big.Int) (Verdict, error) {
	var (
		exp = new(big.Int).Quo(nm1, q)
		x   = new(big.Int)
		g   = new(big.Int)
	)
	//
	for a := int64(2); a < 1000; a++ {
		base := big.NewInt(a)
		// Fermat check for this base.
		if x.Exp(base, nm1, n); x.Cmp(one) != 0 {
			return Composite, nil
		}
		//
		x.Exp(base, exp, n)
		x.Sub(x, one)
		g.GCD(nil, nil, x.Abs(x), n)
		//
		switch {
		case g.Cmp(one) == 0:
			// Witness found for this q.
			return Prime, nil
		case g.Cmp(n) < 0 && g.Sign() != 0:
			// Proper factor of n.
			return Composite, nil
		}
	}
	//
	return ProbablePrime, testFailuref("prime", "no witness for certificate prime %s", q.String())
}
