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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Valuation_2(t *testing.T) {
	checkValuation(2, 45, t)
}

func Test_Valuation_3(t *testing.T) {
	checkValuation(3, 10, t)
}

func Test_Valuation_7(t *testing.T) {
	checkValuation(7, 15, t)
}

func Test_Valuation_10(t *testing.T) {
	checkValuation(10, 7, t)
}

func Test_Valuation_Anchor(t *testing.T) {
	// 360 = 8 * 45
	x := NewInt(360)
	//
	k, err := x.Valuation(NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), k)
}

func Test_Valuation_Negative(t *testing.T) {
	// valuation ignores sign; the unit carries it
	x := NewInt(-360)
	//
	k, unit, err := x.ValUnit(NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), k)
	assert.True(t, unit.Equals(NewInt(-45)))
}

func Test_Valuation_Coprime(t *testing.T) {
	x := NewInt(45)
	//
	k, unit, err := x.ValUnit(NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), k)
	assert.True(t, unit.Equals(x))
}

func Test_Valuation_Domain(t *testing.T) {
	var (
		domainErr *DomainError
		zero      = Zero()
		x         = NewInt(12)
	)
	// valuation of zero is undefined
	_, err := zero.Valuation(NewInt(2))
	require.True(t, errors.As(err, &domainErr))
	// moduli below two are invalid
	_, err = x.Valuation(One())
	require.True(t, errors.As(err, &domainErr))
	//
	_, err = x.Valuation(Zero())
	require.True(t, errors.As(err, &domainErr))
	//
	_, err = x.Valuation(NewInt(-2))
	require.True(t, errors.As(err, &domainErr))
}

func Test_Valuation_PowerOfTwoModuli(t *testing.T) {
	// the shift fast path for 2^w moduli must agree with naive division
	for _, q := range []int64{2, 4, 8, 64, 1024} {
		qz := NewInt(q)
		//
		for v := int64(1); v <= 4096; v++ {
			for _, x := range []Int{NewInt(v), NewInt(-v)} {
				k, unit, err := x.ValUnit(qz)
				require.NoError(t, err)
				//
				expectedK, expectedUnit := naiveValUnit(x, qz)
				assert.Equal(t, expectedK, k, "valuation of %s by %d", x.String(), q)
				assert.True(t, unit.Equals(expectedUnit), "unit of %s by %d", x.String(), q)
			}
		}
	}
}

// naiveValUnit divides the modulus out one factor at a time.
func naiveValUnit(x Int, q Int) (uint64, Int) {
	var k uint64
	//
	for {
		quo := x.DivExact(q)
		//
		if !quo.Mul(q).Equals(x) {
			return k, x
		}
		//
		x = quo
		k++
	}
}

func Test_Valuation_ReconstructsValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			x = drawInt(t, "x")
			q = NewInt(rapid.Int64Range(2, 97).Draw(t, "q").(int64))
		)
		//
		if x.IsZero() {
			// zero has no valuation
			x = One()
		}
		//
		k, unit, err := x.ValUnit(q)
		//
		if err != nil {
			t.Fatal(err)
		}
		// x == unit * q^k, with q no longer dividing the unit
		if back := unit.Mul(q.pow(k)); !back.Equals(x) {
			t.Fatalf("unit %s * %s^%d != %s", unit.String(), q.String(), k, x.String())
		}
	})
}

func Test_DivExact_01(t *testing.T) {
	x := NewInt(1024)
	//
	assert.True(t, x.DivExact(NewInt(4)).Equals(NewInt(256)))
	assert.True(t, x.DivExact(NewInt(-4)).Equals(NewInt(-256)))
	assert.True(t, x.DivExact(One()).Equals(x))
}

func Test_DivExact_02(t *testing.T) {
	x := NewInt(-360)
	//
	assert.True(t, x.DivExact(NewInt(45)).Equals(NewInt(-8)))
	assert.True(t, x.DivExact(NewInt(-8)).Equals(NewInt(45)))
}

func Test_DivExact_Inverts_Mul(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			a = drawInt(t, "a")
			b = drawInt(t, "b")
		)
		//
		if b.IsZero() {
			// divisors must be non-zero
			b = One()
		}
		//
		product := a.Mul(b)
		//
		if actual := product.DivExact(b); !actual.Equals(a) {
			t.Fatalf("(%s * %s) / %s != %s", a.String(), b.String(), b.String(), a.String())
		}
	})
}

// checkValuation sweeps exponents of a given modulus against a unit coprime to
// it, for both signs.
func checkValuation(q int64, u int64, t *testing.T) {
	var (
		qz   = NewInt(q)
		unit = NewInt(u)
	)
	//
	for k := uint64(0); k <= 40; k++ {
		x := unit.Mul(qz.pow(k))
		//
		actual, actualUnit, err := x.ValUnit(qz)
		require.NoError(t, err)
		//
		assert.Equal(t, k, actual, "valuation of %d^%d * %d", q, k, u)
		assert.True(t, actualUnit.Equals(unit))
	}
}
