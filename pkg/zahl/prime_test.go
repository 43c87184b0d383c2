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
)

func Test_Prime_Small(t *testing.T) {
	// exhaustive against a naive sieve
	for v := int64(-10); v < 10000; v++ {
		var (
			x            = NewInt(v)
			verdict, err = x.IsPrime(false)
		)
		//
		require.NoError(t, err)
		//
		if naivePrime(v) {
			assert.Equal(t, Prime, verdict, "%d", v)
		} else {
			assert.Equal(t, Composite, verdict, "%d", v)
		}
	}
}

func Test_Prime_TableBoundary(t *testing.T) {
	// 3571 is the last table entry; 3581 the first prime beyond it
	checkVerdict(t, "3571", Prime)
	checkVerdict(t, "3572", Composite)
	checkVerdict(t, "3581", Prime)
	// the squared table limit 3571² and the primes either side of it
	checkVerdict(t, "12752041", Composite)
	checkVerdict(t, "12752029", Prime)
	checkVerdict(t, "12752053", Prime)
}

func Test_Prime_NoSmallFactor(t *testing.T) {
	// 3581 * 3583: composite with no factor in the table
	checkVerdict(t, "12830723", Composite)
}

func Test_Prime_Carmichael(t *testing.T) {
	for _, s := range []string{"561", "41041", "512461", "825265", "1024651"} {
		checkVerdict(t, s, Composite)
	}
}

func Test_Prime_Deterministic(t *testing.T) {
	// 2^61 - 1 is prime and within the deterministic Miller-Rabin range
	checkVerdict(t, "2305843009213693951", Prime)
	// 2^67 - 1 = 193707721 * 761838257287 is not
	checkVerdict(t, "147573952589676412927", Composite)
	// 10^18 + 9 is prime
	checkVerdict(t, "1000000000000000009", Prime)
}

func Test_Prime_BailliePSW(t *testing.T) {
	// 2^89 - 1 is a Mersenne prime beyond the deterministic range
	checkVerdict(t, "618970019642690137449562111", ProbablePrime)
	// the product of two Mersenne primes is not
	m61 := NewInt(2).pow(61).Sub(One())
	m31 := NewInt(2).pow(31).Sub(One())
	product := m61.Mul(m31)
	//
	verdict, err := product.IsPrime(false)
	require.NoError(t, err)
	assert.Equal(t, Composite, verdict)
}

func Test_Prime_Proof(t *testing.T) {
	// escalation certifies 2^89 - 1 outright
	x, err := Parse("618970019642690137449562111", 10)
	require.NoError(t, err)
	//
	verdict, err := x.IsPrime(true)
	require.NoError(t, err)
	assert.Equal(t, Prime, verdict)
}

func Test_Prime_ProofBudget(t *testing.T) {
	// an empty factoring budget must surface as a TestFailure, never as a
	// Composite verdict
	saved := proverBudget
	proverBudget = 0
	//
	defer func() { proverBudget = saved }()
	//
	var testFailure *TestFailure
	// 2^107 - 1 is prime, but its certificate needs factoring work
	x, err := Parse("162259276829213363391578010288127", 10)
	require.NoError(t, err)
	//
	verdict, err := x.IsPrime(true)
	require.True(t, errors.As(err, &testFailure))
	assert.Equal(t, ProbablePrime, verdict)
}

func Test_Prime_Pseudoprime(t *testing.T) {
	var (
		m89  = NewInt(2).pow(89).Sub(One())
		even = m89.Add(One())
	)
	//
	assert.True(t, m89.IsPseudoprime())
	assert.False(t, even.IsPseudoprime())
	assert.True(t, NewInt(2).IsPseudoprime())
	assert.False(t, NewInt(1).IsPseudoprime())
	assert.False(t, NewInt(-7).IsPseudoprime())
}

func Test_Prime_Verdict_String(t *testing.T) {
	assert.Equal(t, "composite", Composite.String())
	assert.Equal(t, "probable prime", ProbablePrime.String())
	assert.Equal(t, "prime", Prime.String())
}

func checkVerdict(t *testing.T, s string, expected Verdict) {
	x, err := Parse(s, 10)
	require.NoError(t, err)
	//
	verdict, err := x.IsPrime(false)
	require.NoError(t, err)
	assert.Equal(t, expected, verdict, "%s", s)
}

func naivePrime(v int64) bool {
	if v < 2 {
		return false
	}
	//
	for d := int64(2); d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}
	//
	return true
}
