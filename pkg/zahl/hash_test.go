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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Hash_EqualsImpliesEqualHash(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := drawInt(t, "x")
		// rebuild the same value through an independent route
		y, err := Parse(x.Text(16), 16)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		if !x.Equals(y) {
			t.Fatalf("%s lost in round trip", x.String())
		}
		//
		if x.Hash() != y.Hash() {
			t.Fatalf("equal values %s hash apart", x.String())
		}
	})
}

func Test_Hash_SignSeparates(t *testing.T) {
	for _, v := range []int64{1, 7, 255, 1 << 40} {
		var (
			pos = NewInt(v)
			neg = NewInt(-v)
		)
		//
		assert.NotEqual(t, pos.Hash(), neg.Hash(), "%d and %d should hash apart", v, -v)
	}
}

func Test_Hash_SmallSpread(t *testing.T) {
	// no collisions across a small contiguous range
	seen := make(map[uint64]int64)
	//
	for v := int64(-1000); v <= 1000; v++ {
		h := NewInt(v).Hash()
		//
		if prev, ok := seen[h]; ok {
			t.Fatalf("%d and %d collide", prev, v)
		}
		//
		seen[h] = v
	}
}

func Test_Equals_01(t *testing.T) {
	assert.True(t, Zero().Equals(NewInt(0)))
	assert.True(t, NewInt(255).Equals(NewUint(255)))
	assert.False(t, NewInt(255).Equals(NewInt(-255)))
}

func Test_Cache_Transparent(t *testing.T) {
	for v := int64(-200); v <= 1100; v++ {
		var (
			cached = Small(v)
			fresh  = NewInt(v)
		)
		//
		if !cached.Equals(fresh) {
			t.Fatalf("cached %d differs from fresh", v)
		}
		//
		if cached.Hash() != fresh.Hash() {
			t.Fatalf("cached %d hashes apart from fresh", v)
		}
	}
}

func Test_Cache_SharedInstancesSafe(t *testing.T) {
	// operating on a cached instance must never disturb the cache
	var (
		a = Small(10)
		b = Small(10)
	)
	//
	sum := a.Add(NewInt(5))
	assert.True(t, sum.Equals(NewInt(15)))
	assert.True(t, b.Equals(NewInt(10)))
	assert.True(t, Small(10).Equals(NewInt(10)))
}

func Test_Set_Rebinds(t *testing.T) {
	var (
		pooled = NewInt(42)
		source = NewInt(360)
	)
	//
	pooled.Set(source)
	assert.True(t, pooled.Equals(NewInt(360)))
	// no aliasing: advancing the pooled copy leaves the source alone
	pooled.SetInt64(-1)
	assert.True(t, pooled.Equals(NewInt(-1)))
	assert.True(t, source.Equals(NewInt(360)))
}

func Test_Conversions(t *testing.T) {
	var (
		x        = NewInt(-42)
		huge, _  = NewInt(2).Pow(NewInt(100))
		rangeErr *RangeError
	)
	//
	v, err := x.Int64()
	assert.NoError(t, err)
	assert.Equal(t, int64(-42), v)
	// negatives do not fit unsigned
	_, err = x.Uint64()
	assert.ErrorAs(t, err, &rangeErr)
	// 2^100 fits nothing fixed-width
	_, err = huge.Int64()
	assert.ErrorAs(t, err, &rangeErr)
	//
	_, err = huge.Uint64()
	assert.ErrorAs(t, err, &rangeErr)
}

func Test_Float64(t *testing.T) {
	// exact within the 53-bit mantissa
	assert.Equal(t, float64(0), Zero().Float64())
	assert.Equal(t, float64(-42), NewInt(-42).Float64())
	assert.Equal(t, float64(1<<52), NewInt(1<<52).Float64())
	// 2^100 rounds to the exact power, which float64 represents
	huge, err := NewInt(2).Pow(NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, math.Ldexp(1, 100), huge.Float64())
	// beyond the float range only the signed infinity remains
	vast, err := NewInt(2).Pow(NewInt(1100))
	require.NoError(t, err)
	assert.True(t, math.IsInf(vast.Float64(), 1))
	assert.True(t, math.IsInf(vast.Neg().Float64(), -1))
}
