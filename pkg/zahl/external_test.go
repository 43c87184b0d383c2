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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Bytes_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := drawInt(t, "x")
		//
		back := FromBytes(x.Sign() < 0, x.Bytes())
		//
		if !back.Equals(x) {
			t.Fatalf("%s lost in byte round trip", x.String())
		}
	})
}

func Test_Bytes_Canonical(t *testing.T) {
	// zero renders as the empty magnitude
	assert.Empty(t, Zero().Bytes())
	// leading zeros are canonicalised away on the way in
	x := FromBytes(false, []byte{0, 0, 1, 0})
	assert.True(t, x.Equals(NewInt(256)))
	// negative zero collapses
	assert.True(t, FromBytes(true, nil).IsZero())
}

func Test_Element_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 255, 1 << 40} {
		x := NewInt(v)
		//
		elem, err := x.Element()
		require.NoError(t, err)
		//
		back := FromElement(elem)
		assert.True(t, back.Equals(x), "%d lost crossing the field boundary", v)
	}
}

func Test_Element_Range(t *testing.T) {
	var (
		rangeErr *RangeError
		neg      = NewInt(-1)
		modulus  = Int{*fr.Modulus()}
	)
	// negatives never embed exactly
	_, err := neg.Element()
	require.ErrorAs(t, err, &rangeErr)
	// the modulus itself is already out of canonical range
	_, err = modulus.Element()
	require.ErrorAs(t, err, &rangeErr)
	// its predecessor is the largest embeddable value
	largest := modulus.Sub(One())
	//
	elem, err := largest.Element()
	require.NoError(t, err)
	assert.True(t, FromElement(elem).Equals(largest))
}

func Test_ReduceElement_RingHom(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			a = drawInt(t, "a")
			b = drawInt(t, "b")
		)
		// additive
		var sum fr.Element
		//
		ae, be := a.ReduceElement(), b.ReduceElement()
		sum.Add(&ae, &be)
		//
		if reduced := a.Add(b).ReduceElement(); !sum.Equal(&reduced) {
			t.Fatalf("reduction does not commute with addition for %s, %s", a.String(), b.String())
		}
		// multiplicative
		var product fr.Element
		//
		product.Mul(&ae, &be)
		//
		if reduced := a.Mul(b).ReduceElement(); !product.Equal(&reduced) {
			t.Fatalf("reduction does not commute with multiplication for %s, %s", a.String(), b.String())
		}
	})
}

func Test_AsBigInt_Fresh(t *testing.T) {
	var (
		x   = NewInt(360)
		val = x.AsBigInt()
	)
	//
	val.Add(&val, big.NewInt(1))
	// mutating the copy leaves the source untouched
	assert.True(t, x.Equals(NewInt(360)))
	assert.Equal(t, "361", val.String())
}
