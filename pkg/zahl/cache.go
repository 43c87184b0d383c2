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

// Bounds of the small-integer cache, chosen to cover the values arithmetic
// actually churns through: small negatives, digits, byte values and the first
// few powers of two.
const (
	smallMin int64 = -128
	smallMax int64 = 1023
)

// Index of pre-built instances, populated once at initialisation and read-only
// thereafter; concurrent lookups need no synchronisation.
var smallIndex []Int

// Small returns an Int holding the given value, sharing a pre-built instance
// when the value falls within the cached range and building a fresh one
// otherwise.  Shared instances are indistinguishable from fresh ones: they are
// canonical, and no operation ever writes through an operand's storage, so the
// cache is purely an allocation optimisation.
func Small(v int64) Int {
	if v >= smallMin && v <= smallMax {
		return smallIndex[v-smallMin]
	}
	//
	return NewInt(v)
}

func initIndex() []Int {
	var index = make([]Int, smallMax-smallMin+1)
	//
	for i := range index {
		index[i] = NewInt(smallMin + int64(i))
	}
	//
	return index
}

func init() {
	smallIndex = initIndex()
}
