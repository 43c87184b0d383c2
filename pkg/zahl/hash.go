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

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Equals checks whether two integers represent the same mathematical value.
// Because every reachable Int is canonical, this is a plain comparison of sign
// and magnitude.
func (p Int) Equals(other Int) bool {
	return p.val.Cmp(&other.val) == 0
}

// Hash generates a 64-bit hashcode from the sign and magnitude, such that
// equal values always hash identically.  Collisions between distinct values
// are acceptable in the distribution sense only; equality itself never
// consults the hash.  The FNV1a fold runs directly over the limb sequence, so
// a small magnitude costs a couple of multiplies rather than a byte walk.
func (p Int) Hash() uint64 {
	// FNV1a hash implementation
	hash := offset64
	// Fold in the sign first, so that x and -x diverge.
	hash ^= uint64(p.val.Sign() & 3)
	hash *= prime64
	//
	for _, limb := range p.val.Bits() {
		hash ^= uint64(limb)
		hash *= prime64
	}
	//
	return hash
}
