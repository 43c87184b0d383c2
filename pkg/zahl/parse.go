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

// Parse constructs an Int from its textual rendition in a given base.  Bases
// 2..36 are supported, using digits 0-9 followed by (case-insensitive) letters
// a-z.  An optional leading '+' or '-' sign is accepted; embedded whitespace,
// digit separators and empty inputs are not.  A malformed input or an
// unsupported base yields a ParseError, and a failed parse never returns a
// partial value.
func Parse(s string, base uint) (Int, error) {
	var p Int
	//
	if base < 2 || base > 36 {
		return p, parseErrorf(s, base, -1, "unsupported base")
	}
	// Step past any sign
	digits, offset := s, 0
	//
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
		offset = 1
	}
	//
	if len(digits) == 0 {
		return p, parseErrorf(s, base, -1, "missing digits")
	}
	// Validate every digit before touching the output
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i]) >= base {
			return p, parseErrorf(s, base, offset+i, "invalid digit %q", digits[i])
		}
	}
	// Cannot fail after validation
	if _, ok := p.val.SetString(s, int(base)); !ok {
		panic("unreachable")
	}
	//
	return p, nil
}

// Determine the value of a digit character, where anything which is not a
// digit maps above every supported base.
func digitValue(c byte) uint {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0')
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 10
	default:
		return 36
	}
}
