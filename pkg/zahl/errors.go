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

import "fmt"

// ParseError is a structured error describing why a textual integer was
// rejected.  It retains the offending input, the radix it was parsed under and
// the index of the first offending character (or -1 when the input as a whole
// is at fault, e.g. an empty string or an unsupported base).
type ParseError struct {
	// Input being parsed when the error arose.
	input string
	// Radix the input was parsed under.
	base uint
	// Index of first offending character, or -1.
	index int
	// Error message being reported.
	msg string
}

// Input returns the original text which failed to parse.
func (p *ParseError) Input() string {
	return p.input
}

// Base returns the radix the input was parsed under.
func (p *ParseError) Base() uint {
	return p.base
}

// Index returns the position of the first offending character, or -1 when the
// input as a whole was rejected.
func (p *ParseError) Index() int {
	return p.index
}

// Message returns the message to be reported.
func (p *ParseError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	if p.index < 0 {
		return fmt.Sprintf("%q (base %d): %s", p.input, p.base, p.msg)
	}
	//
	return fmt.Sprintf("%q (base %d): %d: %s", p.input, p.base, p.index, p.msg)
}

// DomainError signals an operation which is mathematically undefined for the
// given operands, such as a logarithm of a non-positive value or a negative
// exponent on a base other than ±1.
type DomainError struct {
	// Operation being attempted.
	op string
	// Error message being reported.
	msg string
}

// Op returns the name of the operation which was attempted.
func (p *DomainError) Op() string {
	return p.op
}

// Message returns the message to be reported.
func (p *DomainError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", p.op, p.msg)
}

// RangeError signals a value which is mathematically well-defined but does not
// fit the requested fixed-width type (e.g. a conversion to int64), or whose
// materialisation is impossible (e.g. a left shift by an amount beyond any
// addressable magnitude).
type RangeError struct {
	// Operation being attempted.
	op string
	// Error message being reported.
	msg string
}

// Op returns the name of the operation which was attempted.
func (p *RangeError) Op() string {
	return p.op
}

// Message returns the message to be reported.
func (p *RangeError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *RangeError) Error() string {
	return fmt.Sprintf("%s: %s", p.op, p.msg)
}

// TestFailure signals that the primality machinery could not complete within
// its budget.  It is deliberately distinct from a Composite verdict: a caller
// receiving this error has learned nothing definite about the operand.
type TestFailure struct {
	// Operation being attempted.
	op string
	// Error message being reported.
	msg string
}

// Op returns the name of the operation which was attempted.
func (p *TestFailure) Op() string {
	return p.op
}

// Message returns the message to be reported.
func (p *TestFailure) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *TestFailure) Error() string {
	return fmt.Sprintf("%s: %s", p.op, p.msg)
}

func parseErrorf(input string, base uint, index int, format string, args ...any) *ParseError {
	return &ParseError{input, base, index, fmt.Sprintf(format, args...)}
}

func domainErrorf(op string, format string, args ...any) *DomainError {
	return &DomainError{op, fmt.Sprintf(format, args...)}
}

func rangeErrorf(op string, format string, args ...any) *RangeError {
	return &RangeError{op, fmt.Sprintf(format, args...)}
}

func testFailuref(op string, format string, args ...any) *TestFailure {
	return &TestFailure{op, fmt.Sprintf(format, args...)}
}
