// Copyright Ingonyama.
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
package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero signals an attempt to invert the additive identity.
var ErrDivisionByZero = errors.New("division by zero")

// An Element of a prime-order field.  All operations are pure: they return new
// values and never mutate their receiver.  Implementations wrap an external
// arithmetic provider (e.g. gnark-crypto) and perform no modular reduction
// logic of their own.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Equal determines whether x = y.
	Equal(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute -x
	Neg() Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// SetUint64 constructs the element representing the given value.
	SetUint64(val uint64) Operand
	// SetBytes constructs the element from bytes in big endian order.
	SetBytes(bytes []byte) Operand
	// Bytes returns the canonical encoding of x in big endian order.
	Bytes() []byte
	// SetRandom samples a uniform element from a cryptographic source.
	SetRandom() (Operand, error)
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var element F
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// FromBigEndianBytes constructs a field element from an array of bytes given
// in big endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}

// Random samples a uniform field element from a cryptographic source.
func Random[F Element[F]]() F {
	var element F
	//
	element, err := element.SetRandom()
	if err != nil {
		panic(err)
	}
	//
	return element
}

// SafeInverse computes x⁻¹, failing with ErrDivisionByZero when x is the
// additive identity.  This is the inversion entry point used during trace
// generation, where a zero inverse must abort rather than silently produce
// zero.
func SafeInverse[F Element[F]](x F) (F, error) {
	if x.IsZero() {
		var zero F
		return zero, ErrDivisionByZero
	}
	//
	return x.Inverse(), nil
}
