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
package babybear

import (
	"math/big"

	bb "github.com/consensys/gnark-crypto/field/babybear"
)

// Element wraps babybear.Element to conform to the field.Element interface.
// BabyBear is the 31bit prime field 2^31 - 2^27 + 1 used throughout the
// original icicle trace examples.
type Element struct {
	inner bb.Element
}

// New constructs an element from a given uint64.
func New(val uint64) Element {
	var e bb.Element
	//
	e.SetUint64(val)
	//
	return Element{e}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res bb.Element
	res.Add(&x.inner, &y.inner)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res bb.Element
	res.Sub(&x.inner, &y.inner)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res bb.Element
	res.Mul(&x.inner, &y.inner)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res bb.Element
	res.Neg(&x.inner)
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res bb.Element
	res.Inverse(&x.inner)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.inner.Cmp(&y.inner)
}

// Equal determines whether x = y.
func (x Element) Equal(y Element) bool {
	return x.inner.Equal(&y.inner)
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne checks whether this value is one (or not).
func (x Element) IsOne() bool {
	return x.inner.IsOne()
}

// Modulus returns the BabyBear prime.
func (x Element) Modulus() *big.Int {
	return bb.Modulus()
}

// SetUint64 constructs the element representing the given value.
func (x Element) SetUint64(val uint64) Element {
	return New(val)
}

// SetBytes constructs the element from bytes in big endian order.
func (x Element) SetBytes(bytes []byte) Element {
	var res bb.Element
	res.SetBytes(bytes)
	//
	return Element{res}
}

// Bytes returns the canonical encoding of x in big endian order.
func (x Element) Bytes() []byte {
	bytes := x.inner.Bytes()
	//
	return bytes[:]
}

// SetRandom samples a uniform element from a cryptographic source.
func (x Element) SetRandom() (Element, error) {
	var res bb.Element
	//
	if _, err := res.SetRandom(); err != nil {
		return Element{}, err
	}
	//
	return Element{res}, nil
}

// Uint32 returns the canonical (non-Montgomery) value of x.
func (x Element) Uint32() uint32 {
	return uint32(x.inner.Uint64())
}

// String returns the decimal representation of x.
func (x Element) String() string {
	return x.inner.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.inner.Text(base)
}
