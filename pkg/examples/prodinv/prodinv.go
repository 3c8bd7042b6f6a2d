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

// Package prodinv defines a three-column circuit over a counting sequence:
// each row carries a value, the running product of all values so far, and the
// value's multiplicative inverse.  Trace generation fails outright when a
// value has no inverse, which makes this circuit a useful exercise of the
// error path.
package prodinv

import (
	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Column layout.
const (
	// Value holds the counting sequence, starting from a public seed.
	Value uint = 0
	// Product holds the running product of all values so far.
	Product uint = 1
	// Inverse holds the multiplicative inverse of the value.
	Inverse uint = 2
)

// Start is the index of the single public input: the first value.
const Start uint = 0

// NewSchema constructs the running-product circuit for a given trace height.
func NewSchema[F field.Element[F]](height uint) (*air.Schema[F], error) {
	b := air.NewBuilder[F](3, height, 1)
	//
	first := b.WhenFirstRow()
	first.AssertEq("first_value", b.Local(Value), b.Public(Start))
	first.AssertEq("first_product", b.Local(Product), b.Local(Value))
	//
	transition := b.WhenTransition()
	// value' <- value + 1
	transition.AssertEq("count", b.Next(Value), air.Sum[F](b.Local(Value), b.Const(1)))
	// product' <- product * value'
	transition.AssertEq("accumulate", b.Next(Product), air.Product[F](b.Local(Product), b.Next(Value)))
	// value * inverse == 1, on every row
	b.AssertOne("inverse", air.Product[F](b.Local(Value), b.Local(Inverse)))
	//
	return b.Finalise(step[F])
}

// FirstRow returns the initial trace row for a given starting value, or an
// error if the value has no inverse.
func FirstRow[F field.Element[F]](start F) ([]F, error) {
	inv, err := field.SafeInverse(start)
	//
	if err != nil {
		return nil, err
	}
	//
	return []F{start, start, inv}, nil
}

func step[F field.Element[F]](row []F) ([]F, error) {
	value := row[Value].Add(field.One[F]())
	//
	inv, err := field.SafeInverse(value)
	if err != nil {
		return nil, err
	}
	//
	return []F{value, row[Product].Mul(value), inv}, nil
}
