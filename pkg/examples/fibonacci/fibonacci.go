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

// Package fibonacci defines a two-column circuit tracing the Fibonacci
// sequence.  Each row holds a pair (left, right) of consecutive Fibonacci
// numbers; the public inputs pin the two seeds and the claimed final value.
package fibonacci

import (
	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Column layout.
const (
	// Left holds the older of the two sequence values.
	Left uint = 0
	// Right holds the newer of the two sequence values.
	Right uint = 1
)

// Public input layout.
const (
	// SeedA is the initial left value.
	SeedA uint = 0
	// SeedB is the initial right value.
	SeedB uint = 1
	// Claim is the claimed right value on the last row.
	Claim uint = 2
)

// NewSchema constructs the Fibonacci circuit for a given trace height.
func NewSchema[F field.Element[F]](height uint) (*air.Schema[F], error) {
	b := air.NewBuilder[F](2, height, 3)
	//
	first := b.WhenFirstRow()
	first.AssertEq("first_left", b.Local(Left), b.Public(SeedA))
	first.AssertEq("first_right", b.Local(Right), b.Public(SeedB))
	//
	transition := b.WhenTransition()
	// left' <- right
	transition.AssertEq("shift_left", b.Next(Left), b.Local(Right))
	// right' <- left + right
	transition.AssertEq("step_right", b.Next(Right), air.Sum[F](b.Local(Left), b.Local(Right)))
	//
	b.WhenLastRow().AssertEq("claim", b.Local(Right), b.Public(Claim))
	//
	return b.Finalise(step[F])
}

// FirstRow returns the initial trace row for given seeds.
func FirstRow[F field.Element[F]](a, b F) []F {
	return []F{a, b}
}

// PublicInputs computes the public inputs (both seeds and the final value)
// for a trace of the given height starting from the given seeds.
func PublicInputs[F field.Element[F]](a, b F, height uint) []F {
	row := FirstRow(a, b)
	//
	for i := uint(1); i < height; i++ {
		row, _ = step(row)
	}
	//
	return []F{a, b, row[Right]}
}

func step[F field.Element[F]](row []F) ([]F, error) {
	return []F{row[Right], row[Left].Add(row[Right])}, nil
}
