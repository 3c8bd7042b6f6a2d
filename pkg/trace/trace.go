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
package trace

import (
	"fmt"
	"math/big"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Column is a single column of trace data, stored contiguously so whole
// columns can be handed to batched backend operations without copying.
type Column[F field.Element[F]] struct {
	// Holds the name of this column
	name string
	// Holds the raw data making up this column
	data []F
}

// NewColumn constructs a column with the given name and data.
func NewColumn[F field.Element[F]](name string, data []F) Column[F] {
	return Column[F]{name, data}
}

// Name returns the name of the given column.
func (p *Column[F]) Name() string { return p.name }

// Height determines the height of this column.
func (p *Column[F]) Height() uint { return uint(len(p.data)) }

// Get the value at a given row in this column.
func (p *Column[F]) Get(row uint) F { return p.data[row] }

// Data returns the raw data for the given column.
func (p *Column[F]) Data() []F { return p.data }

// ArrayTrace is a column-major trace matrix: a fixed set of equal-height
// columns of field elements.  Row indices run from zero (first) to height-1
// (last), and the height is always a power of two.
type ArrayTrace[F field.Element[F]] struct {
	// Holds the height of every column in the trace
	height uint
	// Holds the columns of this trace
	columns []Column[F]
}

// NewArrayTrace constructs a zero-filled trace with the given dimensions.
func NewArrayTrace[F field.Element[F]](width, height uint) *ArrayTrace[F] {
	columns := make([]Column[F], width)
	//
	for i := range columns {
		columns[i] = Column[F]{fmt.Sprintf("x%d", i), make([]F, height)}
	}
	//
	return &ArrayTrace[F]{height, columns}
}

// Width returns the number of columns in this trace.
func (p *ArrayTrace[F]) Width() uint {
	return uint(len(p.columns))
}

// Height returns the number of rows in this trace.
func (p *ArrayTrace[F]) Height() uint {
	return p.height
}

// Column returns the ith column of this trace.
func (p *ArrayTrace[F]) Column(index uint) *Column[F] {
	return &p.columns[index]
}

// Get returns the value held in a given column on a given row.
func (p *ArrayTrace[F]) Get(column uint, row uint) F {
	return p.columns[column].data[row]
}

// Set updates the value held in a given column on a given row.
func (p *ArrayTrace[F]) Set(column uint, row uint, value F) {
	p.columns[column].data[row] = value
}

// Row returns a copy of the given row of this trace.
func (p *ArrayTrace[F]) Row(row uint) []F {
	values := make([]F, len(p.columns))
	//
	for i := range p.columns {
		values[i] = p.columns[i].data[row]
	}
	//
	return values
}

// SetRow updates every column of a given row at once.
func (p *ArrayTrace[F]) SetRow(row uint, values []F) {
	for i := range p.columns {
		p.columns[i].data[row] = values[i]
	}
}

// Modulus returns the modulus of the field this trace is defined over.
func (p *ArrayTrace[F]) Modulus() *big.Int {
	var zero F
	//
	return zero.Modulus()
}

// Clone creates an identical clone of this trace.
func (p *ArrayTrace[F]) Clone() *ArrayTrace[F] {
	clone := &ArrayTrace[F]{p.height, make([]Column[F], len(p.columns))}
	//
	for i, c := range p.columns {
		data := make([]F, len(c.data))
		copy(data, c.data)
		clone.columns[i] = Column[F]{c.name, data}
	}
	//
	return clone
}
