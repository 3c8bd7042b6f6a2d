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
package air

import (
	"fmt"
	"math/bits"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// TransitionFunc computes the next trace row from the current one during
// trace generation.  The returned slice must have the same width as its
// argument.  An error aborts generation.
type TransitionFunc[F field.Element[F]] func(row []F) ([]F, error)

// Constraint pairs a vanishing expression with the handle used to report its
// violations.  The expression must evaluate to zero on every applicable row
// of a valid trace.
type Constraint[F field.Element[F]] struct {
	// Handle provides a unique name for reporting purposes.
	Handle string
	// Expr is the expression which must vanish.
	Expr Expr[F]
}

// Schema describes an AIR circuit: its trace dimensions, its public inputs,
// the transition function used to generate traces, and the constraints a
// valid trace must satisfy.  Schemas are immutable after construction, and
// construction fails (with a MalformedCircuitError) rather than yield a
// structurally invalid schema.
type Schema[F field.Element[F]] struct {
	width       uint
	height      uint
	npublics    uint
	transition  TransitionFunc[F]
	constraints []Constraint[F]
}

// NewSchema validates and constructs a circuit schema.  The height must be a
// power of two, the width non-zero, and every constraint must stay within the
// declared columns, public inputs and the two-row evaluation window.
func NewSchema[F field.Element[F]](width, height, npublics uint, transition TransitionFunc[F],
	constraints ...Constraint[F]) (*Schema[F], error) {
	//
	if width == 0 {
		return nil, &MalformedCircuitError{Reason: "trace width must be non-zero"}
	} else if bits.OnesCount(height) != 1 {
		return nil, &MalformedCircuitError{Reason: fmt.Sprintf("trace height %d not a power of two", height)}
	} else if transition == nil {
		return nil, &MalformedCircuitError{Reason: "missing transition function"}
	}
	//
	seen := make(map[string]bool, len(constraints))
	//
	for _, c := range constraints {
		if c.Handle == "" {
			return nil, &MalformedCircuitError{Reason: "constraint with empty handle"}
		} else if seen[c.Handle] {
			return nil, &MalformedCircuitError{Handle: c.Handle, Reason: "duplicate handle"}
		} else if err := validateExpr[F](c.Handle, c.Expr, width, npublics); err != nil {
			return nil, err
		}
		//
		seen[c.Handle] = true
	}
	//
	return &Schema[F]{width, height, npublics, transition, constraints}, nil
}

// Width returns the number of trace columns.
func (p *Schema[F]) Width() uint { return p.width }

// Height returns the number of trace rows.
func (p *Schema[F]) Height() uint { return p.height }

// PublicInputs returns the number of public inputs this circuit expects.
func (p *Schema[F]) PublicInputs() uint { return p.npublics }

// Transition returns the transition function used during trace generation.
func (p *Schema[F]) Transition() TransitionFunc[F] { return p.transition }

// Constraints returns the circuit's constraints in declaration order.
func (p *Schema[F]) Constraints() []Constraint[F] {
	// defensive copy keeps the schema immutable
	out := make([]Constraint[F], len(p.constraints))
	copy(out, p.constraints)
	//
	return out
}

// MaxConstraintDegree returns the largest degree multiple over all
// constraints of this circuit, or zero if there are none.
func (p *Schema[F]) MaxConstraintDegree() uint {
	degree := uint(0)
	//
	for _, c := range p.constraints {
		degree = max(degree, c.Expr.Degree())
	}
	//
	return degree
}

// LogQuotientDegree determines the log2 (rounded up) of the quotient
// polynomial degree for this circuit.  The constraint degree is clamped below
// at two, since the quotient always has positive degree.
func (p *Schema[F]) LogQuotientDegree() uint {
	degree := max(p.MaxConstraintDegree(), 2)
	//
	return log2Ceil(degree - 1)
}

func log2Ceil(n uint) uint {
	if n <= 1 {
		return 0
	}
	//
	return uint(bits.Len(n - 1))
}

// validateExpr checks every reference within a constraint expression against
// the circuit dimensions.
func validateExpr[F field.Element[F]](handle string, expr Expr[F], width, npublics uint) error {
	switch e := expr.(type) {
	case ColumnAccess[F]:
		if e.Column >= width {
			return &MalformedCircuitError{handle,
				fmt.Sprintf("column %d out of range (width %d)", e.Column, width)}
		} else if e.Shift < 0 || e.Shift > 1 {
			return &MalformedCircuitError{handle,
				fmt.Sprintf("row shift %d outside evaluation window", e.Shift)}
		}
	case Public[F]:
		if e.Index >= npublics {
			return &MalformedCircuitError{handle,
				fmt.Sprintf("public input %d out of range (%d declared)", e.Index, npublics)}
		}
	case Add[F]:
		return validateAll(handle, e.Args, width, npublics)
	case Sub[F]:
		return validateAll(handle, e.Args, width, npublics)
	case Mul[F]:
		return validateAll(handle, e.Args, width, npublics)
	case Neg[F]:
		return validateExpr[F](handle, e.Arg, width, npublics)
	case Exp[F]:
		return validateExpr[F](handle, e.Arg, width, npublics)
	}
	//
	return nil
}

func validateAll[F field.Element[F]](handle string, args []Expr[F], width, npublics uint) error {
	for _, arg := range args {
		if err := validateExpr[F](handle, arg, width, npublics); err != nil {
			return err
		}
	}
	//
	return nil
}
