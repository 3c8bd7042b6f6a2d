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

	log "github.com/sirupsen/logrus"

	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/util"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Violation identifies a single trace cell region where a constraint failed
// to vanish.
type Violation struct {
	// Handle of the violated constraint.
	Handle string
	// Row on which it failed to vanish.
	Row uint
}

func (p Violation) String() string {
	return fmt.Sprintf("constraint %q violated on row %d", p.Handle, p.Row)
}

// CheckConstraints evaluates every constraint of a circuit over every row of
// a trace, reporting all violations found.  Constraints are evaluated
// column-at-a-time through the given backend context, so whole-trace checks
// benefit from batched (and, where available, device-accelerated) field
// operations.  A trace which does not fit the circuit is rejected with a
// TypeMismatchError before any evaluation happens.
func CheckConstraints[F field.Element[F]](schema *air.Schema[F], tr *ArrayTrace[F], publics []F,
	ctx *backend.Context[F]) ([]Violation, error) {
	//
	stats := util.NewPerfStats()
	defer stats.Log("constraint checking")
	//
	if err := conforms(schema, tr, publics); err != nil {
		return nil, err
	}
	//
	var violations []Violation
	//
	for _, c := range schema.Constraints() {
		values, err := evalColumns(c.Expr, tr, publics, ctx)
		//
		if err != nil {
			return nil, err
		}
		//
		for row, value := range values {
			if !value.IsZero() {
				violations = append(violations, Violation{c.Handle, uint(row)})
			}
		}
	}
	//
	log.WithFields(log.Fields{
		"constraints": len(schema.Constraints()),
		"rows":        tr.Height(),
		"violations":  len(violations),
	}).Debug("constraints checked")
	//
	return violations, nil
}

// conforms checks that a trace (and its public inputs) actually fit the
// circuit being checked.
func conforms[F field.Element[F]](schema *air.Schema[F], tr *ArrayTrace[F], publics []F) error {
	if tr.Width() != schema.Width() || tr.Height() != schema.Height() {
		return &TypeMismatchError{
			fmt.Sprintf("%dx%d trace", schema.Width(), schema.Height()),
			fmt.Sprintf("%dx%d trace", tr.Width(), tr.Height()),
		}
	} else if uint(len(publics)) != schema.PublicInputs() {
		return &TypeMismatchError{
			fmt.Sprintf("%d public inputs", schema.PublicInputs()),
			fmt.Sprintf("%d public inputs", len(publics)),
		}
	}
	//
	return nil
}

// evalColumns evaluates an expression over every row of a trace at once,
// returning one value per row.  Column accesses become (rotated) column
// vectors, constants and public inputs become broadcast vectors, and
// operators apply element-wise through the backend context.
func evalColumns[F field.Element[F]](expr air.Expr[F], tr *ArrayTrace[F], publics []F,
	ctx *backend.Context[F]) ([]F, error) {
	//
	height := tr.Height()
	//
	switch e := expr.(type) {
	case air.ColumnAccess[F]:
		return rotate(tr.Column(e.Column).Data(), e.Shift), nil
	case air.Constant[F]:
		return broadcast(e.Value, height), nil
	case air.Public[F]:
		return broadcast(publics[e.Index], height), nil
	case air.FirstRow[F]:
		vec := broadcast(field.Zero[F](), height)
		vec[0] = field.One[F]()
		//
		return vec, nil
	case air.LastRow[F]:
		vec := broadcast(field.Zero[F](), height)
		vec[height-1] = field.One[F]()
		//
		return vec, nil
	case air.Transition[F]:
		vec := broadcast(field.One[F](), height)
		vec[height-1] = field.Zero[F]()
		//
		return vec, nil
	case air.Add[F]:
		return evalNary(e.Args, tr, publics, ctx, ctx.Add)
	case air.Sub[F]:
		return evalNary(e.Args, tr, publics, ctx, ctx.Sub)
	case air.Mul[F]:
		return evalNary(e.Args, tr, publics, ctx, ctx.Mul)
	case air.Neg[F]:
		arg, err := evalColumns(e.Arg, tr, publics, ctx)
		//
		if err != nil {
			return nil, err
		}
		//
		return ctx.Neg(arg), nil
	case air.Exp[F]:
		arg, err := evalColumns(e.Arg, tr, publics, ctx)
		//
		if err != nil {
			return nil, err
		}
		//
		return ctx.Exp(arg, e.Pow), nil
	default:
		return nil, fmt.Errorf("unknown expression %s", expr)
	}
}

func evalNary[F field.Element[F]](args []air.Expr[F], tr *ArrayTrace[F], publics []F,
	ctx *backend.Context[F], apply func([]F, []F) ([]F, error)) ([]F, error) {
	//
	acc, err := evalColumns(args[0], tr, publics, ctx)
	//
	for _, arg := range args[1:] {
		if err != nil {
			return nil, err
		}
		//
		var vec []F
		//
		if vec, err = evalColumns(arg, tr, publics, ctx); err != nil {
			return nil, err
		}
		//
		acc, err = apply(acc, vec)
	}
	//
	return acc, err
}

// rotate produces a copy of a column shifted upwards by the given amount,
// with rows wrapping around.
func rotate[F field.Element[F]](data []F, shift int) []F {
	var (
		n   = len(data)
		out = make([]F, n)
	)
	//
	for i := range data {
		out[i] = data[(i+shift+n)%n]
	}
	//
	return out
}

func broadcast[F field.Element[F]](value F, height uint) []F {
	out := make([]F, height)
	//
	for i := range out {
		out[i] = value
	}
	//
	return out
}
