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
	"slices"
	"strings"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// VarKind distinguishes the indeterminates a constraint polynomial ranges
// over.
type VarKind uint8

const (
	// VarColumn is a trace cell (column, shift).
	VarColumn VarKind = iota
	// VarPublic is a public input.
	VarPublic
	// VarFirst is the first-row selector.
	VarFirst
	// VarLast is the last-row selector.
	VarLast
	// VarTransition is the transition selector.
	VarTransition
)

// Indeterminate identifies a single variable of a constraint polynomial.
// Column variables are distinguished by (column, shift); public inputs by
// index; selectors stand alone.
type Indeterminate struct {
	Kind   VarKind
	Column uint
	Shift  int
	Index  uint
}

// Cmp imposes a total order on indeterminates, used to keep monomials in a
// canonical form.
func (v Indeterminate) Cmp(other Indeterminate) int {
	if v.Kind != other.Kind {
		return int(v.Kind) - int(other.Kind)
	}
	//
	switch v.Kind {
	case VarColumn:
		if v.Column != other.Column {
			return int(v.Column) - int(other.Column)
		}
		//
		return v.Shift - other.Shift
	case VarPublic:
		return int(v.Index) - int(other.Index)
	default:
		return 0
	}
}

func (v Indeterminate) String() string {
	switch v.Kind {
	case VarColumn:
		if v.Shift == 0 {
			return fmt.Sprintf("x%d", v.Column)
		}
		//
		return fmt.Sprintf("x%d'", v.Column)
	case VarPublic:
		return fmt.Sprintf("p%d", v.Index)
	case VarFirst:
		return "first"
	case VarLast:
		return "last"
	default:
		return "transition"
	}
}

// Monomial is a coefficient multiplied by zero or more indeterminates.  The
// variables are held sorted, with repetition denoting powers, so two equal
// monomials always have identical representations.
type Monomial[F field.Element[F]] struct {
	Coefficient F
	Vars        []Indeterminate
}

func (m Monomial[F]) String() string {
	if len(m.Vars) == 0 {
		return m.Coefficient.String()
	}
	//
	var builder strings.Builder
	//
	if !m.Coefficient.IsOne() {
		builder.WriteString(m.Coefficient.String())
		builder.WriteString("*")
	}
	//
	for i, v := range m.Vars {
		if i != 0 {
			builder.WriteString("*")
		}
		//
		builder.WriteString(v.String())
	}
	//
	return builder.String()
}

// mul multiplies two monomials, merging their sorted variable lists.
func (m Monomial[F]) mul(other Monomial[F]) Monomial[F] {
	vars := make([]Indeterminate, 0, len(m.Vars)+len(other.Vars))
	vars = append(vars, m.Vars...)
	vars = append(vars, other.Vars...)
	slices.SortFunc(vars, Indeterminate.Cmp)
	//
	return Monomial[F]{m.Coefficient.Mul(other.Coefficient), vars}
}

// Poly is a multivariate polynomial in normal form: a canonically ordered sum
// of monomials with distinct variable lists and non-zero coefficients.  Two
// expressions denote the same polynomial function exactly when their normal
// forms are identical, which makes Poly the basis of symbolic equality.
type Poly[F field.Element[F]] struct {
	terms []Monomial[F]
}

// Len returns the number of monomials in this polynomial.
func (p Poly[F]) Len() uint { return uint(len(p.terms)) }

// Term returns the ith monomial of this polynomial.
func (p Poly[F]) Term(i uint) Monomial[F] { return p.terms[i] }

// IsZero checks whether this polynomial is the zero polynomial.
func (p Poly[F]) IsZero() bool { return len(p.terms) == 0 }

func (p Poly[F]) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	strs := make([]string, len(p.terms))
	//
	for i, term := range p.terms {
		strs[i] = term.String()
	}
	//
	return strings.Join(strs, " + ")
}

// Add computes the normal-form sum of two polynomials.
func (p Poly[F]) Add(other Poly[F]) Poly[F] {
	res := p
	//
	for _, term := range other.terms {
		res = res.addTerm(term)
	}
	//
	return res
}

// Sub computes the normal-form difference of two polynomials.
func (p Poly[F]) Sub(other Poly[F]) Poly[F] {
	return p.Add(other.Scale(field.One[F]().Neg()))
}

// Mul computes the normal-form product of two polynomials.
func (p Poly[F]) Mul(other Poly[F]) Poly[F] {
	var res Poly[F]
	//
	for _, l := range p.terms {
		for _, r := range other.terms {
			res = res.addTerm(l.mul(r))
		}
	}
	//
	return res
}

// Scale multiplies every coefficient by a given constant.
func (p Poly[F]) Scale(constant F) Poly[F] {
	if constant.IsZero() {
		return Poly[F]{}
	}
	//
	terms := make([]Monomial[F], len(p.terms))
	//
	for i, term := range p.terms {
		terms[i] = Monomial[F]{term.Coefficient.Mul(constant), term.Vars}
	}
	//
	return Poly[F]{terms}
}

// addTerm folds a single monomial into the normal form, preserving canonical
// term order and eliminating cancelled terms.
func (p Poly[F]) addTerm(term Monomial[F]) Poly[F] {
	if term.Coefficient.IsZero() {
		return p
	}
	//
	index, found := slices.BinarySearchFunc(p.terms, term, cmpMonomials[F])
	terms := slices.Clone(p.terms)
	//
	if found {
		coeff := terms[index].Coefficient.Add(term.Coefficient)
		//
		if coeff.IsZero() {
			terms = slices.Delete(terms, index, index+1)
		} else {
			terms[index] = Monomial[F]{coeff, terms[index].Vars}
		}
	} else {
		terms = slices.Insert(terms, index, term)
	}
	//
	return Poly[F]{terms}
}

// cmpMonomials orders monomials by their variable lists (graded
// lexicographically), ignoring coefficients.
func cmpMonomials[F field.Element[F]](l, r Monomial[F]) int {
	if len(l.Vars) != len(r.Vars) {
		return len(l.Vars) - len(r.Vars)
	}
	//
	for i := range l.Vars {
		if c := l.Vars[i].Cmp(r.Vars[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

// NormalForm rewrites an expression into its unique polynomial normal form.
// Syntactically different expressions denoting the same polynomial (e.g.
// "(x+1)*(x-1)" and "x*x - 1") normalise identically.
func NormalForm[F field.Element[F]](expr Expr[F]) Poly[F] {
	switch e := expr.(type) {
	case Constant[F]:
		return Poly[F]{}.addTerm(Monomial[F]{e.Value, nil})
	case ColumnAccess[F]:
		return atom[F](Indeterminate{Kind: VarColumn, Column: e.Column, Shift: e.Shift})
	case Public[F]:
		return atom[F](Indeterminate{Kind: VarPublic, Index: e.Index})
	case FirstRow[F]:
		return atom[F](Indeterminate{Kind: VarFirst})
	case LastRow[F]:
		return atom[F](Indeterminate{Kind: VarLast})
	case Transition[F]:
		return atom[F](Indeterminate{Kind: VarTransition})
	case Add[F]:
		var res Poly[F]
		//
		for _, arg := range e.Args {
			res = res.Add(NormalForm[F](arg))
		}
		//
		return res
	case Sub[F]:
		res := NormalForm[F](e.Args[0])
		//
		for _, arg := range e.Args[1:] {
			res = res.Sub(NormalForm[F](arg))
		}
		//
		return res
	case Mul[F]:
		res := NormalForm[F](e.Args[0])
		//
		for _, arg := range e.Args[1:] {
			res = res.Mul(NormalForm[F](arg))
		}
		//
		return res
	case Neg[F]:
		return NormalForm[F](e.Arg).Scale(field.One[F]().Neg())
	case Exp[F]:
		base := NormalForm[F](e.Arg)
		res := Poly[F]{}.addTerm(Monomial[F]{field.One[F](), nil})
		//
		for range e.Pow {
			res = res.Mul(base)
		}
		//
		return res
	default:
		panic(fmt.Sprintf("unknown expression %s", expr))
	}
}

func atom[F field.Element[F]](v Indeterminate) Poly[F] {
	return Poly[F]{[]Monomial[F]{{field.One[F](), []Indeterminate{v}}}}
}
