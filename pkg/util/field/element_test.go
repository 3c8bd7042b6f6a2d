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
	"math/big"
	"math/rand"
	"testing"

	"github.com/ingonyama-zk/air-icicle/pkg/util/assert"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

func TestBatchInvert(t *testing.T) {
	s := make([]babybear.Element, 500)
	sInv := make([]babybear.Element, len(s))
	scratch := make([]babybear.Element, len(s))

	for i := range s {
		s[i] = babybear.New(uint64(rand.Uint32()))
		if rand.Intn(8) == 0 {
			// getting a zero with considerable probability
			s[i] = Zero[babybear.Element]()
		}

		sInv[i] = s[i].Inverse()

		copy(scratch[:i], s)
		BatchInvert(scratch[:i])

		for j := range i {
			assert.True(t, sInv[j].Equal(scratch[j]), "on prefix of length %d, at index %d", i, j)
		}
	}
}

func TestSafeInverse(t *testing.T) {
	x := Uint64[babybear.Element](7)
	//
	inv, err := SafeInverse(x)
	assert.NoError(t, err)
	assert.True(t, inv.Mul(x).IsOne())
}

func TestSafeInverseZero(t *testing.T) {
	_, err := SafeInverse(Zero[babybear.Element]())
	//
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestConstructors(t *testing.T) {
	assert.True(t, Zero[babybear.Element]().IsZero())
	assert.True(t, One[babybear.Element]().IsOne())
	assert.True(t, Uint64[babybear.Element](21).Equal(babybear.New(21)))
	assert.True(t, BigInt[babybear.Element](*big.NewInt(21)).Equal(babybear.New(21)))
	// canonical byte round trip
	x := Random[babybear.Element]()
	assert.True(t, x.Equal(FromBigEndianBytes[babybear.Element](x.Bytes())))
}

func TestTwoPowN(t *testing.T) {
	assert.Equal(t, "1024", TwoPowN[babybear.Element](10).String())
}

func TestAggregates(t *testing.T) {
	xs := []babybear.Element{babybear.New(1), babybear.New(2), babybear.New(3)}
	//
	assert.Equal(t, "6", Sum(xs...).String())
	assert.Equal(t, "6", Product(xs...).String())
	// empty aggregates yield the respective identities
	assert.True(t, Sum[babybear.Element]().IsZero())
	assert.True(t, Product[babybear.Element]().IsOne())
}
