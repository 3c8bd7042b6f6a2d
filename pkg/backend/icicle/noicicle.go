//go:build !icicle

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
package icicle

import (
	"errors"

	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

// HasIcicle indicates whether the ICICLE device runtime was compiled in.
const HasIcicle = false

// NewAccelerator constructs the ICICLE-backed accelerator for BabyBear
// batches.  Without the 'icicle' build tag no device runtime is linked, so
// construction fails and callers degrade to host execution.
func NewAccelerator() (backend.Accelerator[babybear.Element], error) {
	return nil, errors.New("icicle device requested but program compiled without 'icicle' build tag")
}
