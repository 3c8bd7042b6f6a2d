//go:build icicle

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
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ingonyama-zk/icicle/v3/wrappers/golang/core"
	icicle_bb "github.com/ingonyama-zk/icicle/v3/wrappers/golang/fields/babybear"
	bb_vecops "github.com/ingonyama-zk/icicle/v3/wrappers/golang/fields/babybear/vecOps"
	icicle_runtime "github.com/ingonyama-zk/icicle/v3/wrappers/golang/runtime"

	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

// HasIcicle indicates whether the ICICLE device runtime was compiled in.
const HasIcicle = true

var (
	onceWarmUpDevice sync.Once
	warmUpErr        error
	device           icicle_runtime.Device
)

// warmUpDevice performs one-time initialisation of the ICICLE backend.  It is
// safe to call multiple times; initialisation only occurs once.
func warmUpDevice() error {
	onceWarmUpDevice.Do(func() {
		if err := icicle_runtime.LoadBackendFromEnvOrDefault(); err != icicle_runtime.Success {
			warmUpErr = fmt.Errorf("ICICLE backend loading error: %s", err.AsString())
			return
		}
		//
		device = icicle_runtime.CreateDevice("CUDA", 0)
		log.WithFields(log.Fields{
			"id":   device.Id,
			"type": device.GetDeviceType(),
		}).Debug("ICICLE device created")
		//
		icicle_runtime.RunOnDevice(&device, func(args ...any) {
			if err := icicle_runtime.WarmUpDevice(); err != icicle_runtime.Success {
				warmUpErr = fmt.Errorf("ICICLE device warmup error: %s", err.AsString())
			}
		})
	})
	//
	return warmUpErr
}

// NewAccelerator constructs the ICICLE-backed accelerator for BabyBear
// batches.  Construction fails if the device runtime cannot be initialised.
func NewAccelerator() (backend.Accelerator[babybear.Element], error) {
	if err := warmUpDevice(); err != nil {
		return nil, err
	}
	//
	return &accelerator{}, nil
}

type accelerator struct{}

// Name implementation for the Accelerator interface.
func (a *accelerator) Name() string {
	return "ICICLE"
}

// Available implementation for the Accelerator interface.
func (a *accelerator) Available() bool {
	return warmUpErr == nil
}

// Supports implementation for the Accelerator interface.
func (a *accelerator) Supports(op backend.Op) bool {
	switch op {
	case backend.OpAdd, backend.OpSub, backend.OpMul:
		return true
	default:
		return false
	}
}

// Add computes element-wise xs + ys on the device.
func (a *accelerator) Add(xs, ys []babybear.Element) ([]babybear.Element, error) {
	return a.vecOp(xs, ys, core.Add)
}

// Sub computes element-wise xs - ys on the device.
func (a *accelerator) Sub(xs, ys []babybear.Element) ([]babybear.Element, error) {
	return a.vecOp(xs, ys, core.Sub)
}

// Mul computes element-wise xs * ys on the device.
func (a *accelerator) Mul(xs, ys []babybear.Element) ([]babybear.Element, error) {
	return a.vecOp(xs, ys, core.Mul)
}

// vecOp copies both operands to the device, applies the requested vector
// operation, and copies the result back.  The transfer is synchronous: the
// call does not return until the result is host-resident.  Elements cross the
// boundary in canonical form so host and device results are bit-identical.
func (a *accelerator) vecOp(xs, ys []babybear.Element, op core.VecOps) ([]babybear.Element, error) {
	var (
		as  = toScalars(xs)
		bs  = toScalars(ys)
		out = make([]icicle_bb.ScalarField, len(xs))
		cfg = core.DefaultVecOpsConfig()
		ret icicle_runtime.EIcicleError
	)
	//
	icicle_runtime.RunOnDevice(&device, func(args ...any) {
		ret = bb_vecops.VecOp(
			core.HostSliceFromElements(as),
			core.HostSliceFromElements(bs),
			core.HostSliceFromElements(out),
			cfg, op,
		)
	})
	//
	if ret != icicle_runtime.Success {
		return nil, fmt.Errorf("ICICLE vector operation error: %s", ret.AsString())
	}
	//
	return fromScalars(out), nil
}

func toScalars(xs []babybear.Element) []icicle_bb.ScalarField {
	res := make([]icicle_bb.ScalarField, len(xs))
	//
	for i, x := range xs {
		res[i].FromLimbs([]uint32{x.Uint32()})
	}
	//
	return res
}

func fromScalars(xs []icicle_bb.ScalarField) []babybear.Element {
	res := make([]babybear.Element, len(xs))
	//
	for i := range xs {
		limbs := xs[i].GetLimbs()
		res[i] = babybear.New(uint64(limbs[0]))
	}
	//
	return res
}
