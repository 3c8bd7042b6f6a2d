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

// BABY_BEAR corresponds to the 31bit BabyBear field, the default field for
// trace generation.
var BABY_BEAR = Config{"BABY_BEAR", 31}

// BLS12_377 is the scalar field of the BLS12-377 curve, available as the
// large-field option.
var BLS12_377 = Config{"BLS12_377", 252}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	BABY_BEAR,
	BLS12_377,
}

// Config provides a simple mechanism for selecting the field over which trace
// generation and constraint evaluation take place.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Maximum bandwidth (in bits) available in the field.
	BandWidth uint
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
