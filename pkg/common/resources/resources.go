/*
 Licensed to the Apache Software Foundation (ASF) under one
 or more contributor license agreements.  See the NOTICE file
 distributed with this work for additional information
 regarding copyright ownership.  The ASF licenses this file
 to you under the Apache License, Version 2.0 (the
 "License"); you may not use this file except in compliance
 with the License.  You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package resources

import (
	"fmt"
	"strconv"

	"github.com/kestrelproject/kestrel-core/pkg/api"
)

// Well known resource names. The vector is extensible, any name can be
// carried, these two are the ones set by the standard configuration.
const (
	Memory = "memory"
	VCore  = "vcore"
)

// No unit defined here for better performance
type Quantity int64

// Resource is the vector of named quantities a reservation claims while
// runnable and running.
type Resource struct {
	Resources map[string]Quantity
}

var zeroResource = NewResource()

func NewResource() *Resource {
	return &Resource{Resources: make(map[string]Quantity)}
}

func NewResourceFromMap(m map[string]Quantity) *Resource {
	if m == nil {
		return NewResource()
	}
	return &Resource{Resources: m}
}

// NewResourceFromMemCPU builds the standard two component vector.
func NewResourceFromMemCPU(mem, cpu Quantity) *Resource {
	return &Resource{Resources: map[string]Quantity{
		Memory: mem,
		VCore:  cpu,
	}}
}

func NewResourceFromProto(proto *api.Resource) *Resource {
	out := NewResource()
	if proto == nil {
		return out
	}
	for k, v := range proto.Resources {
		out.Resources[k] = Quantity(v)
	}
	return out
}

// NewResourceFromConf creates a new resource from the config map.
// The config map must have been checked before being applied. The check here
// is just for safety so we do not crash.
func NewResourceFromConf(configMap map[string]string) (*Resource, error) {
	res := NewResource()
	for key, strVal := range configMap {
		intValue, err := strconv.ParseInt(strVal, 10, 64)
		if err != nil {
			return nil, err
		}
		res.Resources[key] = Quantity(intValue)
	}
	return res, nil
}

func (r *Resource) String() string {
	if r == nil {
		return "nil resource"
	}
	return fmt.Sprintf("%v", r.Resources)
}

// ToProto converts to the wire representation.
func (r *Resource) ToProto() *api.Resource {
	proto := &api.Resource{Resources: make(map[string]int64)}
	if r == nil {
		return proto
	}
	for k, v := range r.Resources {
		proto.Resources[k] = int64(v)
	}
	return proto
}

// Clone returns a copy of this resource, zero values are stripped.
func (r *Resource) Clone() *Resource {
	ret := NewResource()
	if r == nil {
		return ret
	}
	for k, v := range r.Resources {
		if v != 0 {
			ret.Resources[k] = v
		}
	}
	return ret
}

// IsEmpty returns true if all quantities are zero, nil safe.
func (r *Resource) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, v := range r.Resources {
		if v != 0 {
			return false
		}
	}
	return true
}

// HasNegativeValue returns true if any quantity is below zero, nil safe.
func (r *Resource) HasNegativeValue() bool {
	if r == nil {
		return false
	}
	for _, v := range r.Resources {
		if v < 0 {
			return true
		}
	}
	return false
}

// Operations
// All operations must be nil safe

// Add resources returning a new resource with the result,
// a nil resource is considered an empty resource.
func Add(left, right *Resource) *Resource {
	if left == nil {
		left = zeroResource
	}
	if right == nil {
		right = zeroResource
	}
	out := NewResource()
	for k, v := range right.Resources {
		out.Resources[k] = v
	}
	for k, v := range left.Resources {
		out.Resources[k] += v
	}
	return out
}

// Sub subtracts the right resource from the left returning a new resource,
// a nil resource is considered an empty resource.
// This might return negative values for specific quantities.
func Sub(left, right *Resource) *Resource {
	if left == nil {
		left = zeroResource
	}
	if right == nil {
		right = zeroResource
	}
	out := NewResource()
	for k, v := range left.Resources {
		out.Resources[k] = v
	}
	for k, v := range right.Resources {
		out.Resources[k] -= v
	}
	return out
}

// AddTo adds the additional resource to the base, updating the base.
// A nil addition leaves the base unchanged.
func AddTo(base, additional *Resource) {
	if base == nil || additional == nil {
		return
	}
	for k, v := range additional.Resources {
		base.Resources[k] += v
	}
}

// SubFrom subtracts the subtraction from the base, updating the base.
// Quantities may go negative, callers that must not go negative check with
// HasNegativeValue after the update.
func SubFrom(base, subtract *Resource) {
	if base == nil || subtract == nil {
		return
	}
	for k, v := range subtract.Resources {
		base.Resources[k] -= v
	}
}

// FitIn checks whether smaller fits in larger on every component.
// Quantities missing from larger are treated as zero. Nil safe: a nil
// smaller always fits, a nil larger only fits an empty smaller.
func FitIn(larger, smaller *Resource) bool {
	if larger == nil {
		larger = zeroResource
	}
	if smaller == nil {
		return true
	}
	for k, v := range smaller.Resources {
		if larger.Resources[k] < v {
			return false
		}
	}
	return true
}

// Equals compares the two vectors, zero quantities equal absent ones.
func Equals(left, right *Resource) bool {
	if left == nil {
		left = zeroResource
	}
	if right == nil {
		right = zeroResource
	}
	for k, v := range left.Resources {
		if right.Resources[k] != v {
			return false
		}
	}
	for k, v := range right.Resources {
		if left.Resources[k] != v {
			return false
		}
	}
	return true
}
