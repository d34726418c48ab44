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
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/kestrelproject/kestrel-core/pkg/api"
)

func TestNewResourceFromProto(t *testing.T) {
	res := NewResourceFromProto(nil)
	assert.Assert(t, res.IsEmpty(), "nil proto must give an empty resource")

	proto := &api.Resource{Resources: map[string]int64{Memory: 1024, VCore: 2}}
	res = NewResourceFromProto(proto)
	assert.Equal(t, res.Resources[Memory], Quantity(1024))
	assert.Equal(t, res.Resources[VCore], Quantity(2))
}

func TestProtoRoundTrip(t *testing.T) {
	res := NewResourceFromMemCPU(2048, 4)
	back := NewResourceFromProto(res.ToProto())
	if diff := cmp.Diff(res.Resources, back.Resources); diff != "" {
		t.Errorf("resource changed in proto round trip (-want +got):\n%s", diff)
	}
}

func TestAddSub(t *testing.T) {
	left := NewResourceFromMemCPU(1024, 1)
	right := NewResourceFromMemCPU(512, 2)

	sum := Add(left, right)
	assert.Equal(t, sum.Resources[Memory], Quantity(1536))
	assert.Equal(t, sum.Resources[VCore], Quantity(3))

	diff := Sub(left, right)
	assert.Equal(t, diff.Resources[Memory], Quantity(512))
	assert.Equal(t, diff.Resources[VCore], Quantity(-1))
	assert.Assert(t, diff.HasNegativeValue(), "expected negative vcore after subtraction")

	// nil safety
	assert.Assert(t, Equals(Add(nil, nil), NewResource()), "nil + nil must be empty")
	assert.Assert(t, Equals(Sub(left, nil), left), "subtracting nil must be identity")
}

func TestAddToSubFrom(t *testing.T) {
	base := NewResourceFromMemCPU(1024, 1)
	AddTo(base, NewResourceFromMemCPU(1024, 1))
	assert.Equal(t, base.Resources[Memory], Quantity(2048))

	SubFrom(base, NewResourceFromMemCPU(2048, 2))
	assert.Equal(t, base.Resources[Memory], Quantity(0))
	assert.Equal(t, base.Resources[VCore], Quantity(0))

	// nil safe, no panic and no change
	AddTo(base, nil)
	SubFrom(base, nil)
	assert.Assert(t, base.IsEmpty())
}

func TestFitIn(t *testing.T) {
	capacity := NewResourceFromMemCPU(4096, 2)

	assert.Assert(t, FitIn(capacity, NewResourceFromMemCPU(4096, 2)), "exact fit rejected")
	assert.Assert(t, FitIn(capacity, NewResourceFromMemCPU(1, 1)), "small claim rejected")
	assert.Assert(t, !FitIn(capacity, NewResourceFromMemCPU(4097, 1)), "memory overflow accepted")
	assert.Assert(t, !FitIn(capacity, NewResourceFromMemCPU(1, 3)), "vcore overflow accepted")
	assert.Assert(t, FitIn(capacity, nil), "nil claim must always fit")
	assert.Assert(t, !FitIn(nil, NewResourceFromMemCPU(1, 0)), "claim must not fit in nil capacity")
}

func TestClone(t *testing.T) {
	res := NewResourceFromMap(map[string]Quantity{Memory: 100, "gpu": 0})
	clone := res.Clone()
	assert.Equal(t, clone.Resources[Memory], Quantity(100))
	_, ok := clone.Resources["gpu"]
	assert.Assert(t, !ok, "zero quantity must be stripped in clone")

	clone.Resources[Memory] = 1
	assert.Equal(t, res.Resources[Memory], Quantity(100), "clone must not alias the original")
}

func TestNewResourceFromConf(t *testing.T) {
	res, err := NewResourceFromConf(map[string]string{Memory: "1024", VCore: "2"})
	assert.NilError(t, err, "valid config rejected")
	assert.Equal(t, res.Resources[Memory], Quantity(1024))

	_, err = NewResourceFromConf(map[string]string{Memory: "lots"})
	assert.Assert(t, err != nil, "unparsable quantity accepted")
}
