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

package utils

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestSplitHostPort(t *testing.T) {
	host, port, err := SplitHostPort("worker1:20501")
	assert.NilError(t, err)
	assert.Equal(t, host, "worker1")
	assert.Equal(t, port, 20501)

	_, _, err = SplitHostPort("worker1")
	assert.Assert(t, err != nil, "missing port accepted")
	_, _, err = SplitHostPort("worker1:0")
	assert.Assert(t, err != nil, "port zero accepted")
	_, _, err = SplitHostPort("worker1:999999")
	assert.Assert(t, err != nil, "out of range port accepted")
}

func TestGetTaskAddress(t *testing.T) {
	address, err := GetTaskAddress("scheduler1:20503", 20507)
	assert.NilError(t, err)
	assert.Equal(t, address, "scheduler1:20507")

	_, err = GetTaskAddress("no-port-here", 20507)
	assert.Assert(t, err != nil, "invalid scheduler address accepted")
}

func TestParseBackendList(t *testing.T) {
	backends, err := ParseBackendList("app1=host1:20101, app2=host2:20102")
	assert.NilError(t, err)
	assert.Equal(t, len(backends), 2)
	assert.Equal(t, backends["app1"], "host1:20101")
	assert.Equal(t, backends["app2"], "host2:20102")

	backends, err = ParseBackendList("  ")
	assert.NilError(t, err)
	assert.Equal(t, len(backends), 0)

	_, err = ParseBackendList("app1")
	assert.Assert(t, err != nil, "entry without address accepted")
	_, err = ParseBackendList("app1=no-port")
	assert.Assert(t, err != nil, "entry with bad address accepted")
	_, err = ParseBackendList("=host1:20101")
	assert.Assert(t, err != nil, "entry without app id accepted")
}

func TestParseAddressList(t *testing.T) {
	addresses, err := ParseAddressList("host1:1, host2:2")
	assert.NilError(t, err)
	assert.DeepEqual(t, addresses, []string{"host1:1", "host2:2"})

	_, err = ParseAddressList("host1")
	assert.Assert(t, err != nil, "bad address accepted")
}
