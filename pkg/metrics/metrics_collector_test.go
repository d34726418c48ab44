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

package metrics

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/kestrelproject/kestrel-core/pkg/metrics/history"
)

type fixedReader struct {
	mem, cpu int64
}

func (r fixedReader) InUseMemCPU() (int64, int64) {
	return r.mem, r.cpu
}

func TestCollectorStoresSnapshots(t *testing.T) {
	setInternalMetricsCollectorTicker(10 * time.Millisecond)
	defer setInternalMetricsCollectorTicker(1 * time.Minute)

	metricsHistory := history.NewInternalMetricsHistory(5)
	collector := NewInternalMetricsCollector(metricsHistory, fixedReader{mem: 2048, cpu: 2})
	collector.StartService()
	defer collector.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(metricsHistory.GetRecords()) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	records := metricsHistory.GetRecords()
	assert.Assert(t, len(records) > 0, "collector stored no snapshot")
	assert.Equal(t, records[0].InUseMemory, int64(2048))
	assert.Equal(t, records[0].InUseCPU, int64(2))
}
