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

package history

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestHistoryKeepsLimit(t *testing.T) {
	metricsHistory := NewInternalMetricsHistory(3)
	for i := 0; i < 5; i++ {
		metricsHistory.Store(i, int64(i*1024), int64(i))
	}

	records := metricsHistory.GetRecords()
	assert.Equal(t, len(records), 3, "history must not grow past its limit")
	assert.Equal(t, records[0].LaunchedTasks, 2, "oldest records must be dropped first")
	assert.Equal(t, records[2].LaunchedTasks, 4)
	assert.Equal(t, records[2].InUseMemory, int64(4096))
	assert.Equal(t, metricsHistory.GetLimit(), 3)
}

func TestGetRecordsIsACopy(t *testing.T) {
	metricsHistory := NewInternalMetricsHistory(2)
	metricsHistory.Store(1, 1024, 1)

	records := metricsHistory.GetRecords()
	records[0] = nil
	assert.Assert(t, metricsHistory.GetRecords()[0] != nil,
		"mutating the returned slice must not corrupt the history")
}
