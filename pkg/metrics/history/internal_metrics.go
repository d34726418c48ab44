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
	"sync"
	"time"
)

// InternalMetricsHistory keeps basic worker load history for the REST
// front page. For detailed metrics collection use Prometheus.
type InternalMetricsHistory struct {
	records []*MetricsRecord
	limit   int
	mutex   sync.Mutex
}

type MetricsRecord struct {
	Timestamp     time.Time
	LaunchedTasks int
	InUseMemory   int64
	InUseCPU      int64
}

func NewInternalMetricsHistory(limit int) *InternalMetricsHistory {
	return &InternalMetricsHistory{
		records: make([]*MetricsRecord, 0),
		limit:   limit,
	}
}

func (h *InternalMetricsHistory) Store(launchedTasks int, inUseMemory, inUseCPU int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.records = append(h.records,
		&MetricsRecord{
			Timestamp:     time.Now(),
			LaunchedTasks: launchedTasks,
			InUseMemory:   inUseMemory,
			InUseCPU:      inUseCPU,
		})
	if len(h.records) > h.limit {
		// remove oldest entry
		h.records = h.records[1:]
	}
}

func (h *InternalMetricsHistory) GetRecords() []*MetricsRecord {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	out := make([]*MetricsRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *InternalMetricsHistory) GetLimit() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.limit
}
