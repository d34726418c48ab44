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
	"time"

	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics/history"
)

var tickerDefault = 1 * time.Minute

// InUseReader supplies the current in-use memory and cpu for the history.
type InUseReader interface {
	InUseMemCPU() (int64, int64)
}

// InternalMetricsCollector periodically snapshots worker load into the
// metrics history ring.
type InternalMetricsCollector struct {
	ticker         *time.Ticker
	stopped        chan bool
	metricsHistory *history.InternalMetricsHistory
	reader         InUseReader
}

func NewInternalMetricsCollector(hcInfo *history.InternalMetricsHistory, reader InUseReader) *InternalMetricsCollector {
	return &InternalMetricsCollector{
		ticker:         time.NewTicker(tickerDefault),
		stopped:        make(chan bool),
		metricsHistory: hcInfo,
		reader:         reader,
	}
}

func (u *InternalMetricsCollector) StartService() {
	go func() {
		for {
			select {
			case <-u.stopped:
				return
			case <-u.ticker.C:
				log.Log(log.Metrics).Debug("Adding current load to historical worker data")
				launched, err := GetNodeMonitorMetrics().GetTasksLaunched()
				if err != nil {
					log.Log(log.Metrics).Warn("Could not encode metric.", zap.Error(err))
					continue
				}
				mem, cpu := u.reader.InUseMemCPU()
				u.metricsHistory.Store(launched, mem, cpu)
			}
		}
	}()
}

func (u *InternalMetricsCollector) Stop() {
	u.stopped <- true
}

// visible only for test
func setInternalMetricsCollectorTicker(newDefault time.Duration) {
	tickerDefault = newDefault
}
