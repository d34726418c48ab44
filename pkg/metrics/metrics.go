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

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// NodeMonitorSubsystem - subsystem name used by the node monitor
const NodeMonitorSubsystem = "nodemonitor"

// NodeMonitorMetrics exposes the admission engine counters and gauges.
type NodeMonitorMetrics struct {
	reservationsEnqueued prometheus.Counter
	getTaskOutcome       *prometheus.CounterVec
	tasksLaunched        prometheus.Counter
	launchFailures       prometheus.Counter
	tasksCompleted       prometheus.Counter
	policyQueueLength    prometheus.Gauge
	runnableQueueLength  prometheus.Gauge
	resourceInUse        *prometheus.GaugeVec
	resourceCapacity     *prometheus.GaugeVec
	launchLatency        prometheus.Histogram
}

func initNodeMonitorMetrics() *NodeMonitorMetrics {
	m := &NodeMonitorMetrics{}

	m.reservationsEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "reservations_enqueued_total",
		Help:      "Number of task reservations accepted by intake.",
	})
	m.getTaskOutcome = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "get_task_total",
		Help:      "Number of getTask calls to schedulers, by outcome. 'empty' means the scheduler had no task left for the request, 'error' means the RPC failed.",
	}, []string{"outcome"})
	m.tasksLaunched = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "tasks_launched_total",
		Help:      "Number of tasks handed to application backends.",
	})
	m.launchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "task_launch_failures_total",
		Help:      "Number of launchTask calls that failed.",
	})
	m.tasksCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "tasks_completed_total",
		Help:      "Number of reservations that reached a terminal state.",
	})
	m.policyQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "policy_queue_length",
		Help:      "Reservations retained by the admission policy.",
	})
	m.runnableQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "runnable_queue_length",
		Help:      "Reservations with a task spec waiting for a launcher worker.",
	})
	m.resourceInUse = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "resource_in_use",
		Help:      "Resources consumed by runnable and running tasks.",
	}, []string{"resource"})
	m.resourceCapacity = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "resource_capacity",
		Help:      "Configured node capacity.",
	}, []string{"resource"})
	m.launchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Subsystem: NodeMonitorSubsystem,
		Name:      "task_launch_seconds",
		Help:      "Latency of the launchTask RPC to the backend.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 7),
	})

	for _, c := range []prometheus.Collector{
		m.reservationsEnqueued,
		m.getTaskOutcome,
		m.tasksLaunched,
		m.launchFailures,
		m.tasksCompleted,
		m.policyQueueLength,
		m.runnableQueueLength,
		m.resourceInUse,
		m.resourceCapacity,
		m.launchLatency,
	} {
		if err := prometheus.Register(c); err != nil {
			log.Log(log.Metrics).Warn("failed to register metrics collector", zap.Error(err))
		}
	}
	return m
}

func (m *NodeMonitorMetrics) IncReservationsEnqueued() {
	m.reservationsEnqueued.Inc()
}

func (m *NodeMonitorMetrics) IncGetTaskSuccess() {
	m.getTaskOutcome.With(prometheus.Labels{"outcome": "task"}).Inc()
}

func (m *NodeMonitorMetrics) IncGetTaskEmpty() {
	m.getTaskOutcome.With(prometheus.Labels{"outcome": "empty"}).Inc()
}

func (m *NodeMonitorMetrics) IncGetTaskError() {
	m.getTaskOutcome.With(prometheus.Labels{"outcome": "error"}).Inc()
}

func (m *NodeMonitorMetrics) IncTasksLaunched() {
	m.tasksLaunched.Inc()
}

func (m *NodeMonitorMetrics) IncLaunchFailures() {
	m.launchFailures.Inc()
}

func (m *NodeMonitorMetrics) IncTasksCompleted() {
	m.tasksCompleted.Inc()
}

func (m *NodeMonitorMetrics) SetPolicyQueueLength(length int) {
	m.policyQueueLength.Set(float64(length))
}

func (m *NodeMonitorMetrics) AddRunnableQueueLength(delta int) {
	m.runnableQueueLength.Add(float64(delta))
}

func (m *NodeMonitorMetrics) SetResourceInUse(resource string, value int64) {
	m.resourceInUse.With(prometheus.Labels{"resource": resource}).Set(float64(value))
}

func (m *NodeMonitorMetrics) SetResourceCapacity(resource string, value int64) {
	m.resourceCapacity.With(prometheus.Labels{"resource": resource}).Set(float64(value))
}

func (m *NodeMonitorMetrics) ObserveLaunchLatency(start time.Time) {
	m.launchLatency.Observe(time.Since(start).Seconds())
}

// GetTasksLaunched reads back the counter, used by the history collector and
// by tests.
func (m *NodeMonitorMetrics) GetTasksLaunched() (int, error) {
	metricDto := &dto.Metric{}
	err := m.tasksLaunched.Write(metricDto)
	if err != nil {
		return -1, err
	}
	return int(metricDto.Counter.GetValue()), nil
}

// GetTasksCompleted reads back the counter, used by tests.
func (m *NodeMonitorMetrics) GetTasksCompleted() (int, error) {
	metricDto := &dto.Metric{}
	err := m.tasksCompleted.Write(metricDto)
	if err != nil {
		return -1, err
	}
	return int(metricDto.Counter.GetValue()), nil
}

// GetResourceInUse reads back one gauge component, used by tests.
func (m *NodeMonitorMetrics) GetResourceInUse(resource string) (int64, error) {
	metricDto := &dto.Metric{}
	err := m.resourceInUse.With(prometheus.Labels{"resource": resource}).Write(metricDto)
	if err != nil {
		return -1, err
	}
	return int64(metricDto.Gauge.GetValue()), nil
}
