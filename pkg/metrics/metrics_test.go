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

	"github.com/prometheus/common/model"
	"gotest.tools/v3/assert"
)

func TestMetricNamesAreValid(t *testing.T) {
	for _, name := range []string{
		"reservations_enqueued_total",
		"get_task_total",
		"tasks_launched_total",
		"task_launch_failures_total",
		"tasks_completed_total",
		"policy_queue_length",
		"runnable_queue_length",
		"resource_in_use",
		"resource_capacity",
		"task_launch_seconds",
	} {
		fullName := NodeMonitorSubsystem + "_" + name
		assert.Assert(t, model.IsValidMetricName(model.LabelValue(fullName)),
			"invalid metric name: %s", fullName)
	}
}

func TestCounterReadback(t *testing.T) {
	m := GetNodeMonitorMetrics()

	before, err := m.GetTasksLaunched()
	assert.NilError(t, err, "failed to read tasks launched")
	m.IncTasksLaunched()
	after, err := m.GetTasksLaunched()
	assert.NilError(t, err)
	assert.Equal(t, after, before+1, "tasks launched counter did not move")

	beforeCompleted, err := m.GetTasksCompleted()
	assert.NilError(t, err)
	m.IncTasksCompleted()
	afterCompleted, err := m.GetTasksCompleted()
	assert.NilError(t, err)
	assert.Equal(t, afterCompleted, beforeCompleted+1)
}

func TestResourceGauges(t *testing.T) {
	m := GetNodeMonitorMetrics()

	m.SetResourceInUse("memory", 2048)
	value, err := m.GetResourceInUse("memory")
	assert.NilError(t, err)
	assert.Equal(t, value, int64(2048))

	m.SetResourceInUse("memory", 0)
	value, err = m.GetResourceInUse("memory")
	assert.NilError(t, err)
	assert.Equal(t, value, int64(0))
}

func TestSingleton(t *testing.T) {
	first := GetNodeMonitorMetrics()
	second := GetNodeMonitorMetrics()
	assert.Equal(t, first, second, "metrics must be a process singleton")
}
