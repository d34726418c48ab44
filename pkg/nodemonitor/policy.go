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

package nodemonitor

import (
	"github.com/pkg/errors"

	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
)

// ReleaseFunc hands a released reservation to the task puller. The call
// only dispatches work, it never blocks, so invoking it with the node
// monitor lock held is safe.
type ReleaseFunc func(reservation *TaskReservation)

// TaskPolicy decides when a submitted reservation may start fetching its
// task spec. All methods except QueueLength and QueuedReservations are
// invoked with the node monitor lock held; implementations keep their own
// state inside that consistency group and need no locking of their own
// beyond what the read-only methods require.
type TaskPolicy interface {
	// HandleSubmit either releases the reservation immediately or retains
	// it. It returns the policy queue depth after the call, for audit.
	HandleSubmit(reservation *TaskReservation) int

	// HandleTaskCompleted is called after accounting has settled for one
	// terminal reservation of the given job. The policy may release
	// retained reservations; released ones carry the passed task identity
	// as their previous-task ids.
	HandleTaskCompleted(requestID, lastTaskRequestID, lastTaskID string)

	// QueueLength returns the number of retained reservations for one app.
	QueueLength(appID string) int

	// QueuedReservations returns the total number of retained reservations.
	QueuedReservations() int
}

// Registered policy names, selected by the node_monitor.policy config key.
const (
	PolicyFIFO    = "fifo"
	PolicyBounded = "bounded"
)

// NewTaskPolicy builds the configured admission policy.
func NewTaskPolicy(name string, capacity *resources.Resource, release ReleaseFunc) (TaskPolicy, error) {
	switch name {
	case PolicyFIFO:
		return newFIFOPolicy(release), nil
	case PolicyBounded:
		return newBoundedPolicy(capacity, release), nil
	default:
		return nil, errors.Errorf("undefined admission policy: %s", name)
	}
}
