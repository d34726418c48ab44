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
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// TaskReservation is a claim on this worker for a future task whose spec is
// not yet known locally. It is created on intake, owned by the admission
// policy until released, then by the puller, and finally by a launcher
// worker.
type TaskReservation struct {
	// ReservationID correlates all audit records of one reservation.
	ReservationID string
	RequestID     string
	AppID         string
	User          *api.UserGroupInfo

	EstimatedResources *resources.Resource
	SchedulerAddress   string
	BackendAddress     string

	// Identity of the last task actually launched in the slot this
	// reservation fills. Empty when the slot was empty on release.
	PreviousRequestID string
	PreviousTaskID    string

	// Spec is set by the puller on a successful getTask.
	Spec *api.TaskLaunchSpec

	sm *fsm.FSM
}

func NewTaskReservation(request *api.EnqueueTaskReservationsRequest, backendAddress string) *TaskReservation {
	return &TaskReservation{
		ReservationID:      uuid.NewString(),
		RequestID:          request.RequestID,
		AppID:              request.AppID,
		User:               request.User,
		EstimatedResources: resources.NewResourceFromProto(request.EstimatedResources),
		SchedulerAddress:   request.SchedulerAddress,
		BackendAddress:     backendAddress,
		sm:                 NewReservationState(),
	}
}

// FullTaskID builds the wire identity of the launched task.
// Only valid once the task spec has been pulled.
func (tr *TaskReservation) FullTaskID() *api.FullTaskID {
	return &api.FullTaskID{
		TaskID:           tr.Spec.GetTaskID(),
		RequestID:        tr.RequestID,
		AppID:            tr.AppID,
		SchedulerAddress: tr.SchedulerAddress,
	}
}

// CurrentState exposes the lifecycle state, used for reporting and tests.
func (tr *TaskReservation) CurrentState() string {
	return tr.sm.Current()
}

// HandleReservationEvent drives the lifecycle state machine. An invalid
// transition is a coding error in the engine, it is logged and swallowed so
// a single broken reservation cannot take the daemon down.
func (tr *TaskReservation) HandleReservationEvent(event ReservationEvent) {
	err := tr.sm.Event(stateContext(), event.String(), tr)
	if err != nil {
		log.Log(log.NodeMonitor).Error("reservation state transition failed",
			zap.String("reservationID", tr.ReservationID),
			zap.String("requestID", tr.RequestID),
			zap.String("event", event.String()),
			zap.Error(err))
	}
}
