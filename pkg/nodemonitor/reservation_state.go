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
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// ----------------------------------
// reservation events
// ----------------------------------
type ReservationEvent int

const (
	// QueueReservation: the admission policy retains the reservation.
	QueueReservation ReservationEvent = iota
	// ReleaseReservation: the policy hands it to the puller.
	ReleaseReservation
	// ReceiveTask: getTask returned a task spec.
	ReceiveTask
	// LaunchTask: a launcher worker dequeued the reservation.
	LaunchTask
	// AckTask: the backend acknowledged the launch.
	AckTask
	// RejectReservation: getTask returned no task.
	RejectReservation
	// FailReservation: an RPC to the scheduler or backend failed.
	FailReservation
)

func (re ReservationEvent) String() string {
	return [...]string{"Queue", "Release", "Receive", "Launch", "Ack", "Reject", "Fail"}[re]
}

// ----------------------------------
// reservation states
// Launched, NoTask and Failed are terminal: the engine drops its last
// reference there. Job accounting of a Launched reservation settles
// separately on the backend's tasksFinished callback; NoTask and Failed
// reservations settle it directly through the completion pathway.
// ----------------------------------
type ReservationState int

const (
	Submitted ReservationState = iota
	Queued
	Fetching
	Runnable
	Launching
	Launched
	NoTask
	Failed
)

func (rs ReservationState) String() string {
	return [...]string{"Submitted", "Queued", "Fetching", "Runnable", "Launching", "Launched", "NoTask", "Failed"}[rs]
}

func NewReservationState() *fsm.FSM {
	return fsm.NewFSM(
		Submitted.String(), fsm.Events{
			{
				Name: QueueReservation.String(),
				Src:  []string{Submitted.String()},
				Dst:  Queued.String(),
			}, {
				Name: ReleaseReservation.String(),
				Src:  []string{Submitted.String(), Queued.String()},
				Dst:  Fetching.String(),
			}, {
				Name: ReceiveTask.String(),
				Src:  []string{Fetching.String()},
				Dst:  Runnable.String(),
			}, {
				Name: LaunchTask.String(),
				Src:  []string{Runnable.String()},
				Dst:  Launching.String(),
			}, {
				Name: AckTask.String(),
				Src:  []string{Launching.String()},
				Dst:  Launched.String(),
			}, {
				Name: RejectReservation.String(),
				Src:  []string{Fetching.String()},
				Dst:  NoTask.String(),
			}, {
				Name: FailReservation.String(),
				Src:  []string{Fetching.String(), Launching.String()},
				Dst:  Failed.String(),
			},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, event *fsm.Event) {
				reservation, ok := event.Args[0].(*TaskReservation)
				if !ok {
					return
				}
				log.Log(log.NodeMonitor).Debug("reservation transition",
					zap.String("reservationID", reservation.ReservationID),
					zap.String("requestID", reservation.RequestID),
					zap.String("source", event.Src),
					zap.String("destination", event.Dst),
					zap.String("event", event.Event))
			},
		},
	)
}

func stateContext() context.Context {
	return context.Background()
}
