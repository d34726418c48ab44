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
	"testing"

	"gotest.tools/v3/assert"
)

func TestReservationHappyPath(t *testing.T) {
	reservation := newTestReservation("r1", "app", 1024, 1)
	assert.Equal(t, reservation.CurrentState(), Submitted.String())

	reservation.HandleReservationEvent(QueueReservation)
	assert.Equal(t, reservation.CurrentState(), Queued.String())

	reservation.HandleReservationEvent(ReleaseReservation)
	assert.Equal(t, reservation.CurrentState(), Fetching.String())

	reservation.HandleReservationEvent(ReceiveTask)
	assert.Equal(t, reservation.CurrentState(), Runnable.String())

	reservation.HandleReservationEvent(LaunchTask)
	assert.Equal(t, reservation.CurrentState(), Launching.String())

	reservation.HandleReservationEvent(AckTask)
	assert.Equal(t, reservation.CurrentState(), Launched.String())
}

func TestReservationImmediateRelease(t *testing.T) {
	// a policy that releases on submit skips the Queued state
	reservation := newTestReservation("r1", "app", 1024, 1)
	reservation.HandleReservationEvent(ReleaseReservation)
	assert.Equal(t, reservation.CurrentState(), Fetching.String())
}

func TestReservationNoTask(t *testing.T) {
	reservation := newTestReservation("r1", "app", 1024, 1)
	reservation.HandleReservationEvent(ReleaseReservation)
	reservation.HandleReservationEvent(RejectReservation)
	assert.Equal(t, reservation.CurrentState(), NoTask.String())
}

func TestReservationFailures(t *testing.T) {
	fetchFail := newTestReservation("r1", "app", 1024, 1)
	fetchFail.HandleReservationEvent(ReleaseReservation)
	fetchFail.HandleReservationEvent(FailReservation)
	assert.Equal(t, fetchFail.CurrentState(), Failed.String())

	launchFail := newTestReservation("r2", "app", 1024, 1)
	launchFail.HandleReservationEvent(ReleaseReservation)
	launchFail.HandleReservationEvent(ReceiveTask)
	launchFail.HandleReservationEvent(LaunchTask)
	launchFail.HandleReservationEvent(FailReservation)
	assert.Equal(t, launchFail.CurrentState(), Failed.String())
}

func TestReservationInvalidTransitionIsSwallowed(t *testing.T) {
	reservation := newTestReservation("r1", "app", 1024, 1)
	// launching straight out of Submitted is a coding error, the state must
	// not move and the call must not panic
	reservation.HandleReservationEvent(LaunchTask)
	assert.Equal(t, reservation.CurrentState(), Submitted.String())
}
