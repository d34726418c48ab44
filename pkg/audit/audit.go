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

// Package audit emits the operational audit trail. Event names are stable,
// downstream log processing joins on them across daemons.
package audit

import (
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// Audit event names.
const (
	ReservationEnqueued          = "reservation_enqueued"
	ReservationEnqueuedDuplicate = "reservation_enqueued_duplicate"
	GetTask                      = "node_monitor_get_task"
	GetTaskComplete              = "node_monitor_get_task_complete"
	GetTaskNoTask                = "node_monitor_get_task_no_task"
	GetTaskFailed                = "node_monitor_get_task_failed"
	TaskLaunch                   = "node_monitor_task_launch"
	TaskLaunchFailed             = "node_monitor_task_launch_failed"
	TaskCompleted                = "task_completed"
)

// Emit writes one audit record. Fields identify the reservation or task the
// event applies to.
func Emit(event string, fields ...zap.Field) {
	log.Log(log.Audit).Info(event, fields...)
}
