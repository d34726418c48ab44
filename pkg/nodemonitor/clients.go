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

	"github.com/kestrelproject/kestrel-core/pkg/api"
)

// SchedulerClient talks to one scheduler's getTask service. The engine only
// sees this interface, the transport implementation is injected so tests run
// without a network.
type SchedulerClient interface {
	GetTask(ctx context.Context, requestID, nodeMonitorAddress string) ([]*api.TaskLaunchSpec, error)
	Close() error
}

// BackendClient talks to one application backend.
type BackendClient interface {
	LaunchTask(ctx context.Context, request *api.LaunchTaskRequest) error
	Close() error
}

// SchedulerClientFactory creates a client for the scheduler getTask address.
type SchedulerClientFactory func(address string) (SchedulerClient, error)

// BackendClientFactory creates a client for an application backend address.
type BackendClientFactory func(address string) (BackendClient, error)
