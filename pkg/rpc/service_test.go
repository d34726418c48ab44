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

package rpc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gotest.tools/v3/assert"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
)

type idleSchedulerClient struct{}

func (idleSchedulerClient) GetTask(context.Context, string, string) ([]*api.TaskLaunchSpec, error) {
	return nil, nil
}
func (idleSchedulerClient) Close() error { return nil }

type idleBackendClient struct{}

func (idleBackendClient) LaunchTask(context.Context, *api.LaunchTaskRequest) error { return nil }
func (idleBackendClient) Close() error                                             { return nil }

func newTestService(t *testing.T) *nodeMonitorService {
	monitor, err := nodemonitor.NewNodeMonitor(nodemonitor.Options{
		Address:    "worker1:20501",
		Capacity:   resources.NewResourceFromMemCPU(4096, 2),
		PolicyName: nodemonitor.PolicyFIFO,
		Workers:    1,
		SchedulerClients: func(string) (nodemonitor.SchedulerClient, error) {
			return idleSchedulerClient{}, nil
		},
		BackendClients: func(string) (nodemonitor.BackendClient, error) {
			return idleBackendClient{}, nil
		},
	})
	assert.NilError(t, err, "monitor construction failed")
	return &nodeMonitorService{monitor: monitor}
}

func TestEnqueueRejectsProtocolErrors(t *testing.T) {
	service := newTestService(t)

	_, err := service.EnqueueTaskReservations(context.Background(), &api.EnqueueTaskReservationsRequest{
		AppID:            "testapp",
		SchedulerAddress: "scheduler1:20503",
		NumTasks:         1,
	})
	assert.Assert(t, err != nil, "request without a request id accepted")
	assert.Equal(t, status.Code(err), codes.InvalidArgument)
}

func TestRegisterBackendMapsErrors(t *testing.T) {
	service := newTestService(t)

	_, err := service.RegisterBackend(context.Background(), &api.RegisterBackendRequest{
		AppID:          "testapp",
		BackendAddress: "not-an-address",
	})
	assert.Assert(t, err != nil, "invalid backend address accepted")
	assert.Equal(t, status.Code(err), codes.InvalidArgument)

	_, err = service.RegisterBackend(context.Background(), &api.RegisterBackendRequest{
		AppID:          "testapp",
		BackendAddress: "backend1:20101",
	})
	assert.NilError(t, err, "valid registration rejected")
}

func TestGetResourceUsageEmptyNode(t *testing.T) {
	service := newTestService(t)

	response, err := service.GetResourceUsage(context.Background(), &api.GetResourceUsageRequest{AppID: "testapp"})
	assert.NilError(t, err)
	assert.Equal(t, len(response.GetInUse().GetResources()), 0)
	assert.Equal(t, response.GetQueueLength(), int32(0))
}

func TestTasksFinishedUnknownIDKeepsServing(t *testing.T) {
	service := newTestService(t)

	// completions for unknown ids are absorbed, see the accounting rules
	_, err := service.TasksFinished(context.Background(), &api.TasksFinishedRequest{
		Tasks: []*api.FullTaskID{{TaskID: "t1", RequestID: "ghost", AppID: "testapp"}},
	})
	assert.NilError(t, err)
}
