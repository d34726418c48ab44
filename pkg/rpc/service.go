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

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
)

// nodeMonitorService exposes the admission engine over grpc. Protocol
// violations map to InvalidArgument, the engine never returns transient
// errors on this surface.
type nodeMonitorService struct {
	monitor *nodemonitor.NodeMonitor
}

var _ api.NodeMonitorServiceServer = &nodeMonitorService{}

// RegisterNodeMonitorService wires the engine into a grpc server.
func RegisterNodeMonitorService(server *grpc.Server, monitor *nodemonitor.NodeMonitor) {
	api.RegisterNodeMonitorServiceServer(server, &nodeMonitorService{monitor: monitor})
}

func (s *nodeMonitorService) EnqueueTaskReservations(_ context.Context, request *api.EnqueueTaskReservationsRequest) (*api.EnqueueTaskReservationsResponse, error) {
	if err := s.monitor.EnqueueTaskReservations(request); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &api.EnqueueTaskReservationsResponse{}, nil
}

func (s *nodeMonitorService) TasksFinished(_ context.Context, request *api.TasksFinishedRequest) (*api.TasksFinishedResponse, error) {
	s.monitor.TasksFinished(request.GetTasks())
	return &api.TasksFinishedResponse{}, nil
}

func (s *nodeMonitorService) GetResourceUsage(_ context.Context, request *api.GetResourceUsageRequest) (*api.GetResourceUsageResponse, error) {
	inUse, queueLength := s.monitor.GetResourceUsage(request.GetAppID())
	return &api.GetResourceUsageResponse{
		InUse:       inUse.ToProto(),
		QueueLength: int32(queueLength),
	}, nil
}

func (s *nodeMonitorService) RegisterBackend(_ context.Context, request *api.RegisterBackendRequest) (*api.RegisterBackendResponse, error) {
	if err := s.monitor.RegisterBackend(request.GetAppID(), request.GetBackendAddress()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &api.RegisterBackendResponse{}, nil
}
