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

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
)

// SchedulerClient is the grpc implementation of the puller's client
// interface, one connection per instance so the pool can drop broken ones
// individually.
type SchedulerClient struct {
	conn   *grpc.ClientConn
	client api.GetTaskServiceClient
}

var _ nodemonitor.SchedulerClient = &SchedulerClient{}

func NewSchedulerClient(address string) (*SchedulerClient, error) {
	conn, err := dial(address)
	if err != nil {
		return nil, err
	}
	return &SchedulerClient{
		conn:   conn,
		client: api.NewGetTaskServiceClient(conn),
	}, nil
}

func (c *SchedulerClient) GetTask(ctx context.Context, requestID, nodeMonitorAddress string) ([]*api.TaskLaunchSpec, error) {
	response, err := c.client.GetTask(ctx, &api.GetTaskRequest{
		RequestID:          requestID,
		NodeMonitorAddress: nodeMonitorAddress,
	})
	if err != nil {
		return nil, err
	}
	return response.GetTaskSpecs(), nil
}

func (c *SchedulerClient) Close() error {
	return c.conn.Close()
}

// BackendClient is the grpc implementation of the launcher's client
// interface.
type BackendClient struct {
	conn   *grpc.ClientConn
	client api.BackendServiceClient
}

var _ nodemonitor.BackendClient = &BackendClient{}

func NewBackendClient(address string) (*BackendClient, error) {
	conn, err := dial(address)
	if err != nil {
		return nil, err
	}
	return &BackendClient{
		conn:   conn,
		client: api.NewBackendServiceClient(conn),
	}, nil
}

func (c *BackendClient) LaunchTask(ctx context.Context, request *api.LaunchTaskRequest) error {
	_, err := c.client.LaunchTask(ctx, request)
	return err
}

func (c *BackendClient) Close() error {
	return c.conn.Close()
}

// SchedulerClientFactory adapts NewSchedulerClient to the engine's factory
// signature.
func SchedulerClientFactory() nodemonitor.SchedulerClientFactory {
	return func(address string) (nodemonitor.SchedulerClient, error) {
		return NewSchedulerClient(address)
	}
}

// BackendClientFactory adapts NewBackendClient to the engine's factory
// signature.
func BackendClientFactory() nodemonitor.BackendClientFactory {
	return func(address string) (nodemonitor.BackendClient, error) {
		return NewBackendClient(address)
	}
}

func dial(address string) (*grpc.ClientConn, error) {
	// peers are unauthenticated by design, see the deployment notes
	conn, err := grpc.Dial(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", address)
	}
	return conn, nil
}
