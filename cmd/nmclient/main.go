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

// nmclient is a small manual test client for a running node monitor: it can
// register a backend, enqueue a reservation burst and query resource usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kestrelproject/kestrel-core/pkg/api"
)

func main() {
	target := flag.String("nm", "localhost:20501", "node monitor address")
	op := flag.String("op", "usage", "operation: usage | enqueue | register")
	appID := flag.String("app", "testapp", "application id")
	requestID := flag.String("request", "request-1", "request id for enqueue")
	numTasks := flag.Int("tasks", 1, "reservations to enqueue")
	scheduler := flag.String("scheduler", "localhost:20503", "scheduler address for enqueue")
	backend := flag.String("backend", "localhost:20101", "backend address for register")
	mem := flag.Int64("mem", 1024, "estimated memory per task")
	cpu := flag.Int64("cpu", 1, "estimated vcores per task")
	flag.Parse()

	conn, err := grpc.Dial(*target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", *target, err)
		os.Exit(1)
	}
	defer conn.Close()
	client := api.NewNodeMonitorServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch *op {
	case "usage":
		response, usageErr := client.GetResourceUsage(ctx, &api.GetResourceUsageRequest{AppID: *appID})
		exitOnError(usageErr)
		fmt.Printf("inUse: %v queueLength: %d\n", response.GetInUse().GetResources(), response.GetQueueLength())
	case "enqueue":
		_, enqueueErr := client.EnqueueTaskReservations(ctx, &api.EnqueueTaskReservationsRequest{
			RequestID: *requestID,
			AppID:     *appID,
			User:      &api.UserGroupInfo{User: os.Getenv("USER")},
			EstimatedResources: &api.Resource{Resources: map[string]int64{
				"memory": *mem,
				"vcore":  *cpu,
			}},
			SchedulerAddress: *scheduler,
			NumTasks:         int32(*numTasks),
		})
		exitOnError(enqueueErr)
		fmt.Printf("enqueued %d reservations for %s\n", *numTasks, *requestID)
	case "register":
		_, registerErr := client.RegisterBackend(ctx, &api.RegisterBackendRequest{
			AppID:          *appID,
			BackendAddress: *backend,
		})
		exitOnError(registerErr)
		fmt.Printf("registered backend %s for app %s\n", *backend, *appID)
	default:
		fmt.Fprintf(os.Stderr, "unknown operation %q\n", *op)
		os.Exit(2)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "rpc failed: %v\n", err)
		os.Exit(1)
	}
}
