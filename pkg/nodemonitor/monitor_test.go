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
	"sync"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
)

type getTaskResponse struct {
	specs []*api.TaskLaunchSpec
	err   error
}

// fakeSchedulerService stands in for the scheduler side of getTask. Queued
// responses are keyed by requestID so concurrent pulls cannot cross.
type fakeSchedulerService struct {
	mu             sync.Mutex
	byRequest      map[string][]getTaskResponse
	calls          []string
	clientsCreated int
	clientsClosed  int
}

func newFakeSchedulerService() *fakeSchedulerService {
	return &fakeSchedulerService{byRequest: make(map[string][]getTaskResponse)}
}

func (f *fakeSchedulerService) push(requestID string, response getTaskResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byRequest[requestID] = append(f.byRequest[requestID], response)
}

func (f *fakeSchedulerService) pop(requestID string) getTaskResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, requestID)
	queue := f.byRequest[requestID]
	if len(queue) == 0 {
		return getTaskResponse{}
	}
	f.byRequest[requestID] = queue[1:]
	return queue[0]
}

func (f *fakeSchedulerService) created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clientsCreated
}

func (f *fakeSchedulerService) closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clientsClosed
}

func (f *fakeSchedulerService) factory() SchedulerClientFactory {
	return func(address string) (SchedulerClient, error) {
		f.mu.Lock()
		f.clientsCreated++
		f.mu.Unlock()
		return &fakeSchedulerClient{service: f}, nil
	}
}

type fakeSchedulerClient struct {
	service *fakeSchedulerService
}

func (c *fakeSchedulerClient) GetTask(_ context.Context, requestID, _ string) ([]*api.TaskLaunchSpec, error) {
	response := c.service.pop(requestID)
	return response.specs, response.err
}

func (c *fakeSchedulerClient) Close() error {
	c.service.mu.Lock()
	defer c.service.mu.Unlock()
	c.service.clientsClosed++
	return nil
}

// fakeBackendService stands in for the application backend.
type fakeBackendService struct {
	mu       sync.Mutex
	err      error
	launches chan *api.LaunchTaskRequest
}

func newFakeBackendService() *fakeBackendService {
	return &fakeBackendService{launches: make(chan *api.LaunchTaskRequest, 16)}
}

func (f *fakeBackendService) failWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeBackendService) factory() BackendClientFactory {
	return func(address string) (BackendClient, error) {
		return &fakeBackendClient{service: f}, nil
	}
}

type fakeBackendClient struct {
	service *fakeBackendService
}

func (c *fakeBackendClient) LaunchTask(_ context.Context, request *api.LaunchTaskRequest) error {
	c.service.mu.Lock()
	err := c.service.err
	c.service.mu.Unlock()
	if err != nil {
		return err
	}
	c.service.launches <- request
	return nil
}

func (c *fakeBackendClient) Close() error {
	return nil
}

func newTestMonitor(t *testing.T, policy string, scheduler *fakeSchedulerService, backend *fakeBackendService) *NodeMonitor {
	monitor, err := NewNodeMonitor(Options{
		Address:               "worker1:20501",
		Capacity:              resources.NewResourceFromMemCPU(4096, 2),
		PolicyName:            policy,
		Workers:               2,
		RunnableQueueCapacity: 8,
		GetTaskPort:           20507,
		SchedulerClients:      scheduler.factory(),
		BackendClients:        backend.factory(),
	})
	assert.NilError(t, err, "monitor construction failed")
	assert.NilError(t, monitor.RegisterBackend("testapp", "backend1:20101"))
	monitor.Start()
	t.Cleanup(monitor.Stop)
	return monitor
}

func enqueueRequest(requestID string, numTasks int32, mem, cpu int64) *api.EnqueueTaskReservationsRequest {
	return &api.EnqueueTaskReservationsRequest{
		RequestID: requestID,
		AppID:     "testapp",
		User:      &api.UserGroupInfo{User: "alice"},
		EstimatedResources: &api.Resource{Resources: map[string]int64{
			resources.Memory: mem,
			resources.VCore:  cpu,
		}},
		SchedulerAddress: "scheduler1:20503",
		NumTasks:         numTasks,
	}
}

func (nm *NodeMonitor) jobCountForTest() int {
	nm.RLock()
	defer nm.RUnlock()
	return nm.usage.jobCount()
}

func (nm *NodeMonitor) queuedForTest() int {
	nm.RLock()
	defer nm.RUnlock()
	return nm.policy.QueuedReservations()
}

func waitFor(t *testing.T, what string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func receiveLaunch(t *testing.T, backend *fakeBackendService) *api.LaunchTaskRequest {
	t.Helper()
	select {
	case request := <-backend.launches:
		return request
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a task launch")
		return nil
	}
}

// single reservation, the scheduler returns a task, the backend reports the
// completion: accounting must end empty with nothing in use
func TestSingleReservationLaunches(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	scheduler.push("r1", getTaskResponse{specs: []*api.TaskLaunchSpec{
		{TaskID: "t1", Message: []byte("payload")},
	}})
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))

	launch := receiveLaunch(t, backend)
	assert.Equal(t, launch.TaskID.GetTaskID(), "t1")
	assert.Equal(t, launch.TaskID.GetRequestID(), "r1")
	assert.Equal(t, launch.TaskID.GetAppID(), "testapp")
	assert.Equal(t, launch.TaskID.GetSchedulerAddress(), "scheduler1:20503")
	assert.Equal(t, launch.User.GetUser(), "alice")
	assert.Equal(t, string(launch.GetMessage()), "payload")
	assert.Equal(t, launch.EstimatedResources.Resources[resources.Memory], int64(1024))

	// the launched task holds its claim until the backend reports it done
	inUse, _ := monitor.GetResourceUsage("testapp")
	assert.Equal(t, inUse.Resources[resources.Memory], resources.Quantity(1024))

	monitor.TasksFinished([]*api.FullTaskID{{
		TaskID: "t1", RequestID: "r1", AppID: "testapp", SchedulerAddress: "scheduler1:20503",
	}})

	assert.Equal(t, monitor.jobCountForTest(), 0, "accounting must be empty after completion")
	inUse, _ = monitor.GetResourceUsage("testapp")
	assert.Assert(t, inUse.IsEmpty(), "inUse must drop to zero after completion")
}

// the scheduler has no task left: no launch happens and the accounting is
// cleaned through the completion pathway
func TestNoTaskReturned(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	// no response pushed: the fake returns an empty spec list
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))

	waitFor(t, "accounting cleanup", func() bool { return monitor.jobCountForTest() == 0 })
	assert.Equal(t, len(backend.launches), 0, "no task must be launched")
	inUse, _ := monitor.GetResourceUsage("testapp")
	assert.Assert(t, inUse.IsEmpty(), "no-task reservation must not consume resources")
}

// slot reuse under the bounded policy: the second reservation is retained
// until the first task completes and is then pulled and launched; the
// previous-occupant ids it carries are checked in the bounded policy tests
func TestSlotReuseBoundedPolicy(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	scheduler.push("r2", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t1"}}})
	scheduler.push("r2", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t2"}}})
	monitor := newTestMonitor(t, PolicyBounded, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r2", 2, 4096, 2)))

	first := receiveLaunch(t, backend)
	assert.Equal(t, first.TaskID.GetTaskID(), "t1")
	assert.Equal(t, monitor.queuedForTest(), 1, "second reservation must be retained")

	monitor.TasksFinished([]*api.FullTaskID{{TaskID: "t1", RequestID: "r2", AppID: "testapp"}})

	second := receiveLaunch(t, backend)
	assert.Equal(t, second.TaskID.GetTaskID(), "t2")

	monitor.TasksFinished([]*api.FullTaskID{{TaskID: "t2", RequestID: "r2", AppID: "testapp"}})
	assert.Equal(t, monitor.jobCountForTest(), 0)
	inUse, _ := monitor.GetResourceUsage("testapp")
	assert.Assert(t, inUse.IsEmpty())
}

// a failing getTask drops the pooled client, terminates the reservation and
// the next reservation for the same scheduler dials fresh
func TestSchedulerFailureDropsClient(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	scheduler.push("r1", getTaskResponse{err: context.DeadlineExceeded})
	scheduler.push("r4", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t4"}}})
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))
	waitFor(t, "failed reservation cleanup", func() bool { return monitor.jobCountForTest() == 0 })
	waitFor(t, "client drop", func() bool { return scheduler.closed() == 1 })

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r4", 1, 1024, 1)))
	launch := receiveLaunch(t, backend)
	assert.Equal(t, launch.TaskID.GetTaskID(), "t4")
	assert.Equal(t, scheduler.created(), 2, "a fresh client must be dialed after the drop")
}

// concurrent submits from two schedulers on a worker that fits both: both
// launch and inUse never exceeds the capacity
func TestConcurrentSubmits(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	scheduler.push("r3", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t3"}}})
	scheduler.push("r4", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t4"}}})
	monitor := newTestMonitor(t, PolicyBounded, scheduler, backend)

	var wg sync.WaitGroup
	enqueueErrors := make(chan error, 2)
	for _, requestID := range []string{"r3", "r4"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			request := enqueueRequest(id, 1, 2048, 1)
			request.SchedulerAddress = "scheduler-" + id + ":20503"
			enqueueErrors <- monitor.EnqueueTaskReservations(request)
		}(requestID)
	}
	wg.Wait()
	close(enqueueErrors)
	for err := range enqueueErrors {
		assert.NilError(t, err, "concurrent enqueue failed")
	}

	capacity := resources.NewResourceFromMemCPU(4096, 2)
	launched := make(map[string]bool)
	for i := 0; i < 2; i++ {
		launch := receiveLaunch(t, backend)
		launched[launch.TaskID.GetTaskID()] = true
		inUse, _ := monitor.GetResourceUsage("testapp")
		assert.Assert(t, resources.FitIn(capacity, inUse),
			"inUse %s exceeds capacity %s", inUse.String(), capacity.String())
	}
	assert.Assert(t, launched["t3"] && launched["t4"], "both tasks must launch")

	monitor.TasksFinished([]*api.FullTaskID{
		{TaskID: "t3", RequestID: "r3", AppID: "testapp"},
		{TaskID: "t4", RequestID: "r4", AppID: "testapp"},
	})
	assert.Equal(t, monitor.jobCountForTest(), 0)
	inUse, _ := monitor.GetResourceUsage("testapp")
	assert.Assert(t, inUse.IsEmpty())
}

// a failing launch synthesizes the completion so the reservation's claim is
// not leaked
func TestLaunchFailureSynthesizesCompletion(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	backend.failWith(context.DeadlineExceeded)
	scheduler.push("r1", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t1"}}})
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))

	waitFor(t, "synthesized completion", func() bool { return monitor.jobCountForTest() == 0 })
	inUse, _ := monitor.GetResourceUsage("testapp")
	assert.Assert(t, inUse.IsEmpty(), "failed launch must return the claim")
}

func TestIntakeValidation(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	request := enqueueRequest("", 1, 1024, 1)
	assert.Assert(t, monitor.EnqueueTaskReservations(request) != nil, "empty request id accepted")

	request = enqueueRequest("r1", 0, 1024, 1)
	assert.Assert(t, monitor.EnqueueTaskReservations(request) != nil, "zero tasks accepted")

	request = enqueueRequest("r1", 1, 1024, 1)
	request.SchedulerAddress = "no-port"
	assert.Assert(t, monitor.EnqueueTaskReservations(request) != nil, "bad scheduler address accepted")

	request = enqueueRequest("r1", 1, 1024, 1)
	request.AppID = "unknown-app"
	assert.Assert(t, monitor.EnqueueTaskReservations(request) != nil, "unresolvable backend accepted")
}

func TestDuplicateEnqueueOverwrites(t *testing.T) {
	scheduler := newFakeSchedulerService()
	backend := newFakeBackendService()
	scheduler.push("r1", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t1"}}})
	scheduler.push("r1", getTaskResponse{specs: []*api.TaskLaunchSpec{{TaskID: "t2"}}})
	monitor := newTestMonitor(t, PolicyFIFO, scheduler, backend)

	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))
	assert.NilError(t, monitor.EnqueueTaskReservations(enqueueRequest("r1", 1, 1024, 1)))

	receiveLaunch(t, backend)
	receiveLaunch(t, backend)

	// the second enqueue overwrote the counter, a single completion settles
	// the whole record
	monitor.TasksFinished([]*api.FullTaskID{{TaskID: "t1", RequestID: "r1", AppID: "testapp"}})
	assert.Equal(t, monitor.jobCountForTest(), 0)
}
