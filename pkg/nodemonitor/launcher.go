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
	"time"

	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/audit"
	"github.com/kestrelproject/kestrel-core/pkg/locking"
	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics"
	"github.com/kestrelproject/kestrel-core/pkg/trace"
)

// taskLauncher drains the runnable queue with a fixed pool of workers and
// dispatches each reservation to its application backend. The worker count
// also caps the cached clients per backend, so the degenerate case of every
// worker talking to one backend cannot exhaust connection limits.
type taskLauncher struct {
	workers int
	factory BackendClientFactory
	monitor *NodeMonitor

	clientsLock locking.Mutex
	clients     map[string]chan BackendClient

	stop chan struct{}
	wg   sync.WaitGroup
}

func newTaskLauncher(workers int, factory BackendClientFactory, monitor *NodeMonitor) *taskLauncher {
	return &taskLauncher{
		workers: workers,
		factory: factory,
		monitor: monitor,
		clients: make(map[string]chan BackendClient),
		stop:    make(chan struct{}),
	}
}

func (l *taskLauncher) start() {
	for i := 0; i < l.workers; i++ {
		l.wg.Add(1)
		go l.run(i)
	}
	log.Log(log.Launcher).Info("task launcher started", zap.Int("workers", l.workers))
}

func (l *taskLauncher) shutdown() {
	close(l.stop)
	l.wg.Wait()
	l.clientsLock.Lock()
	defer l.clientsLock.Unlock()
	for _, cached := range l.clients {
		for {
			select {
			case client := <-cached:
				_ = client.Close()
				continue
			default:
			}
			break
		}
	}
}

func (l *taskLauncher) run(worker int) {
	defer l.wg.Done()
	for {
		select {
		case <-l.stop:
			return
		case reservation := <-l.monitor.runnable:
			l.launch(worker, reservation)
		}
	}
}

func (l *taskLauncher) launch(worker int, reservation *TaskReservation) {
	// the reservation's claim moves from "runnable reserved" to inUse here
	l.monitor.reservationDequeued(reservation)

	span := trace.StartSpan("launchTask", map[string]interface{}{
		"requestID": reservation.RequestID,
		"taskID":    reservation.Spec.GetTaskID(),
		"backend":   reservation.BackendAddress,
	})
	defer span.Finish()

	audit.Emit(audit.TaskLaunch,
		zap.String("requestID", reservation.RequestID),
		zap.String("nodeMonitor", l.monitor.address),
		zap.String("taskID", reservation.Spec.GetTaskID()),
		zap.String("previousRequestID", reservation.PreviousRequestID),
		zap.String("previousTaskID", reservation.PreviousTaskID))

	client, err := l.borrowClient(reservation.BackendAddress)
	if err != nil {
		log.Log(log.Launcher).Error("unable to create client for application backend",
			zap.String("backend", reservation.BackendAddress),
			zap.Error(err))
		l.launchFailed(reservation)
		return
	}

	request := &api.LaunchTaskRequest{
		Message:            reservation.Spec.GetMessage(),
		TaskID:             reservation.FullTaskID(),
		User:               reservation.User,
		EstimatedResources: reservation.EstimatedResources.ToProto(),
	}
	start := time.Now()
	err = client.LaunchTask(context.Background(), request)
	if err != nil {
		log.Log(log.Launcher).Error("unable to launch task on backend",
			zap.String("backend", reservation.BackendAddress),
			zap.String("taskID", reservation.Spec.GetTaskID()),
			zap.Error(err))
		_ = client.Close()
		l.launchFailed(reservation)
		return
	}
	metrics.GetNodeMonitorMetrics().ObserveLaunchLatency(start)
	metrics.GetNodeMonitorMetrics().IncTasksLaunched()
	l.returnClient(reservation.BackendAddress, client)

	log.Log(log.Launcher).Debug("launched task on application backend",
		zap.Int("worker", worker),
		zap.String("requestID", reservation.RequestID),
		zap.String("taskID", reservation.Spec.GetTaskID()))
	// terminal for the launcher, accounting settles on tasksFinished
	reservation.HandleReservationEvent(AckTask)
}

func (l *taskLauncher) launchFailed(reservation *TaskReservation) {
	audit.Emit(audit.TaskLaunchFailed,
		zap.String("requestID", reservation.RequestID),
		zap.String("taskID", reservation.Spec.GetTaskID()),
		zap.String("backend", reservation.BackendAddress))
	metrics.GetNodeMonitorMetrics().IncLaunchFailures()
	reservation.HandleReservationEvent(FailReservation)
	l.monitor.backendLaunchFailed(reservation)
}

// borrowClient takes a cached client for the backend or dials a new one.
// At most `workers` clients are ever cached per backend.
func (l *taskLauncher) borrowClient(address string) (BackendClient, error) {
	cached := l.cacheFor(address)
	select {
	case client := <-cached:
		return client, nil
	default:
		return l.factory(address)
	}
}

func (l *taskLauncher) returnClient(address string, client BackendClient) {
	cached := l.cacheFor(address)
	select {
	case cached <- client:
	default:
		// cache full, drop the surplus connection
		_ = client.Close()
	}
}

func (l *taskLauncher) cacheFor(address string) chan BackendClient {
	l.clientsLock.Lock()
	defer l.clientsLock.Unlock()
	cached, ok := l.clients[address]
	if !ok {
		cached = make(chan BackendClient, l.workers)
		l.clients[address] = cached
	}
	return cached
}
