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

	pool "github.com/jolestar/go-commons-pool"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/audit"
	"github.com/kestrelproject/kestrel-core/pkg/common/utils"
	"github.com/kestrelproject/kestrel-core/pkg/locking"
	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics"
	"github.com/kestrelproject/kestrel-core/pkg/trace"
)

// taskPuller converts released reservations into ready-to-launch records by
// asynchronously calling getTask on the originating scheduler. Clients are
// borrowed from per-address pools: healthy clients return to the pool,
// clients that saw an RPC error are invalidated so the next reservation for
// that scheduler dials fresh.
type taskPuller struct {
	nodeMonitorAddress string
	getTaskPort        int
	factory            SchedulerClientFactory
	monitor            *NodeMonitor

	poolLock locking.Mutex
	pools    map[string]*pool.ObjectPool

	ctx    context.Context
	cancel context.CancelFunc
}

func newTaskPuller(nodeMonitorAddress string, getTaskPort int, factory SchedulerClientFactory, monitor *NodeMonitor) *taskPuller {
	ctx, cancel := context.WithCancel(context.Background())
	return &taskPuller{
		nodeMonitorAddress: nodeMonitorAddress,
		getTaskPort:        getTaskPort,
		factory:            factory,
		monitor:            monitor,
		pools:              make(map[string]*pool.ObjectPool),
		ctx:                ctx,
		cancel:             cancel,
	}
}

// makeRunnable starts the asynchronous pull for a released reservation.
// It is called with the node monitor lock held and must not block: all real
// work happens on a fresh goroutine.
func (p *taskPuller) makeRunnable(reservation *TaskReservation) {
	go p.pull(reservation)
}

func (p *taskPuller) stop() {
	p.cancel()
}

func (p *taskPuller) pull(reservation *TaskReservation) {
	span := trace.StartSpan("getTask", map[string]interface{}{
		"requestID": reservation.RequestID,
		"scheduler": reservation.SchedulerAddress,
	})
	defer span.Finish()

	address, err := utils.GetTaskAddress(reservation.SchedulerAddress, p.getTaskPort)
	if err != nil {
		log.Log(log.Puller).Error("reservation carries an unusable scheduler address",
			zap.String("requestID", reservation.RequestID),
			zap.String("schedulerAddress", reservation.SchedulerAddress),
			zap.Error(err))
		p.failReservation(reservation)
		return
	}

	audit.Emit(audit.GetTask,
		zap.String("requestID", reservation.RequestID),
		zap.String("reservationID", reservation.ReservationID),
		zap.String("nodeMonitor", p.nodeMonitorAddress))

	client, err := p.borrowClient(address)
	if err != nil {
		log.Log(log.Puller).Warn("unable to create client to contact scheduler",
			zap.String("address", address),
			zap.String("requestID", reservation.RequestID),
			zap.Error(err))
		metrics.GetNodeMonitorMetrics().IncGetTaskError()
		p.failReservation(reservation)
		return
	}

	specs, err := client.GetTask(p.ctx, reservation.RequestID, p.nodeMonitorAddress)
	if err != nil {
		// do not return an errored client to the pool
		p.dropClient(address, client)
		log.Log(log.Puller).Warn("getTask failed",
			zap.String("address", address),
			zap.String("requestID", reservation.RequestID),
			zap.Error(err))
		audit.Emit(audit.GetTaskFailed,
			zap.String("requestID", reservation.RequestID),
			zap.String("reservationID", reservation.ReservationID))
		metrics.GetNodeMonitorMetrics().IncGetTaskError()
		p.failReservation(reservation)
		return
	}
	p.returnClient(address, client)

	audit.Emit(audit.GetTaskComplete,
		zap.String("requestID", reservation.RequestID),
		zap.String("reservationID", reservation.ReservationID),
		zap.String("nodeMonitor", p.nodeMonitorAddress))

	if len(specs) == 0 {
		log.Log(log.Puller).Debug("didn't receive a task for request",
			zap.String("requestID", reservation.RequestID))
		metrics.GetNodeMonitorMetrics().IncGetTaskEmpty()
		reservation.HandleReservationEvent(RejectReservation)
		p.monitor.noTaskForReservation(reservation)
		return
	}
	if len(specs) > 1 {
		log.Log(log.Puller).Warn("received multiple task launch specifications, ignoring all but the first one",
			zap.String("requestID", reservation.RequestID),
			zap.Int("count", len(specs)))
	}
	reservation.Spec = specs[0]
	metrics.GetNodeMonitorMetrics().IncGetTaskSuccess()
	log.Log(log.Puller).Debug("received task for request",
		zap.String("requestID", reservation.RequestID),
		zap.String("taskID", reservation.Spec.GetTaskID()))
	reservation.HandleReservationEvent(ReceiveTask)
	p.monitor.enqueueRunnable(reservation)
}

func (p *taskPuller) failReservation(reservation *TaskReservation) {
	reservation.HandleReservationEvent(FailReservation)
	p.monitor.noTaskForReservation(reservation)
}

func (p *taskPuller) borrowClient(address string) (SchedulerClient, error) {
	obj, err := p.poolFor(address).BorrowObject(p.ctx)
	if err != nil {
		return nil, err
	}
	return obj.(SchedulerClient), nil
}

func (p *taskPuller) returnClient(address string, client SchedulerClient) {
	if err := p.poolFor(address).ReturnObject(p.ctx, client); err != nil {
		log.Log(log.Puller).Warn("failed to return scheduler client to pool",
			zap.String("address", address),
			zap.Error(err))
	}
}

func (p *taskPuller) dropClient(address string, client SchedulerClient) {
	if err := p.poolFor(address).InvalidateObject(p.ctx, client); err != nil {
		log.Log(log.Puller).Warn("failed to invalidate scheduler client",
			zap.String("address", address),
			zap.Error(err))
	}
}

func (p *taskPuller) poolFor(address string) *pool.ObjectPool {
	p.poolLock.Lock()
	defer p.poolLock.Unlock()
	if existing, ok := p.pools[address]; ok {
		return existing
	}
	factory := pool.NewPooledObjectFactory(
		func(ctx context.Context) (interface{}, error) {
			return p.factory(address)
		},
		func(ctx context.Context, object *pool.PooledObject) error {
			return object.Object.(SchedulerClient).Close()
		},
		nil, nil, nil)
	created := pool.NewObjectPoolWithDefaultConfig(p.ctx, factory)
	p.pools[address] = created
	return created
}
