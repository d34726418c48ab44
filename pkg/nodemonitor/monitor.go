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
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/api"
	"github.com/kestrelproject/kestrel-core/pkg/audit"
	"github.com/kestrelproject/kestrel-core/pkg/common/configs"
	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
	"github.com/kestrelproject/kestrel-core/pkg/common/utils"
	"github.com/kestrelproject/kestrel-core/pkg/locking"
	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics"
)

// Options carries the construction parameters of the admission engine.
type Options struct {
	// Address is the host:port this node monitor serves intake on, sent to
	// schedulers as the getTask callback identity.
	Address string
	// Capacity is the immutable node resource vector.
	Capacity *resources.Resource
	// PolicyName selects the admission policy, see policy.go.
	PolicyName string
	// Workers is the launcher pool size.
	Workers int
	// RunnableQueueCapacity bounds the runnable queue, zero or negative
	// falls back to the configured default.
	RunnableQueueCapacity int
	// GetTaskPort is the well-known port schedulers serve getTask on.
	GetTaskPort int

	SchedulerClients SchedulerClientFactory
	BackendClients   BackendClientFactory
}

// NodeMonitor is the per-worker admission engine: it accepts reservation
// bursts from many schedulers, queues them under the admission policy, pulls
// task specs from the owning schedulers and hands ready tasks to the
// launcher pool.
//
// The embedded lock is the single consistency group of the engine: it owns
// the admission policy state, the per-job accounting and the inUse vector.
type NodeMonitor struct {
	locking.RWMutex

	address string
	policy  TaskPolicy
	usage   *usageTracker

	// reservations whose spec arrived and are waiting for a launcher;
	// runnableReserved mirrors the queue's resource claims for free-space
	// reporting and is maintained under the lock
	runnable         chan *TaskReservation
	runnableReserved *resources.Resource

	puller   *taskPuller
	launcher *taskLauncher
	backends *gocache.Cache

	nmMetrics *metrics.NodeMonitorMetrics
}

// NewNodeMonitor builds the engine from explicit options.
func NewNodeMonitor(opts Options) (*NodeMonitor, error) {
	if opts.Capacity.IsEmpty() {
		return nil, errors.New("node capacity must not be empty")
	}
	if opts.Workers <= 0 {
		return nil, errors.New("launcher pool size must be positive")
	}
	if opts.SchedulerClients == nil || opts.BackendClients == nil {
		return nil, errors.New("client factories must be provided")
	}
	queueCap := opts.RunnableQueueCapacity
	if queueCap <= 0 {
		queueCap = configs.DefaultRunnableQueueCapacity
	}

	nm := &NodeMonitor{
		address:          opts.Address,
		usage:            newUsageTracker(opts.Capacity),
		runnable:         make(chan *TaskReservation, queueCap),
		runnableReserved: resources.NewResource(),
		backends:         gocache.New(gocache.NoExpiration, 0),
		nmMetrics:        metrics.GetNodeMonitorMetrics(),
	}
	nm.puller = newTaskPuller(opts.Address, opts.GetTaskPort, opts.SchedulerClients, nm)
	nm.launcher = newTaskLauncher(opts.Workers, opts.BackendClients, nm)

	policy, err := NewTaskPolicy(opts.PolicyName, opts.Capacity, nm.puller.makeRunnable)
	if err != nil {
		return nil, err
	}
	nm.policy = policy

	for name, quantity := range opts.Capacity.Resources {
		nm.nmMetrics.SetResourceCapacity(name, int64(quantity))
	}
	log.Log(log.NodeMonitor).Info("node monitor created",
		zap.String("address", opts.Address),
		zap.String("policy", opts.PolicyName),
		zap.Int("workers", opts.Workers),
		zap.String("capacity", opts.Capacity.String()))
	return nm, nil
}

// NewNodeMonitorFromConfig builds the engine from the configuration map,
// registering any statically configured backends.
func NewNodeMonitorFromConfig(schedulers SchedulerClientFactory, backends BackendClientFactory) (*NodeMonitor, error) {
	capacity := resources.NewResourceFromMemCPU(
		resources.Quantity(configs.GetInt(configs.NMCapacityMem)),
		resources.Quantity(configs.GetInt(configs.NMCapacityCPU)))
	nm, err := NewNodeMonitor(Options{
		Address:               utils.JoinHostPort(utils.HostName(), configs.GetInt(configs.NMPort)),
		Capacity:              capacity,
		PolicyName:            configs.Get(configs.NMPolicy),
		Workers:               configs.GetCPUCores(),
		RunnableQueueCapacity: configs.GetInt(configs.NMRunnableQueueCapacity),
		GetTaskPort:           configs.GetInt(configs.GetTaskPort),
		SchedulerClients:      schedulers,
		BackendClients:        backends,
	})
	if err != nil {
		return nil, err
	}
	static, err := utils.ParseBackendList(configs.Get(configs.StaticAppBackends))
	if err != nil {
		return nil, err
	}
	for appID, address := range static {
		if err = nm.RegisterBackend(appID, address); err != nil {
			return nil, err
		}
	}
	// the scheduler list is informational for the node monitor, schedulers
	// identify themselves per reservation; a broken list still fails startup
	schedulerList, err := utils.ParseAddressList(configs.Get(configs.StaticSchedulers))
	if err != nil {
		return nil, err
	}
	if len(schedulerList) > 0 {
		log.Log(log.NodeMonitor).Info("static scheduler membership configured",
			zap.Strings("schedulers", schedulerList))
	}
	return nm, nil
}

// Start spins up the launcher pool.
func (nm *NodeMonitor) Start() {
	nm.launcher.start()
}

// Stop shuts the engine down: in-flight pulls are cancelled, launcher
// workers drain their current task and exit.
func (nm *NodeMonitor) Stop() {
	nm.puller.stop()
	nm.launcher.shutdown()
}

// Address returns the intake identity of this node monitor.
func (nm *NodeMonitor) Address() string {
	return nm.address
}

// EnqueueTaskReservations serves reservation intake. The call registers the
// job accounting and submits every reservation to the admission policy, it
// makes no placement promise beyond that.
func (nm *NodeMonitor) EnqueueTaskReservations(request *api.EnqueueTaskReservationsRequest) error {
	if err := validateEnqueueRequest(request); err != nil {
		return err
	}
	backendAddress, ok := nm.backends.Get(request.AppID)
	if !ok {
		return errors.Errorf("no application backend registered for app %s", request.AppID)
	}

	nm.Lock()
	defer nm.Unlock()

	perTask := resources.NewResourceFromProto(request.EstimatedResources)
	if overwritten := nm.usage.addJob(request.RequestID, int(request.NumTasks), perTask); overwritten {
		log.Log(log.NodeMonitor).Warn("reservations already pending for request, overwriting accounting",
			zap.String("requestID", request.RequestID))
		audit.Emit(audit.ReservationEnqueuedDuplicate,
			zap.String("requestID", request.RequestID))
	}
	for i := int32(0); i < request.NumTasks; i++ {
		reservation := NewTaskReservation(request, backendAddress.(string))
		queued := nm.policy.HandleSubmit(reservation)
		audit.Emit(audit.ReservationEnqueued,
			zap.String("nodeMonitor", nm.address),
			zap.String("requestID", request.RequestID),
			zap.String("reservationID", reservation.ReservationID),
			zap.Int("queuedReservations", queued))
		nm.nmMetrics.IncReservationsEnqueued()
	}
	nm.nmMetrics.SetPolicyQueueLength(nm.policy.QueuedReservations())
	return nil
}

// TasksFinished is the backend callback for completed tasks. Each entry
// drives the completion pathway with the finishing task's own identity as
// the last-executed task.
func (nm *NodeMonitor) TasksFinished(tasks []*api.FullTaskID) {
	for _, task := range tasks {
		if task.GetRequestID() == "" {
			continue
		}
		audit.Emit(audit.TaskCompleted,
			zap.String("requestID", task.RequestID),
			zap.String("taskID", task.TaskID))
		nm.taskCompleted(task.RequestID, task.RequestID, task.TaskID, true)
	}
}

// RegisterBackend announces an application backend for an appId. Subsequent
// reservations for the app resolve to this address.
func (nm *NodeMonitor) RegisterBackend(appID, address string) error {
	if appID == "" {
		return errors.New("backend registration misses the app id")
	}
	if _, _, err := utils.SplitHostPort(address); err != nil {
		return err
	}
	nm.backends.Set(appID, address, gocache.NoExpiration)
	log.Log(log.NodeMonitor).Info("application backend registered",
		zap.String("appID", appID),
		zap.String("address", address))
	return nil
}

// GetResourceUsage reports the in-use vector and the policy queue depth for
// one application.
func (nm *NodeMonitor) GetResourceUsage(appID string) (*resources.Resource, int) {
	nm.RLock()
	defer nm.RUnlock()
	return nm.usage.inUse.Clone(), nm.policy.QueueLength(appID)
}

// GetFreeResources reports capacity minus in-use minus the claims of all
// runnable-queued reservations.
func (nm *NodeMonitor) GetFreeResources() *resources.Resource {
	nm.RLock()
	defer nm.RUnlock()
	free := resources.Sub(nm.usage.capacity, nm.usage.inUse)
	return resources.Sub(free, nm.runnableReserved)
}

// Capacity returns a copy of the immutable node capacity vector.
func (nm *NodeMonitor) Capacity() *resources.Resource {
	return nm.usage.capacity.Clone()
}

// InUseMemCPU feeds the metrics history collector.
func (nm *NodeMonitor) InUseMemCPU() (int64, int64) {
	nm.RLock()
	defer nm.RUnlock()
	return int64(nm.usage.inUse.Resources[resources.Memory]),
		int64(nm.usage.inUse.Resources[resources.VCore])
}

// taskCompleted is the completion pathway: every reservation released by the
// policy passes through here exactly once, on the backend's tasksFinished
// callback, on an empty or failed getTask or on a failed launch. freeInUse
// is set only on paths where the launcher debited inUse at dequeue.
func (nm *NodeMonitor) taskCompleted(requestID, lastTaskRequestID, lastTaskID string, freeInUse bool) {
	nm.Lock()
	defer nm.Unlock()

	freed := nm.usage.taskTerminated(requestID)
	if freeInUse {
		nm.usage.releaseInUse(freed)
		nm.updateInUseMetrics()
	}
	nm.policy.HandleTaskCompleted(requestID, lastTaskRequestID, lastTaskID)
	nm.nmMetrics.IncTasksCompleted()
	nm.nmMetrics.SetPolicyQueueLength(nm.policy.QueuedReservations())
}

// noTaskForReservation terminates a reservation whose pull produced no task,
// either because the scheduler had none left or because the RPC failed.
func (nm *NodeMonitor) noTaskForReservation(reservation *TaskReservation) {
	audit.Emit(audit.GetTaskNoTask,
		zap.String("requestID", reservation.RequestID),
		zap.String("previousRequestID", reservation.PreviousRequestID),
		zap.String("previousTaskID", reservation.PreviousTaskID))
	nm.taskCompleted(reservation.RequestID, reservation.PreviousRequestID, reservation.PreviousTaskID, false)
}

// backendLaunchFailed synthesizes the completion of a reservation whose
// launch RPC failed: the backend never acknowledged it, so no tasksFinished
// will ever arrive for it.
func (nm *NodeMonitor) backendLaunchFailed(reservation *TaskReservation) {
	nm.taskCompleted(reservation.RequestID, reservation.PreviousRequestID, reservation.PreviousTaskID, true)
}

// enqueueRunnable records the reservation's claim and puts it on the
// runnable queue. The put blocks when the queue is full, providing the
// natural backpressure point, so it is never called with the lock held.
func (nm *NodeMonitor) enqueueRunnable(reservation *TaskReservation) {
	nm.Lock()
	resources.AddTo(nm.runnableReserved, reservation.EstimatedResources)
	nm.Unlock()
	nm.nmMetrics.AddRunnableQueueLength(1)
	nm.runnable <- reservation
}

// reservationDequeued moves the reservation's claim from the runnable
// reserve into inUse; called by a launcher worker right after dequeue.
func (nm *NodeMonitor) reservationDequeued(reservation *TaskReservation) {
	nm.Lock()
	resources.SubFrom(nm.runnableReserved, reservation.EstimatedResources)
	nm.usage.addInUse(reservation.EstimatedResources)
	nm.updateInUseMetrics()
	nm.Unlock()
	nm.nmMetrics.AddRunnableQueueLength(-1)
	reservation.HandleReservationEvent(LaunchTask)
}

// updateInUseMetrics pushes the in-use gauges, caller holds the lock.
func (nm *NodeMonitor) updateInUseMetrics() {
	for name, quantity := range nm.usage.inUse.Resources {
		nm.nmMetrics.SetResourceInUse(name, int64(quantity))
	}
}

func validateEnqueueRequest(request *api.EnqueueTaskReservationsRequest) error {
	if request.GetRequestID() == "" {
		return errors.New("reservation request misses the request id")
	}
	if request.GetAppID() == "" {
		return errors.New("reservation request misses the app id")
	}
	if request.GetNumTasks() < 1 {
		return errors.Errorf("reservation request for %s carries no tasks", request.RequestID)
	}
	if _, _, err := utils.SplitHostPort(request.GetSchedulerAddress()); err != nil {
		return errors.Wrapf(err, "reservation request for %s carries an invalid scheduler address", request.RequestID)
	}
	return nil
}
