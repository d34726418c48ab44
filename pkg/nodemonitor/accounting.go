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
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// jobResourceInfo is the per-requestId accounting record. remainingTasks
// counts the reservations of the job that have not reached a terminal state,
// perTaskResources is the vector each of them claims.
type jobResourceInfo struct {
	remainingTasks   int
	perTaskResources *resources.Resource
}

// usageTracker holds the node capacity, the in-use vector and the per-job
// records. It is not safe for concurrent use: every mutating call happens
// with the node monitor lock held (the single consistency group shared with
// the admission policy).
//
// inUse is debited when a reservation is dequeued from the runnable queue,
// not when the policy releases it. Free-resource reporting subtracts the
// runnable-queued reservations separately, so nothing is double counted;
// the brief window where a completing task's credit and a dequeuing task's
// debit race is accepted.
type usageTracker struct {
	capacity *resources.Resource
	inUse    *resources.Resource
	perJob   map[string]*jobResourceInfo
}

func newUsageTracker(capacity *resources.Resource) *usageTracker {
	return &usageTracker{
		capacity: capacity.Clone(),
		inUse:    resources.NewResource(),
		perJob:   make(map[string]*jobResourceInfo),
	}
}

// addJob registers the accounting record for a job. A record that already
// exists is a protocol error at the scheduler: the counter is overwritten
// and true returned so the caller can flag it.
func (ut *usageTracker) addJob(requestID string, numTasks int, perTask *resources.Resource) bool {
	_, existed := ut.perJob[requestID]
	ut.perJob[requestID] = &jobResourceInfo{
		remainingTasks:   numTasks,
		perTaskResources: perTask.Clone(),
	}
	return existed
}

// taskTerminated decrements the job's remaining count and returns the
// per-task resource vector, removing the record when the last reservation
// terminates. A missing record is an accounting bug somewhere: a synthesized
// one-task zero-resource record keeps the daemon live, losing precision
// instead of crashing.
func (ut *usageTracker) taskTerminated(requestID string) *resources.Resource {
	info := ut.perJob[requestID]
	if info == nil {
		log.Log(log.NodeMonitor).Error("task completion for unknown request",
			zap.String("requestID", requestID))
		info = &jobResourceInfo{remainingTasks: 1, perTaskResources: resources.NewResource()}
		ut.perJob[requestID] = info
	}
	info.remainingTasks--
	if info.remainingTasks <= 0 {
		log.Log(log.NodeMonitor).Debug("deleting resources for request",
			zap.String("requestID", requestID))
		delete(ut.perJob, requestID)
	}
	return info.perTaskResources
}

func (ut *usageTracker) addInUse(claim *resources.Resource) {
	resources.AddTo(ut.inUse, claim)
}

func (ut *usageTracker) releaseInUse(freed *resources.Resource) {
	resources.SubFrom(ut.inUse, freed)
	if ut.inUse.HasNegativeValue() {
		log.Log(log.NodeMonitor).Error("in-use resources went negative, clamping",
			zap.String("inUse", ut.inUse.String()))
		for k, v := range ut.inUse.Resources {
			if v < 0 {
				ut.inUse.Resources[k] = 0
			}
		}
	}
}

func (ut *usageTracker) jobCount() int {
	return len(ut.perJob)
}

func (ut *usageTracker) hasJob(requestID string) bool {
	_, ok := ut.perJob[requestID]
	return ok
}
