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
	"github.com/google/btree"

	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
)

// queuedReservation orders retained reservations by submission sequence so
// the drain order is deterministic.
type queuedReservation struct {
	seq         uint64
	reservation *TaskReservation
}

func (q *queuedReservation) Less(than btree.Item) bool {
	return q.seq < than.(*queuedReservation).seq
}

// boundedPolicy releases a reservation only while the sum of claims of all
// released, not yet completed reservations still fits the node capacity.
// Everything else queues in submission order, the head drains on every
// completion while capacity allows.
//
// The policy tracks its own claimed vector rather than reading inUse: inUse
// is debited only at dequeue from the runnable queue, so it undercounts
// reservations that are fetching or runnable-queued. Claims are recorded at
// release and returned on completion, which is what keeps inUse under
// capacity at all times.
type boundedPolicy struct {
	capacity *resources.Resource
	claimed  *resources.Resource
	release  ReleaseFunc

	queue   *btree.BTree
	nextSeq uint64
	// claims of released jobs, popped one entry per completion
	releasedClaims map[string][]*resources.Resource
	queuedPerApp   map[string]int
	queued         int
}

var _ TaskPolicy = &boundedPolicy{}

func newBoundedPolicy(capacity *resources.Resource, release ReleaseFunc) *boundedPolicy {
	return &boundedPolicy{
		capacity:       capacity.Clone(),
		claimed:        resources.NewResource(),
		release:        release,
		queue:          btree.New(7),
		releasedClaims: make(map[string][]*resources.Resource),
		queuedPerApp:   make(map[string]int),
	}
}

func (p *boundedPolicy) HandleSubmit(reservation *TaskReservation) int {
	// releasing past a non-empty queue would break submission order
	if p.queue.Len() == 0 && p.fits(reservation.EstimatedResources) {
		p.releaseReservation(reservation)
		return p.queued
	}
	reservation.HandleReservationEvent(QueueReservation)
	p.nextSeq++
	p.queue.ReplaceOrInsert(&queuedReservation{seq: p.nextSeq, reservation: reservation})
	p.queuedPerApp[reservation.AppID]++
	p.queued++
	return p.queued
}

func (p *boundedPolicy) HandleTaskCompleted(requestID, lastTaskRequestID, lastTaskID string) {
	p.dropClaim(requestID)
	// drain the head while capacity allows
	for p.queue.Len() > 0 {
		head := p.queue.Min().(*queuedReservation)
		if !p.fits(head.reservation.EstimatedResources) {
			return
		}
		p.queue.DeleteMin()
		p.queuedPerApp[head.reservation.AppID]--
		if p.queuedPerApp[head.reservation.AppID] <= 0 {
			delete(p.queuedPerApp, head.reservation.AppID)
		}
		p.queued--
		head.reservation.PreviousRequestID = lastTaskRequestID
		head.reservation.PreviousTaskID = lastTaskID
		p.releaseReservation(head.reservation)
	}
}

func (p *boundedPolicy) QueueLength(appID string) int {
	return p.queuedPerApp[appID]
}

func (p *boundedPolicy) QueuedReservations() int {
	return p.queued
}

func (p *boundedPolicy) fits(claim *resources.Resource) bool {
	return resources.FitIn(p.capacity, resources.Add(p.claimed, claim))
}

func (p *boundedPolicy) releaseReservation(reservation *TaskReservation) {
	resources.AddTo(p.claimed, reservation.EstimatedResources)
	p.releasedClaims[reservation.RequestID] = append(
		p.releasedClaims[reservation.RequestID], reservation.EstimatedResources)
	reservation.HandleReservationEvent(ReleaseReservation)
	p.release(reservation)
}

// dropClaim returns one released claim of the job to the pool. Completions
// for jobs this policy never released (daemon restart, scheduler bug) have
// no claim to return and are ignored.
func (p *boundedPolicy) dropClaim(requestID string) {
	claims := p.releasedClaims[requestID]
	if len(claims) == 0 {
		return
	}
	resources.SubFrom(p.claimed, claims[0])
	if len(claims) == 1 {
		delete(p.releasedClaims, requestID)
	} else {
		p.releasedClaims[requestID] = claims[1:]
	}
}
