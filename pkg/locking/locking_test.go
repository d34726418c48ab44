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

package locking

import (
	"sync"
	"testing"

	"gotest.tools/v3/assert"
)

func TestMutexProtectsCounter(t *testing.T) {
	var lock Mutex
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, counter, 1000)
}

func TestRWMutexAllowsParallelReaders(t *testing.T) {
	var lock RWMutex
	lock.RLock()
	done := make(chan struct{})
	go func() {
		lock.RLock()
		lock.RUnlock()
		close(done)
	}()
	<-done
	lock.RUnlock()
}

func TestDetectionDisabledByDefault(t *testing.T) {
	assert.Assert(t, !IsTrackingEnabled(), "deadlock detection must be opt-in")
	assert.Assert(t, !IsDeadlockDetected())
	assert.Equal(t, GetDeadlockTimeoutSeconds(), 60)
}
