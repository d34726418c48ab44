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

package dao

type UsageInfo struct {
	Address     string           `json:"address"`
	Capacity    map[string]int64 `json:"capacity"`
	InUse       map[string]int64 `json:"inUse"`
	Free        map[string]int64 `json:"free"`
	QueueLength int              `json:"queueLength,omitempty"`
}

type HistoryRecordInfo struct {
	Timestamp     int64 `json:"timestamp"`
	LaunchedTasks int   `json:"launchedTasks"`
	InUseMemory   int64 `json:"inUseMemory"`
	InUseCPU      int64 `json:"inUseCPU"`
}

type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
