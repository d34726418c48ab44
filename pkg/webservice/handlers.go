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

package webservice

import (
	"net/http"

	"github.com/kestrelproject/kestrel-core/pkg/common/resources"
	"github.com/kestrelproject/kestrel-core/pkg/webservice/dao"
)

func (ws *WebService) getUsage(w http.ResponseWriter, r *http.Request) {
	appID := r.URL.Query().Get("app")
	inUse, queueLength := ws.monitor.GetResourceUsage(appID)
	free := ws.monitor.GetFreeResources()
	capacity := ws.monitor.Capacity()

	info := dao.UsageInfo{
		Address:     ws.monitor.Address(),
		Capacity:    toInt64Map(capacity),
		InUse:       toInt64Map(inUse),
		Free:        toInt64Map(free),
		QueueLength: queueLength,
	}
	writeJSON(w, info)
}

func (ws *WebService) getHistory(w http.ResponseWriter, _ *http.Request) {
	if ws.imHistory == nil {
		writeError(w, http.StatusNotImplemented, "history is not enabled")
		return
	}
	records := ws.imHistory.GetRecords()
	result := make([]dao.HistoryRecordInfo, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		result = append(result, dao.HistoryRecordInfo{
			Timestamp:     record.Timestamp.UnixNano(),
			LaunchedTasks: record.LaunchedTasks,
			InUseMemory:   record.InUseMemory,
			InUseCPU:      record.InUseCPU,
		})
	}
	writeJSON(w, result)
}

func (ws *WebService) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	writeJSON(w, dao.APIError{StatusCode: code, Message: message})
}

func toInt64Map(res *resources.Resource) map[string]int64 {
	out := make(map[string]int64)
	if res == nil {
		return out
	}
	for k, v := range res.Resources {
		out[k] = int64(v)
	}
	return out
}
