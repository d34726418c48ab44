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

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc func(*WebService) http.Handler
}

var webRoutes = []route{
	{
		"Usage",
		"GET",
		"/ws/v1/usage",
		func(ws *WebService) http.Handler { return http.HandlerFunc(ws.getUsage) },
	},
	{
		"History",
		"GET",
		"/ws/v1/history",
		func(ws *WebService) http.Handler { return http.HandlerFunc(ws.getHistory) },
	},
	{
		"Health",
		"GET",
		"/ws/v1/health",
		func(ws *WebService) http.Handler { return http.HandlerFunc(ws.getHealth) },
	},
	{
		"Metrics",
		"GET",
		"/ws/v1/metrics",
		func(ws *WebService) http.Handler { return promhttp.Handler() },
	},
}
