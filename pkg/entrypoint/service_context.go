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

package entrypoint

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
	"github.com/kestrelproject/kestrel-core/pkg/rpc"
	"github.com/kestrelproject/kestrel-core/pkg/webservice"
)

// ServiceContext holds all running services of one node monitor daemon.
type ServiceContext struct {
	NodeMonitor      *nodemonitor.NodeMonitor
	RPCServer        *rpc.Server
	WebApp           *webservice.WebService
	MetricsCollector *metrics.InternalMetricsCollector
	TracerCloser     io.Closer
}

// StopAll shuts the services down in reverse start order.
func (sc *ServiceContext) StopAll() {
	log.Log(log.Entrypoint).Info("ServiceContext stop all services")
	if sc.WebApp != nil {
		if err := sc.WebApp.StopWebApp(); err != nil {
			log.Log(log.Entrypoint).Warn("failed to stop web application", zap.Error(err))
		}
	}
	if sc.MetricsCollector != nil {
		sc.MetricsCollector.Stop()
	}
	if sc.RPCServer != nil {
		sc.RPCServer.Stop(5 * time.Second)
	}
	if sc.NodeMonitor != nil {
		sc.NodeMonitor.Stop()
	}
	if sc.TracerCloser != nil {
		if err := sc.TracerCloser.Close(); err != nil {
			log.Log(log.Entrypoint).Warn("failed to flush tracer", zap.Error(err))
		}
	}
}
