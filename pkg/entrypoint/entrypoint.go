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
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	"github.com/kestrelproject/kestrel-core/pkg/common/configs"
	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics"
	"github.com/kestrelproject/kestrel-core/pkg/metrics/history"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
	"github.com/kestrelproject/kestrel-core/pkg/rpc"
	"github.com/kestrelproject/kestrel-core/pkg/trace"
	"github.com/kestrelproject/kestrel-core/pkg/webservice"
)

// options used to control how services are started
type startupOptions struct {
	startWebAppFlag    bool
	metricsHistorySize int
}

// StartAllServices builds and starts the node monitor daemon. Any returned
// error is fatal at startup, most prominently a failure to bind one of the
// serving ports.
func StartAllServices() (*ServiceContext, error) {
	log.Log(log.Entrypoint).Info("ServiceContext start all services")
	return startAllServicesWithParameters(startupOptions{
		startWebAppFlag:    true,
		metricsHistorySize: 1440,
	})
}

// Visible by tests
func StartAllServicesWithParams(withWebapp bool) (*ServiceContext, error) {
	log.Log(log.Entrypoint).Info("ServiceContext start all services (custom params)")
	return startAllServicesWithParameters(startupOptions{
		startWebAppFlag:    withWebapp,
		metricsHistorySize: 1440,
	})
}

func startAllServicesWithParameters(opts startupOptions) (*ServiceContext, error) {
	if level, parseErr := zapcore.ParseLevel(configs.Get(configs.LogLevel)); parseErr == nil {
		log.InitAndSetLevel(level)
	}

	context := &ServiceContext{}

	closer, err := trace.InitGlobalTracer("nodemonitor", configs.GetBool(configs.NMTracingEnabled))
	if err != nil {
		return nil, err
	}
	context.TracerCloser = closer

	monitor, err := nodemonitor.NewNodeMonitorFromConfig(
		rpc.SchedulerClientFactory(), rpc.BackendClientFactory())
	if err != nil {
		return nil, err
	}
	monitor.Start()
	context.NodeMonitor = monitor

	log.Log(log.Entrypoint).Info("ServiceContext start rpc service")
	server := rpc.NewServer()
	server.Register(func(s *grpc.Server) {
		rpc.RegisterNodeMonitorService(s, monitor)
	})
	if err = server.Serve(configs.GetInt(configs.NMPort)); err != nil {
		monitor.Stop()
		return nil, err
	}
	context.RPCServer = server

	var imHistory *history.InternalMetricsHistory
	if opts.metricsHistorySize != 0 {
		log.Log(log.Entrypoint).Info("creating InternalMetricsHistory")
		imHistory = history.NewInternalMetricsHistory(opts.metricsHistorySize)
		metricsCollector := metrics.NewInternalMetricsCollector(imHistory, monitor)
		metricsCollector.StartService()
		context.MetricsCollector = metricsCollector
	}

	if opts.startWebAppFlag {
		log.Log(log.Entrypoint).Info("ServiceContext start web application service")
		webapp := webservice.NewWebService(monitor, imHistory)
		if err = webapp.StartWebApp(configs.GetInt(configs.NMWebPort)); err != nil {
			context.StopAll()
			return nil, err
		}
		context.WebApp = webapp
	}

	return context, nil
}
