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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/kestrelproject/kestrel-core/pkg/log"
	"github.com/kestrelproject/kestrel-core/pkg/metrics/history"
	"github.com/kestrelproject/kestrel-core/pkg/nodemonitor"
)

// WebService serves the operational REST endpoints of the node monitor.
type WebService struct {
	httpServer *http.Server
	monitor    *nodemonitor.NodeMonitor
	imHistory  *history.InternalMetricsHistory
}

func NewWebService(monitor *nodemonitor.NodeMonitor, imHistory *history.InternalMetricsHistory) *WebService {
	return &WebService{
		monitor:   monitor,
		imHistory: imHistory,
	}
}

func (ws *WebService) newRouter() *httprouter.Router {
	router := httprouter.New()
	for _, webRoute := range webRoutes {
		route := webRoute
		router.Handler(route.Method, route.Pattern, ws.loggingHandler(route.HandlerFunc(ws), route.Name))
	}
	return router
}

func (ws *WebService) loggingHandler(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		inner.ServeHTTP(w, r)
		log.Log(log.REST).Debug("rest request served",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("route", name),
			zap.Duration("duration", time.Since(start)))
	})
}

// StartWebApp binds the REST port and serves in the background. A bind
// failure is fatal at startup like the grpc port.
func (ws *WebService) StartWebApp(port int) error {
	ws.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: ws.newRouter(),
	}

	started := make(chan error, 1)
	go func() {
		httpError := ws.httpServer.ListenAndServe()
		if httpError != nil && httpError != http.ErrServerClosed {
			started <- httpError
			log.Log(log.REST).Error("HTTP serving error", zap.Error(httpError))
		}
	}()
	// ListenAndServe only reports a bind failure through its return value,
	// give it a moment so startup errors reach the caller
	select {
	case err := <-started:
		return err
	case <-time.After(100 * time.Millisecond):
	}
	log.Log(log.REST).Info("web-app started", zap.Int("port", port))
	return nil
}

func (ws *WebService) StopWebApp() error {
	if ws.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ws.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Log(log.REST).Error("unable to serve response", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
