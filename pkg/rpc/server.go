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

package rpc

import (
	"fmt"
	"net"
	"runtime/debug"
	"time"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kestrelproject/kestrel-core/pkg/log"
)

// Server wraps a grpc server bound to one port.
type Server struct {
	grpcServer *grpc.Server
	port       int
}

// NewServer assembles a grpc server with the standard interceptor chain:
// request metrics, request logging and panic recovery innermost so a
// panicking handler surfaces as codes.Internal instead of killing the
// daemon.
func NewServer() *Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_prometheus.UnaryServerInterceptor,
			grpc_zap.UnaryServerInterceptor(log.Log(log.RPC)),
			grpc_recovery.UnaryServerInterceptor(
				grpc_recovery.WithRecoveryHandler(panicRecoveryHandler)),
		),
	)
	return &Server{grpcServer: server}
}

// Register exposes the raw grpc server for service registration, done before
// Serve is called.
func (s *Server) Register(register func(*grpc.Server)) {
	register(s.grpcServer)
}

// Serve binds the port and serves in the background. A failure to bind is
// returned to the caller: per the startup contract it is fatal.
func (s *Server) Serve(port int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return errors.Wrapf(err, "failed to bind port %d", port)
	}
	s.port = port
	grpc_prometheus.Register(s.grpcServer)
	log.Log(log.RPC).Info("grpc server listening", zap.Int("port", port))
	go func() {
		if serveErr := s.grpcServer.Serve(listener); serveErr != nil {
			log.Log(log.RPC).Error("grpc serving stopped", zap.Error(serveErr))
		}
	}()
	return nil
}

// Stop attempts a graceful stop, falling back to a hard stop after the
// grace period.
func (s *Server) Stop(grace time.Duration) {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
		s.grpcServer.Stop()
	}
	log.Log(log.RPC).Info("grpc server stopped", zap.Int("port", s.port))
}

func panicRecoveryHandler(p interface{}) error {
	log.Log(log.RPC).Error("grpc handler panicked",
		zap.Any("cause", p),
		zap.ByteString("stack", debug.Stack()))
	return status.Errorf(codes.Internal, "internal server error caused by %v", p)
}
