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

package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerHandle identifies a subsystem logger. Handles are preferred over
// ad-hoc named loggers so that the set of subsystems stays fixed.
type LoggerHandle struct {
	id   int
	name string
}

func (h LoggerHandle) String() string {
	return h.name
}

var (
	Entrypoint  = LoggerHandle{0, "entrypoint"}
	NodeMonitor = LoggerHandle{1, "nodemonitor"}
	Admission   = LoggerHandle{2, "nodemonitor.admission"}
	Puller      = LoggerHandle{3, "nodemonitor.puller"}
	Launcher    = LoggerHandle{4, "nodemonitor.launcher"}
	RPC         = LoggerHandle{5, "rpc"}
	REST        = LoggerHandle{6, "rest"}
	Config      = LoggerHandle{7, "config"}
	Metrics     = LoggerHandle{8, "metrics"}
	Audit       = LoggerHandle{9, "audit"}
	Diagnostics = LoggerHandle{10, "diagnostics"}
	Test        = LoggerHandle{11, "test"}
)

const handleCount = 12

var (
	once    sync.Once
	rootLog *zap.Logger
	config  *zap.Config
	loggers []*zap.Logger
)

// Log returns the logger for the given subsystem handle.
func Log(handle LoggerHandle) *zap.Logger {
	once.Do(initLogger)
	return loggers[handle.id]
}

// RootLogger returns the unnamed root logger.
func RootLogger() *zap.Logger {
	once.Do(initLogger)
	return rootLog
}

// InitializeLogger sets a caller-provided logger as the root. It is a no-op
// once logging has been initialized, so it must be called before any Log()
// call when embedding.
func InitializeLogger(logger *zap.Logger, zapConfig *zap.Config) {
	once.Do(func() {
		rootLog = logger
		config = zapConfig
		buildNamedLoggers()
	})
}

func IsDebugEnabled() bool {
	once.Do(initLogger)
	return rootLog.Core().Enabled(zapcore.DebugLevel)
}

// InitAndSetLevel initializes logging if needed and adjusts the level.
// Visible for tests and for config-driven level changes.
func InitAndSetLevel(level zapcore.Level) {
	once.Do(initLogger)
	if config != nil {
		config.Level.SetLevel(level)
	}
}

func initLogger() {
	config = createConfig()
	var err error
	rootLog, err = config.Build()
	// this should really not happen so just write to stdout and set a Nop logger
	if err != nil {
		fmt.Printf("Logging disabled, logger init failed with error: %v\n", err)
		rootLog = zap.NewNop()
	}
	buildNamedLoggers()
}

func buildNamedLoggers() {
	loggers = make([]*zap.Logger, handleCount)
	for _, handle := range []LoggerHandle{Entrypoint, NodeMonitor, Admission, Puller,
		Launcher, RPC, REST, Config, Metrics, Audit, Diagnostics, Test} {
		loggers[handle.id] = rootLog.Named(handle.name)
	}
}

// Console encoding to stderr, ISO8601 timestamps, debug default so early
// startup issues are always visible. The configured level (log.level) is
// applied later at startup.
func createConfig() *zap.Config {
	return &zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.DebugLevel),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "time",
			NameKey:        "name",
			CallerKey:      "caller",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
