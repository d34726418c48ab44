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

package configs

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Recognized configuration keys.
const (
	// Number of launcher workers, defaults to the detected CPU count.
	NMCPUCores = "node_monitor.cpu_cores"
	// Capacity vector components.
	NMCapacityMem = "node_monitor.capacity.mem"
	NMCapacityCPU = "node_monitor.capacity.cpu"
	// Admission policy: "fifo" or "bounded".
	NMPolicy = "node_monitor.policy"
	// Port the node monitor serves reservation intake on.
	NMPort = "node_monitor.port"
	// Well-known port schedulers serve getTask on.
	GetTaskPort = "get_task.port"
	// REST service port.
	NMWebPort = "node_monitor.web.port"
	// Capacity of the runnable queue, zero or negative falls back to
	// DefaultRunnableQueueCapacity; the queue is always bounded.
	NMRunnableQueueCapacity = "node_monitor.runnable_queue.capacity"
	// Jaeger tracing toggle.
	NMTracingEnabled = "node_monitor.tracing.enabled"
	// Log level name understood by zap (debug, info, warn, error).
	LogLevel = "log.level"
	// Static membership: "appId=host:port" entries, comma separated.
	StaticAppBackends = "static.app_backends"
	// Static scheduler list, comma separated host:port entries.
	StaticSchedulers = "static.schedulers"
)

const (
	DefaultPolicy                = "fifo"
	DefaultNMPort                = 20501
	DefaultGetTaskPort           = 20507
	DefaultWebPort               = 9080
	DefaultCapacityMem           = 8 * 1024 * 1024 * 1024
	DefaultCapacityCPU           = 4
	DefaultRunnableQueueCapacity = 1024
	DefaultLogLevel              = "info"
)

var defaults = map[string]string{
	NMPolicy:                DefaultPolicy,
	NMPort:                  strconv.Itoa(DefaultNMPort),
	GetTaskPort:             strconv.Itoa(DefaultGetTaskPort),
	NMWebPort:               strconv.Itoa(DefaultWebPort),
	NMCapacityMem:           strconv.Itoa(DefaultCapacityMem),
	NMCapacityCPU:           strconv.Itoa(DefaultCapacityCPU),
	NMRunnableQueueCapacity: strconv.Itoa(DefaultRunnableQueueCapacity),
	NMTracingEnabled:        "false",
	LogLevel:                DefaultLogLevel,
}

var (
	lock      sync.RWMutex
	configMap = make(map[string]string)
)

// SetConfigMap replaces the full configuration, used at startup and by tests.
func SetConfigMap(conf map[string]string) {
	lock.Lock()
	defer lock.Unlock()
	configMap = make(map[string]string)
	for k, v := range conf {
		configMap[k] = v
	}
}

// Set overrides one key.
func Set(key, value string) {
	lock.Lock()
	defer lock.Unlock()
	configMap[key] = value
}

// Get returns the configured value or the in-code default, empty string when
// the key has neither.
func Get(key string) string {
	lock.RLock()
	defer lock.RUnlock()
	if v, ok := configMap[key]; ok {
		return v
	}
	return defaults[key]
}

// GetInt parses the configured value, falling back to the default on a
// missing key or an unparsable value.
func GetInt(key string) int {
	v, err := strconv.Atoi(Get(key))
	if err != nil {
		d, derr := strconv.Atoi(defaults[key])
		if derr != nil {
			return 0
		}
		return d
	}
	return v
}

func GetBool(key string) bool {
	v, err := strconv.ParseBool(Get(key))
	if err != nil {
		return false
	}
	return v
}

// GetCPUCores returns the launcher pool size, detecting the CPU count when
// not configured or configured as non positive.
func GetCPUCores() int {
	if v := GetInt(NMCPUCores); v > 0 {
		return v
	}
	return runtime.NumCPU()
}

// LoadConfigFile reads a flat "key: value" YAML mapping into the config map.
func LoadConfigFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	conf, err := ParseConfig(content)
	if err != nil {
		return err
	}
	SetConfigMap(conf)
	return nil
}

// ParseConfig parses the YAML content of a config file.
// Scalar values are converted to their string form, nested structures are a
// config error.
func ParseConfig(content []byte) (map[string]string, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	conf := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			conf[k] = val
		case int:
			conf[k] = strconv.Itoa(val)
		case int64:
			conf[k] = strconv.FormatInt(val, 10)
		case bool:
			conf[k] = strconv.FormatBool(val)
		case float64:
			conf[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return nil, errors.Errorf("config key %s holds a non scalar value", k)
		}
	}
	return conf, nil
}
