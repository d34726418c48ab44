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

package utils

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SplitHostPort splits a "host:port" address, validating the port.
func SplitHostPort(address string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, errors.Wrapf(err, "invalid address %q", address)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, errors.Errorf("invalid port in address %q", address)
	}
	return host, port, nil
}

// JoinHostPort builds a "host:port" address.
func JoinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// GetTaskAddress rewrites a scheduler intake address to the well-known
// getTask port on the same host.
func GetTaskAddress(schedulerAddress string, getTaskPort int) (string, error) {
	host, _, err := SplitHostPort(schedulerAddress)
	if err != nil {
		return "", err
	}
	return JoinHostPort(host, getTaskPort), nil
}

// HostName returns the local host name, "localhost" when detection fails.
func HostName() string {
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}

// ParseBackendList parses comma separated "appId=host:port" entries.
// Malformed entries are an error: a silently dropped backend makes every
// reservation for that app a protocol error later.
func ParseBackendList(list string) (map[string]string, error) {
	backends := make(map[string]string)
	if strings.TrimSpace(list) == "" {
		return backends, nil
	}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("malformed backend entry %q", entry)
		}
		if _, _, err := SplitHostPort(parts[1]); err != nil {
			return nil, err
		}
		backends[parts[0]] = parts[1]
	}
	return backends, nil
}

// ParseAddressList parses a comma separated host:port list.
func ParseAddressList(list string) ([]string, error) {
	var out []string
	if strings.TrimSpace(list) == "" {
		return out, nil
	}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if _, _, err := SplitHostPort(entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
