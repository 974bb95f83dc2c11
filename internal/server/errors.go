// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated signals a startup misconfiguration: no transport
	// had both an address and a handler to serve.
	errNoServersAreCreated = errors.New("no servers are created")
)
