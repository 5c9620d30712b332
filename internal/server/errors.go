// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errServerFailed        = errors.New("http server failed")

	errServerAlreadyStarted = errors.New("server has already been started")
)
