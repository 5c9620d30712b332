// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address, so no transport can be served.
var errNoHandlersAreCreated = errors.New("no handlers are created")

var errNoServices = errors.New("handlers need services")
