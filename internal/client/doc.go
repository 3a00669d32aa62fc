// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It authenticates against the server through an adapter.ServerAdapter,
// runs one command and prints the result as indented JSON.
package client
