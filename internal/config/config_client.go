// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client config view from the
// environment, args and an optional JSON file. It also returns the positional
// arguments that follow the flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, rest, clientCfg.validate()
}
