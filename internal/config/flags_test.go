// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestParseServerFlags(t *testing.T) {
	cfg, rest, err := parseServerFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-d", "postgres://localhost/chars",
		"-driver", "postgres",
		"-config", "/etc/chars.json",
		"-password-hash-cost", "11",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "15s",
		"-maps-limit", "3",
		"-lock-backend", "redis",
		"-lock-ttl", "4s",
		"-redis-address", "localhost:6379",
		"-repair-interval", "30s",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/chars", cfg.Storage.DB.DSN)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/chars.json", cfg.JSONFilePath)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 3, cfg.App.MapsLimit)
	assert.Equal(t, "redis", cfg.Lock.Backend)
	assert.Equal(t, 4*time.Second, cfg.Lock.TTL)
	assert.Equal(t, "localhost:6379", cfg.Lock.Redis.Address)
	assert.Equal(t, 30*time.Second, cfg.Workers.RepairInterval)
}

func TestParseServerFlags_Empty(t *testing.T) {
	cfg, rest, err := parseServerFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseServerFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"-a", "nope"}},
		{name: "bad duration", args: []string{"-token-duration", "soon"}},
		{name: "unknown flag", args: []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseServerFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseClientFlags_ReturnsPositionalArgs(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{
		"-a", "http://localhost:9000", "-t", "3s",
		"pilot", "secret", "set-main", "90000001",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"pilot", "secret", "set-main", "90000001"}, rest)
}
