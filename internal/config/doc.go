// Package config provides configuration loading, merging, and validation
// facilities for the server and the command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to the merged result before validation. The main
// entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the client.
package config
