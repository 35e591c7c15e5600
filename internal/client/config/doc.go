// Package config loads runtime configuration for the FileVault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string       address:port of the backend gRPC endpoint
//	-token string   path of the cached access token
//	-timeout int    per-command request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "token_file": "/home/me/.config/filevault/token",
//	  "request_timeout": "30s"
//	}
//
// Fields missing from the file keep their defaults.
package config
