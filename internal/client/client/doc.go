// Package client contains client-side building blocks for FileVault.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface) covering
//     Register/Login, Ping, upload negotiation, listing, lookup, deletion and
//     encrypt/decrypt transforms.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     attaches the access token via an interceptor and maps gRPC status codes
//     to sentinel errors.
//  3. TokenStore, which caches the access token on disk between CLI runs.
//
// # Error Handling
//
// Callers match failures with errors.Is against ErrUnavailable,
// ErrUnauthorized, ErrNotFound, ErrWrongPassword, ErrAlreadyExists,
// ErrInvalidRequest and ErrNotLoggedIn.
package client
