// Package proto holds the generated messages and gRPC stubs of the
// filevault.FileVault service defined in proto/filevault.proto.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=module=github.com/dmitrijs2005/filevault --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/filevault proto/filevault.proto
