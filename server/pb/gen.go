// Package pb contains the generated gRPC bindings for the SNS service.
//
// Regenerate after editing sns.proto:
//
//	go generate ./server/pb
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative sns.proto
