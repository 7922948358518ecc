// Package pb holds the stockledger.v1 protobuf messages and Inventory gRPC
// stubs. Decimal quantities travel as strings.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative inventory.proto
