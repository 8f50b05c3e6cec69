// Package schedulev1 holds the generated schedule.v1.Schedule contract.
package schedulev1

//go:generate protoc -I ../../../../proto --go_out=../../../.. --go_opt=module=github.com/arklim/cinema-platform --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/arklim/cinema-platform schedule/v1/schedule.proto
