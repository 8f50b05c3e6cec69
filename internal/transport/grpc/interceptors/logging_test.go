package interceptors

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type requesterRequest struct {
	userID string
}

func (r *requesterRequest) GetUserId() string { return r.userID }

func TestLoggingUnaryInterceptorStoresRequester(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := NewLogging(zap.New(core)).UnaryServerInterceptor()

	var seen string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen, _ = RequesterFromContext(ctx)
		return "ok", nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/schedule.v1.Schedule/GetMoviesByDate"}
	if _, err := interceptor(context.Background(), &requesterRequest{userID: "chris_rivers"}, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seen != "chris_rivers" {
		t.Fatalf("expected requester in context, got %q", seen)
	}
	entries := logs.FilterMessage("gRPC request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one completion log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requester_id"]; got != "chris_rivers" {
		t.Fatalf("expected requester_id field, got %v", got)
	}
}

func TestLoggingUnaryInterceptorLogsRejections(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := NewLogging(zap.New(core)).UnaryServerInterceptor()

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.PermissionDenied, "Unauthorized: admin access required")
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/schedule.v1.Schedule/AddSchedule"}
	if _, err := interceptor(context.Background(), &requesterRequest{userID: "dwight_schrute"}, info, handler); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected permission denied, got %v", err)
	}

	if logs.FilterMessage("gRPC request rejected").Len() != 1 {
		t.Fatalf("expected rejection to be logged at warn")
	}
}

type recvStream struct {
	mockServerStream
	payload *requesterRequest
}

func (s *recvStream) RecvMsg(m interface{}) error {
	*(m.(*requesterRequest)) = *s.payload
	return nil
}

func TestLoggingStreamInterceptorCapturesRequester(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	interceptor := NewLogging(zap.New(core)).StreamServerInterceptor()

	stream := &recvStream{mockServerStream: mockServerStream{ctx: context.Background()}, payload: &requesterRequest{userID: "garret_heaton"}}
	info := &grpc.StreamServerInfo{FullMethod: "/schedule.v1.Schedule/GetJson", IsServerStream: true}
	handler := func(srv interface{}, ss grpc.ServerStream) error {
		return ss.RecvMsg(&requesterRequest{})
	}

	if err := interceptor(nil, stream, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("gRPC request completed").All()
	if len(entries) != 1 || entries[0].ContextMap()["requester_id"] != "garret_heaton" {
		t.Fatalf("expected requester from stream request, got %+v", entries)
	}
}

func TestRequesterFromContextEmpty(t *testing.T) {
	if _, ok := RequesterFromContext(context.Background()); ok {
		t.Fatalf("expected no requester")
	}
	if ctx := WithRequester(context.Background(), ""); ctx != context.Background() {
		t.Fatalf("expected empty requester to leave context untouched")
	}
}
