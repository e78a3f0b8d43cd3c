// Package server implements the primary's client-facing gRPC service: the
// four unary user operations and the Timeline bidirectional stream with its
// fan-out engine.
package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"chirp/internal/check"
	"chirp/registry"
	"chirp/server/pb"
	"chirp/store"

	"google.golang.org/grpc"
)

// Service is the SNS gRPC service. One mutex guards the registry and the
// live-session table; every handler takes it, which serializes fan-out the
// same way the single accept loop did in the original design.
type Service struct {
	pb.UnimplementedSNSServiceServer

	mu       sync.Mutex
	reg      *registry.Registry
	st       *store.Store
	sessions map[string]*session
}

// New builds a Service over an already-loaded registry and its store.
func New(st *store.Store, reg *registry.Registry) *Service {
	check.Assert(st != nil, "server.New: store must not be nil")
	check.Assert(reg != nil, "server.New: registry must not be nil")
	return &Service{
		reg:      reg,
		st:       st,
		sessions: make(map[string]*session),
	}
}

// ListenAndServe serves the gRPC API on addr and blocks until ctx is
// cancelled.
func (s *Service) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := grpc.NewServer()
	pb.RegisterSNSServiceServer(srv, s)

	// Shut down when ctx is cancelled.
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// DisconnectAll marks every user disconnected. The heartbeat monitor calls
// this when the standby dies: clients will re-login through the router.
func (s *Service) DisconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range s.reg.Usernames() {
		if u := s.reg.Lookup(name); u != nil {
			u.Connected = false
		}
	}
}
