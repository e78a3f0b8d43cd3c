package server

import (
	"context"
	"log/slog"

	"chirp"
	"chirp/server/pb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Login registers a new user or reconnects a returning one. A username that
// is malformed, or already has a live session, is refused with the Invalid
// Username reply.
func (s *Service) Login(ctx context.Context, req *pb.Request) (*pb.Reply, error) {
	name := req.GetUsername()
	if !chirp.ValidUsername(name) {
		return &pb.Reply{Msg: chirp.MsgLoginInvalid}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.reg.Lookup(name)
	switch {
	case u == nil:
		if _, err := s.reg.Register(name); err != nil {
			slog.Error("register user", "user", name, "err", err)
			return nil, status.Error(codes.Unknown, "could not persist user")
		}
		return &pb.Reply{Msg: chirp.MsgLoginOK}, nil
	case u.Connected:
		return &pb.Reply{Msg: chirp.MsgLoginInvalid}, nil
	default:
		if err := s.reg.Hydrate(u); err != nil {
			slog.Error("load user state", "user", name, "err", err)
			return nil, status.Error(codes.Unknown, "could not load user state")
		}
		u.Connected = true
		return &pb.Reply{Msg: chirp.MsgLoginWelcomePfx + name}, nil
	}
}

// List reports every known username and the callers' followers, both in
// registration order.
func (s *Service) List(ctx context.Context, req *pb.Request) (*pb.ListReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.reg.Lookup(req.GetUsername())
	if u == nil {
		return nil, status.Error(codes.InvalidArgument, "unknown user")
	}
	// The caller may be on a channel that outlived a primary respawn; its
	// state is loaded lazily, not at login time only.
	if err := s.reg.Hydrate(u); err != nil {
		slog.Error("load user state", "user", u.Username, "err", err)
		return nil, status.Error(codes.Unknown, "could not load user state")
	}
	return &pb.ListReply{
		AllUsers:  s.reg.Usernames(),
		Followers: s.reg.FollowersOf(req.GetUsername()),
	}, nil
}

// Follow adds req.Username → arguments[0] to the follow graph.
func (s *Service) Follow(ctx context.Context, req *pb.Request) (*pb.Reply, error) {
	name := req.GetUsername()
	args := req.GetArguments()
	if len(args) == 0 {
		return &pb.Reply{Msg: chirp.MsgFollowInvalid}, nil
	}
	target := args[0]

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.reg.Lookup(name)
	b := s.reg.Lookup(target)
	if a == nil || b == nil || name == target {
		return &pb.Reply{Msg: chirp.MsgFollowInvalid}, nil
	}
	// Without the on-disk edges a duplicate follow would be accepted and
	// appended twice after a primary respawn.
	if err := s.reg.Hydrate(a); err != nil {
		slog.Error("load user state", "user", name, "err", err)
		return nil, status.Error(codes.Unknown, "could not load user state")
	}
	if a.Follows(target) {
		return &pb.Reply{Msg: chirp.MsgFollowDuplicate}, nil
	}
	if err := s.reg.Follow(a, b); err != nil {
		slog.Error("persist follow", "user", name, "target", target, "err", err)
		return nil, status.Error(codes.Unknown, "could not persist follow")
	}
	return &pb.Reply{Msg: chirp.MsgFollowOK}, nil
}

// Unfollow removes req.Username → arguments[0] from the follow graph and
// rewrites the follow file.
func (s *Service) Unfollow(ctx context.Context, req *pb.Request) (*pb.Reply, error) {
	name := req.GetUsername()
	args := req.GetArguments()
	if len(args) == 0 {
		return &pb.Reply{Msg: chirp.MsgUnfollowInvalid}, nil
	}
	target := args[0]

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.reg.Lookup(name)
	b := s.reg.Lookup(target)
	if a == nil || b == nil || name == target {
		return &pb.Reply{Msg: chirp.MsgUnfollowInvalid}, nil
	}
	// The rewrite below persists the in-memory list; it must be the on-disk
	// one, not the empty post-respawn placeholder.
	if err := s.reg.Hydrate(a); err != nil {
		slog.Error("load user state", "user", name, "err", err)
		return nil, status.Error(codes.Unknown, "could not load user state")
	}
	if !a.Follows(target) {
		return &pb.Reply{Msg: chirp.MsgUnfollowNotFound}, nil
	}
	if err := s.reg.Unfollow(a, b); err != nil {
		slog.Error("persist unfollow", "user", name, "target", target, "err", err)
		return nil, status.Error(codes.Unknown, "could not persist unfollow")
	}
	return &pb.Reply{Msg: chirp.MsgUnfollowOK}, nil
}
