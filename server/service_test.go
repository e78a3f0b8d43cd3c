package server

import (
	"context"
	"slices"
	"testing"

	"chirp"
	"chirp/registry"
	"chirp/server/pb"
	"chirp/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return newServiceAt(t, t.TempDir())
}

func newServiceAt(t *testing.T, dir string) *Service {
	t.Helper()
	st, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := registry.Load(st)
	if err != nil {
		t.Fatal(err)
	}
	return New(st, reg)
}

func login(t *testing.T, s *Service, name string) {
	t.Helper()
	reply, err := s.Login(context.Background(), &pb.Request{Username: name})
	if err != nil {
		t.Fatal(err)
	}
	if got := reply.GetMsg(); got != chirp.MsgLoginOK {
		t.Fatalf("login %s = %q, want %q", name, got, chirp.MsgLoginOK)
	}
}

func TestLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	login(t, s, "alice")

	// A live session blocks a second login under the same name.
	reply, err := s.Login(ctx, &pb.Request{Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if got := reply.GetMsg(); got != chirp.MsgLoginInvalid {
		t.Fatalf("duplicate login = %q, want %q", got, chirp.MsgLoginInvalid)
	}

	// After a disconnect the user is welcomed back.
	s.DisconnectAll()
	reply, err = s.Login(ctx, &pb.Request{Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := reply.GetMsg(), chirp.MsgLoginWelcomePfx+"alice"; got != want {
		t.Fatalf("relogin = %q, want %q", got, want)
	}
}

func TestLoginRejectsBadUsername(t *testing.T) {
	s := newService(t)
	for _, name := range []string{"", "has space", "semi;colon", "tab\tname"} {
		reply, err := s.Login(context.Background(), &pb.Request{Username: name})
		if err != nil {
			t.Fatal(err)
		}
		if got := reply.GetMsg(); got != chirp.MsgLoginInvalid {
			t.Fatalf("login %q = %q, want %q", name, got, chirp.MsgLoginInvalid)
		}
	}
}

func TestFollowReplies(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	login(t, s, "alice")
	login(t, s, "bob")

	cases := []struct {
		name   string
		user   string
		target string
		want   string
	}{
		{"ok", "alice", "bob", chirp.MsgFollowOK},
		{"duplicate", "alice", "bob", chirp.MsgFollowDuplicate},
		{"self", "alice", "alice", chirp.MsgFollowInvalid},
		{"unknown target", "alice", "ghost", chirp.MsgFollowInvalid},
		{"unknown caller", "ghost", "bob", chirp.MsgFollowInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := s.Follow(ctx, &pb.Request{Username: tc.user, Arguments: []string{tc.target}})
			if err != nil {
				t.Fatal(err)
			}
			if got := reply.GetMsg(); got != tc.want {
				t.Fatalf("follow = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnfollowReplies(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	login(t, s, "alice")
	login(t, s, "bob")
	if _, err := s.Follow(ctx, &pb.Request{Username: "alice", Arguments: []string{"bob"}}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		user   string
		target string
		want   string
	}{
		{"ok", "alice", "bob", chirp.MsgUnfollowOK},
		{"not following", "alice", "bob", chirp.MsgUnfollowNotFound},
		{"self", "alice", "alice", chirp.MsgUnfollowInvalid},
		{"unknown target", "alice", "ghost", chirp.MsgUnfollowInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := s.Unfollow(ctx, &pb.Request{Username: tc.user, Arguments: []string{tc.target}})
			if err != nil {
				t.Fatal(err)
			}
			if got := reply.GetMsg(); got != tc.want {
				t.Fatalf("unfollow = %q, want %q", got, tc.want)
			}
		})
	}
}

// A respawned primary keeps the old one's address, so a client whose gRPC
// channel silently reconnected issues unary calls without a fresh login. The
// handlers must serve those against the on-disk state, not the empty records
// the rebuilt registry starts with.
func TestUnaryHandlersAfterPrimaryRespawn(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	before := newServiceAt(t, dir)
	login(t, before, "alice")
	login(t, before, "bob")
	if _, err := before.Follow(ctx, &pb.Request{Username: "alice", Arguments: []string{"bob"}}); err != nil {
		t.Fatal(err)
	}

	// Same data dir, fresh process state, no re-login.
	after := newServiceAt(t, dir)

	reply, err := after.Follow(ctx, &pb.Request{Username: "alice", Arguments: []string{"bob"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := reply.GetMsg(); got != chirp.MsgFollowDuplicate {
		t.Fatalf("follow after respawn = %q, want %q", got, chirp.MsgFollowDuplicate)
	}
	onDisk, err := after.st.ReadFollowList("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(onDisk, []string{"alice", "bob"}) {
		t.Fatalf("follow file after duplicate follow = %v, want [alice bob]", onDisk)
	}

	reply, err = after.Unfollow(ctx, &pb.Request{Username: "alice", Arguments: []string{"bob"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := reply.GetMsg(); got != chirp.MsgUnfollowOK {
		t.Fatalf("unfollow after respawn = %q, want %q", got, chirp.MsgUnfollowOK)
	}
	onDisk, err = after.st.ReadFollowList("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(onDisk, []string{"alice"}) {
		t.Fatalf("follow file after unfollow = %v, want [alice]", onDisk)
	}

	list, err := after.List(ctx, &pb.Request{Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if got := list.GetFollowers(); !slices.Equal(got, []string{"alice"}) {
		t.Fatalf("followers after respawn = %v, want [alice]", got)
	}
}

func TestList(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	login(t, s, "alice")
	login(t, s, "bob")
	login(t, s, "carol")
	if _, err := s.Follow(ctx, &pb.Request{Username: "carol", Arguments: []string{"alice"}}); err != nil {
		t.Fatal(err)
	}

	reply, err := s.List(ctx, &pb.Request{Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	if got := reply.GetAllUsers(); !slices.Equal(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("all users = %v", got)
	}
	// Registration order, self included.
	if got := reply.GetFollowers(); !slices.Equal(got, []string{"alice", "carol"}) {
		t.Fatalf("followers = %v", got)
	}

	if _, err := s.List(ctx, &pb.Request{Username: "ghost"}); err == nil {
		t.Fatal("list for unknown user succeeded")
	}
}
