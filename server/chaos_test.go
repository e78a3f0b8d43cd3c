package server

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"chirp"
	"chirp/server/pb"
)

// TestRandomizedOperations drives a seeded stream of user operations against
// one Service and checks structural invariants after every step: the follow
// graph stays symmetric in memory, matches the follow files on disk, and the
// tracked inbound-log sizes match the logs themselves.
func TestRandomizedOperations(t *testing.T) {
	const steps = 400
	seed := int64(1)
	rng := rand.New(rand.NewSource(seed))

	s := newService(t)
	ctx := context.Background()
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank"}
	pick := func() string { return names[rng.Intn(len(names))] }

	ops := []func() string{
		func() string {
			name := pick()
			reply, err := s.Login(ctx, &pb.Request{Username: name})
			if err != nil {
				t.Fatalf("login %s: %v", name, err)
			}
			return fmt.Sprintf("login %s -> %s", name, reply.GetMsg())
		},
		func() string {
			a, b := pick(), pick()
			reply, err := s.Follow(ctx, &pb.Request{Username: a, Arguments: []string{b}})
			if err != nil {
				t.Fatalf("follow %s %s: %v", a, b, err)
			}
			return fmt.Sprintf("follow %s %s -> %s", a, b, reply.GetMsg())
		},
		func() string {
			a, b := pick(), pick()
			reply, err := s.Unfollow(ctx, &pb.Request{Username: a, Arguments: []string{b}})
			if err != nil {
				t.Fatalf("unfollow %s %s: %v", a, b, err)
			}
			return fmt.Sprintf("unfollow %s %s -> %s", a, b, reply.GetMsg())
		},
		func() string {
			name := pick()
			s.mu.Lock()
			u := s.reg.Lookup(name)
			if u != nil {
				s.fanoutLocked(u, chirp.Post{Seconds: int64(rng.Intn(1 << 20)), Poster: name, Text: "chaos"})
			}
			s.mu.Unlock()
			return fmt.Sprintf("post %s", name)
		},
		func() string {
			s.DisconnectAll()
			return "disconnect all"
		},
	}

	for step := range steps {
		detail := ops[rng.Intn(len(ops))]()
		if err := checkInvariants(s); err != nil {
			t.Fatalf("seed %d step %d (%s): %v", seed, step, detail, err)
		}
	}
}

func checkInvariants(s *Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.reg.Usernames() {
		u := s.reg.Lookup(name)
		if u == nil {
			return fmt.Errorf("listed user %s has no record", name)
		}

		// Forward and reverse edges must agree.
		for _, target := range u.Following {
			other := s.reg.Lookup(target)
			if other == nil {
				return fmt.Errorf("%s follows unknown user %s", name, target)
			}
			if _, ok := other.Followers[name]; !ok {
				return fmt.Errorf("edge %s -> %s has no reverse edge", name, target)
			}
		}
		for follower := range u.Followers {
			f := s.reg.Lookup(follower)
			if f == nil || !f.Follows(name) {
				return fmt.Errorf("follower edge %s <- %s has no forward edge", name, follower)
			}
		}

		// Memory must match the follow file.
		onDisk, err := s.st.ReadFollowList(name)
		if err != nil {
			return err
		}
		if !slices.Equal(onDisk, u.Following) {
			return fmt.Errorf("%s follow file %v != memory %v", name, onDisk, u.Following)
		}

		// The tracked log size must match the log.
		logLen, err := s.st.TimelineLen(name)
		if err != nil {
			return err
		}
		if logLen != u.FollowingFileSize {
			return fmt.Errorf("%s inbound log has %d posts, tracked %d", name, logLen, u.FollowingFileSize)
		}
	}
	return nil
}
