package registry

import (
	"slices"
	"testing"

	"chirp"
	"chirp/store"
)

func open(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestRegisterSeedsSelfFollow(t *testing.T) {
	st := open(t)
	r, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}

	u, err := r.Register("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !u.Connected {
		t.Fatal("new user not connected")
	}
	if !u.Follows("alice") {
		t.Fatal("new user does not follow itself")
	}
	if _, ok := u.Followers["alice"]; !ok {
		t.Fatal("new user is not its own follower")
	}

	// The self edge must be on disk too, so it survives a restart.
	following, err := st.ReadFollowList("alice")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(following, []string{"alice"}) {
		t.Fatalf("persisted follow list = %v, want [alice]", following)
	}

	if _, err := r.Register("alice"); err == nil {
		t.Fatal("re-registering an existing user succeeded")
	}
}

func TestFollowSymmetry(t *testing.T) {
	r, err := Load(open(t))
	if err != nil {
		t.Fatal(err)
	}
	alice, _ := r.Register("alice")
	bob, _ := r.Register("bob")

	if err := r.Follow(alice, bob); err != nil {
		t.Fatal(err)
	}
	if !alice.Follows("bob") {
		t.Fatal("forward edge missing")
	}
	if _, ok := bob.Followers["alice"]; !ok {
		t.Fatal("reverse edge missing")
	}
	if got := r.FollowersOf("bob"); !slices.Equal(got, []string{"alice", "bob"}) {
		t.Fatalf("FollowersOf(bob) = %v, want [alice bob]", got)
	}

	if err := r.Unfollow(alice, bob); err != nil {
		t.Fatal(err)
	}
	if alice.Follows("bob") {
		t.Fatal("forward edge survived unfollow")
	}
	if _, ok := bob.Followers["alice"]; ok {
		t.Fatal("reverse edge survived unfollow")
	}
	if err := r.Unfollow(alice, bob); err == nil {
		t.Fatal("unfollowing a non-followed user succeeded")
	}
}

func TestLoadAndHydrate(t *testing.T) {
	st := open(t)
	{
		r, err := Load(st)
		if err != nil {
			t.Fatal(err)
		}
		alice, _ := r.Register("alice")
		bob, _ := r.Register("bob")
		if err := r.Follow(bob, alice); err != nil {
			t.Fatal(err)
		}
	}

	// Simulate a primary restart: fresh registry from the same store.
	r, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Usernames(); !slices.Equal(got, []string{"alice", "bob"}) {
		t.Fatalf("usernames = %v, want [alice bob]", got)
	}

	bob := r.Lookup("bob")
	if bob == nil {
		t.Fatal("bob not loaded")
	}
	if bob.Connected {
		t.Fatal("loaded user marked connected")
	}
	if bob.Follows("alice") {
		t.Fatal("follow list loaded eagerly")
	}

	if err := r.Hydrate(bob); err != nil {
		t.Fatal(err)
	}
	if !bob.Follows("alice") || !bob.Follows("bob") {
		t.Fatalf("hydrated follow list = %v", bob.Following)
	}
	alice := r.Lookup("alice")
	if _, ok := alice.Followers["bob"]; !ok {
		t.Fatal("hydrate did not install the reverse edge")
	}

	// Hydrating twice must not duplicate edges.
	if err := r.Hydrate(bob); err != nil {
		t.Fatal(err)
	}
	if len(bob.Following) != 2 {
		t.Fatalf("re-hydrate duplicated edges: %v", bob.Following)
	}
}

func TestHydrateLoadsTimelineSize(t *testing.T) {
	st := open(t)
	r, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Register("alice"); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		p := chirp.Post{Seconds: int64(i), Poster: "alice", Text: "post"}
		if err := st.AppendTimeline("alice", p); err != nil {
			t.Fatal(err)
		}
	}

	r2, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	alice := r2.Lookup("alice")
	if err := r2.Hydrate(alice); err != nil {
		t.Fatal(err)
	}
	if alice.FollowingFileSize != 3 {
		t.Fatalf("FollowingFileSize = %d, want 3", alice.FollowingFileSize)
	}
}

func TestHydrateSkipsUnknownTargets(t *testing.T) {
	st := open(t)
	if err := st.AppendUser("alice"); err != nil {
		t.Fatal(err)
	}
	if err := st.WriteFollowList("alice", []string{"alice", "ghost"}); err != nil {
		t.Fatal(err)
	}

	r, err := Load(st)
	if err != nil {
		t.Fatal(err)
	}
	alice := r.Lookup("alice")
	if err := r.Hydrate(alice); err != nil {
		t.Fatal(err)
	}
	if alice.Follows("ghost") {
		t.Fatal("edge installed to unknown user")
	}
}
