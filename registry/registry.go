// Package registry keeps the in-memory view of every known user and the
// follow graph between them. Follow edges are stored as username references
// in both directions, so the graph survives concurrent mutation and can be
// rebuilt from disk at any time.
//
// Registry methods are not safe for concurrent use; the server serializes
// access. Persistence writes happen inside the same call as the in-memory
// mutation so memory and disk cannot drift apart.
package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"chirp/store"
)

// User is one registered user. FollowingFileSize counts the posts ever
// appended to the user's inbound log; the replay window on stream attach is
// derived from it.
type User struct {
	Username          string
	Connected         bool
	Following         []string            // follow order preserved
	Followers         map[string]struct{} // unordered
	FollowingFileSize int

	hydrated bool // follow list and timeline size loaded from disk
}

// Follows reports whether the user follows name.
func (u *User) Follows(name string) bool {
	return slices.Contains(u.Following, name)
}

// Registry maps usernames to user records. Records are created once and
// never deleted; pointers handed out stay valid for the process lifetime.
type Registry struct {
	store *store.Store
	order []string
	users map[string]*User
}

// Load builds a registry backed by st, populated from the global user list
// with every user disconnected. Follow lists and timeline sizes are loaded
// lazily on each user's next login.
func Load(st *store.Store) (*Registry, error) {
	names, err := st.Usernames()
	if err != nil {
		return nil, fmt.Errorf("read user list: %w", err)
	}
	r := &Registry{store: st, users: make(map[string]*User, len(names))}
	for _, name := range names {
		if _, ok := r.users[name]; ok {
			continue
		}
		r.order = append(r.order, name)
		r.users[name] = &User{Username: name, Followers: make(map[string]struct{})}
	}
	return r, nil
}

// Lookup returns the record for name, or nil if unknown.
func (r *Registry) Lookup(name string) *User {
	return r.users[name]
}

// Usernames returns every known username in registration order.
func (r *Registry) Usernames() []string {
	return slices.Clone(r.order)
}

// FollowersOf returns the usernames of everyone following name, in
// registration order.
func (r *Registry) FollowersOf(name string) []string {
	u := r.users[name]
	if u == nil {
		return nil
	}
	out := make([]string, 0, len(u.Followers))
	for _, candidate := range r.order {
		if _, ok := u.Followers[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

// Register creates a brand-new user, persists it to the global user list,
// and seeds its follow list with its own username so self-authored posts
// mirror into its own logs.
func (r *Registry) Register(name string) (*User, error) {
	if _, ok := r.users[name]; ok {
		return nil, fmt.Errorf("user %s already registered", name)
	}
	if err := r.store.AppendUser(name); err != nil {
		return nil, err
	}
	if err := r.store.WriteFollowList(name, []string{name}); err != nil {
		return nil, err
	}
	u := &User{
		Username:  name,
		Connected: true,
		Following: []string{name},
		Followers: map[string]struct{}{name: {}},
		hydrated:  true,
	}
	r.order = append(r.order, name)
	r.users[name] = u
	return u, nil
}

// Hydrate loads u's follow list and inbound-log size from disk if that has
// not happened since the primary started. Edges to users the follow file
// names are installed in both directions.
func (r *Registry) Hydrate(u *User) error {
	if u.hydrated {
		return nil
	}
	following, err := r.store.ReadFollowList(u.Username)
	if err != nil {
		return err
	}
	for _, name := range following {
		if u.Follows(name) {
			continue
		}
		target := r.users[name]
		if target == nil && name != u.Username {
			// Follow file references a user missing from users.txt.
			slog.Warn("follow list references unknown user", "user", u.Username, "target", name)
			continue
		}
		u.Following = append(u.Following, name)
		if target != nil {
			target.Followers[u.Username] = struct{}{}
		}
	}
	// The user always carries the self edge, even on a fresh follow file.
	if !u.Follows(u.Username) {
		u.Following = append(u.Following, u.Username)
	}
	u.Followers[u.Username] = struct{}{}

	size, err := r.store.TimelineLen(u.Username)
	if err != nil {
		return err
	}
	u.FollowingFileSize = size
	u.hydrated = true
	return nil
}

// Follow adds the a→b edge and appends it to a's follow file.
// Duplicate follows and unknown targets are the caller's errors to map;
// Follow assumes both were checked.
func (r *Registry) Follow(a, b *User) error {
	if err := r.store.AppendFollow(a.Username, b.Username); err != nil {
		return err
	}
	a.Following = append(a.Following, b.Username)
	b.Followers[a.Username] = struct{}{}
	return nil
}

// Unfollow removes the a→b edge and rewrites a's follow file in full.
func (r *Registry) Unfollow(a, b *User) error {
	idx := slices.Index(a.Following, b.Username)
	if idx < 0 {
		return fmt.Errorf("%s does not follow %s", a.Username, b.Username)
	}
	rewritten := slices.Concat(a.Following[:idx], a.Following[idx+1:])
	if err := r.store.WriteFollowList(a.Username, rewritten); err != nil {
		return err
	}
	a.Following = rewritten
	delete(b.Followers, a.Username)
	return nil
}
