// Package chirp holds the shared domain types of the chirp micro-blog:
// posts, the reply-string contract between client and server, and username
// validation. Heavier machinery lives in the sub-packages (store, registry,
// server, router, heartbeat, client).
package chirp

import "regexp"

// AttachText is the reserved message body a client sends as its first
// Timeline message to bind the stream to its user. It is not a real post.
// Sending it as a post body is indistinguishable from an attach, which is a
// known wire limitation kept for compatibility.
const AttachText = "Set Stream"

// usernamePattern is the full set of characters a username may contain.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// ValidUsername reports whether name is non-empty and contains only
// letters, digits, underscore, dot, and hyphen.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// Post is one timeline entry. Text must not contain newlines; the on-disk
// record format is newline-terminated.
type Post struct {
	Seconds int64  // wall-clock seconds since the epoch, assigned by the author
	Poster  string // author username
	Text    string // post body
}

// Reply strings are part of the wire contract — the client parses them.
const (
	MsgLoginOK          = "Login Successful!"
	MsgLoginWelcomePfx  = "Welcome Back " // followed by the username
	MsgLoginInvalid     = "Invalid Username"
	MsgFollowOK         = "Follow Successful"
	MsgFollowInvalid    = "Follow Failed -- Invalid Username"
	MsgFollowDuplicate  = "Follow Failed -- Already Following User"
	MsgUnfollowOK       = "Unfollow Successful"
	MsgUnfollowInvalid  = "Unfollow Failed -- Invalid Username"
	MsgUnfollowNotFound = "Unfollow Failed -- Not Following User"
)
