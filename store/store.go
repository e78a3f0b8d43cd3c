// Package store is the append-only persistence layer of the primary.
//
// Everything lives under one data directory:
//
//	users.txt          global user list, one username per line
//	users/<u>.txt      follow list, one followed username per line
//	timelines/<u>.txt  inbound log: every post by anyone <u> follows
//	posts/<u>.txt      outbound mirror: posts fanned out on <u>'s behalf
//
// Post records are "<seconds> <poster> <text>\n". Text is the remainder of
// the line after the second token, so multi-word posts round-trip; embedded
// newlines are forbidden.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chirp"
)

// Store reads and writes the on-disk state. Methods are not concurrency-safe
// on their own; the registry serializes mutations per user.
type Store struct {
	root string
}

// Open creates the data directory layout if needed and returns a Store
// rooted at dir.
func Open(dir string) (*Store, error) {
	for _, sub := range []string{"", "users", "timelines", "posts"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Store{root: dir}, nil
}

func (s *Store) usersFile() string { return filepath.Join(s.root, "users.txt") }

func (s *Store) followFile(user string) string {
	return filepath.Join(s.root, "users", user+".txt")
}

func (s *Store) timelineFile(user string) string {
	return filepath.Join(s.root, "timelines", user+".txt")
}

func (s *Store) outboundFile(user string) string {
	return filepath.Join(s.root, "posts", user+".txt")
}

// AppendUser records a newly registered username in the global user list.
func (s *Store) AppendUser(name string) error {
	return appendLine(s.usersFile(), name)
}

// Usernames returns every registered username in registration order.
// A missing users file is an empty system, not an error.
func (s *Store) Usernames() ([]string, error) {
	return readLines(s.usersFile())
}

// AppendFollow appends target to user's follow list.
func (s *Store) AppendFollow(user, target string) error {
	return appendLine(s.followFile(user), target)
}

// WriteFollowList rewrites user's follow list in full. Used on unfollow,
// where an append-only file cannot express the removal.
func (s *Store) WriteFollowList(user string, following []string) error {
	var b strings.Builder
	for _, name := range following {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.followFile(user), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite follow list for %s: %w", user, err)
	}
	return nil
}

// ReadFollowList returns user's followed usernames in follow order.
func (s *Store) ReadFollowList(user string) ([]string, error) {
	return readLines(s.followFile(user))
}

// AppendTimeline appends a post to user's inbound log. This is the commit
// point for delivery: a live push without this append is a bug.
func (s *Store) AppendTimeline(user string, p chirp.Post) error {
	return appendLine(s.timelineFile(user), formatPost(p))
}

// AppendOutbound appends a post to user's outbound mirror log.
func (s *Store) AppendOutbound(user string, p chirp.Post) error {
	return appendLine(s.outboundFile(user), formatPost(p))
}

// TimelineLen counts the posts in user's inbound log.
func (s *Store) TimelineLen(user string) (int, error) {
	lines, err := readLines(s.timelineFile(user))
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// TimelineTail returns the newest at most n posts from user's inbound log
// in chronological (file) order. Unparseable lines are skipped.
func (s *Store) TimelineTail(user string, n int) ([]chirp.Post, error) {
	lines, err := readLines(s.timelineFile(user))
	if err != nil {
		return nil, err
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	posts := make([]chirp.Post, 0, len(lines))
	for _, line := range lines {
		p, err := parsePost(line)
		if err != nil {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func formatPost(p chirp.Post) string {
	return fmt.Sprintf("%d %s %s", p.Seconds, p.Poster, p.Text)
}

func parsePost(line string) (chirp.Post, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return chirp.Post{}, fmt.Errorf("malformed post record %q", line)
	}
	secs, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return chirp.Post{}, fmt.Errorf("malformed post timestamp %q: %w", parts[0], err)
	}
	p := chirp.Post{Seconds: secs, Poster: parts[1]}
	if len(parts) == 3 {
		p.Text = parts[2]
	}
	return p, nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// readLines returns the non-empty lines of path. A missing file yields nil.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
