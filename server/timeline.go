package server

import (
	"log/slog"
	"time"

	"chirp"
	"chirp/registry"
	"chirp/server/pb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// outboxSize bounds the per-user in-memory buffer of undelivered posts.
// On overflow the oldest entry is dropped; the durable log keeps everything.
const outboxSize = 20

// replayWindow is how many of the newest inbound-log posts are replayed
// when a timeline stream attaches.
const replayWindow = 20

// postStream is the slice of the gRPC bidirectional stream the engine needs.
// Narrow so tests can fake it.
type postStream interface {
	Send(*pb.Message) error
	Recv() (*pb.Message, error)
}

// session is one user's live timeline attachment: a bounded outbox drained
// to the stream by a dedicated writer goroutine.
type session struct {
	user   *registry.User
	outbox chan chirp.Post
	quit   chan struct{} // closed by the stream handler on exit
	done   chan struct{} // closed by the writer when it stops sending
}

// Timeline is the bidirectional post stream. The first message whose body is
// the reserved attach text binds the stream to its username and replays the
// newest posts; every other message is fanned out to the poster's followers.
func (s *Service) Timeline(stream pb.SNSService_TimelineServer) error {
	return s.runTimeline(stream)
}

func (s *Service) runTimeline(stream postStream) error {
	var sess *session
	defer func() {
		if sess != nil {
			s.detach(sess)
		}
	}()

	for {
		msg, err := stream.Recv()
		if err != nil {
			// Client disconnect or transport error ends the session; the
			// server keeps running.
			return nil
		}

		name := msg.GetUsername()
		s.mu.Lock()
		u := s.reg.Lookup(name)
		if u == nil {
			s.mu.Unlock()
			slog.Error("timeline message from unregistered user", "user", name)
			return status.Error(codes.InvalidArgument, "unregistered user")
		}
		// A client that reconnects to a respawned primary re-attaches
		// without a fresh login; load its state from disk if needed.
		if err := s.reg.Hydrate(u); err != nil {
			s.mu.Unlock()
			slog.Error("load user state", "user", name, "err", err)
			return status.Error(codes.Unknown, "could not load user state")
		}

		if msg.GetMsg() == chirp.AttachText {
			sess = s.attachLocked(u, stream)
			s.mu.Unlock()
			continue
		}

		s.fanoutLocked(u, postFromProto(msg))
		s.mu.Unlock()
	}
}

// attachLocked binds stream to u: it creates the session, pre-loads the
// replay window into the outbox, publishes the session for fan-out, and
// starts the writer. Replay posts are enqueued before the session becomes
// visible, so they always precede live deliveries. Called with s.mu held.
func (s *Service) attachLocked(u *registry.User, stream postStream) *session {
	sess := &session{
		user:   u,
		outbox: make(chan chirp.Post, outboxSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	tail, err := s.st.TimelineTail(u.Username, replayWindow)
	if err != nil {
		slog.Error("replay timeline", "user", u.Username, "err", err)
	}
	for _, p := range tail {
		sess.outbox <- p
	}

	u.Connected = true
	s.sessions[u.Username] = sess
	go s.drain(sess, stream)
	return sess
}

// detach tears the session down: the writer is stopped and waited for, and
// the user is marked disconnected unless a newer attachment replaced this
// session in the meantime.
func (s *Service) detach(sess *session) {
	close(sess.quit)
	<-sess.done

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[sess.user.Username] == sess {
		delete(s.sessions, sess.user.Username)
		sess.user.Connected = false
	}
}

// drain moves posts from the outbox to the stream. It is the only goroutine
// that sends on the stream.
func (s *Service) drain(sess *session, stream postStream) {
	defer close(sess.done)
	for {
		select {
		case <-sess.quit:
			return
		case p := <-sess.outbox:
			if err := stream.Send(postToProto(p)); err != nil {
				return
			}
		}
	}
}

// fanoutLocked delivers one post to every follower of the author: durable
// append to the follower's inbound log first (the commit point), then the
// outbound mirror, then the follower's live stream if one is attached. The
// author's own live stream is skipped. Called with s.mu held.
func (s *Service) fanoutLocked(author *registry.User, p chirp.Post) {
	for _, name := range s.reg.FollowersOf(author.Username) {
		follower := s.reg.Lookup(name)
		if follower == nil {
			continue
		}
		if err := s.st.AppendTimeline(name, p); err != nil {
			slog.Error("append inbound log", "user", name, "err", err)
			continue
		}
		follower.FollowingFileSize++
		if err := s.st.AppendOutbound(name, p); err != nil {
			slog.Error("append outbound log", "user", name, "err", err)
		}

		if name == author.Username || !follower.Connected {
			continue
		}
		sess := s.sessions[name]
		if sess == nil {
			continue
		}
		enqueue(sess.outbox, p)
	}
}

// enqueue adds p to a session outbox, evicting the oldest buffered post if
// the outbox is full. All callers hold s.mu, so there is a single producer.
func enqueue(outbox chan chirp.Post, p chirp.Post) {
	for {
		select {
		case outbox <- p:
			return
		default:
		}
		select {
		case <-outbox:
		default:
		}
	}
}

func postFromProto(m *pb.Message) chirp.Post {
	p := chirp.Post{Poster: m.GetUsername(), Text: m.GetMsg()}
	if ts := m.GetTimestamp(); ts != nil {
		p.Seconds = ts.GetSeconds()
	} else {
		p.Seconds = time.Now().Unix()
	}
	return p
}

func postToProto(p chirp.Post) *pb.Message {
	return &pb.Message{
		Username:  p.Poster,
		Msg:       p.Text,
		Timestamp: &timestamppb.Timestamp{Seconds: p.Seconds},
	}
}
