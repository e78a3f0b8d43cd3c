package server

import (
	"io"
	"testing"
	"time"

	"chirp"
	"chirp/server/pb"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeStream scripts one side of the bidirectional stream: messages pushed
// into in come out of Recv, and everything the engine sends lands in sent.
type fakeStream struct {
	in   chan *pb.Message
	sent chan *pb.Message
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		in:   make(chan *pb.Message),
		sent: make(chan *pb.Message, 64),
	}
}

func (f *fakeStream) Recv() (*pb.Message, error) {
	m, ok := <-f.in
	if !ok {
		return nil, io.EOF
	}
	return m, nil
}

func (f *fakeStream) Send(m *pb.Message) error {
	f.sent <- m
	return nil
}

func (f *fakeStream) attach(user string) {
	f.in <- &pb.Message{Username: user, Msg: chirp.AttachText}
}

func (f *fakeStream) post(user, text string, secs int64) {
	f.in <- &pb.Message{
		Username:  user,
		Msg:       text,
		Timestamp: &timestamppb.Timestamp{Seconds: secs},
	}
}

func (f *fakeStream) waitSent(t *testing.T) *pb.Message {
	t.Helper()
	select {
	case m := <-f.sent:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a delivery")
		return nil
	}
}

func (f *fakeStream) expectSilent(t *testing.T) {
	t.Helper()
	select {
	case m := <-f.sent:
		t.Fatalf("unexpected delivery: %v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

// run drives the handler in the background and returns a wait func.
func run(s *Service, f *fakeStream) func() error {
	errc := make(chan error, 1)
	go func() { errc <- s.runTimeline(f) }()
	return func() error {
		close(f.in)
		return <-errc
	}
}

// waitAttached blocks until user's live session is installed.
func waitAttached(t *testing.T, s *Service, user string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		_, ok := s.sessions[user]
		s.mu.Unlock()
		if ok {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("%s never attached", user)
}

func TestTimelineReplaysNewestOnAttach(t *testing.T) {
	s := newService(t)
	login(t, s, "alice")
	for i := range 25 {
		p := chirp.Post{Seconds: int64(1000 + i), Poster: "bob", Text: "old"}
		if err := s.st.AppendTimeline("alice", p); err != nil {
			t.Fatal(err)
		}
	}

	f := newFakeStream()
	wait := run(s, f)
	f.attach("alice")

	for i := range 20 {
		m := f.waitSent(t)
		if want := int64(1005 + i); m.GetTimestamp().GetSeconds() != want {
			t.Fatalf("replay[%d] seconds = %d, want %d", i, m.GetTimestamp().GetSeconds(), want)
		}
	}
	f.expectSilent(t)
	if err := wait(); err != nil {
		t.Fatal(err)
	}
}

func TestTimelineFanout(t *testing.T) {
	s := newService(t)
	login(t, s, "alice")
	login(t, s, "bob")

	fa, fb := newFakeStream(), newFakeStream()
	waitA, waitB := run(s, fa), run(s, fb)
	fa.attach("alice")
	fb.attach("bob")
	waitAttached(t, s, "alice")
	waitAttached(t, s, "bob")

	s.mu.Lock()
	err := s.reg.Follow(s.reg.Lookup("alice"), s.reg.Lookup("bob"))
	s.mu.Unlock()
	if err != nil {
		t.Fatal(err)
	}

	fb.post("bob", "hello world", 99)

	m := fa.waitSent(t)
	if m.GetUsername() != "bob" || m.GetMsg() != "hello world" || m.GetTimestamp().GetSeconds() != 99 {
		t.Fatalf("delivered = %v", m)
	}
	// The author's own live stream stays quiet.
	fb.expectSilent(t)

	// Both the follower's inbound log and the author's own (self-follow)
	// carry the post durably.
	for _, user := range []string{"alice", "bob"} {
		tail, err := s.st.TimelineTail(user, 20)
		if err != nil {
			t.Fatal(err)
		}
		if len(tail) != 1 || tail[0].Text != "hello world" {
			t.Fatalf("%s inbound log = %+v", user, tail)
		}
	}

	if err := waitA(); err != nil {
		t.Fatal(err)
	}
	if err := waitB(); err != nil {
		t.Fatal(err)
	}
}

func TestTimelineSkipsDisconnectedFollower(t *testing.T) {
	s := newService(t)
	login(t, s, "alice")
	login(t, s, "bob")
	if err := s.reg.Follow(s.reg.Lookup("alice"), s.reg.Lookup("bob")); err != nil {
		t.Fatal(err)
	}

	// No live session for alice: delivery is durable only.
	fb := newFakeStream()
	waitB := run(s, fb)
	fb.attach("bob")
	fb.post("bob", "offline delivery", 7)

	if err := waitB(); err != nil {
		t.Fatal(err)
	}
	tail, err := s.st.TimelineTail("alice", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail) != 1 || tail[0].Text != "offline delivery" {
		t.Fatalf("alice inbound log = %+v", tail)
	}
}

func TestTimelineDetachClearsSession(t *testing.T) {
	s := newService(t)
	login(t, s, "alice")

	f := newFakeStream()
	wait := run(s, f)
	f.attach("alice")
	if err := wait(); err != nil {
		t.Fatal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) != 0 {
		t.Fatalf("sessions not cleared: %v", s.sessions)
	}
	if s.reg.Lookup("alice").Connected {
		t.Fatal("user still marked connected after detach")
	}
}

func TestTimelineRejectsUnknownUser(t *testing.T) {
	s := newService(t)
	f := newFakeStream()
	errc := make(chan error, 1)
	go func() { errc <- s.runTimeline(f) }()

	f.in <- &pb.Message{Username: "ghost", Msg: chirp.AttachText}
	if err := <-errc; err == nil {
		t.Fatal("stream for unknown user succeeded")
	}
	close(f.in)
}

func TestEnqueueDropsOldest(t *testing.T) {
	outbox := make(chan chirp.Post, 3)
	for i := range 5 {
		enqueue(outbox, chirp.Post{Seconds: int64(i)})
	}
	close(outbox)

	var got []int64
	for p := range outbox {
		got = append(got, p.Seconds)
	}
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Fatalf("outbox after overflow = %v, want [2 3 4]", got)
	}
}
