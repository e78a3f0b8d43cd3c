package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chirp"
	"chirp/internal/ui"
	"chirp/server/pb"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timelineStream is the slice of the gRPC stream the session logic needs.
// Narrow so tests can fake it.
type timelineStream interface {
	Send(*pb.Message) error
	Recv() (*pb.Message, error)
}

// timeline runs timeline mode: it opens the bidirectional stream and keeps
// it alive across primary failovers. Each time the stream breaks, the
// session re-discovers the primary through the router, re-attaches, and
// retries the one post the broken stream never acknowledged.
func (s *Session) timeline(ctx context.Context) error {
	fmt.Fprintln(s.Out, ui.InfoMsg("timeline mode — type to post"))

	inputs := make(chan string)
	go s.pumpInput(inputs)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 0 // retry until cancelled

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.connect(ctx); err != nil {
			if errors.Is(err, ErrNoPrimary) {
				fmt.Fprintln(s.Out, ui.WarnMsg("no primary available, retrying"))
			}
			if !s.wait(ctx, bo.NextBackOff()) {
				return ctx.Err()
			}
			continue
		}

		stream, err := s.sns.Timeline(ctx)
		if err != nil {
			if !s.wait(ctx, bo.NextBackOff()) {
				return ctx.Err()
			}
			continue
		}
		bo.Reset()

		if s.runStream(ctx, stream, inputs) {
			return ctx.Err()
		}
		// The stream broke; loop back into discovery.
	}
}

// runStream drives one attached stream. It returns true when the session
// is finished (input ended or ctx cancelled) and false when the stream
// broke and the caller should reconnect.
func (s *Session) runStream(ctx context.Context, stream timelineStream, inputs <-chan string) bool {
	if err := stream.Send(s.post(chirp.AttachText)); err != nil {
		return false
	}
	// Retry the post the previous stream lost. Duplicates are possible if
	// that write actually reached the primary before the stream died.
	if s.lastUnsent != "" {
		if err := stream.Send(s.post(s.lastUnsent)); err != nil {
			return false
		}
		s.lastUnsent = ""
	}

	recvDone := make(chan struct{})
	go func() {
		defer close(recvDone)
		for {
			m, err := stream.Recv()
			if err != nil {
				return
			}
			fmt.Fprintln(s.Out, ui.PostLine(m.GetUsername(), m.GetTimestamp().GetSeconds(), m.GetMsg()))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-recvDone:
			return false
		case line, ok := <-inputs:
			if !ok {
				return true
			}
			if line == "" {
				continue
			}
			if err := stream.Send(s.post(line)); err != nil {
				s.lastUnsent = line
				return false
			}
		}
	}
}

// pumpInput feeds user input lines to the timeline loop and closes the
// channel when the input ends.
func (s *Session) pumpInput(inputs chan<- string) {
	defer close(inputs)
	sc := bufio.NewScanner(s.In)
	for sc.Scan() {
		// Newlines are forbidden in post bodies; the scanner already
		// stripped the terminator.
		inputs <- strings.TrimRight(sc.Text(), "\r")
	}
}

// wait sleeps for d or until ctx is cancelled, reporting whether the
// session should keep going.
func (s *Session) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (s *Session) post(text string) *pb.Message {
	return &pb.Message{
		Username:  s.Username,
		Msg:       text,
		Timestamp: &timestamppb.Timestamp{Seconds: time.Now().Unix()},
	}
}
