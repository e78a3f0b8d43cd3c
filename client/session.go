// Package client implements the interactive chirp session: primary
// discovery through the router, login, the command loop, and the live
// timeline stream with transparent reconnection.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"sort"
	"strings"

	"chirp"
	"chirp/internal/ui"
	"chirp/server/pb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Session is one user's client. A session owns the connection state the
// reconnect protocol needs: the last primary address discovery returned,
// and the last post that was never acknowledged by a broken stream.
type Session struct {
	RouterAddr string
	Username   string
	Port       string

	In  io.Reader // user input, normally stdin
	Out io.Writer // rendered output, normally stdout

	conn      *grpc.ClientConn
	sns       pb.SNSServiceClient
	lastAddr  string
	connected bool
	// lastUnsent is the single-slot retry buffer: the one post whose write
	// failed when the previous stream broke.
	lastUnsent string
}

// New builds a session for username against the router at routerAddr:port.
func New(routerAddr, username, port string, in io.Reader, out io.Writer) *Session {
	return &Session{
		RouterAddr: routerAddr,
		Username:   username,
		Port:       port,
		In:         in,
		Out:        out,
	}
}

// Run connects and serves the command loop until the input ends or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context) error {
	if !chirp.ValidUsername(s.Username) {
		return fmt.Errorf("invalid username %q", s.Username)
	}
	if err := s.connect(ctx); err != nil {
		return err
	}
	fmt.Fprintln(s.Out, ui.SuccessMsg("logged in as %s", s.Username))

	sc := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, ui.Prompt("cmd"))
		if !sc.Scan() {
			return sc.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := s.dispatch(ctx, line); err != nil {
			return err
		}
	}
}

// dispatch runs one command. Malformed input is reported locally without
// contacting the server.
func (s *Session) dispatch(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch {
	case cmd == "LIST" && arg == "":
		return s.list(ctx)
	case cmd == "FOLLOW" && arg != "":
		return s.follow(ctx, arg)
	case cmd == "UNFOLLOW" && arg != "":
		return s.unfollow(ctx, arg)
	case cmd == "TIMELINE" && arg == "":
		return s.timeline(ctx)
	case cmd == "QUIT" && arg == "":
		return io.EOF
	default:
		fmt.Fprintln(s.Out, ui.ErrorMsg("%s: invalid command %q (LIST, FOLLOW <user>, UNFOLLOW <user>, TIMELINE, QUIT)", chirp.FailureInvalid, line))
		return nil
	}
}

// connect makes sure the session talks to the current primary: discover
// through the router, and when the address changed, re-dial and re-login.
func (s *Session) connect(ctx context.Context) error {
	addr, err := Discover(s.RouterAddr, s.Port)
	if err != nil {
		return err
	}
	if addr == s.lastAddr {
		return nil
	}

	if s.connected {
		fmt.Fprintln(s.Out, ui.ReconnectBanner(addr, s.Port))
	}

	if s.conn != nil {
		_ = s.conn.Close()
	}
	conn, err := grpc.NewClient(
		net.JoinHostPort(addr, s.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("grpc dial %s:%s: %w", addr, s.Port, err)
	}
	s.conn = conn
	s.sns = pb.NewSNSServiceClient(conn)

	reply, err := s.sns.Login(ctx, &pb.Request{Username: s.Username})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if reply.GetMsg() == chirp.MsgLoginInvalid {
		return fmt.Errorf("login refused: username %q is invalid or already connected", s.Username)
	}
	s.lastAddr = addr
	s.connected = true
	return nil
}

// Close releases the gRPC channel.
func (s *Session) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// redial drops the cached primary address and runs discovery again. Reports
// whether a new primary was reached and logged into.
func (s *Session) redial(ctx context.Context) bool {
	s.lastAddr = ""
	if err := s.connect(ctx); err != nil {
		fmt.Fprintln(s.Out, ui.ErrorMsg("reconnect failed: %v", err))
		return false
	}
	return true
}

func (s *Session) list(ctx context.Context) error {
	reply, err := s.sns.List(ctx, &pb.Request{Username: s.Username})
	if err != nil {
		fmt.Fprintln(s.Out, ui.WarnMsg("list failed: %v, reconnecting", err))
		if !s.redial(ctx) {
			return nil
		}
		reply, err = s.sns.List(ctx, &pb.Request{Username: s.Username})
		if err != nil {
			fmt.Fprintln(s.Out, ui.ErrorMsg("list failed: %v", err))
			return nil
		}
	}
	all := append([]string(nil), reply.GetAllUsers()...)
	followers := append([]string(nil), reply.GetFollowers()...)
	sort.Strings(all)
	sort.Strings(followers)
	fmt.Fprintln(s.Out, ui.InfoMsg("users: %s", strings.Join(all, ", ")))
	fmt.Fprintln(s.Out, ui.InfoMsg("followers: %s", strings.Join(followers, ", ")))
	return nil
}

func (s *Session) follow(ctx context.Context, target string) error {
	reply, err := s.sns.Follow(ctx, &pb.Request{Username: s.Username, Arguments: []string{target}})
	if err != nil {
		fmt.Fprintln(s.Out, ui.WarnMsg("follow failed: %v, reconnecting", err))
		if !s.redial(ctx) {
			return nil
		}
		reply, err = s.sns.Follow(ctx, &pb.Request{Username: s.Username, Arguments: []string{target}})
		if err != nil {
			fmt.Fprintln(s.Out, ui.ErrorMsg("follow failed: %v", err))
			return nil
		}
	}
	s.report(reply.GetMsg(), ParseFollowReply(reply.GetMsg()))
	return nil
}

func (s *Session) unfollow(ctx context.Context, target string) error {
	reply, err := s.sns.Unfollow(ctx, &pb.Request{Username: s.Username, Arguments: []string{target}})
	if err != nil {
		fmt.Fprintln(s.Out, ui.WarnMsg("unfollow failed: %v, reconnecting", err))
		if !s.redial(ctx) {
			return nil
		}
		reply, err = s.sns.Unfollow(ctx, &pb.Request{Username: s.Username, Arguments: []string{target}})
		if err != nil {
			fmt.Fprintln(s.Out, ui.ErrorMsg("unfollow failed: %v", err))
			return nil
		}
	}
	s.report(reply.GetMsg(), ParseUnfollowReply(reply.GetMsg()))
	return nil
}

// report surfaces a command reply by name, styled by outcome.
func (s *Session) report(msg string, st chirp.Status) {
	if st == chirp.Success {
		fmt.Fprintln(s.Out, ui.SuccessMsg("%s", msg))
	} else {
		fmt.Fprintln(s.Out, ui.ErrorMsg("%s", msg))
	}
}
