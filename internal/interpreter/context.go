package interpreter

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"

	"toyrobot/internal/logging"
)

// Session stores the table, the robot and where output goes. It replaces
// any process wide state: the caller owns one Session per game.
type Session struct {
	ID    string
	Table *Table
	Robot *Robot
	Out   io.Writer

	multiDigit bool
	log        *bolt.Logger
	running    bool
}

// Option configures a Session.
type Option func(*Session)

// WithMultiDigit lets PLACE take coordinates of more than one digit.
func WithMultiDigit(enabled bool) Option {
	return func(s *Session) {
		s.multiDigit = enabled
	}
}

func WithLogger(l *bolt.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithSessionID(id string) Option {
	return func(s *Session) {
		s.ID = id
	}
}

// NewSession starts a game on table with a fresh, unplaced robot.
func NewSession(table *Table, out io.Writer, opts ...Option) *Session {
	if table == nil {
		table = NewTable()
	}
	if out == nil {
		out = io.Discard
	}
	s := &Session{
		ID:      uuid.NewString(),
		Table:   table,
		Robot:   NewRobot(),
		Out:     out,
		log:     logging.Nop(),
		running: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Running is false once EXIT has been processed.
func (s *Session) Running() bool {
	return s.running
}

// Process handles one line of input and reports whether the session goes
// on. Lines that do not parse, or do not apply yet, change nothing.
func (s *Session) Process(line string) bool {
	if !s.running {
		return false
	}
	cmd, err := Parse(line)
	if err != nil {
		logging.With(s.log.Debug(),
			logging.SessionID(s.ID),
			logging.Command(line),
			logging.Reason("unrecognized"),
			logging.ErrorField(err),
		).Msg("command ignored")
		return true
	}
	return cmd.Exec(s)
}

// Run shows the help banner and then processes lines from in until EXIT,
// end of input or ctx is done. Lines of any length are read whole; one
// that is not a command is ignored like any other. Only lines are read concurrently; each one
// is fully handled before the next is taken.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logging.With(s.log.Info(),
		logging.SessionID(s.ID),
		logging.Table(s.Table.Width(), s.Table.Height()),
	).Msg("session started")

	s.Help()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if err == nil || line != "" {
				select {
				case lines <- strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"):
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				errc <- err
				return
			}
		}
	}()

	for s.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			s.Process(line)
		}
	}

	logging.With(s.log.Info(), logging.SessionID(s.ID)).Msg("session ended")
	return nil
}

func (s *Session) place(p *Place) {
	x, y, err := p.Coordinates(s.multiDigit)
	if err != nil {
		logging.With(s.log.Debug(),
			logging.SessionID(s.ID),
			logging.Reason("bad coordinates"),
			logging.ErrorField(err),
		).Msg("PLACE ignored")
		return
	}
	if !s.Robot.Place(x, y, p.Facing, s.Table.Width(), s.Table.Height()) {
		logging.With(s.log.Debug(),
			logging.SessionID(s.ID),
			logging.Position(x, y),
			logging.Reason("off the table"),
		).Msg("PLACE ignored")
		return
	}
	s.Table.MarkOccupied()
	logging.With(s.log.Debug(),
		logging.SessionID(s.ID),
		logging.Position(x, y),
		logging.Facing(p.Facing.String()),
	).Msg("robot placed")
}

func (s *Session) act(a Action) {
	switch a {
	case Move:
		if !s.Robot.Move(s.Table.Width(), s.Table.Height()) {
			s.ignored(a.String(), "would fall off the table")
		}
	case Left:
		s.Robot.Left()
	case Right:
		s.Robot.Right()
	case Report:
		s.report()
	}
}

func (s *Session) ignored(command, reason string) {
	logging.With(s.log.Debug(),
		logging.SessionID(s.ID),
		logging.Command(command),
		logging.Reason(reason),
	).Msg("command ignored")
}
