package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Action is a command that takes no arguments.
type Action int

const (
	NoAction Action = iota
	Move
	Left
	Right
	Report
	Exit
	Help
)

var actionNames = map[string]Action{
	"MOVE":   Move,
	"LEFT":   Left,
	"RIGHT":  Right,
	"REPORT": Report,
	"EXIT":   Exit,
	"HELP":   Help,
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "NONE"
}

func (a *Action) Capture(values []string) error {
	v, ok := actionNames[strings.ToUpper(strings.Join(values, ""))]
	if !ok {
		return fmt.Errorf("unknown command %q", strings.Join(values, ""))
	}
	*a = v
	return nil
}

// Command is one input line.
type Command struct {
	Place  *Place `parser:"  @@"`
	Action Action `parser:"| @('MOVE' | 'LEFT' | 'RIGHT' | 'REPORT' | 'EXIT' | 'HELP')"`
}

// Place is PLACE <x>, <y>, <DIRECTION>. Coordinates stay as written so the
// digit count can be checked.
type Place struct {
	X      string `parser:"'PLACE' @Int ','"`
	Y      string `parser:"@Int ','"`
	Facing Facing `parser:"@('NORTH' | 'SOUTH' | 'EAST' | 'WEST')"`
}

var errCoordinateDigits = errors.New("coordinate has more than one digit")

// Coordinates converts X and Y. Unless multiDigit is set each coordinate
// must be a single digit.
func (p *Place) Coordinates(multiDigit bool) (int, int, error) {
	x, err := coordinate(p.X, multiDigit)
	if err != nil {
		return 0, 0, err
	}
	y, err := coordinate(p.Y, multiDigit)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func coordinate(s string, multiDigit bool) (int, error) {
	if !multiDigit && len(s) != 1 {
		return 0, fmt.Errorf("%w: %s", errCoordinateDigits, s)
	}
	return strconv.Atoi(s)
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.CaseInsensitive("Ident"),
	participle.Elide("Whitespace"),
)

// Parse classifies a single line. Keywords are case-insensitive and
// surrounding whitespace is ignored; the whole line must match.
func Parse(line string) (*Command, error) {
	return parser.ParseString("input", line)
}

// Exec applies c to the session and reports whether the session goes on.
func (c *Command) Exec(s *Session) bool {
	switch {
	case c.Place != nil:
		s.place(c.Place)
	case c.Action == Exit:
		s.running = false
	case c.Action == Help:
		s.Help()
	case c.Action == NoAction:
	case !s.Table.HasRobot():
		s.ignored(c.Action.String(), "robot not placed")
	default:
		s.act(c.Action)
	}
	return s.running
}
