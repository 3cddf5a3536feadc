package interpreter

import "fmt"

const helpText = `Valid commands are (not case sensitive)...

	PLACE 0, 0, NORTH (where the 0's represent horizontal and vertical placement respectively)
	MOVE (moves the Robot one unit in the direction it is facing)
	LEFT (turns the Robot left 90 degrees while not moving from its spot)
	RIGHT (turns the Robot right 90 degrees while not moving from its spot)
	REPORT (displays a report on the position and direction the Robot is facing)
	HELP (displays this message again)
	EXIT (ends the program)

Please note, the Robot ignores commands until it has been placed on the Table
`

// Help prints the command summary.
func (s *Session) Help() {
	fmt.Fprint(s.Out, helpText+"\n")
}

func (s *Session) report() {
	fmt.Fprintln(s.Out, s.Robot.Report())
}
