package cli

import (
	"github.com/spf13/cobra"

	"toyrobot/internal/config"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
)

type playOptions struct {
	configPath string
	width      int
	height     int
	multiDigit bool
	logLevel   string
	logFormat  string
}

func (a *App) newRootCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "toyrobot",
		Short: "Drive a toy robot around a table",
		Long: `toyrobot simulates a robot on a rectangular table. Commands are read one
per line from standard input:

  PLACE X,Y,F   put the robot at X,Y facing NORTH, SOUTH, EAST or WEST
  MOVE          move one unit forward
  LEFT, RIGHT   turn 90 degrees
  REPORT        print the position and facing
  HELP, EXIT

Commands other than PLACE, HELP and EXIT are ignored until the robot is placed.
Moves that would drop the robot off the table are ignored.

Examples:
  # Default 5x5 table
  toyrobot

  # Larger table with multi-digit coordinates
  toyrobot --width 20 --height 20 --multi-digit

  # Settings from a file, debug logs on stderr
  toyrobot -c toyrobot.yaml --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return a.play(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.IntVar(&opts.width, "width", interpreter.DefaultSize, "table width")
	flags.IntVar(&opts.height, "height", interpreter.DefaultSize, "table height")
	flags.BoolVar(&opts.multiDigit, "multi-digit", false, "accept PLACE coordinates with more than one digit")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (console, json)")

	return cmd
}

// resolve loads the config file, if any, and applies flags set on the
// command line over it.
func (o *playOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Table.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Table.Height = o.height
	}
	if flags.Changed("multi-digit") {
		cfg.MultiDigit = o.multiDigit
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) play(cmd *cobra.Command, cfg *config.Config) error {
	table, err := interpreter.NewTableSize(cfg.Table.Width, cfg.Table.Height)
	if err != nil {
		return err
	}

	session := interpreter.NewSession(table, a.stdout,
		interpreter.WithMultiDigit(cfg.MultiDigit),
		interpreter.WithLogger(logging.New(cfg.Log, a.stderr)),
	)
	return session.Run(cmd.Context(), a.stdin)
}
