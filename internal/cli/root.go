// Package cli implements the command-line interface for colorcube.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kenzierocks/color-cube-solver/internal/config"
	"github.com/kenzierocks/color-cube-solver/internal/logging"
	"github.com/kenzierocks/color-cube-solver/internal/state"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

const version = "0.1.0"

const configFlag = "config"

// NewRootCommand builds the colorcube command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "colorcube",
		Short: "Color Cube scrambler",
		Long: `Color Cube - scrambles an N×N×N cube of colored faces and shows every
turn in the terminal.

Without a subcommand, colorcube behaves like "colorcube run". Runs are
recorded so they can be listed, exported and replayed later.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnimated,
	}

	pf := root.PersistentFlags()
	pf.String(configFlag, "", "Config file (default: ~/.colorcube/config.yaml)")
	pf.String(config.KeyDBPath, "", "Database file path (default: ~/.colorcube/colorcube.db)")
	pf.BoolP(config.KeyVerbose, "v", false, "Enable verbose output")
	addRunFlags(root.Flags())

	root.AddCommand(
		newRunCommand(),
		newScrambleCommand(),
		newHistoryCommand(),
		newReplayCommand(),
		newExportCommand(),
		newStatusCommand(),
		newStatsCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what a command needs once flags are parsed.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	state    *state.StateFile
	db       *storage.DB
	logClose io.Closer
}

// setup loads configuration and opens the state file and database. When
// tui is set, logs go to a file so they do not garble the display.
func setup(cmd *cobra.Command, tui bool) (*app, error) {
	cfgFile, _ := cmd.Flags().GetString(configFlag)
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if tui {
		path := cfg.LogFile
		if path == "" {
			dir, err := config.DefaultDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "colorcube.log")
		}
		a.log, a.logClose, err = logging.NewFile(path, cfg.Verbose)
		if err != nil {
			return nil, err
		}
	} else {
		a.log = logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	}

	a.state, err = state.NewDefaultStateFile()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = a.state.DBPath()
	}
	a.db, err = storage.OpenDefault(dbPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.log.WithField("db", a.db.Path()).Debug("database opened")

	return a, nil
}

// Close releases the database and log file.
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logClose != nil {
		a.logClose.Close()
	}
}

// rememberRun stores runID as the last run, along with the database it
// lives in.
func (a *app) rememberRun(runID string, seed uint64, size int) {
	if err := a.state.SetDBPath(a.db.Path()); err != nil {
		a.log.WithError(err).Warn("failed to save state")
		return
	}
	if err := a.state.SetLastRun(runID, seed, size); err != nil {
		a.log.WithError(err).Warn("failed to save state")
	}
}

// resolveRunID returns args[0], or the last recorded run.
func (a *app) resolveRunID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if id := a.state.LastRunID(); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no run recorded yet; run colorcube first or pass a run ID")
}
