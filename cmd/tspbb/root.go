package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state shared by every subcommand.
type app struct {
	stdin   io.Reader
	stderr  io.Writer
	cfgPath string
	cfg     Config
	log     *slog.Logger
}

func newApp(stdin io.Reader, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stderr: stderr,
		cfg:    defaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tspbb",
		Short: "Exact Travelling Salesman solver (Branch-and-Bound)",
		Long: `tspbb finds a minimum-cost tour that starts at city 0, visits every
other city exactly once and returns to city 0. Instances are YAML or JSON
cost matrices; a 0 or missing off-diagonal entry means "no edge".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVar(&a.cfg.Log.Level, "log-level", a.cfg.Log.Level, "log level: debug, info, warn, error")
	pf.StringVar(&a.cfg.Log.Format, "log-format", a.cfg.Log.Format, "log format: text or json")
	pf.StringVar(&a.cfg.History.Path, "history", a.cfg.History.Path, "SQLite file recording finished solves")

	root.AddCommand(newSolveCmd(a), newGenCmd(a), newHistoryCmd(a))

	return root
}

// setup merges the config file under the explicitly set flags, validates the
// result and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgPath != "" {
		changed := make(map[string]string)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
		if err := loadConfigFile(a.cfgPath, &a.cfg); err != nil {
			return err
		}
		for name, value := range changed {
			if err := cmd.Flags().Set(name, value); err != nil {
				return err
			}
		}
	}
	if err := a.cfg.validate(); err != nil {
		return err
	}
	a.log = newLogger(a.stderr, a.cfg.Log)
	a.log.Debug("configuration loaded",
		slog.String("config", a.cfgPath),
		slog.String("bound", a.cfg.Solver.Bound),
		slog.String("order", a.cfg.Solver.Order))

	return nil
}
