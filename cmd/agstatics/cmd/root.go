package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstatics/statics"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	cfg Config
	log *log.Logger
}

// options returns the solver options for one call.
func (a *app) options(extra ...statics.Option) []statics.Option {
	return append(append(a.cfg.Options(), statics.WithLogger(a.log)), extra...)
}

// NewRootCmd builds the agstatics command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	var flags Config

	root := &cobra.Command{
		Use:   "agstatics",
		Short: "Graphic statics on form and force diagrams",
		Long: `Analyse and update reciprocal form and force diagrams.

Diagrams are read from JSON pair documents ("agstatics schema" prints the
schema); "-" reads standard input. Solver settings come from the AGS_*
environment variables (a .env file is loaded if present) and can be
overridden with flags:

  AGS_KMAX        maximum sweeps of form-from-force
  AGS_TOL         relative movement tolerance
  AGS_COND_LIMIT  condition number treated as singular
  AGS_COND_WARN   condition number that triggers a warning
  AGS_JOBS        files analysed concurrently
  AGS_DEBUG       debug logging (true/false)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			found := loadDotenv()
			cfg, err := DefaultConfig().FromEnv()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("kmax") {
				cfg.Kmax = flags.Kmax
			}
			if fs.Changed("tol") {
				cfg.Tol = flags.Tol
			}
			if fs.Changed("cond-limit") {
				cfg.CondLimit = flags.CondLimit
			}
			if fs.Changed("cond-warn") {
				cfg.CondWarn = flags.CondWarn
			}
			if fs.Changed("jobs") {
				cfg.Jobs = flags.Jobs
			}
			if fs.Changed("debug") {
				cfg.Debug = flags.Debug
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			level := log.InfoLevel
			if cfg.Debug {
				level = log.DebugLevel
			}
			a.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: true,
				Level:           level,
			})
			if !found {
				a.log.Debug("No .env file found, using system environment variables")
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&flags.Kmax, "kmax", statics.DefaultKmax, "maximum sweeps of form-from-force")
	pf.Float64Var(&flags.Tol, "tol", statics.DefaultTol, "relative movement tolerance")
	pf.Float64Var(&flags.CondLimit, "cond-limit", statics.DefaultCondLimit, "condition number treated as singular")
	pf.Float64Var(&flags.CondWarn, "cond-warn", statics.DefaultCondWarn, "condition number that triggers a warning")
	pf.IntVar(&flags.Jobs, "jobs", DefaultJobs, "files analysed concurrently")
	pf.BoolVar(&flags.Debug, "debug", false, "debug logging")

	root.AddCommand(
		newDOFCmd(a),
		newUpdateQCmd(a),
		newFormFromForceCmd(a),
		newForceFromFormCmd(a),
		newDualCmd(a),
		newPlotCmd(a),
		newSchemaCmd(),
		newDemoCmd(a),
	)

	return root
}
