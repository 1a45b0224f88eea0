package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/statics"
)

func outputFlag(c *cobra.Command, out *string) {
	c.Flags().StringVarP(out, "output", "o", stdio, "output file (\"-\" for standard output)")
}

func newUpdateQCmd(a *app) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "update-q FILE",
		Short: "Propagate force densities from the independent edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := statics.UpdateQFromQind(doc.form, a.options()...)
			if err != nil {
				return err
			}
			a.log.Info("densities updated", "method", p.Report.Method, "cond", p.Report.Cond)

			return writeDocument(cmd, out, doc)
		},
	}
	outputFlag(c, &out)

	return c
}

func newFormFromForceCmd(a *app) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "form-from-force FILE",
		Short: "Move the form diagram to match the force diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if err = doc.requireForce(args[0]); err != nil {
				return err
			}
			res, err := statics.UpdateFormFromForce(doc.form, doc.force, a.options()...)
			if err != nil {
				return err
			}
			a.log.Info("form updated", "iterations", res.Iterations, "movement", res.Movement, "converged", res.Converged)

			return writeDocument(cmd, out, doc)
		},
	}
	outputFlag(c, &out)

	return c
}

func newForceFromFormCmd(a *app) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "force-from-form FILE",
		Short: "Recompute the force diagram from the form diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			if err = doc.requireForce(args[0]); err != nil {
				return err
			}
			res, err := statics.UpdateForceFromForm(doc.force, doc.form, a.options()...)
			if err != nil {
				return err
			}
			a.log.Info("force updated", "iterations", res.Iterations, "residual", res.Residual)

			return writeDocument(cmd, out, doc)
		},
	}
	outputFlag(c, &out)

	return c
}

func newDualCmd(a *app) *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "dual FILE",
		Short: "Build the reciprocal force diagram of a plane form diagram",
		Long: `Build the force diagram as the dual of the form diagram, link every
form edge to its reciprocal, and move it into the reciprocal geometry of the
current force densities. An existing force diagram is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			force, err := diagram.DualOf(doc.form, diagram.WithName(doc.form.Name()))
			if err != nil {
				return err
			}
			if _, err = statics.UpdateForceFromForm(force, doc.form, a.options()...); err != nil {
				return err
			}
			doc.force = force
			a.log.Debug("dual built", "vertices", len(force.Keys()), "edges", len(force.Edges()))

			return writeDocument(cmd, out, doc)
		},
	}
	outputFlag(c, &out)

	return c
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of diagram documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return diagram.Encode(cmd.OutOrStdout(), diagram.Schema())
		},
	}
}
