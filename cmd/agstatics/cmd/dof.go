package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphstatics/statics"
)

func newDOFCmd(a *app) *cobra.Command {
	var write bool
	c := &cobra.Command{
		Use:   "dof FILE...",
		Short: "Count the degrees of freedom of form diagrams",
		Long: `Report the static indeterminacy k, the mechanism count m and the
independent edges of every form diagram. Files are analysed concurrently;
results are printed in argument order.

With --write, the independent edges are flagged (is_ind) in each file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]string, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Jobs)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					if ctx.Err() != nil {
						return nil
					}
					line, err := analyseDOF(cmd, a, path, write)
					if err != nil {
						return err
					}
					lines[i] = line
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}

			return nil
		},
	}
	c.Flags().BoolVar(&write, "write", false, "flag independent edges in place")

	return c
}

func analyseDOF(cmd *cobra.Command, a *app, path string, write bool) (string, error) {
	if write && path == stdio {
		return "", fmt.Errorf("--write needs a file, not standard input")
	}
	doc, err := readDocument(cmd, path)
	if err != nil {
		return "", err
	}
	var extra []statics.Option
	if write {
		extra = append(extra, statics.WithMarkIndependent())
	}
	dof, err := statics.IdentifyDOF(doc.form, a.options(extra...)...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if write {
		if err = writeDocument(cmd, path, doc); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%s: k=%d m=%d rank=%d %s independent=[%s]",
		path, dof.K, dof.M, dof.Rank, dof.Status(), strings.Join(dof.IndependentIDs(), " ")), nil
}
