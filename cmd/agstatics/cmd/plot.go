package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstatics/render"
)

type plotFlags struct {
	width, height int
}

func (p *plotFlags) register(c *cobra.Command) {
	c.Flags().IntVar(&p.width, "width", render.DefaultWidth, "image width in pixels")
	c.Flags().IntVar(&p.height, "height", render.DefaultHeight, "image height in pixels")
}

func (p *plotFlags) options() ([]render.Option, error) {
	if p.width <= 0 || p.height <= 0 {
		return nil, fmt.Errorf("image size %dx%d must be positive", p.width, p.height)
	}

	return []render.Option{render.WithSize(p.width, p.height)}, nil
}

// plotDocument draws the pair side by side, or the form alone.
func plotDocument(w io.Writer, doc *document, opts []render.Option) error {
	if doc.force == nil {
		return render.Form(w, doc.form, opts...)
	}

	return render.Pair(w, doc.form, doc.force, opts...)
}

func newPlotCmd(a *app) *cobra.Command {
	var (
		out  string
		size plotFlags
	)
	c := &cobra.Command{
		Use:   "plot FILE -o IMAGE.png",
		Short: "Draw a diagram document to PNG",
		Long: `Draw the form diagram, and the force diagram next to it when the
document has one. Tension is red, compression blue; loads and reactions are
dashed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := size.options()
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			a.log.Debug("plotting", "file", args[0], "output", out)

			return writeOutput(cmd, out, func(w io.Writer) error { return plotDocument(w, doc, opts) })
		},
	}
	c.Flags().StringVarP(&out, "output", "o", "", "PNG file (\"-\" for standard output)")
	_ = c.MarkFlagRequired("output")
	size.register(c)

	return c
}
