package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstatics/builder"
	"github.com/katalvlaran/graphstatics/diagram"
	"github.com/katalvlaran/graphstatics/statics"
)

type demoFlags struct {
	fixture string
	size    int
	span    float64
	seed    int64
	jitter  float64
	out     string
	png     string
}

func newDemoCmd(a *app) *cobra.Command {
	var fl demoFlags
	var size plotFlags
	c := &cobra.Command{
		Use:   "demo",
		Short: "Build a sample structure and its reciprocal force diagram",
		Long: fmt.Sprintf(`Build a fixture (%s), flag its independent edges, construct
the dual force diagram and update it from the form. The pair is written as
JSON; --png also draws it.`, strings.Join(builder.FixtureNames(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, res, err := runDemo(a, fl)
			if err != nil {
				return err
			}
			a.log.Info("reciprocal updated", "mode", res.Mode, "warnings", len(res.Warnings()))
			if fl.png != "" {
				opts, err := size.options()
				if err != nil {
					return err
				}
				if err = writeOutput(cmd, fl.png, func(w io.Writer) error { return plotDocument(w, doc, opts) }); err != nil {
					return err
				}
			}

			return writeDocument(cmd, fl.out, doc)
		},
	}
	f := c.Flags()
	f.StringVar(&fl.fixture, "fixture", builder.FixtureTruss, "fixture name")
	f.IntVar(&fl.size, "size", 4, "nodes (funicular, ring) or panels (truss)")
	f.Float64Var(&fl.span, "span", builder.DefaultSpan, "span of the structure")
	f.Int64Var(&fl.seed, "seed", 1, "seed for --jitter")
	f.Float64Var(&fl.jitter, "jitter", 0, "standard deviation of random joint offsets")
	f.StringVarP(&fl.out, "output", "o", stdio, "output file (\"-\" for standard output)")
	f.StringVar(&fl.png, "png", "", "also draw the pair to this PNG file")
	size.register(c)

	return c
}

func runDemo(a *app, fl demoFlags) (*document, *statics.Result, error) {
	ctor, err := builder.Named(fl.fixture, fl.size)
	if err != nil {
		return nil, nil, err
	}
	if fl.span <= 0 {
		return nil, nil, fmt.Errorf("span %g must be positive", fl.span)
	}
	cons := []builder.Constructor{ctor}
	if fl.jitter > 0 {
		cons = append(cons, builder.Jitter(fl.jitter))
	}
	form, err := builder.BuildForm(
		[]diagram.Option{diagram.WithName(fmt.Sprintf("%s-%d", fl.fixture, fl.size))},
		[]builder.BuilderOption{builder.WithSpan(fl.span), builder.WithRise(fl.span / 4), builder.WithSeed(fl.seed)},
		cons...,
	)
	if err != nil {
		return nil, nil, err
	}

	dof, err := statics.IdentifyDOF(form, a.options(statics.WithMarkIndependent())...)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("structure", "fixture", fl.fixture, "k", dof.K, "m", dof.M, "status", dof.Status())

	force, err := diagram.DualOf(form, diagram.WithName(form.Name()))
	if err != nil {
		return nil, nil, err
	}
	res, err := statics.NewReciprocal(form, force, a.options()...).Update()
	if err != nil {
		return nil, nil, err
	}

	return &document{form: form, force: force}, res, nil
}
