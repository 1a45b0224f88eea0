package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstatics/diagram"
)

// stdio marks standard input or output in path arguments.
const stdio = "-"

// document is a decoded pair; force is nil when the file has none.
type document struct {
	form  *diagram.FormDiagram
	force *diagram.ForceDiagram
}

func readDocument(cmd *cobra.Command, path string) (*document, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	p, err := diagram.DecodePair(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc := &document{}
	if doc.form, err = diagram.FormFromData(p.Form); err != nil {
		return nil, fmt.Errorf("%s: form: %w", path, err)
	}
	if p.Force != nil {
		if doc.force, err = diagram.ForceFromData(p.Force); err != nil {
			return nil, fmt.Errorf("%s: force: %w", path, err)
		}
	}

	return doc, nil
}

// requireForce fails for documents without a force diagram.
func (d *document) requireForce(path string) error {
	if d.force == nil {
		return fmt.Errorf("%s: no force diagram (run \"agstatics dual\" first)", path)
	}

	return nil
}

func (d *document) pair() *diagram.Pair {
	p := &diagram.Pair{Form: d.form.Data()}
	if d.force != nil {
		p.Force = d.force.Data()
	}

	return p
}

// writeOutput runs emit against path, or standard output for "-".
func writeOutput(cmd *cobra.Command, path string, emit func(io.Writer) error) error {
	if path == stdio {
		return emit(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = emit(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeDocument(cmd *cobra.Command, path string, doc *document) error {
	return writeOutput(cmd, path, func(w io.Writer) error { return diagram.Encode(w, doc.pair()) })
}
