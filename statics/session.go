package statics

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/diagram"
)

// Mode names the diagram whose geometry is authoritative.
type Mode int

// Session modes.
const (
	FormAuthoritative Mode = iota
	ForceAuthoritative
)

func (m Mode) String() string {
	if m == ForceAuthoritative {
		return "force"
	}

	return "form"
}

// Reciprocal keeps a form diagram and its force diagram consistent. The
// mode only changes through FormEdited and ForceEdited.
type Reciprocal struct {
	form  *diagram.FormDiagram
	force *diagram.ForceDiagram
	mode  Mode
	opts  []Option
}

// Result is the outcome of one Reciprocal.Update.
type Result struct {
	Mode        Mode
	Propagation *Propagation // set when densities were propagated first
	Force       *ForceUpdate // set in FormAuthoritative mode
	Form        *FormUpdate  // set in ForceAuthoritative mode
}

// Warnings collects the warnings of every step.
func (r *Result) Warnings() []Warning {
	var out []Warning
	if r.Propagation != nil && r.Propagation.Report != nil {
		out = append(out, r.Propagation.Report.Warnings...)
	}
	if r.Force != nil {
		out = append(out, r.Force.Warnings...)
	}
	if r.Form != nil {
		out = append(out, r.Form.Warnings...)
	}

	return out
}

// NewReciprocal starts a session in FormAuthoritative mode. opts apply to
// every Update.
func NewReciprocal(form *diagram.FormDiagram, force *diagram.ForceDiagram, opts ...Option) *Reciprocal {
	return &Reciprocal{form: form, force: force, mode: FormAuthoritative, opts: opts}
}

// Form returns the form diagram.
func (r *Reciprocal) Form() *diagram.FormDiagram { return r.form }

// Force returns the force diagram.
func (r *Reciprocal) Force() *diagram.ForceDiagram { return r.force }

// Mode returns the current direction.
func (r *Reciprocal) Mode() Mode { return r.mode }

// FormEdited makes the form diagram authoritative.
func (r *Reciprocal) FormEdited() { r.mode = FormAuthoritative }

// ForceEdited makes the force diagram authoritative.
func (r *Reciprocal) ForceEdited() { r.mode = ForceAuthoritative }

// Update brings the dependent diagram in line with the authoritative one.
// In FormAuthoritative mode, densities are first propagated from the
// independent edges when the form has any.
func (r *Reciprocal) Update() (*Result, error) {
	res := &Result{Mode: r.mode}
	var err error
	switch r.mode {
	case FormAuthoritative:
		if len(r.form.Ind()) > 0 {
			if res.Propagation, err = UpdateQFromQind(r.form, r.opts...); err != nil {
				return nil, fmt.Errorf("Update(%s): %w", r.mode, err)
			}
		}
		if res.Force, err = UpdateForceFromForm(r.force, r.form, r.opts...); err != nil {
			return nil, fmt.Errorf("Update(%s): %w", r.mode, err)
		}
	case ForceAuthoritative:
		if res.Form, err = UpdateFormFromForce(r.form, r.force, r.opts...); err != nil {
			return nil, fmt.Errorf("Update(%s): %w", r.mode, err)
		}
	}

	return res, nil
}
