package constraints

import (
	"fmt"

	"github.com/katalvlaran/graphstatics/matrix"
)

// Collection is an ordered list of constraints sharing one column layout.
type Collection struct {
	items []Constraint
}

// NewCollection returns an empty collection.
func NewCollection() *Collection { return &Collection{} }

// Add appends cs in order. It fails, without adding any of them, when a
// constraint's column count differs from the collection's.
func (c *Collection) Add(cs ...Constraint) error {
	cols := -1
	if len(c.items) > 0 {
		cols = c.items[0].Columns()
	}
	for _, x := range cs {
		if cols < 0 {
			cols = x.Columns()
		}
		if x.Columns() != cols {
			return fmt.Errorf("constraints: Add: %d columns, want %d: %w", x.Columns(), cols, ErrInconsistentConstraint)
		}
	}
	c.items = append(c.items, cs...)

	return nil
}

// Len returns the number of constraints.
func (c *Collection) Len() int { return len(c.items) }

// Columns returns the shared column count, or 0 when empty.
func (c *Collection) Columns() int {
	if len(c.items) == 0 {
		return 0
	}

	return c.items[0].Columns()
}

// Compute stacks the constraint rows in insertion order.
//
// Returns a len×Columns Jacobian and the residuals.
func (c *Collection) Compute() (*matrix.Dense, []float64, error) {
	if len(c.items) == 0 {
		return nil, nil, fmt.Errorf("constraints: Compute: %w", ErrEmptyCollection)
	}
	jac, err := matrix.NewDense(len(c.items), c.Columns())
	if err != nil {
		return nil, nil, fmt.Errorf("constraints: Compute: %w", err)
	}
	res := make([]float64, len(c.items))
	for i, x := range c.items {
		row, r := x.Compute()
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = jac.Set(i, j, v); err != nil {
				return nil, nil, fmt.Errorf("constraints: Compute: row %d: %w", i, err)
			}
		}
		res[i] = r
	}

	return jac, res, nil
}
