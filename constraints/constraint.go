package constraints

import "fmt"

// Constraint is one scalar linear condition on the vertex coordinates.
type Constraint interface {
	// Compute returns the Jacobian row (length Columns()) and the residual.
	Compute() (row []float64, residual float64)
	// Columns is 2·|vertices| of the diagram the constraint was built for.
	Columns() int
}

// Indexer is the part of a diagram a constraint needs.
type Indexer interface {
	KeyIndex() map[string]int
}

// axisFix pins one coordinate of one vertex. Index and vertex count are
// captured at construction; later edits of the diagram do not move it.
type axisFix struct {
	col  int
	cols int
}

func (a axisFix) Compute() ([]float64, float64) {
	row := make([]float64, a.cols)
	row[a.col] = 1

	return row, 0
}

func (a axisFix) Columns() int { return a.cols }

func newAxisFix(d Indexer, key string, yBlock bool) (axisFix, error) {
	index := d.KeyIndex()
	i, ok := index[key]
	if !ok {
		return axisFix{}, fmt.Errorf("constraints: %q: %w", key, ErrUnknownVertex)
	}
	n := len(index)
	if yBlock {
		i += n
	}

	return axisFix{col: i, cols: 2 * n}, nil
}

// HorizontalFix keeps the x coordinate of key: a one-hot row at index(key).
func HorizontalFix(d Indexer, key string) (Constraint, error) {
	return newAxisFix(d, key, false)
}

// VerticalFix keeps the y coordinate of key: a one-hot row at
// |V| + index(key).
func VerticalFix(d Indexer, key string) (Constraint, error) {
	return newAxisFix(d, key, true)
}

// Pin returns both fixes of key, x first.
func Pin(d Indexer, key string) ([]Constraint, error) {
	h, err := HorizontalFix(d, key)
	if err != nil {
		return nil, err
	}
	v, err := VerticalFix(d, key)
	if err != nil {
		return nil, err
	}

	return []Constraint{h, v}, nil
}
