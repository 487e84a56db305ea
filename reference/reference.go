// Package reference computes sum(A·B + D) with established numeric
// libraries so that ourtorch results can be cross-checked against them.
package reference

import (
	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
	"gonum.org/v1/gonum/mat"
)

// Func computes sum(A·B + D) from row-major matrices.
type Func func(a, b, d [][]float64) (float64, error)

// Graph evaluates sum(A·B + D) as a gorgonia expression graph on a tape
// machine.
func Graph(a, b, d [][]float64) (float64, error) {
	g := G.NewGraph()

	na, err := graphMatrix(g, "a", a)
	if err != nil {
		return 0, err
	}
	nb, err := graphMatrix(g, "b", b)
	if err != nil {
		return 0, err
	}
	nd, err := graphMatrix(g, "d", d)
	if err != nil {
		return 0, err
	}

	c, err := G.Mul(na, nb)
	if err != nil {
		return 0, errors.Wrap(err, "a·b")
	}
	e, err := G.Add(c, nd)
	if err != nil {
		return 0, errors.Wrap(err, "c+d")
	}
	f, err := G.Sum(e)
	if err != nil {
		return 0, errors.Wrap(err, "sum")
	}

	m := G.NewTapeMachine(g)
	defer m.Close()
	if err := m.RunAll(); err != nil {
		return 0, errors.Wrap(err, "run graph")
	}

	switch v := f.Value().Data().(type) {
	case float64:
		return v, nil
	case []float64:
		if len(v) == 1 {
			return v[0], nil
		}
	}
	return 0, errors.Errorf("graph produced %v, want a float64 scalar", f.Value())
}

func graphMatrix(g *G.ExprGraph, name string, rows [][]float64) (*G.Node, error) {
	r, c, backing, err := pack(rows)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	t := tensor.New(tensor.WithShape(r, c), tensor.WithBacking(backing))
	return G.NewMatrix(g, tensor.Float64,
		G.WithShape(r, c),
		G.WithName(name),
		G.WithValue(t),
	), nil
}

// Gonum evaluates sum(A·B + D) with gonum's dense matrices.
func Gonum(a, b, d [][]float64) (float64, error) {
	ma, err := gonumMatrix("a", a)
	if err != nil {
		return 0, err
	}
	mb, err := gonumMatrix("b", b)
	if err != nil {
		return 0, err
	}
	md, err := gonumMatrix("d", d)
	if err != nil {
		return 0, err
	}

	ar, ac := ma.Dims()
	br, bc := mb.Dims()
	dr, dc := md.Dims()
	if ac != br {
		return 0, errors.Errorf("a·b: inner dims %d vs %d", ac, br)
	}
	if dr != ar || dc != bc {
		return 0, errors.Errorf("c+d: (%d, %d) vs (%d, %d)", ar, bc, dr, dc)
	}

	var c mat.Dense
	c.Mul(ma, mb)
	c.Add(&c, md)
	return mat.Sum(&c), nil
}

func gonumMatrix(name string, rows [][]float64) (*mat.Dense, error) {
	r, c, backing, err := pack(rows)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return mat.NewDense(r, c, backing), nil
}

// pack flattens a rectangular matrix into a fresh row-major slice.
func pack(rows [][]float64) (r, c int, backing []float64, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, nil, errors.New("empty matrix")
	}
	r, c = len(rows), len(rows[0])
	backing = make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return 0, 0, nil, errors.Errorf("row %d has %d columns, want %d", i, len(row), c)
		}
		backing = append(backing, row...)
	}
	return r, c, backing, nil
}
