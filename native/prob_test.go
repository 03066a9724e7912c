package native

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProb() *Prob {
	return newProb(nil, quiet())
}

func TestEnvFree(t *testing.T) {
	env := NewEnv(WithLogger(quiet()))
	a := env.NewProb().(*Prob)
	b := env.NewProb().(*Prob)
	assert.Equal(t, 2, env.Live())

	a.Delete()
	a.Delete()
	assert.True(t, a.Deleted())
	assert.Equal(t, 1, env.Live())

	env.Free()
	assert.True(t, b.Deleted())
	assert.Equal(t, 0, env.Live())
	assert.Equal(t, 1, env.Frees())

	// The environment is usable again after Free.
	c := env.NewProb()
	assert.Equal(t, 1, env.Live())
	c.Delete()
	assert.Equal(t, 0, env.Live())
}

func TestBuilder(t *testing.T) {
	p := newTestProb()
	assert.Equal(t, glpk.DirMin, p.ObjDir())

	assert.Equal(t, 1, p.AddCols(2))
	assert.Equal(t, 3, p.AddCols(1))
	assert.Equal(t, 3, p.NumCols())
	assert.Equal(t, 1, p.AddRows(1))
	assert.Equal(t, 1, p.NumRows())

	kind, _, _ := p.ColBnds(1)
	assert.Equal(t, glpk.Free, kind)

	p.SetColBnds(1, glpk.Lower, 2, 99)
	kind, lb, ub := p.ColBnds(1)
	assert.Equal(t, glpk.Lower, kind)
	assert.Equal(t, 2.0, lb)
	assert.Equal(t, 0.0, ub)

	p.SetColBnds(2, glpk.Fixed, 3, 7)
	kind, lb, ub = p.ColBnds(2)
	assert.Equal(t, glpk.Fixed, kind)
	assert.Equal(t, 3.0, lb)
	assert.Equal(t, 3.0, ub)

	p.SetColKind(3, glpk.Binary)
	kind, lb, ub = p.ColBnds(3)
	assert.Equal(t, glpk.Double, kind)
	assert.Equal(t, 0.0, lb)
	assert.Equal(t, 1.0, ub)
	assert.Equal(t, glpk.Integer, p.ColKind(3))
	assert.Equal(t, glpk.Continuous, p.ColKind(1))

	p.SetObjCoef(2, 4.5)
	assert.Equal(t, 4.5, p.ObjCoef(2))

	p.SetRowBnds(1, glpk.Double, -1, 1)
	kind, lb, ub = p.RowBnds(1)
	assert.Equal(t, glpk.Double, kind)
	assert.Equal(t, -1.0, lb)
	assert.Equal(t, 1.0, ub)

	p.LoadMatrix([]glpk.Nonzero{{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 2, Val: 0}})
	assert.Equal(t, 1, p.NumNonzero())
}

func TestBuilderPanics(t *testing.T) {
	p := newTestProb()
	p.AddCols(1)
	p.AddRows(1)

	assert.Panics(t, func() { p.SetColBnds(2, glpk.Free, 0, 0) })
	assert.Panics(t, func() { p.SetRowBnds(0, glpk.Free, 0, 0) })
	assert.Panics(t, func() { p.SetColBnds(1, glpk.BoundKind(9), 0, 0) })
	assert.Panics(t, func() { p.SetObjDir(glpk.ObjDir(0)) })
	assert.Panics(t, func() { p.AddCols(0) })
	assert.Panics(t, func() { p.LoadMatrix([]glpk.Nonzero{{Row: 2, Col: 1, Val: 1}}) })
	assert.Panics(t, func() { p.ColPrim(2) })
}

func TestAccessorsBeforeSolve(t *testing.T) {
	p := newTestProb()
	p.AddCols(2)
	p.AddRows(1)

	assert.Equal(t, glpk.StatusUndefined, p.Status())
	assert.Equal(t, glpk.StatusUndefined, p.MIPStatus())
	assert.Equal(t, glpk.StatusUndefined, p.IptStatus())
	assert.Equal(t, 0.0, p.ColPrim(1))
	assert.Equal(t, 0.0, p.RowDual(1))
	assert.Equal(t, 0.0, p.MIPColVal(2))
}

func TestInterval(t *testing.T) {
	lo, hi := interval(glpk.Lower, 1, 5)
	assert.Equal(t, 1.0, lo)
	assert.True(t, math.IsInf(hi, 1))

	lo, hi = interval(glpk.Upper, 1, 5)
	assert.True(t, math.IsInf(lo, -1))
	assert.Equal(t, 5.0, hi)

	lo, hi = interval(glpk.Free, 1, 5)
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(hi, 1))

	lo, hi = interval(glpk.Double, 1, 5)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 5.0, hi)
}
