package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// productionProb is
//
//	max  3x + 2y
//	s.t. 1000x + 1000y <= 4000
//	        x +   3y   <= 6
//	     x, y >= 0
//
// with optimum x = 4, y = 0. The first row is badly scaled.
func productionProb() *Prob {
	p := newTestProb()
	p.SetObjDir(glpk.DirMax)
	p.AddCols(2)
	p.SetColBnds(1, glpk.Lower, 0, 0)
	p.SetColBnds(2, glpk.Lower, 0, 0)
	p.SetObjCoef(1, 3)
	p.SetObjCoef(2, 2)
	p.AddRows(2)
	p.SetRowBnds(1, glpk.Upper, 0, 4000)
	p.SetRowBnds(2, glpk.Upper, 0, 6)
	p.LoadMatrix([]glpk.Nonzero{
		{Row: 1, Col: 1, Val: 1000},
		{Row: 1, Col: 2, Val: 1000},
		{Row: 2, Col: 1, Val: 1},
		{Row: 2, Col: 2, Val: 3},
	})
	return p
}

func TestSimplex(t *testing.T) {
	p := productionProb()
	require.Equal(t, 0, p.Simplex(nil))

	assert.Equal(t, glpk.StatusOptimal, p.Status())
	assert.InDelta(t, 12, p.ObjVal(), 1e-9)
	assert.InDelta(t, 4, p.ColPrim(1), 1e-9)
	assert.InDelta(t, 0, p.ColPrim(2), 1e-9)
	assert.InDelta(t, 0.003, p.RowDual(1), 1e-9)
	assert.InDelta(t, 0, p.RowDual(2), 1e-9)
	assert.InDelta(t, 0, p.ColDual(1), 1e-9)
	assert.InDelta(t, -1, p.ColDual(2), 1e-9)
}

func TestSimplexScaledAndAdvancedBasis(t *testing.T) {
	plain := productionProb()
	require.Equal(t, 0, plain.Simplex(nil))

	for name, setup := range map[string]func(p *Prob){
		"scaled":         func(p *Prob) { p.Scale(glpk.ScaleEquilibrate) },
		"advanced basis": func(p *Prob) { p.AdvBasis() },
		"both": func(p *Prob) {
			p.Scale(glpk.ScaleGeometric | glpk.ScaleEquilibrate)
			p.AdvBasis()
		},
	} {
		t.Run(name, func(t *testing.T) {
			p := productionProb()
			setup(p)
			require.Equal(t, 0, p.Simplex(&glpk.Smcp{MsgLev: glpk.MsgOff}))
			assert.Equal(t, glpk.StatusOptimal, p.Status())
			assert.InDelta(t, plain.ObjVal(), p.ObjVal(), 1e-9)
			for j := 1; j <= 2; j++ {
				assert.InDelta(t, plain.ColPrim(j), p.ColPrim(j), 1e-9)
				assert.InDelta(t, plain.ColDual(j), p.ColDual(j), 1e-9)
			}
			for i := 1; i <= 2; i++ {
				assert.InDelta(t, plain.RowDual(i), p.RowDual(i), 1e-9)
			}
		})
	}
}

func TestScaleSkipOnly(t *testing.T) {
	p := newTestProb()
	p.Scale(glpk.ScaleSkip)
	assert.False(t, p.scaling())
	p.Scale(glpk.ScaleAuto)
	assert.True(t, p.scaling())
}

func TestSlackBasisInfeasible(t *testing.T) {
	// x >= 2 has a slack basis with a negative value and must fall back
	// to the solver's own start.
	p := newTestProb()
	p.AddCols(1)
	p.SetColBnds(1, glpk.Lower, 0, 0)
	p.SetObjCoef(1, 1)
	p.AddRows(1)
	p.SetRowBnds(1, glpk.Lower, 2, 0)
	p.LoadMatrix([]glpk.Nonzero{{Row: 1, Col: 1, Val: 1}})
	p.AdvBasis()

	require.Equal(t, 0, p.Simplex(nil))
	assert.Equal(t, glpk.StatusOptimal, p.Status())
	assert.InDelta(t, 2, p.ColPrim(1), 1e-9)
	assert.InDelta(t, 1, p.RowDual(1), 1e-9)
}

func infeasibleProb() *Prob {
	p := newTestProb()
	p.AddCols(1)
	p.SetColBnds(1, glpk.Double, 0, 10)
	p.AddRows(2)
	p.SetRowBnds(1, glpk.Lower, 5, 0)
	p.SetRowBnds(2, glpk.Upper, 0, 3)
	p.LoadMatrix([]glpk.Nonzero{{Row: 1, Col: 1, Val: 1}, {Row: 2, Col: 1, Val: 1}})
	return p
}

func TestSimplexInfeasible(t *testing.T) {
	p := infeasibleProb()
	assert.Equal(t, 0, p.Simplex(&glpk.Smcp{}))
	assert.Equal(t, glpk.StatusNoFeasible, p.Status())

	p = infeasibleProb()
	assert.Equal(t, glpk.ENoPFS, p.Simplex(&glpk.Smcp{Presolve: true}))
	assert.Equal(t, glpk.StatusNoFeasible, p.Status())
}

func TestSimplexUnboundedWithoutRows(t *testing.T) {
	p := newTestProb()
	p.AddCols(1)
	p.SetColBnds(1, glpk.Lower, 0, 0)
	p.SetObjCoef(1, -1)

	assert.Equal(t, 0, p.Simplex(nil))
	assert.Equal(t, glpk.StatusUnbounded, p.Status())

	assert.Equal(t, glpk.ENoDFS, p.Simplex(&glpk.Smcp{Presolve: true}))
}

func TestSimplexFixedColumnsOnly(t *testing.T) {
	p := newTestProb()
	p.AddCols(2)
	p.SetColBnds(1, glpk.Fixed, 2, 2)
	p.SetColBnds(2, glpk.Fixed, 3, 3)
	p.SetObjCoef(1, 1)
	p.SetObjCoef(2, 1)
	p.AddRows(1)
	p.SetRowBnds(1, glpk.Fixed, 5, 5)
	p.LoadMatrix([]glpk.Nonzero{{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 2, Val: 1}})

	require.Equal(t, 0, p.Simplex(nil))
	assert.Equal(t, glpk.StatusOptimal, p.Status())
	assert.Equal(t, 5.0, p.ObjVal())

	p.SetRowBnds(1, glpk.Fixed, 6, 6)
	require.Equal(t, 0, p.Simplex(nil))
	assert.Equal(t, glpk.StatusNoFeasible, p.Status())
}

func TestInterior(t *testing.T) {
	p := productionProb()
	require.Equal(t, 0, p.Interior(nil))
	assert.Equal(t, glpk.StatusOptimal, p.IptStatus())
	assert.InDelta(t, 12, p.IptObjVal(), 1e-9)
	assert.InDelta(t, 4, p.IptColPrim(1), 1e-9)
	assert.InDelta(t, 0.003, p.IptRowDual(1), 1e-9)
	assert.InDelta(t, -1, p.IptColDual(2), 1e-9)

	// the simplex solution is untouched
	assert.Equal(t, glpk.StatusUndefined, p.Status())

	p = infeasibleProb()
	assert.Equal(t, glpk.ENoFeas, p.Interior(nil))
	assert.Equal(t, glpk.StatusNoFeasible, p.IptStatus())
}
