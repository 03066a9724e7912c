package native

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// defaultTol is the reduced cost tolerance used when none is given.
const defaultTol = 1e-9

type lpOptions struct {
	tol      float64
	duals    bool
	scale    bool
	advBasis bool
}

// lpResult is a continuous solution in the original space.
type lpResult struct {
	status  glpk.SolStatus
	code    int // nonzero when the solver failed numerically
	obj     float64
	x       []float64
	rowDual []float64
	colDual []float64
}

func (r lpResult) basic() basicSol {
	return basicSol{
		status:  r.status,
		obj:     r.obj,
		colPrim: r.x,
		colDual: r.colDual,
		rowDual: r.rowDual,
	}
}

// solveLP solves the relaxation of p with column bounds lo and hi.
func (p *Prob) solveLP(lo, hi []float64, opt lpOptions) lpResult {
	if opt.tol <= 0 {
		opt.tol = defaultTol
	}

	f, out := p.standardForm(lo, hi)
	if out != stdOK {
		return outcomeResult(out)
	}
	rowPos, colPos, nr, nc, out := f.reduce()
	if out != stdOK {
		return outcomeResult(out)
	}

	z := make([]float64, len(f.cost))
	var y []float64
	if nr > 0 {
		A := mat.NewDense(nr, nc, nil)
		b := make([]float64, nr)
		c := make([]float64, nc)
		for r, sr := range f.rows {
			pr := rowPos[r]
			if pr < 0 {
				continue
			}
			for k, col := range sr.idx {
				A.Set(pr, colPos[col], sr.val[k])
			}
			b[pr] = sr.rhs
		}
		for k, pc := range colPos {
			if pc >= 0 {
				c[pc] = f.cost[k]
			}
		}

		keep, ok := independentRows(A, b)
		if !ok {
			return lpResult{status: glpk.StatusNoFeasible}
		}
		if len(keep) < nr {
			p.debugf("simplex: %d linearly dependent equality rows removed", nr-len(keep))
			A, b, rowPos = dropRows(A, b, rowPos, keep)
		}

		var scale []float64
		if opt.scale {
			scale = equilibrate(A, b)
		}
		var basis []int
		if opt.advBasis {
			basis = slackBasis(f, rowPos, colPos, A, b)
		}

		_, zr, err := lp.Simplex(c, A, b, opt.tol, basis)
		switch err {
		case nil:
		case lp.ErrInfeasible:
			return lpResult{status: glpk.StatusNoFeasible}
		case lp.ErrUnbounded:
			return lpResult{status: glpk.StatusUnbounded}
		default:
			p.errorf("simplex: %v", err)
			return lpResult{status: glpk.StatusUndefined, code: glpk.EFail}
		}
		for k, pc := range colPos {
			if pc >= 0 {
				z[k] = zr[pc]
			}
		}

		if opt.duals {
			yr, ok := dualValues(A, b, c, opt.tol)
			if !ok {
				p.errorf("simplex: dual values not available")
			} else {
				if scale != nil {
					floats.Mul(yr, scale)
				}
				y = make([]float64, len(f.rows))
				for r, pr := range rowPos {
					if pr >= 0 {
						y[r] = yr[pr]
					}
				}
			}
		}
	}

	res := lpResult{status: glpk.StatusOptimal, x: make([]float64, len(p.cols))}
	coef := make([]float64, len(p.cols))
	for j, m := range f.cols {
		v := m.offset
		if m.pos >= 0 {
			v += m.sign * z[m.pos]
		}
		if m.neg >= 0 {
			v -= z[m.neg]
		}
		res.x[j] = v
		coef[j] = p.cols[j].coef
	}
	res.obj = floats.Dot(coef, res.x)

	if opt.duals {
		res.rowDual, res.colDual = p.duals(f, y, coef)
	}
	return res
}

// duals maps the standard-form row duals y back to the original rows and
// derives reduced costs d = c - Aᵀπ. y may be nil.
func (p *Prob) duals(f *stdForm, y, coef []float64) (rowDual, colDual []float64) {
	sense := 1.0
	if p.dir == glpk.DirMax {
		sense = -1
	}
	rowDual = make([]float64, len(p.rows))
	if y != nil {
		for i, r := range f.main {
			if r >= 0 {
				rowDual[i] = sense * y[r]
			}
		}
	}
	colDual = make([]float64, len(p.cols))
	copy(colDual, coef)
	for _, e := range p.a {
		colDual[e.Col-1] -= e.Val * rowDual[e.Row-1]
	}
	return rowDual, colDual
}

func outcomeResult(out stdOutcome) lpResult {
	if out == stdUnbounded {
		return lpResult{status: glpk.StatusUnbounded}
	}
	return lpResult{status: glpk.StatusNoFeasible}
}

// equilibrate scales every row of A and b by the inverse of its largest
// absolute entry and returns the factors.
func equilibrate(A *mat.Dense, b []float64) []float64 {
	nr, _ := A.Dims()
	scale := make([]float64, nr)
	for i := 0; i < nr; i++ {
		row := A.RawRowView(i)
		scale[i] = 1
		if mx := floats.Norm(row, math.Inf(1)); mx > 0 {
			scale[i] = 1 / mx
			floats.Scale(scale[i], row)
			b[i] *= scale[i]
		}
	}
	return scale
}

// slackBasis returns a starting basis made of the rows' slack columns, or
// nil when such a basis does not exist or is not primal feasible.
func slackBasis(f *stdForm, rowPos, colPos []int, A *mat.Dense, b []float64) []int {
	nr, _ := A.Dims()
	basis := make([]int, nr)
	seen := make(map[int]bool, nr)
	for r, sr := range f.rows {
		pr := rowPos[r]
		if pr < 0 {
			continue
		}
		if sr.slack < 0 || colPos[sr.slack] < 0 || seen[colPos[sr.slack]] {
			return nil
		}
		basis[pr] = colPos[sr.slack]
		seen[basis[pr]] = true
	}

	ab := mat.NewDense(nr, nr, nil)
	for k, col := range basis {
		for i := 0; i < nr; i++ {
			ab.Set(i, k, A.At(i, col))
		}
	}
	var xb mat.VecDense
	if err := xb.SolveVec(ab, mat.NewVecDense(nr, b)); err != nil {
		return nil
	}
	for i := 0; i < nr; i++ {
		if xb.AtVec(i) < -1e-14 {
			return nil
		}
	}
	return basis
}

// dualValues solves the dual of min cᵀz s.t. A·z = b, z >= 0:
//
//	max bᵀy s.t. Aᵀy <= c
//
// written in standard form with y = y⁺ - y⁻ and slacks.
func dualValues(A *mat.Dense, b, c []float64, tol float64) ([]float64, bool) {
	nr, nc := A.Dims()
	D := mat.NewDense(nc, 2*nr+nc, nil)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if v := A.At(i, j); v != 0 {
				D.Set(j, i, v)
				D.Set(j, nr+i, -v)
			}
		}
	}
	for j := 0; j < nc; j++ {
		D.Set(j, 2*nr+j, 1)
	}

	cost := make([]float64, 2*nr+nc)
	for i, v := range b {
		cost[i] = -v
		cost[nr+i] = v
	}

	var basis []int
	if floats.Min(c) >= 0 {
		basis = make([]int, nc)
		for j := range basis {
			basis[j] = 2*nr + j
		}
	}

	_, w, err := lp.Simplex(cost, D, c, tol, basis)
	if err != nil {
		return nil, false
	}
	y := make([]float64, nr)
	floats.SubTo(y, w[:nr], w[nr:2*nr])
	return y, true
}
