package native

import (
	"math"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// feasTol is the tolerance used when checking bound consistency and
// empty equality rows.
const feasTol = 1e-9

// colMap expresses an original column in standard-form columns:
//
//	x = offset + sign*z[pos] - z[neg]
//
// pos and neg are -1 when absent. A fixed column has neither.
type colMap struct {
	offset float64
	pos    int
	neg    int
	sign   float64
}

// stdRow is one equality row of the standard form.
type stdRow struct {
	idx   []int
	val   []float64
	rhs   float64
	slack int // column that can start in the basis for this row, -1 if none
}

// stdForm is a problem in the form min cᵀz s.t. A·z = b, z >= 0.
type stdForm struct {
	cost []float64
	rows []stdRow
	cols []colMap // per original column
	main []int    // per original row, index into rows or -1
}

type stdOutcome int

const (
	stdOK stdOutcome = iota
	stdInfeasible
	stdUnbounded
)

func (f *stdForm) newCol(cost float64) int {
	f.cost = append(f.cost, cost)
	return len(f.cost) - 1
}

// standardForm converts p, with column bounds replaced by lo and hi, into
// standard form. The objective is always minimised.
func (p *Prob) standardForm(lo, hi []float64) (*stdForm, stdOutcome) {
	sense := 1.0
	if p.dir == glpk.DirMax {
		sense = -1
	}

	f := &stdForm{
		cols: make([]colMap, len(p.cols)),
		main: make([]int, len(p.rows)),
	}
	var boundRows []stdRow

	for j, c := range p.cols {
		l, u := lo[j], hi[j]
		cj := sense * c.coef
		m := colMap{pos: -1, neg: -1, sign: 1}

		switch {
		case crossed(l, u):
			return nil, stdInfeasible
		case math.IsInf(l, -1) && math.IsInf(u, 1):
			m.pos = f.newCol(cj)
			m.neg = f.newCol(-cj)
		case !math.IsInf(l, -1) && !math.IsInf(u, 1) && u <= l:
			m.offset = l
		case !math.IsInf(l, -1):
			m.offset = l
			m.pos = f.newCol(cj)
			if !math.IsInf(u, 1) {
				s := f.newCol(0)
				boundRows = append(boundRows, stdRow{
					idx:   []int{m.pos, s},
					val:   []float64{1, 1},
					rhs:   u - l,
					slack: s,
				})
			}
		default:
			m.offset = u
			m.sign = -1
			m.pos = f.newCol(-cj)
		}
		f.cols[j] = m
	}

	byRow := make([][]glpk.Nonzero, len(p.rows))
	for _, e := range p.a {
		byRow[e.Row-1] = append(byRow[e.Row-1], e)
	}

	for i, r := range p.rows {
		f.main[i] = -1
		if r.kind == glpk.Free {
			continue
		}
		rlo, rhi := interval(r.kind, r.lb, r.ub)
		if crossed(rlo, rhi) {
			return nil, stdInfeasible
		}

		sr := stdRow{slack: -1}
		shift := 0.0
		for _, e := range byRow[i] {
			m := f.cols[e.Col-1]
			shift += e.Val * m.offset
			if m.pos >= 0 {
				sr.idx = append(sr.idx, m.pos)
				sr.val = append(sr.val, e.Val*m.sign)
			}
			if m.neg >= 0 {
				sr.idx = append(sr.idx, m.neg)
				sr.val = append(sr.val, -e.Val)
			}
		}

		switch {
		case r.kind == glpk.Fixed || (r.kind == glpk.Double && rhi <= rlo):
			sr.rhs = rlo - shift
		case r.kind == glpk.Lower:
			s := f.newCol(0)
			sr.idx, sr.val = append(sr.idx, s), append(sr.val, -1)
			sr.rhs, sr.slack = rlo-shift, s
		case r.kind == glpk.Upper:
			s := f.newCol(0)
			sr.idx, sr.val = append(sr.idx, s), append(sr.val, 1)
			sr.rhs, sr.slack = rhi-shift, s
		default:
			s := f.newCol(0)
			t := f.newCol(0)
			sr.idx, sr.val = append(sr.idx, s), append(sr.val, -1)
			sr.rhs, sr.slack = rlo-shift, s
			boundRows = append(boundRows, stdRow{
				idx:   []int{s, t},
				val:   []float64{1, 1},
				rhs:   rhi - rlo,
				slack: t,
			})
		}

		f.main[i] = len(f.rows)
		f.rows = append(f.rows, sr)
	}

	f.rows = append(f.rows, boundRows...)
	return f, stdOK
}

// crossed reports lo > hi beyond the feasibility tolerance.
func crossed(lo, hi float64) bool {
	if math.IsInf(lo, -1) || math.IsInf(hi, 1) {
		return false
	}
	return lo > hi+feasTol*(1+math.Abs(lo))
}

// reduce drops empty rows and columns that appear in no row, which the
// gonum simplex rejects. rowPos and colPos map standard-form indices to
// positions in the reduced system, -1 for dropped ones. Dropped columns
// sit at zero.
func (f *stdForm) reduce() (rowPos, colPos []int, nr, nc int, out stdOutcome) {
	rowPos = make([]int, len(f.rows))
	used := make([]bool, len(f.cost))
	for r, sr := range f.rows {
		if len(sr.idx) == 0 {
			if math.Abs(sr.rhs) > feasTol*(1+math.Abs(sr.rhs)) {
				return nil, nil, 0, 0, stdInfeasible
			}
			rowPos[r] = -1
			continue
		}
		rowPos[r] = nr
		nr++
		for _, k := range sr.idx {
			used[k] = true
		}
	}

	colPos = make([]int, len(f.cost))
	for k := range f.cost {
		if !used[k] {
			if f.cost[k] < 0 {
				return nil, nil, 0, 0, stdUnbounded
			}
			colPos[k] = -1
			continue
		}
		colPos[k] = nc
		nc++
	}
	return rowPos, colPos, nr, nc, stdOK
}
