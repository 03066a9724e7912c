package glpk

import (
	"fmt"

	"github.com/pkg/errors"
)

// ColBoundKind infers the bound kind of a column from its free flags and
// bound values. A column with both bounds present and lb == ub is Fixed,
// never Double.
func ColBoundKind(freeLB, freeUB bool, lb, ub float64) BoundKind {
	switch {
	case !freeLB && !freeUB && lb == ub:
		return Fixed
	case !freeLB && !freeUB:
		return Double
	case !freeLB && freeUB:
		return Lower
	case freeLB && !freeUB:
		return Upper
	default:
		return Free
	}
}

// RowBounds maps a row type code and its bound value to the bound kind
// and interval passed to the handle. A double-bounded row mirrors b into
// the interval (-b, b); every other kind passes (b, b) and the solver
// ignores the side it does not use.
func RowBounds(ctype byte, b float64) (kind BoundKind, lb, ub float64, err error) {
	switch ctype {
	case 'F':
		kind = Free
	case 'U':
		kind = Upper
	case 'L':
		kind = Lower
	case 'S':
		kind = Fixed
	case 'D':
		return Double, -b, b, nil
	default:
		return 0, 0, 0, errors.Wrapf(ErrInvalidRowType, "%q", ctype)
	}
	return kind, b, b, nil
}

// assemble populates prob from p. The problem must have been validated.
func assemble(prob Builder, p *Problem) error {
	if p.Sense == Minimize {
		prob.SetObjDir(DirMin)
	} else {
		prob.SetObjDir(DirMax)
	}

	if n := p.NumCols(); n > 0 {
		first := prob.AddCols(n)
		for j := 0; j < n; j++ {
			col := first + j
			kind := ColBoundKind(p.FreeLB[j], p.FreeUB[j], p.LB[j], p.UB[j])
			prob.SetColBnds(col, kind, p.LB[j], p.UB[j])
			prob.SetObjCoef(col, p.C[j])
			if p.IsMIP {
				prob.SetColKind(col, p.VarType[j])
			}
		}
	}

	if m := p.NumRows(); m > 0 {
		first := prob.AddRows(m)
		for i := 0; i < m; i++ {
			kind, lb, ub, err := RowBounds(p.CType[i], p.B[i])
			if err != nil {
				return &Error{Op: "Assemble", Code: EData, Msg: fmt.Sprintf("row %d", i+1), Err: err}
			}
			prob.SetRowBnds(first+i, kind, lb, ub)
		}
	}

	prob.LoadMatrix(p.A)
	return nil
}

// saveProblem writes the assembled problem. Failure aborts the call.
func saveProblem(prob Builder, path string) error {
	if err := prob.WriteLP(path); err != nil {
		return &Error{Op: "WriteLP", Code: EFail, Err: errors.Wrapf(err, "unable to write problem to %s", path)}
	}
	return nil
}
