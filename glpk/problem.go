package glpk

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidRowType is returned when a row type code is not one of
// F, U, L, S or D.
var ErrInvalidRowType = errors.New("glpk: invalid row type")

// Problem describes one LP or MIP in the flat array form accepted by Solve.
//
// The problem solved is:
//
//	Minimize (or Maximize): C · x
//	Subject to:             row bounds on A·x, one per entry of B and CType
//	And:                    column bounds from FreeLB/FreeUB, LB and UB
//
// Column bound kinds are never given directly; they are inferred from the
// free flags and the bound values, see ColBoundKind.
type Problem struct {
	// Sense is Minimize (1) or anything else to maximize.
	Sense Sense

	// C are the objective coefficients, one per column.
	C []float64

	// A is the constraint matrix as one-based (row, column, value)
	// triplets. It is loaded in one bulk operation.
	A []Nonzero

	// B is the bound value of each row. How it is used depends on CType.
	B []float64

	// CType is the type code of each row:
	//
	//	'F' free        (B ignored)
	//	'U' upper bound A·x <= B
	//	'L' lower bound A·x >= B
	//	'S' fixed       A·x  = B
	//	'D' double      -B <= A·x <= B
	CType []byte

	// FreeLB and FreeUB flag columns whose lower or upper bound is absent.
	FreeLB []bool
	FreeUB []bool

	// LB and UB are the column bounds. Values whose free flag is set are
	// passed through but ignored by the solver.
	LB []float64
	UB []float64

	// VarType is the kind of each column. Only read when IsMIP is set.
	VarType []ColKind

	// IsMIP marks the problem as mixed-integer.
	IsMIP bool
}

// NumCols returns the number of columns in the problem.
func (p *Problem) NumCols() int {
	return len(p.C)
}

// NumRows returns the number of rows in the problem.
func (p *Problem) NumRows() int {
	return len(p.B)
}

// validate checks the caller contract before any handle is created.
func (p *Problem) validate() error {
	n, m := p.NumCols(), p.NumRows()

	if err := checkLen("FreeLB", len(p.FreeLB), n); err != nil {
		return err
	}
	if err := checkLen("FreeUB", len(p.FreeUB), n); err != nil {
		return err
	}
	if err := checkLen("LB", len(p.LB), n); err != nil {
		return err
	}
	if err := checkLen("UB", len(p.UB), n); err != nil {
		return err
	}
	if p.IsMIP {
		if err := checkLen("VarType", len(p.VarType), n); err != nil {
			return err
		}
		for j, k := range p.VarType {
			if k < Continuous || k > Binary {
				return newErrorMsg("Validate", fmt.Sprintf("column %d: invalid kind %d", j+1, k))
			}
		}
	}
	if err := checkLen("CType", len(p.CType), m); err != nil {
		return err
	}
	for i, t := range p.CType {
		if _, _, _, err := RowBounds(t, p.B[i]); err != nil {
			return &Error{Op: "Validate", Code: EData, Msg: fmt.Sprintf("row %d", i+1), Err: err}
		}
	}
	return checkNonzeros(p.A, m, n)
}

// checkLen reports an inconsistent slice length.
func checkLen(name string, got, want int) error {
	if got != want {
		return newErrorMsg("Validate", fmt.Sprintf("inconsistent %s length %d, expected %d", name, got, want))
	}
	return nil
}

// checkNonzeros validates one-based triplet indices and rejects
// duplicate (row, column) pairs.
func checkNonzeros(nz []Nonzero, m, n int) error {
	if len(nz) == 0 {
		return nil
	}

	sorted := make([]Nonzero, len(nz))
	copy(sorted, nz)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	for k, e := range sorted {
		if e.Row < 1 || e.Row > m {
			return newErrorMsg("Validate", fmt.Sprintf("row index %d out of range", e.Row))
		}
		if e.Col < 1 || e.Col > n {
			return newErrorMsg("Validate", fmt.Sprintf("column index %d out of range", e.Col))
		}
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			return newErrorMsg("Validate", fmt.Sprintf("duplicate entry (%d, %d)", e.Row, e.Col))
		}
	}
	return nil
}

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}
