package native

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

type column struct {
	kind    glpk.BoundKind
	lb, ub  float64
	coef    float64
	integer bool
}

type row struct {
	kind   glpk.BoundKind
	lb, ub float64
}

// basicSol holds a continuous solution: the simplex one or the
// interior-point one.
type basicSol struct {
	status  glpk.SolStatus
	obj     float64
	colPrim []float64
	colDual []float64
	rowDual []float64
}

type mipSol struct {
	status glpk.SolStatus
	obj    float64
	colVal []float64
}

// Prob is a problem handle. Indices passed to its methods are one-based;
// an index out of range panics.
type Prob struct {
	env *Env
	log *slog.Logger

	dir  glpk.ObjDir
	cols []column
	rows []row
	a    []glpk.Nonzero

	scale    glpk.ScaleFlags
	advBasis bool
	msgLev   int

	sol basicSol
	ipt basicSol
	mip mipSol

	deleted bool
}

// NewProb creates a problem handle that does not belong to any Env.
func NewProb() *Prob {
	return newProb(nil, slog.Default())
}

func newProb(env *Env, log *slog.Logger) *Prob {
	return &Prob{
		env:    env,
		log:    log,
		dir:    glpk.DirMin,
		msgLev: glpk.MsgErr,
		sol:    basicSol{status: glpk.StatusUndefined},
		ipt:    basicSol{status: glpk.StatusUndefined},
		mip:    mipSol{status: glpk.StatusUndefined},
	}
}

// Delete releases the problem. It is safe to call Delete multiple times.
func (p *Prob) Delete() {
	if p.deleted {
		return
	}
	if p.env != nil {
		p.env.forget(p)
	}
	p.release()
}

func (p *Prob) release() {
	p.deleted = true
	p.cols, p.rows, p.a = nil, nil, nil
	p.sol, p.ipt, p.mip = basicSol{}, basicSol{}, mipSol{}
}

// Deleted reports whether the problem has been released.
func (p *Prob) Deleted() bool {
	return p.deleted
}

// ----------------------------------------------------------------------------
// Builder
// ----------------------------------------------------------------------------

// SetObjDir sets the optimization direction.
func (p *Prob) SetObjDir(dir glpk.ObjDir) {
	if dir != glpk.DirMin && dir != glpk.DirMax {
		panic(fmt.Sprintf("native: SetObjDir: dir = %d; invalid direction", dir))
	}
	p.dir = dir
}

// ObjDir returns the optimization direction.
func (p *Prob) ObjDir() glpk.ObjDir {
	return p.dir
}

// AddCols appends n free continuous columns.
func (p *Prob) AddCols(n int) int {
	if n < 1 {
		panic(fmt.Sprintf("native: AddCols: n = %d; invalid number of columns", n))
	}
	first := len(p.cols) + 1
	for k := 0; k < n; k++ {
		p.cols = append(p.cols, column{kind: glpk.Free})
	}
	return first
}

// SetColBnds sets the bound kind and bounds of column j.
func (p *Prob) SetColBnds(j int, kind glpk.BoundKind, lb, ub float64) {
	c := p.col("SetColBnds", j)
	c.kind, c.lb, c.ub = normBounds(kind, lb, ub)
}

// SetObjCoef sets the objective coefficient of column j.
func (p *Prob) SetObjCoef(j int, coef float64) {
	p.col("SetObjCoef", j).coef = coef
}

// SetColKind sets the kind of column j. Binary columns become integer
// columns bounded by [0, 1].
func (p *Prob) SetColKind(j int, kind glpk.ColKind) {
	c := p.col("SetColKind", j)
	switch kind {
	case glpk.Continuous:
		c.integer = false
	case glpk.Integer:
		c.integer = true
	case glpk.Binary:
		c.integer = true
		c.kind, c.lb, c.ub = glpk.Double, 0, 1
	default:
		panic(fmt.Sprintf("native: SetColKind: j = %d; kind = %d; invalid column kind", j, kind))
	}
}

// ColBnds returns the bound kind and bounds of column j.
func (p *Prob) ColBnds(j int) (glpk.BoundKind, float64, float64) {
	c := p.col("ColBnds", j)
	return c.kind, c.lb, c.ub
}

// ColKind returns the kind of column j.
func (p *Prob) ColKind(j int) glpk.ColKind {
	if p.col("ColKind", j).integer {
		return glpk.Integer
	}
	return glpk.Continuous
}

// ObjCoef returns the objective coefficient of column j.
func (p *Prob) ObjCoef(j int) float64 {
	return p.col("ObjCoef", j).coef
}

// AddRows appends m free rows.
func (p *Prob) AddRows(m int) int {
	if m < 1 {
		panic(fmt.Sprintf("native: AddRows: m = %d; invalid number of rows", m))
	}
	first := len(p.rows) + 1
	for k := 0; k < m; k++ {
		p.rows = append(p.rows, row{kind: glpk.Free})
	}
	return first
}

// SetRowBnds sets the bound kind and bounds of row i.
func (p *Prob) SetRowBnds(i int, kind glpk.BoundKind, lb, ub float64) {
	r := p.row("SetRowBnds", i)
	r.kind, r.lb, r.ub = normBounds(kind, lb, ub)
}

// RowBnds returns the bound kind and bounds of row i.
func (p *Prob) RowBnds(i int) (glpk.BoundKind, float64, float64) {
	r := p.row("RowBnds", i)
	return r.kind, r.lb, r.ub
}

// LoadMatrix replaces the constraint matrix. Zero entries are dropped.
func (p *Prob) LoadMatrix(a []glpk.Nonzero) {
	p.a = p.a[:0]
	for k, e := range a {
		if e.Row < 1 || e.Row > len(p.rows) {
			panic(fmt.Sprintf("native: LoadMatrix: a[%d].Row = %d; row index out of range", k, e.Row))
		}
		if e.Col < 1 || e.Col > len(p.cols) {
			panic(fmt.Sprintf("native: LoadMatrix: a[%d].Col = %d; column index out of range", k, e.Col))
		}
		if e.Val != 0 {
			p.a = append(p.a, e)
		}
	}
}

// NumCols returns the number of columns.
func (p *Prob) NumCols() int {
	return len(p.cols)
}

// NumRows returns the number of rows.
func (p *Prob) NumRows() int {
	return len(p.rows)
}

// NumNonzero returns the number of constraint matrix entries.
func (p *Prob) NumNonzero() int {
	return len(p.a)
}

// normBounds clears the bounds a kind does not use.
func normBounds(kind glpk.BoundKind, lb, ub float64) (glpk.BoundKind, float64, float64) {
	switch kind {
	case glpk.Free:
		return kind, 0, 0
	case glpk.Lower:
		return kind, lb, 0
	case glpk.Upper:
		return kind, 0, ub
	case glpk.Double:
		return kind, lb, ub
	case glpk.Fixed:
		return kind, lb, lb
	default:
		panic(fmt.Sprintf("native: kind = %d; invalid bound kind", kind))
	}
}

// interval returns the bounds of a kind as an interval with infinite ends.
func interval(kind glpk.BoundKind, lb, ub float64) (lo, hi float64) {
	switch kind {
	case glpk.Lower:
		return lb, math.Inf(1)
	case glpk.Upper:
		return math.Inf(-1), ub
	case glpk.Double, glpk.Fixed:
		return lb, ub
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// colIntervals returns the current column bounds as intervals.
func (p *Prob) colIntervals() (lo, hi []float64) {
	lo = make([]float64, len(p.cols))
	hi = make([]float64, len(p.cols))
	for j, c := range p.cols {
		lo[j], hi[j] = interval(c.kind, c.lb, c.ub)
	}
	return lo, hi
}

func (p *Prob) col(op string, j int) *column {
	if j < 1 || j > len(p.cols) {
		panic(fmt.Sprintf("native: %s: j = %d; column number out of range", op, j))
	}
	return &p.cols[j-1]
}

func (p *Prob) row(op string, i int) *row {
	if i < 1 || i > len(p.rows) {
		panic(fmt.Sprintf("native: %s: i = %d; row number out of range", op, i))
	}
	return &p.rows[i-1]
}

// ----------------------------------------------------------------------------
// Accessors
// ----------------------------------------------------------------------------

// Status returns the status of the simplex solution.
func (p *Prob) Status() glpk.SolStatus { return p.sol.status }

// ObjVal returns the objective value of the simplex solution.
func (p *Prob) ObjVal() float64 { return p.sol.obj }

// ColPrim returns the simplex primal value of column j.
func (p *Prob) ColPrim(j int) float64 { return p.colValue("ColPrim", p.sol.colPrim, j) }

// ColDual returns the simplex reduced cost of column j.
func (p *Prob) ColDual(j int) float64 { return p.colValue("ColDual", p.sol.colDual, j) }

// RowDual returns the simplex dual value of row i.
func (p *Prob) RowDual(i int) float64 { return p.rowValue("RowDual", p.sol.rowDual, i) }

// MIPStatus returns the status of the integer solution.
func (p *Prob) MIPStatus() glpk.SolStatus { return p.mip.status }

// MIPObjVal returns the objective value of the integer solution.
func (p *Prob) MIPObjVal() float64 { return p.mip.obj }

// MIPColVal returns the value of column j in the integer solution.
func (p *Prob) MIPColVal(j int) float64 { return p.colValue("MIPColVal", p.mip.colVal, j) }

// IptStatus returns the status of the interior-point solution.
func (p *Prob) IptStatus() glpk.SolStatus { return p.ipt.status }

// IptObjVal returns the objective value of the interior-point solution.
func (p *Prob) IptObjVal() float64 { return p.ipt.obj }

// IptColPrim returns the interior-point primal value of column j.
func (p *Prob) IptColPrim(j int) float64 { return p.colValue("IptColPrim", p.ipt.colPrim, j) }

// IptColDual returns the interior-point reduced cost of column j.
func (p *Prob) IptColDual(j int) float64 { return p.colValue("IptColDual", p.ipt.colDual, j) }

// IptRowDual returns the interior-point dual value of row i.
func (p *Prob) IptRowDual(i int) float64 { return p.rowValue("IptRowDual", p.ipt.rowDual, i) }

func (p *Prob) colValue(op string, v []float64, j int) float64 {
	p.col(op, j)
	if j > len(v) {
		return 0
	}
	return v[j-1]
}

func (p *Prob) rowValue(op string, v []float64, i int) float64 {
	p.row(op, i)
	if i > len(v) {
		return 0
	}
	return v[i-1]
}
