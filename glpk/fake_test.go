package glpk

import (
	"errors"
	"fmt"
)

// fakeProb records every call made on it and returns canned codes and
// solutions.
type fakeProb struct {
	calls []string

	cols, rows int
	liveCols   int // overrides cols for NumCols when > 0

	simplexCode, intoptCode, interiorCode int
	writeErr                              error

	status      SolStatus
	obj         float64
	prim        []float64
	rowDual     []float64
	colDual     []float64
	colBnds     map[int][3]float64
	rowBnds     map[int][3]float64
	colKinds    map[int]ColKind
	matrix      []Nonzero
	deleteCount int
}

func newFakeProb() *fakeProb {
	return &fakeProb{
		colBnds:  make(map[int][3]float64),
		rowBnds:  make(map[int][3]float64),
		colKinds: make(map[int]ColKind),
	}
}

func (f *fakeProb) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeProb) SetObjDir(dir ObjDir) { f.record("SetObjDir(%s)", dir) }

func (f *fakeProb) AddCols(n int) int {
	f.record("AddCols(%d)", n)
	first := f.cols + 1
	f.cols += n
	return first
}

func (f *fakeProb) SetColBnds(j int, kind BoundKind, lb, ub float64) {
	f.colBnds[j] = [3]float64{float64(kind), lb, ub}
}

func (f *fakeProb) SetObjCoef(j int, coef float64) {}

func (f *fakeProb) SetColKind(j int, kind ColKind) { f.colKinds[j] = kind }

func (f *fakeProb) AddRows(m int) int {
	f.record("AddRows(%d)", m)
	first := f.rows + 1
	f.rows += m
	return first
}

func (f *fakeProb) SetRowBnds(i int, kind BoundKind, lb, ub float64) {
	f.rowBnds[i] = [3]float64{float64(kind), lb, ub}
}

func (f *fakeProb) LoadMatrix(a []Nonzero) {
	f.record("LoadMatrix(%d)", len(a))
	f.matrix = a
}

func (f *fakeProb) WriteLP(path string) error {
	f.record("WriteLP")
	return f.writeErr
}

func (f *fakeProb) Scale(flags ScaleFlags) { f.record("Scale(%#x)", int(flags)) }
func (f *fakeProb) AdvBasis()              { f.record("AdvBasis") }

func (f *fakeProb) Simplex(parm *Smcp) int {
	f.record("Simplex(presolve=%t)", parm.Presolve)
	return f.simplexCode
}

func (f *fakeProb) Intopt(parm *Iocp) int {
	f.record("Intopt(presolve=%t)", parm.Presolve)
	return f.intoptCode
}

func (f *fakeProb) Interior(parm *Iptcp) int {
	f.record("Interior")
	return f.interiorCode
}

func (f *fakeProb) Status() SolStatus       { return f.status }
func (f *fakeProb) ObjVal() float64         { return f.obj }
func (f *fakeProb) ColPrim(j int) float64   { return f.prim[j-1] }
func (f *fakeProb) RowDual(i int) float64   { return f.rowDual[i-1] }
func (f *fakeProb) ColDual(j int) float64   { return f.colDual[j-1] }
func (f *fakeProb) MIPStatus() SolStatus    { return f.status }
func (f *fakeProb) MIPObjVal() float64      { return f.obj + 100 }
func (f *fakeProb) MIPColVal(j int) float64 { return f.prim[j-1] + 100 }
func (f *fakeProb) IptStatus() SolStatus    { return f.status }
func (f *fakeProb) IptObjVal() float64      { return f.obj + 200 }
func (f *fakeProb) IptColPrim(j int) float64 {
	return f.prim[j-1] + 200
}
func (f *fakeProb) IptRowDual(i int) float64 { return f.rowDual[i-1] + 200 }
func (f *fakeProb) IptColDual(j int) float64 { return f.colDual[j-1] + 200 }

func (f *fakeProb) NumCols() int {
	if f.liveCols > 0 {
		return f.liveCols
	}
	return f.cols
}

func (f *fakeProb) NumRows() int { return f.rows }

func (f *fakeProb) Delete() {
	f.record("Delete")
	f.deleteCount++
}

// fakeEnv hands out a single fakeProb.
type fakeEnv struct {
	prob  *fakeProb
	news  int
	frees int
}

func (e *fakeEnv) NewProb() Prob {
	e.news++
	return e.prob
}

func (e *fakeEnv) Free() { e.frees++ }

var errDiskFull = errors.New("disk full")
