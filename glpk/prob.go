package glpk

// ----------------------------------------------------------------------------
// Collaborator contract
// ----------------------------------------------------------------------------

// Env is a process-wide solver environment. It hands out problem handles
// and is torn down with Free after every call to Solve.
type Env interface {
	// NewProb creates an empty problem handle.
	NewProb() Prob
	// Free releases every resource held by the environment. A later
	// NewProb re-initialises it.
	Free()
}

// Builder populates a problem handle. Row and column indices are one-based.
type Builder interface {
	SetObjDir(dir ObjDir)
	// AddCols appends n columns and returns the index of the first one.
	AddCols(n int) int
	SetColBnds(j int, kind BoundKind, lb, ub float64)
	SetObjCoef(j int, coef float64)
	SetColKind(j int, kind ColKind)
	// AddRows appends m rows and returns the index of the first one.
	AddRows(m int) int
	SetRowBnds(i int, kind BoundKind, lb, ub float64)
	// LoadMatrix replaces the whole constraint matrix.
	LoadMatrix(a []Nonzero)
	// WriteLP writes the problem in CPLEX LP format.
	WriteLP(path string) error
}

// Driver runs the solver entry points. Each returns a solver code, zero on
// success.
type Driver interface {
	Scale(flags ScaleFlags)
	AdvBasis()
	Simplex(parm *Smcp) int
	Intopt(parm *Iocp) int
	Interior(parm *Iptcp) int
}

// SimplexAccessor reads the basic solution produced by Simplex.
type SimplexAccessor interface {
	Status() SolStatus
	ObjVal() float64
	ColPrim(j int) float64
	RowDual(i int) float64
	ColDual(j int) float64
}

// MIPAccessor reads the integer solution produced by Intopt.
type MIPAccessor interface {
	MIPStatus() SolStatus
	MIPObjVal() float64
	MIPColVal(j int) float64
}

// InteriorAccessor reads the interior-point solution produced by Interior.
type InteriorAccessor interface {
	IptStatus() SolStatus
	IptObjVal() float64
	IptColPrim(j int) float64
	IptRowDual(i int) float64
	IptColDual(j int) float64
}

// Prob is a solver-owned problem handle. It is exclusively owned by one
// Solve call and must be released with Delete.
type Prob interface {
	Builder
	Driver
	SimplexAccessor
	MIPAccessor
	InteriorAccessor

	// NumCols returns the live number of columns.
	NumCols() int
	// NumRows returns the live number of rows.
	NumRows() int
	// Delete releases the handle. It is safe to call Delete more than once.
	Delete()
}

// ----------------------------------------------------------------------------
// Method-specific option records
// ----------------------------------------------------------------------------

// Smcp holds the simplex options.
type Smcp struct {
	MsgLev   int
	Meth     int
	Pricing  int
	RTest    int
	TolBnd   float64
	TolDj    float64
	TolPiv   float64
	ObjLL    float64
	ObjUL    float64
	ItLim    int
	TmLim    int
	OutFrq   int
	OutDly   int
	Presolve bool
}

// Iocp holds the branch-and-bound options.
type Iocp struct {
	MsgLev   int
	BrTech   int
	BtTech   int
	TolInt   float64
	TolObj   float64
	TmLim    int
	OutFrq   int
	OutDly   int
	Presolve bool
}

// Iptcp holds the interior-point options.
type Iptcp struct {
	MsgLev int
}
