package glpk

import "fmt"

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize minimizes the objective. Any other value maximizes.
	Minimize Sense = 1
	// Maximize maximizes the objective.
	Maximize Sense = -1
)

// ObjDir is the objective direction as stored on a problem handle.
type ObjDir int

const (
	// DirMin minimizes the objective.
	DirMin ObjDir = 1
	// DirMax maximizes the objective.
	DirMax ObjDir = 2
)

// String returns a human-readable representation of the direction.
func (d ObjDir) String() string {
	switch d {
	case DirMin:
		return "Min"
	case DirMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// BoundKind classifies the feasible interval of a column or row.
type BoundKind int

const (
	// Free indicates -inf < x < +inf.
	Free BoundKind = iota + 1
	// Lower indicates lb <= x < +inf.
	Lower
	// Upper indicates -inf < x <= ub.
	Upper
	// Double indicates lb <= x <= ub.
	Double
	// Fixed indicates x = lb.
	Fixed
)

// String returns a human-readable representation of the bound kind.
func (k BoundKind) String() string {
	switch k {
	case Free:
		return "Free"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	case Double:
		return "Double"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// ColKind specifies whether a column is continuous, integer or binary.
type ColKind int

const (
	// Continuous indicates a continuous variable (default).
	Continuous ColKind = iota + 1
	// Integer indicates an integer variable.
	Integer
	// Binary indicates an integer variable restricted to {0, 1}.
	Binary
)

// String returns a human-readable representation of the column kind.
func (k ColKind) String() string {
	switch k {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Method selects the LP method for continuous problems.
type Method int

const (
	// Simplex selects the simplex method.
	Simplex Method = 1
	// Interior selects the interior-point method.
	Interior Method = 2
)

// String returns a human-readable representation of the method.
func (m Method) String() string {
	switch m {
	case Simplex:
		return "Simplex"
	case Interior:
		return "Interior"
	default:
		return "Unknown"
	}
}

// SolStatus is the status of a solution read back from a problem handle.
type SolStatus int

const (
	// StatusUndefined indicates the solution is undefined.
	StatusUndefined SolStatus = iota + 1
	// StatusFeasible indicates a feasible, not proven optimal, solution.
	StatusFeasible
	// StatusInfeasible indicates the current solution is infeasible.
	StatusInfeasible
	// StatusNoFeasible indicates the problem has no feasible solution.
	StatusNoFeasible
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal
	// StatusUnbounded indicates the problem is unbounded.
	StatusUnbounded
)

// String returns a human-readable representation of the status.
func (s SolStatus) String() string {
	names := []string{
		"Undefined", "Feasible", "Infeasible",
		"NoFeasible", "Optimal", "Unbounded",
	}
	if int(s) >= 1 && int(s) <= len(names) {
		return names[s-1]
	}
	return "Unknown"
}

// Solver return codes. Zero means the call succeeded.
const (
	EBadB   = 0x01 // invalid basis
	ESing   = 0x02 // singular matrix
	ECond   = 0x03 // ill-conditioned matrix
	EBound  = 0x04 // invalid bounds
	EFail   = 0x05 // solver failed
	EObjLL  = 0x06 // objective lower limit reached
	EObjUL  = 0x07 // objective upper limit reached
	EItLim  = 0x08 // iteration limit exceeded
	ETmLim  = 0x09 // time limit exceeded
	ENoPFS  = 0x0A // no primal feasible solution
	ENoDFS  = 0x0B // no dual feasible solution
	ERoot   = 0x0C // root LP optimum not provided
	EStop   = 0x0D // search terminated by application
	EMIPGap = 0x0E // relative mip gap tolerance reached
	ENoFeas = 0x0F // no primal/dual feasible solution
	ENoCvg  = 0x10 // no convergence
	EInstab = 0x11 // numerical instability
	EData   = 0x12 // invalid data
	ERange  = 0x13 // result out of range
)

// Message levels accepted by ControlParams.MsgLev.
const (
	MsgOff = 0
	MsgErr = 1
	MsgOn  = 2
	MsgAll = 3
	MsgDbg = 4
)

// Simplex variants accepted by ControlParams.Dual.
const (
	Primal = 1
	DualP  = 2
	Dual   = 3
)

// Pricing and ratio test rules accepted by ControlParams.Price and RTest.
const (
	PtStd = 0x11
	PtPSE = 0x22
	RtStd = 0x11
	RtHar = 0x22
)

// Branching techniques accepted by ControlParams.Branch.
const (
	BrFFV = 1 // first fractional variable
	BrLFV = 2 // last fractional variable
	BrMFV = 3 // most fractional variable
	BrDTH = 4 // Driebeck-Tomlin heuristic
	BrPCH = 5 // hybrid pseudocost
)

// Backtracking techniques accepted by ControlParams.BTrack.
const (
	BtDFS = 1 // depth first search
	BtBFS = 2 // breadth first search
	BtBLB = 3 // best local bound
	BtBPH = 4 // best projection heuristic
)

// ScaleFlags selects the scaling applied before solving.
type ScaleFlags int

const (
	ScaleGeometric   ScaleFlags = 0x01
	ScaleEquilibrate ScaleFlags = 0x10
	ScalePow2        ScaleFlags = 0x20
	ScaleSkip        ScaleFlags = 0x40
	ScaleAuto        ScaleFlags = 0x80
)

// Nonzero represents a non-zero entry in the sparse constraint matrix.
// Row and Col are one-based.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

// Error reports a failure of the routine itself, as opposed to a solver
// return code, with context about which operation failed.
type Error struct {
	Op   string // Operation that failed (e.g., "Validate", "WriteLP")
	Code int    // Solver return code, if any
	Msg  string // Additional context
	Err  error  // Underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return fmt.Sprintf("glpk: %s failed: %s: %v", e.Op, e.Msg, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("glpk: %s failed: %v", e.Op, e.Err)
	}
	if e.Msg != "" {
		return fmt.Sprintf("glpk: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("glpk: %s failed with code %#x", e.Op, e.Code)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Code: EData, Msg: msg}
}
