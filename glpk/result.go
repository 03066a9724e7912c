package glpk

// Result receives the outputs of Solve. The slices are caller-owned and
// must be pre-sized; Solve writes them in place and leaves them untouched
// when the final solver code is not zero.
type Result struct {
	// X receives the primal value of each column (length n).
	X []float64

	// Lambda receives the dual value of each row (length m).
	// Only written for continuous problems.
	Lambda []float64

	// RedCosts receives the reduced cost of each column (length n).
	// Only written for continuous problems.
	RedCosts []float64

	// Status is the solution status reported by the method that ran last.
	Status SolStatus

	// FMin is the objective value at the solution.
	FMin float64

	// Time is the elapsed time of the call in seconds.
	Time float64
}

// NewResult allocates a Result sized for p.
func NewResult(p *Problem) *Result {
	return &Result{
		X:        make([]float64, p.NumCols()),
		Lambda:   make([]float64, p.NumRows()),
		RedCosts: make([]float64, p.NumCols()),
	}
}

// IsOptimal returns true if the solution is optimal.
func (r *Result) IsOptimal() bool {
	return r.Status == StatusOptimal
}

// IsInfeasible returns true if the problem has no feasible solution.
func (r *Result) IsInfeasible() bool {
	return r.Status == StatusNoFeasible || r.Status == StatusInfeasible
}

// IsUnbounded returns true if the problem is unbounded.
func (r *Result) IsUnbounded() bool {
	return r.Status == StatusUnbounded
}

// HasSolution returns true if X holds a usable point.
func (r *Result) HasSolution() bool {
	return r.Status == StatusOptimal || r.Status == StatusFeasible
}

// Value returns the solution value for a column by zero-based index.
// Returns 0 if the index is out of range.
func (r *Result) Value(index int) float64 {
	if index < 0 || index >= len(r.X) {
		return 0
	}
	return r.X[index]
}
