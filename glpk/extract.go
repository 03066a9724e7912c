package glpk

// family identifies the accessor family holding the result.
type family int

const (
	familySimplex family = iota
	familyMIP
	familyInterior
)

// familyFor picks the accessor family using the same conditions as the
// dispatcher.
func familyFor(isMIP bool, method Method) family {
	switch {
	case isMIP:
		return familyMIP
	case method == Simplex:
		return familySimplex
	default:
		return familyInterior
	}
}

// solution is the uniform view over one accessor family.
type solution interface {
	status() SolStatus
	objVal() float64
	colPrim(j int) float64
	// hasDuals reports whether rowDual and colDual are meaningful.
	hasDuals() bool
	rowDual(i int) float64
	colDual(j int) float64
}

type simplexSolution struct{ p SimplexAccessor }

func (s simplexSolution) status() SolStatus     { return s.p.Status() }
func (s simplexSolution) objVal() float64       { return s.p.ObjVal() }
func (s simplexSolution) colPrim(j int) float64 { return s.p.ColPrim(j) }
func (s simplexSolution) hasDuals() bool        { return true }
func (s simplexSolution) rowDual(i int) float64 { return s.p.RowDual(i) }
func (s simplexSolution) colDual(j int) float64 { return s.p.ColDual(j) }

type mipSolution struct{ p MIPAccessor }

func (s mipSolution) status() SolStatus     { return s.p.MIPStatus() }
func (s mipSolution) objVal() float64       { return s.p.MIPObjVal() }
func (s mipSolution) colPrim(j int) float64 { return s.p.MIPColVal(j) }
func (s mipSolution) hasDuals() bool        { return false }
func (s mipSolution) rowDual(int) float64   { return 0 }
func (s mipSolution) colDual(int) float64   { return 0 }

type interiorSolution struct{ p InteriorAccessor }

func (s interiorSolution) status() SolStatus     { return s.p.IptStatus() }
func (s interiorSolution) objVal() float64       { return s.p.IptObjVal() }
func (s interiorSolution) colPrim(j int) float64 { return s.p.IptColPrim(j) }
func (s interiorSolution) hasDuals() bool        { return true }
func (s interiorSolution) rowDual(i int) float64 { return s.p.IptRowDual(i) }
func (s interiorSolution) colDual(j int) float64 { return s.p.IptColDual(j) }

func solutionOf(prob Prob, f family) solution {
	switch f {
	case familyMIP:
		return mipSolution{prob}
	case familyInterior:
		return interiorSolution{prob}
	default:
		return simplexSolution{prob}
	}
}

// extract copies the solution into out. n and m are the caller's
// dimensions; reduced costs follow the handle's live column count.
func extract(prob Prob, f family, n, m int, out *Result) {
	sol := solutionOf(prob, f)

	out.Status = sol.status()
	out.FMin = sol.objVal()

	for j := 0; j < n; j++ {
		out.X[j] = sol.colPrim(j + 1)
	}

	if !sol.hasDuals() {
		return
	}
	for i := 0; i < m; i++ {
		out.Lambda[i] = sol.rowDual(i + 1)
	}
	for j := 0; j < prob.NumCols() && j < len(out.RedCosts); j++ {
		out.RedCosts[j] = sol.colDual(j + 1)
	}
}
