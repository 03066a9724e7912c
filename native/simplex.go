package native

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// Scale requests scaling of the problem data for subsequent solves. Only
// equilibration of the standard-form rows is implemented; any flag other
// than ScaleSkip alone enables it.
func (p *Prob) Scale(flags glpk.ScaleFlags) {
	p.scale = flags
}

func (p *Prob) scaling() bool {
	return p.scale&^glpk.ScaleSkip != 0
}

// AdvBasis requests an advanced starting basis made of slack columns. It
// is used only when it is primal feasible.
func (p *Prob) AdvBasis() {
	p.advBasis = true
}

// Simplex solves the LP relaxation and stores the basic solution.
//
// A double-bounded row or column with lb >= ub returns EBound. With
// presolve enabled an infeasible problem returns ENoPFS and an unbounded
// one ENoDFS; otherwise both return 0 and are reported through Status.
func (p *Prob) Simplex(parm *glpk.Smcp) int {
	if parm == nil {
		parm = &glpk.Smcp{MsgLev: glpk.MsgErr}
	}
	p.msgLev = parm.MsgLev
	p.sol = basicSol{status: glpk.StatusUndefined}
	if code := p.checkBounds("simplex"); code != 0 {
		return code
	}

	p.debugf("simplex: %d rows, %d columns, %d non-zeros", len(p.rows), len(p.cols), len(p.a))
	lo, hi := p.colIntervals()
	res := p.solveLP(lo, hi, lpOptions{
		tol:      parm.TolDj,
		duals:    true,
		scale:    p.scaling(),
		advBasis: p.advBasis,
	})
	if res.code != 0 {
		return res.code
	}
	p.sol = res.basic()

	switch res.status {
	case glpk.StatusOptimal:
		p.infof("simplex: optimal solution found, obj = %g", res.obj)
	case glpk.StatusNoFeasible:
		p.infof("simplex: problem has no primal feasible solution")
		if parm.Presolve {
			return glpk.ENoPFS
		}
	case glpk.StatusUnbounded:
		p.infof("simplex: problem has unbounded solution")
		if parm.Presolve {
			return glpk.ENoDFS
		}
	}
	return 0
}

// Interior solves the LP and stores the result in the interior-point
// solution. It runs the same engine as Simplex, so the solution is a basic
// (vertex) solution rather than a point from the interior of the optimal
// face.
func (p *Prob) Interior(parm *glpk.Iptcp) int {
	if parm == nil {
		parm = &glpk.Iptcp{MsgLev: glpk.MsgErr}
	}
	p.msgLev = parm.MsgLev
	p.ipt = basicSol{status: glpk.StatusUndefined}
	if code := p.checkBounds("interior"); code != 0 {
		return code
	}

	p.debugf("interior: %d rows, %d columns, %d non-zeros", len(p.rows), len(p.cols), len(p.a))
	lo, hi := p.colIntervals()
	res := p.solveLP(lo, hi, lpOptions{duals: true, scale: p.scaling()})
	if res.code != 0 {
		return res.code
	}
	p.ipt = res.basic()

	switch res.status {
	case glpk.StatusOptimal:
		p.infof("interior: optimal solution found, obj = %g", res.obj)
	case glpk.StatusNoFeasible, glpk.StatusUnbounded:
		p.infof("interior: problem has no feasible primal/dual solution")
		p.ipt.status = glpk.StatusNoFeasible
		return glpk.ENoFeas
	}
	return 0
}

// checkBounds returns EBound if a double-bounded row or column has
// lb >= ub, zero otherwise.
func (p *Prob) checkBounds(op string) int {
	for i, r := range p.rows {
		if r.kind == glpk.Double && r.lb >= r.ub {
			p.errorf("%s: row %d: lb = %g; ub = %g; incorrect bounds", op, i+1, r.lb, r.ub)
			return glpk.EBound
		}
	}
	for j, c := range p.cols {
		if c.kind == glpk.Double && c.lb >= c.ub {
			p.errorf("%s: column %d: lb = %g; ub = %g; incorrect bounds", op, j+1, c.lb, c.ub)
			return glpk.EBound
		}
	}
	return 0
}

// ----------------------------------------------------------------------------
// Messages
// ----------------------------------------------------------------------------

func (p *Prob) logf(minLev int, level slog.Level, format string, args ...any) {
	if p.msgLev < minLev || p.log == nil {
		return
	}
	p.log.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func (p *Prob) errorf(format string, args ...any) {
	p.logf(glpk.MsgErr, slog.LevelError, format, args...)
}

func (p *Prob) infof(format string, args ...any) {
	p.logf(glpk.MsgOn, slog.LevelInfo, format, args...)
}

func (p *Prob) debugf(format string, args ...any) {
	p.logf(glpk.MsgAll, slog.LevelDebug, format, args...)
}
