package native

import (
	"math"
	"time"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// node is an open subproblem of the branch-and-bound tree.
type node struct {
	lo, hi []float64
	bound  float64 // relaxation objective of the parent, minimised
	depth  int
}

// Intopt runs branch and bound over the integer columns and stores the
// best integer solution found.
//
// Double-bounded rows or columns with lb >= ub return EBound. Without
// presolve the LP relaxation must already have been solved to
// optimality by Simplex, otherwise ERoot is returned. With presolve the
// relaxation is solved here and an infeasible or unbounded one returns
// ENoPFS or ENoDFS. Hitting the time limit returns ETmLim with a Feasible
// status if an integer solution is known.
func (p *Prob) Intopt(parm *glpk.Iocp) int {
	if parm == nil {
		parm = &glpk.Iocp{MsgLev: glpk.MsgErr, BrTech: glpk.BrMFV, BtTech: glpk.BtBLB, TolInt: 1e-5, TolObj: 1e-7, TmLim: math.MaxInt32}
	}
	p.msgLev = parm.MsgLev
	p.mip = mipSol{status: glpk.StatusUndefined}
	if code := p.checkBounds("intopt"); code != 0 {
		return code
	}

	if !parm.Presolve && p.sol.status != glpk.StatusOptimal {
		p.errorf("intopt: optimal basis to initial LP relaxation not provided")
		return glpk.ERoot
	}

	sense := 1.0
	if p.dir == glpk.DirMax {
		sense = -1
	}
	tolInt := parm.TolInt
	if tolInt <= 0 {
		tolInt = 1e-5
	}

	lo, hi := p.colIntervals()
	for j, c := range p.cols {
		if c.integer {
			lo[j] = math.Ceil(lo[j] - tolInt)
			hi[j] = math.Floor(hi[j] + tolInt)
		}
	}

	root := p.solveLP(lo, hi, lpOptions{scale: p.scaling()})
	if root.code != 0 {
		return root.code
	}
	switch root.status {
	case glpk.StatusNoFeasible:
		p.mip.status = glpk.StatusNoFeasible
		p.infof("intopt: problem has no integer feasible solution")
		if parm.Presolve {
			return glpk.ENoPFS
		}
		return 0
	case glpk.StatusUnbounded:
		p.errorf("intopt: LP relaxation has unbounded solution")
		if parm.Presolve {
			return glpk.ENoDFS
		}
		return glpk.EFail
	}

	var deadline time.Time
	if parm.TmLim > 0 {
		deadline = time.Now().Add(time.Duration(parm.TmLim) * time.Millisecond)
	}

	var best []float64
	bestObj := math.Inf(1)
	improves := func(v float64) bool {
		if best == nil {
			return true
		}
		return v < bestObj-parm.TolObj*math.Max(1, math.Abs(bestObj))
	}

	open := []node{{lo: lo, hi: hi, bound: sense * root.obj}}
	first := &root
	nodes := 0
	for len(open) > 0 {
		if !deadline.IsZero() && time.Now().After(deadline) {
			p.infof("intopt: time limit exceeded after %d nodes", nodes)
			if best != nil {
				p.setMIP(glpk.StatusFeasible, best)
			}
			return glpk.ETmLim
		}

		var nd node
		nd, open = selectNode(open, parm.BtTech)
		if !improves(nd.bound) {
			continue
		}

		var res lpResult
		if first != nil {
			res, first = *first, nil
		} else {
			res = p.solveLP(nd.lo, nd.hi, lpOptions{scale: p.scaling()})
		}
		nodes++
		if res.code != 0 {
			return res.code
		}
		if res.status != glpk.StatusOptimal {
			continue
		}
		obj := sense * res.obj
		if !improves(obj) {
			continue
		}

		j := p.branchColumn(res.x, parm.BrTech, tolInt)
		if j < 0 {
			best, bestObj = res.x, obj
			p.debugf("intopt: integer solution at node %d, obj = %g", nodes, res.obj)
			continue
		}

		v := res.x[j]
		down := node{lo: nd.lo, hi: clone(nd.hi), bound: obj, depth: nd.depth + 1}
		down.hi[j] = math.Floor(v)
		up := node{lo: clone(nd.lo), hi: nd.hi, bound: obj, depth: nd.depth + 1}
		up.lo[j] = math.Ceil(v)
		if v-math.Floor(v) >= 0.5 {
			down, up = up, down
		}
		// down is explored first
		open = pushChildren(open, down, up, parm.BtTech)
	}

	if best == nil {
		p.mip.status = glpk.StatusNoFeasible
		p.infof("intopt: problem has no integer feasible solution")
		return 0
	}
	p.setMIP(glpk.StatusOptimal, best)
	p.infof("intopt: integer optimal solution found after %d nodes, obj = %g", nodes, p.mip.obj)
	return 0
}

// setMIP stores x, snapping integer columns to the nearest integer.
func (p *Prob) setMIP(status glpk.SolStatus, x []float64) {
	val := clone(x)
	obj := 0.0
	for j, c := range p.cols {
		if c.integer {
			val[j] = math.Round(val[j])
		}
		obj += c.coef * val[j]
	}
	p.mip = mipSol{status: status, obj: obj, colVal: val}
}

// branchColumn picks the fractional integer column to branch on, or -1
// when x is integer feasible.
func (p *Prob) branchColumn(x []float64, tech int, tolInt float64) int {
	pick := -1
	bestFrac := -1.0
	for j, c := range p.cols {
		if !c.integer {
			continue
		}
		f := x[j] - math.Floor(x[j])
		if f <= tolInt || f >= 1-tolInt {
			continue
		}
		switch tech {
		case glpk.BrFFV:
			return j
		case glpk.BrLFV:
			pick = j
		default:
			// most fractional; DTH and PCH use it too
			if d := math.Min(f, 1-f); d > bestFrac {
				pick, bestFrac = j, d
			}
		}
	}
	return pick
}

// selectNode removes the next node to explore from open.
func selectNode(open []node, tech int) (node, []node) {
	k := len(open) - 1
	switch tech {
	case glpk.BtDFS:
	case glpk.BtBFS:
		k = 0
	default:
		// best local bound; BPH uses it too. Ties go to the deepest node.
		for i := len(open) - 1; i >= 0; i-- {
			if open[i].bound < open[k].bound ||
				(open[i].bound == open[k].bound && open[i].depth > open[k].depth) {
				k = i
			}
		}
	}
	nd := open[k]
	open = append(open[:k], open[k+1:]...)
	return nd, open
}

// pushChildren adds both children so that first is selected before
// second.
func pushChildren(open []node, first, second node, tech int) []node {
	if tech == glpk.BtBFS {
		return append(open, first, second)
	}
	return append(open, second, first)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
