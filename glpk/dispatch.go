package glpk

import "log/slog"

// strategy records which solver entry points a problem needs.
type strategy struct {
	scale    bool
	advBasis bool
	simplex  bool
	intopt   bool
	interior bool
}

// plan derives the stages to run. The three solver stages are independent:
// a MIP without presolve runs simplex to provide the root relaxation and
// then branch and bound.
func plan(isMIP bool, method Method, presol bool) strategy {
	return strategy{
		scale:    !presol || method != Simplex,
		advBasis: method == Simplex && !presol,
		simplex:  (!isMIP && method == Simplex) || (isMIP && !presol),
		intopt:   isMIP,
		interior: !isMIP && method == Interior,
	}
}

// dispatch runs every planned stage in order and returns the code of the
// last solver stage that ran. Earlier codes are overwritten, not
// short-circuited.
func dispatch(prob Driver, isMIP bool, method Method, scale ScaleFlags, par *ControlParams, log *slog.Logger) int {
	s := plan(isMIP, method, par.Presol)
	last := 0

	if s.scale {
		log.Debug("scaling problem", "flags", int(scale))
		prob.Scale(scale)
	}
	if s.advBasis {
		log.Debug("building advanced initial basis")
		prob.AdvBasis()
	}

	if s.simplex {
		last = prob.Simplex(par.smcp())
		log.Debug("simplex finished", "code", last)
	}
	if s.intopt {
		last = prob.Intopt(par.iocp())
		log.Debug("branch and bound finished", "code", last)
	}
	if s.interior {
		last = prob.Interior(par.iptcp())
		log.Debug("interior point finished", "code", last)
	}
	return last
}
