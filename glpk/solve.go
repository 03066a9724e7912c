// Package glpk translates a sparse LP/MIP given as flat arrays into the
// calling sequence of a GLPK-style solver and copies the solver's results
// back into caller-owned arrays.
//
// The solver itself is a collaborator reached through Env and Prob. The
// native package provides a pure Go implementation.
//
// # Example
//
// Minimize x + y subject to x + y >= 1, x, y >= 0:
//
//	p := &glpk.Problem{
//		Sense:  glpk.Minimize,
//		C:      []float64{1, 1},
//		A:      []glpk.Nonzero{{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 2, Val: 1}},
//		B:      []float64{1},
//		CType:  []byte{'L'},
//		FreeLB: []bool{false, false},
//		FreeUB: []bool{true, true},
//		LB:     []float64{0, 0},
//		UB:     []float64{0, 0},
//	}
//	par := glpk.DefaultControlParams()
//	out := glpk.NewResult(p)
//	code, err := glpk.Solve(native.NewEnv(), p, &par, out)
//
// Solve returns the raw solver code of the last stage that ran; out is
// only written when that code is zero.
package glpk

import (
	"fmt"
	"sync"
	"time"
)

// mu serialises Solve: the environment is process-wide and torn down
// after every call.
var mu sync.Mutex

// Solve assembles p on a fresh handle from env, runs the solver stages
// selected by the problem kind, the method and par.Presol, and copies the
// results into out.
//
// The returned int is the solver code of the last stage that ran, zero on
// success. The error is non-nil only for fatal conditions: invalid input
// or a failure to write the problem file. In that case nothing is solved
// and out is not written.
func Solve(env Env, p *Problem, par *ControlParams, out *Result, opts ...SolveOption) (int, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if env == nil {
		return 0, newErrorMsg("Solve", "nil environment")
	}
	if p == nil {
		return 0, newErrorMsg("Solve", "nil problem")
	}
	if par == nil {
		return 0, newErrorMsg("Solve", "nil control parameters")
	}
	if cfg.method != Simplex && cfg.method != Interior {
		return 0, newErrorMsg("Validate", fmt.Sprintf("invalid method %d", cfg.method))
	}
	if err := p.validate(); err != nil {
		return 0, err
	}
	if err := checkResult(out, p.NumCols(), p.NumRows()); err != nil {
		return 0, err
	}

	mu.Lock()
	defer mu.Unlock()

	log := cfg.logger.With("method", cfg.method.String(), "mip", p.IsMIP)

	prob := env.NewProb()
	start := time.Now()
	defer func() {
		prob.Delete()
		env.Free()
	}()

	if err := assemble(prob, p); err != nil {
		return 0, err
	}
	log.Debug("problem assembled", "cols", p.NumCols(), "rows", p.NumRows(), "nonzeros", len(p.A))

	if cfg.save {
		if err := saveProblem(prob, cfg.savePath); err != nil {
			log.Error("problem file not written", "path", cfg.savePath, "err", err)
			return 0, err
		}
		log.Debug("problem written", "path", cfg.savePath)
	}

	code := dispatch(prob, p.IsMIP, cfg.method, cfg.scale, par, log)
	if code == 0 {
		extract(prob, familyFor(p.IsMIP, cfg.method), p.NumCols(), p.NumRows(), out)
	}

	out.Time = time.Since(start).Seconds()
	return code, nil
}

// checkResult verifies the caller pre-sized the output arrays.
func checkResult(out *Result, n, m int) error {
	if out == nil {
		return newErrorMsg("Validate", "nil result")
	}
	if err := checkLen("X", len(out.X), n); err != nil {
		return err
	}
	if err := checkLen("Lambda", len(out.Lambda), m); err != nil {
		return err
	}
	return checkLen("RedCosts", len(out.RedCosts), n)
}
