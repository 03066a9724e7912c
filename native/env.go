// Package native implements the glpk problem contract in pure Go on top
// of gonum's simplex solver.
//
// Problems are converted to the standard form
//
//	minimize  cᵀz
//	s.t.      A·z = b
//	          z >= 0
//
// and handed to gonum.org/v1/gonum/optimize/convex/lp. Row duals come from
// the dual of that standard form, branch and bound runs over node
// relaxations with tightened column bounds.
package native

import (
	"log/slog"
	"sync"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// Env is the environment problems are created from. Free drops every
// problem still alive; the environment re-initialises on the next NewProb.
type Env struct {
	log *slog.Logger

	mu    sync.Mutex
	live  map[*Prob]struct{}
	frees int
}

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger solver messages are written to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Env) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEnv creates a new environment.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		log:  slog.Default(),
		live: make(map[*Prob]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewProb creates an empty problem handle.
func (e *Env) NewProb() glpk.Prob {
	return e.newProb()
}

func (e *Env) newProb() *Prob {
	p := newProb(e, e.log)
	e.mu.Lock()
	e.live[p] = struct{}{}
	e.mu.Unlock()
	return p
}

// Free deletes every live problem and releases the environment.
func (e *Env) Free() {
	e.mu.Lock()
	live := e.live
	e.live = make(map[*Prob]struct{})
	e.frees++
	e.mu.Unlock()

	for p := range live {
		p.release()
	}
}

// Live returns the number of problems not yet deleted.
func (e *Env) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.live)
}

// Frees returns how many times the environment has been freed.
func (e *Env) Frees() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frees
}

func (e *Env) forget(p *Prob) {
	e.mu.Lock()
	delete(e.live, p)
	e.mu.Unlock()
}
