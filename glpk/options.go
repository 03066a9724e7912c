package glpk

import "log/slog"

// DefaultProblemFile is the file written when problem saving is enabled
// without an explicit path.
const DefaultProblemFile = "outpb.lp"

// SolveOption configures a Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	method   Method
	scale    ScaleFlags
	save     bool
	savePath string
	logger   *slog.Logger
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		method: Simplex,
		scale:  ScaleEquilibrate,
		logger: slog.Default(),
	}
}

// WithMethod selects the LP method for continuous problems. It is ignored
// for MIPs except for its effect on scaling and the advanced basis.
func WithMethod(m Method) SolveOption {
	return func(c *solveConfig) {
		c.method = m
	}
}

// WithScale sets the scaling flags passed to the solver.
func WithScale(flags ScaleFlags) SolveOption {
	return func(c *solveConfig) {
		c.scale = flags
	}
}

// WithSaveProblem writes the assembled problem in CPLEX LP format before
// solving. An empty path selects DefaultProblemFile.
func WithSaveProblem(path string) SolveOption {
	return func(c *solveConfig) {
		c.save = true
		c.savePath = path
		if path == "" {
			c.savePath = DefaultProblemFile
		}
	}
}

// WithLogger sets the logger used for stage tracing.
func WithLogger(l *slog.Logger) SolveOption {
	return func(c *solveConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
