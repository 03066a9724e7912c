package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jo-37/pdl-opt-glpk/glpk"
	"github.com/jo-37/pdl-opt-glpk/native"
)

func main() {
	paramsPath := flag.String("params", "", "YAML file with control parameters")
	save := flag.String("save", "", "write the problem in CPLEX LP format to this file")
	interior := flag.Bool("interior", false, "use the interior-point method")
	verbose := flag.Bool("v", false, "log solver stages")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	par := glpk.DefaultControlParams()
	if *paramsPath != "" {
		var err error
		if par, err = glpk.LoadControlParamsFile(*paramsPath); err != nil {
			log.Fatal(err)
		}
	}

	// Minimize: x + y
	// Subject to: x + y >= 1, 0 <= x,y <= 10
	p := &glpk.Problem{
		Sense:  glpk.Minimize,
		C:      []float64{1.0, 1.0},
		A:      []glpk.Nonzero{{Row: 1, Col: 1, Val: 1.0}, {Row: 1, Col: 2, Val: 1.0}},
		B:      []float64{1.0},
		CType:  []byte{'L'},
		FreeLB: []bool{false, false},
		FreeUB: []bool{false, false},
		LB:     []float64{0.0, 0.0},
		UB:     []float64{10.0, 10.0},
	}

	opts := []glpk.SolveOption{glpk.WithLogger(logger)}
	if *interior {
		opts = append(opts, glpk.WithMethod(glpk.Interior))
	}
	if *save != "" {
		opts = append(opts, glpk.WithSaveProblem(*save))
	}

	out := glpk.NewResult(p)
	code, err := glpk.Solve(native.NewEnv(native.WithLogger(logger)), p, &par, out, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if code != 0 {
		log.Fatalf("solver returned code %#x", code)
	}

	if out.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", out.X[0], out.X[1])
		fmt.Printf("Objective = %.2f\n", out.FMin)
		fmt.Printf("Lambda = %.2f\n", out.Lambda[0])
	} else {
		fmt.Printf("Status = %s\n", out.Status)
	}
}
