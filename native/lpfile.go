package native

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/jo-37/pdl-opt-glpk/glpk"
)

// WriteLP writes the problem to path in CPLEX LP format.
func (p *Prob) WriteLP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create problem file")
	}
	if err := p.EncodeLP(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close problem file")
}

// EncodeLP writes the problem to w in CPLEX LP format. Columns are named
// x_j and rows r_i. A double-bounded row r_i is written as an equality
// on its lower bound with an auxiliary column ~r_i ranging over the width
// of the interval.
func (p *Prob) EncodeLP(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\* Problem: Unknown *\\\n\n")
	if p.dir == glpk.DirMax {
		fmt.Fprintf(bw, "Maximize\n")
	} else {
		fmt.Fprintf(bw, "Minimize\n")
	}
	fmt.Fprintf(bw, " obj:")
	terms := 0
	for j, c := range p.cols {
		if c.coef != 0 {
			writeTerm(bw, c.coef, colName(j))
			terms++
		}
	}
	if terms == 0 && len(p.cols) > 0 {
		fmt.Fprintf(bw, " 0 %s", colName(0))
	}
	fmt.Fprintf(bw, "\n\nSubject To\n")

	byRow := make([][]glpk.Nonzero, len(p.rows))
	for _, e := range p.a {
		byRow[e.Row-1] = append(byRow[e.Row-1], e)
	}
	var ranged []int
	for i, r := range p.rows {
		if len(byRow[i]) == 0 && len(p.cols) == 0 {
			continue
		}
		fmt.Fprintf(bw, " %s:", rowName(i))
		for _, e := range byRow[i] {
			writeTerm(bw, e.Val, colName(e.Col-1))
		}
		if len(byRow[i]) == 0 {
			fmt.Fprintf(bw, " 0 %s", colName(0))
		}
		switch r.kind {
		case glpk.Free:
			fmt.Fprintf(bw, " >= -inf\n")
		case glpk.Lower:
			fmt.Fprintf(bw, " >= %s\n", num(r.lb))
		case glpk.Upper:
			fmt.Fprintf(bw, " <= %s\n", num(r.ub))
		case glpk.Fixed:
			fmt.Fprintf(bw, " = %s\n", num(r.lb))
		case glpk.Double:
			fmt.Fprintf(bw, " - ~%s = %s\n", rowName(i), num(r.lb))
			ranged = append(ranged, i)
		}
	}

	fmt.Fprintf(bw, "\nBounds\n")
	for j, c := range p.cols {
		name := colName(j)
		switch c.kind {
		case glpk.Free:
			fmt.Fprintf(bw, " %s free\n", name)
		case glpk.Lower:
			if c.lb != 0 {
				fmt.Fprintf(bw, " %s >= %s\n", name, num(c.lb))
			}
		case glpk.Upper:
			fmt.Fprintf(bw, " -inf <= %s <= %s\n", name, num(c.ub))
		case glpk.Double:
			fmt.Fprintf(bw, " %s <= %s <= %s\n", num(c.lb), name, num(c.ub))
		case glpk.Fixed:
			fmt.Fprintf(bw, " %s = %s\n", name, num(c.lb))
		}
	}
	for _, i := range ranged {
		r := p.rows[i]
		fmt.Fprintf(bw, " 0 <= ~%s <= %s\n", rowName(i), num(r.ub-r.lb))
	}

	var generals []string
	for j, c := range p.cols {
		if c.integer {
			generals = append(generals, colName(j))
		}
	}
	if len(generals) > 0 {
		fmt.Fprintf(bw, "\nGenerals\n")
		for _, name := range generals {
			fmt.Fprintf(bw, " %s\n", name)
		}
	}

	fmt.Fprintf(bw, "\nEnd\n")
	return errors.Wrap(bw.Flush(), "write problem")
}

func writeTerm(w io.Writer, v float64, name string) {
	sign := "+"
	if v < 0 {
		sign = "-"
	}
	if a := math.Abs(v); a == 1 {
		fmt.Fprintf(w, " %s %s", sign, name)
	} else {
		fmt.Fprintf(w, " %s %s %s", sign, num(a), name)
	}
}

func num(v float64) string {
	return fmt.Sprintf("%.15g", v)
}

func colName(j int) string { return fmt.Sprintf("x_%d", j+1) }

func rowName(i int) string { return fmt.Sprintf("r_%d", i+1) }
