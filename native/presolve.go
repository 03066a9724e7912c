package native

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// independentRows returns, in order, the rows of [A|b] that are linearly
// independent of the rows before them. ok is false when a dependent row's
// right-hand side disagrees with the combination it depends on, which
// makes the system inconsistent.
func independentRows(A *mat.Dense, b []float64) (keep []int, ok bool) {
	nr, nc := A.Dims()
	var (
		echelon [][]float64 // reduced kept rows with the rhs appended
		pivots  []int
	)
	for i := 0; i < nr; i++ {
		v := make([]float64, nc+1)
		copy(v, A.RawRowView(i))
		v[nc] = b[i]
		tol := feasTol * math.Max(1, floats.Norm(v[:nc], math.Inf(1)))

		for k, u := range echelon {
			if f := v[pivots[k]]; f != 0 {
				floats.AddScaled(v, -f, u)
			}
		}

		piv, mx := -1, tol
		for j, a := range v[:nc] {
			if math.Abs(a) > mx {
				piv, mx = j, math.Abs(a)
			}
		}
		if piv < 0 {
			if math.Abs(v[nc]) > feasTol*math.Max(1, math.Abs(b[i])) {
				return nil, false
			}
			continue
		}

		floats.Scale(1/v[piv], v)
		echelon = append(echelon, v)
		pivots = append(pivots, piv)
		keep = append(keep, i)
	}
	return keep, true
}

// dropRows restricts A and b to the rows in keep and remaps rowPos, which
// points into the rows of A, so that dropped rows map to -1.
func dropRows(A *mat.Dense, b []float64, rowPos, keep []int) (*mat.Dense, []float64, []int) {
	nr, nc := A.Dims()
	pos := make([]int, nr)
	for i := range pos {
		pos[i] = -1
	}
	kA := mat.NewDense(len(keep), nc, nil)
	kb := make([]float64, len(keep))
	for k, i := range keep {
		pos[i] = k
		kA.SetRow(k, A.RawRowView(i))
		kb[k] = b[i]
	}

	remapped := make([]int, len(rowPos))
	for r, pr := range rowPos {
		remapped[r] = -1
		if pr >= 0 {
			remapped[r] = pos[pr]
		}
	}
	return kA, kb, remapped
}
