package assign

import (
	"errors"
	"math"
)

var (
	// ErrEmpty indicates a cost matrix with no rows or no columns.
	ErrEmpty = errors.New("assign: empty cost matrix")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("assign: ragged cost matrix")

	// ErrNonFinite indicates a NaN or infinite cost entry.
	ErrNonFinite = errors.New("assign: non-finite cost entry")
)

// Solve returns the minimum-total-cost one-to-one assignment of rows to
// columns. The result maps each row index to its assigned column, or -1 when
// the matrix has more rows than columns and the row stayed unassigned.
// Exactly min(rows, cols) entries are assigned.
func Solve(cost [][]float64) ([]int, error) {
	nr := len(cost)
	if nr == 0 {
		return nil, ErrEmpty
	}
	nc := len(cost[0])
	if nc == 0 {
		return nil, ErrEmpty
	}
	for _, row := range cost {
		if len(row) != nc {
			return nil, ErrRagged
		}
		for _, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, ErrNonFinite
			}
		}
	}

	if nr <= nc {
		return solveWide(cost, nr, nc), nil
	}

	// Transpose so the augmenting loop always runs over the short side.
	t := make([][]float64, nc)
	for j := 0; j < nc; j++ {
		t[j] = make([]float64, nr)
		for i := 0; i < nr; i++ {
			t[j][i] = cost[i][j]
		}
	}
	colRows := solveWide(t, nc, nr)

	rowCols := make([]int, nr)
	for i := range rowCols {
		rowCols[i] = -1
	}
	for j, i := range colRows {
		rowCols[i] = j
	}
	return rowCols, nil
}

// solveWide runs the shortest-augmenting-path assignment for nr <= nc.
// Returns the assigned column per row.
func solveWide(cost [][]float64, nr, nc int) []int {
	u := make([]float64, nr) // row duals
	v := make([]float64, nc) // column duals
	col4row := make([]int, nr)
	row4col := make([]int, nc)
	for i := range col4row {
		col4row[i] = -1
	}
	for j := range row4col {
		row4col[j] = -1
	}

	shortest := make([]float64, nc)
	path := make([]int, nc)
	inRowSet := make([]bool, nr)
	done := make([]bool, nc)

	for curRow := 0; curRow < nr; curRow++ {
		for j := range shortest {
			shortest[j] = math.Inf(1)
			path[j] = -1
			done[j] = false
		}
		for i := range inRowSet {
			inRowSet[i] = false
		}

		minVal := 0.0
		i := curRow
		sink := -1

		for sink == -1 {
			inRowSet[i] = true
			lowest := math.Inf(1)
			index := -1

			for j := 0; j < nc; j++ {
				if done[j] {
					continue
				}
				r := minVal + cost[i][j] - u[i] - v[j]
				if r < shortest[j] {
					shortest[j] = r
					path[j] = i
				}
				// Prefer unassigned columns on ties so augmenting paths
				// terminate as early as possible.
				if shortest[j] < lowest || (shortest[j] == lowest && row4col[j] == -1) {
					lowest = shortest[j]
					index = j
				}
			}

			minVal = lowest
			j := index
			done[j] = true
			if row4col[j] == -1 {
				sink = j
			} else {
				i = row4col[j]
			}
		}

		// Dual updates keep reduced costs non-negative for the next round.
		u[curRow] += minVal
		for r := 0; r < nr; r++ {
			if r != curRow && inRowSet[r] {
				u[r] += minVal - shortest[col4row[r]]
			}
		}
		for j := 0; j < nc; j++ {
			if done[j] {
				v[j] -= minVal - shortest[j]
			}
		}

		// Augment along the stored path back to curRow.
		for {
			p := path[sink]
			row4col[sink] = p
			col4row[p], sink = sink, col4row[p]
			if p == curRow {
				break
			}
		}
	}

	return col4row
}
