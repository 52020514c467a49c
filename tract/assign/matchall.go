package assign

// Pair links a moving-bundle row to its static-bundle column.
type Pair struct {
	Moving int
	Static int
}

// MatchAll assigns every row of the cost matrix to a column, reusing columns
// when rows outnumber them: assignment runs over the still-unmatched rows
// until none remain, so each round matches up to one row per column. The
// result holds one pair per row, ordered by row index.
func MatchAll(cost [][]float64) ([]Pair, error) {
	rowCols, err := Solve(cost)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, len(cost))
	unmatched := make([]int, 0)
	for i, j := range rowCols {
		if j == -1 {
			unmatched = append(unmatched, i)
			continue
		}
		pairs[i] = Pair{Moving: i, Static: j}
	}

	for len(unmatched) > 0 {
		sub := make([][]float64, len(unmatched))
		for k, i := range unmatched {
			sub[k] = cost[i]
		}

		subCols, err := Solve(sub)
		if err != nil {
			return nil, err
		}

		var next []int
		for k, j := range subCols {
			i := unmatched[k]
			if j == -1 {
				next = append(next, i)
				continue
			}
			pairs[i] = Pair{Moving: i, Static: j}
		}
		unmatched = next
	}

	return pairs, nil
}
