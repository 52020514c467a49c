// Package assign solves the linear sum assignment problem and builds
// complete streamline correspondences from a distance matrix.
//
// Solve finds the minimum-cost one-to-one assignment of rows to columns
// using the shortest-augmenting-path method (the dual-update variant known
// from the Jonker-Volgenant solver). MatchAll repeats the assignment over
// the still-unmatched rows until every row has a partner, which is how a
// moving bundle with more streamlines than the static bundle is matched.
package assign
