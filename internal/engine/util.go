package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chessrules/internal/chess"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// maxOf returns the larger of a and b.
func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// distance returns the number of king steps between two squares.
func distance(src, dst chess.Position) int {
	return maxOf(abs(dst.Row-src.Row), abs(dst.Col-src.Col))
}
