package engine

import (
	"testing"

	"github.com/matryer/is"

	"blitz-engine/blitzmg"
)

func TestEvaluateStartposIsBalanced(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	is.Equal(Evaluate(b), int32(0)) // mirrored material and tables cancel
}

func TestEvaluateSideToMovePerspective(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	b.ClearSquare(51) // black d7 pawn off the board

	is.Equal(Evaluate(b), int32(110)) // the pawn plus its square bonus
	b.SetSideToMove(blitzmg.Black)
	is.Equal(Evaluate(b), int32(-110)) // same position, scored for black
}

func TestEvaluateTracksCaptures(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	playLine(t, b, "e2e4 d7d5 e4d5")

	// White is a pawn up and black is to move: 100 material, -6 for the
	// pawn leaving e2, +10 for the missing d7 defender.
	is.Equal(Evaluate(b), int32(-104))
}

func TestEvaluateRewardsDevelopment(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()

	// Swap the g1 knight to f3.
	b.ClearSquare(6)
	b.SetPiece(21, blitzmg.WhiteKnight)

	is.Equal(Evaluate(b), int32(5)) // the knight table prefers f3 to g1
}
