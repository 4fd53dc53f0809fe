package engine

import (
	"golang.org/x/exp/slices"

	"blitz-engine/blitzmg"
)

type scoredMove struct {
	move  blitzmg.Move
	score int32
}

// mvvLvaScore rates a move for ordering: most valuable victim first,
// least valuable attacker breaking ties. Quiet moves score 0, so every
// capture sorts ahead of them. The en-passant victim is always a pawn.
func mvvLvaScore(b *blitzmg.Board, m blitzmg.Move) int32 {
	if !m.IsCapture() {
		return 0
	}
	victim := blitzmg.PieceTypePawn
	if !m.IsEnPassant() {
		victim = b.PieceAt(m.To()).Type()
	}
	attacker := b.PieceAt(m.From()).Type()
	return 100*pieceValues[victim] - pieceValues[attacker]
}

// orderMoves sorts moves in place by descending MVV-LVA score. The sort
// is stable, so moves with equal scores keep their generation order.
func orderMoves(b *blitzmg.Board, moves []blitzmg.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: mvvLvaScore(b, m)}
	}
	slices.SortStableFunc(scored, func(x, y scoredMove) int {
		return int(y.score - x.score)
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
