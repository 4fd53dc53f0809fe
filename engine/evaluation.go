package engine

import (
	"blitz-engine/blitzmg"
)

// Evaluator scores a position in centipawns from the side to move's
// perspective. Implementations must not mutate the board; the search
// calls them on positions it will unwind afterwards.
type Evaluator func(b *blitzmg.Board) int32

// pieceValues holds material in centipawns, indexed by PieceType.
// The king carries no material value; losing it is the search's job
// to notice, not the evaluator's.
var pieceValues = [7]int32{
	blitzmg.PieceTypePawn:   100,
	blitzmg.PieceTypeKnight: 320,
	blitzmg.PieceTypeBishop: 330,
	blitzmg.PieceTypeRook:   500,
	blitzmg.PieceTypeQueen:  900,
}

// Piece-square bonuses indexed by PieceType then square. White reads
// them with the square as-is, black with the square mirrored (sq^56).
var pieceSquareTables = [7][64]int32{
	blitzmg.PieceTypePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		2, 2, 4, 6, 6, 4, 2, 2,
		1, 1, 2, 5, 5, 2, 1, 1,
		0, 0, 1, 4, 4, 1, 0, 0,
		1, -1, 0, 2, 2, 0, -1, 1,
		1, 2, 2, -2, -2, 2, 2, 1,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	blitzmg.PieceTypeKnight: {
		-5, -4, -3, -3, -3, -3, -4, -5,
		-4, -2, 0, 0, 0, 0, -2, -4,
		-3, 0, 1, 2, 2, 1, 0, -3,
		-3, 1, 2, 3, 3, 2, 1, -3,
		-3, 0, 2, 3, 3, 2, 0, -3,
		-3, 1, 1, 2, 2, 1, 1, -3,
		-4, -2, 0, 1, 1, 0, -2, -4,
		-5, -4, -3, -3, -3, -3, -4, -5,
	},
	blitzmg.PieceTypeBishop: {
		-2, -1, -1, -1, -1, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 1, 1, 2, 2, 1, 1, -1,
		-1, 0, 1, 2, 2, 1, 0, -1,
		-1, 1, 1, 1, 1, 1, 1, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-2, -1, -1, -1, -1, -1, -1, -2,
	},
	blitzmg.PieceTypeRook: {
		0, 0, 1, 2, 2, 1, 0, 0,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		1, 2, 2, 2, 2, 2, 2, 1,
		0, 0, 0, 1, 1, 0, 0, 0,
	},
	blitzmg.PieceTypeQueen: {
		-2, -1, -1, 0, 0, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		0, 0, 1, 1, 1, 1, 0, 0,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-2, -1, -1, 0, 0, -1, -1, -2,
	},
	blitzmg.PieceTypeKing: {
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-2, -3, -3, -4, -4, -3, -3, -2,
		-1, -2, -2, -2, -2, -2, -2, -1,
		2, 2, 0, 0, 0, 0, 2, 2,
		2, 3, 1, 0, 0, 1, 3, 2,
	},
}

// Evaluate is the default evaluator: material plus piece-square
// bonuses, white minus black, negated when black is to move.
func Evaluate(b *blitzmg.Board) int32 {
	score := sideScore(b.Bitboards(blitzmg.White), 0) -
		sideScore(b.Bitboards(blitzmg.Black), 56)
	if b.SideToMove() == blitzmg.Black {
		return -score
	}
	return score
}

func sideScore(bbs blitzmg.Bitboards, mirror int) int32 {
	var score int32
	score += pieceScore(bbs.Pawns, blitzmg.PieceTypePawn, mirror)
	score += pieceScore(bbs.Knights, blitzmg.PieceTypeKnight, mirror)
	score += pieceScore(bbs.Bishops, blitzmg.PieceTypeBishop, mirror)
	score += pieceScore(bbs.Rooks, blitzmg.PieceTypeRook, mirror)
	score += pieceScore(bbs.Queens, blitzmg.PieceTypeQueen, mirror)
	score += pieceScore(bbs.Kings, blitzmg.PieceTypeKing, mirror)
	return score
}

func pieceScore(mask uint64, pt blitzmg.PieceType, mirror int) int32 {
	var score int32
	for ; mask != 0; mask &= mask - 1 {
		sq := blitzmg.LSB(mask)
		score += pieceValues[pt] + pieceSquareTables[pt][sq^mirror]
	}
	return score
}
