package blitzmg

import "math/bits"

var (
	knightMoves [64]uint64
	kingMoves   [64]uint64
	// pawnAttacks[c][sq] holds the squares a pawn of color c on sq attacks.
	pawnAttacks [2][64]uint64
	rookRays    [64][4]uint64 // N, S, E, W
	bishopRays  [64][4]uint64 // NE, NW, SE, SW
)

// rising marks the directions whose ray squares carry higher indices than
// the origin, so the nearest blocker is the lowest set bit.
var (
	rookRising   = [4]bool{true, false, true, false}
	bishopRising = [4]bool{true, true, false, false}
)

func init() {
	knightDeltas := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8

		for _, d := range knightDeltas {
			tf, tr := f+d[0], r+d[1]
			if tf >= 0 && tf < 8 && tr >= 0 && tr < 8 {
				knightMoves[sq] |= 1 << uint(tr*8+tf)
			}
		}

		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				tf, tr := f+df, r+dr
				if tf >= 0 && tf < 8 && tr >= 0 && tr < 8 {
					kingMoves[sq] |= 1 << uint(tr*8+tf)
				}
			}
		}

		if r < 7 {
			if f > 0 {
				pawnAttacks[White][sq] |= 1 << uint(sq+7)
			}
			if f < 7 {
				pawnAttacks[White][sq] |= 1 << uint(sq+9)
			}
		}
		if r > 0 {
			if f < 7 {
				pawnAttacks[Black][sq] |= 1 << uint(sq-7)
			}
			if f > 0 {
				pawnAttacks[Black][sq] |= 1 << uint(sq-9)
			}
		}

		for tr := r + 1; tr < 8; tr++ {
			rookRays[sq][0] |= 1 << uint(tr*8+f)
		}
		for tr := r - 1; tr >= 0; tr-- {
			rookRays[sq][1] |= 1 << uint(tr*8+f)
		}
		for tf := f + 1; tf < 8; tf++ {
			rookRays[sq][2] |= 1 << uint(r*8+tf)
		}
		for tf := f - 1; tf >= 0; tf-- {
			rookRays[sq][3] |= 1 << uint(r*8+tf)
		}

		for tf, tr := f+1, r+1; tf < 8 && tr < 8; tf, tr = tf+1, tr+1 {
			bishopRays[sq][0] |= 1 << uint(tr*8+tf)
		}
		for tf, tr := f-1, r+1; tf >= 0 && tr < 8; tf, tr = tf-1, tr+1 {
			bishopRays[sq][1] |= 1 << uint(tr*8+tf)
		}
		for tf, tr := f+1, r-1; tf < 8 && tr >= 0; tf, tr = tf+1, tr-1 {
			bishopRays[sq][2] |= 1 << uint(tr*8+tf)
		}
		for tf, tr := f-1, r-1; tf >= 0 && tr >= 0; tf, tr = tf-1, tr-1 {
			bishopRays[sq][3] |= 1 << uint(tr*8+tf)
		}
	}
}

// firstOn returns the blocker nearest the ray origin.
func firstOn(blockers uint64, rising bool) int {
	if rising {
		return bits.TrailingZeros64(blockers)
	}
	return 63 - bits.LeadingZeros64(blockers)
}

func rookAttacks(sq Square, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		attacks |= ray
		if blockers := ray & occ; blockers != 0 {
			attacks &^= rookRays[firstOn(blockers, rookRising[d])][d]
		}
	}
	return attacks
}

func bishopAttacks(sq Square, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		attacks |= ray
		if blockers := ray & occ; blockers != 0 {
			attacks &^= bishopRays[firstOn(blockers, bishopRising[d])][d]
		}
	}
	return attacks
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(sq, by, b.AllOccupancy())
}

func (b *Board) isSquareAttackedWithOcc(sq Square, by Color, occ uint64) bool {
	bi := int(by)
	// A pawn of color by attacks sq exactly when a pawn of the other
	// color standing on sq would attack the pawn's square.
	if pawnAttacks[1-bi][sq]&b.pawns[bi] != 0 {
		return true
	}
	if knightMoves[sq]&b.knights[bi] != 0 {
		return true
	}
	if kingMoves[sq]&b.kings[bi] != 0 {
		return true
	}
	if diag := b.bishops[bi] | b.queens[bi]; diag != 0 && bishopAttacks(sq, occ)&diag != 0 {
		return true
	}
	if straight := b.rooks[bi] | b.queens[bi]; straight != 0 && rookAttacks(sq, occ)&straight != 0 {
		return true
	}
	return false
}

// InCheck reports whether the king of color c is attacked. A board with
// no king of that color is never in check.
func (b *Board) InCheck(c Color) bool {
	kings := b.kings[int(c)]
	if kings == 0 {
		return false
	}
	return b.IsSquareAttacked(Square(LSB(kings)), c^1)
}

var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// appendPawnMove appends one pawn move, expanding it into the four
// promotion variants when the destination is the last rank.
func appendPawnMove(dst []Move, from, to Square, flags uint8, promoRank bool) []Move {
	if promoRank {
		for _, pt := range promotionOrder {
			dst = append(dst, NewMove(from, to, pt, flags))
		}
		return dst
	}
	return append(dst, NewMove(from, to, PieceTypeNone, flags))
}

// appendTargets appends one move per set bit of targets, flagging
// captures against the opponent occupancy.
func appendTargets(dst []Move, from Square, targets, opp uint64) []Move {
	for t := targets; t != 0; {
		to := Square(popLSB(&t))
		var flags uint8
		if opp&bb(to) != 0 {
			flags = FlagCapture
		}
		dst = append(dst, NewMove(from, to, PieceTypeNone, flags))
	}
	return dst
}

// GeneratePseudoMoves returns the pseudo-legal moves for the side to move.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 64))
}

// GeneratePseudoMovesInto appends every pseudo-legal move for the side
// to move onto dst and returns the extended slice. Castling is fully
// gated here (right held, rook at home, empty path, origin, transit and
// landing squares unattacked); everything else may still leave the
// mover's own king in check.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move {
	us := b.sideToMove
	ui := int(us)
	own := b.occupancy[ui]
	opp := b.occupancy[1-ui]
	occ := own | opp
	empty := ^occ

	pawns := b.pawns[ui]
	if us == White {
		singles := (pawns << 8) & empty
		for t := singles; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to-8, to, 0, to.Rank() == 7)
		}
		doubles := ((singles & (Rank2 << 8)) << 8) & empty
		for t := doubles; t != 0; {
			to := Square(popLSB(&t))
			dst = append(dst, NewMove(to-16, to, PieceTypeNone, FlagDoublePush))
		}
		capsE := ((pawns &^ FileH) << 9) & opp
		for t := capsE; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to-9, to, FlagCapture, to.Rank() == 7)
		}
		capsW := ((pawns &^ FileA) << 7) & opp
		for t := capsW; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to-7, to, FlagCapture, to.Rank() == 7)
		}
		if ep := b.enPassantSquare; ep != NoSquare {
			epBB := bb(ep)
			if (pawns&^FileH)&(epBB>>9) != 0 {
				dst = append(dst, NewMove(ep-9, ep, PieceTypeNone, FlagCapture|FlagEnPassant))
			}
			if (pawns&^FileA)&(epBB>>7) != 0 {
				dst = append(dst, NewMove(ep-7, ep, PieceTypeNone, FlagCapture|FlagEnPassant))
			}
		}
	} else {
		singles := (pawns >> 8) & empty
		for t := singles; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to+8, to, 0, to.Rank() == 0)
		}
		doubles := ((singles & (Rank7 >> 8)) >> 8) & empty
		for t := doubles; t != 0; {
			to := Square(popLSB(&t))
			dst = append(dst, NewMove(to+16, to, PieceTypeNone, FlagDoublePush))
		}
		capsE := ((pawns &^ FileH) >> 7) & opp
		for t := capsE; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to+7, to, FlagCapture, to.Rank() == 0)
		}
		capsW := ((pawns &^ FileA) >> 9) & opp
		for t := capsW; t != 0; {
			to := Square(popLSB(&t))
			dst = appendPawnMove(dst, to+9, to, FlagCapture, to.Rank() == 0)
		}
		if ep := b.enPassantSquare; ep != NoSquare {
			epBB := bb(ep)
			if (pawns&^FileH)&(epBB<<7) != 0 {
				dst = append(dst, NewMove(ep+7, ep, PieceTypeNone, FlagCapture|FlagEnPassant))
			}
			if (pawns&^FileA)&(epBB<<9) != 0 {
				dst = append(dst, NewMove(ep+9, ep, PieceTypeNone, FlagCapture|FlagEnPassant))
			}
		}
	}

	for t := b.knights[ui]; t != 0; {
		from := Square(popLSB(&t))
		dst = appendTargets(dst, from, knightMoves[from]&^own, opp)
	}
	for t := b.bishops[ui]; t != 0; {
		from := Square(popLSB(&t))
		dst = appendTargets(dst, from, bishopAttacks(from, occ)&^own, opp)
	}
	for t := b.rooks[ui]; t != 0; {
		from := Square(popLSB(&t))
		dst = appendTargets(dst, from, rookAttacks(from, occ)&^own, opp)
	}
	for t := b.queens[ui]; t != 0; {
		from := Square(popLSB(&t))
		dst = appendTargets(dst, from, (rookAttacks(from, occ)|bishopAttacks(from, occ))&^own, opp)
	}
	if k := b.kings[ui]; k != 0 {
		from := Square(LSB(k))
		dst = appendTargets(dst, from, kingMoves[from]&^own, opp)
	}

	if us == White {
		if b.castlingRights&CastleWhiteKingside != 0 &&
			b.pieces[7] == WhiteRook &&
			occ&(bb(5)|bb(6)) == 0 &&
			!b.isSquareAttackedWithOcc(4, Black, occ) &&
			!b.isSquareAttackedWithOcc(5, Black, occ) &&
			!b.isSquareAttackedWithOcc(6, Black, occ) {
			dst = append(dst, NewMove(4, 6, PieceTypeNone, FlagCastle))
		}
		if b.castlingRights&CastleWhiteQueenside != 0 &&
			b.pieces[0] == WhiteRook &&
			occ&(bb(1)|bb(2)|bb(3)) == 0 &&
			!b.isSquareAttackedWithOcc(4, Black, occ) &&
			!b.isSquareAttackedWithOcc(3, Black, occ) &&
			!b.isSquareAttackedWithOcc(2, Black, occ) {
			dst = append(dst, NewMove(4, 2, PieceTypeNone, FlagCastle))
		}
	} else {
		if b.castlingRights&CastleBlackKingside != 0 &&
			b.pieces[63] == BlackRook &&
			occ&(bb(61)|bb(62)) == 0 &&
			!b.isSquareAttackedWithOcc(60, White, occ) &&
			!b.isSquareAttackedWithOcc(61, White, occ) &&
			!b.isSquareAttackedWithOcc(62, White, occ) {
			dst = append(dst, NewMove(60, 62, PieceTypeNone, FlagCastle))
		}
		if b.castlingRights&CastleBlackQueenside != 0 &&
			b.pieces[56] == BlackRook &&
			occ&(bb(57)|bb(58)|bb(59)) == 0 &&
			!b.isSquareAttackedWithOcc(60, White, occ) &&
			!b.isSquareAttackedWithOcc(59, White, occ) &&
			!b.isSquareAttackedWithOcc(58, White, occ) {
			dst = append(dst, NewMove(60, 58, PieceTypeNone, FlagCastle))
		}
	}

	return dst
}

// GenerateMoves returns the legal moves for the side to move.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, 64))
}

// GenerateMovesInto appends the legal moves for the side to move onto
// dst and returns the extended slice. Each pseudo-legal move is tried on
// the board and kept only when it does not leave the mover's king in
// check; this also covers pins and en-passant discoveries.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	start := len(dst)
	us := b.sideToMove
	pseudo := b.GeneratePseudoMovesInto(dst)
	legal := pseudo[:start]
	for _, m := range pseudo[start:] {
		undo := b.Apply(m)
		if !b.InCheck(us) {
			legal = append(legal, m)
		}
		undo()
	}
	return legal
}

type perftCtx struct {
	bufs [][]Move
}

func newPerftCtx(depth int) *perftCtx {
	ctx := &perftCtx{bufs: make([][]Move, depth+1)}
	for i := range ctx.bufs {
		ctx.bufs[i] = make([]Move, 0, 64)
	}
	return ctx
}

// Perft counts the leaf nodes of the legal move tree at the given depth.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return b.perft(depth, newPerftCtx(depth))
}

func (b *Board) perft(depth int, ctx *perftCtx) uint64 {
	moves := b.GenerateMovesInto(ctx.bufs[depth][:0])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += b.perft(depth-1, ctx)
		b.UnmakeMove(m)
	}
	return nodes
}

// PerftDivide splits the perft count by root move, returning the subtree
// size under each legal root move together with their sum.
func (b *Board) PerftDivide(depth int) (map[Move]uint64, uint64) {
	counts := make(map[Move]uint64)
	if depth <= 0 {
		return counts, 0
	}
	ctx := newPerftCtx(depth)
	moves := b.GenerateMovesInto(ctx.bufs[depth][:0])
	var total uint64
	for _, m := range moves {
		nodes := uint64(1)
		if depth > 1 {
			b.MakeMove(m)
			nodes = b.perft(depth-1, ctx)
			b.UnmakeMove(m)
		}
		counts[m] = nodes
		total += nodes
	}
	return counts, total
}
