package blitzmg

// MoveState records what MakeMove destroyed so UnmakeMove can restore it.
// Captured holds the removed piece (NoPiece when the move was quiet).
type MoveState struct {
	Move          Move
	Captured      Piece
	PrevCastling  CastlingRights
	PrevEnPassant Square
}

// MakeMove applies a move to the board. The move is trusted: it must be
// one of the moves generated for this position. Side to move flips, ply
// advances, and the undo state is pushed onto the history.
func (b *Board) MakeMove(m Move) {
	us := b.sideToMove
	from, to := m.From(), m.To()
	moved := b.pieces[int(from)]

	st := MoveState{
		Move:          m,
		Captured:      NoPiece,
		PrevCastling:  b.castlingRights,
		PrevEnPassant: b.enPassantSquare,
	}

	if m.IsEnPassant() {
		// The captured pawn sits behind the destination square.
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		st.Captured = b.removePiece(capSq)
	} else if m.IsCapture() {
		st.Captured = b.removePiece(to)
	}

	// The en-passant window lasts exactly one ply.
	b.enPassantSquare = NoSquare
	if m.IsDoublePush() {
		if us == White {
			b.enPassantSquare = from + 8
		} else {
			b.enPassantSquare = from - 8
		}
	}

	switch moved {
	case WhiteKing:
		b.castlingRights &^= CastleWhiteKingside | CastleWhiteQueenside
	case BlackKing:
		b.castlingRights &^= CastleBlackKingside | CastleBlackQueenside
	case WhiteRook:
		if from == 0 {
			b.castlingRights &^= CastleWhiteQueenside
		} else if from == 7 {
			b.castlingRights &^= CastleWhiteKingside
		}
	case BlackRook:
		if from == 56 {
			b.castlingRights &^= CastleBlackQueenside
		} else if from == 63 {
			b.castlingRights &^= CastleBlackKingside
		}
	}
	if st.Captured.Type() == PieceTypeRook {
		switch to {
		case 0:
			b.castlingRights &^= CastleWhiteQueenside
		case 7:
			b.castlingRights &^= CastleWhiteKingside
		case 56:
			b.castlingRights &^= CastleBlackQueenside
		case 63:
			b.castlingRights &^= CastleBlackKingside
		}
	}

	b.removePiece(from)
	placed := moved
	if m.IsPromotion() {
		placed = PieceFromType(us, m.PromotionPiece())
	}
	b.addPiece(to, placed)

	if m.IsCastle() {
		switch to {
		case 6: // white O-O
			b.addPiece(5, b.removePiece(7))
		case 2: // white O-O-O
			b.addPiece(3, b.removePiece(0))
		case 62: // black O-O
			b.addPiece(61, b.removePiece(63))
		case 58: // black O-O-O
			b.addPiece(59, b.removePiece(56))
		}
	}

	b.sideToMove ^= 1
	b.ply++
	b.history = append(b.history, st)
}

// UnmakeMove reverses the most recently applied move. The move is
// trusted to be the one on top of the history; calling with an empty
// history is a programming error and panics.
func (b *Board) UnmakeMove(m Move) {
	if len(b.history) == 0 {
		panic("blitzmg: UnmakeMove with no move applied")
	}
	st := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.ply--
	b.sideToMove ^= 1
	us := b.sideToMove

	from, to := m.From(), m.To()
	moved := b.removePiece(to)
	if m.IsPromotion() {
		moved = PieceFromType(us, PieceTypePawn)
	}
	b.addPiece(from, moved)

	if m.IsCastle() {
		switch to {
		case 6:
			b.addPiece(7, b.removePiece(5))
		case 2:
			b.addPiece(0, b.removePiece(3))
		case 62:
			b.addPiece(63, b.removePiece(61))
		case 58:
			b.addPiece(56, b.removePiece(59))
		}
	}

	if st.Captured != NoPiece {
		capSq := to
		if m.IsEnPassant() {
			capSq = to - 8
			if us == Black {
				capSq = to + 8
			}
		}
		b.addPiece(capSq, st.Captured)
	}

	b.castlingRights = st.PrevCastling
	b.enPassantSquare = st.PrevEnPassant
}

// Apply makes the move and returns a closure that takes it back.
// Handy for scoped try-and-undo:
//
//	undo := b.Apply(m)
//	inCheck := b.InCheck(us)
//	undo()
func (b *Board) Apply(m Move) func() {
	b.MakeMove(m)
	return func() { b.UnmakeMove(m) }
}
