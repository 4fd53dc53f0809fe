package blitzmg

// Move packs a half-move into 20 bits:
//
//	bits 0-5   origin square
//	bits 6-11  destination square
//	bits 12-15 promotion piece type (0 when not a promotion)
//	bits 16-19 flags
type Move uint32

// NoMove is the zero Move, used as a "no move available" sentinel.
const NoMove Move = 0

const (
	FlagCapture uint8 = 1 << iota
	FlagEnPassant
	FlagCastle
	FlagDoublePush
)

// NewMove builds a move from its parts. promo is PieceTypeNone for
// non-promotions.
func NewMove(from, to Square, promo PieceType, flags uint8) Move {
	return Move(uint32(from)&0x3F |
		(uint32(to)&0x3F)<<6 |
		(uint32(promo)&0xF)<<12 |
		(uint32(flags)&0xF)<<16)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// PromotionPiece returns the promotion piece type, or PieceTypeNone.
func (m Move) PromotionPiece() PieceType { return PieceType((m >> 12) & 0xF) }

// Flags returns the raw flag bits.
func (m Move) Flags() uint8 { return uint8((m >> 16) & 0xF) }

// IsCapture reports whether the move captures a piece (en passant included).
func (m Move) IsCapture() bool { return m.Flags()&FlagCapture != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags()&FlagEnPassant != 0 }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m.Flags()&FlagCastle != 0 }

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m.Flags()&FlagDoublePush != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != PieceTypeNone }

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
// Promotion suffixes are always lowercase.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.PromotionPiece() {
	case PieceTypeQueen:
		s += "q"
	case PieceTypeRook:
		s += "r"
	case PieceTypeBishop:
		s += "b"
	case PieceTypeKnight:
		s += "n"
	}
	return s
}

// ParseMove reads coordinate notation: two squares and an optional
// promotion letter (q, r, b or n, either case). Flags are not encoded
// in the notation, so the returned move carries none; match it against
// generated moves by origin, destination and promotion piece before
// applying it.
func ParseMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, false
	}
	from, ok := parseSquare(s[0], s[1])
	if !ok {
		return NoMove, false
	}
	to, ok := parseSquare(s[2], s[3])
	if !ok {
		return NoMove, false
	}
	promo := PieceTypeNone
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			promo = PieceTypeQueen
		case 'r', 'R':
			promo = PieceTypeRook
		case 'b', 'B':
			promo = PieceTypeBishop
		case 'n', 'N':
			promo = PieceTypeKnight
		default:
			return NoMove, false
		}
	}
	return NewMove(from, to, promo, 0), true
}

func parseSquare(fileCh, rankCh byte) (Square, bool) {
	if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
		return NoSquare, false
	}
	return SquareFrom(int(fileCh-'a'), int(rankCh-'1')), true
}
