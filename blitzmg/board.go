package blitzmg

// Piece identifies a colored piece on the board.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces carry bit 8, so piece&7 yields the type in [1..6]
	// and piece&8 != 0 means Black.
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless piece kind used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side into a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// CastlingRights is a bitmask of the four independent castling flags.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
)

// CastleAll is every right held, the start position state.
const CastleAll = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside

// Startpos is the only layout Load accepts.
const Startpos = "startpos"

// Bitboards is a read-only view of one side's piece bitboards.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Board holds the full position state plus the undo history of the
// moves applied to it this session.
type Board struct {
	// Piece bitboards per type, indexed by color (White=0, Black=1).
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	// Per-side occupancy. The combined board is the union of the two.
	occupancy [2]uint64

	// Mailbox mirror of the bitboards for O(1) piece lookups.
	pieces [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square // skipped square of the last double push, or NoSquare

	// Half-moves applied this session. len(history) == ply always holds.
	ply     int
	history []MoveState
}

// NewBoard returns a board loaded with the standard start position.
func NewBoard() *Board {
	b := &Board{}
	b.Load(Startpos)
	return b
}

// Load resets the board to a named layout. Only Startpos is supported;
// anything else reports false and leaves the position untouched.
func (b *Board) Load(name string) bool {
	if name != Startpos {
		return false
	}
	b.Clear()

	backRank := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for file := 0; file < 8; file++ {
		b.addPiece(SquareFrom(file, 0), PieceFromType(White, backRank[file]))
		b.addPiece(SquareFrom(file, 1), WhitePawn)
		b.addPiece(SquareFrom(file, 6), BlackPawn)
		b.addPiece(SquareFrom(file, 7), PieceFromType(Black, backRank[file]))
	}
	b.castlingRights = CastleAll
	return true
}

// Clear empties the board: no pieces, White to move, no rights, no en
// passant target, ply zero, empty history.
func (b *Board) Clear() {
	*b = Board{enPassantSquare: NoSquare}
}

// Copy returns a deep copy. The history is cloned so the copy's undo
// stack is independent of the original's.
func (b *Board) Copy() *Board {
	c := *b
	c.history = append([]MoveState(nil), b.history...)
	return &c
}

// ==========================
// Accessors
// ==========================

// SideToMove returns the side to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// EnPassantSquare returns the en-passant target, NoSquare when absent.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// Ply returns the number of half-moves applied this session.
func (b *Board) Ply() int { return b.ply }

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// AllOccupancy returns the bitboard of every occupied square.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard of one side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// Bitboards returns a copy of one side's piece bitboards.
func (b *Board) Bitboards(color Color) Bitboards {
	idx := int(color)
	return Bitboards{
		Pawns:   b.pawns[idx],
		Knights: b.knights[idx],
		Bishops: b.bishops[idx],
		Rooks:   b.rooks[idx],
		Queens:  b.queens[idx],
		Kings:   b.kings[idx],
		All:     b.occupancy[idx],
	}
}

// ==========================
// Position editing
// ==========================
//
// The setters below keep bitboards, mailbox and occupancy in sync but do
// not touch ply or history. They are for setting up positions (tools,
// tests), not for playing moves; use MakeMove for that.

// SetPiece puts a piece on a square, replacing whatever was there.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare empties the given square.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

// SetSideToMove updates the side to play.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// SetCastlingRights replaces the castling rights mask.
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr }

// SetEnPassantSquare sets the en-passant target (NoSquare to clear).
func (b *Board) SetEnPassantSquare(sq Square) { b.enPassantSquare = sq }

// ==========================
// Status helpers
// ==========================

// HasLegalMoves reports whether the side to move has a legal move.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateMovesInto(make([]Move, 0, 64))) > 0
}

// InCheckmate reports whether the side to move has been mated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is out of moves while
// not in check.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// ==========================
// Internal piece placement
// ==========================

// colorOf extracts the owning side; NoPiece comes back White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// addPiece places a piece on an empty square, updating bitboards and occupancy.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	ci := int(colorOf(p))
	b.pieces[int(sq)] = p
	b.occupancy[ci] |= bb(sq)
	switch p.Type() {
	case PieceTypePawn:
		b.pawns[ci] |= bb(sq)
	case PieceTypeKnight:
		b.knights[ci] |= bb(sq)
	case PieceTypeBishop:
		b.bishops[ci] |= bb(sq)
	case PieceTypeRook:
		b.rooks[ci] |= bb(sq)
	case PieceTypeQueen:
		b.queens[ci] |= bb(sq)
	case PieceTypeKing:
		b.kings[ci] |= bb(sq)
	}
}

// removePiece clears a square and returns the piece that was on it.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	ci := int(colorOf(p))
	mask := ^bb(sq)
	b.pieces[int(sq)] = NoPiece
	b.occupancy[ci] &= mask
	switch p.Type() {
	case PieceTypePawn:
		b.pawns[ci] &= mask
	case PieceTypeKnight:
		b.knights[ci] &= mask
	case PieceTypeBishop:
		b.bishops[ci] &= mask
	case PieceTypeRook:
		b.rooks[ci] &= mask
	case PieceTypeQueen:
		b.queens[ci] &= mask
	case PieceTypeKing:
		b.kings[ci] &= mask
	}
	return p
}

// Validate checks internal consistency: mailbox against bitboards and
// occupancy, and the history length against the ply counter.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var pawns, knights, bishops, rooks, queens, kings [2]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		ci := int(colorOf(p))
		bit := uint64(1) << uint(sq)
		occ[ci] |= bit
		switch p.Type() {
		case PieceTypePawn:
			pawns[ci] |= bit
		case PieceTypeKnight:
			knights[ci] |= bit
		case PieceTypeBishop:
			bishops[ci] |= bit
		case PieceTypeRook:
			rooks[ci] |= bit
		case PieceTypeQueen:
			queens[ci] |= bit
		case PieceTypeKing:
			kings[ci] |= bit
		}
	}
	if occ != b.occupancy {
		return false
	}
	if pawns != b.pawns || knights != b.knights || bishops != b.bishops ||
		rooks != b.rooks || queens != b.queens || kings != b.kings {
		return false
	}
	return len(b.history) == b.ply
}
