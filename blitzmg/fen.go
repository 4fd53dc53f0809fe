package blitzmg

import (
	"fmt"
	"strings"
)

// StartposFEN is the FEN rendering of the standard start position.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func charFromPiece(p Piece) byte {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	}
	return '?'
}

// String renders the rights in FEN order, "-" when none remain.
func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	var sb strings.Builder
	if cr&CastleWhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if cr&CastleWhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastleBlackKingside != 0 {
		sb.WriteByte('k')
	}
	if cr&CastleBlackQueenside != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ToFEN renders the position as a FEN string. The board keeps no
// halfmove clock, so that field is always 0; the fullmove number is
// derived from the session ply.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantSquare.String())
	fmt.Fprintf(&sb, " 0 %d", b.ply/2+1)
	return sb.String()
}

// String renders an ASCII diagram with white at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			c := byte('.')
			if p != NoPiece {
				c = charFromPiece(p)
			}
			sb.WriteByte(c)
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
