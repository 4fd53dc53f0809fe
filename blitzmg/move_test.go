package blitzmg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Move
		ok    bool
	}{
		{"plain", "e2e4", NewMove(12, 28, PieceTypeNone, 0), true},
		{"corner to corner", "a1h8", NewMove(0, 63, PieceTypeNone, 0), true},
		{"queen promotion", "e7e8q", NewMove(52, 60, PieceTypeQueen, 0), true},
		{"uppercase promotion", "a2a1N", NewMove(8, 0, PieceTypeKnight, 0), true},
		{"rook promotion", "b7b8r", NewMove(49, 57, PieceTypeRook, 0), true},
		{"bishop promotion", "h2h1B", NewMove(15, 7, PieceTypeBishop, 0), true},
		{"too short", "e2e", NoMove, false},
		{"too long", "e2e4qq", NoMove, false},
		{"bad file", "i2i4", NoMove, false},
		{"bad rank", "e9e4", NoMove, false},
		{"bad promotion letter", "e7e8k", NoMove, false},
		{"empty", "", NoMove, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseMove(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "e2e4", NewMove(12, 28, PieceTypeNone, 0).String())
	require.Equal(t, "e7e8q", NewMove(52, 60, PieceTypeQueen, 0).String())
	require.Equal(t, "a2a1n", NewMove(8, 0, PieceTypeKnight, FlagCapture).String())
	require.Equal(t, "e1g1", NewMove(4, 6, PieceTypeNone, FlagCastle).String())
	require.Equal(t, "0000", NoMove.String())
}

func TestMoveAccessors(t *testing.T) {
	m := NewMove(12, 28, PieceTypeQueen, FlagCapture|FlagDoublePush)
	require.Equal(t, Square(12), m.From())
	require.Equal(t, Square(28), m.To())
	require.Equal(t, PieceTypeQueen, m.PromotionPiece())
	require.True(t, m.IsCapture())
	require.True(t, m.IsDoublePush())
	require.True(t, m.IsPromotion())
	require.False(t, m.IsCastle())
	require.False(t, m.IsEnPassant())

	castle := NewMove(60, 58, PieceTypeNone, FlagCastle)
	require.True(t, castle.IsCastle())
	require.False(t, castle.IsCapture())
	require.False(t, castle.IsPromotion())

	ep := NewMove(36, 43, PieceTypeNone, FlagCapture|FlagEnPassant)
	require.True(t, ep.IsEnPassant())
	require.True(t, ep.IsCapture())
	require.False(t, ep.IsPromotion())
}

func TestPieceEncoding(t *testing.T) {
	require.Equal(t, WhiteQueen, PieceFromType(White, PieceTypeQueen))
	require.Equal(t, BlackPawn, PieceFromType(Black, PieceTypePawn))
	require.Equal(t, NoPiece, PieceFromType(White, PieceTypeNone))

	require.Equal(t, PieceTypeQueen, BlackQueen.Type())
	require.Equal(t, PieceTypeKing, WhiteKing.Type())
	require.Equal(t, White, WhiteRook.Color())
	require.Equal(t, Black, BlackKnight.Color())
}
