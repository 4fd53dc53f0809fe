package bench

import (
	"strings"
	"testing"

	"blitz-engine/blitzmg"
)

// boardAfter plays a space-separated coordinate move line from the
// start position, resolving each token against the legal move list.
func boardAfter(b *testing.B, line string) *blitzmg.Board {
	b.Helper()
	board := blitzmg.NewBoard()
	for _, tok := range strings.Fields(line) {
		parsed, ok := blitzmg.ParseMove(tok)
		if !ok {
			b.Fatalf("bad move token %q", tok)
		}
		applied := false
		for _, m := range board.GenerateMoves() {
			if m.From() == parsed.From() && m.To() == parsed.To() &&
				m.PromotionPiece() == parsed.PromotionPiece() {
				board.MakeMove(m)
				applied = true
				break
			}
		}
		if !applied {
			b.Fatalf("illegal move %q", tok)
		}
	}
	return board
}

func benchPerft(b *testing.B, line string, depth int) {
	board := boardAfter(b, line)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, "", 4)
}

func BenchmarkPerft_Italian_D3(b *testing.B) {
	benchPerft(b, "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 c2c3 g8f6 d2d3 d7d6", 3)
}

func BenchmarkPerft_Najdorf_D3(b *testing.B) {
	benchPerft(b, "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6", 3)
}
