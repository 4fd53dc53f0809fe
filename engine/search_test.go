package engine

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"blitz-engine/blitzmg"
)

func TestSearchFindsMateInOne(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	playLine(t, b, "f2f3 e7e5 g2g4")

	res := NewSearcher(nil).Search(b, 2)
	is.Equal(res.Best.String(), "d8h4")     // the fool's mate queen dive
	is.Equal(res.Score, Checkmate-int32(4)) // mate lands on ply 4
	is.Equal(len(res.PV), 1)
	is.Equal(res.PV[0], res.Best)

	// Extra depth must not talk the search into a slower mate; a mate
	// two plies later would only score Checkmate-6.
	deeper := NewSearcher(nil).Search(b, 3)
	is.Equal(deeper.Best.String(), "d8h4")
	is.Equal(deeper.Score, Checkmate-int32(4))
}

func TestSearchMatedRoot(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	playLine(t, b, "f2f3 e7e5 g2g4 d8h4")

	res := NewSearcher(nil).Search(b, 3)
	is.Equal(res.Best, blitzmg.NoMove)       // no legal reply
	is.Equal(res.Score, -Checkmate+int32(4)) // mated at ply 4
	is.Equal(res.Nodes, uint64(1))
	is.Equal(len(res.PV), 0)
}

func TestSearchStalematedRoot(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	b.Clear()
	b.SetPiece(63, blitzmg.BlackKing)  // h8
	b.SetPiece(53, blitzmg.WhiteKing)  // f7
	b.SetPiece(46, blitzmg.WhiteQueen) // g6
	b.SetSideToMove(blitzmg.Black)

	res := NewSearcher(nil).Search(b, 4)
	is.Equal(res.Best, blitzmg.NoMove)
	is.Equal(res.Score, DrawScore)
	is.Equal(res.Nodes, uint64(1))
}

func TestSearchDepthZeroEvaluates(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()

	res := NewSearcher(nil).Search(b, 0)
	is.Equal(res.Best, blitzmg.NoMove)
	is.Equal(res.Score, Evaluate(b))
	is.Equal(res.Nodes, uint64(1))
	is.Equal(len(res.PV), 0)
}

func TestSearchUsesInjectedEvaluator(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()

	s := NewSearcher(func(*blitzmg.Board) int32 { return 42 })
	res := s.Search(b, 1)
	is.Equal(res.Score, int32(-42)) // every leaf is scored for the opponent
	is.Equal(res.Nodes, uint64(20)) // one leaf per root move
	is.True(res.Best != blitzmg.NoMove)
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	playLine(t, b, "e2e4 d7d5")

	res := NewSearcher(nil).Search(b, 1)
	is.Equal(res.Best.String(), "e4d5")
	is.Equal(res.Score, int32(104))
}

func TestSearchNodesGrowWithDepth(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()
	s := NewSearcher(nil)

	n1 := s.Search(b, 1).Nodes
	n2 := s.Search(b, 2).Nodes
	n3 := s.Search(b, 3).Nodes
	is.True(n1 < n2)
	is.True(n2 < n3)
	is.Equal(s.Nodes(), n3) // the counter reflects the latest search
}

func TestSearchPVIsPlayable(t *testing.T) {
	is := is.New(t)
	b := blitzmg.NewBoard()

	res := NewSearcher(nil).Search(b, 3)
	is.Equal(len(res.PV), 3)
	is.Equal(res.PV[0], res.Best)

	c := b.Copy()
	for _, m := range res.PV {
		legal := false
		for _, lm := range c.GenerateMoves() {
			if lm == m {
				legal = true
				break
			}
		}
		is.True(legal) // every pv move is legal where it is played
		c.MakeMove(m)
	}

	// The search and the pv walk must leave the root untouched.
	is.Equal(b.ToFEN(), blitzmg.StartposFEN)
	is.Equal(b.Ply(), 0)
}

func findMove(t *testing.T, b *blitzmg.Board, tok string) blitzmg.Move {
	t.Helper()
	want, ok := blitzmg.ParseMove(tok)
	if !ok {
		t.Fatalf("bad move token %q", tok)
	}
	for _, m := range b.GenerateMoves() {
		if m.From() == want.From() && m.To() == want.To() && m.PromotionPiece() == want.PromotionPiece() {
			return m
		}
	}
	t.Fatalf("no legal move %s", tok)
	return blitzmg.NoMove
}

func playLine(t *testing.T, b *blitzmg.Board, line string) {
	t.Helper()
	for _, tok := range strings.Fields(line) {
		b.MakeMove(findMove(t, b, tok))
	}
}
