package engine

import (
	"blitz-engine/blitzmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// SearchResult carries everything a fixed-depth search learned: the
// move to play, its score, the nodes visited (principal-variation
// reconstruction included) and the principal variation itself.
type SearchResult struct {
	Best  blitzmg.Move
	Score int32
	Nodes uint64
	PV    []blitzmg.Move
}

// Searcher runs fixed-depth negamax searches over a board. It is not
// safe for concurrent use; give each goroutine its own Searcher.
type Searcher struct {
	Evaluate Evaluator
	nodes    uint64
}

// NewSearcher returns a Searcher using the given evaluator, or the
// default material-and-position evaluator when eval is nil.
func NewSearcher(eval Evaluator) *Searcher {
	if eval == nil {
		eval = Evaluate
	}
	return &Searcher{Evaluate: eval}
}

// Nodes returns the node count of the most recent Search call.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// matedScore is the score of the side to move having been mated. It
// uses the session ply so that, seen from the root, quicker mates score
// better for the winner.
func matedScore(b *blitzmg.Board) int32 {
	return -Checkmate + int32(b.Ply())
}

// negamax is a fail-soft alpha-beta search. The score it returns is
// from the perspective of the side to move and may fall outside the
// alpha-beta window.
func (s *Searcher) negamax(b *blitzmg.Board, depth int, alpha, beta int32) int32 {
	if depth <= 0 {
		s.nodes++
		return s.Evaluate(b)
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		s.nodes++
		if b.InCheck(b.SideToMove()) {
			return matedScore(b)
		}
		return DrawScore
	}
	orderMoves(b, moves)

	best := -MaxScore
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.negamax(b, depth-1, -beta, -alpha)
		undo()
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// Search runs a fixed-depth search from the current position. The root
// scans every legal move with a full window and no cutoff, so the
// returned move is the true argmax over root moves. When the side to
// move has no legal moves the result carries NoMove and the terminal
// score: mate from the mated side's view, or a stalemate draw.
func (s *Searcher) Search(b *blitzmg.Board, depth int) SearchResult {
	s.nodes = 0
	if depth < 1 {
		s.nodes++
		return SearchResult{Best: blitzmg.NoMove, Score: s.Evaluate(b), Nodes: s.nodes}
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		s.nodes++
		score := DrawScore
		if b.InCheck(b.SideToMove()) {
			score = matedScore(b)
		}
		return SearchResult{Best: blitzmg.NoMove, Score: score, Nodes: s.nodes}
	}
	orderMoves(b, moves)

	best := moves[0]
	alpha := -MaxScore
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.negamax(b, depth-1, -MaxScore, -alpha)
		undo()
		if score > alpha {
			alpha = score
			best = m
		}
	}

	pv := s.principalVariation(b, best, depth)
	return SearchResult{Best: best, Score: alpha, Nodes: s.nodes, PV: pv}
}

// principalVariation rebuilds the line behind best by replaying it on a
// copy of the board and asking chooseBestMove at each successively
// shallower depth. The line is what repeated best-move queries would
// play; below the root it can differ from the exact path the search
// scored. Its nodes land in the running counter.
func (s *Searcher) principalVariation(b *blitzmg.Board, best blitzmg.Move, depth int) []blitzmg.Move {
	pv := make([]blitzmg.Move, 0, depth)
	pv = append(pv, best)
	c := b.Copy()
	c.MakeMove(best)
	for d := depth - 1; d >= 1; d-- {
		m := s.chooseBestMove(c, d)
		if m == blitzmg.NoMove {
			break
		}
		pv = append(pv, m)
		c.MakeMove(m)
	}
	return pv
}

// chooseBestMove scans every legal move with a full window and returns
// the one scoring highest, or NoMove when there is no legal move.
func (s *Searcher) chooseBestMove(b *blitzmg.Board, depth int) blitzmg.Move {
	moves := b.GenerateMoves()
	if len(moves) == 0 {
		return blitzmg.NoMove
	}
	orderMoves(b, moves)

	best := moves[0]
	alpha := -MaxScore
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.negamax(b, depth-1, -MaxScore, -alpha)
		undo()
		if score > alpha {
			alpha = score
			best = m
		}
	}
	return best
}
