package main

import (
	"fmt"
	"testing"

	"blitz-engine/blitzmg"
	"blitz-engine/engine"
)

func mustParse(t *testing.T, s string) blitzmg.Move {
	t.Helper()
	m, ok := blitzmg.ParseMove(s)
	if !ok {
		t.Fatalf("parse %q failed", s)
	}
	return m
}

func TestMatchLegalResolvesFlags(t *testing.T) {
	b := blitzmg.NewBoard()

	m, ok := matchLegal(b, mustParse(t, "e2e4"))
	if !ok {
		t.Fatal("e2e4 not matched against the legal moves")
	}
	if !m.IsDoublePush() {
		t.Fatal("matched move lost the double push flag")
	}

	if _, ok := matchLegal(b, mustParse(t, "e2e5")); ok {
		t.Fatal("illegal move e2e5 matched")
	}
}

func TestMatchLegalCastle(t *testing.T) {
	b := blitzmg.NewBoard()
	b.Clear()
	b.SetPiece(4, blitzmg.WhiteKing)
	b.SetPiece(7, blitzmg.WhiteRook)
	b.SetPiece(60, blitzmg.BlackKing)
	b.SetCastlingRights(blitzmg.CastleWhiteKingside)

	m, ok := matchLegal(b, mustParse(t, "e1g1"))
	if !ok || !m.IsCastle() {
		t.Fatalf("e1g1 should resolve to the castle move, got ok=%v castle=%v", ok, m.IsCastle())
	}
}

func TestMatchLegalPromotion(t *testing.T) {
	b := blitzmg.NewBoard()
	b.Clear()
	b.SetPiece(48, blitzmg.WhitePawn)
	b.SetPiece(4, blitzmg.WhiteKing)
	b.SetPiece(60, blitzmg.BlackKing)

	m, ok := matchLegal(b, mustParse(t, "a7a8n"))
	if !ok || m.PromotionPiece() != blitzmg.PieceTypeKnight {
		t.Fatalf("a7a8n should resolve to the knight promotion, got ok=%v promo=%v", ok, m.PromotionPiece())
	}

	if _, ok := matchLegal(b, mustParse(t, "a7a8")); ok {
		t.Fatal("bare a7a8 matched a promotion move")
	}
}

func TestSideName(t *testing.T) {
	if sideName(blitzmg.White) != "white" {
		t.Fatalf("white name: %q", sideName(blitzmg.White))
	}
	if sideName(blitzmg.Black) != "black" {
		t.Fatalf("black name: %q", sideName(blitzmg.Black))
	}
}

func BenchmarkMain(b *testing.B) {
	board := blitzmg.NewBoard() // the game board
	res := engine.NewSearcher(nil).Search(board, 4)
	fmt.Println("bestmove ", res.Best)
}
