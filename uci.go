package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"blitz-engine/blitzmg"
	"blitz-engine/config"
	"blitz-engine/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	args := os.Args[1:]
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}
	switch strings.ToLower(args[0]) {
	case "perft":
		runPerft(args[1:])
	case "divide":
		runDivide(args[1:])
	case "search":
		runSearch(args[1:], cfg.SearchDepth)
	case "play":
		playLoop(cfg.SearchDepth)
	case "help":
		usage(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", args[0])
		usage(os.Stderr)
		os.Exit(2)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func usage(w io.Writer) {
	io.WriteString(w, "usage: blitz <command>\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "  perft <depth>    - count leaf nodes of the move tree from the start position\n")
	io.WriteString(w, "  divide <depth>   - per-move perft breakdown from the start position\n")
	io.WriteString(w, "  search depth <n> - fixed-depth search of the start position\n")
	io.WriteString(w, "  play             - interactive game shell\n")
	io.WriteString(w, "  help             - this text\n")
}

func mustDepth(args []string) int {
	if len(args) < 1 {
		usage(os.Stderr)
		os.Exit(2)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(os.Stderr, "bad depth:", args[0])
		os.Exit(2)
	}
	return n
}

func runPerft(args []string) {
	depth := mustDepth(args)
	b := blitzmg.NewBoard()
	start := time.Now()
	nodes := b.Perft(depth)
	log.Debug().
		Int("depth", depth).
		Uint64("nodes", nodes).
		Dur("elapsed", time.Since(start)).
		Msg("perft finished")
	fmt.Printf("Perft(%d) = %d\n", depth, nodes)
}

func runDivide(args []string) {
	depth := mustDepth(args)
	b := blitzmg.NewBoard()
	counts, total := b.PerftDivide(depth)
	lines := lo.MapToSlice(counts, func(m blitzmg.Move, n uint64) string {
		return fmt.Sprintf("%s: %d", m, n)
	})
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Printf("Total: %d\n", total)
}

func runSearch(args []string, depth int) {
	if len(args) >= 2 && strings.ToLower(args[0]) == "depth" {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			depth = n
		}
	}
	b := blitzmg.NewBoard()
	s := engine.NewSearcher(nil)
	start := time.Now()
	res := s.Search(b, depth)
	log.Debug().
		Int("depth", depth).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	printSearchResult(res)
}

func printSearchResult(res engine.SearchResult) {
	fmt.Printf("info score cp %d nodes %d\n", res.Score, res.Nodes)
	if res.Best == blitzmg.NoMove {
		fmt.Println("bestmove 0000")
		return
	}
	pv := lo.Map(res.PV, func(m blitzmg.Move, _ int) string { return m.String() })
	fmt.Printf("bestmove %s pv %s\n", res.Best, strings.Join(pv, " "))
}

func sideName(c blitzmg.Color) string {
	if c == blitzmg.White {
		return "white"
	}
	return "black"
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func playHelp(w io.Writer) {
	io.WriteString(w, "play commands:\n")
	io.WriteString(w, "  <move>    - coordinate move like e2e4 or e7e8q\n")
	io.WriteString(w, "  go        - let the engine pick and play a move\n")
	io.WriteString(w, "  depth <n> - set the engine search depth\n")
	io.WriteString(w, "  undo      - take back the last move\n")
	io.WriteString(w, "  reset     - back to the start position\n")
	io.WriteString(w, "  help      - this text\n")
	io.WriteString(w, "  quit      - leave the shell\n")
}

// matchLegal resolves parsed coordinate input to the generated legal
// move with the same origin, destination and promotion. Only the
// generated move carries the right flags, so that is the one to apply.
func matchLegal(b *blitzmg.Board, m blitzmg.Move) (blitzmg.Move, bool) {
	for _, lm := range b.GenerateMoves() {
		if lm.From() == m.From() && lm.To() == m.To() &&
			lm.PromotionPiece() == m.PromotionPiece() {
			return lm, true
		}
	}
	return blitzmg.NoMove, false
}

// announceEnd prints the game result if the position is terminal.
func announceEnd(b *blitzmg.Board) {
	if b.InCheckmate() {
		fmt.Printf("checkmate, %s wins\n", sideName(b.SideToMove()^1))
	} else if b.InStalemate() {
		fmt.Println("stalemate")
	}
}

func playLoop(depth int) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/blitz_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	b := blitzmg.NewBoard()
	s := engine.NewSearcher(nil)
	played := make([]blitzmg.Move, 0, 64)

	fmt.Print(b)
	for {
		l.SetPrompt(fmt.Sprintf("%s to move | depth %d > ", sideName(b.SideToMove()), depth))
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		tokens := strings.Fields(strings.TrimSpace(line))
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return
		case "help":
			playHelp(l.Stderr())
		case "depth":
			n := 0
			if len(tokens) > 1 {
				n, _ = strconv.Atoi(tokens[1])
			}
			if n < 1 {
				n = 1
			}
			depth = n
		case "undo":
			if len(played) == 0 {
				fmt.Println("nothing to undo")
				continue
			}
			last := played[len(played)-1]
			played = played[:len(played)-1]
			b.UnmakeMove(last)
			fmt.Print(b)
		case "reset":
			b.Load(blitzmg.Startpos)
			played = played[:0]
			fmt.Print(b)
		case "go":
			start := time.Now()
			res := s.Search(b, depth)
			log.Debug().
				Int("depth", depth).
				Uint64("nodes", res.Nodes).
				Dur("elapsed", time.Since(start)).
				Str("position", b.ToFEN()).
				Msg("search finished")
			printSearchResult(res)
			if res.Best == blitzmg.NoMove {
				announceEnd(b)
				continue
			}
			b.MakeMove(res.Best)
			played = append(played, res.Best)
			fmt.Print(b)
			announceEnd(b)
		default:
			parsed, ok := blitzmg.ParseMove(tokens[0])
			if !ok {
				fmt.Println("unknown command:", tokens[0])
				continue
			}
			m, ok := matchLegal(b, parsed)
			if !ok {
				fmt.Println("illegal move:", tokens[0])
				continue
			}
			b.MakeMove(m)
			played = append(played, m)
			fmt.Print(b)
			announceEnd(b)
		}
	}
}
