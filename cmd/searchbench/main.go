package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"blitz-engine/blitzmg"
	"blitz-engine/engine"
)

// searchbench times fixed-depth searches of the start position. Each
// iteration gets a fresh board and searcher so the runs are comparable.

func startCPUProfile(path string) func() {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("cpuprofile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatalf("cpuprofile: %v", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("memprofile: %v", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatalf("memprofile: %v", err)
	}
}

func pvString(pv []blitzmg.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func main() {
	depth := flag.Int("depth", 5, "search depth in plies")
	repeat := flag.Int("repeat", 1, "searches to run")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile here")
	memProfile := flag.String("memprofile", "", "write a heap profile here")
	flag.Parse()

	if *depth < 1 {
		log.Fatalf("depth must be at least 1, got %d", *depth)
	}
	if *cpuProfile != "" {
		defer startCPUProfile(*cpuProfile)()
	}

	fmt.Printf("searchbench: depth=%d repeat=%d\n", *depth, *repeat)

	var nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		board := blitzmg.NewBoard()
		res := engine.NewSearcher(nil).Search(board, *depth)
		nodes += res.Nodes
		fmt.Printf("run %d: bestmove %s score %d nodes %d pv %s\n",
			i+1, res.Best, res.Score, res.Nodes, pvString(res.PV))
	}
	elapsed := time.Since(start)
	fmt.Printf("total: nodes=%d time=%v nps=%.0f\n",
		nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *memProfile != "" {
		writeHeapProfile(*memProfile)
	}
}
