package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"xfchess-engine/chessmg"
	"xfchess-engine/engine"
)

func main() {
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	ttFlag := flag.Int("tt", engine.DefaultTTSizeMB, "transposition table size in MB")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log.SetPrefix("searchbench: ")
	log.SetFlags(0)

	if *depthFlag <= 0 || *depthFlag >= engine.MaxPly {
		log.Fatalf("depth must be in [1, %d), got %d", engine.MaxPly, *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := chessmg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	board, err := chessmg.ParseFEN(fen)
	if err != nil {
		log.Fatalf("ParseFEN: %v", err)
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	searcher := engine.NewSearcher(*ttFlag)
	var nodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		iterStart := time.Now()
		res := searcher.Search(board, nil, engine.Limits{Depth: *depthFlag})
		iterElapsed := time.Since(iterStart)
		nodes += res.Stats.Nodes + res.Stats.QNodes

		fmt.Printf("iteration %d: bestmove %v score %s time=%v\n",
			i+1, res.Move, engine.FormatScore(res.Score), iterElapsed)
		fmt.Printf("  %s\n", res.Stats)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n", totalElapsed, nodes, float64(nodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
