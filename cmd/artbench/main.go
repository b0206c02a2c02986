// Command artbench loads a newline-delimited word list, inserts every
// non-empty line into a Tree keyed by its text with its 0-based position
// in the list (blank lines skipped) as the value, then times how long a
// second pass of lookups over the same list takes.
package main

import (
	"flag"
	"log"
	"sync"
	"time"

	"github.com/adaptiveart/art"
	"github.com/adaptiveart/art/internal/wordlist"
)

func main() {
	input := flag.String("input", "", "path to a newline-delimited word list (required)")
	useMmap := flag.Bool("mmap", false, "memory-map the input file instead of reading it into a buffer")
	workers := flag.Int("workers", 1, "number of goroutines to split the insert pass across")
	flag.Parse()

	if *input == "" {
		log.Fatalf("artbench: -input is required")
	}
	if *workers < 1 {
		log.Fatalf("artbench: -workers must be at least 1")
	}

	lines, closer, err := wordlist.Load(*input, *useMmap)
	if err != nil {
		log.Fatalf("artbench: loading %s: %v", *input, err)
	}
	defer closer.Close()

	log.Printf("loaded %d keys from %s (mmap=%v)", len(lines), *input, *useMmap)

	tr := art.MakeTree()
	start := time.Now()
	insertRange(tr, lines, *workers)
	insertElapsed := time.Since(start)
	log.Printf("inserted %d keys across %d worker(s) in %s (%.0f keys/sec)",
		len(lines), *workers, insertElapsed, rate(len(lines), insertElapsed))

	start = time.Now()
	var hits int
	for i, line := range lines {
		v, ok := tr.Search(art.StringKey(string(line)))
		if !ok || v != int64(i) {
			log.Fatalf("artbench: lookup mismatch for %q: got (%d, %v), want (%d, true)", line, v, ok, i)
		}
		hits++
	}
	searchElapsed := time.Since(start)
	log.Printf("looked up %d keys in %s (%.0f keys/sec)", hits, searchElapsed, rate(hits, searchElapsed))
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// insertRange splits lines into workers disjoint chunks and inserts each
// chunk concurrently into tr, exercising the same OLC hand-over-hand
// locking path a production caller would hit under concurrent writers.
func insertRange(tr *art.Tree, lines [][]byte, workers int) {
	if workers == 1 || len(lines) == 0 {
		for i, line := range lines {
			tr.Insert(art.StringKey(string(line)), int64(i))
		}
		return
	}

	chunk := (len(lines) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(lines) {
			break
		}
		hi := lo + chunk
		if hi > len(lines) {
			hi = len(lines)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				tr.Insert(art.StringKey(string(lines[i])), int64(i))
			}
		}(lo, hi)
	}
	wg.Wait()
}
