// Command binpack3d reads a bin size and a list of box dimensions and
// prints the packing it finds: one bin assignment and origin per box, the
// bin count, and whether that count is a proven optimum.
//
// Input is a simple whitespace-separated text format, read from stdin or a
// file given as the sole positional argument:
//
//	W H D        (bin dimensions, one line)
//	w h d        (one line per box)
//	...
//
// Usage:
//
//	binpack3d [-nodes N] [-time DURATION] [file]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/binpack3d"
	"github.com/katalvlaran/binpack3d/box"
)

func main() {
	nodeLimit := flag.Int("nodes", 0, "cap the number of search nodes (0 = unlimited)")
	iterLimit := flag.Int("iters", 0, "cap CP-engine iterations, in units of 1000 (0 = unlimited; CP iterations are not counted, so this cap never trips)")
	timeLimit := flag.Duration("time", 0, "cap wall-clock search time (0 = unlimited)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("binpack3d: %v", err)
		}
		defer f.Close()
		r = f
	}

	bin, dims, err := readInstance(r)
	if err != nil {
		log.Fatalf("binpack3d: %v", err)
	}

	opts := binpack3d.DefaultOptions()
	opts.NodeLimit = *nodeLimit
	opts.IterLimit = *iterLimit
	opts.TimeLimit = *timeLimit
	opts.Trace = os.Stderr

	start := time.Now()
	result, err := binpack3d.Solve(bin, dims, opts)
	if err != nil {
		log.Fatalf("binpack3d: %v", err)
	}

	printResult(os.Stdout, result, time.Since(start))
}

func readInstance(r io.Reader) (box.Dims, []box.Dims, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var bin box.Dims
	if !sc.Scan() {
		return bin, nil, fmt.Errorf("missing bin dimensions line")
	}
	if _, err := fmt.Sscanf(sc.Text(), "%d %d %d", &bin.W, &bin.H, &bin.D); err != nil {
		return bin, nil, fmt.Errorf("parsing bin dimensions: %w", err)
	}

	var dims []box.Dims
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var d box.Dims
		if _, err := fmt.Sscanf(line, "%d %d %d", &d.W, &d.H, &d.D); err != nil {
			return bin, nil, fmt.Errorf("parsing box dimensions %q: %w", line, err)
		}
		dims = append(dims, d)
	}
	if err := sc.Err(); err != nil {
		return bin, nil, err
	}
	return bin, dims, nil
}

func printResult(w io.Writer, result binpack3d.Result, elapsed time.Duration) {
	fmt.Fprintf(w, "bins: %d (lower bound %d, proven %t)\n", result.Bins, result.LowerBound, result.Proven)
	fmt.Fprintf(w, "nodes: %d  iters: %d  time: %s\n", result.NodesUsed, result.IterUsed, elapsed)
	for _, b := range result.Boxes {
		fmt.Fprintf(w, "box %d: bin %d at (%d,%d,%d)\n", b.No, b.Bin, b.Pos.X, b.Pos.Y, b.Pos.Z)
	}
}
