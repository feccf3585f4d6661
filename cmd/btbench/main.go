/*
Command btbench times insertion and deletion for B-trees of several orders.

	btbench [-orders 10,50,100,500] [-quick] [-trace level] report.txt

The report lists the key counts on its first line, followed by a block per
order with the average nanoseconds per insertion and per deletion.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/btree/bench"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	orders = flag.String("orders", "10,50,100,500", "comma separated list of tree orders")
	quick  = flag.Bool("quick", false, "time small key counts only")
	seed   = flag.Int64("seed", time.Now().UnixNano(), "seed for random keys")
	level  = flag.String("trace", "error", "trace level: debug, info or error")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] report-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))
	if err := run(flag.Arg(0)); err != nil {
		gtrace.CoreTracer.Errorf("btbench: %v", err)
		os.Exit(1)
	}
}

func run(filename string) error {
	ords, err := parseOrders(*orders)
	if err != nil {
		return err
	}
	counts, reps := bench.DefaultCounts, bench.DefaultReps
	if *quick {
		counts, reps = []int{1000, 5000, 10000}, []int{3, 2, 1}
	}
	suite, err := bench.NewSuite(counts, reps, *seed)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	progress, ok := suite.Subscribe(ctx)
	if !ok {
		return fmt.Errorf("cannot subscribe to progress messages")
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for m := range progress {
			p := m.(bench.Progress)
			fmt.Printf("%s: %s\n", p.Name, p)
		}
	}()
	var results []bench.Result
	for _, order := range ords {
		res, err := suite.Run(fmt.Sprintf("M = %d", order), order)
		if err != nil {
			suite.Close()
			<-done
			return err
		}
		results = append(results, res)
	}
	suite.Close()
	<-done
	//
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := bench.WriteReport(f, counts, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseOrders(s string) ([]int, error) {
	var ords []int
	for _, field := range strings.Split(s, ",") {
		o, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", field, err)
		}
		ords = append(ords, o)
	}
	return ords, nil
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
