package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/toutdo"
)

func main() {
	count := flag.Int("count", 500, "Number of notes to add")
	workers := flag.Int("workers", 8, "Concurrent writers")
	keep := flag.Bool("keep", false, "Keep the benchmark data dir after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "toutdo_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	app, err := toutdo.New(ctx, toutdo.WithDataDir(benchDir), toutdo.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	events, err := app.Broker.Subscribe(ctx)
	if err != nil {
		panic(err)
	}
	received := make(chan int)
	go func() {
		n := 0
		for range events {
			n++
		}
		received <- n
	}()

	// 1. Concurrent adds: every one is a full-document atomic rewrite.
	fmt.Printf("Adding %d notes with %d writers...\n", *count, *workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i := 0; i < *count; i++ {
		g.Go(func() error {
			_, err := app.Store.Add(gctx, fmt.Sprintf("bench note %d", i))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	addTook := time.Since(start)
	fmt.Printf("Add took: %v (%v/op)\n", addTook, addTook/time.Duration(*count))

	// 2. Pin every tenth note and reverse the list.
	start = time.Now()
	notes := app.Store.List(ctx)
	ids := make([]uint32, 0, len(notes))
	for i := len(notes) - 1; i >= 0; i-- {
		ids = append(ids, notes[i].ID)
		if notes[i].ID%10 == 0 {
			if err := app.Store.TogglePin(ctx, notes[i].ID); err != nil {
				panic(err)
			}
		}
	}
	if err := app.Store.Reorder(ctx, ids); err != nil {
		panic(err)
	}
	fmt.Printf("Pin + reorder took: %v\n", time.Since(start))

	app.Close()
	fmt.Printf("Events delivered: %d (dropped %d)\n", <-received, app.Broker.Dropped())

	// 3. Cold start: load the document back.
	start = time.Now()
	reopened, err := toutdo.New(ctx, toutdo.WithDataDir(benchDir), toutdo.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	defer reopened.Close()
	loaded := reopened.Store.List(ctx)
	fmt.Printf("Reload took: %v\n", time.Since(start))

	if len(loaded) != *count {
		fmt.Printf("FAIL: expected %d notes, got %d\n", *count, len(loaded))
		os.Exit(1)
	}
	fmt.Printf("OK: %d notes, %d pinned first\n", len(loaded), countPinned(loaded))
}

func countPinned(notes []toutdo.Note) int {
	n := 0
	for _, note := range notes {
		if note.Pinned {
			n++
		}
	}
	return n
}
