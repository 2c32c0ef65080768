// Package placer provides a deterministic, capacity-bounded request-to-server
// assignment engine based on hash placement with rehash-on-collision.
//
// Given a fixed pool of server slots, each with a maximum capacity, and an
// ordered batch of named requests, the Engine assigns each request to exactly
// one slot by hashing its identity. When the chosen slot is full the identity
// is perturbed ("<id>_retry<k>") and hashed again, up to a retry ceiling.
// A request that exhausts its attempts is reported as FAILED, in-band.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/placer"
//
//	cfg := placer.DefaultConfig()
//	eng, err := placer.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.Run(ctx, "horizontal")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("accepted %d/%d with %d retries\n",
//	    result.Accepted, result.TotalRequests, result.Retries)
//
// # Scaling Modes
//
// The choice passed to Run selects the pool shape:
//
//	horizontal  6 servers x capacity 2
//	vertical    4 servers x capacity 3 (also used for any unrecognized choice)
//
// Both shapes have the same total capacity of 12, so the modes differ only in
// how the capacity is spread. Shapes are configurable through Config.Pools.
//
// # Determinism
//
// Keys are hashed with seeded XXH3, so placements are reproducible across
// processes for a given Config.HashSeed. Every Run builds a fresh pool; runs
// never share slot state and may execute concurrently.
//
// # Advanced Usage
//
// Custom request batch, hasher and observability:
//
//	import (
//	    "github.com/arloliu/placer"
//	    "github.com/arloliu/placer/source"
//	)
//
//	eng, err := placer.NewEngine(&cfg,
//	    placer.WithRequestSource(source.NewStatic("order-1", "order-2")),
//	    placer.WithLogger(myLogger),
//	    placer.WithMetrics(myCollector),
//	)
//
// The building blocks are also usable directly: pool.Build constructs a pool,
// placement.NewRehash resolves single requests, and batch.New runs a resolver
// over a batch.
package placer
