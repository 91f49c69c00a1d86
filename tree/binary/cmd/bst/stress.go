package main

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/urfave/cli"
	"go.lepak.sg/ordtree/tree/binary"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var stressCommand = cli.Command{
	Name:  "stress",
	Usage: "run random inserts, deletes and rotations, validating the tree after each one",
	Flags: []cli.Flag{
		cli.Int64Flag{
			Name:  "seed, s",
			Usage: "`SEED` for the round seeds (default current unix time in ns)",
		},
		cli.IntFlag{
			Name:  "rounds, r",
			Value: 100,
			Usage: "number of independent trees",
		},
		cli.IntFlag{
			Name:  "ops, o",
			Value: 1000,
			Usage: "operations per round",
		},
		cli.IntFlag{
			Name:  "keys, k",
			Value: 256,
			Usage: "keys are drawn from [0, `KEYS`)",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: 4,
			Usage: "rounds running at the same time",
		},
	},
	Action: runStress,
}

type stressConfig struct {
	rounds, ops, keys, workers int
	seed                       int64
}

type stressStats struct {
	inserts, deletes, rotations, failedRotations int64
}

func runStress(c *cli.Context) error {
	cfg := stressConfig{
		rounds:  c.Int("rounds"),
		ops:     c.Int("ops"),
		keys:    c.Int("keys"),
		workers: c.Int("workers"),
		seed:    c.Int64("seed"),
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.rounds < 1 || cfg.ops < 0 || cfg.keys < 1 || cfg.workers < 1 {
		return fmt.Errorf("invalid stress parameters: %+v", cfg)
	}

	start := time.Now()
	stats, err := stress(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer,
		"ok: seed %d, %d rounds of %d ops in %s\n"+
			"inserts: %d deletes: %d rotations: %d (%d impossible)\n",
		cfg.seed, cfg.rounds, cfg.ops, time.Since(start).Round(time.Millisecond),
		stats.inserts, stats.deletes, stats.rotations, stats.failedRotations)

	return nil
}

// stress runs cfg.rounds rounds on their own trees, at most cfg.workers
// at a time. The first failing round stops the others.
func stress(ctx context.Context, cfg stressConfig) (stressStats, error) {
	var stats stressStats
	seedrd := rand.New(rand.NewSource(cfg.seed))

	eg, ctx := errgroup.WithContext(ctx)
	sema := semaphore.NewWeighted(int64(cfg.workers))

	var acquireErr error
	for i := 0; i < cfg.rounds; i++ {
		if acquireErr = sema.Acquire(ctx, 1); acquireErr != nil {
			// if a round failed, eg.Wait has the better reason
			break
		}

		seed := seedrd.Int63()
		eg.Go(func() error {
			defer sema.Release(1)
			return stressRound(ctx, cfg, seed, &stats)
		})
	}

	err := eg.Wait()
	if err == nil {
		err = acquireErr
	}
	return stats, err
}

func stressRound(ctx context.Context, cfg stressConfig, seed int64, stats *stressStats) error {
	rd := rand.New(rand.NewSource(seed))
	tr := &binary.Tree[int]{}
	// sorted multiset of the keys that should be in tr
	var ref []int

	for op := 0; op < cfg.ops; op++ {
		if op%64 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}

		k := rd.Intn(cfg.keys)

		var what string
		switch rd.Intn(5) {
		case 0, 1:
			what = "insert"
			tr.Insert(k)
			ref = slices.Insert(ref, sort.SearchInts(ref, k), k)
			atomic.AddInt64(&stats.inserts, 1)
		case 2:
			what = "delete"
			tr.Delete(k)
			if i := sort.SearchInts(ref, k); i < len(ref) && ref[i] == k {
				ref = slices.Delete(ref, i, i+1)
			}
			atomic.AddInt64(&stats.deletes, 1)
		case 3, 4:
			var ok bool
			if rd.Intn(2) == 0 {
				what = "rotate left"
				ok = tr.RotateLeft(k)
			} else {
				what = "rotate right"
				ok = tr.RotateRight(k)
			}
			atomic.AddInt64(&stats.rotations, 1)
			if !ok {
				atomic.AddInt64(&stats.failedRotations, 1)
			}
		}

		if err := tr.Validate(); err != nil {
			return fmt.Errorf("seed %d op %d (%s %d): %w", seed, op, what, k, err)
		}
		if tr.Len() != len(ref) {
			return fmt.Errorf("seed %d op %d (%s %d): size %d, expected %d",
				seed, op, what, k, tr.Len(), len(ref))
		}
	}

	i := 0
	var mismatch error
	tr.InOrder(func(k int) bool {
		if k != ref[i] {
			mismatch = fmt.Errorf("seed %d: in-order key %d is %d, expected %d", seed, i, k, ref[i])
			return false
		}
		i++
		return true
	})

	return mismatch
}
