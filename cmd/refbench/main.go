// Command refbench measures the overhead of the refkit primitives against
// each other: plain vs atomic handle bookkeeping, checked vs unchecked
// cell access, arena vs heap slots. It exists for eyeballing relative
// costs on the machine at hand, not for publication-grade numbers.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/joshuapare/refkit/arena"
	"github.com/joshuapare/refkit/cell"
	"github.com/joshuapare/refkit/rc"
)

func main() {
	app := &cli.App{
		Name:  "refbench",
		Usage: "Measure refkit primitive overhead",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "iterations",
				Value: 1_000_000,
				Usage: "operations per measurement",
			},
		},
		Commands: []*cli.Command{{
			Name:  "handles",
			Usage: "Compare single-goroutine vs atomic clone/drop",
			Action: func(ctx *cli.Context) error {
				return benchHandles(ctx.Int("iterations"))
			},
		}, {
			Name:  "cell",
			Usage: "Compare checked vs unchecked cell access",
			Action: func(ctx *cli.Context) error {
				return benchCell(ctx.Int("iterations"))
			},
		}, {
			Name:  "arena",
			Usage: "Measure arena slot alloc/free",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "slot-size",
					Value: 256,
					Usage: "slot size in bytes",
				},
			},
			Action: func(ctx *cli.Context) error {
				return benchArena(ctx.Int("iterations"), ctx.Int("slot-size"))
			},
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchHandles(n int) error {
	report("rc clone+drop", n, func() {
		h := rc.New(42)
		for i := 0; i < n; i++ {
			c := h.Clone()
			c.Drop()
		}
		h.Drop()
	})
	report("arc clone+drop", n, func() {
		h := rc.NewAtomic(42)
		for i := 0; i < n; i++ {
			c := h.Clone()
			c.Drop()
		}
		h.Drop()
	})
	return nil
}

func benchCell(n int) error {
	report("cell borrow+release", n, func() {
		c := cell.New(42)
		for i := 0; i < n; i++ {
			g := c.Borrow()
			g.Release()
		}
	})
	report("cell borrowmut+release", n, func() {
		c := cell.New(42)
		for i := 0; i < n; i++ {
			g := c.BorrowMut()
			g.Release()
		}
	})
	report("unchecked get", n, func() {
		u := cell.NewUnchecked(42)
		sink := 0
		for i := 0; i < n; i++ {
			sink += *u.Get()
		}
		_ = sink
	})
	return nil
}

func benchArena(n, slotSize int) error {
	a, err := arena.New(slotSize, 1024)
	if err != nil {
		return err
	}
	defer a.Close()

	report("arena alloc+free", n, func() {
		for i := 0; i < n; i++ {
			ref, _, err := a.Alloc()
			if err != nil {
				log.Fatal(err)
			}
			if err := a.Free(ref); err != nil {
				log.Fatal(err)
			}
		}
	})
	return nil
}

// report times fn and logs per-operation cost.
func report(name string, n int, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	slog.Info("measured",
		"name", name,
		"ops", n,
		"total", elapsed.Round(time.Millisecond).String(),
		"per_op", fmt.Sprintf("%.1fns", float64(elapsed.Nanoseconds())/float64(n)),
	)
}
