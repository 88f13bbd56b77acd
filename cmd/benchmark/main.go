package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/subjects/notify"
	"github.com/delaneyj/subjects/pkg/logging"
	"github.com/delaneyj/subjects/pkg/scenario"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	profileKey = "cpuprofile"
	warmupKey  = "warmup"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time notification passes over wide and deep observer graphs",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML scenario file, defaults are used when empty or missing",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.BoolFlag{
				Name:  warmupKey,
				Usage: "Run every case once without printing first",
				Value: true,
			},
		}, logging.Flags()...),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if err := logging.Init(logging.FromCommand(cmd)); err != nil {
		return err
	}

	cfg, err := scenario.LoadOptional(cmd.String(configKey))
	if err != nil {
		return err
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "failed to start profile")
		}
		defer pprof.StopCPUProfile()
	}

	if cmd.Bool(warmupKey) {
		log.Info("warming up")
		if err := benchmarkNotify(cfg.Benchmark, false); err != nil {
			return err
		}
	}
	return benchmarkNotify(cfg.Benchmark, true)
}

// graph is a source subject, a chain of depth subjects behind it and width
// observers on the last subject of the chain.
type graph struct {
	src        *notify.Subject[int]
	subjects   []*notify.Subject[int]
	deliveries int
}

func buildGraph(width, depth int) (*graph, error) {
	g := &graph{src: notify.NewSubject(1)}
	g.subjects = append(g.subjects, g.src)

	last := g.src
	for j := 0; j < depth; j++ {
		next := notify.NewSubject(0)
		if _, err := notify.NewObserver[int](last, notify.CallbackFunc[int](func(v int) error {
			g.deliveries++
			return next.SetValue(v + 1)
		})); err != nil {
			return nil, err
		}
		g.subjects = append(g.subjects, next)
		last = next
	}

	for i := 0; i < width; i++ {
		if _, err := notify.NewObserver[int](last, notify.ListenerFunc[int](func(int) {
			g.deliveries++
		})); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *graph) Close() {
	for _, s := range g.subjects {
		s.Close()
	}
}

func benchmarkNotify(b scenario.Benchmark, shouldRender bool) error {
	tbl := table.NewWriter()
	tbl.SetTitle("Subjects")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "deliveries/s"})

	for _, w := range b.Widths {
		for _, h := range b.Depths {
			tach := tachymeter.New(&tachymeter.Config{Size: b.Iterations})

			g, err := buildGraph(w, h)
			if err != nil {
				return errors.Wrapf(err, "build %d * %d", w, h)
			}

			var total time.Duration
			for i := 0; i < b.Iterations; i++ {
				start := time.Now()
				if err := g.src.SetValue(g.src.Value() + 1); err != nil {
					g.Close()
					return errors.Wrapf(err, "propagate %d * %d", w, h)
				}
				elapsed := time.Since(start)
				total += elapsed
				tach.AddTime(elapsed)
			}

			if want := b.Iterations * (w + h); g.deliveries != want {
				g.Close()
				return fmt.Errorf("propagate %d * %d: %d deliveries, expected %d", w, h, g.deliveries, want)
			}
			g.Close()

			rate := "-"
			if total > 0 {
				rate = humanize.Comma(int64(float64(g.deliveries) / total.Seconds()))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					rate,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}
