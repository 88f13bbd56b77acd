package main

import (
	"context"
	"os"
	"strconv"

	"github.com/delaneyj/subjects/notify"
	"github.com/delaneyj/subjects/pkg/logging"
	"github.com/delaneyj/subjects/pkg/scenario"
	"github.com/delaneyj/subjects/pkg/trace"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const configKey = "config"

func main() {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "Walk a counter and a name subject through a script and print who was told what",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML scenario file, defaults are used when empty or missing",
			},
		}, logging.Flags()...),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// subscriber prints and records what it is told.
type subscriber struct {
	name string
	rec  *trace.Recorder
}

func (s *subscriber) onCounter(v int) {
	log.WithField("subscriber", s.name).Infof("counter is now %d", v)
	s.rec.Record(s.name, scenario.CounterSubject, v)
}

func (s *subscriber) onName(v string) {
	log.WithField("subscriber", s.name).Infof("name is now %s", v)
	s.rec.Record(s.name, scenario.NameSubject, v)
}

func run(ctx context.Context, cmd *cli.Command) error {
	if err := logging.Init(logging.FromCommand(cmd)); err != nil {
		return err
	}

	cfg, err := scenario.LoadOptional(cmd.String(configKey))
	if err != nil {
		return err
	}
	demo := cfg.Demo

	counter := notify.NewSubject(demo.Counter,
		notify.WithName(scenario.CounterSubject),
		notify.WithLogger(log.StandardLogger()),
	)
	defer counter.Close()
	name := notify.NewSubject(demo.Name,
		notify.WithName(scenario.NameSubject),
		notify.WithLogger(log.StandardLogger()),
	)
	defer name.Close()

	rec := &trace.Recorder{}
	one := &subscriber{name: "one", rec: rec}
	two := &subscriber{name: "two", rec: rec}

	var subs notify.Group
	defer func() {
		if err := subs.Close(); err != nil {
			log.WithError(err).Error("failed to close subscriptions")
		}
	}()

	obs, err := notify.NewObserver[int](counter, notify.NewMethodListener(one, (*subscriber).onCounter))
	if err != nil {
		return errors.Wrap(err, "subscriber one")
	}
	subs.Add(obs)

	both, err := notify.Subscribe2[int, string](
		counter, notify.NewMethodListener(two, (*subscriber).onCounter),
		name, notify.NewMethodListener(two, (*subscriber).onName),
	)
	if err != nil {
		return errors.Wrap(err, "subscriber two")
	}
	subs.Add(both)

	log.Infof("running %d steps", len(demo.Steps))
	for i, step := range demo.Steps {
		if err := apply(counter, name, step); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}

	rec.Render(os.Stdout)
	return nil
}

func apply(counter *notify.Subject[int], name *notify.Subject[string], step scenario.Step) error {
	switch step.Subject {
	case scenario.CounterSubject:
		if step.Op == scenario.OpIncrement {
			return counter.Update(func(v int) int { return v + 1 })
		}
		v, err := strconv.Atoi(step.Value)
		if err != nil {
			return errors.Wrapf(scenario.ErrInvalid, "counter value %q", step.Value)
		}
		return counter.SetValue(v)
	case scenario.NameSubject:
		return name.SetValue(step.Value)
	}
	return errors.Wrapf(scenario.ErrInvalid, "unknown subject %q", step.Subject)
}
