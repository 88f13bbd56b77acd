package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/subjects/cmd/codegen/templates"
	"github.com/delaneyj/subjects/pkg/logging"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const (
	countKey  = "count"
	outputKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate the multi-subject subscriptions of package notify",
		Flags: append([]cli.Flag{
			&cli.UintFlag{
				Name:  countKey,
				Usage: "Highest number of subjects per subscription",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: filepath.Join("notify", "subscriptions_gen.go"),
			},
		}, logging.Flags()...),
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	if err := logging.Init(logging.FromCommand(cmd)); err != nil {
		return err
	}

	start := time.Now()
	log.Info("codegen for subscriptions started")
	defer func() {
		log.Infof("codegen for subscriptions finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(countKey))
	if count < templates.MinCount {
		return fmt.Errorf("--%s must be at least %d, got %d", countKey, templates.MinCount, count)
	}
	out := cmd.String(outputKey)
	log.Debugf("count: %d, output: %s", count, out)

	contents, err := format.Source([]byte(templates.SubscriptionsGen(count)))
	if err != nil {
		return fmt.Errorf("generated source does not format: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}
	return nil
}
