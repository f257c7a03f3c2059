package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/rawbytedev/sc/internal/scenario"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	for i, path := range args {
		if err := ctx.Err(); err != nil {
			return printError(stdio, err)
		}
		cfg, err := scenario.Load(path)
		if err != nil {
			return printError(stdio, err)
		}
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(stdio.Stdout)
			}
			fmt.Fprintf(stdio.Stdout, "== %s\n", path)
		}
		log := c.log.With().Str("scenario", path).Logger()
		log.Info().Int("slots", cfg.Slots).Int("steps", len(cfg.Steps)).Msg("running scenario")
		if err := scenario.Run(cfg, stdio.Stdout, log); err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}

func (c *Cmd) Check(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var failed error
	for _, path := range args {
		if err := ctx.Err(); err != nil {
			return printError(stdio, err)
		}
		cfg, err := scenario.Load(path)
		if err != nil {
			failed = printError(stdio, err)
			continue
		}
		fmt.Fprintf(stdio.Stdout, "%s: ok (%d slots, %d steps)\n", path, cfg.Slots, len(cfg.Steps))
	}
	return failed
}
