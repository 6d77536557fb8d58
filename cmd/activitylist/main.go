package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/activitylist/activitylist/internal/logging"
)

func main() {
	r := NewRunner(RunnerOpts{Logger: logging.New(nil, "warn")})

	if err := newApp(r).Run(context.Background(), os.Args); err != nil {
		r.logger.Fatal("application error", "err", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "activitylist",
		Usage: "Browse and fill activity task lists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Before:   r.Before,
		After:    r.After,
		Action:   r.Home,
		Commands: r.register(),
	}
}
