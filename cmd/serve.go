package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/legacyguard/config"
	"github.com/etnz/legacyguard/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	configPath string
	addr       string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the game API over HTTP" }
func (*serveCmd) Usage() string {
	return `guardian serve [-config <file>] [-addr <addr>]

  Load the market data and serve the game API. The browser front end and
  Prometheus scrape this server.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to the YAML configuration file")
	f.StringVar(&c.addr, "addr", "", "Listen address, overrides the configuration")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return subcommands.ExitFailure
	}
	if c.addr != "" {
		cfg.Server.Addr = c.addr
	}

	game, err := newGame(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting game:", err)
		return subcommands.ExitFailure
	}

	if err := server.New(game).ListenAndServe(cfg.Server.Addr); err != nil {
		fmt.Fprintln(os.Stderr, "Server failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
