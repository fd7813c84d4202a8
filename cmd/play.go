package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/legacyguard"
	"github.com/etnz/legacyguard/config"
	"github.com/etnz/legacyguard/renderer"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
)

type playCmd struct {
	configPath string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "play the game in the terminal" }
func (*playCmd) Usage() string {
	return `guardian play [-config <file>]

  Start an interactive game session in the terminal. Type 'help' for the
  available moves, 'bye' to exit.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "Path to the YAML configuration file")
}

const prompt = "guardian> "

const playHelp = `Moves:
  state                      show the current level state
  deposit <period> <rate>    level 1: make a fixed-term deposit
  buy [ticker] <quantity>    buy shares (ticker needed from level 3 on)
  sell [ticker] <quantity>   sell shares
  next                       wait one day
  advance                    move on to the next level
  ask <question>             ask the coach (level 3)
  reset                      start over
  bye                        exit
`

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return subcommands.ExitFailure
	}
	game, err := newGame(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting game:", err)
		return subcommands.ExitFailure
	}

	if err := c.run(ctx, game, os.Stdout, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "Game session failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run is the interactive REPL loop of a game session.
func (c *playCmd) run(ctx context.Context, game *legacyguard.Game, w io.Writer, r io.Reader) error {
	id := legacyguard.NewID()
	fmt.Fprintln(w, "Welcome to Legacy Guard. Type 'help' for moves, 'bye' to exit.")
	printState(w, game, id)

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // clean exit on Ctrl+D
			}
			return err
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		verb, args := fields[0], fields[1:]

		switch verb {
		case "bye", "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(w, playHelp)
		case "state":
			printState(w, game, id)
		case "next":
			report(w, game.Perform(id, legacyguard.NewAction("next_day", nil)))
			printState(w, game, id)
		case "deposit":
			report(w, game.Perform(id, depositAction(args)))
			printState(w, game, id)
		case "buy", "sell":
			report(w, game.Perform(id, tradeAction(verb, args)))
			printState(w, game, id)
		case "advance":
			report(w, game.AdvanceLevel(id))
			printState(w, game, id)
		case "reset":
			game.Reset(id)
			printState(w, game, id)
		case "ask":
			printMarkdown(game.Advice(ctx, id, strings.Join(args, " ")))
		default:
			fmt.Fprintf(w, "unknown move %q, type 'help'\n", verb)
		}
	}
}

// depositAction builds the level-1 deposit action; validation happens in the
// engine, the REPL only shapes the fields.
func depositAction(args []string) legacyguard.Action {
	fields := make(map[string]any)
	if len(args) > 0 {
		fields["period"] = args[0]
	}
	if len(args) > 1 {
		fields["rate"] = args[1]
	}
	return legacyguard.NewAction("deposit", fields)
}

// tradeAction builds a buy/sell action. One argument is a quantity when it
// is numeric (level 2) and a ticker otherwise (level 3, quantity 1).
func tradeAction(verb string, args []string) legacyguard.Action {
	fields := make(map[string]any)
	switch len(args) {
	case 1:
		if _, err := strconv.Atoi(args[0]); err == nil {
			fields["quantity"] = args[0]
		} else {
			fields["ticker"] = args[0]
		}
	default:
		if len(args) >= 2 {
			fields["ticker"] = args[0]
			fields["quantity"] = args[1]
		}
	}
	return legacyguard.NewAction(verb, fields)
}

func report(w io.Writer, result legacyguard.Result) {
	if result.Success {
		if result.Message != "" {
			fmt.Fprintln(w, result.Message)
		}
		return
	}
	fmt.Fprintln(w, "Move rejected:", result.Message)
}

func printState(w io.Writer, game *legacyguard.Game, id string) {
	state := game.State(id)
	printMarkdown(renderer.StateMarkdown(state))

	// The asset list reads better as a table than as markdown.
	if ps, ok := state.(legacyguard.PortfolioState); ok {
		table := tablewriter.NewWriter(w)
		table.Header("Ticker", "Name", "Sector", "Price", "Holding")
		for _, a := range ps.Assets {
			table.Append(a.Ticker, a.Name, a.Sector, "$"+a.Price.Fixed(), strconv.Itoa(a.Holding))
		}
		table.Render()
	}
}
