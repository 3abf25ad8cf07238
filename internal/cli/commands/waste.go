package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
)

type wasteCmd struct{}

func (wasteCmd) Name() string        { return "waste" }
func (wasteCmd) Description() string { return "Summarize the waste log by outcome" }
func (wasteCmd) Usage() string       { return "waste" }

func (wasteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := parseFlags(flag.NewFlagSet("waste", flag.ContinueOnError), args); err != nil {
		return err
	}
	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	summary, err := svc.WasteSummary(ctx)
	if err != nil {
		return err
	}
	if len(summary) == 0 {
		fmt.Fprintln(Out, "Waste log is empty.")
		return nil
	}
	var total int64
	for _, s := range summary {
		fmt.Fprintf(Out, "%-10s %d\n", s.Outcome, s.Count)
		total += s.Count
	}
	fmt.Fprintf(Out, "%-10s %d\n", "total", total)
	return nil
}

func init() { RegisterCmd(wasteCmd{}) }
