package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List all items ordered by DLC" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := parseFlags(flag.NewFlagSet("list", flag.ContinueOnError), args); err != nil {
		return err
	}
	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	items, err := svc.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items.")
		return nil
	}

	fmt.Fprintf(Out, "%-4s %-30s %-20s %-16s %-10s %-10s\n", "ID", "Name", "Category", "Location", "Perishable", "DLC")
	fmt.Fprintln(Out, strings.Repeat("-", 100))
	for _, it := range items {
		perishable := "no"
		if it.Perishable {
			perishable = "yes"
		}
		fmt.Fprintf(Out, "%-4d %-30s %-20s %-16s %-10s %-10s\n", it.ID, it.Name, it.Category, it.Location, perishable, it.DLC)
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
