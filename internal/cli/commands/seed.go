package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
)

type seedCmd struct{}

func (seedCmd) Name() string { return "seed" }
func (seedCmd) Description() string {
	return "Insert default (or custom) categories and locations"
}
func (seedCmd) Usage() string {
	return "seed [--categories CSV] [--locations CSV] [--wipe]"
}

func (seedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	categories := fs.String("categories", "", "comma-separated categories")
	locations := fs.String("locations", "", "comma-separated locations")
	wipe := fs.Bool("wipe", false, "delete existing reference rows first")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	res, err := svc.SeedReferences(ctx, splitCSV(*categories), splitCSV(*locations), *wipe)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Reference data seeded: %d categories, %d locations added\n", res.Categories, res.Locations)
	return nil
}

func init() { RegisterCmd(seedCmd{}) }
