package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
)

type disposeCmd struct{}

func (disposeCmd) Name() string { return "dispose" }
func (disposeCmd) Description() string {
	return "Remove an item from stock and record it in the waste log"
}
func (disposeCmd) Usage() string { return "dispose --id N --outcome consumed|wasted" }

func (disposeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("dispose", flag.ContinueOnError)
	id := fs.Int64("id", 0, "item id")
	outcome := fs.String("outcome", "", "consumed or wasted")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 || *outcome == "" {
		return ErrUsage
	}

	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	res, err := svc.DisposeItem(ctx, *id, *outcome)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Item #%d disposed as %s\n", res.ItemID, res.Outcome)
	return nil
}

func init() { RegisterCmd(disposeCmd{}) }
