package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
	"StockDLC/internal/service"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Add an item" }
func (addCmd) Usage() string {
	return "add --name N --category C --perishable 0|1 --dlc YYYY-MM-DD --location L"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "item name")
	category := fs.String("category", "", "category name")
	perishable := fs.String("perishable", "", "1 if the item is perishable, 0 otherwise")
	dlc := fs.String("dlc", "", "use-by date, YYYY-MM-DD")
	location := fs.String("location", "", "storage location")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *name == "" || *category == "" || *perishable == "" || *dlc == "" || *location == "" {
		return ErrUsage
	}
	isPerishable, err := parseSwitch(*perishable)
	if err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	rec, err := svc.CreateItem(ctx, service.NewItem{
		Name:       *name,
		Category:   *category,
		Perishable: isPerishable,
		DLC:        *dlc,
		Location:   *location,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Item #%d added: %s (DLC %s)\n", rec.ID, rec.Name, rec.DLC)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
