package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/config"
	"StockDLC/internal/repo"
)

type initCmd struct{}

func (initCmd) Name() string        { return "init" }
func (initCmd) Description() string { return "Create the database and apply schema migrations" }
func (initCmd) Usage() string       { return "init" }

func (initCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := parseFlags(flag.NewFlagSet("init", flag.ContinueOnError), args); err != nil {
		return err
	}
	db, err := repo.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close(db) }()

	applied, err := repo.Migrate(ctx, db)
	if err != nil {
		return err
	}
	Logger.Debugw("schema migrated", "dsn", cfg.DatabaseDSN, "applied", applied)
	fmt.Fprintf(Out, "Database ready: %s (%s)\n", cfg.DatabaseDSN, repo.DetectDialect(cfg.DatabaseDSN))
	fmt.Fprintf(Out, "Migrations applied: %d\n", applied)
	return nil
}

func init() { RegisterCmd(initCmd{}) }
