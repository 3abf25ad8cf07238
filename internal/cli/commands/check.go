package commands

import (
	"context"
	"flag"
	"fmt"

	"StockDLC/internal/apperr"
	"StockDLC/internal/cli/bootstrap"
	"StockDLC/internal/config"
	"StockDLC/internal/notify"
)

// Mailer delivers a composed alert.
type Mailer interface {
	Send(ctx context.Context, msg notify.Message) error
}

// newMailer is replaced in tests.
var newMailer = func(cfg *config.Config) (Mailer, error) {
	return notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	})
}

type checkCmd struct{}

func (checkCmd) Name() string { return "check" }
func (checkCmd) Description() string {
	return "Show perishable items expiring soon, optionally e-mail them"
}
func (checkCmd) Usage() string { return "check [--days N] [--send-email 0|1] [--to EMAIL]" }

func (checkCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	days := fs.Int("days", cfg.DefaultCheckDays, "expiry window in days")
	sendEmail := fs.String("send-email", "0", "1 to e-mail the result")
	to := fs.String("to", "", "recipient (default: ALERT_EMAIL)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	send, err := parseSwitch(*sendEmail)
	if err != nil {
		return err
	}
	recipient := *to
	if recipient == "" {
		recipient = cfg.AlertEmail
	}
	// транспорт проверяем до обращения к базе, чтобы не отправлять полурезультат
	var mailer Mailer
	if send {
		if recipient == "" {
			return apperr.Validation("no recipient: pass --to or set ALERT_EMAIL")
		}
		if mailer, err = newMailer(cfg); err != nil {
			return err
		}
	}

	svc, done, err := bootstrap.OpenService(ctx, cfg, Logger)
	if err != nil {
		return err
	}
	defer done()

	items, err := svc.ItemsExpiringWithin(ctx, *days)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, notify.EmptyMessage(*days))
	} else {
		fmt.Fprint(Out, notify.ComposeText(items, *days))
	}

	if !send {
		return nil
	}
	if err := mailer.Send(ctx, notify.Compose(recipient, items, *days)); err != nil {
		return err
	}
	Logger.Infow("expiry alert sent", "to", recipient, "items", len(items), "days", *days)
	fmt.Fprintf(Out, "Email sent to %s\n", recipient)
	return nil
}

func init() { RegisterCmd(checkCmd{}) }
