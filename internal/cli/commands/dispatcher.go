package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"StockDLC/internal/apperr"
	"StockDLC/internal/config"
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" || name == "-h" || name == "--help" { // stockdlc help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		Logger.Debugw("command failed", "command", name, "error", err)
		fmt.Fprintf(Out, "%s error: %s\n", name, describe(err))
		return 1
	}
}

// describe returns the message meant for the user; typed errors hide their storage cause.
func describe(err error) string {
	if typed := apperr.As(err); typed != nil && typed.Code() != apperr.CodeInternal {
		return typed.Message()
	}
	return err.Error()
}
