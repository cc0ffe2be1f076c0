package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/noctarius/pgloader/pkg/load"
)

// parseCmd creates a CLI command that parses and validates a load command
// file without executing anything. It prints a one-line summary per command
// so the file can be checked before a run.
func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse and validate a load command file",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := commandFile(cmd)

			program, err := load.ParseFile(path)
			if err != nil {
				return err
			}

			for i, c := range program.Commands {
				fmt.Fprintf(cmd.Writer, "%d: %s\n", i+1, summarize(c))
			}

			return nil
		},
	}
}

func summarize(cmd *load.Command) string {
	switch {
	case cmd.File != nil:
		return fmt.Sprintf("load %s into %s", cmd.File.Source, cmd.File.Target.Redacted())
	case cmd.Database != nil:
		return fmt.Sprintf("load database %s into %s (%d cast rules)",
			cmd.Database.Source.Redacted(), cmd.Database.Target.Redacted(), len(cmd.Database.Casts))
	case cmd.Syslog != nil:
		return fmt.Sprintf("load messages %s into %s (grammar %s, %d fields)",
			cmd.Syslog.Source.Redacted(), cmd.Syslog.Target.Redacted(),
			cmd.Syslog.Grammar.Base, len(cmd.Syslog.Grammar.Fields))
	}

	return "empty command"
}
