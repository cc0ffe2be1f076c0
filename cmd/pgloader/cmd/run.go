package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/noctarius/pgloader/pkg/executor"
	"github.com/noctarius/pgloader/pkg/load"
)

// runCmd creates a CLI command that parses a load command file and executes
// it with the built-in loaders. Commands run strictly in file order; the
// first failure stops the run and marks the remaining commands skipped.
//
// Syslog commands require an external listener and are rejected by the
// built-in executor.
func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a load command file against its targets",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := commandFile(cmd)

			program, err := load.ParseFile(path)
			if err != nil {
				return err
			}

			results, runErr := executor.New(executor.Config{}).Run(ctx, program)
			for i, result := range results {
				fmt.Fprintf(cmd.Writer, "%d: %s %s (%s)\n",
					i+1, result.Status, summarize(result.Command), result.Duration)
			}

			return runErr
		},
	}
}
