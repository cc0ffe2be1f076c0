package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/noctarius/pgloader/pkg/config"
	"github.com/noctarius/pgloader/pkg/consts"
	"github.com/noctarius/pgloader/pkg/format"
)

var currentConfig *config.Config

// Run creates and executes the main pgloader CLI application with the given
// version and command-line arguments.
//
// The application looks for pgloader.yaml in the current directory (or the
// file named by --config) and, when present, uses it for the default command
// file and formatter preferences. A missing config file is not an error;
// every command also accepts explicit paths.
//
// Global Flags:
//   - --config, -c: project configuration file (defaults to pgloader.yaml)
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "pgloader",
		Usage: "Load data from files, MySQL databases, and syslog streams into PostgreSQL",
		Description: `pgloader parses a load command file describing data sources, a PostgreSQL
target, load options, session settings, and cast rules, and executes the
described loads against the target database.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the project config file",
				Sources: cli.EnvVars("PGLOADER_CONFIG"),
				Value:   consts.DefaultConfigFile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			path := cmd.String("config")

			if _, err := os.Stat(path); os.IsNotExist(err) {
				return ctx, nil
			} else if err != nil {
				return ctx, err
			}

			cfg, err := config.LoadConfigFile(path)
			if err != nil {
				return ctx, err
			}

			currentConfig = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			fmtCmd(),
			runCmd(),
		},
	}

	return app.Run(ctx, args)
}

// commandFile resolves the load command file to act on: the explicit
// argument if given, otherwise the project config's entry point.
func commandFile(cmd *cli.Command) string {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First()
	}

	if currentConfig != nil {
		return currentConfig.Commands
	}

	return consts.DefaultCommandsFile
}

// formatOptions builds formatter options from the project config.
func formatOptions() *format.Options {
	if currentConfig == nil {
		return format.Defaults
	}

	return &format.Options{
		IndentSize:        currentConfig.Format.IndentSize,
		UppercaseKeywords: !currentConfig.Format.LowercaseKeywords,
	}
}
