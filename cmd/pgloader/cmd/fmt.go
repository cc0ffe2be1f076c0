package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/noctarius/pgloader/pkg/consts"
	"github.com/noctarius/pgloader/pkg/format"
	"github.com/noctarius/pgloader/pkg/load"
)

// fmtCmd creates a CLI command for formatting load command files. This works
// like gofmt for .load files: a single file or a directory tree, written to
// stdout by default or back in place with -w.
//
// Formatting goes through the full parse and compile pipeline, so output
// always reflects applied defaults (explicit hosts and ports, canonical
// option order) and a file with syntax or semantic errors fails the command.
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format load command files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			path := cmd.Args().First()
			writeBack := cmd.Bool("write")

			return formatPath(path, writeBack, cmd.Writer)
		},
	}
}

// formatPath handles formatting of either a single file or directory
// recursively.
func formatPath(path string, writeBack bool, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(path, writeBack, writer)
	}

	return formatFile(path, writeBack, writer)
}

// formatDirectory recursively walks through a directory and formats all
// .load files in lexicographical order.
func formatDirectory(dir string, writeBack bool, writer io.Writer) error {
	var loadFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), consts.CommandFileExtension) {
			loadFiles = append(loadFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(loadFiles) == 0 {
		return errors.Errorf("no load command files found in directory: %s", dir)
	}

	for _, loadFile := range loadFiles {
		if err := formatFile(loadFile, writeBack, writer); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", loadFile)
		}
	}

	return nil
}

// formatFile formats a single load command file and either writes to stdout
// or back to the file.
func formatFile(path string, writeBack bool, writer io.Writer) error {
	program, err := load.ParseFile(path)
	if err != nil {
		return err
	}

	var buf strings.Builder
	if err := format.Format(&buf, formatOptions(), program.Commands...); err != nil {
		return errors.Wrapf(err, "failed to format file: %s", path)
	}

	formatted := buf.String()

	if writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := fmt.Fprint(writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
