package executor

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/load"
)

// CSVLoader is the built-in FileLoader. It reads CSV with a header row from
// stdin, a local file, or an HTTP resource and bulk-copies it into the
// target table named by the connection's ?table hint. The header names the
// target columns; everything after it streams to the server untouched.
type CSVLoader struct {
	// HTTPClient fetches http sources; defaults to http.DefaultClient
	HTTPClient *http.Client
}

// NewCSVLoader creates a CSV file loader with default settings.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{HTTPClient: http.DefaultClient}
}

// Load implements FileLoader.
func (l *CSVLoader) Load(ctx context.Context, cmd *load.FileLoad) error {
	if cmd.Target.Table == nil {
		return errors.Errorf("file load target requires a ?table hint: %s", cmd.Target.Redacted())
	}

	if cmd.Options.IncludeDrop || cmd.Options.CreateTables || cmd.Options.CreateIndexes {
		return errors.New("schema options (drop tables, create tables, create indexes) require an external schema engine")
	}

	source, err := l.open(ctx, cmd.Source)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	target, err := ConnectTarget(ctx, cmd.Target)
	if err != nil {
		return err
	}
	defer target.Close()

	table := *cmd.Target.Table

	if cmd.Options.Truncate {
		if err := target.Truncate(ctx, table); err != nil {
			return err
		}
	}

	buffered := bufio.NewReader(source)

	columns, err := readCSVHeader(buffered)
	if err != nil {
		return errors.Wrapf(err, "failed to read CSV header from %s", cmd.Source)
	}

	if _, err := target.CopyCSV(ctx, table, columns, buffered); err != nil {
		return err
	}

	if cmd.Options.ResetSequences {
		return target.ResetSequences(ctx, table)
	}

	return nil
}

// readCSVHeader consumes the first line and parses it as the column list,
// leaving the reader positioned at the first data row.
func readCSVHeader(r *bufio.Reader) ([]string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if strings.TrimSpace(line) == "" {
		return nil, errors.New("empty input")
	}

	header, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil {
		return nil, err
	}

	return header, nil
}

func (l *CSVLoader) open(ctx context.Context, source *load.Source) (io.ReadCloser, error) {
	switch source.Kind {
	case load.SourceStdin:
		return io.NopCloser(os.Stdin), nil

	case load.SourceFile:
		f, err := os.Open(source.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open source file: %s", source.Path)
		}
		return f, nil

	case load.SourceHTTP:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid source url: %s", source.URL)
		}

		client := l.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch source: %s", source.URL)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, errors.Errorf("failed to fetch source %s: %s", source.URL, resp.Status)
		}

		return resp.Body, nil

	case load.SourceDatabase:
		return nil, errors.Errorf("database source %s requires the database engine, not the file loader",
			source.Connection.Redacted())
	}

	return nil, errors.New("empty load source")
}
