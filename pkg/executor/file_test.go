package executor

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noctarius/pgloader/pkg/load"
)

func TestReadCSVHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantColumns []string
		wantRest    string
		wantErr     bool
	}{
		{
			name:        "simple",
			input:       "id,name\n1,alice\n2,bob\n",
			wantColumns: []string{"id", "name"},
			wantRest:    "1,alice\n2,bob\n",
		},
		{
			name:        "quoted_header",
			input:       "id,\"full name\"\n1,alice\n",
			wantColumns: []string{"id", "full name"},
			wantRest:    "1,alice\n",
		},
		{
			name:        "header_only",
			input:       "id,name\n",
			wantColumns: []string{"id", "name"},
			wantRest:    "",
		},
		{
			name:        "no_trailing_newline",
			input:       "id,name",
			wantColumns: []string{"id", "name"},
			wantRest:    "",
		},
		{name: "empty", input: "", wantErr: true},
		{name: "blank_line", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bufio.NewReader(strings.NewReader(tt.input))

			columns, err := readCSVHeader(r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantColumns, columns)

			rest, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestCSVLoaderRequiresTableHint(t *testing.T) {
	t.Parallel()

	program, err := load.ParseString("LOAD FROM stdin INTO postgresql://localhost/db;")
	require.NoError(t, err)

	err = NewCSVLoader().Load(context.Background(), program.Commands[0].File)
	require.Error(t, err)
	require.Contains(t, err.Error(), "?table hint")
}

func TestCSVLoaderRejectsSchemaOptions(t *testing.T) {
	t.Parallel()

	program, err := load.ParseString(
		"LOAD FROM stdin INTO postgresql://localhost/db?t WITH drop tables;")
	require.NoError(t, err)

	err = NewCSVLoader().Load(context.Background(), program.Commands[0].File)
	require.Error(t, err)
	require.Contains(t, err.Error(), "external schema engine")
}

func TestCSVLoaderRejectsDatabaseSource(t *testing.T) {
	t.Parallel()

	loader := NewCSVLoader()

	info, err := load.ParseConnectionURI("mysql://localhost/db")
	require.NoError(t, err)

	_, err = loader.open(context.Background(), &load.Source{Kind: load.SourceDatabase, Connection: info})
	require.Error(t, err)
	require.Contains(t, err.Error(), "database engine")
}
