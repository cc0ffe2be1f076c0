package load_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/noctarius/pgloader/pkg/load"
	"github.com/noctarius/pgloader/pkg/syslog"
)

func TestCompileFileLoadHTTP(t *testing.T) {
	t.Parallel()

	program, err := ParseString("LOAD FROM http:///a/b.csv INTO postgresql://localhost:5432/db?t;")
	require.NoError(t, err)
	require.Len(t, program.Commands, 1)

	fl := program.Commands[0].File
	require.NotNil(t, fl)

	require.Equal(t, SourceHTTP, fl.Source.Kind)
	require.Equal(t, "http:///a/b.csv", fl.Source.URL)

	target := fl.Target
	require.Equal(t, SchemePostgreSQL, target.Scheme)
	require.Equal(t, "localhost", target.Host)
	require.NotNil(t, target.Port)
	require.Equal(t, 5432, *target.Port)
	require.NotNil(t, target.DBName)
	require.Equal(t, "db", *target.DBName)
	require.NotNil(t, target.Table)
	require.Equal(t, "t", *target.Table)

	require.True(t, fl.Options.IsZero())
}

func TestCompileDatabaseLoadFull(t *testing.T) {
	t.Parallel()

	program, err := ParseString(`
		LOAD DATABASE FROM mysql://localhost:3306/dbname
		    INTO postgresql://localhost/db
		    WITH drop tables, truncate, create tables, create indexes, reset sequences
		    SET guc_1 = 'value'
		    CAST column col1 to timestamptz drop default using zero_dates_to_null,
		         type int with extra auto_increment to bigserial;
	`)
	require.NoError(t, err)
	require.Len(t, program.Commands, 1)

	dl := program.Commands[0].Database
	require.NotNil(t, dl)

	require.Equal(t, SchemeMySQL, dl.Source.Scheme)
	require.Equal(t, 3306, *dl.Source.Port)
	require.Equal(t, "dbname", *dl.Source.DBName)

	require.Equal(t, SchemePostgreSQL, dl.Target.Scheme)
	require.Equal(t, 5432, *dl.Target.Port)
	require.Equal(t, "db", *dl.Target.DBName)

	opts := dl.Options
	require.True(t, opts.IncludeDrop)
	require.True(t, opts.Truncate)
	require.True(t, opts.CreateTables)
	require.True(t, opts.CreateIndexes)
	require.True(t, opts.ResetSequences)

	require.Equal(t, Settings{{Name: "guc_1", Value: "value"}}, dl.Settings)

	require.Len(t, dl.Casts, 2)

	first := dl.Casts[0]
	require.NotNil(t, first.Column)
	require.Equal(t, "col1", *first.Column)
	require.Equal(t, "timestamptz", *first.TargetType)
	require.True(t, first.DropDefault)
	require.False(t, first.DropNotNull)
	require.False(t, first.AutoIncrementExtra)
	require.NotNil(t, first.Transform)
	require.Equal(t, "zero_dates_to_null", *first.Transform)

	second := dl.Casts[1]
	require.NotNil(t, second.Type)
	require.Equal(t, "int", *second.Type)
	require.Equal(t, "bigserial", *second.TargetType)
	require.True(t, second.AutoIncrementExtra)
	require.Nil(t, second.Transform)
}

func TestCompileTargetSchemeError(t *testing.T) {
	t.Parallel()

	_, err := ParseString("LOAD FROM stdin INTO mysql://localhost/db;")
	require.Error(t, err)

	var schemeErr *TargetSchemeError
	require.ErrorAs(t, err, &schemeErr)
	require.Equal(t, SchemeMySQL, schemeErr.Scheme)
	require.Equal(t, "mysql://localhost/db", schemeErr.URI)
}

func TestCompileUnknownGrammar(t *testing.T) {
	t.Parallel()

	_, err := ParseString(
		"LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db" +
			" WITH GRAMMAR = unknownname REGISTERING msg;")
	require.Error(t, err)

	var grammarErr *syslog.UnknownGrammarError
	require.ErrorAs(t, err, &grammarErr)
	require.Equal(t, "unknownname", grammarErr.Name)
	require.Contains(t, grammarErr.Known, "rsyslog")
}

func TestCompileSyslogLoad(t *testing.T) {
	t.Parallel()

	program, err := ParseString(`
		LOAD MESSAGES FROM syslog://localhost:10514/
		    INTO postgresql://localhost/db?logs
		    SET work_mem = '64MB'
		    WITH GRAMMAR = RSYSLOG
		timestamp = full-date "T" partial-time
		    REGISTERING timestamp, msg;
	`)
	require.NoError(t, err)

	sl := program.Commands[0].Syslog
	require.NotNil(t, sl)

	require.Equal(t, SchemeSyslog, sl.Source.Scheme)
	require.Equal(t, 10514, *sl.Source.Port)

	require.Equal(t, Settings{{Name: "work_mem", Value: "64MB"}}, sl.Settings)

	// Base grammar names normalize to lowercase; the extension stays verbatim.
	require.Equal(t, "rsyslog", sl.Grammar.Base)
	require.Equal(t, `timestamp = full-date "T" partial-time`, sl.Grammar.Extension)
	require.Equal(t, []string{"timestamp", "msg"}, sl.Grammar.Fields)
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	input := `
		LOAD FROM stdin INTO postgresql://localhost/db1 WITH truncate;
		LOAD DATABASE FROM mysql://localhost/src INTO postgresql://localhost/db2
		    SET a = '1', a = '2';
	`

	first, err := ParseString(input)
	require.NoError(t, err)

	second, err := ParseString(input)
	require.NoError(t, err)

	require.Equal(t, first, second)

	require.Len(t, first.Commands, 2)
	require.NotNil(t, first.Commands[0].File)
	require.NotNil(t, first.Commands[1].Database)

	// Duplicate settings are preserved in source order, not collapsed.
	require.Equal(t, Settings{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}},
		first.Commands[1].Database.Settings)
}

func TestCompileOptionLastWins(t *testing.T) {
	t.Parallel()

	program, err := ParseString(
		"LOAD FROM stdin INTO postgresql://localhost/db WITH workers = 2, workers = 8;")
	require.NoError(t, err)

	opts := program.Commands[0].File.Options
	require.NotNil(t, opts.Workers)
	require.Equal(t, 8, *opts.Workers)
}

func TestCompileCastFirstTargetWins(t *testing.T) {
	t.Parallel()

	program, err := ParseString(
		"LOAD DATABASE FROM mysql://localhost/db INTO postgresql://localhost/db" +
			" CAST column c TO smallint TO bigint;")
	require.NoError(t, err)

	rule := program.Commands[0].Database.Casts[0]
	require.Equal(t, "smallint", *rule.TargetType)
}

func TestCompileDatabaseSourceRequiresDBName(t *testing.T) {
	t.Parallel()

	_, err := ParseString("LOAD DATABASE FROM mysql://localhost/ INTO postgresql://localhost/db;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "database name")
}

func TestCompileTargetRequiresDBName(t *testing.T) {
	t.Parallel()

	_, err := ParseString("LOAD FROM stdin INTO postgresql://localhost;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "database name")
}

func TestCompileSourceVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from string
		want Source
	}{
		{name: "stdin", from: "stdin", want: Source{Kind: SourceStdin}},
		{name: "bare_path", from: "/data/users.csv", want: Source{Kind: SourceFile, Path: "/data/users.csv"}},
		{name: "quoted_path", from: "'my data.csv'", want: Source{Kind: SourceFile, Path: "my data.csv"}},
		{name: "https_url", from: "https://example.com/x.csv", want: Source{Kind: SourceHTTP, URL: "https://example.com/x.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			program, err := ParseString("LOAD FROM " + tt.from + " INTO postgresql://localhost/db;")
			require.NoError(t, err)
			require.Equal(t, &tt.want, program.Commands[0].File.Source)
		})
	}
}
