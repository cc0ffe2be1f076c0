package executor_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	. "github.com/noctarius/pgloader/pkg/executor"
	"github.com/noctarius/pgloader/pkg/load"
)

type (
	fakeFileLoader struct {
		calls int
		err   error
	}

	fakeDatabaseLoader struct {
		calls int
		err   error
	}

	fakeSyslogLoader struct {
		calls int
		err   error
	}
)

func (f *fakeFileLoader) Load(_ context.Context, _ *load.FileLoad) error {
	f.calls++
	return f.err
}

func (f *fakeDatabaseLoader) Load(_ context.Context, _ *load.DatabaseLoad) error {
	f.calls++
	return f.err
}

func (f *fakeSyslogLoader) Load(_ context.Context, _ *load.SyslogLoad) error {
	f.calls++
	return f.err
}

func parseProgram(t *testing.T, input string) *load.Program {
	t.Helper()

	program, err := load.ParseString(input)
	require.NoError(t, err)
	return program
}

func TestRunDispatchesByCommandKind(t *testing.T) {
	t.Parallel()

	program := parseProgram(t, `
		LOAD FROM stdin INTO postgresql://localhost/db1;
		LOAD DATABASE FROM mysql://localhost/src INTO postgresql://localhost/db2;
		LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db3
		    WITH GRAMMAR = syslog REGISTERING msg;
	`)

	files := &fakeFileLoader{}
	databases := &fakeDatabaseLoader{}
	syslogs := &fakeSyslogLoader{}

	executor := New(Config{Files: files, Databases: databases, Syslog: syslogs})

	results, err := executor.Run(context.Background(), program)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, result := range results {
		require.Equal(t, StatusSuccess, result.Status)
		require.NoError(t, result.Error)
	}

	require.Equal(t, 1, files.calls)
	require.Equal(t, 1, databases.calls)
	require.Equal(t, 1, syslogs.calls)
}

func TestRunStopsAfterFirstFailure(t *testing.T) {
	t.Parallel()

	program := parseProgram(t, `
		LOAD FROM stdin INTO postgresql://localhost/db1;
		LOAD FROM stdin INTO postgresql://localhost/db2;
		LOAD FROM stdin INTO postgresql://localhost/db3;
	`)

	boom := errors.New("boom")
	files := &fakeFileLoader{err: boom}

	executor := New(Config{Files: files})

	results, err := executor.Run(context.Background(), program)
	require.ErrorIs(t, err, boom)
	require.Len(t, results, 3)

	require.Equal(t, StatusFailed, results[0].Status)
	require.ErrorIs(t, results[0].Error, boom)
	require.Equal(t, StatusSkipped, results[1].Status)
	require.Equal(t, StatusSkipped, results[2].Status)

	// Skipped commands are never dispatched.
	require.Equal(t, 1, files.calls)
}

func TestRunWithoutSyslogLoader(t *testing.T) {
	t.Parallel()

	program := parseProgram(t,
		"LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db"+
			" WITH GRAMMAR = syslog REGISTERING msg;")

	executor := New(Config{Files: &fakeFileLoader{}, Databases: &fakeDatabaseLoader{}})

	results, err := executor.Run(context.Background(), program)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no syslog loader configured")
	require.Equal(t, StatusFailed, results[0].Status)
}

func TestRunEmptyProgram(t *testing.T) {
	t.Parallel()

	executor := New(Config{Files: &fakeFileLoader{}})

	results, err := executor.Run(context.Background(), &load.Program{})
	require.NoError(t, err)
	require.Empty(t, results)
}
