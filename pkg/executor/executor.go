package executor

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/load"
	"github.com/noctarius/pgloader/pkg/transform"
)

type (
	// FileLoader consumes FileLoad descriptors. It must itself validate that
	// the source is reachable.
	FileLoader interface {
		Load(ctx context.Context, cmd *load.FileLoad) error
	}

	// DatabaseLoader consumes DatabaseLoad descriptors, resolving each cast
	// rule's transform name against its own registry.
	DatabaseLoader interface {
		Load(ctx context.Context, cmd *load.DatabaseLoad) error
	}

	// SyslogLoader consumes SyslogLoad descriptors. The network listener and
	// the ABNF-to-parser compiler live outside this module; implementations
	// receive the combined grammar spec and the registered field list.
	SyslogLoader interface {
		Load(ctx context.Context, cmd *load.SyslogLoad) error
	}

	// Executor dispatches the commands of a compiled program to the
	// configured loaders, strictly in program order.
	Executor struct {
		files     FileLoader
		databases DatabaseLoader
		syslogs   SyslogLoader
	}

	// Config contains configuration options for creating a new Executor. Nil
	// fields fall back to the built-in loaders; Syslog has no built-in and
	// stays required for programs containing syslog commands.
	Config struct {
		Files     FileLoader
		Databases DatabaseLoader
		Syslog    SyslogLoader
	}

	// Result records the outcome of one command.
	Result struct {
		Command  *load.Command
		Status   Status
		Error    error
		Duration time.Duration
	}

	// Status represents the outcome of a command execution.
	Status string
)

const (
	// StatusSuccess indicates the command completed
	StatusSuccess Status = "success"

	// StatusFailed indicates the command failed; subsequent commands are not
	// attempted
	StatusFailed Status = "failed"

	// StatusSkipped indicates the command was not attempted because an
	// earlier command failed
	StatusSkipped Status = "skipped"
)

// New creates an executor with the provided configuration, wiring the
// built-in CSV and MySQL loaders for any collaborator left nil.
func New(cfg Config) *Executor {
	if cfg.Files == nil {
		cfg.Files = NewCSVLoader()
	}

	if cfg.Databases == nil {
		cfg.Databases = NewMySQLLoader(transform.NewRegistry())
	}

	return &Executor{
		files:     cfg.Files,
		databases: cfg.Databases,
		syslogs:   cfg.Syslog,
	}
}

// Run executes every command of the program in order. The first failure
// marks the remaining commands skipped; the returned results always cover
// all commands.
func (e *Executor) Run(ctx context.Context, program *load.Program) ([]*Result, error) {
	results := make([]*Result, 0, len(program.Commands))

	var failed error
	for _, cmd := range program.Commands {
		if failed != nil {
			results = append(results, &Result{Command: cmd, Status: StatusSkipped})
			continue
		}

		start := time.Now()
		err := e.dispatch(ctx, cmd)
		result := &Result{
			Command:  cmd,
			Status:   StatusSuccess,
			Duration: time.Since(start),
		}

		if err != nil {
			result.Status = StatusFailed
			result.Error = err
			failed = err
		}

		results = append(results, result)
	}

	return results, failed
}

func (e *Executor) dispatch(ctx context.Context, cmd *load.Command) error {
	switch {
	case cmd.File != nil:
		return e.files.Load(ctx, cmd.File)

	case cmd.Database != nil:
		return e.databases.Load(ctx, cmd.Database)

	case cmd.Syslog != nil:
		if e.syslogs == nil {
			return errors.New("no syslog loader configured")
		}
		return e.syslogs.Load(ctx, cmd.Syslog)
	}

	return errors.New("empty load command")
}
