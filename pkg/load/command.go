package load

import "github.com/noctarius/pgloader/pkg/syslog"

type (
	// Program is an ordered sequence of load commands, one per parsed command
	// in source order. All descriptors are immutable values owned by the
	// caller after a successful compile.
	Program struct {
		Commands []*Command
	}

	// Command is the tagged union of load command variants. Exactly one
	// field is non-nil.
	Command struct {
		File     *FileLoad
		Database *DatabaseLoad
		Syslog   *SyslogLoad
	}

	// FileLoad loads rows from a file-like source (stdin, HTTP resource,
	// local path, or database connection) into a PostgreSQL target. Source
	// reachability is validated by the external loader, not here.
	FileLoad struct {
		Source  *Source
		Target  *ConnectionInfo
		Options *Options
	}

	// DatabaseLoad streams a whole MySQL database into a PostgreSQL target,
	// applying options, session settings, and cast rules. Each cast rule's
	// transform name is resolved by the engine's own registry at run time.
	DatabaseLoad struct {
		Source   *ConnectionInfo
		Target   *ConnectionInfo
		Options  *Options
		Settings Settings
		Casts    CastRules
	}

	// SyslogLoad feeds parsed syslog messages into a PostgreSQL target. The
	// grammar spec is handed to an external ABNF compiler which produces the
	// message parser; the listener itself stays outside this package.
	SyslogLoad struct {
		Source   *ConnectionInfo
		Target   *ConnectionInfo
		Settings Settings
		Grammar  *syslog.GrammarSpec
	}
)
