package load

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Scheme identifies the engine a connection URI points at.
type Scheme string

const (
	// SchemePostgreSQL is the only scheme accepted for load targets
	SchemePostgreSQL Scheme = "postgresql"

	// SchemeMySQL identifies a MySQL source database
	SchemeMySQL Scheme = "mysql"

	// SchemeSyslog identifies a syslog message stream source
	SchemeSyslog Scheme = "syslog"

	// SchemeUnknown is any scheme outside the recognized set. Parsing still
	// succeeds syntactically; command assembly rejects unknown target schemes.
	SchemeUnknown Scheme = "unknown"
)

// defaultPorts maps schemes to their default port. Syslog deliberately has no
// entry: absence is surfaced to the external listener rather than guessed.
var defaultPorts = map[Scheme]int{
	SchemePostgreSQL: 5432,
	SchemeMySQL:      3306,
}

// connURIPattern decomposes scheme://[user[:pass]@]host[:port][/dbname][?table].
// The host is a dot-separated sequence of name labels; the port a run of
// digits. Credentials and the table hint are optional.
var connURIPattern = regexp.MustCompile(
	`^(?P<scheme>[A-Za-z][A-Za-z0-9+.-]*)://` +
		`(?:(?P<user>[^:@/?]+)(?P<colon>:(?P<password>[^@/?]*))?@)?` +
		`(?P<host>[A-Za-z0-9_-]+(?:\.[A-Za-z0-9_-]+)*)?` +
		`(?::(?P<port>\d+))?` +
		`(?:/(?P<dbname>[^/?]*))?` +
		`(?:\?(?P<table>.+))?$`,
)

// ConnectionInfo is the decomposed form of a connection URI with scheme
// defaults applied. Once constructed it is never mutated.
type ConnectionInfo struct {
	Scheme   Scheme
	User     *string
	Password *string
	Host     string
	Port     *int
	DBName   *string
	Table    *string
}

// ParseConnectionURI decomposes a raw connection URI and applies defaults:
// the host defaults to "localhost" and the port to the scheme default (5432
// for postgresql, 3306 for mysql, none for syslog). A user followed by a
// bare ":" yields a present user and an absent password. An unrecognized
// scheme yields SchemeUnknown but parses successfully; semantic rejection is
// the command assembler's job.
func ParseConnectionURI(raw string) (*ConnectionInfo, error) {
	m := connURIPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, errors.Errorf("invalid connection string: %s", raw)
	}

	group := func(name string) string {
		return m[connURIPattern.SubexpIndex(name)]
	}

	info := &ConnectionInfo{
		Scheme: schemeOf(group("scheme")),
		Host:   group("host"),
	}

	if user := group("user"); user != "" {
		info.User = &user

		// A trailing ":" with nothing after it means "no password", not an
		// empty one.
		if group("colon") != "" {
			if password := group("password"); password != "" {
				info.Password = &password
			}
		}
	}

	if info.Host == "" {
		info.Host = "localhost"
	}

	if port := group("port"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid port in connection string: %s", raw)
		}
		info.Port = &n
	} else if n, ok := defaultPorts[info.Scheme]; ok {
		info.Port = &n
	}

	if dbname := group("dbname"); dbname != "" {
		info.DBName = &dbname
	}

	if table := group("table"); table != "" {
		info.Table = &table
	}

	return info, nil
}

// schemeOf normalizes a raw scheme token. The pgsql and postgres spellings
// are accepted as aliases for postgresql.
func schemeOf(raw string) Scheme {
	switch strings.ToLower(raw) {
	case "postgresql", "postgres", "pgsql":
		return SchemePostgreSQL
	case "mysql":
		return SchemeMySQL
	case "syslog":
		return SchemeSyslog
	default:
		return SchemeUnknown
	}
}

// String renders the canonical URI form with defaults applied. Passwords are
// included verbatim; callers that log connection info should use Redacted.
func (c *ConnectionInfo) String() string {
	var b strings.Builder

	b.WriteString(string(c.Scheme))
	b.WriteString("://")

	if c.User != nil {
		b.WriteString(*c.User)
		if c.Password != nil {
			b.WriteString(":")
			b.WriteString(*c.Password)
		}
		b.WriteString("@")
	}

	b.WriteString(c.Host)
	if c.Port != nil {
		fmt.Fprintf(&b, ":%d", *c.Port)
	}

	if c.DBName != nil {
		b.WriteString("/")
		b.WriteString(*c.DBName)
	}

	if c.Table != nil {
		b.WriteString("?")
		b.WriteString(*c.Table)
	}

	return b.String()
}

// Redacted renders the canonical URI with any password replaced by "***".
func (c *ConnectionInfo) Redacted() string {
	if c.Password == nil {
		return c.String()
	}

	masked := *c
	stars := "***"
	masked.Password = &stars
	return masked.String()
}
