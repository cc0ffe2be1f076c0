package executor

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/load"
	"github.com/noctarius/pgloader/pkg/transform"
)

// MySQLLoader is the built-in DatabaseLoader. It streams every table of the
// source MySQL database into same-named tables on the PostgreSQL target,
// applying cast-rule transforms column by column. Target tables must already
// exist; schema creation belongs to an external schema engine.
type MySQLLoader struct {
	transforms *transform.Registry
}

// NewMySQLLoader creates a database loader resolving transform names against
// the given registry (the built-in registry when nil).
func NewMySQLLoader(registry *transform.Registry) *MySQLLoader {
	if registry == nil {
		registry = transform.NewRegistry()
	}

	return &MySQLLoader{transforms: registry}
}

// Load implements DatabaseLoader.
func (l *MySQLLoader) Load(ctx context.Context, cmd *load.DatabaseLoad) error {
	if cmd.Options.IncludeDrop || cmd.Options.CreateTables || cmd.Options.CreateIndexes {
		return errors.New("schema options (drop tables, create tables, create indexes) require an external schema engine")
	}

	db, err := sql.Open("mysql", mysqlDSN(cmd.Source))
	if err != nil {
		return errors.Wrapf(err, "invalid source connection: %s", cmd.Source.Redacted())
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrapf(err, "failed to ping source: %s", cmd.Source.Redacted())
	}

	target, err := ConnectTarget(ctx, cmd.Target)
	if err != nil {
		return err
	}
	defer target.Close()

	if err := target.ApplySettings(ctx, cmd.Settings); err != nil {
		return err
	}

	tables, err := listTables(ctx, db)
	if err != nil {
		return err
	}

	for _, table := range tables {
		if cmd.Options.Truncate {
			if err := target.Truncate(ctx, table); err != nil {
				return err
			}
		}

		if err := l.copyTable(ctx, db, target, table, cmd.Casts); err != nil {
			return errors.Wrapf(err, "failed to load table %s", table)
		}

		if cmd.Options.ResetSequences {
			if err := target.ResetSequences(ctx, table); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyTable streams one table through the COPY text protocol, applying the
// first matching cast rule's transform to each column.
func (l *MySQLLoader) copyTable(ctx context.Context, db *sql.DB, target *PGTarget, table string, casts load.CastRules) error {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteMySQLIdent(table))
	if err != nil {
		return errors.Wrap(err, "failed to query source table")
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return errors.Wrap(err, "failed to read source columns")
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return errors.Wrap(err, "failed to read source column types")
	}

	funcs, err := l.columnTransforms(columns, types, casts)
	if err != nil {
		return err
	}

	pr, pw := io.Pipe()
	defer func() { _ = pr.Close() }()

	go func() {
		pw.CloseWithError(writeCopyText(pw, rows, funcs))
	}()

	_, err = target.CopyText(ctx, table, columns, pr)
	return err
}

// columnTransforms resolves, per source column, the transform of the first
// cast rule matching by column name or by source type name. This is the
// execution-time resolution point: an unknown USING name fails here with
// TransformNotFoundError, never at parse time.
func (l *MySQLLoader) columnTransforms(columns []string, types []*sql.ColumnType, casts load.CastRules) ([]transform.Func, error) {
	funcs := make([]transform.Func, len(columns))

	for i, column := range columns {
		typeName := strings.ToLower(types[i].DatabaseTypeName())

		for _, rule := range casts {
			if !ruleMatches(rule, column, typeName) {
				continue
			}

			if rule.Transform != nil {
				fn, err := l.transforms.Resolve(*rule.Transform)
				if err != nil {
					return nil, err
				}
				funcs[i] = fn
			}

			break
		}
	}

	return funcs, nil
}

// ruleMatches applies the rule's source selector. The auto_increment extra
// marker is a schema-engine concern and does not constrain data matching.
func ruleMatches(rule *load.CastRule, column, typeName string) bool {
	switch {
	case rule.Column != nil:
		return strings.EqualFold(*rule.Column, column)
	case rule.Type != nil:
		return strings.EqualFold(*rule.Type, typeName)
	}

	return false
}

// writeCopyText renders rows in COPY text format: tab-separated values, \N
// for NULL, with tab/newline/backslash escaped.
func writeCopyText(w io.Writer, rows *sql.Rows, funcs []transform.Func) error {
	raw := make([]sql.RawBytes, len(funcs))
	holders := make([]any, len(funcs))
	for i := range raw {
		holders[i] = &raw[i]
	}

	var b strings.Builder

	for rows.Next() {
		if err := rows.Scan(holders...); err != nil {
			return errors.Wrap(err, "failed to scan source row")
		}

		b.Reset()
		for i, cell := range raw {
			if i > 0 {
				b.WriteByte('\t')
			}

			var value *string
			if cell != nil {
				s := string(cell)
				value = &s
			}

			if fn := funcs[i]; fn != nil {
				transformed, err := fn(value)
				if err != nil {
					return err
				}
				value = transformed
			}

			if value == nil {
				b.WriteString(`\N`)
			} else {
				b.WriteString(escapeCopyText(*value))
			}
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return errors.Wrap(rows.Err(), "failed to read source rows")
}

var copyTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

func escapeCopyText(value string) string {
	return copyTextEscaper.Replace(value)
}

// listTables enumerates the source database's tables.
func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SHOW TABLES")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list source tables")
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, errors.Wrap(err, "failed to scan table name")
		}
		tables = append(tables, table)
	}

	return tables, errors.Wrap(rows.Err(), "failed to list source tables")
}

// mysqlDSN renders a go-sql-driver DSN from decomposed connection info.
func mysqlDSN(info *load.ConnectionInfo) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = info.Host
	if info.Port != nil {
		cfg.Addr = fmt.Sprintf("%s:%d", info.Host, *info.Port)
	}

	if info.User != nil {
		cfg.User = *info.User
	}
	if info.Password != nil {
		cfg.Passwd = *info.Password
	}
	if info.DBName != nil {
		cfg.DBName = *info.DBName
	}

	cfg.InterpolateParams = true
	return cfg.FormatDSN()
}

// quoteMySQLIdent backtick-quotes an identifier, doubling embedded backticks.
func quoteMySQLIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
