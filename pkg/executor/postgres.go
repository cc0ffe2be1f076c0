package executor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/load"
)

// PGTarget wraps a pgx pool for one load target. It owns the session-level
// concerns every loader shares: applying SET settings, truncating, resetting
// sequences, and bulk COPY.
type PGTarget struct {
	pool *pgxpool.Pool
}

// ConnectTarget opens a connection pool against the target described by
// info. The caller owns the returned target and must Close it.
func ConnectTarget(ctx context.Context, info *load.ConnectionInfo) (*PGTarget, error) {
	cfg, err := pgxpool.ParseConfig(postgresDSN(info))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid target connection: %s", info.Redacted())
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to target: %s", info.Redacted())
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "failed to ping target: %s", info.Redacted())
	}

	return &PGTarget{pool: pool}, nil
}

// ApplySettings applies session settings in order. Duplicates apply twice;
// the later one wins server-side, which is exactly the textual-order
// contract of the SET clause.
func (t *PGTarget) ApplySettings(ctx context.Context, settings load.Settings) error {
	for _, s := range settings {
		stmt := fmt.Sprintf("SET %s = %s", quoteIdent(s.Name), quoteLiteral(s.Value))
		if _, err := t.pool.Exec(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to apply setting %s", s.Name)
		}
	}

	return nil
}

// Truncate empties the named table.
func (t *PGTarget) Truncate(ctx context.Context, table string) error {
	stmt := "TRUNCATE TABLE " + quoteIdent(table)
	if _, err := t.pool.Exec(ctx, stmt); err != nil {
		return errors.Wrapf(err, "failed to truncate %s", table)
	}

	return nil
}

// ResetSequences resyncs every sequence owned by a column of the named table
// with the current column maximum.
func (t *PGTarget) ResetSequences(ctx context.Context, table string) error {
	const query = `
		SELECT a.attname, s.relname
		FROM pg_class c
		JOIN pg_depend d ON d.refobjid = c.oid
		JOIN pg_class s ON s.oid = d.objid AND s.relkind = 'S'
		JOIN pg_attribute a ON a.attrelid = c.oid AND a.attnum = d.refobjsubid
		WHERE c.relname = $1`

	rows, err := t.pool.Query(ctx, query, table)
	if err != nil {
		return errors.Wrapf(err, "failed to list sequences for %s", table)
	}
	defer rows.Close()

	type ownedSeq struct{ column, sequence string }

	var seqs []ownedSeq
	for rows.Next() {
		var s ownedSeq
		if err := rows.Scan(&s.column, &s.sequence); err != nil {
			return errors.Wrap(err, "failed to scan sequence row")
		}
		seqs = append(seqs, s)
	}
	if err := rows.Err(); err != nil {
		return errors.Wrapf(err, "failed to list sequences for %s", table)
	}

	for _, s := range seqs {
		stmt := fmt.Sprintf("SELECT setval(%s, COALESCE((SELECT max(%s) FROM %s), 1))",
			quoteLiteral(s.sequence), quoteIdent(s.column), quoteIdent(table))
		if _, err := t.pool.Exec(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to reset sequence %s", s.sequence)
		}
	}

	return nil
}

// CopyCSV streams header-less CSV rows into the named table via the COPY
// protocol. The server parses values against the column types, so the stream
// stays text all the way through.
func (t *PGTarget) CopyCSV(ctx context.Context, table string, columns []string, r io.Reader) (int64, error) {
	return t.copyFrom(ctx, r, copyStatement(table, columns, "FORMAT csv"))
}

// CopyText streams COPY text-format rows (tab-separated, \N for NULL) into
// the named table.
func (t *PGTarget) CopyText(ctx context.Context, table string, columns []string, r io.Reader) (int64, error) {
	return t.copyFrom(ctx, r, copyStatement(table, columns, "FORMAT text"))
}

func (t *PGTarget) copyFrom(ctx context.Context, r io.Reader, stmt string) (int64, error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to acquire connection")
	}
	defer conn.Release()

	tag, err := conn.Conn().PgConn().CopyFrom(ctx, r, stmt)
	if err != nil {
		return 0, errors.Wrap(err, "copy failed")
	}

	return tag.RowsAffected(), nil
}

func copyStatement(table string, columns []string, options string) string {
	quoted := make([]string, 0, len(columns))
	for _, c := range columns {
		quoted = append(quoted, quoteIdent(c))
	}

	return fmt.Sprintf("COPY %s (%s) FROM STDIN WITH (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), options)
}

// Close releases the underlying pool.
func (t *PGTarget) Close() {
	t.pool.Close()
}

// postgresDSN renders a pgx-compatible URL from decomposed connection info.
func postgresDSN(info *load.ConnectionInfo) string {
	var b strings.Builder

	b.WriteString("postgres://")
	if info.User != nil {
		b.WriteString(*info.User)
		if info.Password != nil {
			b.WriteString(":")
			b.WriteString(*info.Password)
		}
		b.WriteString("@")
	}

	b.WriteString(info.Host)
	if info.Port != nil {
		fmt.Fprintf(&b, ":%d", *info.Port)
	}

	if info.DBName != nil {
		b.WriteString("/")
		b.WriteString(*info.DBName)
	}

	return b.String()
}

// quoteIdent double-quotes an identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral single-quotes a literal, doubling embedded quotes.
func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
