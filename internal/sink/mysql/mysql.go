package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/alexanderjulianmartinez/franschema/internal/sink"
)

const DefaultTable = "franchise_schemas"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Sink upserts artifacts into a MySQL table keyed by run and name.
type Sink struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

func New(ctx context.Context, dsn, table string) (*Sink, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("mysql sink: invalid table name %q", table)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping failed: %w", err)
	}

	s := &Sink{db: db, table: table, timeout: 5 * time.Second}
	if err := s.ensureTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sink) Name() string { return "mysql" }

func (s *Sink) ensureTable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, createTableSQL(s.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

func (s *Sink) Store(ctx context.Context, a sink.Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, insertSQL(s.table),
		a.RunID, a.Source, a.Index, a.Offset, a.Name(), a.Checksum(), a.Data)
	if err != nil {
		return fmt.Errorf("insert %s: %w", a.Name(), err)
	}
	return nil
}

func (s *Sink) Close() error {
	return s.db.Close()
}

func createTableSQL(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (\n"+
		"\tid BIGINT AUTO_INCREMENT PRIMARY KEY,\n"+
		"\trun_id CHAR(36) NOT NULL,\n"+
		"\tsource VARCHAR(1024) NOT NULL,\n"+
		"\tblock_index INT NOT NULL,\n"+
		"\tstream_offset BIGINT NOT NULL,\n"+
		"\tname VARCHAR(255) NOT NULL,\n"+
		"\tsha256 CHAR(64) NOT NULL,\n"+
		"\tdata LONGBLOB NOT NULL,\n"+
		"\tcreated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,\n"+
		"\tUNIQUE KEY uq_run_name (run_id, name)\n"+
		")", table)
}

func insertSQL(table string) string {
	return fmt.Sprintf("INSERT INTO `%s` (run_id, source, block_index, stream_offset, name, sha256, data)\n"+
		"VALUES (?, ?, ?, ?, ?, ?, ?)\n"+
		"ON DUPLICATE KEY UPDATE stream_offset = VALUES(stream_offset), sha256 = VALUES(sha256), data = VALUES(data)", table)
}
