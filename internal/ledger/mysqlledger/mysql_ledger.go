// Copyright 2026 Continusec Pty Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mysqlledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/continusec/librarian/internal/config"
	"github.com/continusec/librarian/internal/ledger"
	"github.com/go-sql-driver/mysql"
)

const databaseName = "librarian"

var _ ledger.Ledger = &Ledger{}

// Ledger stores catalog metadata in the three librarian MySQL tables:
// Engagements for projects, IncomingData and OutgoingData for submissions.
type Ledger struct {
	db   *sql.DB
	user string
}

// Open connects and pings the database. A connection or auth failure here is
// reported as ErrLedgerUnavailable and is fatal to the caller.
func Open(ctx context.Context, creds config.MySQLCredentials) (*Ledger, error) {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", creds.Host, creds.Port)
	mc.User = creds.User
	mc.Passwd = creds.Password
	mc.DBName = databaseName
	mc.ParseTime = true

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening ledger connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}

	return New(db, creds.User), nil
}

// New wraps an existing database handle. The user becomes the owner of any
// projects created through this ledger.
func New(db *sql.DB, user string) *Ledger {
	return &Ledger{
		db:   db,
		user: user,
	}
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) ListProjects(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT name FROM Engagements`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var rv []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning project name: %w", err)
		}
		rv = append(rv, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	return rv, nil
}

func (l *Ledger) ProjectExists(ctx context.Context, name string) (bool, error) {
	_, err := l.projectID(ctx, name)
	if err != nil {
		if errors.Is(err, ledger.ErrProjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *Ledger) projectID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := l.db.QueryRowContext(ctx, `SELECT id FROM Engagements WHERE name = ?`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ledger.ErrProjectNotFound, name)
		}
		return 0, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	return id, nil
}

func (l *Ledger) CreateProject(ctx context.Context, name, comment string) error {
	exists, err := l.ProjectExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ledger.ErrProjectExists, name)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO Engagements(name, date_started, owner, comments) VALUES (?, ?, ?, ?)`,
		name, time.Now().Format("2006-01-02"), l.user, comment)
	if err != nil {
		return fmt.Errorf("error inserting project: %w", err)
	}
	return nil
}

// submissionQuery builds the per-table half of the union-all queries used for
// listing and manifest resolution.
func submissionQuery(table, columns string) string {
	return fmt.Sprintf(`SELECT %s FROM %s ds JOIN Engagements ON ds.project = Engagements.id WHERE Engagements.name = ?`, columns, table)
}

func (l *Ledger) ListSubmissions(ctx context.Context, project string) ([]ledger.Submission, error) {
	if _, err := l.projectID(ctx, project); err != nil {
		return nil, err
	}

	query := submissionQuery("IncomingData", "ds.name, ds.version, ds.timestamp") +
		" UNION ALL " +
		submissionQuery("OutgoingData", "ds.name, ds.version, ds.timestamp")
	rows, err := l.db.QueryContext(ctx, query, project, project)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var rv []ledger.Submission
	for rows.Next() {
		var s ledger.Submission
		if err := rows.Scan(&s.Name, &s.Version, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning submission row: %w", err)
		}
		rv = append(rv, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	return rv, nil
}

func tableFor(d ledger.Direction) (string, error) {
	switch d {
	case ledger.Incoming:
		return "IncomingData", nil
	case ledger.Outgoing:
		return "OutgoingData", nil
	default:
		return "", fmt.Errorf("unknown submission direction: %q", d)
	}
}

func (l *Ledger) RecordSubmission(ctx context.Context, rec ledger.Record) error {
	if len(rec.URLs) != len(rec.Checksums) {
		return fmt.Errorf("url list (%d) and checksum list (%d) differ in length", len(rec.URLs), len(rec.Checksums))
	}
	table, err := tableFor(rec.Direction)
	if err != nil {
		return err
	}
	pid, err := l.projectID(ctx, rec.Project)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s(project, name, version, timestamp, urls, checksums, metadata_url, comments, username, hostname) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, table)
	_, err = l.db.ExecContext(ctx, query,
		pid, rec.Name, rec.Version, rec.Timestamp,
		joinList(rec.URLs), joinList(rec.Checksums),
		rec.MetadataURL, rec.Comment, rec.Username, rec.Hostname)
	if err != nil {
		return fmt.Errorf("error inserting submission record: %w", err)
	}
	return nil
}

func (l *Ledger) ResolveManifest(ctx context.Context, project, name, version string) (urls, checksums []string, err error) {
	query := manifestQueryFor("IncomingData") + " UNION ALL " + manifestQueryFor("OutgoingData")
	rows, err := l.db.QueryContext(ctx, query, project, name, version, project, name, version)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	// take the first match only - under duplicate (project, name, version)
	// triples the choice of row is not defined
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ledger.ErrLedgerUnavailable, err)
		}
		return nil, nil, fmt.Errorf("%w: %s/%s@%s", ledger.ErrDatasetNotFound, project, name, version)
	}
	var rawURLs, rawChecksums string
	if err := rows.Scan(&rawURLs, &rawChecksums); err != nil {
		return nil, nil, fmt.Errorf("error scanning manifest row: %w", err)
	}
	return splitList(rawURLs), splitList(rawChecksums), nil
}

func manifestQueryFor(table string) string {
	return fmt.Sprintf(`SELECT ds.urls, ds.checksums FROM %s ds JOIN Engagements ON ds.project = Engagements.id WHERE Engagements.name = ? AND ds.name = ? AND ds.version = ?`, table)
}

// joinList and splitList are the wire format for manifests in the ledger: one
// url or checksum per line, index-aligned across the two columns. Must stay
// byte-compatible with existing rows.
func joinList(items []string) string {
	return strings.Join(items, "\n")
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
