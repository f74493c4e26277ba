package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/h0rv/projbook/internal/domain"
	"github.com/h0rv/projbook/internal/store"
)

//go:embed schema.sql
var schema string

// SQLiteStorage keeps the address book in a SQLite database. Rows hold the
// same records as the JSON layout; position preserves list order.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initialises) the database at path.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &domain.PersistenceError{Message: "opening " + path, Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &domain.PersistenceError{Message: "initialising schema", Err: err}
	}
	return &SQLiteStorage{db: db}, nil
}

// Load reads every row and rebuilds the book through the record adapter.
func (ss *SQLiteStorage) Load(ctx context.Context) (*store.Store, error) {
	var b Book

	rows, err := ss.db.QueryContext(ctx, `
		SELECT project_id, name, repository, deadline,
		       client_id, client_name, client_phone, client_email
		FROM projects ORDER BY position`)
	if err != nil {
		return nil, &domain.PersistenceError{Message: "querying projects", Err: err}
	}
	for rows.Next() {
		var p ProjectRecord
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.Repository, &p.Deadline,
			&p.ClientID, &p.Client.Name, &p.Client.Phone, &p.Client.Email); err != nil {
			rows.Close()
			return nil, &domain.PersistenceError{Message: "scanning project", Err: err}
		}
		p.Client.ClientID = p.ClientID
		b.Projects = append(b.Projects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Message: "querying projects", Err: err}
	}

	rows, err = ss.db.QueryContext(ctx, `
		SELECT issue_id, title, priority, deadline, status, project_id
		FROM issues ORDER BY position`)
	if err != nil {
		return nil, &domain.PersistenceError{Message: "querying issues", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var i IssueRecord
		if err := rows.Scan(&i.IssueID, &i.Title, &i.Priority, &i.Deadline, &i.Status, &i.Project); err != nil {
			return nil, &domain.PersistenceError{Message: "scanning issue", Err: err}
		}
		b.Issues = append(b.Issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Message: "querying issues", Err: err}
	}

	return FromBook(b)
}

// Save rewrites both tables in one transaction.
func (ss *SQLiteStorage) Save(ctx context.Context, s *store.Store) error {
	if err := ss.save(ctx, ToBook(s)); err != nil {
		return &domain.PersistenceError{Message: "saving address book", Err: err}
	}
	return nil
}

func (ss *SQLiteStorage) save(ctx context.Context, b Book) error {
	tx, err := ss.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM issues"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM projects"); err != nil {
		return err
	}

	for n, p := range b.Projects {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projects (position, project_id, name, repository, deadline,
			                      client_id, client_name, client_phone, client_email)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n, p.ProjectID, p.Name, p.Repository, p.Deadline,
			p.ClientID, p.Client.Name, p.Client.Phone, p.Client.Email); err != nil {
			return fmt.Errorf("inserting project %s: %w", p.ProjectID, err)
		}
	}
	for n, i := range b.Issues {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO issues (position, issue_id, title, priority, deadline, status, project_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n, i.IssueID, i.Title, i.Priority, i.Deadline, i.Status, i.Project); err != nil {
			return fmt.Errorf("inserting issue %s: %w", i.IssueID, err)
		}
	}
	return tx.Commit()
}

func (ss *SQLiteStorage) Close() error { return ss.db.Close() }
