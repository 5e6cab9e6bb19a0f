// Package sqlite exports the abbreviation dictionary into a SQLite database.
// The JSON document stays the source of truth; an export is a read-only
// snapshot that other tools can query with SQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/abbr/internal/storage"
)

// Stats counts what an export wrote.
type Stats struct {
	Entries int
	Items   int
}

// Export writes st into a fresh SQLite database at dbPath, replacing any
// existing file. The database is built in a temporary file next to dbPath
// and renamed over it, so a failed export keeps the previous snapshot.
// Items keep their 1-based position so that ids shown by the CLI match the
// position column.
func Export(ctx context.Context, st *storage.Storage, dbPath string) (Stats, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dbPath), ".abbr-*.db.tmp")
	if err != nil {
		return Stats{}, fmt.Errorf("creating temp database: %w", err)
	}
	tmpName := tmp.Name()
	err = tmp.Chmod(0o644)
	if err = multierr.Append(err, tmp.Close()); err != nil {
		return Stats{}, multierr.Append(fmt.Errorf("preparing temp database: %w", err), removeTemp(tmpName))
	}

	stats, err := exportTo(ctx, st, tmpName)
	if err != nil {
		return Stats{}, multierr.Append(err, removeTemp(tmpName))
	}
	if err := os.Rename(tmpName, dbPath); err != nil {
		return Stats{}, multierr.Append(fmt.Errorf("replacing %s: %w", dbPath, err), removeTemp(tmpName))
	}

	zap.L().Debug("exported storage",
		zap.String("path", dbPath),
		zap.Int("entries", stats.Entries),
		zap.Int("items", stats.Items),
	)
	return stats, nil
}

// exportTo fills the empty database file at dbPath.
func exportTo(ctx context.Context, st *storage.Storage, dbPath string) (stats Stats, err error) {
	db, err := open(ctx, dbPath)
	if err != nil {
		return Stats{}, err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return Stats{}, fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return Stats{}, fmt.Errorf("creating index: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range st.Entries() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO entries (acronym, item_count) VALUES (?, ?)",
			entry.Acronym, entry.Len(),
		); err != nil {
			return Stats{}, fmt.Errorf("inserting entry %s: %w", entry.Acronym, err)
		}
		for i, it := range entry.Items {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO items (item_id, acronym, position, name, description) VALUES (?, ?, ?, ?, ?)",
				newItemID(), entry.Acronym, i+1, it.Name, it.Description,
			); err != nil {
				return Stats{}, fmt.Errorf("inserting item %s %d: %w", entry.Acronym, i+1, err)
			}
			stats.Items++
		}
		stats.Entries++
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("committing export: %w", err)
	}
	return stats, nil
}

// removeTemp deletes an abandoned temp database and its rollback journal.
func removeTemp(name string) error {
	var err error
	for _, p := range []string{name, name + "-journal"} {
		if rerr := os.Remove(p); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			err = multierr.Append(err, rerr)
		}
	}
	return err
}

// ReadBack rebuilds a dictionary from an export at dbPath.
func ReadBack(ctx context.Context, dbPath string) (st *storage.Storage, err error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}

	db, err := open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	rows, err := db.QueryContext(ctx,
		"SELECT acronym, name, description FROM items ORDER BY acronym, position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	st = storage.New()
	for rows.Next() {
		var (
			acronym, name string
			description   sql.NullString
		)
		if err := rows.Scan(&acronym, &name, &description); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if err := st.Put(acronym, name, description.String); err != nil {
			return nil, fmt.Errorf("restoring %s: %w", acronym, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return st, nil
}

func open(ctx context.Context, dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, multierr.Append(fmt.Errorf("opening %s: %w", dbPath, err), db.Close())
	}
	return db, nil
}

// newItemID returns a time-ordered UUID, falling back to a random one.
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
