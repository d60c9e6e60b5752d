// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

// DefaultTable is the table SQLiteSource reads when none is configured.
const DefaultTable = "movies"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads a catalog from a table in a SQLite database.
// Rows are returned in rowid order so the catalog order is stable.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource creates a source reading table from the database at path.
func NewSQLiteSource(path, table string) *SQLiteSource {
	if table == "" {
		table = DefaultTable
	}
	return &SQLiteSource{path: path, table: table}
}

// Name returns "path#table".
func (s *SQLiteSource) Name() string {
	return s.path + "#" + s.table
}

// Load opens the database read-only and scans every row.
func (s *SQLiteSource) Load(ctx context.Context) ([]Movie, error) {
	if !identPattern.MatchString(s.table) {
		return nil, &MalformedCatalogError{Source: s.Name(), Reason: fmt.Sprintf("invalid table name %q", s.table)}
	}

	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, &MalformedCatalogError{Source: s.Name(), Reason: "cannot open database", Err: err}
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	if err := s.checkColumns(ctx, db); err != nil {
		return nil, err
	}

	//nolint:gosec // table name validated against identPattern above
	query := fmt.Sprintf(`SELECT title, genres, actors, ott FROM %s ORDER BY rowid`, s.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &MalformedCatalogError{Source: s.Name(), Reason: "query failed", Err: err}
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var title, genres, actors, ott sql.NullString
		if err := rows.Scan(&title, &genres, &actors, &ott); err != nil {
			return nil, &MalformedCatalogError{Source: s.Name(), Reason: "bad row", Err: err}
		}
		movies = append(movies, Movie{
			Title:  title.String,
			Genres: genres.String,
			Actors: actors.String,
			OTT:    ott.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &MalformedCatalogError{Source: s.Name(), Reason: "row iteration failed", Err: err}
	}

	return movies, nil
}

// checkColumns verifies the table exists and has every required column.
func (s *SQLiteSource) checkColumns(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, s.table))
	if err != nil {
		return &MalformedCatalogError{Source: s.Name(), Reason: "cannot inspect table", Err: err}
	}
	defer rows.Close()

	present := make(map[string]int)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return &MalformedCatalogError{Source: s.Name(), Reason: "cannot inspect table", Err: err}
		}
		present[strings.ToLower(name)] = cid
	}
	if err := rows.Err(); err != nil {
		return &MalformedCatalogError{Source: s.Name(), Reason: "cannot inspect table", Err: err}
	}

	if len(present) == 0 {
		return &MalformedCatalogError{Source: s.Name(), Reason: "table does not exist", Err: ErrMissingColumns}
	}
	if missing := missingColumns(present); len(missing) > 0 {
		return &MalformedCatalogError{
			Source: s.Name(),
			Reason: "table lacks " + strings.Join(missing, ", "),
			Err:    ErrMissingColumns,
		}
	}
	return nil
}
