// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestSQLiteSource_Load(t *testing.T) {
	t.Parallel()

	path := newTestDB(t,
		`CREATE TABLE movies (id INTEGER PRIMARY KEY, title TEXT, genres TEXT, actors TEXT, ott TEXT)`,
		`INSERT INTO movies (title, genres, actors, ott) VALUES ('Heat', 'Crime|Drama', 'Al Pacino', 'Hulu')`,
		`INSERT INTO movies (title, genres, actors, ott) VALUES ('Up', 'Animation', NULL, 'Disney+')`,
	)

	src := NewSQLiteSource(path, "")
	assert.Equal(t, path+"#movies", src.Name())

	movies, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "Heat", movies[0].Title)
	assert.Equal(t, "Crime|Drama", movies[0].Genres)
	assert.Equal(t, "Up", movies[1].Title)
	assert.Empty(t, movies[1].Actors, "NULL becomes empty string")
}

func TestSQLiteSource_Malformed(t *testing.T) {
	t.Parallel()

	path := newTestDB(t,
		`CREATE TABLE films (title TEXT, genres TEXT, actors TEXT)`,
	)

	tests := []struct {
		name  string
		table string
	}{
		{"missing column", "films"},
		{"missing table", "movies"},
		{"invalid table name", "movies; DROP TABLE films"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSQLiteSource(path, tt.table).Load(context.Background())
			require.Error(t, err)
			assert.True(t, IsMalformed(err), "got %v", err)
		})
	}
}
