// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// CSVSource reads a catalog from a comma-separated file with a header row.
type CSVSource struct {
	fs   afero.Fs
	path string
}

// NewCSVSource creates a CSV source for path on fs.
// A nil fs means the operating system filesystem.
func NewCSVSource(fs afero.Fs, path string) *CSVSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &CSVSource{fs: fs, path: path}
}

// Name returns the file path.
func (s *CSVSource) Name() string {
	return s.path
}

// Load parses the whole file. The header names are trimmed and matched
// case-insensitively; extra columns are ignored.
func (s *CSVSource) Load(ctx context.Context) ([]Movie, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, &MalformedCatalogError{Source: s.path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	return s.parse(ctx, f)
}

func (s *CSVSource) parse(ctx context.Context, r io.Reader) ([]Movie, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedCatalogError{Source: s.path, Reason: "file is empty, header row required"}
		}
		return nil, &MalformedCatalogError{Source: s.path, Reason: "cannot read header", Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	if missing := missingColumns(cols); len(missing) > 0 {
		return nil, &MalformedCatalogError{
			Source: s.path,
			Reason: "header lacks " + strings.Join(missing, ", "),
			Err:    ErrMissingColumns,
		}
	}

	var movies []Movie
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &MalformedCatalogError{
				Source: s.path,
				Reason: fmt.Sprintf("bad row at line %d", line),
				Err:    err,
			}
		}

		movies = append(movies, Movie{
			Title:  record[cols[ColumnTitle]],
			Genres: record[cols[ColumnGenres]],
			Actors: record[cols[ColumnActors]],
			OTT:    record[cols[ColumnOTT]],
		})
	}

	return movies, nil
}
