// SPDX-License-Identifier: MIT

// Package ingest turns colexification tuples into a core.Graph.
//
// Input is a sequence of Records (concept pair, translation count,
// contributing languages), read from CSV or produced by any other loader.
// Build accumulates duplicate pairs, applies the weight and language-count
// thresholds, and inserts the survivors.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrMalformedRecord reports a row or record that cannot be ingested.
	ErrMalformedRecord = errors.New("ingest: malformed record")

	// ErrMissingColumn reports a header without one of the required columns.
	ErrMissingColumn = errors.New("ingest: missing column")
)

// Column names of the CSV header.
const (
	ColConceptA  = "concept_a"
	ColConceptB  = "concept_b"
	ColWeight    = "weight"
	ColLanguages = "languages"
)

// LanguageSeparator joins languages inside the languages column.
const LanguageSeparator = "|"

// Record is one colexification tuple.
type Record struct {
	ConceptA  string
	ConceptB  string
	Weight    int64
	Languages []string
}

// ReadCSV parses r. The first row is a header naming the columns
// concept_a, concept_b, weight and languages in any order; extra columns are
// ignored. Rows that do not parse fail with ErrMalformedRecord and their
// line number.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRecord, err)
	}
	idx, err := columns(header)
	if err != nil {
		return nil, err
	}
	cr.FieldsPerRecord = len(header)

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

type colIndex struct {
	a, b, w, langs int
}

func columns(header []string) (colIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var idx colIndex
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColConceptA, &idx.a},
		{ColConceptB, &idx.b},
		{ColWeight, &idx.w},
		{ColLanguages, &idx.langs},
	} {
		i, ok := pos[c.name]
		if !ok {
			return idx, fmt.Errorf("%w: %q", ErrMissingColumn, c.name)
		}
		*c.dst = i
	}

	return idx, nil
}

func parseRow(row []string, idx colIndex) (Record, error) {
	w, err := strconv.ParseInt(strings.TrimSpace(row[idx.w]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("weight %q: %v", row[idx.w], err)
	}
	rec := Record{
		ConceptA:  strings.TrimSpace(row[idx.a]),
		ConceptB:  strings.TrimSpace(row[idx.b]),
		Weight:    w,
		Languages: splitLanguages(row[idx.langs]),
	}

	return rec, validate(rec)
}

func splitLanguages(s string) []string {
	var out []string
	for _, l := range strings.Split(s, LanguageSeparator) {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func validate(rec Record) error {
	switch {
	case rec.ConceptA == "" || rec.ConceptB == "":
		return errors.New("empty concept")
	case rec.ConceptA == rec.ConceptB:
		return fmt.Errorf("self pair %q", rec.ConceptA)
	case rec.Weight < 0:
		return fmt.Errorf("negative weight %d", rec.Weight)
	}
	return nil
}
