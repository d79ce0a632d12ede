package format

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Format names accepted by Reader and the CLI --fmt flags.
const (
	JSON  = "json"
	JSONL = "jsonl"
	CSV   = "csv"
)

// Reader returns the lazy import reader for the named format. The first
// parse error aborts the sequence; there is no row skipping.
func Reader(format string, r io.Reader) (iter.Seq2[types.Recipe, error], error) {
	switch format {
	case JSON:
		return ReadJSONArray(r), nil
	case JSONL:
		return ReadJSONL(r), nil
	case CSV:
		return ReadCSV(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
}

// ReadJSONArray yields recipes from a JSON array document.
func ReadJSONArray(r io.Reader) iter.Seq2[types.Recipe, error] {
	return func(yield func(types.Recipe, error) bool) {
		var recs []types.Recipe
		if err := json.NewDecoder(r).Decode(&recs); err != nil {
			yield(types.Recipe{}, fmt.Errorf("%w: %v", types.ErrMalformedInput, err))
			return
		}
		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// ReadJSONL yields one recipe per non-blank line.
func ReadJSONL(r io.Reader) iter.Seq2[types.Recipe, error] {
	return func(yield func(types.Recipe, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var rec types.Recipe
			if err := json.Unmarshal(line, &rec); err != nil {
				yield(types.Recipe{}, fmt.Errorf("%w: line %d: %v", types.ErrMalformedInput, lineNo, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(types.Recipe{}, fmt.Errorf("reading input: %w", err))
		}
	}
}

// ReadCSV yields recipes from a CSV document. The header must name at
// least title, ingredients and steps (case-insensitive); tags, servings
// and source_url columns are optional.
func ReadCSV(r io.Reader) iter.Seq2[types.Recipe, error] {
	return func(yield func(types.Recipe, error) bool) {
		cr := csv.NewReader(r)
		header, err := cr.Read()
		if err != nil {
			yield(types.Recipe{}, fmt.Errorf("%w: reading CSV header: %v", types.ErrMalformedInput, err))
			return
		}
		cols := make(map[string]int, len(header))
		for i, name := range header {
			cols[strings.ToLower(strings.TrimSpace(name))] = i
		}
		for _, required := range []string{"title", "ingredients", "steps"} {
			if _, ok := cols[required]; !ok {
				yield(types.Recipe{}, fmt.Errorf("%w: CSV header missing %q column", types.ErrMalformedInput, required))
				return
			}
		}
		cell := func(row []string, name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rowNo := 1
		for {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			rowNo++
			if err != nil {
				yield(types.Recipe{}, fmt.Errorf("%w: CSV row %d: %v", types.ErrMalformedInput, rowNo, err))
				return
			}
			ings, err := ParseIngredients(cell(row, "ingredients"))
			if err != nil {
				yield(types.Recipe{}, fmt.Errorf("CSV row %d: %w", rowNo, err))
				return
			}
			rec := types.Recipe{
				Title:       strings.TrimSpace(cell(row, "title")),
				Ingredients: ings,
				Steps:       ParseSteps(cell(row, "steps")),
				Tags:        ParseTags(cell(row, "tags")),
				Servings:    strings.TrimSpace(cell(row, "servings")),
				SourceURL:   strings.TrimSpace(cell(row, "source_url")),
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
