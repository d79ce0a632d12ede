// Package jsonl implements the line-delimited JSON storage backend. The
// whole file is loaded into memory on open and rewritten on Save; the file
// is the unit of atomicity and the dataset must fit in memory.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store holds the full working set in memory, in insertion order.
type Store struct {
	path    string
	recipes []types.Recipe
}

// Open loads the file at path. A missing file yields an empty store. Blank
// lines are skipped; a line that does not parse as a recipe fails the whole
// load.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var r types.Recipe
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		s.recipes = append(s.recipes, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return s, nil
}

// List returns all recipes in insertion order.
func (s *Store) List() ([]types.Recipe, error) {
	out := make([]types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Get returns the recipe matching title case-insensitively after trimming.
func (s *Store) Get(title string) (types.Recipe, bool, error) {
	want := types.NormalizeTitle(title)
	for _, r := range s.recipes {
		if types.NormalizeTitle(r.Title) == want {
			return r, true, nil
		}
	}
	return types.Recipe{}, false, nil
}

// Add appends a recipe to the working set after normalization.
func (s *Store) Add(r types.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, ok, _ := s.Get(r.Title); ok {
		return fmt.Errorf("%w: %q", types.ErrDuplicateTitle, r.Title)
	}
	r.Normalize()
	s.recipes = append(s.recipes, r)
	return nil
}

// Delete removes the case-insensitive match and reports whether a record
// was removed.
func (s *Store) Delete(title string) (bool, error) {
	want := types.NormalizeTitle(title)
	kept := s.recipes[:0]
	for _, r := range s.recipes {
		if types.NormalizeTitle(r.Title) != want {
			kept = append(kept, r)
		}
	}
	removed := len(kept) < len(s.recipes)
	s.recipes = kept
	return removed, nil
}

// Random draws up to n recipes uniformly without replacement, restricted to
// recipes carrying tag when it is non-empty.
func (s *Store) Random(n int, tag string) ([]types.Recipe, error) {
	pool := make([]types.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if tag == "" || r.HasTag(tag) {
			pool = append(pool, r)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}
	return pool[:n], nil
}

// Import adds every record whose title is not already present. The first
// source error aborts and nothing further is consumed.
func (s *Store) Import(recs iter.Seq2[types.Recipe, error]) (int, error) {
	added := 0
	for r, err := range recs {
		if err != nil {
			return added, err
		}
		if _, ok, _ := s.Get(r.Title); ok {
			continue
		}
		if err := s.Add(r); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Export yields every recipe in insertion order. Each call starts a fresh
// pass.
func (s *Store) Export() iter.Seq2[types.Recipe, error] {
	return func(yield func(types.Recipe, error) bool) {
		for _, r := range s.recipes {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Save rewrites the whole file with every in-memory recipe, one compact
// JSON object per line, using the temp-file, fsync, rename pattern.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".recipes-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, r := range s.recipes {
		line, err := json.Marshal(r)
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("encoding %q: %w", r.Title, err)
		}
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close releases nothing; the file is only held open during Open and Save.
func (s *Store) Close() error {
	return nil
}
