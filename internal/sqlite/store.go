// Package sqlite implements the SQL-backed storage backend. Recipes live in
// a single table; every mutation is staged inside one transaction that Save
// commits, so nothing is durable before Save.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

const selectColumns = "title, steps_json, ingredients_json, tags_json, servings, source_url"

// Store wraps one SQLite connection. Reads and writes go through the
// current transaction so staged mutations are visible before commit.
type Store struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

// Open connects to the database at path, creates the recipes table if
// absent, and begins the first transaction.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	tx, err := db.Beginx()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &Store{db: db, tx: tx}, nil
}

// recipeRow mirrors one recipes table row.
type recipeRow struct {
	Title           string         `db:"title"`
	StepsJSON       string         `db:"steps_json"`
	IngredientsJSON string         `db:"ingredients_json"`
	TagsJSON        string         `db:"tags_json"`
	Servings        sql.NullString `db:"servings"`
	SourceURL       sql.NullString `db:"source_url"`
}

// recipe decodes the JSON columns back into the Recipe shape.
func (row recipeRow) recipe() (types.Recipe, error) {
	r := types.Recipe{Title: row.Title}
	if err := json.Unmarshal([]byte(row.StepsJSON), &r.Steps); err != nil {
		return r, fmt.Errorf("decoding steps for %q: %w", row.Title, err)
	}
	if err := json.Unmarshal([]byte(row.IngredientsJSON), &r.Ingredients); err != nil {
		return r, fmt.Errorf("decoding ingredients for %q: %w", row.Title, err)
	}
	if err := json.Unmarshal([]byte(row.TagsJSON), &r.Tags); err != nil {
		return r, fmt.Errorf("decoding tags for %q: %w", row.Title, err)
	}
	if row.Servings.Valid {
		r.Servings = row.Servings.String
	}
	if row.SourceURL.Valid {
		r.SourceURL = row.SourceURL.String
	}
	r.Normalize()
	return r, nil
}

// nullable maps empty optional fields to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// List returns all recipes ordered by title.
func (s *Store) List() ([]types.Recipe, error) {
	var rows []recipeRow
	if err := s.tx.Select(&rows, "SELECT "+selectColumns+" FROM recipes ORDER BY title"); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	out := make([]types.Recipe, 0, len(rows))
	for _, row := range rows {
		r, err := row.recipe()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Get returns the recipe matching title case-insensitively after trimming.
func (s *Store) Get(title string) (types.Recipe, bool, error) {
	var row recipeRow
	err := s.tx.Get(&row,
		"SELECT "+selectColumns+" FROM recipes WHERE lower(trim(title)) = ?",
		types.NormalizeTitle(title),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Recipe{}, false, nil
	}
	if err != nil {
		return types.Recipe{}, false, fmt.Errorf("getting recipe %q: %w", title, err)
	}
	r, err := row.recipe()
	if err != nil {
		return types.Recipe{}, false, err
	}
	return r, true, nil
}

// Add stages an insert in the current transaction.
func (s *Store) Add(r types.Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, ok, err := s.Get(r.Title); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: %q", types.ErrDuplicateTitle, r.Title)
	}
	r.Normalize()

	steps, err := json.Marshal(r.Steps)
	if err != nil {
		return fmt.Errorf("encoding steps for %q: %w", r.Title, err)
	}
	ings, err := json.Marshal(r.Ingredients)
	if err != nil {
		return fmt.Errorf("encoding ingredients for %q: %w", r.Title, err)
	}
	tags, err := json.Marshal(r.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags for %q: %w", r.Title, err)
	}

	_, err = s.tx.Exec(
		"INSERT INTO recipes (title, steps_json, ingredients_json, tags_json, servings, source_url) VALUES (?, ?, ?, ?, ?, ?)",
		r.Title, string(steps), string(ings), string(tags),
		nullable(r.Servings), nullable(r.SourceURL),
	)
	if err != nil {
		return fmt.Errorf("inserting recipe %q: %w", r.Title, err)
	}
	return nil
}

// Delete stages a delete and reports whether a row matched.
func (s *Store) Delete(title string) (bool, error) {
	res, err := s.tx.Exec(
		"DELETE FROM recipes WHERE lower(trim(title)) = ?",
		types.NormalizeTitle(title),
	)
	if err != nil {
		return false, fmt.Errorf("deleting recipe %q: %w", title, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting recipe %q: %w", title, err)
	}
	return n > 0, nil
}

// Random draws up to n recipes uniformly without replacement. Tag filtering
// happens in memory: tags are opaque JSON blobs to the schema.
func (s *Store) Random(n int, tag string) ([]types.Recipe, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	pool := all[:0]
	for _, r := range all {
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
// source error aborts; staged rows remain uncommitted until Save.
func (s *Store) Import(recs iter.Seq2[types.Recipe, error]) (int, error) {
	added := 0
	for r, err := range recs {
		if err != nil {
			return added, err
		}
		_, ok, err := s.Get(r.Title)
		if err != nil {
			return added, err
		}
		if ok {
			continue
		}
		if err := s.Add(r); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Export yields every recipe ordered by title. Each call runs a fresh query.
func (s *Store) Export() iter.Seq2[types.Recipe, error] {
	return func(yield func(types.Recipe, error) bool) {
		rows, err := s.tx.Queryx("SELECT " + selectColumns + " FROM recipes ORDER BY title")
		if err != nil {
			yield(types.Recipe{}, fmt.Errorf("exporting recipes: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var row recipeRow
			if err := rows.StructScan(&row); err != nil {
				yield(types.Recipe{}, fmt.Errorf("scanning recipe: %w", err))
				return
			}
			r, err := row.recipe()
			if err != nil {
				yield(types.Recipe{}, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(types.Recipe{}, fmt.Errorf("exporting recipes: %w", err))
		}
	}
}

// Save commits the current transaction and begins the next one.
func (s *Store) Save() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	s.tx = tx
	return nil
}

// Close rolls back any uncommitted mutations and closes the connection.
func (s *Store) Close() error {
	if s.tx != nil {
		// Discard staged writes that were never saved.
		_ = s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}
