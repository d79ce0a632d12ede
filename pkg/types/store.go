package types

import (
	"errors"
	"iter"
)

// Import and format-selection errors shared by the format readers and the CLI.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrUnknownFormat  = errors.New("unknown format")
)

// GroceryLine is one ingredient-name/quantity pair emitted by grocery
// aggregation.
type GroceryLine struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// GroceryLines flattens every recipe's ingredients into a flat list of
// lines, preserving recipe order and per-recipe ingredient order. Duplicate
// names across recipes stay separate lines; nothing is merged or summed.
func GroceryLines(recipes []Recipe) []GroceryLine {
	var lines []GroceryLine
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			lines = append(lines, GroceryLine{Name: ing.Name, Quantity: ing.Quantity})
		}
	}
	return lines
}

// Store is the storage contract implemented identically by the
// line-delimited JSON file backend and the SQLite backend. Callers depend
// only on this operation set; backend selection happens by file extension.
type Store interface {
	// List returns every recipe. The file backend preserves insertion
	// order; the SQLite backend orders by title.
	List() ([]Recipe, error)

	// Get returns the recipe whose title matches case-insensitively after
	// trimming. Absence is not an error: ok is false and err is nil.
	Get(title string) (Recipe, bool, error)

	// Add inserts a recipe after normalizing missing container fields.
	// Returns ErrDuplicateTitle when a case-insensitive match already
	// exists, ErrEmptyTitle when the title is blank. The insert is not
	// durable until Save.
	Add(r Recipe) error

	// Delete removes the case-insensitive match when present and reports
	// whether a record was removed. Absence is not an error.
	Delete(title string) (bool, error)

	// Random returns up to n recipes drawn uniformly without replacement.
	// A non-empty tag restricts the pool to recipes carrying it. The count
	// is clamped silently to the pool size; an empty pool yields an empty
	// result.
	Random(n int, tag string) ([]Recipe, error)

	// Import adds each record whose title is not already present and
	// returns the count actually added. The first source error aborts the
	// import. Re-importing the same source is idempotent.
	Import(recs iter.Seq2[Recipe, error]) (int, error)

	// Export yields every recipe in store order. Each call starts a fresh
	// pass over the store.
	Export() iter.Seq2[Recipe, error]

	// Save commits pending mutations to the durable medium: the file
	// backend rewrites the whole file, the SQLite backend commits its
	// transaction. Mutations are lost if the process exits before Save.
	Save() error

	// Close releases the backing file handle or database connection.
	// Close does not Save.
	Close() error
}
