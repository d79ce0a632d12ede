// Package store selects a storage backend from the store path's extension.
package store

import (
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/recipedrawer/internal/jsonl"
	"github.com/mesh-intelligence/recipedrawer/internal/sqlite"
	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Open returns the backend for path. ".db", ".sqlite" and ".sqlite3"
// select the SQLite backend; ".jsonl" and any unrecognized extension
// select the file backend. A path with no extension gets ".jsonl"
// appended. The caller must Close the store.
func Open(path string) (types.Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return sqlite.Open(path)
	case "":
		return jsonl.Open(path + ".jsonl")
	default:
		return jsonl.Open(path)
	}
}
