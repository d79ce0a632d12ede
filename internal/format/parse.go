// Package format reads and writes the bulk import/export shapes: JSON
// arrays, line-delimited JSON, CSV, and the denormalized snapshot.
package format

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// ParseIngredients parses a "name:qty,name2:qty2" cell into ordered pairs.
// An entry without a colon is malformed; empty input yields an empty
// collection.
func ParseIngredients(cell string) (types.Ingredients, error) {
	out := types.Ingredients{}
	for _, item := range strings.Split(cell, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, qty, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("%w: ingredient %q lacks a name:quantity separator", types.ErrMalformedInput, item)
		}
		out.Set(strings.TrimSpace(name), strings.TrimSpace(qty))
	}
	return out, nil
}

// ParseSteps splits a pipe-separated steps cell, dropping empty entries.
func ParseSteps(cell string) []string {
	out := []string{}
	for _, s := range strings.Split(cell, "|") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseTags splits a comma-separated tags cell, dropping empty entries.
func ParseTags(cell string) []string {
	out := []string{}
	for _, s := range strings.Split(cell, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
