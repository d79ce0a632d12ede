// Shared helpers for drawer CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mesh-intelligence/recipedrawer/internal/store"
	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Output accents.
var (
	titleColor = color.New(color.FgGreen, color.Bold)
)

// openStore resolves the store path and opens the matching backend.
// The caller must Close the returned store.
func openStore() (types.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// printJSON marshals v with indentation to w.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printRecipe writes one recipe in the human-readable layout shared by the
// show and random commands.
func printRecipe(w io.Writer, r types.Recipe) {
	titleColor.Fprintf(w, "\nTitle: %s\n", r.Title)
	fmt.Fprintln(w, "Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "- %s %s\n", ing.Quantity, ing.Name)
	}
	fmt.Fprintln(w, "Steps:")
	for i, st := range r.Steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, st)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if r.Servings != "" {
		fmt.Fprintf(w, "Servings: %s\n", r.Servings)
	}
	if r.SourceURL != "" {
		fmt.Fprintf(w, "Source: %s\n", r.SourceURL)
	}
}
