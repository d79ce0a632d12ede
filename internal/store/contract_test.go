// Cross-backend contract tests: both backends must behave identically
// through the Store interface, and an export from one must import cleanly
// into a fresh store of either kind.
package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// backendFiles names one store file per backend kind.
var backendFiles = map[string]string{
	"jsonl":  "recipes.jsonl",
	"sqlite": "recipes.db",
}

func contractRecipes() []types.Recipe {
	return []types.Recipe{
		{
			Title: "Toast",
			Ingredients: types.Ingredients{
				{Name: "bread", Quantity: "2 slices"},
			},
			Steps: []string{"Toast it"},
			Tags:  []string{"breakfast"},
		},
		{
			Title: "Quick Pancakes",
			Ingredients: types.Ingredients{
				{Name: "flour", Quantity: "200g"},
				{Name: "milk", Quantity: "250ml"},
			},
			Steps:    []string{"Mix ingredients", "Cook on griddle"},
			Tags:     []string{"breakfast", "vegetarian"},
			Servings: "4",
		},
	}
}

func TestContractAddGetDelete(t *testing.T) {
	for kind, file := range backendFiles {
		t.Run(kind, func(t *testing.T) {
			s, err := Open(filepath.Join(t.TempDir(), file))
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Add(contractRecipes()[0]))

			// Get with a different case returns the same record.
			rec, ok, err := s.Get("TOAST")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "Toast", rec.Title)

			removed, err := s.Delete("toast")
			require.NoError(t, err)
			assert.True(t, removed)

			recipes, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, recipes)
		})
	}
}

func TestContractExportImportRoundTrip(t *testing.T) {
	for srcKind, srcFile := range backendFiles {
		for dstKind, dstFile := range backendFiles {
			t.Run(srcKind+"_to_"+dstKind, func(t *testing.T) {
				src, err := Open(filepath.Join(t.TempDir(), srcFile))
				require.NoError(t, err)
				defer src.Close()
				for _, r := range contractRecipes() {
					require.NoError(t, src.Add(r))
				}

				dst, err := Open(filepath.Join(t.TempDir(), dstFile))
				require.NoError(t, err)
				defer dst.Close()

				added, err := dst.Import(src.Export())
				require.NoError(t, err)
				assert.Equal(t, len(contractRecipes()), added)

				// Field-for-field reproduction, regardless of each
				// backend's listing order.
				for _, want := range contractRecipes() {
					want.Normalize()
					got, ok, err := dst.Get(want.Title)
					require.NoError(t, err)
					require.True(t, ok, "missing %q after round trip", want.Title)
					assert.Equal(t, want, got)
				}
			})
		}
	}
}
