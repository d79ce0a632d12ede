package jsonl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

func testRecipe(title string, tags ...string) types.Recipe {
	return types.Recipe{
		Title: title,
		Ingredients: types.Ingredients{
			{Name: "bread", Quantity: "2 slices"},
		},
		Steps: []string{"Toast it"},
		Tags:  tags,
	}
}

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestOpenMissingFile(t *testing.T) {
	s, _ := openTemp(t)

	recipes, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestAddGetCaseInsensitive(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("Toast", "breakfast")))

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "exact match", query: "Toast", found: true},
		{name: "upper case", query: "TOAST", found: true},
		{name: "lower case", query: "toast", found: true},
		{name: "surrounding whitespace", query: "  toast  ", found: true},
		{name: "absent title", query: "Pancakes", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok, err := s.Get(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, "Toast", rec.Title)
			}
		})
	}
}

func TestAddDuplicateTitle(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("Toast")))

	tests := []struct {
		name  string
		title string
	}{
		{name: "same title", title: "Toast"},
		{name: "different case", title: "TOAST"},
		{name: "surrounding whitespace", title: " toast "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Add(testRecipe(tt.title))
			assert.ErrorIs(t, err, types.ErrDuplicateTitle)
		})
	}
}

func TestAddEmptyTitle(t *testing.T) {
	s, _ := openTemp(t)
	assert.ErrorIs(t, s.Add(types.Recipe{Title: "  "}), types.ErrEmptyTitle)
}

func TestAddNormalizesContainers(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(types.Recipe{Title: "Bare"}))

	rec, ok, err := s.Get("bare")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotNil(t, rec.Ingredients)
	assert.NotNil(t, rec.Steps)
	assert.NotNil(t, rec.Tags)
}

func TestDelete(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("Toast")))

	removed, err := s.Delete("TOAST")
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok, err := s.Get("Toast")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again reports false without error.
	removed, err = s.Delete("toast")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteAbsentLeavesStoreUnchanged(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("Toast")))

	removed, err := s.Delete("Pancakes")
	require.NoError(t, err)
	assert.False(t, removed)

	recipes, err := s.List()
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s, _ := openTemp(t)
	for _, title := range []string{"Zebra Cake", "Apple Pie", "Mango Salad"} {
		require.NoError(t, s.Add(testRecipe(title)))
	}

	recipes, err := s.List()
	require.NoError(t, err)
	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}
	assert.Equal(t, []string{"Zebra Cake", "Apple Pie", "Mango Salad"}, titles)
}

func TestRandom(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("A", "veg")))
	require.NoError(t, s.Add(testRecipe("B", "veg")))
	require.NoError(t, s.Add(testRecipe("C", "meat")))

	t.Run("clamps when n exceeds pool", func(t *testing.T) {
		picks, err := s.Random(10, "")
		require.NoError(t, err)
		require.Len(t, picks, 3)

		seen := map[string]bool{}
		for _, r := range picks {
			assert.False(t, seen[r.Title], "recipe drawn twice")
			seen[r.Title] = true
		}
	})

	t.Run("tag restricts the pool", func(t *testing.T) {
		picks, err := s.Random(10, "veg")
		require.NoError(t, err)
		assert.Len(t, picks, 2)
		for _, r := range picks {
			assert.True(t, r.HasTag("veg"))
		}
	})

	t.Run("unknown tag yields empty", func(t *testing.T) {
		picks, err := s.Random(5, "dessert")
		require.NoError(t, err)
		assert.Empty(t, picks)
	})

	t.Run("n smaller than pool", func(t *testing.T) {
		picks, err := s.Random(2, "")
		require.NoError(t, err)
		assert.Len(t, picks, 2)
	})
}

func TestRandomEmptyStore(t *testing.T) {
	s, _ := openTemp(t)
	picks, err := s.Random(5, "")
	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestImportIdempotent(t *testing.T) {
	s, _ := openTemp(t)
	source := []types.Recipe{testRecipe("A"), testRecipe("B"), testRecipe("C")}
	seq := func(yield func(types.Recipe, error) bool) {
		for _, r := range source {
			if !yield(r, nil) {
				return
			}
		}
	}

	added, err := s.Import(seq)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = s.Import(seq)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	recipes, err := s.List()
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}

func TestImportAbortsOnSourceError(t *testing.T) {
	s, _ := openTemp(t)
	seq := func(yield func(types.Recipe, error) bool) {
		if !yield(testRecipe("A"), nil) {
			return
		}
		yield(types.Recipe{}, types.ErrMalformedInput)
	}

	added, err := s.Import(seq)
	assert.ErrorIs(t, err, types.ErrMalformedInput)
	assert.Equal(t, 1, added)
}

func TestExportRestartable(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Add(testRecipe("A")))
	require.NoError(t, s.Add(testRecipe("B")))

	for range 2 {
		var titles []string
		for r, err := range s.Export() {
			require.NoError(t, err)
			titles = append(titles, r.Title)
		}
		assert.Equal(t, []string{"A", "B"}, titles)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s, path := openTemp(t)
	rec := types.Recipe{
		Title: "Spaghetti Aglio e Olio",
		Ingredients: types.Ingredients{
			{Name: "spaghetti", Quantity: "200g"},
			{Name: "garlic", Quantity: "3 cloves"},
		},
		Steps:     []string{"Boil pasta", "Saute garlic", "Toss together"},
		Tags:      []string{"italian", "vegetarian"},
		Servings:  "2",
		SourceURL: "https://example.com/aglio",
	}
	require.NoError(t, s.Add(rec))
	require.NoError(t, s.Save())

	reopened, err := Open(path)
	require.NoError(t, err)

	got, ok, err := reopened.Get("spaghetti aglio e olio")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestUnsavedMutationsNotDurable(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Add(testRecipe("Toast")))
	// No Save.

	reopened, err := Open(path)
	require.NoError(t, err)
	recipes, err := reopened.List()
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestOpenSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	content := `{"title":"A","ingredients":{},"steps":[],"tags":[]}

{"title":"B","ingredients":{},"steps":[],"tags":[]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	recipes, err := s.List()
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestOpenFailsOnMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	content := `{"title":"A","ingredients":{},"steps":[],"tags":[]}
not json at all
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
