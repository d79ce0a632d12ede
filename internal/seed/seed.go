// Package seed provides the built-in sample recipes used by drawer init.
package seed

import (
	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// Sample returns the built-in sample recipes.
func Sample() []types.Recipe {
	return []types.Recipe{
		{
			Title: "Spaghetti Aglio e Olio",
			Ingredients: types.Ingredients{
				{Name: "spaghetti", Quantity: "200g"},
				{Name: "garlic", Quantity: "3 cloves"},
				{Name: "olive oil", Quantity: "2 tbsp"},
				{Name: "chili flakes", Quantity: "1 tsp"},
			},
			Steps: []string{"Boil pasta", "Saute garlic", "Toss together"},
			Tags:  []string{"italian", "vegetarian"},
		},
		{
			Title: "Quick Pancakes",
			Ingredients: types.Ingredients{
				{Name: "flour", Quantity: "200g"},
				{Name: "milk", Quantity: "250ml"},
				{Name: "egg", Quantity: "1"},
				{Name: "baking powder", Quantity: "1 tsp"},
				{Name: "sugar", Quantity: "2 tbsp"},
			},
			Steps: []string{"Mix ingredients", "Cook on griddle"},
			Tags:  []string{"breakfast", "vegetarian"},
		},
		{
			Title: "Chicken Salad",
			Ingredients: types.Ingredients{
				{Name: "chicken breast", Quantity: "200g"},
				{Name: "lettuce", Quantity: "1 head"},
				{Name: "tomato", Quantity: "2"},
				{Name: "cucumber", Quantity: "1"},
				{Name: "olive oil", Quantity: "1 tbsp"},
			},
			Steps: []string{"Cook chicken", "Chop veggies", "Toss together", "Dress salad"},
			Tags:  []string{"lunch", "gluten-free"},
		},
	}
}

// Apply refreshes the sample recipes in the store: an existing recipe with
// a sample's title is replaced, other recipes are left alone. The caller
// is responsible for Save.
func Apply(s types.Store) error {
	for _, r := range Sample() {
		if _, err := s.Delete(r.Title); err != nil {
			return err
		}
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}
