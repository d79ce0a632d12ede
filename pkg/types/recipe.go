package types

import (
	"errors"
	"strings"
)

// Recipe validation errors.
var (
	ErrEmptyTitle     = errors.New("recipe title must not be empty")
	ErrDuplicateTitle = errors.New("recipe title already exists")
)

// Recipe is the central record: a titled dish with its ingredients,
// preparation steps, and free-text labels. The title is the primary
// identifier; no surrogate ID is exposed to callers.
type Recipe struct {
	Title       string      `json:"title"`
	Ingredients Ingredients `json:"ingredients"`
	Steps       []string    `json:"steps"`
	Tags        []string    `json:"tags"`
	Servings    string      `json:"servings,omitempty"`
	SourceURL   string      `json:"source_url,omitempty"`
}

// NormalizeTitle lowercases and trims whitespace from a title. Every title
// comparison in both backends goes through this single function.
func NormalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks that the recipe carries a non-empty title after trimming.
// Returns ErrEmptyTitle otherwise.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Normalize replaces nil container fields with empty ones so that a stored
// record never carries null ingredients, steps, or tags.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = Ingredients{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

// HasTag reports whether the recipe carries the given tag. Tag order is not
// significant for matching.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
