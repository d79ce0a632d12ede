package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ingredient is one name/quantity pair. Quantities are opaque free text;
// no unit parsing or arithmetic happens anywhere in the store.
type Ingredient struct {
	Name     string
	Quantity string
}

// Ingredients is an ordered collection of name/quantity pairs. It marshals
// as a JSON object ({"flour":"200g",...}) and preserves pair order across
// encode and decode, which a plain Go map cannot do.
type Ingredients []Ingredient

// Get returns the quantity recorded for name and whether it is present.
func (in Ingredients) Get(name string) (string, bool) {
	for _, ing := range in {
		if ing.Name == name {
			return ing.Quantity, true
		}
	}
	return "", false
}

// Set appends the pair, or replaces the quantity when name already exists.
func (in *Ingredients) Set(name, quantity string) {
	for i, ing := range *in {
		if ing.Name == name {
			(*in)[i].Quantity = quantity
			return
		}
	}
	*in = append(*in, Ingredient{Name: name, Quantity: quantity})
}

// MarshalJSON renders the collection as a JSON object in pair order.
func (in Ingredients) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ing := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(ing.Name)
		if err != nil {
			return nil, err
		}
		qty, err := json.Marshal(ing.Quantity)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(qty)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping keys in document order.
// A JSON null leaves the collection untouched.
func (in *Ingredients) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ingredients: expected JSON object, got %v", tok)
	}

	out := Ingredients{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ingredients: non-string key %v", keyTok)
		}
		var qty string
		if err := dec.Decode(&qty); err != nil {
			return fmt.Errorf("ingredients: quantity for %q: %w", key, err)
		}
		out = append(out, Ingredient{Name: key, Quantity: qty})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*in = out
	return nil
}
