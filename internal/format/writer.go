package format

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/mesh-intelligence/recipedrawer/pkg/types"
)

// WriteJSONL writes each recipe from the sequence as one compact JSON
// object per line.
func WriteJSONL(w io.Writer, recs iter.Seq2[types.Recipe, error]) error {
	bw := bufio.NewWriter(w)
	for rec, err := range recs {
		if err != nil {
			return err
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", rec.Title, err)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSONArray writes the sequence as a pretty-printed JSON array.
func WriteJSONArray(w io.Writer, recs iter.Seq2[types.Recipe, error]) error {
	all := []types.Recipe{}
	for rec, err := range recs {
		if err != nil {
			return err
		}
		all = append(all, rec)
	}
	out, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}

// Snapshot presentation shapes. Ingredients are rendered as an array of
// name/amount objects rather than the storage-side JSON object.
type snapshotIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type snapshotRecipe struct {
	Title       string               `json:"title"`
	Tags        []string             `json:"tags"`
	Ingredients []snapshotIngredient `json:"ingredients"`
	Steps       []string             `json:"steps"`
}

// WriteSnapshot writes the denormalized single-file shape used for
// publishing. This is a presentation-only transform; nothing reads it back.
func WriteSnapshot(w io.Writer, recipes []types.Recipe) error {
	pub := make([]snapshotRecipe, 0, len(recipes))
	for _, r := range recipes {
		ings := make([]snapshotIngredient, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			ings = append(ings, snapshotIngredient{Name: ing.Name, Amount: ing.Quantity})
		}
		pub = append(pub, snapshotRecipe{
			Title:       r.Title,
			Tags:        r.Tags,
			Ingredients: ings,
			Steps:       r.Steps,
		})
	}
	out, err := json.Marshal(pub)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}
