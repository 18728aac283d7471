package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads and validates a deck file. Structural problems are caught by
// the JSON schema; correct-answer indices are range-checked afterwards and
// duplicate question ids rejected, so a bad index never reaches the shuffle
// engine's invariant.
func Load(path string) (*Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw deck JSON.
func Parse(raw []byte) (*Deck, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("deck is not valid JSON: %w", err)
	}

	schema, err := compiledDeckSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck failed schema validation: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(raw, &deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}

	seen := make(map[string]struct{}, len(deck.Questions))
	for i, q := range deck.Questions {
		if q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %q: correct_answer %d out of range for %d options",
				q.ID, q.CorrectAnswer, len(q.Options))
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return &deck, nil
}

// compiledDeckSchema compiles the deck schema once and caches it.
func compiledDeckSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://deck.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add deck schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://deck.json")
	})
	return compiledSchema, compileErr
}
