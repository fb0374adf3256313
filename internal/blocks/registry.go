package blocks

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-landing/internal/validation"
)

var (
	ErrBlockTypeRequired   = errors.New("blocks: block type required")
	ErrBlockTypeUnknown    = errors.New("blocks: unknown block type")
	ErrBlockPayloadInvalid = errors.New("blocks: payload does not match type schema")
	ErrSchemaInvalid       = errors.New("blocks: type schema invalid")
)

// Registry stores the payload schema for each known block type and validates
// block writes against it before they reach normalization or publish.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]map[string]any
	strict  bool
}

// NewRegistry constructs an empty registry. Unknown types pass validation
// unless strict mode is enabled; a registry seeded through DefaultRegistry
// covers the platform's built-in types.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]map[string]any)}
}

// SetStrict toggles rejection of block types with no registered schema.
func (r *Registry) SetStrict(strict bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strict = strict
}

// Register records the payload schema for a block type. The schema must be a
// compilable JSON Schema document.
func (r *Registry) Register(blockType string, schema map[string]any) error {
	blockType = strings.TrimSpace(blockType)
	if blockType == "" {
		return ErrBlockTypeRequired
	}
	if err := validation.ValidateSchema(schema); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, blockType, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[blockType] = cloneMap(schema)
	return nil
}

// Types returns the registered block type names.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		out = append(out, name)
	}
	return out
}

// Validate checks a single block: the type tag must be present, and when a
// schema is registered for it the payload must match.
func (r *Registry) Validate(block Block) error {
	blockType := strings.TrimSpace(block.Type)
	if blockType == "" {
		return ErrBlockTypeRequired
	}

	r.mu.RLock()
	schema, known := r.schemas[blockType]
	strict := r.strict
	r.mu.RUnlock()

	if !known {
		if strict {
			return fmt.Errorf("%w: %s", ErrBlockTypeUnknown, blockType)
		}
		return nil
	}

	if err := validation.ValidatePayload(schema, block.Data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBlockPayloadInvalid, blockType, err)
	}
	return nil
}

// ValidateAll validates every block in a replacement array, reporting the
// first failure with its position.
func (r *Registry) ValidateAll(input []Block) error {
	for i, block := range input {
		if err := r.Validate(block); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// DefaultRegistry returns a registry seeded with the built-in block types.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for blockType, schema := range builtinSchemas() {
		// Built-in schemas are static; a registration failure here is a
		// programming error.
		if err := registry.Register(blockType, schema); err != nil {
			panic(err)
		}
	}
	return registry
}

func builtinSchemas() map[string]map[string]any {
	objectWithItems := func(itemProps map[string]any, required []any) map[string]any {
		item := map[string]any{
			"type":       "object",
			"properties": itemProps,
		}
		if len(required) > 0 {
			item["required"] = required
		}
		return item
	}

	return map[string]map[string]any{
		"hero-carousel-slide": {
			"type": "object",
			"properties": map[string]any{
				"background_url":    map[string]any{"type": "string"},
				"background_type":   map[string]any{"type": "string"},
				"original_filename": map[string]any{"type": "string"},
				"poster_url":        map[string]any{"type": "string"},
				"headline":          map[string]any{"type": "string"},
				"subheadline":       map[string]any{"type": "string"},
				"content":           map[string]any{"type": "string"},
			},
		},
		"accordion": {
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": objectWithItems(map[string]any{
						"title":   map[string]any{"type": "string"},
						"content": map[string]any{"type": "string"},
					}, []any{"title"}),
				},
			},
			"required": []any{"items"},
		},
		"pricing": {
			"type": "object",
			"properties": map[string]any{
				"currency_symbol": map[string]any{"type": "string"},
				"plans": map[string]any{
					"type": "array",
					"items": objectWithItems(map[string]any{
						"title":            map[string]any{"type": "string"},
						"content":          map[string]any{"type": "string"},
						"original_price":   map[string]any{"type": []any{"number", "string"}},
						"discounted_price": map[string]any{"type": []any{"number", "string"}},
						"cta_text":         map[string]any{"type": "string"},
						"cta_url":          map[string]any{"type": "string"},
					}, nil),
				},
			},
		},
		"steps": {
			"type": "object",
			"properties": map[string]any{
				"steps": map[string]any{
					"type": "array",
					"items": objectWithItems(map[string]any{
						"background_url":    map[string]any{"type": "string"},
						"original_filename": map[string]any{"type": "string"},
						"text_content":      map[string]any{"type": "string"},
						"text_position":     map[string]any{"type": "string"},
					}, nil),
				},
			},
			"required": []any{"steps"},
		},
		"testimonials": {
			"type": "object",
			"properties": map[string]any{
				"heading":          map[string]any{"type": "string"},
				"background_color": map[string]any{"type": "string"},
				"autoplay":         map[string]any{"type": "boolean"},
				"testimonials": map[string]any{
					"type": "array",
					"items": objectWithItems(map[string]any{
						"image_url": map[string]any{"type": "string"},
						"name":      map[string]any{"type": "string"},
						"rating":    map[string]any{"type": "number"},
						"content":   map[string]any{"type": "string"},
						"benefits":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					}, nil),
				},
			},
			"required": []any{"testimonials"},
		},
		"static-banner": {
			"type": "object",
			"properties": map[string]any{
				"background_url":    map[string]any{"type": "string"},
				"original_filename": map[string]any{"type": "string"},
				"headline":          map[string]any{"type": "string"},
				"content":           map[string]any{"type": "string"},
			},
		},
		"split": {
			"type": "object",
			"properties": map[string]any{
				"layout":    map[string]any{"enum": []any{"image-left", "image-right"}},
				"image_url": map[string]any{"type": "string"},
				"headline":  map[string]any{"type": "string"},
				"content":   map[string]any{"type": "string"},
				"cta_text":  map[string]any{"type": "string"},
				"cta_url":   map[string]any{"type": "string"},
			},
		},
		"card": {
			"type": "object",
			"properties": map[string]any{
				"layout": map[string]any{"enum": []any{"grid-2", "grid-3", "grid-4", "carousel"}},
				"cards": map[string]any{
					"type": "array",
					"items": objectWithItems(map[string]any{
						"image_url": map[string]any{"type": "string"},
						"title":     map[string]any{"type": "string"},
						"content":   map[string]any{"type": "string"},
						"rating":    map[string]any{"type": "number"},
						"badge":     map[string]any{"type": "string"},
						"author":    map[string]any{"type": "string"},
					}, nil),
				},
			},
		},
		"table": {
			"type": "object",
			"properties": map[string]any{
				"header_image_url":  map[string]any{"type": "string"},
				"original_filename": map[string]any{"type": "string"},
				"rows":              map[string]any{"type": "number"},
				"columns":           map[string]any{"type": "number"},
				"cells":             map[string]any{"type": "array"},
			},
		},
	}
}
