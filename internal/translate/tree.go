package translate

import (
	"context"
	"strings"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

// structuralSuffixes mark keys whose string values are styling or media
// references, never prose. A key ending in one of these is copied verbatim.
var structuralSuffixes = []string{
	"_url",
	"_color",
	"_font_size",
	"_font_family",
	"_align",
	"_width",
	"_height",
	"_bold",
	"_italic",
}

// structuralKeys are exact key names that never hold translatable prose:
// layout and styling values plus technical identifiers and numeric-as-string
// payload fields.
var structuralKeys = map[string]struct{}{
	"url":            {},
	"href":           {},
	"color":          {},
	"layout":         {},
	"text_position":  {},
	"overall_layout": {},
	"width":          {},
	"height":         {},
	"bold":           {},
	"italic":         {},
	"font_size":      {},
	"font_family":    {},
	"align":          {},

	"id":                {},
	"group_id":          {},
	"type":              {},
	"order":             {},
	"anchor_id":         {},
	"background_type":   {},
	"is_carousel":       {},
	"is_price_banner":   {},
	"original_filename": {},
	"poster_url":        {},
	"rating":            {},
	"autoplay":          {},
	"autoplay_interval": {},
	"rows":              {},
	"columns":           {},
	"currency_symbol":   {},
	"original_price":    {},
	"discounted_price":  {},
}

// IsStructuralKey reports whether a JSON key's string value must be copied
// verbatim instead of translated.
func IsStructuralKey(key string) bool {
	if _, ok := structuralKeys[key]; ok {
		return true
	}
	for _, suffix := range structuralSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// Stats counts what a tree pass did. FellBack counts strings kept in the
// source language after a translator error or empty result.
type Stats struct {
	Translated int
	FellBack   int
}

// TranslateTree returns a copy of node with every translatable string
// rewritten into the target language. Maps and slices are walked
// recursively; values under structural keys and non-string leaves are
// copied verbatim. Translation failures fall back per string: the source
// text is kept and the walk continues.
func TranslateTree(ctx context.Context, translator interfaces.TextTranslator, node any, targetLanguage string) (any, Stats) {
	w := &walker{translator: translator, language: targetLanguage}
	out := w.value(ctx, node)
	return out, w.stats
}

type walker struct {
	translator interfaces.TextTranslator
	language   string
	stats      Stats
}

func (w *walker) value(ctx context.Context, node any) any {
	switch typed := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, nested := range typed {
			if text, ok := nested.(string); ok {
				if IsStructuralKey(key) {
					out[key] = text
					continue
				}
				out[key] = w.text(ctx, text)
				continue
			}
			out[key] = w.value(ctx, nested)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, nested := range typed {
			out[i] = w.value(ctx, nested)
		}
		return out
	case string:
		return w.text(ctx, typed)
	default:
		return node
	}
}

func (w *walker) text(ctx context.Context, source string) string {
	if strings.TrimSpace(source) == "" {
		return source
	}
	translated, err := w.translator.Translate(ctx, source, w.language)
	if err != nil || strings.TrimSpace(translated) == "" {
		w.stats.FellBack++
		return source
	}
	w.stats.Translated++
	return translated
}
