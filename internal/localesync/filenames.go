package localesync

import (
	"strings"

	"github.com/goliatone/go-landing/internal/documents"
)

// urlKeys are the payload keys that reference an uploaded asset by URL. An
// object carrying one of these alongside a populated original_filename is a
// source of filename metadata; one with a blank original_filename is a
// candidate for backfill.
var urlKeys = []string{
	"background_url",
	"image_url",
	"video_url",
	"logo_url",
	"poster_url",
	"header_image_url",
	"url",
}

const filenameKey = "original_filename"

// CollectFilenames walks a document's content and returns a URL to original
// filename mapping for every asset reference that has its filename recorded.
func CollectFilenames(document *documents.Document) map[string]string {
	mapping := map[string]string{}
	if document == nil {
		return mapping
	}

	for _, slide := range document.HeroSlides {
		if slide.OriginalFilename == "" {
			continue
		}
		if slide.BackgroundURL != "" {
			mapping[slide.BackgroundURL] = slide.OriginalFilename
		}
	}

	collectFromValue(document.Hero, mapping)
	collectFromValue(document.Footer, mapping)
	collectFromValue(document.Menu, mapping)
	for _, entry := range document.Announcements {
		collectFromValue(entry, mapping)
	}
	for _, block := range document.Blocks {
		collectFromValue(block.Data, mapping)
	}
	return mapping
}

// ApplyFilenames returns a copy of the document with blank original_filename
// fields filled from the mapping, plus the number of fields filled. Existing
// filenames are never overwritten, so repeated runs converge.
func ApplyFilenames(document *documents.Document, mapping map[string]string) (*documents.Document, int) {
	patched := document.Clone()
	filled := 0

	for i := range patched.HeroSlides {
		slide := &patched.HeroSlides[i]
		if slide.OriginalFilename != "" || slide.BackgroundURL == "" {
			continue
		}
		if filename, ok := mapping[slide.BackgroundURL]; ok && filename != "" {
			slide.OriginalFilename = filename
			filled++
		}
	}

	filled += applyToValue(patched.Hero, mapping)
	filled += applyToValue(patched.Footer, mapping)
	filled += applyToValue(patched.Menu, mapping)
	for _, entry := range patched.Announcements {
		filled += applyToValue(entry, mapping)
	}
	for i := range patched.Blocks {
		filled += applyToValue(patched.Blocks[i].Data, mapping)
	}
	return patched, filled
}

func collectFromValue(value any, mapping map[string]string) {
	switch typed := value.(type) {
	case map[string]any:
		filename, _ := typed[filenameKey].(string)
		if filename != "" {
			for _, key := range urlKeys {
				if url, ok := typed[key].(string); ok && url != "" {
					mapping[url] = filename
				}
			}
		}
		for _, nested := range typed {
			collectFromValue(nested, mapping)
		}
	case []any:
		for _, nested := range typed {
			collectFromValue(nested, mapping)
		}
	}
}

func applyToValue(value any, mapping map[string]string) int {
	filled := 0
	switch typed := value.(type) {
	case map[string]any:
		if current, _ := typed[filenameKey].(string); strings.TrimSpace(current) == "" {
			for _, key := range urlKeys {
				url, ok := typed[key].(string)
				if !ok || url == "" {
					continue
				}
				if filename, found := mapping[url]; found && filename != "" {
					typed[filenameKey] = filename
					filled++
					break
				}
			}
		}
		for _, nested := range typed {
			filled += applyToValue(nested, mapping)
		}
	case []any:
		for _, nested := range typed {
			filled += applyToValue(nested, mapping)
		}
	}
	return filled
}
