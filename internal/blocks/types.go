package blocks

import (
	"strings"

	"github.com/google/uuid"
)

// Block is one ordered, typed content unit inside a document's blocks list.
// The ID is assigned once at creation and never reused; Order always equals
// the array index after a pass through Normalize. GroupID identifies the
// logical content unit across a tenant's locale variants: translation
// seeding carries it over while minting fresh IDs, so cross-locale passes
// can correlate blocks without relying on array position.
type Block struct {
	ID       uuid.UUID      `json:"id"`
	GroupID  uuid.UUID      `json:"group_id,omitempty"`
	Type     string         `json:"type"`
	Name     string         `json:"name"`
	Order    int            `json:"order"`
	AnchorID string         `json:"anchor_id,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Anchor returns the deep-link slug for the block: the explicit anchor when
// present, otherwise one derived from the block name.
func (b Block) Anchor() string {
	if anchor := strings.TrimSpace(b.AnchorID); anchor != "" {
		return anchor
	}
	return Slugify(b.Name)
}

// Clone returns a deep copy of the block, including its payload.
func (b Block) Clone() Block {
	clone := b
	clone.Data = cloneMap(b.Data)
	return clone
}

// NewBlock creates a block with a fresh identity. Order is settled by the
// caller, usually through Normalize or InsertAt.
func NewBlock(blockType, name string, data map[string]any) Block {
	return Block{
		ID:      uuid.New(),
		GroupID: uuid.New(),
		Type:    strings.TrimSpace(blockType),
		Name:    strings.TrimSpace(name),
		Data:    cloneMap(data),
	}
}

// Typography carries the per-element text styling overrides a hero slide
// stores alongside each textual sub-element.
type Typography struct {
	FontFamily string `json:"font_family,omitempty"`
	FontSize   string `json:"font_size,omitempty"`
	Color      string `json:"color,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	Align      string `json:"align,omitempty"`
}

// HeroSlide is an element of a document's hero_slides list. Media references
// carry the uploaded asset's original filename for operator traceability.
type HeroSlide struct {
	ID               uuid.UUID  `json:"id"`
	Order            int        `json:"order"`
	BackgroundURL    string     `json:"background_url,omitempty"`
	BackgroundType   string     `json:"background_type,omitempty"`
	OriginalFilename string     `json:"original_filename,omitempty"`
	PosterURL        string     `json:"poster_url,omitempty"`
	Headline         string     `json:"headline,omitempty"`
	HeadlineStyle    Typography `json:"headline_style,omitempty"`
	Subheadline      string     `json:"subheadline,omitempty"`
	SubheadlineStyle Typography `json:"subheadline_style,omitempty"`
	Content          string     `json:"content,omitempty"`
	ContentStyle     Typography `json:"content_style,omitempty"`
}

// NewHeroSlide creates a slide with a fresh identity and the default
// typography applied to each textual sub-element.
func NewHeroSlide() HeroSlide {
	return HeroSlide{
		ID:               uuid.New(),
		HeadlineStyle:    DefaultHeadlineStyle(),
		SubheadlineStyle: DefaultSubheadlineStyle(),
		ContentStyle:     DefaultContentStyle(),
	}
}

// DefaultHeadlineStyle returns the headline typography defaults.
func DefaultHeadlineStyle() Typography {
	return Typography{FontFamily: "inherit", FontSize: "48px", Color: "#ffffff", Bold: true, Align: "center"}
}

// DefaultSubheadlineStyle returns the subheadline typography defaults.
func DefaultSubheadlineStyle() Typography {
	return Typography{FontFamily: "inherit", FontSize: "24px", Color: "#ffffff", Align: "center"}
}

// DefaultContentStyle returns the body content typography defaults.
func DefaultContentStyle() Typography {
	return Typography{FontFamily: "inherit", FontSize: "16px", Color: "#ffffff", Align: "center"}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[key] = cloneMap(typed)
		case []any:
			out[key] = cloneSlice(typed)
		default:
			out[key] = value
		}
	}
	return out
}

func cloneSlice(input []any) []any {
	if input == nil {
		return nil
	}
	out := make([]any, len(input))
	for i, value := range input {
		switch typed := value.(type) {
		case map[string]any:
			out[i] = cloneMap(typed)
		case []any:
			out[i] = cloneSlice(typed)
		default:
			out[i] = value
		}
	}
	return out
}
