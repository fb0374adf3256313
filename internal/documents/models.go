package documents

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-landing/internal/blocks"
)

// Tenant is the owner of a set of localized landing documents. The slug is a
// stable human identifier accepted interchangeably with the id.
type Tenant struct {
	bun.BaseModel `bun:"table:tenants,alias:t"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Document is one localized landing page for a tenant. Exactly one row
// exists per (tenant_id, country, language_code). The content columns hold
// the editable draft; published_data holds the snapshot served to live
// traffic and never contains non-content fields.
type Document struct {
	bun.BaseModel `bun:"table:landing_documents,alias:ld"`

	ID           uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	TenantID     uuid.UUID  `bun:"tenant_id,notnull,type:uuid" json:"tenant_id"`
	Country      string     `bun:"country,notnull" json:"country"`
	LanguageCode string     `bun:"language_code,notnull" json:"language_code"`
	Currency     string     `bun:"currency" json:"currency,omitempty"`
	IsActive     bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	IsPublished  bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	PublishedAt  *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`

	// Version increases on every write. Draft updates may pass an expected
	// version for optimistic concurrency; a stale value is rejected.
	Version int64 `bun:"version,notnull,default:0" json:"version"`

	Hero          map[string]any     `bun:"hero,type:jsonb" json:"hero,omitempty"`
	Footer        map[string]any     `bun:"footer,type:jsonb" json:"footer,omitempty"`
	Menu          map[string]any     `bun:"menu,type:jsonb" json:"menu,omitempty"`
	Announcements []map[string]any   `bun:"announcements,type:jsonb" json:"announcements,omitempty"`
	HeroSlides    []blocks.HeroSlide `bun:"hero_slides,type:jsonb" json:"hero_slides,omitempty"`
	Blocks        []blocks.Block     `bun:"blocks,type:jsonb" json:"blocks,omitempty"`

	PublishedData *ContentFields `bun:"published_data,type:jsonb" json:"published_data,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ContentFields is the draft content set of a document. A publish copies it
// wholesale into the snapshot; rendering merges it back over the row's
// non-content fields.
type ContentFields struct {
	Hero          map[string]any     `json:"hero,omitempty"`
	Footer        map[string]any     `json:"footer,omitempty"`
	Menu          map[string]any     `json:"menu,omitempty"`
	Announcements []map[string]any   `json:"announcements,omitempty"`
	HeroSlides    []blocks.HeroSlide `json:"hero_slides,omitempty"`
	Blocks        []blocks.Block     `json:"blocks,omitempty"`
}

// Clone returns a deep copy of the content fields.
func (c ContentFields) Clone() ContentFields {
	out := ContentFields{
		Hero:   cloneJSONMap(c.Hero),
		Footer: cloneJSONMap(c.Footer),
		Menu:   cloneJSONMap(c.Menu),
	}
	if c.Announcements != nil {
		out.Announcements = make([]map[string]any, len(c.Announcements))
		for i, entry := range c.Announcements {
			out.Announcements[i] = cloneJSONMap(entry)
		}
	}
	if c.HeroSlides != nil {
		out.HeroSlides = make([]blocks.HeroSlide, len(c.HeroSlides))
		copy(out.HeroSlides, c.HeroSlides)
	}
	if c.Blocks != nil {
		out.Blocks = make([]blocks.Block, len(c.Blocks))
		for i, block := range c.Blocks {
			out.Blocks[i] = block.Clone()
		}
	}
	return out
}

// Content extracts a deep copy of the document's draft content fields.
func (d *Document) Content() ContentFields {
	return ContentFields{
		Hero:          d.Hero,
		Footer:        d.Footer,
		Menu:          d.Menu,
		Announcements: d.Announcements,
		HeroSlides:    d.HeroSlides,
		Blocks:        d.Blocks,
	}.Clone()
}

// SetContent replaces every draft content field from the given set.
func (d *Document) SetContent(content ContentFields) {
	cloned := content.Clone()
	d.Hero = cloned.Hero
	d.Footer = cloned.Footer
	d.Menu = cloned.Menu
	d.Announcements = cloned.Announcements
	d.HeroSlides = cloned.HeroSlides
	d.Blocks = cloned.Blocks
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	content := d.Content()
	clone.Hero = content.Hero
	clone.Footer = content.Footer
	clone.Menu = content.Menu
	clone.Announcements = content.Announcements
	clone.HeroSlides = content.HeroSlides
	clone.Blocks = content.Blocks
	if d.PublishedAt != nil {
		at := *d.PublishedAt
		clone.PublishedAt = &at
	}
	if d.PublishedData != nil {
		snapshot := d.PublishedData.Clone()
		clone.PublishedData = &snapshot
	}
	return &clone
}

// Locale is a (country, language) pair scoping a document within a tenant.
type Locale struct {
	Country      string `json:"country"`
	LanguageCode string `json:"language_code"`
}

func cloneTenant(t *Tenant) *Tenant {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func cloneJSONMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cloneJSONValue(value)
	}
	return out
}

func cloneJSONValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneJSONMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, entry := range typed {
			out[i] = cloneJSONValue(entry)
		}
		return out
	default:
		return value
	}
}
