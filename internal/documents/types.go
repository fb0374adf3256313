package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/blocks"
)

// ResolutionStatus distinguishes the two flavours of "not found" so callers
// can choose different fallback behaviour for an unknown tenant versus a
// tenant that simply has no such locale.
type ResolutionStatus string

const (
	ResolutionFound          ResolutionStatus = "found"
	ResolutionTenantNotFound ResolutionStatus = "tenant_not_found"
	ResolutionLocaleNotFound ResolutionStatus = "locale_not_found"
)

// Resolution is the tri-state outcome of a locale lookup. Tenant and
// AvailableLocales are populated whenever the tenant exists, regardless of
// whether the requested locale does.
type Resolution struct {
	Status           ResolutionStatus `json:"status"`
	Tenant           *Tenant          `json:"tenant,omitempty"`
	Document         *Document        `json:"document,omitempty"`
	AvailableLocales []Locale         `json:"available_locales,omitempty"`
}

// RenderMode selects which content set a rendering request sees.
type RenderMode string

const (
	// RenderLive serves the published snapshot, falling back to the draft
	// for documents that have never been published.
	RenderLive RenderMode = "live"
	// RenderPreview always serves the current draft.
	RenderPreview RenderMode = "preview"
)

// RenderedDocument is the merged object served to a page renderer. The
// non-content fields always come from the live row; the embedded content set
// comes from either the snapshot or the draft depending on the mode.
type RenderedDocument struct {
	ID           uuid.UUID  `json:"id"`
	TenantID     uuid.UUID  `json:"tenant_id"`
	Country      string     `json:"country"`
	LanguageCode string     `json:"language_code"`
	Currency     string     `json:"currency,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsPublished  bool       `json:"is_published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Version      int64      `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	ContentFields
}

// RenderResult is the public rendering contract: either a fully merged
// document or an explicit not-found status.
type RenderResult struct {
	Status           ResolutionStatus  `json:"status"`
	Mode             RenderMode        `json:"mode"`
	Tenant           *Tenant           `json:"tenant,omitempty"`
	Document         *RenderedDocument `json:"document,omitempty"`
	AvailableLocales []Locale          `json:"available_locales,omitempty"`
}

// LocaleRef addresses one document by tenant reference (id or slug) plus
// locale pair.
type LocaleRef struct {
	TenantRef    string
	Country      string
	LanguageCode string
}

// CreateTenantInput captures a tenant provisioning request. An empty slug is
// derived from the name.
type CreateTenantInput struct {
	Name string
	Slug string
}

// CreateLocaleInput provisions a new localized document for a tenant with
// seed hero text.
type CreateLocaleInput struct {
	TenantRef       string
	Country         string
	LanguageCode    string
	Currency        string
	SeedHeadline    string
	SeedSubheadline string
}

// UpdateDraftInput is a whole-field replacement request. Only non-nil fields
// are written; there is no partial patch below field granularity. Identity,
// activation, and publish state cannot be written through this path.
type UpdateDraftInput struct {
	TenantRef    string
	Country      string
	LanguageCode string

	// ExpectedVersion, when set, must equal the document's current version
	// or the write is rejected with ErrVersionConflict. Nil skips the check.
	ExpectedVersion *int64

	Currency      *string
	Hero          *map[string]any
	Footer        *map[string]any
	Menu          *map[string]any
	Announcements *[]map[string]any
	HeroSlides    *[]blocks.HeroSlide
	Blocks        *[]blocks.Block
}
