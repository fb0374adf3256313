package landing

import (
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-landing/internal/blocks"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/localesync"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/logging/gologger"
	"github.com/goliatone/go-landing/internal/translate"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// DocumentService exports the document service contract for consumers of the landing package.
type DocumentService = documents.Service

// LocaleSyncService exports the cross-locale consistency service contract.
type LocaleSyncService = localesync.Service

// TranslateService exports the translation seeding service contract.
type TranslateService = translate.Service

// Re-exported domain types so consumers rarely need the internal import paths.
type (
	Tenant           = documents.Tenant
	Document         = documents.Document
	ContentFields    = documents.ContentFields
	Locale           = documents.Locale
	LocaleRef        = documents.LocaleRef
	Resolution       = documents.Resolution
	RenderResult     = documents.RenderResult
	RenderedDocument = documents.RenderedDocument
	RenderMode       = documents.RenderMode

	Block     = blocks.Block
	HeroSlide = blocks.HeroSlide

	CreateTenantInput  = documents.CreateTenantInput
	CreateLocaleInput  = documents.CreateLocaleInput
	UpdateDraftInput   = documents.UpdateDraftInput
	SyncAnchorsInput   = localesync.SyncAnchorsInput
	SyncFilenamesInput = localesync.SyncFilenamesInput
	SeedLocaleInput    = translate.SeedLocaleInput

	SyncReport  = localesync.Report
	SyncOutcome = localesync.Outcome

	CacheInvalidator = interfaces.CacheInvalidator
	TextTranslator   = interfaces.TextTranslator
)

const (
	RenderLive    = documents.RenderLive
	RenderPreview = documents.RenderPreview
)

// NewBlock creates a block with a fresh identity.
func NewBlock(blockType, name string, data map[string]any) Block {
	return blocks.NewBlock(blockType, name, data)
}

// NewHeroSlide creates a hero slide with a fresh identity and default styling.
func NewHeroSlide() HeroSlide {
	return blocks.NewHeroSlide()
}

// Module is the top level runtime façade wiring repositories, services, and
// logging together from one Config.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider

	tenants documents.TenantRepository
	docs    documents.DocumentRepository

	cacheInvalidator interfaces.CacheInvalidator
	translator       interfaces.TextTranslator

	documents  documents.Service
	localeSync localesync.Service
	translate  translate.Service
}

// Option overrides a collaborator before the module wires its services.
type Option func(*Module)

// WithDB stores documents in the given database instead of in memory.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		if db != nil {
			m.tenants = documents.NewBunTenantRepository(db)
			m.docs = documents.NewBunDocumentRepository(db)
		}
	}
}

// WithCachedDB stores documents in the given database with read-through
// caching on both repositories.
func WithCachedDB(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) Option {
	return func(m *Module) {
		if db != nil {
			m.tenants = documents.NewBunTenantRepositoryWithCache(db, cacheService, serializer)
			m.docs = documents.NewBunDocumentRepositoryWithCache(db, cacheService, serializer)
		}
	}
}

// WithRepositories injects explicit repository implementations.
func WithRepositories(tenants documents.TenantRepository, docs documents.DocumentRepository) Option {
	return func(m *Module) {
		if tenants != nil {
			m.tenants = tenants
		}
		if docs != nil {
			m.docs = docs
		}
	}
}

// WithCacheInvalidator wires the collaborator notified after publish and
// unpublish transitions.
func WithCacheInvalidator(invalidator interfaces.CacheInvalidator) Option {
	return func(m *Module) {
		m.cacheInvalidator = invalidator
	}
}

// WithTranslator wires the external text translator used for locale seeding.
// Without one, Translate() is unavailable and returns nil.
func WithTranslator(translator interfaces.TextTranslator) Option {
	return func(m *Module) {
		m.translator = translator
	}
}

// WithLoggerProvider overrides the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// New constructs a landing module using the provided configuration and
// optional overrides. Repositories default to in-memory implementations.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		config:  cfg,
		tenants: documents.NewMemoryTenantRepository(),
		docs:    documents.NewMemoryDocumentRepository(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	registry := blocks.DefaultRegistry()
	registry.SetStrict(cfg.StrictBlockTypes)

	m.documents = documents.NewService(m.tenants, m.docs,
		documents.WithRegistry(registry),
		documents.WithCacheInvalidator(m.cacheInvalidator),
		documents.WithLogger(logging.DocumentsLogger(m.provider)),
		documents.WithDefaultLocale(cfg.DefaultCountry, cfg.DefaultLanguage),
	)
	m.localeSync = localesync.NewService(m.tenants, m.docs,
		localesync.WithLogger(logging.LocaleSyncLogger(m.provider)),
	)
	if m.translator != nil {
		m.translate = translate.NewService(m.tenants, m.docs, m.translator,
			translate.WithLogger(logging.TranslateLogger(m.provider)),
		)
	}

	return m, nil
}

// Documents returns the configured document service.
func (m *Module) Documents() DocumentService {
	return m.documents
}

// LocaleSync returns the configured consistency service.
func (m *Module) LocaleSync() LocaleSyncService {
	return m.localeSync
}

// Translate returns the configured translation service, or nil when no
// translator was injected.
func (m *Module) Translate() TranslateService {
	return m.translate
}

// LoggerProvider exposes the provider backing the module's loggers so host
// applications can reuse the namespaces.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}
