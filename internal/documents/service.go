package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/blocks"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Service manages localized landing documents: locale resolution, draft
// mutation, the publish state machine, and rendering resolution.
type Service interface {
	CreateTenant(ctx context.Context, input CreateTenantInput) (*Tenant, error)
	ResolveTenant(ctx context.Context, ref string) (*Tenant, error)

	CreateLocale(ctx context.Context, input CreateLocaleInput) (*Document, error)
	DeleteLocale(ctx context.Context, ref LocaleRef) error
	ListAvailableLocales(ctx context.Context, tenantRef string) ([]Locale, error)
	Resolve(ctx context.Context, tenantRef, country, languageCode string) (*Resolution, error)

	UpdateDraft(ctx context.Context, input UpdateDraftInput) (*Document, error)
	Publish(ctx context.Context, ref LocaleRef) (*Document, error)
	Unpublish(ctx context.Context, ref LocaleRef) (*Document, error)

	Render(ctx context.Context, tenantRef, country, languageCode string, mode RenderMode) (*RenderResult, error)
}

// IDGenerator produces identities for new tenants, documents, and blocks.
type IDGenerator func() uuid.UUID

// ServiceOption configures the document service.
type ServiceOption func(*service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides identity generation, primarily for tests.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithRegistry wires the block type registry used to validate draft writes.
func WithRegistry(registry *blocks.Registry) ServiceOption {
	return func(s *service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithCacheInvalidator wires the collaborator invalidating cached public
// renderings after publish and unpublish transitions.
func WithCacheInvalidator(invalidator interfaces.CacheInvalidator) ServiceOption {
	return func(s *service) {
		s.cache = invalidator
	}
}

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultLocale sets the country and language assumed when a lookup
// omits them.
func WithDefaultLocale(country, languageCode string) ServiceOption {
	return func(s *service) {
		if country = strings.TrimSpace(country); country != "" {
			s.defaultCountry = country
		}
		if languageCode = strings.TrimSpace(languageCode); languageCode != "" {
			s.defaultLanguage = languageCode
		}
	}
}

type service struct {
	tenants   TenantRepository
	documents DocumentRepository
	registry  *blocks.Registry
	cache     interfaces.CacheInvalidator
	logger    interfaces.Logger

	now func() time.Time
	id  IDGenerator

	defaultCountry  string
	defaultLanguage string
}

// NewService constructs the document service.
func NewService(tenants TenantRepository, documents DocumentRepository, opts ...ServiceOption) Service {
	s := &service{
		tenants:         tenants,
		documents:       documents,
		registry:        blocks.DefaultRegistry(),
		logger:          logging.NoOp(),
		now:             time.Now,
		id:              uuid.New,
		defaultCountry:  "US",
		defaultLanguage: "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateTenant(ctx context.Context, input CreateTenantInput) (*Tenant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTenantNameRequired
	}

	tenantSlug := strings.TrimSpace(input.Slug)
	if tenantSlug == "" {
		normalized, err := slug.Normalize(name)
		if err != nil {
			return nil, ErrTenantSlugRequired
		}
		tenantSlug = normalized
	}
	if !slug.IsValid(tenantSlug) {
		return nil, ErrTenantSlugInvalid
	}

	if _, err := s.tenants.GetBySlug(ctx, tenantSlug); err == nil {
		return nil, ErrTenantExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	now := s.now()
	return s.tenants.Create(ctx, &Tenant{
		ID:        s.id(),
		Name:      name,
		Slug:      tenantSlug,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// ResolveTenant accepts an opaque id or a human slug and returns the tenant.
func (s *service) ResolveTenant(ctx context.Context, ref string) (*Tenant, error) {
	return ResolveTenantRef(ctx, s.tenants, ref)
}

// ResolveTenantRef resolves a tenant reference that may be either a UUID or
// a slug. Shared with the batch maintenance services.
func ResolveTenantRef(ctx context.Context, tenants TenantRepository, ref string) (*Tenant, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrTenantRefRequired
	}
	if id, err := uuid.Parse(ref); err == nil {
		return tenants.GetByID(ctx, id)
	}
	return tenants.GetBySlug(ctx, ref)
}

func (s *service) CreateLocale(ctx context.Context, input CreateLocaleInput) (*Document, error) {
	country := strings.TrimSpace(input.Country)
	if country == "" {
		return nil, ErrCountryRequired
	}
	languageCode := strings.TrimSpace(input.LanguageCode)
	if languageCode == "" {
		return nil, ErrLanguageRequired
	}

	tenant, err := ResolveTenantRef(ctx, s.tenants, input.TenantRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.documents.GetByLocale(ctx, tenant.ID, country, languageCode); err == nil {
		return nil, ErrLocaleExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	now := s.now()
	document := &Document{
		ID:           s.id(),
		TenantID:     tenant.ID,
		Country:      country,
		LanguageCode: languageCode,
		Currency:     strings.TrimSpace(input.Currency),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if headline := strings.TrimSpace(input.SeedHeadline); headline != "" {
		seed := blocks.NewHeroSlide()
		seed.ID = s.id()
		seed.Headline = headline
		seed.Subheadline = strings.TrimSpace(input.SeedSubheadline)
		document.HeroSlides = blocks.NormalizeSlides([]blocks.HeroSlide{seed})
	}

	created, err := s.documents.Create(ctx, document)
	if err != nil {
		return nil, err
	}
	s.logger.Info("locale created",
		"tenant", tenant.Slug, "country", country, "language", languageCode)
	return created, nil
}

func (s *service) DeleteLocale(ctx context.Context, ref LocaleRef) error {
	_, document, err := s.load(ctx, ref)
	if err != nil {
		return err
	}
	return s.documents.Delete(ctx, document.ID)
}

func (s *service) ListAvailableLocales(ctx context.Context, tenantRef string) ([]Locale, error) {
	tenant, err := ResolveTenantRef(ctx, s.tenants, tenantRef)
	if err != nil {
		return nil, err
	}
	return s.listActiveLocales(ctx, tenant.ID)
}

func (s *service) listActiveLocales(ctx context.Context, tenantID uuid.UUID) ([]Locale, error) {
	records, err := s.documents.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	locales := make([]Locale, 0, len(records))
	for _, record := range records {
		if !record.IsActive {
			continue
		}
		locales = append(locales, Locale{Country: record.Country, LanguageCode: record.LanguageCode})
	}
	return locales, nil
}

func (s *service) Resolve(ctx context.Context, tenantRef, country, languageCode string) (*Resolution, error) {
	country, languageCode = s.applyLocaleDefaults(country, languageCode)

	tenant, err := ResolveTenantRef(ctx, s.tenants, tenantRef)
	if err != nil {
		if IsNotFound(err) {
			return &Resolution{Status: ResolutionTenantNotFound}, nil
		}
		return nil, err
	}

	locales, err := s.listActiveLocales(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	document, err := s.documents.GetByLocale(ctx, tenant.ID, country, languageCode)
	if err != nil {
		if IsNotFound(err) {
			return &Resolution{Status: ResolutionLocaleNotFound, Tenant: tenant, AvailableLocales: locales}, nil
		}
		return nil, err
	}
	if !document.IsActive {
		return &Resolution{Status: ResolutionLocaleNotFound, Tenant: tenant, AvailableLocales: locales}, nil
	}

	return &Resolution{
		Status:           ResolutionFound,
		Tenant:           tenant,
		Document:         document,
		AvailableLocales: locales,
	}, nil
}

func (s *service) UpdateDraft(ctx context.Context, input UpdateDraftInput) (*Document, error) {
	_, document, err := s.load(ctx, LocaleRef{
		TenantRef:    input.TenantRef,
		Country:      input.Country,
		LanguageCode: input.LanguageCode,
	})
	if err != nil {
		return nil, err
	}

	if input.ExpectedVersion != nil && *input.ExpectedVersion != document.Version {
		return nil, fmt.Errorf("%w: expected %d, have %d",
			ErrVersionConflict, *input.ExpectedVersion, document.Version)
	}

	if input.Blocks != nil {
		replacement := *input.Blocks
		if err := s.registry.ValidateAll(replacement); err != nil {
			return nil, err
		}
		document.Blocks = blocks.Normalize(replacement)
	}
	if input.HeroSlides != nil {
		document.HeroSlides = blocks.NormalizeSlides(*input.HeroSlides)
	}
	if input.Hero != nil {
		document.Hero = cloneJSONMap(*input.Hero)
	}
	if input.Footer != nil {
		document.Footer = cloneJSONMap(*input.Footer)
	}
	if input.Menu != nil {
		document.Menu = cloneJSONMap(*input.Menu)
	}
	if input.Announcements != nil {
		replacement := *input.Announcements
		cloned := make([]map[string]any, len(replacement))
		for i, entry := range replacement {
			cloned[i] = cloneJSONMap(entry)
		}
		document.Announcements = cloned
	}
	if input.Currency != nil {
		document.Currency = strings.TrimSpace(*input.Currency)
	}

	document.Version++
	document.UpdatedAt = s.now()
	return s.documents.Update(ctx, document)
}

func (s *service) Publish(ctx context.Context, ref LocaleRef) (*Document, error) {
	tenant, document, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	snapshot := document.Content()
	document.PublishedData = &snapshot
	document.IsPublished = true
	now := s.now()
	document.PublishedAt = &now
	document.Version++
	document.UpdatedAt = now

	updated, err := s.documents.Update(ctx, document)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document published",
		"tenant", tenant.Slug, "country", updated.Country, "language", updated.LanguageCode)
	s.invalidateRendering(ctx, tenant, updated)
	return updated, nil
}

func (s *service) Unpublish(ctx context.Context, ref LocaleRef) (*Document, error) {
	tenant, document, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	document.PublishedData = nil
	document.PublishedAt = nil
	document.IsPublished = false
	document.Version++
	document.UpdatedAt = s.now()

	updated, err := s.documents.Update(ctx, document)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document unpublished",
		"tenant", tenant.Slug, "country", updated.Country, "language", updated.LanguageCode)
	s.invalidateRendering(ctx, tenant, updated)
	return updated, nil
}

func (s *service) Render(ctx context.Context, tenantRef, country, languageCode string, mode RenderMode) (*RenderResult, error) {
	resolution, err := s.Resolve(ctx, tenantRef, country, languageCode)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{
		Status:           resolution.Status,
		Mode:             mode,
		Tenant:           resolution.Tenant,
		AvailableLocales: resolution.AvailableLocales,
	}
	if resolution.Status != ResolutionFound {
		return result, nil
	}

	rendered, err := ResolveForRendering(resolution.Document, mode)
	if err != nil {
		return nil, err
	}
	result.Document = rendered
	return result, nil
}

func (s *service) load(ctx context.Context, ref LocaleRef) (*Tenant, *Document, error) {
	country, languageCode := s.applyLocaleDefaults(ref.Country, ref.LanguageCode)

	tenant, err := ResolveTenantRef(ctx, s.tenants, ref.TenantRef)
	if err != nil {
		return nil, nil, err
	}
	document, err := s.documents.GetByLocale(ctx, tenant.ID, country, languageCode)
	if err != nil {
		return nil, nil, err
	}
	return tenant, document, nil
}

func (s *service) applyLocaleDefaults(country, languageCode string) (string, string) {
	if country = strings.TrimSpace(country); country == "" {
		country = s.defaultCountry
	}
	if languageCode = strings.TrimSpace(languageCode); languageCode == "" {
		languageCode = s.defaultLanguage
	}
	return country, languageCode
}

// invalidateRendering drops any cached public rendering for the document's
// locale path. Best effort: failures are logged and never roll back the
// publish transition, and no retry is scheduled.
func (s *service) invalidateRendering(ctx context.Context, tenant *Tenant, document *Document) {
	if s.cache == nil {
		return
	}
	path := RenderPath(tenant.Slug, document.Country, document.LanguageCode)
	if err := s.cache.Invalidate(ctx, path); err != nil {
		s.logger.Warn("cache invalidation failed", "path", path, "error", err)
	}
}

// RenderPath is the public locale path a rendered document is cached under.
func RenderPath(tenantSlug, country, languageCode string) string {
	return "/" + tenantSlug + "/" + strings.ToLower(strings.TrimSpace(country)) + "/" + strings.ToLower(strings.TrimSpace(languageCode))
}
