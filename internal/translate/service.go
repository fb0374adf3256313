package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

var (
	ErrTranslatorRequired = errors.New("translate: translator required")
	ErrTargetRequired     = errors.New("translate: target locale required")
)

// Service seeds new locale documents by translating an existing one.
type Service interface {
	SeedLocale(ctx context.Context, input SeedLocaleInput) (*documents.Document, error)
}

// SeedLocaleInput describes a translation seeding request. Source defaults
// to US/en. Currency defaults to the source document's currency.
type SeedLocaleInput struct {
	TenantRef string
	Source    documents.Locale
	Target    documents.Locale
	Currency  string
}

// ServiceOption configures the translation service.
type ServiceOption func(*service)

// WithLogger injects the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides identity generation, primarily for tests.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

type service struct {
	tenants    documents.TenantRepository
	documents  documents.DocumentRepository
	translator interfaces.TextTranslator
	logger     interfaces.Logger
	now        func() time.Time
	id         func() uuid.UUID
}

// NewService constructs the translation service around an external text
// translator.
func NewService(tenants documents.TenantRepository, docs documents.DocumentRepository, translator interfaces.TextTranslator, opts ...ServiceOption) Service {
	s := &service{
		tenants:    tenants,
		documents:  docs,
		translator: translator,
		logger:     logging.NoOp(),
		now:        time.Now,
		id:         uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SeedLocale(ctx context.Context, input SeedLocaleInput) (*documents.Document, error) {
	if s.translator == nil {
		return nil, ErrTranslatorRequired
	}
	if input.Target.Country == "" || input.Target.LanguageCode == "" {
		return nil, ErrTargetRequired
	}

	source := input.Source
	if source.Country == "" {
		source.Country = "US"
	}
	if source.LanguageCode == "" {
		source.LanguageCode = "en"
	}

	tenant, err := documents.ResolveTenantRef(ctx, s.tenants, input.TenantRef)
	if err != nil {
		return nil, err
	}

	sourceDocument, err := s.documents.GetByLocale(ctx, tenant.ID, source.Country, source.LanguageCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.documents.GetByLocale(ctx, tenant.ID, input.Target.Country, input.Target.LanguageCode); err == nil {
		return nil, documents.ErrLocaleExists
	} else if !documents.IsNotFound(err) {
		return nil, err
	}

	content, stats, err := s.translateContent(ctx, sourceDocument.Content(), input.Target.LanguageCode)
	if err != nil {
		return nil, err
	}
	refreshIdentities(s.id, &content)

	currency := input.Currency
	if currency == "" {
		currency = sourceDocument.Currency
	}

	now := s.now()
	document := &documents.Document{
		ID:           s.id(),
		TenantID:     tenant.ID,
		Country:      input.Target.Country,
		LanguageCode: input.Target.LanguageCode,
		Currency:     currency,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	document.SetContent(content)

	created, err := s.documents.Create(ctx, document)
	if err != nil {
		return nil, err
	}

	s.logger.Info("locale seeded from translation",
		"tenant", tenant.Slug,
		"source", source.Country+"/"+source.LanguageCode,
		"target", input.Target.Country+"/"+input.Target.LanguageCode,
		"translated", stats.Translated, "fallbacks", stats.FellBack)
	return created, nil
}

// translateContent round-trips the typed content set through its JSON form
// so the tree walker sees the same key names the payloads serialize with.
func (s *service) translateContent(ctx context.Context, content documents.ContentFields, targetLanguage string) (documents.ContentFields, Stats, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return documents.ContentFields{}, Stats{}, fmt.Errorf("translate: encode content: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return documents.ContentFields{}, Stats{}, fmt.Errorf("translate: decode content: %w", err)
	}

	translated, stats := TranslateTree(ctx, s.translator, tree, targetLanguage)

	raw, err = json.Marshal(translated)
	if err != nil {
		return documents.ContentFields{}, Stats{}, fmt.Errorf("translate: encode result: %w", err)
	}
	var out documents.ContentFields
	if err := json.Unmarshal(raw, &out); err != nil {
		return documents.ContentFields{}, Stats{}, fmt.Errorf("translate: decode result: %w", err)
	}
	return out, stats, nil
}

// refreshIdentities assigns fresh ids to blocks and hero slides so the
// seeded locale never shares identities with its source.
func refreshIdentities(generate func() uuid.UUID, content *documents.ContentFields) {
	for i := range content.Blocks {
		content.Blocks[i].ID = generate()
	}
	for i := range content.HeroSlides {
		content.HeroSlides[i].ID = generate()
	}
}
