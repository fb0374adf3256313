package localesync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

var (
	ErrSourceLanguageRequired = errors.New("localesync: source language required")
	ErrSourceNotFound         = errors.New("localesync: source document not found")
)

// Service runs cross-locale consistency passes over a tenant's documents.
// Batches report per-document outcomes; a single document failure never
// aborts the rest of the run.
type Service interface {
	SyncAnchorsAcrossLocales(ctx context.Context, input SyncAnchorsInput) (*Report, error)
	SyncFilenames(ctx context.Context, input SyncFilenamesInput) (*Report, error)
}

// SyncAnchorsInput scopes an anchor propagation run. Country is optional;
// empty means every country the tenant has documents in. SourceLanguage
// defaults to "en".
type SyncAnchorsInput struct {
	TenantRef      string
	Country        string
	SourceLanguage string
}

// SyncFilenamesInput scopes a filename backfill run. Targets is optional;
// empty means every other document of the tenant.
type SyncFilenamesInput struct {
	TenantRef string
	Source    documents.Locale
	Targets   []documents.Locale
}

// ServiceOption configures the consistency service.
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

type service struct {
	tenants   documents.TenantRepository
	documents documents.DocumentRepository
	logger    interfaces.Logger
	now       func() time.Time
}

// NewService constructs the consistency service.
func NewService(tenants documents.TenantRepository, docs documents.DocumentRepository, opts ...ServiceOption) Service {
	s := &service{
		tenants:   tenants,
		documents: docs,
		logger:    logging.NoOp(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SyncAnchorsAcrossLocales(ctx context.Context, input SyncAnchorsInput) (*Report, error) {
	sourceLanguage := input.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = "en"
	}

	tenant, err := documents.ResolveTenantRef(ctx, s.tenants, input.TenantRef)
	if err != nil {
		return nil, err
	}
	records, err := s.documents.ListByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		TenantSlug: tenant.Slug,
		Source:     documents.Locale{Country: input.Country, LanguageCode: sourceLanguage},
	}

	byCountry := map[string][]*documents.Document{}
	for _, record := range records {
		if input.Country != "" && record.Country != input.Country {
			continue
		}
		byCountry[record.Country] = append(byCountry[record.Country], record)
	}

	for country, group := range byCountry {
		var source *documents.Document
		for _, record := range group {
			if record.LanguageCode == sourceLanguage {
				source = record
				break
			}
		}
		if source == nil {
			report.add(Outcome{
				Country: country,
				Status:  OutcomeSkipped,
				Reason:  fmt.Sprintf("no %s document to copy anchors from", sourceLanguage),
			})
			continue
		}

		for _, target := range group {
			if target.ID == source.ID {
				continue
			}
			s.syncDocumentAnchors(ctx, report, source, target)
		}
	}

	s.logger.Info("anchor sync finished",
		"tenant", tenant.Slug, "updated", report.Updated,
		"skipped", report.Skipped, "failed", report.Failed)
	return report, nil
}

func (s *service) syncDocumentAnchors(ctx context.Context, report *Report, source, target *documents.Document) {
	outcome := Outcome{Country: target.Country, LanguageCode: target.LanguageCode}

	if !Alignable(source.Blocks, target.Blocks) {
		outcome.Status = OutcomeSkipped
		outcome.Reason = fmt.Sprintf("blocks not alignable: source has %d, target has %d and group ids do not cover the difference",
			len(source.Blocks), len(target.Blocks))
		report.add(outcome)
		return
	}

	synced, changed := SyncAnchors(source, target)
	if changed == 0 {
		outcome.Status = OutcomeUnchanged
		report.add(outcome)
		return
	}

	synced.Version++
	synced.UpdatedAt = s.now()
	if _, err := s.documents.Update(ctx, synced); err != nil {
		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()
		report.add(outcome)
		s.logger.Error("anchor sync update failed",
			"country", target.Country, "language", target.LanguageCode, "error", err)
		return
	}

	outcome.Status = OutcomeUpdated
	outcome.Changed = changed
	report.add(outcome)
}

func (s *service) SyncFilenames(ctx context.Context, input SyncFilenamesInput) (*Report, error) {
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
		if documents.IsNotFound(err) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}
	mapping := CollectFilenames(sourceDocument)

	targets, err := s.resolveTargets(ctx, tenant, source, input.Targets)
	if err != nil {
		return nil, err
	}

	report := &Report{TenantSlug: tenant.Slug, Source: source}
	for _, target := range targets {
		outcome := Outcome{Country: target.Country, LanguageCode: target.LanguageCode}

		patched, filled := ApplyFilenames(target, mapping)
		if filled == 0 {
			outcome.Status = OutcomeUnchanged
			report.add(outcome)
			continue
		}

		patched.Version++
		patched.UpdatedAt = s.now()
		if _, err := s.documents.Update(ctx, patched); err != nil {
			outcome.Status = OutcomeFailed
			outcome.Reason = err.Error()
			report.add(outcome)
			s.logger.Error("filename sync update failed",
				"country", target.Country, "language", target.LanguageCode, "error", err)
			continue
		}

		outcome.Status = OutcomeUpdated
		outcome.Changed = filled
		report.add(outcome)
	}

	s.logger.Info("filename sync finished",
		"tenant", tenant.Slug, "known_urls", len(mapping),
		"updated", report.Updated, "failed", report.Failed)
	return report, nil
}

func (s *service) resolveTargets(ctx context.Context, tenant *documents.Tenant, source documents.Locale, requested []documents.Locale) ([]*documents.Document, error) {
	if len(requested) == 0 {
		records, err := s.documents.ListByTenant(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}
		targets := make([]*documents.Document, 0, len(records))
		for _, record := range records {
			if record.Country == source.Country && record.LanguageCode == source.LanguageCode {
				continue
			}
			targets = append(targets, record)
		}
		return targets, nil
	}

	targets := make([]*documents.Document, 0, len(requested))
	for _, locale := range requested {
		record, err := s.documents.GetByLocale(ctx, tenant.ID, locale.Country, locale.LanguageCode)
		if err != nil {
			return nil, err
		}
		targets = append(targets, record)
	}
	return targets, nil
}
