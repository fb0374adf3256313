package documents_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/blocks"
	"github.com/goliatone/go-landing/internal/documents"
)

type recordingInvalidator struct {
	paths []string
	err   error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func newService(opts ...documents.ServiceOption) documents.Service {
	base := []documents.ServiceOption{
		documents.WithClock(func() time.Time {
			return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		}),
	}
	return documents.NewService(
		documents.NewMemoryTenantRepository(),
		documents.NewMemoryDocumentRepository(),
		append(base, opts...)...,
	)
}

func mustTenant(t *testing.T, svc documents.Service, name string) *documents.Tenant {
	t.Helper()
	tenant, err := svc.CreateTenant(context.Background(), documents.CreateTenantInput{Name: name})
	if err != nil {
		t.Fatalf("create tenant %s: %v", name, err)
	}
	return tenant
}

func mustLocale(t *testing.T, svc documents.Service, tenantRef, country, language string) *documents.Document {
	t.Helper()
	doc, err := svc.CreateLocale(context.Background(), documents.CreateLocaleInput{
		TenantRef:    tenantRef,
		Country:      country,
		LanguageCode: language,
		Currency:     "USD",
		SeedHeadline: "Welcome",
	})
	if err != nil {
		t.Fatalf("create locale %s/%s: %v", country, language, err)
	}
	return doc
}

func TestCreateTenantDerivesSlug(t *testing.T) {
	svc := newService()

	tenant := mustTenant(t, svc, "Shop X")
	if tenant.Slug != "shop-x" {
		t.Fatalf("expected slug shop-x got %s", tenant.Slug)
	}

	if _, err := svc.CreateTenant(context.Background(), documents.CreateTenantInput{
		Name: "Another", Slug: "shop-x",
	}); !errors.Is(err, documents.ErrTenantExists) {
		t.Fatalf("expected ErrTenantExists got %v", err)
	}
}

func TestCreateTenantRequiresName(t *testing.T) {
	svc := newService()
	if _, err := svc.CreateTenant(context.Background(), documents.CreateTenantInput{}); !errors.Is(err, documents.ErrTenantNameRequired) {
		t.Fatalf("expected ErrTenantNameRequired got %v", err)
	}
}

func TestResolveTenantByIDOrSlug(t *testing.T) {
	svc := newService()
	tenant := mustTenant(t, svc, "Shop X")

	bySlug, err := svc.ResolveTenant(context.Background(), "shop-x")
	if err != nil {
		t.Fatalf("resolve by slug: %v", err)
	}
	byID, err := svc.ResolveTenant(context.Background(), tenant.ID.String())
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if bySlug.ID != byID.ID {
		t.Fatal("slug and id resolved different tenants")
	}
}

func TestCreateLocaleSeedsHeroSlide(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")

	doc := mustLocale(t, svc, "shop-x", "US", "en")
	if !doc.IsActive {
		t.Fatal("new locale should be active")
	}
	if doc.IsPublished {
		t.Fatal("new locale should not be published")
	}
	if len(doc.HeroSlides) != 1 || doc.HeroSlides[0].Headline != "Welcome" {
		t.Fatalf("expected seeded hero slide, got %+v", doc.HeroSlides)
	}

	if _, err := svc.CreateLocale(context.Background(), documents.CreateLocaleInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); !errors.Is(err, documents.ErrLocaleExists) {
		t.Fatalf("expected ErrLocaleExists got %v", err)
	}
}

func TestResolveTriState(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	missing, err := svc.Resolve(context.Background(), "nobody", "US", "en")
	if err != nil {
		t.Fatalf("resolve unknown tenant: %v", err)
	}
	if missing.Status != documents.ResolutionTenantNotFound {
		t.Fatalf("expected tenant_not_found got %s", missing.Status)
	}

	noLocale, err := svc.Resolve(context.Background(), "shop-x", "DE", "de")
	if err != nil {
		t.Fatalf("resolve unknown locale: %v", err)
	}
	if noLocale.Status != documents.ResolutionLocaleNotFound {
		t.Fatalf("expected locale_not_found got %s", noLocale.Status)
	}
	if noLocale.Tenant == nil || len(noLocale.AvailableLocales) != 1 {
		t.Fatalf("locale_not_found should carry tenant and available locales: %+v", noLocale)
	}

	found, err := svc.Resolve(context.Background(), "shop-x", "US", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if found.Status != documents.ResolutionFound || found.Document == nil {
		t.Fatalf("expected found with document, got %+v", found)
	}
}

func TestResolveAppliesLocaleDefaults(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	res, err := svc.Resolve(context.Background(), "shop-x", "", "")
	if err != nil {
		t.Fatalf("resolve with defaults: %v", err)
	}
	if res.Status != documents.ResolutionFound {
		t.Fatalf("expected found via US/en defaults got %s", res.Status)
	}
}

func TestListAvailableLocalesIsolatesTenants(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustTenant(t, svc, "Shop Y")
	mustLocale(t, svc, "shop-x", "US", "en")
	mustLocale(t, svc, "shop-x", "US", "zh")
	mustLocale(t, svc, "shop-y", "DE", "de")

	locales, err := svc.ListAvailableLocales(context.Background(), "shop-x")
	if err != nil {
		t.Fatalf("list locales: %v", err)
	}
	if len(locales) != 2 {
		t.Fatalf("expected 2 locales got %d", len(locales))
	}
	for _, locale := range locales {
		if locale.Country != "US" {
			t.Fatalf("foreign tenant locale leaked: %+v", locale)
		}
	}
}

func TestUpdateDraftNormalizesBlocks(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	replacement := []blocks.Block{
		blocks.NewBlock("static-banner", "Our Story", map[string]any{"headline": "hi"}),
		blocks.NewBlock("accordion", "FAQs", map[string]any{
			"items": []any{map[string]any{"title": "Q"}},
		}),
	}
	replacement[0].Order = 17
	replacement[1].Order = 3

	doc, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		Blocks: &replacement,
	})
	if err != nil {
		t.Fatalf("update draft: %v", err)
	}
	for i, block := range doc.Blocks {
		if block.Order != i {
			t.Fatalf("block %d has order %d", i, block.Order)
		}
	}
	if len(doc.HeroSlides) != 1 {
		t.Fatal("untouched hero slides were replaced")
	}
}

func TestUpdateDraftRejectsInvalidPayload(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	bad := []blocks.Block{
		blocks.NewBlock("accordion", "FAQs", map[string]any{}),
	}
	if _, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		Blocks: &bad,
	}); !errors.Is(err, blocks.ErrBlockPayloadInvalid) {
		t.Fatalf("expected ErrBlockPayloadInvalid got %v", err)
	}
}

func TestUpdateDraftVersionConflict(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	currency := "EUR"
	updated, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		Currency: &currency,
	})
	if err != nil {
		t.Fatalf("update draft: %v", err)
	}
	if updated.Version != 1 {
		t.Fatalf("expected version 1 got %d", updated.Version)
	}

	stale := int64(0)
	if _, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		ExpectedVersion: &stale,
		Currency:        &currency,
	}); !errors.Is(err, documents.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict got %v", err)
	}

	current := updated.Version
	if _, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		ExpectedVersion: &current,
		Currency:        &currency,
	}); err != nil {
		t.Fatalf("update with matching version: %v", err)
	}
}

func TestPublishRenderLifecycle(t *testing.T) {
	invalidator := &recordingInvalidator{}
	svc := newService(documents.WithCacheInvalidator(invalidator))
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	draft := []blocks.Block{
		blocks.NewBlock("static-banner", "Our Story", map[string]any{"headline": "v1"}),
	}
	if _, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		Blocks: &draft,
	}); err != nil {
		t.Fatalf("update draft: %v", err)
	}

	// Before the first publish, live falls back to the draft.
	live, err := svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderLive)
	if err != nil {
		t.Fatalf("render live: %v", err)
	}
	preview, err := svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderPreview)
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	if !reflect.DeepEqual(live.Document.ContentFields, preview.Document.ContentFields) {
		t.Fatal("before first publish live must equal preview")
	}

	published, err := svc.Publish(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil || published.PublishedData == nil {
		t.Fatalf("publish state incomplete: %+v", published)
	}
	if len(invalidator.paths) != 1 || invalidator.paths[0] != "/shop-x/us/en" {
		t.Fatalf("expected invalidation for /shop-x/us/en got %v", invalidator.paths)
	}

	// Draft edits after publish stay invisible on the live surface.
	edited := []blocks.Block{
		blocks.NewBlock("static-banner", "Our Story", map[string]any{"headline": "v2"}),
	}
	if _, err := svc.UpdateDraft(context.Background(), documents.UpdateDraftInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
		Blocks: &edited,
	}); err != nil {
		t.Fatalf("update draft: %v", err)
	}

	live, err = svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderLive)
	if err != nil {
		t.Fatalf("render live: %v", err)
	}
	if got := live.Document.Blocks[0].Data["headline"]; got != "v1" {
		t.Fatalf("live should serve snapshot v1, got %v", got)
	}

	preview, err = svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderPreview)
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	if got := preview.Document.Blocks[0].Data["headline"]; got != "v2" {
		t.Fatalf("preview should serve draft v2, got %v", got)
	}

	// Unpublish reverts live to the draft fallback.
	if _, err := svc.Unpublish(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	live, err = svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderLive)
	if err != nil {
		t.Fatalf("render live: %v", err)
	}
	if live.Document.IsPublished {
		t.Fatal("unpublish should clear is_published")
	}
	if got := live.Document.Blocks[0].Data["headline"]; got != "v2" {
		t.Fatalf("live after unpublish should fall back to draft, got %v", got)
	}
}

func TestPublishIsContentIdempotent(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	first, err := svc.Publish(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := svc.Publish(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	})
	if err != nil {
		t.Fatalf("publish again: %v", err)
	}
	if !reflect.DeepEqual(first.PublishedData, second.PublishedData) {
		t.Fatal("publishing twice without edits must produce identical snapshots")
	}
}

func TestPublishSurvivesInvalidationFailure(t *testing.T) {
	invalidator := &recordingInvalidator{err: fmt.Errorf("edge unreachable")}
	svc := newService(documents.WithCacheInvalidator(invalidator))
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	published, err := svc.Publish(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	})
	if err != nil {
		t.Fatalf("publish should not fail on invalidation error: %v", err)
	}
	if !published.IsPublished {
		t.Fatal("publish transition rolled back")
	}
}

func TestDeleteLocale(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	if err := svc.DeleteLocale(context.Background(), documents.LocaleRef{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("delete locale: %v", err)
	}

	res, err := svc.Resolve(context.Background(), "shop-x", "US", "en")
	if err != nil {
		t.Fatalf("resolve after delete: %v", err)
	}
	if res.Status != documents.ResolutionLocaleNotFound {
		t.Fatalf("expected locale_not_found after delete got %s", res.Status)
	}
}

func TestRenderRejectsUnknownMode(t *testing.T) {
	svc := newService()
	mustTenant(t, svc, "Shop X")
	mustLocale(t, svc, "shop-x", "US", "en")

	if _, err := svc.Render(context.Background(), "shop-x", "US", "en", documents.RenderMode("draft")); !errors.Is(err, documents.ErrRenderModeInvalid) {
		t.Fatalf("expected ErrRenderModeInvalid got %v", err)
	}
}
