package translate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/blocks"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/translate"
)

func seedFixture(t *testing.T) (documents.TenantRepository, documents.DocumentRepository, *documents.Document) {
	t.Helper()
	tenants := documents.NewMemoryTenantRepository()
	docs := documents.NewMemoryDocumentRepository()

	tenant, err := tenants.Create(context.Background(), &documents.Tenant{
		ID: uuid.New(), Name: "Shop X", Slug: "shop-x",
	})
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}

	source := &documents.Document{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Country:      "US",
		LanguageCode: "en",
		Currency:     "USD",
		IsActive:     true,
		HeroSlides: []blocks.HeroSlide{{
			ID:            uuid.New(),
			Headline:      "Welcome",
			BackgroundURL: "https://cdn.example.com/hero.jpg",
		}},
		Blocks: blocks.Normalize([]blocks.Block{
			{
				ID:       uuid.New(),
				GroupID:  uuid.New(),
				Type:     "static-banner",
				Name:     "Our Story",
				AnchorID: "our-story",
				Data: map[string]any{
					"headline":       "How it started",
					"background_url": "https://cdn.example.com/story.jpg",
				},
			},
		}),
	}
	if _, err := docs.Create(context.Background(), source); err != nil {
		t.Fatalf("create source document: %v", err)
	}
	return tenants, docs, source
}

func TestSeedLocaleTranslatesContent(t *testing.T) {
	tenants, docs, source := seedFixture(t)
	svc := translate.NewService(tenants, docs, prefixTranslator)

	created, err := svc.SeedLocale(context.Background(), translate.SeedLocaleInput{
		TenantRef: "shop-x",
		Target:    documents.Locale{Country: "US", LanguageCode: "zh"},
	})
	if err != nil {
		t.Fatalf("seed locale: %v", err)
	}

	if created.Country != "US" || created.LanguageCode != "zh" {
		t.Fatalf("wrong locale: %s/%s", created.Country, created.LanguageCode)
	}
	if !created.IsActive || created.IsPublished {
		t.Fatalf("seeded locale should be an active draft: %+v", created)
	}
	if created.Currency != "USD" {
		t.Fatalf("currency should default to source, got %s", created.Currency)
	}

	if got := created.HeroSlides[0].Headline; got != "[zh] Welcome" {
		t.Fatalf("hero headline not translated: %q", got)
	}
	if got := created.HeroSlides[0].BackgroundURL; got != source.HeroSlides[0].BackgroundURL {
		t.Fatalf("media URL was rewritten: %q", got)
	}

	block := created.Blocks[0]
	if block.AnchorID != "our-story" {
		t.Fatalf("anchor must survive byte-identical, got %q", block.AnchorID)
	}
	if got := block.Data["headline"]; got != "[zh] How it started" {
		t.Fatalf("block prose not translated: %v", got)
	}
	if got := block.Data["background_url"]; got != "https://cdn.example.com/story.jpg" {
		t.Fatalf("block media URL was rewritten: %v", got)
	}
}

func TestSeedLocaleAssignsFreshIdentities(t *testing.T) {
	tenants, docs, source := seedFixture(t)
	svc := translate.NewService(tenants, docs, prefixTranslator)

	created, err := svc.SeedLocale(context.Background(), translate.SeedLocaleInput{
		TenantRef: "shop-x",
		Target:    documents.Locale{Country: "US", LanguageCode: "zh"},
	})
	if err != nil {
		t.Fatalf("seed locale: %v", err)
	}

	if created.ID == source.ID {
		t.Fatal("document id reused")
	}
	if created.Blocks[0].ID == source.Blocks[0].ID {
		t.Fatal("block id reused across locales")
	}
	if created.Blocks[0].GroupID != source.Blocks[0].GroupID {
		t.Fatal("group id must carry across locales")
	}
	if created.HeroSlides[0].ID == source.HeroSlides[0].ID {
		t.Fatal("hero slide id reused across locales")
	}
}

func TestSeedLocaleRejectsExistingTarget(t *testing.T) {
	tenants, docs, _ := seedFixture(t)
	svc := translate.NewService(tenants, docs, prefixTranslator)

	input := translate.SeedLocaleInput{
		TenantRef: "shop-x",
		Target:    documents.Locale{Country: "US", LanguageCode: "zh"},
	}
	if _, err := svc.SeedLocale(context.Background(), input); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if _, err := svc.SeedLocale(context.Background(), input); !errors.Is(err, documents.ErrLocaleExists) {
		t.Fatalf("expected ErrLocaleExists got %v", err)
	}
}

func TestSeedLocaleRequiresTarget(t *testing.T) {
	tenants, docs, _ := seedFixture(t)
	svc := translate.NewService(tenants, docs, prefixTranslator)

	if _, err := svc.SeedLocale(context.Background(), translate.SeedLocaleInput{
		TenantRef: "shop-x",
	}); !errors.Is(err, translate.ErrTargetRequired) {
		t.Fatalf("expected ErrTargetRequired got %v", err)
	}
}

func TestSeedLocaleRequiresTranslator(t *testing.T) {
	tenants, docs, _ := seedFixture(t)
	svc := translate.NewService(tenants, docs, nil)

	if _, err := svc.SeedLocale(context.Background(), translate.SeedLocaleInput{
		TenantRef: "shop-x",
		Target:    documents.Locale{Country: "US", LanguageCode: "zh"},
	}); !errors.Is(err, translate.ErrTranslatorRequired) {
		t.Fatalf("expected ErrTranslatorRequired got %v", err)
	}
}
