package localesynccmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/internal/blocks"
	localesynccmd "github.com/goliatone/go-landing/internal/commands/localesync"
	"github.com/goliatone/go-landing/internal/documents"
	"github.com/goliatone/go-landing/internal/localesync"
)

type fixture struct {
	tenants documents.TenantRepository
	docs    documents.DocumentRepository
	tenant  *documents.Tenant
	sync    localesync.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tenants := documents.NewMemoryTenantRepository()
	docs := documents.NewMemoryDocumentRepository()

	tenant, err := tenants.Create(context.Background(), &documents.Tenant{
		ID: uuid.New(), Name: "Shop X", Slug: "shop-x",
	})
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}

	return &fixture{
		tenants: tenants,
		docs:    docs,
		tenant:  tenant,
		sync:    localesync.NewService(tenants, docs),
	}
}

func (f *fixture) addDocument(t *testing.T, country, language string, blockList []blocks.Block) *documents.Document {
	t.Helper()
	doc, err := f.docs.Create(context.Background(), &documents.Document{
		ID:           uuid.New(),
		TenantID:     f.tenant.ID,
		Country:      country,
		LanguageCode: language,
		IsActive:     true,
		Blocks:       blocks.Normalize(blockList),
	})
	if err != nil {
		t.Fatalf("create document %s/%s: %v", country, language, err)
	}
	return doc
}

func TestSyncAnchorsHandler(t *testing.T) {
	f := newFixture(t)
	f.addDocument(t, "US", "en", []blocks.Block{
		blocks.NewBlock("static-banner", "Our Story", nil),
	})
	f.addDocument(t, "US", "zh", []blocks.Block{
		blocks.NewBlock("static-banner", "我们的故事", nil),
	})

	handler := localesynccmd.NewSyncAnchorsHandler(f.sync, nil)
	if err := handler.Execute(context.Background(), localesynccmd.SyncAnchorsCommand{
		TenantRef: "shop-x",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	target, err := f.docs.GetByLocale(context.Background(), f.tenant.ID, "US", "zh")
	if err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if target.Blocks[0].AnchorID != "our-story" {
		t.Fatalf("anchor not propagated: %q", target.Blocks[0].AnchorID)
	}
}

func TestSyncAnchorsHandlerValidatesMessage(t *testing.T) {
	f := newFixture(t)
	handler := localesynccmd.NewSyncAnchorsHandler(f.sync, nil)

	err := handler.Execute(context.Background(), localesynccmd.SyncAnchorsCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category got %v", err)
	}
}
