package documentscmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	documentscmd "github.com/goliatone/go-landing/internal/commands/documents"
	"github.com/goliatone/go-landing/internal/documents"
)

func newDocumentService(t *testing.T) documents.Service {
	t.Helper()
	svc := documents.NewService(
		documents.NewMemoryTenantRepository(),
		documents.NewMemoryDocumentRepository(),
	)
	if _, err := svc.CreateTenant(context.Background(), documents.CreateTenantInput{Name: "Shop X"}); err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	if _, err := svc.CreateLocale(context.Background(), documents.CreateLocaleInput{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("create locale: %v", err)
	}
	return svc
}

func TestPublishDocumentHandler(t *testing.T) {
	svc := newDocumentService(t)
	handler := documentscmd.NewPublishDocumentHandler(svc, nil)

	if err := handler.Execute(context.Background(), documentscmd.PublishDocumentCommand{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	res, err := svc.Resolve(context.Background(), "shop-x", "US", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.Document.IsPublished {
		t.Fatal("document should be published")
	}
}

func TestPublishDocumentHandlerValidatesMessage(t *testing.T) {
	svc := newDocumentService(t)
	handler := documentscmd.NewPublishDocumentHandler(svc, nil)

	err := handler.Execute(context.Background(), documentscmd.PublishDocumentCommand{Country: "US"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category got %v", err)
	}
}

func TestUnpublishDocumentHandler(t *testing.T) {
	svc := newDocumentService(t)

	publish := documentscmd.NewPublishDocumentHandler(svc, nil)
	if err := publish.Execute(context.Background(), documentscmd.PublishDocumentCommand{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	unpublish := documentscmd.NewUnpublishDocumentHandler(svc, nil)
	if err := unpublish.Execute(context.Background(), documentscmd.UnpublishDocumentCommand{
		TenantRef: "shop-x", Country: "US", LanguageCode: "en",
	}); err != nil {
		t.Fatalf("unpublish: %v", err)
	}

	res, err := svc.Resolve(context.Background(), "shop-x", "US", "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Document.IsPublished {
		t.Fatal("document should no longer be published")
	}
}
