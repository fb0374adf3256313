package localesynccmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-landing/internal/blocks"
	localesynccmd "github.com/goliatone/go-landing/internal/commands/localesync"
	"github.com/goliatone/go-landing/internal/documents"
)

func TestSyncFilenamesHandler(t *testing.T) {
	f := newFixture(t)
	f.addDocument(t, "US", "en", []blocks.Block{
		blocks.NewBlock("static-banner", "Banner", map[string]any{
			"background_url":    "https://cdn.example.com/banner.jpg",
			"original_filename": "banner_final.jpg",
		}),
	})
	f.addDocument(t, "US", "zh", []blocks.Block{
		blocks.NewBlock("static-banner", "横幅", map[string]any{
			"background_url":    "https://cdn.example.com/banner.jpg",
			"original_filename": "",
		}),
	})

	handler := localesynccmd.NewSyncFilenamesHandler(f.sync, nil)
	if err := handler.Execute(context.Background(), localesynccmd.SyncFilenamesCommand{
		TenantRef: "shop-x",
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	target, err := f.docs.GetByLocale(context.Background(), f.tenant.ID, "US", "zh")
	if err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if got := target.Blocks[0].Data["original_filename"]; got != "banner_final.jpg" {
		t.Fatalf("blank filename not filled, got %v", got)
	}
}

func TestSyncFilenamesHandlerValidatesMessage(t *testing.T) {
	f := newFixture(t)
	handler := localesynccmd.NewSyncFilenamesHandler(f.sync, nil)

	err := handler.Execute(context.Background(), localesynccmd.SyncFilenamesCommand{
		TenantRef: "shop-x",
		Targets:   []documents.Locale{{Country: "US"}},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category got %v", err)
	}
}
