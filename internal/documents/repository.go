package documents

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewTenantRepository creates a go-repository-bun repository for Tenant entities.
func NewTenantRepository(db *bun.DB) repository.Repository[*Tenant] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Tenant]{
		NewRecord:          func() *Tenant { return &Tenant{} },
		GetID:              func(t *Tenant) uuid.UUID { return t.ID },
		SetID:              func(t *Tenant, id uuid.UUID) { t.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(t *Tenant) string { return t.Slug },
	})
}

// NewDocumentRepository creates a go-repository-bun repository for Document entities.
func NewDocumentRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord:          func() *Document { return &Document{} },
		GetID:              func(d *Document) uuid.UUID { return d.ID },
		SetID:              func(d *Document, id uuid.UUID) { d.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*Document) string { return "" },
	})
}
