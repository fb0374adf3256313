package documents

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository persists tenants. Implementations return *NotFoundError
// for absent rows.
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) (*Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}

// DocumentRepository is the content-store collaborator contract: single-row
// get, whole-row update, per-tenant list. No transactional guarantees beyond
// single-row atomicity are assumed anywhere above it.
type DocumentRepository interface {
	Create(ctx context.Context, document *Document) (*Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetByLocale(ctx context.Context, tenantID uuid.UUID, country, languageCode string) (*Document, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Document, error)
	Update(ctx context.Context, document *Document) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
