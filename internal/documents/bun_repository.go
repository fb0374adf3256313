package documents

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTenantRepository implements TenantRepository with optional caching.
type BunTenantRepository struct {
	repo repository.Repository[*Tenant]
}

// NewBunTenantRepository creates a tenant repository without caching.
func NewBunTenantRepository(db *bun.DB) *BunTenantRepository {
	return NewBunTenantRepositoryWithCache(db, nil, nil)
}

// NewBunTenantRepositoryWithCache creates a tenant repository with caching services.
func NewBunTenantRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTenantRepository {
	return &BunTenantRepository{repo: wrapWithCache(NewTenantRepository(db), cacheService, serializer)}
}

func (r *BunTenantRepository) Create(ctx context.Context, tenant *Tenant) (*Tenant, error) {
	return r.repo.Create(ctx, tenant)
}

func (r *BunTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", id.String())
	}
	return record, nil
}

func (r *BunTenantRepository) GetBySlug(ctx context.Context, slug string) (*Tenant, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", slug)
	}
	return record, nil
}

func (r *BunTenantRepository) List(ctx context.Context) ([]*Tenant, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "tenant", "")
	}
	return records, nil
}

// BunDocumentRepository implements DocumentRepository with optional caching.
type BunDocumentRepository struct {
	repo repository.Repository[*Document]
}

// NewBunDocumentRepository creates a document repository without caching.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache creates a document repository with caching services.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunDocumentRepository {
	return &BunDocumentRepository{repo: wrapWithCache(NewDocumentRepository(db), cacheService, serializer)}
}

func (r *BunDocumentRepository) Create(ctx context.Context, document *Document) (*Document, error) {
	return r.repo.Create(ctx, document)
}

func (r *BunDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "document", id.String())
	}
	return record, nil
}

func (r *BunDocumentRepository) GetByLocale(ctx context.Context, tenantID uuid.UUID, country, languageCode string) (*Document, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.tenant_id = ?", tenantID).
				Where("?TableAlias.country = ?", country).
				Where("?TableAlias.language_code = ?", languageCode)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "document", country+"/"+languageCode)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "document", Key: country + "/" + languageCode}
	}
	return records[0], nil
}

func (r *BunDocumentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Document, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.tenant_id = ?", tenantID).
				Order("country ASC").
				Order("language_code ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "document", tenantID.String())
	}
	return records, nil
}

func (r *BunDocumentRepository) Update(ctx context.Context, document *Document) (*Document, error) {
	updated, err := r.repo.Update(ctx, document,
		repository.UpdateByID(document.ID.String()),
		repository.UpdateColumns(
			"country",
			"language_code",
			"currency",
			"is_active",
			"is_published",
			"published_at",
			"hero",
			"footer",
			"menu",
			"announcements",
			"hero_slides",
			"blocks",
			"published_data",
			"version",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "document", document.ID.String())
	}
	return updated, nil
}

func (r *BunDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Document{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
